package ftp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpx"
	"github.com/c2fo/ftpx/backend/ftp/mocks"
	"github.com/c2fo/ftpx/backend/ftp/types"
	ftpxtypes "github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils/authority"
)

type clientTestSuite struct {
	suite.Suite
	conn   *mocks.ServerConn
	client *Client
}

func TestClient(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

var errSomething = errors.New("something went wrong")

func (s *clientTestSuite) SetupTest() {
	s.conn = mocks.NewServerConn(s.T())
	var err error
	s.client, err = NewClient("user@host.com:21", WithServerConn(s.conn))
	s.Require().NoError(err)
}

func (s *clientTestSuite) TestNewClient() {
	c, err := NewClient("ftp://bob@ftp.acme.com:2121/some/path/", WithOptions(Options{Password: "pw"}))
	s.Require().NoError(err)
	s.Equal("ftp.acme.com", c.Authority().Host())
	s.Equal("bob", c.Authority().UserInfo().Username())
	s.Equal("pw", c.options.Password)

	_, err = NewClient("")
	s.Error(err, "empty authority should fail")
}

func (s *clientTestSuite) TestLazyConnection() {
	defer func(orig func(context.Context, authority.Authority, Options) (types.ServerConn, error)) {
		defaultConnGetter = orig
	}(defaultConnGetter)

	calls := 0
	defaultConnGetter = func(_ context.Context, a authority.Authority, opts Options) (types.ServerConn, error) {
		calls++
		s.Equal("host.com", a.Host())
		s.Equal("secret", opts.Password)
		return s.conn, nil
	}

	c, err := NewClient("user@host.com", WithOptions(Options{Password: "secret"}))
	s.Require().NoError(err)
	s.Zero(calls, "nothing is dialed before the first command")

	s.conn.EXPECT().CurrentDir().Return("/", nil).Twice()
	for range 2 {
		dir, err := c.CurrentDir()
		s.NoError(err)
		s.Equal("/", dir)
	}
	s.Equal(1, calls, "the connection is reused")

	s.NoError(c.Connect(context.Background()))
	s.Equal(1, calls)

	s.conn.EXPECT().Quit().Return(nil).Once()
	s.NoError(c.Close())
	s.NoError(c.Close(), "closing twice is a no-op")
}

func (s *clientTestSuite) TestConnectionError() {
	defer func(orig func(context.Context, authority.Authority, Options) (types.ServerConn, error)) {
		defaultConnGetter = orig
	}(defaultConnGetter)
	defaultConnGetter = func(context.Context, authority.Authority, Options) (types.ServerConn, error) {
		return nil, errSomething
	}

	c, err := NewClient("user@host.com")
	s.Require().NoError(err)

	_, err = c.OpenRead("/file")
	s.ErrorIs(err, errSomething)
	_, err = c.OpenWrite("/file")
	s.ErrorIs(err, errSomething)
	_, err = c.List("/")
	s.ErrorIs(err, errSomething)
	_, err = c.DirectoryExists("/dir")
	s.ErrorIs(err, errSomething)
	s.ErrorIs(c.MakeDir("/dir"), errSomething)
	s.ErrorIs(c.DeleteFile("/file"), errSomething)
	s.ErrorIs(c.DeleteDirectory("/dir", true), errSomething)
	s.ErrorIs(c.ChangeDir("/dir"), errSomething)
	s.ErrorIs(c.Connect(context.Background()), errSomething)
	s.NoError(c.Close())

	var nilClient *Client
	s.ErrorIs(nilClient.Connect(context.Background()), errNilClient)
}

func (s *clientTestSuite) TestOpenRead() {
	s.conn.EXPECT().Retr("/some/file.txt").Return(io.NopCloser(bytes.NewBufferString("hello world!")), nil).Once()

	r, err := s.client.OpenRead("/some/file.txt")
	s.Require().NoError(err)
	b, err := io.ReadAll(r)
	s.NoError(err)
	s.Equal("hello world!", string(b))
	s.NoError(r.Close())

	s.conn.EXPECT().Retr("/missing").Return(nil, errSomething).Once()
	_, err = s.client.OpenRead("/missing")
	s.ErrorIs(err, errSomething)
}

func (s *clientTestSuite) TestOpenWrite() {
	var stored bytes.Buffer
	s.conn.EXPECT().Stor("/some/file.txt", mock.Anything).RunAndReturn(func(_ string, r io.Reader) error {
		_, err := io.Copy(&stored, r)
		return err
	}).Once()

	w, err := s.client.OpenWrite("/some/file.txt")
	s.Require().NoError(err)
	_, err = w.Write([]byte("hello "))
	s.NoError(err)
	_, err = w.Write([]byte("world!"))
	s.NoError(err)
	s.NoError(w.Close())
	s.Equal("hello world!", stored.String(), "Close returns only after STOR finished")

	_, err = w.Write([]byte("late"))
	s.ErrorIs(err, errWriterClosed)
	s.NoError(w.Close(), "second close returns the first result")
}

func (s *clientTestSuite) TestOpenWriteRejected() {
	s.conn.EXPECT().Stor("/denied", mock.Anything).Return(errSomething).Once()

	w, err := s.client.OpenWrite("/denied")
	s.Require().NoError(err)

	// STOR failed without reading, so the write is released with an error rather than blocking
	_, err = w.Write([]byte("data"))
	s.Error(err)
	s.ErrorIs(w.Close(), errSomething)
}

func (s *clientTestSuite) TestOpenWriteAborted() {
	s.conn.EXPECT().Stor("/aborted", mock.Anything).RunAndReturn(func(_ string, r io.Reader) error {
		_, err := io.ReadAll(r)
		return err
	}).Once()

	w, err := s.client.OpenWrite("/aborted")
	s.Require().NoError(err)
	_, err = w.Write([]byte("partial"))
	s.NoError(err)

	sw, ok := w.(*storWriter)
	s.Require().True(ok)
	s.ErrorIs(sw.CloseWithError(errSomething), errSomething, "the server side sees the abort cause")
}

func (s *clientTestSuite) TestList() {
	s.conn.EXPECT().List("/dir").Return([]*_ftp.Entry{
		{Name: ".", Type: _ftp.EntryTypeFolder},
		{Name: "..", Type: _ftp.EntryTypeFolder},
		{Name: "file.txt", Type: _ftp.EntryTypeFile, Size: 12},
		{Name: "sub", Type: _ftp.EntryTypeFolder},
		{Name: "link", Type: _ftp.EntryTypeLink},
		{Name: "odd", Type: _ftp.EntryType(42)},
	}, nil).Once()

	entries, err := s.client.List("/dir")
	s.Require().NoError(err)
	s.Equal([]ftpxtypes.Entry{
		{Path: "/dir/file.txt", Name: "file.txt", Kind: ftpxtypes.KindFile, Size: 12},
		{Path: "/dir/sub", Name: "sub", Kind: ftpxtypes.KindDirectory},
		{Path: "/dir/link", Name: "link", Kind: ftpxtypes.KindLink},
		{Path: "/dir/odd", Name: "odd", Kind: ftpxtypes.KindUnknown},
	}, entries)

	s.conn.EXPECT().List("/broken").Return(nil, errSomething).Once()
	_, err = s.client.List("/broken")
	s.ErrorIs(err, errSomething)
}

func (s *clientTestSuite) TestDirectoryExists() {
	tests := []struct {
		description string
		path        string
		parent      string
		entries     []*_ftp.Entry
		listErr     error
		expected    bool
		expectErr   bool
	}{
		{
			description: "folder found in parent listing",
			path:        "/some/dir/",
			parent:      "/some/",
			entries:     []*_ftp.Entry{{Name: "other", Type: _ftp.EntryTypeFolder}, {Name: "dir", Type: _ftp.EntryTypeFolder}},
			expected:    true,
		},
		{
			description: "file with the same name is not a directory",
			path:        "/some/dir",
			parent:      "/some/",
			entries:     []*_ftp.Entry{{Name: "dir", Type: _ftp.EntryTypeFile}},
			expected:    false,
		},
		{
			description: "parent does not exist",
			path:        "/no/such/dir",
			parent:      "/no/such/",
			listErr:     &textproto.Error{Code: _ftp.StatusFileUnavailable, Msg: "No such file or directory"},
			expected:    false,
		},
		{
			description: "other list errors are returned",
			path:        "/some/dir",
			parent:      "/some/",
			listErr:     errSomething,
			expectErr:   true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.description, func() {
			s.conn.EXPECT().List(tt.parent).Return(tt.entries, tt.listErr).Once()
			exists, err := s.client.DirectoryExists(tt.path)
			if tt.expectErr {
				s.ErrorIs(err, tt.listErr)
				return
			}
			s.NoError(err)
			s.Equal(tt.expected, exists)
		})
	}

	exists, err := s.client.DirectoryExists("/")
	s.NoError(err)
	s.True(exists, "root always exists")
}

func (s *clientTestSuite) TestDirectoryExistsRelative() {
	s.conn.EXPECT().CurrentDir().Return("/home/user", nil).Once()
	s.conn.EXPECT().List("/home/user/").Return([]*_ftp.Entry{{Name: "outbound", Type: _ftp.EntryTypeFolder}}, nil).Once()

	exists, err := s.client.DirectoryExists("outbound")
	s.NoError(err)
	s.True(exists, "relative paths are looked up in the working directory")

	s.conn.EXPECT().CurrentDir().Return("", errSomething).Once()
	_, err = s.client.DirectoryExists("outbound")
	s.ErrorIs(err, errSomething)
}

func (s *clientTestSuite) TestTransferUploadRejected() {
	denied := &textproto.Error{Code: _ftp.StatusFileUnavailable, Msg: "permission denied"}
	s.conn.EXPECT().Stor("/inbound/report.csv", mock.Anything).Return(denied).Once()

	local := filepath.Join(s.T().TempDir(), "report.csv")
	s.Require().NoError(os.WriteFile(local, bytes.Repeat([]byte("x"), 10000), 0o600))

	err := ftpx.NewTransfer(s.client).UploadFile("/inbound/report.csv", local)
	s.Require().Error(err)
	s.ErrorIs(err, denied, "the server reply should reach the caller")
}

func (s *clientTestSuite) TestSingleCommands() {
	s.conn.EXPECT().MakeDir("/new").Return(nil).Once()
	s.conn.EXPECT().Delete("/old.txt").Return(nil).Once()
	s.conn.EXPECT().RemoveDir("/empty").Return(nil).Once()
	s.conn.EXPECT().RemoveDirRecur("/full").Return(nil).Once()
	s.conn.EXPECT().ChangeDir("/full").Return(errSomething).Once()

	s.NoError(s.client.MakeDir("/new"))
	s.NoError(s.client.DeleteFile("/old.txt"))
	s.NoError(s.client.DeleteDirectory("/empty", false))
	s.NoError(s.client.DeleteDirectory("/full", true))
	s.ErrorIs(s.client.ChangeDir("/full"), errSomething)

	s.conn.EXPECT().Quit().Return(errSomething).Once()
	s.ErrorIs(s.client.Close(), errSomething)
}

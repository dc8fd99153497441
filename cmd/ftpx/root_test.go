package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpx"
	"github.com/c2fo/ftpx/mocks"
	"github.com/c2fo/ftpx/types"
)

type rootTestSuite struct {
	suite.Suite
	client  *mocks.Client
	gotURL  string
	factory func(*Config) (types.Client, error)
}

func TestRoot(t *testing.T) {
	suite.Run(t, new(rootTestSuite))
}

func (s *rootTestSuite) SetupTest() {
	s.client = mocks.NewClient(s.T())
	s.gotURL = ""
	s.factory = clientFactory
	clientFactory = func(cfg *Config) (types.Client, error) {
		s.gotURL = cfg.URL
		return s.client, nil
	}
}

func (s *rootTestSuite) TearDownTest() {
	clientFactory = s.factory
}

func (s *rootTestSuite) execute(args ...string) (string, error) {
	var out bytes.Buffer
	c := newRootCmd()
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(append([]string{"--url", "ftp://user@host", "--log-level", "error"}, args...))
	err := c.Execute()
	return out.String(), err
}

func (s *rootTestSuite) TestGet() {
	dir := s.T().TempDir()
	s.client.EXPECT().OpenRead("/outbound/report.csv").Return(io.NopCloser(strings.NewReader("a,b,c\n")), nil).Once()
	s.client.EXPECT().Close().Return(nil).Once()

	out, err := s.execute("get", "/outbound/report.csv", dir)
	s.Require().NoError(err)
	s.Contains(out, "downloaded /outbound/report.csv")
	s.Equal("ftp://user@host", s.gotURL)

	got, err := os.ReadFile(filepath.Join(dir, "report.csv")) //nolint:gosec
	s.Require().NoError(err)
	s.Equal("a,b,c\n", string(got))
}

func (s *rootTestSuite) TestGetDir() {
	s.client.EXPECT().CurrentDir().Return("/", nil).Once()
	s.client.EXPECT().DirectoryExists("/missing").Return(false, nil).Once()
	s.client.EXPECT().Close().Return(nil).Once()

	_, err := s.execute("get-dir", "/missing", s.T().TempDir())
	s.ErrorIs(err, ftpx.ErrRemoteNotExist)
}

func (s *rootTestSuite) TestPut() {
	dir := s.T().TempDir()
	local := filepath.Join(dir, "a.txt")
	s.Require().NoError(os.WriteFile(local, []byte("alpha"), 0o600))

	w := &bufferCloser{}
	s.client.EXPECT().DirectoryExists("/inbound").Return(true, nil).Once()
	s.client.EXPECT().OpenWrite("/inbound/a.txt").Return(w, nil).Once()
	s.client.EXPECT().Close().Return(nil).Once()

	out, err := s.execute("put", "/inbound", local)
	s.Require().NoError(err)
	s.Contains(out, "uploaded 1 file(s) to /inbound")
	s.Equal("alpha", w.String())
	s.True(w.closed)
}

func (s *rootTestSuite) TestPutDirCreateFolder() {
	local := filepath.Join(s.T().TempDir(), "reports")
	s.Require().NoError(os.Mkdir(local, 0o750))
	s.Require().NoError(os.WriteFile(filepath.Join(local, "r.txt"), []byte("r"), 0o600))

	w := &bufferCloser{}
	s.client.EXPECT().DirectoryExists("/inbound").Return(true, nil).Once()
	s.client.EXPECT().DirectoryExists("/inbound/reports").Return(false, nil).Once()
	s.client.EXPECT().MakeDir("/inbound/reports").Return(nil).Once()
	s.client.EXPECT().OpenWrite("/inbound/reports/r.txt").Return(w, nil).Once()
	s.client.EXPECT().Close().Return(nil).Once()

	_, err := s.execute("put-dir", "--create-folder", "/inbound", local)
	s.Require().NoError(err)
	s.Equal("r", w.String())
}

func (s *rootTestSuite) TestRmSub() {
	s.client.EXPECT().DirectoryExists("/inbound").Return(true, nil).Once()
	s.client.EXPECT().List("/inbound").Return([]types.Entry{
		{Path: "/inbound/old", Name: "old", Kind: types.KindDirectory},
	}, nil).Once()
	s.client.EXPECT().DeleteDirectory("/inbound/old", true).Return(nil).Once()
	s.client.EXPECT().Close().Return(nil).Once()

	out, err := s.execute("rm-sub", "/inbound")
	s.Require().NoError(err)
	s.Contains(out, "emptied /inbound")
}

func (s *rootTestSuite) TestCloseError() {
	errClose := errors.New("quit failed")
	s.client.EXPECT().DirectoryExists("/inbound").Return(true, nil).Once()
	s.client.EXPECT().List("/inbound").Return(nil, nil).Once()
	s.client.EXPECT().Close().Return(errClose).Once()

	_, err := s.execute("rm-sub", "/inbound")
	s.ErrorIs(err, errClose)
}

func (s *rootTestSuite) TestArgumentErrors() {
	_, err := s.execute("get", "/only-one")
	s.ErrorContains(err, "accepts 2 arg(s)")

	_, err = s.execute("put", "/inbound")
	s.ErrorContains(err, "requires at least 2 arg(s)")

	_, err = s.execute("--config", filepath.Join(s.T().TempDir(), "none.yml"), "rm-sub", "/x")
	s.ErrorContains(err, "failed to read configuration file")

	_, err = s.execute("--log-level", "chatty", "rm-sub", "/x")
	s.ErrorContains(err, "invalid log level")
}

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

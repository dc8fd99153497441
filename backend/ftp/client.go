package ftp

import (
	"context"
	"errors"
	"io"
	"net/textproto"
	"path"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpx/backend/ftp/types"
	"github.com/c2fo/ftpx/options"
	ftpxtypes "github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils"
	"github.com/c2fo/ftpx/utils/authority"
)

// Scheme is the URL scheme handled by this package.
const Scheme = "ftp"

var defaultConnGetter func(context.Context, authority.Authority, Options) (types.ServerConn, error)

// Client implements types.Client over a single FTP control connection.  The connection is dialed lazily on the
// first command, or explicitly with Connect.  A Client is not safe for concurrent use.
type Client struct {
	authority authority.Authority
	options   Options
	conn      types.ServerConn
}

// NewClient initializer for Client struct.  authorityStr is "[user@]host[:port]" and may carry an "ftp://" prefix.
func NewClient(authorityStr string, opts ...options.NewOption[Client]) (*Client, error) {
	auth, err := authority.NewAuthority(authorityStr)
	if err != nil {
		return nil, err
	}

	c := &Client{
		authority: auth,
	}

	// apply options
	options.ApplyOptions(c, opts...)

	return c, nil
}

// Authority returns the authority the client connects to.
func (c *Client) Authority() authority.Authority {
	return c.authority
}

// Connect dials and logs in unless a connection is already open.
func (c *Client) Connect(ctx context.Context) error {
	_, err := c.connection(ctx)
	return err
}

func (c *Client) connection(ctx context.Context) (types.ServerConn, error) {
	if c == nil {
		return nil, errNilClient
	}
	if c.conn == nil {
		conn, err := defaultConnGetter(ctx, c.authority, c.options)
		if err != nil {
			return nil, err
		}
		c.conn = conn
	}
	return c.conn, nil
}

// OpenRead starts a RETR for p.  No other command may be sent until the returned reader is closed.
func (c *Client) OpenRead(p string) (io.ReadCloser, error) {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return nil, err
	}
	return conn.Retr(p)
}

// OpenWrite starts a STOR for p fed by the returned writer.  Close waits for the server to acknowledge the
// transfer and returns its result.
func (c *Client) OpenWrite(p string) (io.WriteCloser, error) {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	errChan := make(chan error, 1)
	go func() {
		err := conn.Stor(p, pr)
		errChan <- err
		// unblock any pending Write if the server stopped reading early
		_ = pr.CloseWithError(errWriterClosed)
	}()

	return &storWriter{pw: pw, errChan: errChan}, nil
}

// List returns the children of p, without "." and "..".
func (c *Client) List(p string) ([]ftpxtypes.Entry, error) {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return nil, err
	}

	entries, err := conn.List(p)
	if err != nil {
		return nil, err
	}

	out := make([]ftpxtypes.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Name == "." || e.Name == ".." {
			continue
		}
		name := path.Base(e.Name)
		out = append(out, ftpxtypes.Entry{
			Path: utils.JoinRemotePath(p, name),
			Name: name,
			Kind: kindOf(e.Type),
			Size: e.Size,
		})
	}
	return out, nil
}

func kindOf(t _ftp.EntryType) ftpxtypes.Kind {
	switch t {
	case _ftp.EntryTypeFile:
		return ftpxtypes.KindFile
	case _ftp.EntryTypeFolder:
		return ftpxtypes.KindDirectory
	case _ftp.EntryTypeLink:
		return ftpxtypes.KindLink
	default:
		return ftpxtypes.KindUnknown
	}
}

// DirectoryExists lists the parent of p and looks for a folder named like p.  A 550 reply for the parent means
// p does not exist.  A relative p is resolved against the server's working directory.
func (c *Client) DirectoryExists(p string) (bool, error) {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return false, err
	}

	if !path.IsAbs(p) {
		cwd, err := conn.CurrentDir()
		if err != nil {
			return false, err
		}
		p = path.Join(cwd, p)
	}

	parent, base := utils.ParentRemotePath(p)
	if base == "" {
		return true, nil
	}

	entries, err := conn.List(parent)
	if err != nil {
		if isFileUnavailable(err) {
			return false, nil
		}
		return false, err
	}

	for _, e := range entries {
		if e != nil && path.Base(e.Name) == base && e.Type == _ftp.EntryTypeFolder {
			return true, nil
		}
	}
	return false, nil
}

func isFileUnavailable(err error) bool {
	var tpErr *textproto.Error
	return errors.As(err, &tpErr) && tpErr.Code == _ftp.StatusFileUnavailable
}

// MakeDir creates a single directory.
func (c *Client) MakeDir(p string) error {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return err
	}
	return conn.MakeDir(p)
}

// DeleteFile removes a single file.
func (c *Client) DeleteFile(p string) error {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return err
	}
	return conn.Delete(p)
}

// DeleteDirectory removes p.  When recursive is false p must be empty.
func (c *Client) DeleteDirectory(p string, recursive bool) error {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return err
	}
	if recursive {
		return conn.RemoveDirRecur(p)
	}
	return conn.RemoveDir(p)
}

// CurrentDir returns the server side working directory.
func (c *Client) CurrentDir() (string, error) {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return "", err
	}
	return conn.CurrentDir()
}

// ChangeDir changes the server side working directory.
func (c *Client) ChangeDir(p string) error {
	conn, err := c.connection(context.TODO())
	if err != nil {
		return err
	}
	return conn.ChangeDir(p)
}

// Close sends QUIT and drops the connection.  Closing a client that never connected is a no-op.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	err := c.conn.Quit()
	c.conn = nil
	return err
}

// storWriter feeds a running STOR through a pipe.
type storWriter struct {
	pw      *io.PipeWriter
	errChan chan error
	done    bool
	err     error
}

func (w *storWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, errWriterClosed
	}
	return w.pw.Write(p)
}

// Close ends the upload and returns the STOR result.
func (w *storWriter) Close() error {
	return w.CloseWithError(nil)
}

// CloseWithError aborts the upload; the server sees the data stream fail with cause.
func (w *storWriter) CloseWithError(cause error) error {
	if w.done {
		return w.err
	}
	w.done = true
	_ = w.pw.CloseWithError(cause)
	// after the writer is closed STOR should commit - check for error
	w.err = <-w.errChan
	return w.err
}

func init() {
	defaultConnGetter = getConn
}

var _ ftpxtypes.Client = (*Client)(nil)

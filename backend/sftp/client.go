package sftp

import (
	"errors"
	"io"
	"os"
	"path"

	_sftp "github.com/pkg/sftp"

	"github.com/c2fo/ftpx/options"
	"github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils/authority"
)

// Scheme is the URL scheme handled by this package.
const Scheme = "sftp"

var defaultClientGetter func(authority.Authority, Options) (*_sftp.Client, io.Closer, error)

// Client implements types.Client over an sftp session.  SFTP has no server side working directory, so
// ChangeDir and CurrentDir are tracked locally and relative paths are resolved against it.
type Client struct {
	authority  authority.Authority
	options    Options
	sftpclient *_sftp.Client
	sshConn    io.Closer
	cwd        string
}

// NewClient initializer for Client struct.  authorityStr is "user@host[:port]" and may carry an "sftp://" prefix.
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

// Connect dials and starts the sftp session unless one is already open.
func (c *Client) Connect() error {
	_, err := c.client()
	return err
}

func (c *Client) client() (*_sftp.Client, error) {
	if c == nil {
		return nil, errNilClient
	}
	if c.sftpclient == nil {
		client, conn, err := defaultClientGetter(c.authority, c.options)
		if err != nil {
			return nil, err
		}
		c.sftpclient = client
		c.sshConn = conn
	}
	return c.sftpclient, nil
}

// resolve returns p as an absolute, clean path.
func (c *Client) resolve(client *_sftp.Client, p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	if c.cwd == "" {
		c.cwd = "/"
		if wd, err := client.Getwd(); err == nil && path.IsAbs(wd) {
			c.cwd = path.Clean(wd)
		}
	}
	return path.Join(c.cwd, p)
}

// OpenRead opens p for reading.
func (c *Client) OpenRead(p string) (io.ReadCloser, error) {
	client, err := c.client()
	if err != nil {
		return nil, err
	}
	return client.Open(c.resolve(client, p))
}

// OpenWrite creates or truncates p.  Data is committed as it is written.
func (c *Client) OpenWrite(p string) (io.WriteCloser, error) {
	client, err := c.client()
	if err != nil {
		return nil, err
	}
	return client.OpenFile(c.resolve(client, p), os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// List returns the children of p.
func (c *Client) List(p string) ([]types.Entry, error) {
	client, err := c.client()
	if err != nil {
		return nil, err
	}

	dir := c.resolve(client, p)
	infos, err := client.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]types.Entry, 0, len(infos))
	for _, fi := range infos {
		if fi.Name() == "." || fi.Name() == ".." {
			continue
		}
		entries = append(entries, types.Entry{
			Path: path.Join(dir, fi.Name()),
			Name: fi.Name(),
			Kind: kindOf(fi.Mode()),
			Size: uint64(max(fi.Size(), 0)),
		})
	}
	return entries, nil
}

func kindOf(m os.FileMode) types.Kind {
	switch {
	case m.IsRegular():
		return types.KindFile
	case m.IsDir():
		return types.KindDirectory
	case m&os.ModeSymlink != 0:
		return types.KindLink
	default:
		return types.KindUnknown
	}
}

// DirectoryExists reports whether p exists and is a directory.
func (c *Client) DirectoryExists(p string) (bool, error) {
	client, err := c.client()
	if err != nil {
		return false, err
	}

	fi, err := client.Stat(c.resolve(client, p))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}

// MakeDir creates a single directory.
func (c *Client) MakeDir(p string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	return client.Mkdir(c.resolve(client, p))
}

// DeleteFile removes a single file.
func (c *Client) DeleteFile(p string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	return client.Remove(c.resolve(client, p))
}

// DeleteDirectory removes p.  When recursive is false p must be empty.
func (c *Client) DeleteDirectory(p string, recursive bool) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	if recursive {
		return client.RemoveAll(c.resolve(client, p))
	}
	return client.RemoveDirectory(c.resolve(client, p))
}

// CurrentDir returns the directory relative paths are resolved against.
func (c *Client) CurrentDir() (string, error) {
	client, err := c.client()
	if err != nil {
		return "", err
	}
	return c.resolve(client, "."), nil
}

// ChangeDir sets the directory relative paths are resolved against.  p must be an existing directory.
func (c *Client) ChangeDir(p string) error {
	client, err := c.client()
	if err != nil {
		return err
	}

	dir := c.resolve(client, p)
	fi, err := client.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: errNotDirectory}
	}
	c.cwd = dir
	return nil
}

// Close ends the sftp session and the ssh connection under it.  Closing a client that never connected is a no-op.
func (c *Client) Close() error {
	if c == nil || c.sftpclient == nil {
		return nil
	}

	err := c.sftpclient.Close()
	if c.sshConn != nil {
		if cerr := c.sshConn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	c.sftpclient = nil
	c.sshConn = nil
	c.cwd = ""
	return err
}

func init() {
	defaultClientGetter = getClient
}

var _ types.Client = (*Client)(nil)

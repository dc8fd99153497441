package sftp

import (
	"io"

	_sftp "github.com/pkg/sftp"

	"github.com/c2fo/ftpx/options"
)

const (
	optionNameSFTPClient = "sftpclient"
	optionNameOptions    = "options"
)

// WithClient returns clientOpt implementation of NewOption
//
// WithClient is used to explicitly specify an sftp session to use.  conn, if not nil, is closed after the session
// when the Client is closed; pass the *ssh.Client the session was created from.
func WithClient(client *_sftp.Client, conn io.Closer) options.NewOption[Client] {
	return &clientOpt{
		client: client,
		conn:   conn,
	}
}

type clientOpt struct {
	client *_sftp.Client
	conn   io.Closer
}

func (o *clientOpt) Apply(c *Client) {
	c.sftpclient = o.client
	c.sshConn = o.conn
}

func (o *clientOpt) NewOptionName() string {
	return optionNameSFTPClient
}

// WithOptions returns optionsOpt implementation of NewOption
//
// WithOptions is used to specify authentication and host key settings used when the client connects.
func WithOptions(opts Options) options.NewOption[Client] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(c *Client) {
	c.options = o.options
}

func (o *optionsOpt) NewOptionName() string {
	return optionNameOptions
}

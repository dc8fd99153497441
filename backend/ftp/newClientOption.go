package ftp

import (
	"github.com/c2fo/ftpx/backend/ftp/types"
	"github.com/c2fo/ftpx/options"
)

const (
	optionNameServerConn = "serverconn"
	optionNameOptions    = "options"
)

// WithServerConn returns serverConnOpt implementation of NewOption
//
// WithServerConn is used to explicitly specify an already logged in connection, ie a *jlaffaye/ftp.ServerConn
// wrapped to satisfy types.ServerConn, or a mock.
func WithServerConn(conn types.ServerConn) options.NewOption[Client] {
	return &serverConnOpt{
		conn: conn,
	}
}

type serverConnOpt struct {
	conn types.ServerConn
}

func (o *serverConnOpt) Apply(c *Client) {
	c.conn = o.conn
}

func (o *serverConnOpt) NewOptionName() string {
	return optionNameServerConn
}

// WithOptions returns optionsOpt implementation of NewOption
//
// WithOptions is used to specify the credentials and dial settings used when the client connects.
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

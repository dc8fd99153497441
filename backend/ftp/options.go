package ftp

import (
	"context"
	"crypto/tls"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpx/backend/ftp/types"
	"github.com/c2fo/ftpx/utils/authority"
)

const (
	envUsername    = "FTPX_FTP_USERNAME"
	envPassword    = "FTPX_FTP_PASSWORD"
	envProtocol    = "FTPX_FTP_PROTOCOL"
	envDisableEPSV = "FTPX_FTP_DISABLE_EPSV"

	// ProtocolFTP is plain, unencrypted FTP.
	ProtocolFTP = "FTP"
	// ProtocolFTPS is FTP over implicit TLS.
	ProtocolFTPS = "FTPS"
	// ProtocolFTPES is FTP upgraded to TLS with AUTH TLS (explicit TLS).
	ProtocolFTPES = "FTPES"

	defaultPort     = 21
	defaultUsername = "anonymous"
	defaultPassword = "anonymous"
)

// Options holds ftp-specific connection settings.  Zero values fall back to env vars, then defaults.
type Options struct {
	UserName    string        // env var FTPX_FTP_USERNAME
	Password    string        // env var FTPX_FTP_PASSWORD
	Protocol    string        // env var FTPX_FTP_PROTOCOL (FTP[default], FTPS, FTPES)
	DisableEPSV *bool         // env var FTPX_FTP_DISABLE_EPSV
	DebugWriter io.Writer     // receives the raw FTP command conversation
	TLSConfig   *tls.Config   // used for FTPS and FTPES
	DialTimeout time.Duration // timeout for connecting only
}

func getConn(ctx context.Context, a authority.Authority, opts Options) (types.ServerConn, error) {
	c, err := _ftp.Dial(fetchHostPortString(a), fetchDialOptions(ctx, a, opts)...)
	if err != nil {
		return nil, err
	}

	if err := c.Login(fetchUsername(a, opts), fetchPassword(opts)); err != nil {
		_ = c.Quit()
		return nil, err
	}

	return &serverConn{ServerConn: c}, nil
}

// serverConn adapts *_ftp.ServerConn to types.ServerConn.
type serverConn struct {
	*_ftp.ServerConn
}

func (c *serverConn) Retr(p string) (io.ReadCloser, error) {
	resp, err := c.ServerConn.Retr(p)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func fetchUsername(a authority.Authority, opts Options) string {
	username := defaultUsername
	if val, ok := os.LookupEnv(envUsername); ok && val != "" {
		username = val
	}
	if user := a.UserInfo().Username(); user != "" {
		username = user
	}
	if opts.UserName != "" {
		username = opts.UserName
	}
	return username
}

func fetchPassword(opts Options) string {
	password := defaultPassword
	if val, ok := os.LookupEnv(envPassword); ok {
		password = val
	}
	if opts.Password != "" {
		password = opts.Password
	}
	return password
}

func fetchHostPortString(a authority.Authority) string {
	return a.DialAddress(defaultPort)
}

func fetchProtocol(opts Options) string {
	protocol := ProtocolFTP
	if val, ok := os.LookupEnv(envProtocol); ok {
		protocol = strings.ToUpper(val)
	}
	if opts.Protocol != "" {
		protocol = strings.ToUpper(opts.Protocol)
	}
	return protocol
}

func isDisableOption(opts Options) bool {
	if opts.DisableEPSV != nil {
		return *opts.DisableEPSV
	}
	if val, ok := os.LookupEnv(envDisableEPSV); ok {
		disabled, err := strconv.ParseBool(val)
		return err == nil && disabled
	}
	return false
}

func fetchTLSConfig(a authority.Authority, opts Options) *tls.Config {
	if opts.TLSConfig != nil {
		return opts.TLSConfig
	}
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true, //nolint:gosec
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
		ServerName:         a.Host(),
	}
}

func fetchDialOptions(ctx context.Context, a authority.Authority, opts Options) []_ftp.DialOption {
	// always use context, disable EPSV if opt is true
	dialOptions := []_ftp.DialOption{
		_ftp.DialWithContext(ctx),
		_ftp.DialWithDisabledEPSV(isDisableOption(opts)),
	}

	switch fetchProtocol(opts) {
	case ProtocolFTPS:
		dialOptions = append(dialOptions, _ftp.DialWithTLS(fetchTLSConfig(a, opts)))
	case ProtocolFTPES:
		dialOptions = append(dialOptions, _ftp.DialWithExplicitTLS(fetchTLSConfig(a, opts)))
	}

	if opts.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(opts.DebugWriter))
	}

	if opts.DialTimeout > 0 {
		dialOptions = append(dialOptions, _ftp.DialWithTimeout(opts.DialTimeout))
	}

	return dialOptions
}

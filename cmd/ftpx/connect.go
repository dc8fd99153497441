package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"

	"github.com/c2fo/ftpx/backend/ftp"
	"github.com/c2fo/ftpx/backend/sftp"
	"github.com/c2fo/ftpx/types"
)

var errMissingURL = errors.New("a server url is required, use --url or the config file")

// newClient picks the backend from the url scheme.  A password in the url overrides the configured one.
func newClient(cfg *Config) (types.Client, error) {
	if cfg.URL == "" {
		return nil, errMissingURL
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: no host", cfg.URL)
	}
	password, hasPassword := u.User.Password()

	// the backends only need user@host:port
	authority := u.Host
	if u.User != nil && u.User.Username() != "" {
		authority = url.User(u.User.Username()).String() + "@" + u.Host
	}

	switch scheme := strings.ToLower(u.Scheme); scheme {
	case ftp.Scheme, "ftps", "ftpes":
		opts := ftp.Options{
			DisableEPSV: cfg.FTP.DisableEPSV,
			DialTimeout: cfg.FTP.DialTimeout,
			Protocol:    cfg.FTP.Protocol,
		}
		if scheme != ftp.Scheme {
			opts.Protocol = strings.ToUpper(scheme)
		}
		if hasPassword {
			opts.Password = password
		}
		if cfg.FTP.Debug {
			opts.DebugWriter = os.Stderr
		}
		return ftp.NewClient(authority, ftp.WithOptions(opts))
	case sftp.Scheme:
		opts := cfg.SFTP.Options
		if hasPassword {
			opts.Password = password
		}
		if cfg.SFTP.InsecureKnownHosts {
			opts.KnownHostsCallback = ssh.InsecureIgnoreHostKey() //nolint:gosec
		}
		return sftp.NewClient(authority, sftp.WithOptions(opts))
	default:
		return nil, fmt.Errorf("unsupported scheme %q, expected ftp, ftps, ftpes or sftp", u.Scheme)
	}
}

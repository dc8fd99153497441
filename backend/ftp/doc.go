/*
Package ftp - FTP client adapter for the ftpx transfer helpers, built on github.com/jlaffaye/ftp.

# Usage

	  import (
		  "github.com/c2fo/ftpx"
		  "github.com/c2fo/ftpx/backend/ftp"
	  )

	  func DoSomething() error {
		  client, err := ftp.NewClient("myuser@server.com:21",
			  ftp.WithOptions(ftp.Options{
				  Password:    "s3cr3t",
				  Protocol:    ftp.ProtocolFTPES,
				  DialTimeout: 15 * time.Second,
			  }),
		  )
		  if err != nil {
			  return err
		  }
		  defer client.Close()

		  return ftpx.NewTransfer(client).DownloadDirectory("/outbound", "/tmp/outbound")
	  }

The connection is dialed lazily when the first command is sent, so options may be changed until then.  Call
Connect to dial up front and fail fast on bad credentials.

A Client owns one control connection.  A reader returned by OpenRead or a writer returned by OpenWrite must be
closed before the next command is issued.

# Authentication

## USERNAME

User may be set in the authority ("myuser@server.com"), via Options.UserName or via the env var
*FTPX_FTP_USERNAME*.  Default is "anonymous".  Options.UserName wins over the authority, which wins over the env var.

## PASSWORD

Passwords may be passed via Options.Password or via the environmental variable *FTPX_FTP_PASSWORD*.  If no password
is provided, default is "anonymous".  Password precedence is default, env var, Options.Password.

# Protocol

FTP (unencrypted), FTPS (implicit TLS), and FTPES (explicit TLS) are supported.  Protocol can be set by env var
*FTPX_FTP_PROTOCOL* or in Options.Protocol.  Options values take precedence over env vars.

By default, FTPS and FTPES use the following TLS configuration but can be overridden (recommended) with
Options.TLSConfig:

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true,
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
		ServerName:         hostname,
	}

# Other Options

DebugWriter *io.Writer* - captures FTP command details to any writer.

DialTimeout *time.Duration* - sets timeout for connecting only.

DisableEPSV *bool - Extended Passive mode (EPSV) is attempted by default. Set to true to use regular Passive mode
(PASV).  Env var *FTPX_FTP_DISABLE_EPSV* accepts any strconv.ParseBool value.
*/
package ftp

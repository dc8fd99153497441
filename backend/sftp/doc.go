/*
Package sftp - SFTP client adapter for the ftpx transfer helpers, built on github.com/pkg/sftp.

# Usage

	  import (
		  "github.com/c2fo/ftpx"
		  "github.com/c2fo/ftpx/backend/sftp"
	  )

	  func DoSomething() error {
		  client, err := sftp.NewClient("myuser@server.com:22",
			  sftp.WithOptions(sftp.Options{
				  KeyFilePath:   "~/.ssh/id_rsa",
				  KeyPassphrase: "s3cr3t",
			  }),
		  )
		  if err != nil {
			  return err
		  }
		  defer client.Close()

		  return ftpx.NewTransfer(client).UploadDirectory("/inbound", "/tmp/outbound", true)
	  }

To use an existing session, for instance one created over an ssh connection you manage yourself:

	  sshClient, err := ssh.Dial("tcp", "server.com:22", &ssh.ClientConfig{
		  User:            "someuser",
		  Auth:            []ssh.AuthMethod{ssh.Password("mypassword")},
		  HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	  })
	  #handle error
	  session, err := _sftp.NewClient(sshClient)
	  #handle error

	  client, err := sftp.NewClient("someuser@server.com", sftp.WithClient(session, sshClient))

SFTP has no server side working directory.  ChangeDir validates the target and records it; relative paths passed
to any other method are resolved against it.

# Authentication

The connection is made lazily, on the first command or on Connect.  User is taken from the authority section.

	 scheme             host
	 __/             ___/____  port
	/  \            /        \ /\
	sftp://someuser@server.com:22/path/to/file.txt
	       \____________________/ \______________/
	       \______/       \               \
	           /     authority section    path
	     username

Either a password or an ssh key, with or without a passphrase, is accepted.

## PASSWORD/PASSPHRASE

Passwords may be passed via Options.Password or via the environmental variable FTPX_SFTP_PASSWORD.

SSH keys may be passed via Options.KeyFilePath and (optionally) Options.KeyPassphrase.  They can also be passed via
environmental variables FTPX_SFTP_KEYFILE and FTPX_SFTP_KEYFILE_PASSPHRASE, respectively.  A leading "~" in the key
path is expanded to the user's home directory.

## KNOWN HOSTS

Known hosts ensures that the server you're connecting to hasn't been somehow redirected to another server.  Handling
for this can be accomplished via:
 1. Options.KnownHostsString which accepts a string.
 2. Options.KnownHostsFile or environmental variable FTPX_SFTP_KNOWN_HOSTS_FILE which accepts a path to a known_hosts file.
 3. Options.KnownHostsCallback which allows you to specify any ssh.HostKeyCallback.  Environmental variable
    FTPX_SFTP_INSECURE_KNOWN_HOSTS will set this callback function to ssh.InsecureIgnoreHostKey which may be helpful
    for testing but should not be used in production.
 4. Defaults to trying to find and use <homedir>/.ssh/known_hosts.  For unix, system-wide location
    /etc/ssh/ssh_known_hosts is also checked.

# Other Options

HostKeyAlgorithms, Ciphers, MACs and KeyExchanges each replace the corresponding default list when set.

DialTimeout *time.Duration* - sets timeout for connecting only.
*/
package sftp

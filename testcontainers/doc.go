/*
Package testcontainers runs the ftpx transfer helpers against real servers.  It uses the local Docker daemon to start
vsftpd and atmoz/sftp containers and hands back connected clients.

Backends can reuse RunTransferTests against any types.Client:

	//go:build linux

	func TestMyBackend(t *testing.T) {
	    client := newMyClient(t)
	    testcontainers.RunTransferTests(t, client, "/writable/base")
	}
*/
package testcontainers

package testcontainers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c2fo/ftpx/backend/ftp"
)

const (
	vsftpdPort     = "21/tcp"
	vsftpdUsername = "admin"
	vsftpdPassword = "dummy"
)

// StartVSFTPD runs a vsftpd server and returns a client logged in to it.  The user's home, and so the base
// directory for tests, is "/".
func StartVSFTPD(t *testing.T) *ftp.Client {
	t.Helper()
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "ftpx-vsftpd",
			Image:        "fauria/vsftpd:latest",
			ExposedPorts: []string{"21", "21100-21110:21100-21110"},
			Env:          map[string]string{"FTP_USER": vsftpdUsername, "FTP_PASS": vsftpdPassword},
			WaitingFor:   wait.ForListeningPort(vsftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, vsftpdPort)
	is.NoError(err)

	client, err := ftp.NewClient(vsftpdUsername+"@"+host+":"+port.Port(),
		ftp.WithOptions(ftp.Options{Password: vsftpdPassword}),
	)
	is.NoError(err)
	is.NoError(client.Connect(ctx))
	t.Cleanup(func() { _ = client.Close() })

	return client
}

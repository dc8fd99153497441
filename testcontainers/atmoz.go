package testcontainers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/ssh"

	"github.com/c2fo/ftpx/backend/sftp"
)

const (
	atmozPort     = "22/tcp"
	atmozUsername = "dummy"
	atmozPassword = "dummy"
	// AtmozBase is the writable directory of the atmoz user.
	AtmozBase = "/upload"
)

// StartAtmoz runs an atmoz/sftp server and returns a client connected to it.  Only AtmozBase is writable.
func StartAtmoz(t *testing.T) *sftp.Client {
	t.Helper()
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:       "ftpx-atmoz-sftp",
			Image:      "atmoz/sftp:alpine",
			Env:        map[string]string{"SFTP_USERS": fmt.Sprintf("%s:%s:::upload", atmozUsername, atmozPassword)},
			WaitingFor: wait.ForListeningPort(atmozPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, atmozPort)
	is.NoError(err)

	client, err := sftp.NewClient(atmozUsername+"@"+host+":"+port.Port(), sftp.WithOptions(sftp.Options{
		Password:           atmozPassword,
		KnownHostsCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
	}))
	is.NoError(err)
	is.NoError(client.Connect())
	t.Cleanup(func() { _ = client.Close() })

	return client
}

package ftpx

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/c2fo/ftpx/options"
	"github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils"
)

const (
	// MaxCacheSize is the capacity of the in-memory download cache, 2 MiB.
	MaxCacheSize = 2097152
	// BufferSize is the size of a single read in every copy loop, 2 KiB.
	BufferSize = 2048
)

// Transfer runs the transfer helpers against a single client connection.
type Transfer struct {
	client types.Client
	logger *zap.Logger
}

// NewTransfer initializer for Transfer struct.
func NewTransfer(client types.Client, opts ...options.NewOption[Transfer]) *Transfer {
	t := &Transfer{
		client: client,
		logger: zap.NewNop(),
	}

	// apply options
	options.ApplyOptions(t, opts...)

	return t
}

// Client returns the underlying client.
func (t *Transfer) Client() types.Client {
	return t.client
}

func (t *Transfer) validate() error {
	if t == nil || t.client == nil {
		return errClientRequired
	}
	return nil
}

// requireRemoteDir fails with ErrRemoteNotExist unless dir exists on the server.
func (t *Transfer) requireRemoteDir(dir string) error {
	exists, err := t.client.DirectoryExists(dir)
	if err != nil {
		return utils.WrapExistsError(err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrRemoteNotExist, dir)
	}
	return nil
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

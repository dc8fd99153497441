// Package types holds the client abstraction the transfer helpers are written against.
package types

import (
	"io"
)

// Kind represents the type of a remote filesystem object.
type Kind int

const (
	// KindUnknown denotes an object whose type the server did not report in a way we understand
	KindUnknown Kind = iota
	// KindFile denotes a regular file
	KindFile
	// KindDirectory denotes a directory
	KindDirectory
	// KindLink denotes a symbolic link
	KindLink
)

// String returns a lowercase name for the kind, ie "file".
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindLink:
		return "symbolic link"
	default:
		return "unknown"
	}
}

// Entry describes one remote object as returned by Client.List.
type Entry struct {
	// Path is the absolute remote path of the object.
	Path string
	// Name is the last element of Path.
	Name string
	Kind Kind
	Size uint64
}

// Client is the set of remote capabilities the transfer helpers need.  Implementations exist for
// FTP (backend/ftp) and SFTP (backend/sftp); tests use mocks.Client.
type Client interface {
	OpenRead(path string) (io.ReadCloser, error)
	// OpenWrite returns a writer that creates or replaces the remote file.  The upload is only
	// complete once Close returns without error.
	OpenWrite(path string) (io.WriteCloser, error)
	List(path string) ([]Entry, error)
	DirectoryExists(path string) (bool, error)
	MakeDir(path string) error
	DeleteFile(path string) error
	DeleteDirectory(path string, recursive bool) error
	CurrentDir() (string, error)
	ChangeDir(path string) error
	Close() error
}

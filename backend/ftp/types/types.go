package types

import (
	"io"

	_ftp "github.com/jlaffaye/ftp"
)

// ServerConn is the part of a jlaffaye/ftp control connection the ftp Client relies on.  It exists to make the
// Client easier to test; Retr returns a plain io.ReadCloser so the response stream can be faked.
type ServerConn interface {
	ChangeDir(path string) error
	CurrentDir() (string, error)
	Delete(path string) error
	List(path string) ([]*_ftp.Entry, error)
	Login(user string, password string) error
	MakeDir(path string) error
	Quit() error
	RemoveDir(path string) error
	RemoveDirRecur(path string) error
	Retr(path string) (io.ReadCloser, error)
	Stor(path string, r io.Reader) error
}

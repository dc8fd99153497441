// Package utils holds the small path and stream helpers shared by the transfer helper and its backends.
package utils

import (
	"errors"
	"io"
	"path"
	"regexp"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

var errEmptyBuffer = errors.New("copy buffer must not be empty")

// EnsureTrailingSlash adds a trailing slash if needed.  Remote paths always use /, never a Windows separator.
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// JoinRemotePath returns the remote path of name inside dir, ie "/some/dir" + "file.txt" = "/some/dir/file.txt".
func JoinRemotePath(dir, name string) string {
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}

// ParentRemotePath splits an absolute remote path into its parent directory (with trailing slash) and base name.
// The parent of "/" is "/".
func ParentRemotePath(p string) (parent, base string) {
	clean := path.Clean(EnsureLeadingSlash(p))
	if clean == "/" {
		return "/", ""
	}
	return EnsureTrailingSlash(path.Dir(clean)), path.Base(clean)
}

// CopyBuffered copies src to dst one len(buf) chunk at a time, writing each chunk as soon as it has been read.
// Unlike io.CopyBuffer it never hands off to io.WriterTo or io.ReaderFrom, so no Write carries more than len(buf)
// bytes and only buf[:n] of the most recent read is ever written.  io.EOF ends the copy and is not returned.
func CopyBuffered(dst io.Writer, src io.Reader, buf []byte) (int64, error) {
	if len(buf) == 0 {
		return 0, errEmptyBuffer
	}

	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, WrapWriteError(werr)
			}
			if w != n {
				return written, WrapWriteError(io.ErrShortWrite)
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, WrapReadError(rerr)
		}
	}
}

package ftpx

import (
	"io"

	"github.com/c2fo/ftpx/utils"
)

// downloadCache is a fixed-capacity accumulation buffer with an explicit length cursor.  It is reset in place
// after every flush and never reallocated.
type downloadCache struct {
	buf []byte
	n   int
}

func newDownloadCache(size int) *downloadCache {
	return &downloadCache{buf: make([]byte, size)}
}

// fits reports whether n more bytes can be appended without exceeding the capacity.
func (c *downloadCache) fits(n int) bool {
	return c.n+n <= len(c.buf)
}

// append copies p behind the cached bytes.  Callers check fits first.
func (c *downloadCache) append(p []byte) {
	c.n += copy(c.buf[c.n:], p)
}

// Len returns the number of bytes waiting to be flushed.
func (c *downloadCache) Len() int {
	return c.n
}

// flush writes the cached bytes to w in a single Write and empties the cache.  An empty cache writes nothing.
func (c *downloadCache) flush(w io.Writer) (int, error) {
	if c.n == 0 {
		return 0, nil
	}
	n, err := w.Write(c.buf[:c.n])
	if err == nil && n != c.n {
		err = io.ErrShortWrite
	}
	c.n = 0
	return n, err
}

// copyCached moves src to dst through the cache.  Before a chunk is appended the cache is flushed if the chunk
// would not fit; at end of stream the cache is flushed one last time.
func copyCached(dst io.Writer, src io.Reader, buf []byte, cache *downloadCache) (int64, error) {
	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if !cache.fits(n) {
				w, err := cache.flush(dst)
				written += int64(w)
				if err != nil {
					return written, utils.WrapWriteError(err)
				}
			}
			cache.append(buf[:n])
		}

		if rerr == io.EOF {
			w, err := cache.flush(dst)
			written += int64(w)
			if err != nil {
				return written, utils.WrapWriteError(err)
			}
			return written, nil
		}
		if rerr != nil {
			return written, utils.WrapReadError(rerr)
		}
	}
}

package ftpx

import (
	"bytes"
	"errors"
	"io"
)

// recordingWriter keeps every Write call it receives.
type recordingWriter struct {
	buf      bytes.Buffer
	writes   []int
	closed   bool
	closeErr error
	writeErr error
	abortErr error
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	w.writes = append(w.writes, len(p))
	return w.buf.Write(p)
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return w.closeErr
}

// abortableWriter is a recordingWriter that can be closed with an error, like io.PipeWriter.
type abortableWriter struct {
	recordingWriter
}

func (w *abortableWriter) CloseWithError(err error) error {
	w.closed = true
	w.abortErr = err
	return w.closeErr
}

// trackingReader is an in-memory io.ReadCloser that remembers whether it was closed.
type trackingReader struct {
	*bytes.Reader
	closed bool
}

func newTrackingReader(data []byte) *trackingReader {
	return &trackingReader{Reader: bytes.NewReader(data)}
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

// failingReader returns data once, then err.
type failingReader struct {
	data []byte
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

var errSomething = errors.New("something went wrong")

func payload(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

var _ io.WriteCloser = (*recordingWriter)(nil)

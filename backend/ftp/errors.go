package ftp

type clientErr string

func (e clientErr) Error() string { return string(e) }

const errNilClient = clientErr("non-nil ftp.Client pointer is required")
const errWriterClosed = clientErr("ftp writer is already closed")

package sftp

type clientErr string

func (e clientErr) Error() string { return string(e) }

const errNilClient = clientErr("non-nil sftp.Client pointer is required")
const errNotDirectory = clientErr("not a directory")

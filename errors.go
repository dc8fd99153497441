package ftpx

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidArgument - a required argument was nil or empty
	ErrInvalidArgument = Error("invalid argument")

	// ErrInvalidFile - only remote objects of kind file can be downloaded
	ErrInvalidFile = Error("invalid file")

	// ErrRemoteNotExist - a remote directory required by the operation does not exist
	ErrRemoteNotExist = Error("remote directory does not exist")

	// ErrLocalNotExist - a local directory required by the operation does not exist
	ErrLocalNotExist = Error("local directory does not exist")

	errClientRequired = Error("non-nil ftpx.Transfer with a client is required")
)

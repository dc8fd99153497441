package utils

import "fmt"

// WrapOpenError returns a wrapped open error
func WrapOpenError(err error) error {
	return fmt.Errorf("open error: %w", err)
}

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	return fmt.Errorf("read error: %w", err)
}

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error {
	return fmt.Errorf("write error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	return fmt.Errorf("close error: %w", err)
}

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return fmt.Errorf("exists error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapMakeDirError returns a wrapped make dir error
func WrapMakeDirError(err error) error {
	return fmt.Errorf("make dir error: %w", err)
}

// WrapChangeDirError returns a wrapped change dir error
func WrapChangeDirError(err error) error {
	return fmt.Errorf("change dir error: %w", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return fmt.Errorf("delete error: %w", err)
}

package inspector

import (
	"errors"
	"fmt"
)

var ErrSourceFileUnreadable = errors.New("source file unreadable")

// SourceFileError is returned when the file to inspect cannot be read.
type SourceFileError struct {
	Path string
	Err  error
}

func (e *SourceFileError) Error() string {
	return fmt.Sprintf("failed to read source file %s: %v", e.Path, e.Err)
}

func (e *SourceFileError) Unwrap() error {
	return e.Err
}

func (e *SourceFileError) Is(target error) bool {
	return target == ErrSourceFileUnreadable
}

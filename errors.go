// errors.go
package aptworld

import "fmt"

// Error wraps an error with the operation and file that produced it
type Error struct {
	Op   string // Operation that failed
	Path string // File involved, if any
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

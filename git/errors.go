package git

// Error wraps a failed git operation with context.
type Error struct {
	Op  string // Operation that failed (e.g., "clone", "ls-remote")
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

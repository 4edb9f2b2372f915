package kernel

// Error describes a module-tagged error. Each package that can fail defines
// its error values once as package-level variables so that error paths never
// allocate; callers compare against those pointers to detect a particular
// failure.
type Error struct {
	// The name of the module where the error occurred.
	Module string

	// The error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Module + ": " + e.Message
}

package window

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

var (
	ErrWindowCreationFailed  = WindowError{Message: "failed to create application window"}
	ErrSessionCreationFailed = WindowError{Message: "failed to create network session"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}

package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACFatalLogMsg is used if the app or cfg pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"
)

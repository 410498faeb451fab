package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if no application name was configured.
	ErrAppNameIsEmpty = errors.New("logger config AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if no service name was configured.
	ErrServiceNameIsEmpty = errors.New("logger config ServiceName can not be empty")
)

// ErrorHandler reports log events zerolog could not write.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "zerolog: could not write event: %v\n", err)
}

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")
)

// errorOut receives events zerolog failed to write.
var errorOut io.Writer = os.Stderr //nolint:gochecknoglobals

// ErrorHandler reports a log event that could not be written. Init installs
// it as zerolog.ErrorHandler.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(errorOut, "zonechange: could not write log event: %v\n", err)
}

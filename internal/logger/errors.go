package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned by Init without [Log] AppName, the "app"
	// field of every log line.
	ErrAppNameIsEmpty = errors.New("log: [Log] AppName is missing, it names the app field of each line")

	// ErrServiceNameIsEmpty is returned by Init without [Log] ServiceName, the
	// label of the log event counters.
	ErrServiceNameIsEmpty = errors.New("log: [Log] ServiceName is missing, it labels the log event metrics")
)

// ErrorHandler reports events zerolog could not write, e.g. a full disk below
// the rolling log files.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "nosytlabs-site: dropped log event: %v\n", err)
}

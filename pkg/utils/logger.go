// Package utils provides a configurable logger shared by the circuit tools
//
// The root logger uses github.com/rs/zerolog with a console writer. It is
// a no-op under `go test` so parser tests stay quiet.
package utils

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows overriding the global logger
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// SetLevel sets the verbosity of the global logger
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Logger returns the global logger
func Logger() zerolog.Logger {
	return logger
}

// Package errors provides cleanup and failure helpers shared by the generator.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DeferClose closes an io.Closer and logs a failure instead of dropping it.
func DeferClose(logger zerolog.Logger, closer io.Closer, msg string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn().Err(err).Msg(msg)
	}
}

// DeferRemove deletes a leftover temporary file.
// A missing file is expected once the file has been renamed into place.
func DeferRemove(logger zerolog.Logger, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Str("path", path).Msg("failed to remove temporary file")
	}
}

// Must panics if err is not nil.
// Use only during package initialisation, where failure must stop the program.
func Must(err error, msg string) {
	if err != nil {
		panic(fmt.Sprintf("%s: %v", msg, err))
	}
}

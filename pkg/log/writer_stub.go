//go:build !android

package log

import (
	"io"
	"os"
)

// platformWriter returns the default log writer for non-Android builds.
func platformWriter(string) io.Writer {
	return os.Stderr
}

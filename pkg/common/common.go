// Package common has the exit codes used by the commands and a helper
// for tests that need a file on disk.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns the
// filename. pattern is as for os.CreateTemp, so a trailing "*.gz"
// gives a name ending in .gz. The caller removes the file.
func WrtTemp(s, pattern string) (string, error) {
	if pattern == "" {
		pattern = "_del_me_testing"
	}
	f_tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

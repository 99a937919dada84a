package tmplloader

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"
)

// FileChecker tests whether a candidate template file exists.
// A missing file is (false, nil); any other failure is returned as an error.
type FileChecker interface {
	Exists(path string) (bool, error)
}

// FileCheckerFunc adapts a function to the FileChecker interface.
type FileCheckerFunc func(path string) (bool, error)

// Exists calls f(path).
func (f FileCheckerFunc) Exists(path string) (bool, error) {
	return f(path)
}

// OSFileChecker checks paths on the local filesystem.
type OSFileChecker struct{}

// Exists stats the path. Directories count as existing, matching the
// host's file_exists semantics.
func (OSFileChecker) Exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FSFileChecker checks paths inside an fs.FS. Leading slashes are dropped
// and the path cleaned, so search paths like "/theme/templates/" map onto
// FS-relative names.
type FSFileChecker struct {
	FS fs.FS
}

// Exists stats the cleaned, FS-relative form of p.
func (c FSFileChecker) Exists(p string) (bool, error) {
	name := path.Clean(strings.TrimLeft(p, "/"))
	if !fs.ValidPath(name) {
		return false, nil
	}
	_, err := fs.Stat(c.FS, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

var (
	_ FileChecker = OSFileChecker{}
	_ FileChecker = FSFileChecker{}
	_ FileChecker = FileCheckerFunc(nil)
)

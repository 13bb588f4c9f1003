// Package fileops provides convenience helpers for working with files,
// directories, and temporary paths.
package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ghetzel/go-stockutil/fileutil"
	"github.com/ghetzel/go-stockutil/pathutil"
)

// Return whether the given path exists (file or directory).
func Exists(path string) bool {
	_, err := os.Stat(fileutil.MustExpandUser(path))
	return err == nil
}

// Return whether the given path exists and is a regular file.
func IsFile(path string) bool {
	return fileutil.FileExists(fileutil.MustExpandUser(path))
}

// Return whether the given path exists and is a directory.
func IsDir(path string) bool {
	return fileutil.DirExists(fileutil.MustExpandUser(path))
}

// EnsureDir creates the given directory (and any missing parents) if it does
// not already exist.
func EnsureDir(path string) error {
	if expanded, err := pathutil.ExpandUser(path); err == nil {
		return os.MkdirAll(expanded, 0755)
	} else {
		return err
	}
}

// Touch creates an empty file at the given path, creating parent directories
// as needed.  If the file already exists, its modification time is updated.
func Touch(path string) error {
	path = fileutil.MustExpandUser(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		defer file.Close()
		now := timeNow()
		return os.Chtimes(path, now, now)
	} else {
		return err
	}
}

// CopyFile copies the file at source to destination, preserving the source
// file mode.  The destination's parent directory is created if necessary.
func CopyFile(source string, destination string) error {
	source = fileutil.MustExpandUser(source)
	destination = fileutil.MustExpandUser(destination)

	if info, err := os.Stat(source); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("cannot copy non-regular file %q", source)
		}

		if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
			return err
		}

		if in, err := os.Open(source); err == nil {
			defer in.Close()

			if out, err := os.OpenFile(destination, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode()); err == nil {
				defer out.Close()
				_, err := io.Copy(out, in)
				return err
			} else {
				return err
			}
		} else {
			return err
		}
	} else {
		return err
	}
}

// CopyTree recursively copies the directory at source into destination.
func CopyTree(source string, destination string) error {
	source = fileutil.MustExpandUser(source)
	destination = fileutil.MustExpandUser(destination)

	return filepath.Walk(source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)

		if err != nil {
			return err
		}

		target := filepath.Join(destination, rel)

		if info.IsDir() {
			return os.MkdirAll(target, info.Mode())
		} else {
			return CopyFile(path, target)
		}
	})
}

// RemoveTree removes the given path and everything beneath it.  A path that
// does not exist is not an error.
func RemoveTree(path string) error {
	return os.RemoveAll(fileutil.MustExpandUser(path))
}

// ReadString returns the entire contents of the named file as a string.
func ReadString(path string) (string, error) {
	if data, err := os.ReadFile(fileutil.MustExpandUser(path)); err == nil {
		return string(data), nil
	} else {
		return ``, err
	}
}

// ReadLines returns the contents of the named file as a slice of lines with
// trailing newlines removed.
func ReadLines(path string) ([]string, error) {
	if data, err := ReadString(path); err == nil {
		data = strings.TrimSuffix(data, "\n")

		if data == `` {
			return []string{}, nil
		}

		return strings.Split(data, "\n"), nil
	} else {
		return nil, err
	}
}

// WriteString writes the given string to the named file, creating parent
// directories as needed.
func WriteString(path string, data string) error {
	path = fileutil.MustExpandUser(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(data), 0644)
}

// AppendString appends the given string to the named file, creating it if it
// does not exist.
func AppendString(path string, data string) error {
	path = fileutil.MustExpandUser(path)

	if file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
		defer file.Close()
		_, err := file.WriteString(data)
		return err
	} else {
		return err
	}
}

// Size returns the size (in bytes) of the named file.
func Size(path string) (int64, error) {
	if info, err := os.Stat(fileutil.MustExpandUser(path)); err == nil {
		return info.Size(), nil
	} else {
		return 0, err
	}
}

// TempFile creates a file in the system temporary directory whose name begins
// with prefix, writes data to it (if non-empty), and returns its path.
func TempFile(prefix string, data []byte) (string, error) {
	if file, err := os.CreateTemp(``, prefix); err == nil {
		defer file.Close()

		if len(data) > 0 {
			if _, err := file.Write(data); err != nil {
				return ``, err
			}
		}

		return file.Name(), nil
	} else {
		return ``, err
	}
}

// TempDir creates a directory in the system temporary directory whose name
// begins with prefix and returns its path.
func TempDir(prefix string) (string, error) {
	return os.MkdirTemp(``, prefix)
}

// ListDir returns the sorted names of entries in the given directory,
// optionally filtered by a glob pattern (gobwas/glob syntax).
func ListDir(path string, pattern ...string) ([]string, error) {
	var matcher glob.Glob

	if len(pattern) > 0 && pattern[0] != `` {
		if g, err := glob.Compile(pattern[0]); err == nil {
			matcher = g
		} else {
			return nil, err
		}
	}

	if entries, err := os.ReadDir(fileutil.MustExpandUser(path)); err == nil {
		names := make([]string, 0, len(entries))

		for _, entry := range entries {
			if matcher == nil || matcher.Match(entry.Name()) {
				names = append(names, entry.Name())
			}
		}

		sort.Strings(names)
		return names, nil
	} else {
		return nil, err
	}
}

// WalkMatch recursively walks root and returns the paths of all regular files
// whose base name matches the given glob pattern.
func WalkMatch(root string, pattern string) ([]string, error) {
	matcher, err := glob.Compile(pattern)

	if err != nil {
		return nil, err
	}

	found := make([]string, 0)

	err = filepath.Walk(fileutil.MustExpandUser(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && matcher.Match(filepath.Base(path)) {
			found = append(found, path)
		}

		return nil
	})

	return found, err
}

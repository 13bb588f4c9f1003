// Package archive creates and extracts zip and tar.gz archives.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghetzel/go-stockutil/log"
)

// Entry describes one file inside an archive.
type Entry struct {
	Name           string `json:"name"`
	Size           uint64 `json:"size"`
	CompressedSize uint64 `json:"compressed_size"`
}

// ZipCreate writes a zip archive containing the given files and directories.
// Directories are added recursively; entry names are relative to each
// source's parent.
func ZipCreate(destination string, sources ...string) error {
	if len(sources) == 0 {
		return fmt.Errorf("at least one source path is required")
	}

	file, err := os.Create(destination)

	if err != nil {
		return err
	}

	defer file.Close()

	writer := zip.NewWriter(file)

	for _, source := range sources {
		info, err := os.Stat(source)

		if err != nil {
			return err
		}

		base := filepath.Dir(source)

		if info.IsDir() {
			err = filepath.Walk(source, func(path string, info os.FileInfo, err error) error {
				if err != nil || info.IsDir() {
					return err
				}

				rel, err := filepath.Rel(base, path)

				if err != nil {
					return err
				}

				return zipAddFile(writer, path, filepath.ToSlash(rel))
			})
		} else {
			err = zipAddFile(writer, source, filepath.Base(source))
		}

		if err != nil {
			return err
		}
	}

	return writer.Close()
}

func zipAddFile(writer *zip.Writer, path string, name string) error {
	file, err := os.Open(path)

	if err != nil {
		return err
	}

	defer file.Close()

	if entry, err := writer.Create(name); err == nil {
		_, err := io.Copy(entry, file)
		return err
	} else {
		return err
	}
}

// ZipList returns the entries in the named zip archive.
func ZipList(source string) ([]Entry, error) {
	reader, err := zip.OpenReader(source)

	if err != nil {
		return nil, err
	}

	defer reader.Close()

	out := make([]Entry, 0, len(reader.File))

	for _, f := range reader.File {
		out = append(out, Entry{
			Name:           f.Name,
			Size:           f.UncompressedSize64,
			CompressedSize: f.CompressedSize64,
		})
	}

	return out, nil
}

// ZipExtract unpacks the named zip archive into the destination directory.
// Entries that would escape the destination are rejected.
func ZipExtract(source string, destination string) error {
	reader, err := zip.OpenReader(source)

	if err != nil {
		return err
	}

	defer reader.Close()

	if err := os.MkdirAll(destination, 0755); err != nil {
		return err
	}

	for _, f := range reader.File {
		target, err := safeJoin(destination, f.Name)

		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}

		src, err := f.Open()

		if err != nil {
			return err
		}

		dst, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)

		if err != nil {
			src.Close()
			return err
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()

		if err != nil {
			return err
		}

		log.Debugf("archive: extracted %s", f.Name)
	}

	return nil
}

// ZipAppend adds a file to an existing zip archive under the given entry
// name, rewriting the archive in place.
func ZipAppend(archivePath string, path string, name string) error {
	reader, err := zip.OpenReader(archivePath)

	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(archivePath), `.ziptmp-`)

	if err != nil {
		reader.Close()
		return err
	}

	writer := zip.NewWriter(tmp)
	failed := func(err error) error {
		reader.Close()
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	for _, f := range reader.File {
		if f.Name == name {
			return failed(fmt.Errorf("entry %q already exists", name))
		}

		src, err := f.Open()

		if err != nil {
			return failed(err)
		}

		dst, err := writer.Create(f.Name)

		if err != nil {
			src.Close()
			return failed(err)
		}

		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			return failed(err)
		}

		src.Close()
	}

	if err := zipAddFile(writer, path, name); err != nil {
		return failed(err)
	}

	if err := writer.Close(); err != nil {
		return failed(err)
	}

	reader.Close()

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), archivePath)
}

// safeJoin joins an archive entry name onto the destination directory,
// rejecting names that traverse outside it (zip-slip).
func safeJoin(destination string, name string) (string, error) {
	target := filepath.Join(destination, name)

	if !strings.HasPrefix(target, filepath.Clean(destination)+string(os.PathSeparator)) {
		return ``, fmt.Errorf("entry %q escapes the destination directory", name)
	}

	return target, nil
}

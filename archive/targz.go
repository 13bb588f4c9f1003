package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// TarGzCreate writes a gzip-compressed tarball of the source directory.
// Entry names are relative to the source.
func TarGzCreate(destination string, source string) error {
	file, err := os.Create(destination)

	if err != nil {
		return err
	}

	defer file.Close()

	gz := gzip.NewWriter(file)
	tw := tar.NewWriter(gz)

	err = filepath.Walk(source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)

		if err != nil {
			return err
		}

		if rel == `.` {
			return nil
		}

		header, err := tar.FileInfoHeader(info, ``)

		if err != nil {
			return err
		}

		header.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		src, err := os.Open(path)

		if err != nil {
			return err
		}

		defer src.Close()

		_, err = io.Copy(tw, src)
		return err
	})

	if err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return err
	}

	return gz.Close()
}

// TarGzExtract unpacks a gzip-compressed tarball into the destination
// directory.  Entries that would escape the destination are rejected.
func TarGzExtract(source string, destination string) error {
	file, err := os.Open(source)

	if err != nil {
		return err
	}

	defer file.Close()

	gz, err := gzip.NewReader(file)

	if err != nil {
		return err
	}

	defer gz.Close()

	if err := os.MkdirAll(destination, 0755); err != nil {
		return err
	}

	tr := tar.NewReader(gz)

	for {
		header, err := tr.Next()

		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		target, err := safeJoin(destination, header.Name)

		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}

			dst, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(header.Mode))

			if err != nil {
				return err
			}

			_, err = io.Copy(dst, tr)
			dst.Close()

			if err != nil {
				return err
			}
		}
	}
}

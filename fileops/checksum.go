package fileops

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"time"

	"github.com/ghetzel/go-stockutil/fileutil"
	"github.com/h2non/filetype"
)

var timeNow = time.Now

func hashFile(path string, hasher hash.Hash) (string, error) {
	if file, err := os.Open(fileutil.MustExpandUser(path)); err == nil {
		defer file.Close()

		if _, err := io.Copy(hasher, file); err == nil {
			return hex.EncodeToString(hasher.Sum(nil)), nil
		} else {
			return ``, err
		}
	} else {
		return ``, err
	}
}

// ChecksumMD5 returns the hex-encoded MD5 digest of the named file.
func ChecksumMD5(path string) (string, error) {
	return hashFile(path, md5.New())
}

// ChecksumSHA256 returns the hex-encoded SHA-256 digest of the named file.
func ChecksumSHA256(path string) (string, error) {
	return hashFile(path, sha256.New())
}

// SameContents returns whether two files have identical contents, compared by
// SHA-256 digest.
func SameContents(first string, second string) (bool, error) {
	if sumA, err := ChecksumSHA256(first); err == nil {
		if sumB, err := ChecksumSHA256(second); err == nil {
			return sumA == sumB, nil
		} else {
			return false, err
		}
	} else {
		return false, err
	}
}

// DetectType sniffs the first bytes of the named file and returns its detected
// MIME type and preferred extension, or "application/octet-stream" and an
// empty extension if the type is unknown.
func DetectType(path string) (string, string, error) {
	if file, err := os.Open(fileutil.MustExpandUser(path)); err == nil {
		defer file.Close()

		head := make([]byte, 262)

		if n, err := file.Read(head); err == nil || err == io.EOF {
			if kind, err := filetype.Match(head[:n]); err == nil {
				if kind == filetype.Unknown {
					return `application/octet-stream`, ``, nil
				}

				return kind.MIME.Value, kind.Extension, nil
			} else {
				return ``, ``, err
			}
		} else {
			return ``, ``, err
		}
	} else {
		return ``, ``, err
	}
}

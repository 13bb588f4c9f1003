package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, `sub`), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, `top.txt`), []byte(`top level`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, `sub`, `nested.txt`), []byte(`nested data`), 0644))

	return root
}

func TestZipRoundTrip(t *testing.T) {
	assert := require.New(t)
	root := makeTree(t)
	out := t.TempDir()

	archivePath := filepath.Join(out, `tree.zip`)
	assert.NoError(ZipCreate(archivePath, root))

	entries, err := ZipList(archivePath)
	assert.NoError(err)
	assert.Len(entries, 2)

	names := make([]string, len(entries))

	for i, entry := range entries {
		names[i] = entry.Name
		assert.NotZero(entry.Size)
	}

	base := filepath.Base(root)
	assert.Contains(names, base+`/top.txt`)
	assert.Contains(names, base+`/sub/nested.txt`)

	dest := filepath.Join(out, `extracted`)
	assert.NoError(ZipExtract(archivePath, dest))

	data, err := os.ReadFile(filepath.Join(dest, base, `sub`, `nested.txt`))
	assert.NoError(err)
	assert.Equal(`nested data`, string(data))
}

func TestZipCreateSingleFile(t *testing.T) {
	assert := require.New(t)
	out := t.TempDir()

	source := filepath.Join(out, `only.txt`)
	assert.NoError(os.WriteFile(source, []byte(`one file`), 0644))

	archivePath := filepath.Join(out, `one.zip`)
	assert.NoError(ZipCreate(archivePath, source))

	entries, err := ZipList(archivePath)
	assert.NoError(err)
	assert.Len(entries, 1)
	assert.Equal(`only.txt`, entries[0].Name)

	assert.Error(ZipCreate(filepath.Join(out, `empty.zip`)))
}

func TestZipAppend(t *testing.T) {
	assert := require.New(t)
	out := t.TempDir()

	first := filepath.Join(out, `first.txt`)
	second := filepath.Join(out, `second.txt`)
	assert.NoError(os.WriteFile(first, []byte(`first`), 0644))
	assert.NoError(os.WriteFile(second, []byte(`second`), 0644))

	archivePath := filepath.Join(out, `grow.zip`)
	assert.NoError(ZipCreate(archivePath, first))
	assert.NoError(ZipAppend(archivePath, second, `added/second.txt`))

	entries, err := ZipList(archivePath)
	assert.NoError(err)
	assert.Len(entries, 2)

	// duplicate entry names are rejected
	assert.Error(ZipAppend(archivePath, second, `first.txt`))
}

func TestZipExtractRejectsTraversal(t *testing.T) {
	assert := require.New(t)
	out := t.TempDir()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	entry, err := writer.Create(`../../escape.txt`)
	assert.NoError(err)
	entry.Write([]byte(`should not land outside`))
	assert.NoError(writer.Close())

	archivePath := filepath.Join(out, `evil.zip`)
	assert.NoError(os.WriteFile(archivePath, buf.Bytes(), 0644))

	assert.Error(ZipExtract(archivePath, filepath.Join(out, `dest`)))
}

func TestTarGzRoundTrip(t *testing.T) {
	assert := require.New(t)
	root := makeTree(t)
	out := t.TempDir()

	archivePath := filepath.Join(out, `tree.tar.gz`)
	assert.NoError(TarGzCreate(archivePath, root))

	dest := filepath.Join(out, `extracted`)
	assert.NoError(TarGzExtract(archivePath, dest))

	data, err := os.ReadFile(filepath.Join(dest, `top.txt`))
	assert.NoError(err)
	assert.Equal(`top level`, string(data))

	data, err = os.ReadFile(filepath.Join(dest, `sub`, `nested.txt`))
	assert.NoError(err)
	assert.Equal(`nested data`, string(data))
}

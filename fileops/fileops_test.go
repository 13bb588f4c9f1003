package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExistsAndKinds(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()
	file := filepath.Join(dir, `a.txt`)

	assert.NoError(WriteString(file, `hello`))

	assert.True(Exists(dir))
	assert.True(Exists(file))
	assert.True(IsDir(dir))
	assert.False(IsDir(file))
	assert.True(IsFile(file))
	assert.False(IsFile(dir))
	assert.False(Exists(filepath.Join(dir, `nope`)))
}

func TestReadWrite(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()
	file := filepath.Join(dir, `deep`, `nested`, `b.txt`)

	assert.NoError(WriteString(file, "one\ntwo\nthree\n"))

	data, err := ReadString(file)
	assert.NoError(err)
	assert.Equal("one\ntwo\nthree\n", data)

	lines, err := ReadLines(file)
	assert.NoError(err)
	assert.Equal([]string{`one`, `two`, `three`}, lines)

	assert.NoError(AppendString(file, "four\n"))
	lines, err = ReadLines(file)
	assert.NoError(err)
	assert.Len(lines, 4)
	assert.Equal(`four`, lines[3])

	size, err := Size(file)
	assert.NoError(err)
	assert.Equal(int64(19), size)
}

func TestCopyFileAndTree(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	src := filepath.Join(dir, `src`)
	assert.NoError(WriteString(filepath.Join(src, `x.txt`), `x`))
	assert.NoError(WriteString(filepath.Join(src, `sub`, `y.txt`), `y`))

	dst := filepath.Join(dir, `dst`)
	assert.NoError(CopyTree(src, dst))

	data, err := ReadString(filepath.Join(dst, `sub`, `y.txt`))
	assert.NoError(err)
	assert.Equal(`y`, data)

	same, err := SameContents(filepath.Join(src, `x.txt`), filepath.Join(dst, `x.txt`))
	assert.NoError(err)
	assert.True(same)

	assert.NoError(RemoveTree(dst))
	assert.False(Exists(dst))
	assert.NoError(RemoveTree(dst)) // idempotent
}

func TestTouch(t *testing.T) {
	assert := require.New(t)
	file := filepath.Join(t.TempDir(), `touched`, `t.txt`)

	assert.NoError(Touch(file))
	assert.True(IsFile(file))

	size, err := Size(file)
	assert.NoError(err)
	assert.Zero(size)
}

func TestTempFileAndDir(t *testing.T) {
	assert := require.New(t)

	path, err := TempFile(`fileops-test-`, []byte(`payload`))
	assert.NoError(err)
	defer os.Remove(path)

	data, err := ReadString(path)
	assert.NoError(err)
	assert.Equal(`payload`, data)

	dir, err := TempDir(`fileops-test-`)
	assert.NoError(err)
	defer os.RemoveAll(dir)
	assert.True(IsDir(dir))
}

func TestListDirAndWalkMatch(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	for _, name := range []string{`a.txt`, `b.txt`, `c.log`} {
		assert.NoError(WriteString(filepath.Join(dir, name), name))
	}

	assert.NoError(WriteString(filepath.Join(dir, `sub`, `d.txt`), `d`))

	all, err := ListDir(dir)
	assert.NoError(err)
	assert.Equal([]string{`a.txt`, `b.txt`, `c.log`, `sub`}, all)

	txt, err := ListDir(dir, `*.txt`)
	assert.NoError(err)
	assert.Equal([]string{`a.txt`, `b.txt`}, txt)

	found, err := WalkMatch(dir, `*.txt`)
	assert.NoError(err)
	assert.Len(found, 3)
}

func TestChecksums(t *testing.T) {
	assert := require.New(t)
	file := filepath.Join(t.TempDir(), `sum.txt`)

	assert.NoError(WriteString(file, `hello world`))

	md5sum, err := ChecksumMD5(file)
	assert.NoError(err)
	assert.Equal(`5eb63bbbe01eeed093cb22bb8f5acdc3`, md5sum)

	sha, err := ChecksumSHA256(file)
	assert.NoError(err)
	assert.Equal(`b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9`, sha)
}

func TestDetectType(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	// minimal PNG magic
	png := filepath.Join(dir, `p.png`)
	assert.NoError(os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0d"), 0644))

	mime, ext, err := DetectType(png)
	assert.NoError(err)
	assert.Equal(`image/png`, mime)
	assert.Equal(`png`, ext)

	txt := filepath.Join(dir, `t.txt`)
	assert.NoError(WriteString(txt, `just text`))

	mime, ext, err = DetectType(txt)
	assert.NoError(err)
	assert.Equal(`application/octet-stream`, mime)
	assert.Equal(``, ext)
}

func TestLoadConfig(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, `c.yaml`)
	assert.NoError(WriteString(yamlFile, "name: test\ncount: 42\nnested:\n  enabled: true\n"))

	config, err := LoadConfig(yamlFile)
	assert.NoError(err)
	assert.Equal(`test`, config[`name`])
	assert.Equal(42, config[`count`])
	assert.Equal(map[string]interface{}{`enabled`: true}, config[`nested`])

	tomlFile := filepath.Join(dir, `c.toml`)
	assert.NoError(WriteString(tomlFile, "name = \"test\"\n[nested]\nenabled = true\n"))

	config, err = LoadConfig(tomlFile)
	assert.NoError(err)
	assert.Equal(`test`, config[`name`])

	envFile := filepath.Join(dir, `c.env`)
	assert.NoError(WriteString(envFile, "# comment\nPORT=8080\nNAME = hi\n"))

	config, err = LoadConfig(envFile)
	assert.NoError(err)
	assert.EqualValues(8080, config[`PORT`])
	assert.Equal(`hi`, config[`NAME`])

	_, err = LoadConfig(filepath.Join(dir, `c.ini`))
	assert.Error(err)
}

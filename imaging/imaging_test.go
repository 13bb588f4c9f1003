package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(width int, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	return img
}

func TestDecodeAndDetect(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	assert.NoError(png.Encode(&buf, testImage(10, 10)))

	img, format, err := Decode(bytes.NewReader(buf.Bytes()))
	assert.NoError(err)
	assert.Equal(`png`, format)
	assert.Equal(10, img.Bounds().Dx())

	assert.Equal(`png`, DetectFormat(buf.Bytes()))
	assert.Equal(``, DetectFormat([]byte(`definitely not an image`)))
}

func TestResize(t *testing.T) {
	assert := require.New(t)
	img := testImage(100, 50)

	out, err := Resize(img, 40, 20)
	assert.NoError(err)
	assert.Equal(40, out.Bounds().Dx())
	assert.Equal(20, out.Bounds().Dy())

	// zero height preserves aspect
	out, err = Resize(img, 50, 0)
	assert.NoError(err)
	assert.Equal(50, out.Bounds().Dx())
	assert.Equal(25, out.Bounds().Dy())

	out, err = Resize(img, 0, 25)
	assert.NoError(err)
	assert.Equal(50, out.Bounds().Dx())

	_, err = Resize(img, 0, 0)
	assert.Error(err)
}

func TestThumbnail(t *testing.T) {
	assert := require.New(t)

	out, err := Thumbnail(testImage(200, 100), 50)
	assert.NoError(err)
	assert.Equal(50, out.Bounds().Dx())
	assert.Equal(25, out.Bounds().Dy())

	tall, err := Thumbnail(testImage(100, 200), 50)
	assert.NoError(err)
	assert.Equal(50, tall.Bounds().Dy())

	small := testImage(10, 10)
	same, err := Thumbnail(small, 50)
	assert.NoError(err)
	assert.Equal(small, same)
}

func TestEncode(t *testing.T) {
	assert := require.New(t)
	img := testImage(20, 20)

	for _, format := range []string{`jpeg`, `jpg`, `png`, `gif`} {
		var out bytes.Buffer
		assert.NoError(Encode(&out, img, format))
		assert.NotZero(out.Len())
	}

	var out bytes.Buffer
	assert.Error(Encode(&out, img, `webp`))
}

func TestCompressToFit(t *testing.T) {
	assert := require.New(t)
	img := testImage(400, 400)

	data, err := CompressToFit(img, 20000)
	assert.NoError(err)
	assert.LessOrEqual(len(data), 20000)
	assert.Equal(`jpg`, DetectFormat(data))

	// a tighter budget forces downscaling but still succeeds
	data, err = CompressToFit(img, 2000)
	assert.NoError(err)
	assert.LessOrEqual(len(data), 2000)

	_, err = CompressToFit(img, 0)
	assert.Error(err)
}

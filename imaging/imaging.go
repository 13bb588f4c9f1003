// Package imaging decodes, resizes, and re-encodes images, including
// compressing JPEG output to fit a byte budget.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ghetzel/go-stockutil/log"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

const DefaultQuality = 85

// Decode reads an image (JPEG, PNG, or GIF) and returns it with its format
// name.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeFile reads an image from the named file.
func DecodeFile(path string) (image.Image, string, error) {
	if file, err := os.Open(path); err == nil {
		defer file.Close()
		return Decode(file)
	} else {
		return nil, ``, err
	}
}

// DetectFormat sniffs the image format of the given bytes ("jpg", "png",
// "gif", ...), or an empty string for non-images.
func DetectFormat(data []byte) string {
	if kind, err := filetype.Image(data); err == nil {
		return kind.Extension
	}

	return ``
}

// Resize scales the image to the given width and height using bilinear
// interpolation.  A zero width or height is computed from the other
// dimension, preserving aspect ratio.
func Resize(img image.Image, width int, height int) (image.Image, error) {
	bounds := img.Bounds()

	if width <= 0 && height <= 0 {
		return nil, fmt.Errorf("at least one of width or height is required")
	}

	if width <= 0 {
		width = bounds.Dx() * height / bounds.Dy()
	}

	if height <= 0 {
		height = bounds.Dy() * width / bounds.Dx()
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	return scaled, nil
}

// Thumbnail scales the image down so that neither dimension exceeds max,
// preserving aspect ratio.  Images already within bounds are returned
// unchanged.
func Thumbnail(img image.Image, max int) (image.Image, error) {
	bounds := img.Bounds()

	if bounds.Dx() <= max && bounds.Dy() <= max {
		return img, nil
	}

	if bounds.Dx() >= bounds.Dy() {
		return Resize(img, max, 0)
	}

	return Resize(img, 0, max)
}

// Encode writes the image in the named format: "jpeg"/"jpg" (with the given
// quality, DefaultQuality if zero), "png", or "gif".
func Encode(w io.Writer, img image.Image, format string, quality ...int) error {
	switch format {
	case `jpeg`, `jpg`:
		q := DefaultQuality

		if len(quality) > 0 && quality[0] > 0 {
			q = quality[0]
		}

		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case `png`:
		return png.Encode(w, img)
	case `gif`:
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// CompressToFit re-encodes the image as JPEG, lowering quality (and finally
// downscaling) until the output is no larger than maxBytes.
func CompressToFit(img image.Image, maxBytes int) ([]byte, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("maxBytes must be positive")
	}

	for quality := DefaultQuality; quality >= 20; quality -= 15 {
		var out bytes.Buffer

		if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}

		if out.Len() <= maxBytes {
			log.Debugf("imaging: fit %d bytes at quality %d", out.Len(), quality)
			return out.Bytes(), nil
		}
	}

	// quality floor was not enough; halve dimensions and try again
	bounds := img.Bounds()

	if bounds.Dx() <= 16 || bounds.Dy() <= 16 {
		return nil, fmt.Errorf("cannot compress image below %d bytes", maxBytes)
	}

	if smaller, err := Resize(img, bounds.Dx()/2, bounds.Dy()/2); err == nil {
		return CompressToFit(smaller, maxBytes)
	} else {
		return nil, err
	}
}

// CompressFile re-encodes the named image file as JPEG no larger than
// maxBytes and writes it to destination.
func CompressFile(source string, destination string, maxBytes int) error {
	img, _, err := DecodeFile(source)

	if err != nil {
		return err
	}

	if data, err := CompressToFit(img, maxBytes); err == nil {
		return os.WriteFile(destination, data, 0644)
	} else {
		return err
	}
}

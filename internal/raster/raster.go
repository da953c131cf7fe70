// Package raster moves raw RGB samples in and out of image files.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

const channels = 3

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Build lays RGB triplets out row-major in an image pixelWidth pixels wide.
// A trailing partial row is left black.
func Build(values []byte, pixelWidth int) *image.RGBA {
	rowLen := pixelWidth * channels
	height := (len(values) + rowLen - 1) / rowLen
	dist := image.NewRGBA(image.Rect(0, 0, pixelWidth, height))
	pixels := len(values) / channels
	for i := range pixelWidth * height {
		at := i * 4
		dist.Pix[at+3] = 0xff
		if i >= pixels {
			continue
		}
		copy(dist.Pix[at:at+channels], values[i*channels:(i+1)*channels])
	}
	return dist
}

// Samples flattens src into RGB triplets, dropping alpha, and returns them
// with the pixel width of src.
func Samples(src image.Image) ([]byte, int) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != width*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	}
	values := make([]byte, width*height*channels)
	for i := range width * height {
		copy(values[i*channels:(i+1)*channels], rgba.Pix[i*4:i*4+channels])
	}
	return values, width
}

// Resize enlarges src by an integer factor, repeating every pixel.
func Resize(src image.Image, factor int) *image.RGBA {
	b := src.Bounds()
	dist := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dist, dist.Bounds(), src, b, draw.Src, nil)
	return dist
}

// FormatOf returns the image format implied by the file extension of path.
func FormatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w. quality applies to jpeg only.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	var err error
	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Decode reads an image in any of the supported formats.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Load reads and decodes the image file at path.
func Load(path string) (image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Save encodes img in the format implied by the extension of path.
func Save(img image.Image, path string, quality int) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, quality); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

package raster

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/bitpixel"
)

func TestBuildSamples(t *testing.T) {
	values := []byte{
		255, 255, 255, 0, 0, 0,
		0, 0, 0, 255, 255, 255,
	}
	img := Build(values, 2)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 1))

	got, width := Samples(img)
	assert.Equal(t, 2, width)
	assert.Equal(t, values, got)

	t.Run("partial row", func(t *testing.T) {
		img := Build([]byte{9, 9, 9, 8, 8, 8, 7, 7, 7}, 2)
		assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
		assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 1))
	})

	t.Run("other image types", func(t *testing.T) {
		gray := image.NewGray(image.Rect(3, 5, 5, 6))
		gray.SetGray(3, 5, color.Gray{Y: 200})
		got, width := Samples(gray)
		assert.Equal(t, 2, width)
		assert.Equal(t, []byte{200, 200, 200, 0, 0, 0}, got)
	})
}

func TestResize(t *testing.T) {
	img := Build([]byte{255, 255, 255, 0, 0, 0}, 2)
	big := Resize(img, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), big.Bounds())
	for y := range 3 {
		for x := range 6 {
			exp := color.RGBA{255, 255, 255, 255}
			if x >= 3 {
				exp = color.RGBA{0, 0, 0, 255}
			}
			assert.Equal(t, exp, big.RGBAAt(x, y))
		}
	}
}

func TestFormatOf(t *testing.T) {
	test := []struct {
		path string
		exp  string
	}{
		{"a.png", "png"},
		{"a.JPG", "jpeg"},
		{"dir/b.jpeg", "jpeg"},
		{"c.bmp", "bmp"},
		{"d.tif", "tiff"},
		{"d.tiff", "tiff"},
	}
	for _, tt := range test {
		format, err := FormatOf(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.exp, format)
	}
	_, err := FormatOf("e.gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = FormatOf("noext")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeDecode(t *testing.T) {
	bits := "1011001110001111"
	opts := []bitpixel.Option{bitpixel.WithWidth(4), bitpixel.WithScale(4)}
	values, err := bitpixel.Encode(bits, opts...)
	require.NoError(t, err)
	img := Build(values, 16)

	for _, format := range []string{"png", "jpeg", "bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, format, 100))

			decoded, got, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, format, got)

			samples, width := Samples(decoded)
			assert.Equal(t, 16, width)
			result, err := bitpixel.Decode(samples, opts...)
			require.NoError(t, err)
			assert.Equal(t, bits, result)
		})
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, img, "gif", 0), ErrUnsupportedFormat)
	_, _, err = Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	img := Build([]byte{255, 255, 255, 0, 0, 0, 0, 0, 0, 255, 255, 255}, 2)

	path := filepath.Join(dir, "out.png")
	require.NoError(t, Save(img, path, 100))
	loaded, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	samples, _ := Samples(loaded)
	assert.Equal(t, []byte{255, 255, 255, 0, 0, 0, 0, 0, 0, 255, 255, 255}, samples)

	assert.ErrorIs(t, Save(img, filepath.Join(dir, "out.gif"), 100), ErrUnsupportedFormat)
	_, _, err = Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

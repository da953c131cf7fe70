package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/bitpixel"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	t.Run("bits", func(t *testing.T) {
		for _, name := range []string{"a.png", "a.jpg", "a.bmp", "a.tiff"} {
			path := filepath.Join(dir, name)
			var out bytes.Buffer
			require.NoError(t, run([]string{"encode", "-w", "4", "-s", "3", "-i", "1111000011000011", path}, &out))
			assert.Contains(t, out.String(), "(12x12)")

			out.Reset()
			require.NoError(t, run([]string{"decode", "-s", "3", "-i", path}, &out))
			assert.Equal(t, "1111000011000011\n", out.String())
		}
	})

	t.Run("rows", func(t *testing.T) {
		path := filepath.Join(dir, "rows.png")
		var out bytes.Buffer
		require.NoError(t, run([]string{"encode", "-w", "3", "1100101", path}, &out))

		out.Reset()
		require.NoError(t, run([]string{"decode", "-rows", path}, &out))
		assert.Equal(t, "110\n010\n100\n", out.String())
	})

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "text.png")
		var out bytes.Buffer
		require.NoError(t, run([]string{"encode", "-w", "24", "-s", "2", "-text", "hello", path}, &out))

		out.Reset()
		require.NoError(t, run([]string{"decode", "-s", "2", "-text", "-bytes", "5", path}, &out))
		assert.Equal(t, "hello\n", out.String())
	})

	t.Run("overwrite", func(t *testing.T) {
		path := filepath.Join(dir, "exists.png")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		var out bytes.Buffer
		assert.Error(t, run([]string{"encode", "-w", "2", "10", path}, &out))
		assert.NoError(t, run([]string{"encode", "-o", "-w", "2", "10", path}, &out))
	})

	t.Run("errors", func(t *testing.T) {
		var out bytes.Buffer
		assert.ErrorIs(t, run(nil, &out), errUsage)
		assert.ErrorIs(t, run([]string{"paint"}, &out), errUsage)
		assert.ErrorIs(t, run([]string{"encode", "-w", "2", "10"}, &out), errUsage)
		assert.ErrorIs(t, run([]string{"encode", "-x", "10", "a.png"}, &out), errUsage)
		assert.ErrorIs(t, run([]string{"decode", "-text", filepath.Join(dir, "a.png")}, &out), errUsage)
		assert.ErrorIs(t, run([]string{"encode", "-w", "9", "10", filepath.Join(dir, "w.png")}, &out), bitpixel.ErrInvalidOption)
		assert.ErrorIs(t, run([]string{"encode", "-w", "2", "12", filepath.Join(dir, "c.png")}, &out), bitpixel.ErrInvalidInput)
		assert.ErrorIs(t, run([]string{"decode", "-s", "5", filepath.Join(dir, "a.png")}, &out), bitpixel.ErrInvalidOption)
		assert.Error(t, run([]string{"decode", filepath.Join(dir, "missing.png")}, &out))
		assert.Error(t, run([]string{"encode", "-w", "2", "10", filepath.Join(dir, "a.gif")}, &out))
	})
}

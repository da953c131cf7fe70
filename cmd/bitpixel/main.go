package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/yyyoichi/bitpixel"
	"github.com/yyyoichi/bitpixel/internal/chunk"
	"github.com/yyyoichi/bitpixel/internal/raster"
	"github.com/yyyoichi/bitpixel/payload"
)

const usage = `usage:
  bitpixel encode -w width [-s scale] [-i] [-o] [-q quality] [-text [-ecc=false]] <bits|text> <file>
  bitpixel decode [-s scale] [-i] [-rows] [-text -bytes n [-ecc=false]] <file>
`

var errUsage = errors.New("invalid usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitpixel: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			log.Println(err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	switch args[0] {
	case "encode":
		return encode(args[1:], stdout)
	case "decode":
		return decode(args[1:], stdout)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func payloadOptions(ecc bool) []payload.Option {
	if ecc {
		return []payload.Option{payload.WithGolay(payload.DefaultShuffleSeed)}
	}
	return []payload.Option{payload.WithoutECC()}
}

func encode(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	width := fs.Int("w", 0, "number of bits in a single row (required)")
	scale := fs.Int("s", 1, "factor multiplying the width and height of the image")
	inverted := fs.Bool("i", false, "turn 1s into black and 0s into white pixels")
	overwrite := fs.Bool("o", false, "overwrite an existing file")
	quality := fs.Int("q", 100, "jpeg quality")
	text := fs.Bool("text", false, "treat the input as text instead of bits")
	ecc := fs.Bool("ecc", true, "protect text with a Golay code")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: encode takes <bits|text> <file>", errUsage)
	}
	input, path := fs.Arg(0), fs.Arg(1)

	if _, err := raster.FormatOf(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !*overwrite {
		return fmt.Errorf("%s already exists, use -o to overwrite", path)
	}

	bits := input
	if *text {
		p := payload.NewString(input, payloadOptions(*ecc)...)
		bits = p.Bits()
		log.Printf("text is %d bytes, %d bits encoded; decode with -text -bytes %d", p.Size()/8, p.Len(), p.Size()/8)
	}

	c, err := bitpixel.New(bitpixel.WithWidth(*width), bitpixel.WithScale(*scale), bitpixel.WithInverted(*inverted))
	if err != nil {
		return err
	}
	values, err := c.Encode(bits)
	if err != nil {
		return err
	}
	pixelWidth, pixelHeight := c.ImageSize(len(values))
	if err := raster.Save(raster.Build(values, pixelWidth), path, *quality); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%dx%d)\n", path, pixelWidth, pixelHeight)
	return nil
}

func decode(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	scale := fs.Int("s", 1, "factor the image was scaled up by")
	inverted := fs.Bool("i", false, "treat white pixels as 0s and black pixels as 1s")
	rows := fs.Bool("rows", false, "print one image row per line")
	text := fs.Bool("text", false, "decode a text payload")
	size := fs.Int("bytes", 0, "length of the text payload in bytes")
	ecc := fs.Bool("ecc", true, "the text payload is protected by a Golay code")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: decode takes <file>", errUsage)
	}
	if *text && *size < 1 {
		return fmt.Errorf("%w: -text needs -bytes", errUsage)
	}

	img, _, err := raster.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	values, pixelWidth := raster.Samples(img)
	width, err := bitpixel.WidthFromImage(pixelWidth, *scale)
	if err != nil {
		return err
	}
	bits, err := bitpixel.Decode(values, bitpixel.WithWidth(width), bitpixel.WithScale(*scale), bitpixel.WithInverted(*inverted))
	if err != nil {
		return err
	}
	if !*text {
		if *rows {
			fmt.Fprintln(stdout, strings.Join(chunk.String(bits, width), "\n"))
			return nil
		}
		fmt.Fprintln(stdout, bits)
		return nil
	}
	s, err := payload.NewExtract(*size*8, payloadOptions(*ecc)...).DecodeToString(bits)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s)
	return nil
}

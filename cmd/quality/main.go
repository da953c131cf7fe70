package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/yyyoichi/bitpixel"
	"github.com/yyyoichi/bitpixel/internal/raster"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type TestParams struct {
	Width   int
	Scale   int
	Format  string
	Quality int
	Resize  int
}

func (p TestParams) String() string {
	format := p.Format
	if format == "jpeg" {
		format = fmt.Sprintf("jpeg(q=%d)", p.Quality)
	}
	return fmt.Sprintf("Width=%d Scale=%d Format=%s Resize=%dx", p.Width, p.Scale, format, p.Resize)
}

func main() {
	numRuns := flag.Int("n", 10, "number of random payloads per configuration")
	numBits := flag.Int("bits", 256, "number of bits per payload")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *numRuns < 1 || *numBits < 1 {
		log.Fatal("-n and -bits must be positive")
	}
	rd := rand.New(rand.NewSource(*seed))

	widths := []int{8, 32}
	scales := []int{1, 2, 4}
	resizes := []int{1, 2}
	formats := []TestParams{
		{Format: "png"},
		{Format: "bmp"},
		{Format: "tiff"},
		{Format: "jpeg", Quality: 100},
		{Format: "jpeg", Quality: 90},
		{Format: "jpeg", Quality: 75},
		{Format: "jpeg", Quality: 50},
	}

	log.Printf("Starting quality evaluation with %d payloads of %d bits\n", *numRuns, *numBits)
	log.Printf("Total configurations: %d (widths) x %d (scales) x %d (formats) x %d (resizes) = %d\n",
		len(widths), len(scales), len(formats), len(resizes), len(widths)*len(scales)*len(formats)*len(resizes))

	successCount := 0
	totalTests := 0
	for _, width := range widths {
		for _, scale := range scales {
			for _, f := range formats {
				for _, resize := range resizes {
					params := TestParams{
						Width:   width,
						Scale:   scale,
						Format:  f.Format,
						Quality: f.Quality,
						Resize:  resize,
					}
					totalTests++
					if evaluate(rd, params, *numRuns, *numBits) {
						successCount++
					}
				}
			}
		}
	}

	log.Printf("\n=== Results ===\n")
	log.Printf("Total configurations: %d\n", totalTests)
	log.Printf("Lossless: %d (%.2f%%)\n", successCount, float64(successCount)/float64(totalTests)*100)
	log.Printf("Lossy: %d (%.2f%%)\n", totalTests-successCount, float64(totalTests-successCount)/float64(totalTests)*100)
}

// evaluate reports whether every payload survived params unchanged.
func evaluate(rd *rand.Rand, params TestParams, runs, numBits int) bool {
	start := time.Now()
	accuracies := make([]float64, 0, runs)
	for range runs {
		bits := randomBits(rd, numBits)
		accuracy, err := roundTrip(bits, params)
		if err != nil {
			log.Printf("    [FAIL] %s - %v\n", params, err)
			return false
		}
		accuracies = append(accuracies, accuracy)
	}
	mean, std := stat.MeanStdDev(accuracies, nil)
	duration := time.Since(start)

	if mean == 100.0 {
		log.Printf("    [OK] %s - Accuracy=%.1f%% Time=%v\n", params, mean, duration)
		return true
	}
	log.Printf("    [FAIL] %s - Accuracy=%.1f%% (sd %.2f, min %.1f%%) Time=%v\n",
		params, mean, std, floats.Min(accuracies), duration)
	return false
}

func roundTrip(bits string, params TestParams) (float64, error) {
	c, err := bitpixel.New(bitpixel.WithWidth(params.Width), bitpixel.WithScale(params.Scale))
	if err != nil {
		return 0, err
	}
	values, err := c.Encode(bits)
	if err != nil {
		return 0, fmt.Errorf("encode: %w", err)
	}
	pixelWidth, _ := c.ImageSize(len(values))

	var buf bytes.Buffer
	if err := raster.Encode(&buf, raster.Build(values, pixelWidth), params.Format, params.Quality); err != nil {
		return 0, err
	}
	img, _, err := raster.Decode(&buf)
	if err != nil {
		return 0, err
	}
	if params.Resize > 1 {
		img = raster.Resize(img, params.Resize)
	}

	samples, imageWidth := raster.Samples(img)
	scale := params.Scale * params.Resize
	width, err := bitpixel.WidthFromImage(imageWidth, scale)
	if err != nil {
		return 0, err
	}
	decoded, err := bitpixel.Decode(samples, bitpixel.WithWidth(width), bitpixel.WithScale(scale))
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	matches := 0
	for i := range len(bits) {
		if i < len(decoded) && bits[i] == decoded[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(bits)) * 100, nil
}

func randomBits(rd *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(byte('0' + rd.Intn(2)))
	}
	return sb.String()
}

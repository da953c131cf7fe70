package bitpixel_test

import (
	"fmt"

	"github.com/yyyoichi/bitpixel"
)

func Example() {
	// Initialize a codec with 4 bits per row, doubled in both directions
	c, err := bitpixel.New(
		bitpixel.WithWidth(4),
		bitpixel.WithScale(2),
	)
	if err != nil {
		fmt.Printf("Error creating codec: %v\n", err)
		return
	}

	encoded, err := c.Encode("1111000011000011")
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		return
	}
	width, height := c.ImageSize(len(encoded))
	fmt.Printf("Samples: %d (%dx%d pixels)\n", len(encoded), width, height)

	decoded, err := c.Decode(encoded)
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}
	fmt.Println(decoded)

	// Output:
	// Samples: 192 (8x8 pixels)
	// 1111000011000011
}

func ExampleEncode_padding() {
	// 5 bits do not fill two rows of 4, so the last row is padded with '0'
	encoded, _ := bitpixel.Encode("10111", bitpixel.WithWidth(4))
	decoded, _ := bitpixel.Decode(encoded, bitpixel.WithWidth(4))
	fmt.Println(decoded)

	// Output:
	// 10111000
}

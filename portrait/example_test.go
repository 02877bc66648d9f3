package portrait_test

import (
	"fmt"

	"github.com/katalvlaran/phaseport/colormap"
	"github.com/katalvlaran/phaseport/portrait"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRender
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render the single sample z = 1 as a smooth (Proper) portrait.
//	arg(-1) rotated back by π normalizes to phase 1.0, whose
//	fractional part selects the first colormap entry: pure red.
//
// Options: DefaultOptions (Standard layout, Resolution=20).
//
// Complexity: O(m·n + N) time, N = colormap size.
func ExampleRender() {
	img, err := portrait.Render([][]complex128{{1}}, portrait.Proper, portrait.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("pixel:", img[0][0].Hex())
	// Output:
	// pixel: #ff0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRender_conformalGrid
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render a 2×2 neighborhood of the identity map with the
//	conformal-grid overlay and the Reference palette, then inspect the
//	output shape. Input row 0 is the bottom of the image.
//
// Options:
//   - Layout = colormap.Reference (re-indexed 600-entry palette)
//   - Resolution = 12 (coarser contour bands)
//
// Complexity: O(m·n + N) time, N = colormap size.
func ExampleRender_conformalGrid() {
	grid := [][]complex128{
		{-1 - 1i, 1 - 1i},
		{-1 + 1i, 1 + 1i},
	}
	opts := portrait.DefaultOptions()
	opts.Layout = colormap.Reference
	opts.Resolution = 12

	img, err := portrait.Render(grid, portrait.ConformalGrid, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("rows=%d cols=%d\n", len(img), len(img[0]))
	// Output:
	// rows=2 cols=2
}

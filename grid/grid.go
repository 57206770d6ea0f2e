// Package grid computes the row-major tile layout of a sprite sheet.
//
// All functions are pure. Tiles are addressed by their 0-based sample
// index; columns, tile width and tile height must be positive.
package grid

// Rows returns the number of grid rows needed to hold sampleCount tiles
// across the given number of columns (ceiling division).
func Rows(sampleCount, columns int) int {
	if sampleCount <= 0 {
		return 0
	}
	return (sampleCount + columns - 1) / columns
}

// Offset returns the pixel position of tile index within the sheet.
// Index 0 is the top-left tile; indexes advance left to right, top to bottom.
func Offset(index, columns, tileWidth, tileHeight int) (x, y int) {
	x = (index % columns) * tileWidth
	y = (index / columns) * tileHeight
	return x, y
}

// SheetSize returns the pixel dimensions of the full sprite sheet.
func SheetSize(sampleCount, columns, tileWidth, tileHeight int) (width, height int) {
	return columns * tileWidth, Rows(sampleCount, columns) * tileHeight
}

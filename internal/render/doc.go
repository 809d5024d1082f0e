// Package render draws fingerprint grids with a palette.
//
// Every renderer honours the same layout contract: the cell at column c, row
// r with intensity v becomes a square of SquareSize pixels at
// (c*SquareSize, r*SquareSize) filled with palette color v. The output is
// therefore (width*SquareSize) by (height*SquareSize). Any square size of one
// or more is valid.
//
// # Formats
//
//   - SVG: one <rect> per cell, colors as "#rrggbb"
//   - ANSI: 24-bit true color escape sequences, two block characters per cell
//   - PNG: raster image, scaled with nearest-neighbour sampling so cell edges
//     stay sharp
//
// # Comparison
//
// Compare renders two fingerprints and reports how many cells differ along
// with a difference image, which is the quickest way to eyeball whether two
// digests match.
package render

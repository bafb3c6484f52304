// Package grid provides the binary pixel grid and integer coordinate types
// shared by the track generation pipeline.
package grid

import (
	"image"
	"image/color"
	"math"
)

// On is the value of a set pixel. Grids are binary: 0 or On.
const On uint8 = 255

// Point represents a grid coordinate as (row, column).
type Point struct {
	R int `json:"r"`
	C int `json:"c"`
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dr := float64(p.R - other.R)
	dc := float64(p.C - other.C)
	return math.Sqrt(dr*dr + dc*dc)
}

// Grid is a row-major binary pixel matrix. A zero byte is background,
// anything non-zero is an "on" pixel (set pixels are written as On).
type Grid struct {
	Rows int
	Cols int
	pix  []uint8
}

// New creates an all-background grid with the given dimensions.
func New(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, pix: make([]uint8, rows*cols)}
}

// At returns the raw pixel value at (r, c).
func (g *Grid) At(r, c int) uint8 {
	return g.pix[r*g.Cols+c]
}

// IsOn reports whether the pixel at (r, c) is set.
func (g *Grid) IsOn(r, c int) bool {
	return g.pix[r*g.Cols+c] != 0
}

// Set turns the pixel at (r, c) on.
func (g *Grid) Set(r, c int) {
	g.pix[r*g.Cols+c] = On
}

// Clear turns the pixel at (r, c) off.
func (g *Grid) Clear(r, c int) {
	g.pix[r*g.Cols+c] = 0
}

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// CountOn returns the number of set pixels.
func (g *Grid) CountOn() int {
	n := 0
	for _, v := range g.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := New(g.Rows, g.Cols)
	copy(out.pix, g.pix)
	return out
}

// ClearBorder zeroes the outermost pixel ring. The pipeline relies on the
// border being background: the labeler scan and the spiral start search
// both skip the outer ring.
func (g *Grid) ClearBorder() {
	for c := 0; c < g.Cols; c++ {
		g.pix[c] = 0
		g.pix[(g.Rows-1)*g.Cols+c] = 0
	}
	for r := 0; r < g.Rows; r++ {
		g.pix[r*g.Cols] = 0
		g.pix[r*g.Cols+g.Cols-1] = 0
	}
}

// FlipVertical mirrors the grid top-to-bottom in place.
func (g *Grid) FlipVertical() {
	for top, bot := 0, g.Rows-1; top < bot; top, bot = top+1, bot-1 {
		a := g.pix[top*g.Cols : top*g.Cols+g.Cols]
		b := g.pix[bot*g.Cols : bot*g.Cols+g.Cols]
		for c := range a {
			a[c], b[c] = b[c], a[c]
		}
	}
}

// FromRows builds a grid from a row-per-string picture, where '.' and
// ' ' are background and anything else is on. Handy for fixtures and
// small hand-built grids.
func FromRows(rows []string) *Grid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	g := New(len(rows), cols)
	for r, row := range rows {
		for c, ch := range row {
			if ch != '.' && ch != ' ' {
				g.Set(r, c)
			}
		}
	}
	return g
}

// FromGray converts a grayscale image into a binary grid. Pixels above
// the midpoint become on; rows map to Y and columns to X.
func FromGray(img *image.Gray) *Grid {
	b := img.Bounds()
	g := New(b.Dy(), b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > 128 {
				g.Set(y-b.Min.Y, x-b.Min.X)
			}
		}
	}
	return g
}

// ToGray renders the grid as a grayscale image (on pixels white).
func (g *Grid) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.IsOn(r, c) {
				img.SetGray(c, r, color.Gray{Y: On})
			}
		}
	}
	return img
}

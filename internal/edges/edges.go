// Package edges converts a grayscale image into a binary edge grid using
// Canny edge detection. It is the only package that touches OpenCV; the
// rest of the pipeline works on plain grids.
package edges

import (
	"fmt"
	"image"
	"image/draw"

	"gocv.io/x/gocv"

	"table-tracer/pkg/grid"
)

// Options configures edge detection. Thresholds are fractions of full
// intensity, matching the tuning range of the original tool.
type Options struct {
	Sigma         float64 // Gaussian smoothing before gradient estimation
	LowThreshold  float64 // hysteresis low threshold, 0..1
	HighThreshold float64 // hysteresis high threshold, 0..1
}

// DefaultOptions returns detection parameters tuned for line-art style
// output on photographic input.
func DefaultOptions() Options {
	return Options{
		Sigma:         2.4,
		LowThreshold:  0.04,
		HighThreshold: 0.17,
	}
}

// Detect runs Canny edge detection on img and returns the binary edge
// grid. The grid's outer pixel ring is always cleared: the labeler and
// the start search both rely on the border being background.
func Detect(img image.Image, opts Options) (*grid.Grid, error) {
	gray := toGray(img)

	mat, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return nil, fmt.Errorf("edges: converting image: %w", err)
	}
	defer mat.Close()

	// Smooth first; the kernel size is derived from sigma (three
	// standard deviations each side, forced odd).
	blurred := gocv.NewMat()
	defer blurred.Close()
	k := 2*int(3*opts.Sigma) + 1
	gocv.GaussianBlur(mat, &blurred, image.Pt(k, k), opts.Sigma, opts.Sigma, gocv.BorderDefault)

	detected := gocv.NewMat()
	defer detected.Close()
	gocv.Canny(blurred, &detected, float32(opts.LowThreshold*255), float32(opts.HighThreshold*255))

	g := grid.New(detected.Rows(), detected.Cols())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if detected.GetUCharAt(r, c) > 0 {
				g.Set(r, c)
			}
		}
	}
	g.ClearBorder()

	return g, nil
}

// toGray converts any image to 8-bit grayscale.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	return gray
}

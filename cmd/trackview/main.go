// Command trackview displays a generated track file in a window. Points
// are shaded by visit order, dark to bright, so the stroke direction is
// visible.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"table-tracer/internal/trackio"
	"table-tracer/pkg/grid"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	trackPath := flag.String("track", "", "Path to track file")
	flag.Parse()

	if *trackPath == "" {
		fmt.Println("Usage: trackview -track <path>")
		os.Exit(1)
	}

	f, err := os.Open(*trackPath)
	if err != nil {
		log.Fatalf("Failed to open track: %v", err)
	}
	pts, err := trackio.Read(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to read track: %v", err)
	}
	if len(pts) == 0 {
		log.Fatal("Track is empty")
	}
	log.Printf("Loaded track with %d points", len(pts))

	rendered := render(pts)

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("Track Viewer — %s", *trackPath))

	img := canvas.NewImageFromImage(rendered)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	w.SetContent(img)

	b := rendered.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.ShowAndRun()
}

// render draws the track onto a grayscale image sized to fit it, with a
// one pixel margin, ramping intensity along the visit order.
func render(pts []grid.Point) *image.Gray {
	maxR, maxC := 0, 0
	for _, p := range pts {
		if p.R > maxR {
			maxR = p.R
		}
		if p.C > maxC {
			maxC = p.C
		}
	}

	img := image.NewGray(image.Rect(0, 0, maxC+2, maxR+2))
	for i, p := range pts {
		shade := 64 + 191*i/len(pts)
		img.SetGray(p.C, p.R, color.Gray{Y: uint8(shade)})
	}
	return img
}

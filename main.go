// Command table-tracer converts an image into a single continuous
// drawing track: one ordered list of grid coordinates that traces every
// detected edge without lifting the drawing implement.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"table-tracer/internal/edges"
	"table-tracer/internal/track"
	"table-tracer/internal/trackio"
	"table-tracer/internal/version"
	"table-tracer/pkg/grid"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

const appName = "Table Tracer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appName, version.Version)

	imagePath := flag.String("image", "", "Path to input image (PNG, JPEG, TIFF, or BMP)")
	outPath := flag.String("out", "", "Track output path (default: input name with .txt)")
	previewPath := flag.String("preview", "result.png", "Connected-edge preview image path (empty to skip)")
	flip := flag.Bool("flip", true, "Flip the image vertically (tracks draw better on the table flipped)")
	sigma := flag.Float64("sigma", 2.4, "Canny: Gaussian smoothing sigma")
	low := flag.Float64("low", 0.04, "Canny: low hysteresis threshold (0..1)")
	high := flag.Float64("high", 0.17, "Canny: high hysteresis threshold (0..1)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: table-tracer -image <path> [-out track.txt] [-preview result.png]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to decode image: %v", err)
	}
	bounds := img.Bounds()
	log.Printf("Loaded %s image: %dx%d pixels", format, bounds.Dx(), bounds.Dy())

	started := time.Now()

	g, err := edges.Detect(img, edges.Options{
		Sigma:         *sigma,
		LowThreshold:  *low,
		HighThreshold: *high,
	})
	if err != nil {
		log.Fatalf("Edge detection failed: %v", err)
	}
	log.Printf("Detected %d edge pixels", g.CountOn())

	if *flip {
		g.FlipVertical()
	}

	pts, err := track.Generate(g)
	if err != nil {
		log.Fatalf("Track generation failed: %v", err)
	}
	log.Printf("Generated track with %d points in %s", len(pts), time.Since(started))

	out := *outPath
	if out == "" {
		base := *imagePath
		if i := strings.LastIndex(base, "."); i > 0 {
			base = base[:i]
		}
		out = base + ".txt"
	}
	if err := writeTrack(out, pts); err != nil {
		log.Fatalf("Failed to write track: %v", err)
	}
	log.Printf("Wrote track to %s", out)

	if *previewPath != "" {
		if err := writePreview(*previewPath, g, *flip); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Wrote preview to %s", *previewPath)
	}
}

func writeTrack(path string, pts []grid.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trackio.Write(f, pts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePreview saves the connected edge grid as a PNG, un-flipping it so
// the preview matches the original image orientation.
func writePreview(path string, g *grid.Grid, flipped bool) error {
	if flipped {
		g = g.Clone()
		g.FlipVertical()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, g.ToGray()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

// ImageResult contains a rendered fingerprint encoded as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Image renders g as a raster image with squareSize pixels per cell.
//
// The grid is first drawn at one pixel per cell and then enlarged with
// nearest-neighbour sampling, which keeps every cell a solid square.
func Image(g *matrix.Grid, p palette.Palette, squareSize int) (*image.NRGBA, error) {
	if err := checkSquareSize(squareSize); err != nil {
		return nil, err
	}
	colors, err := Colorize(g, p)
	if err != nil {
		return nil, err
	}

	img := imaging.New(g.Width, g.Height, colors[0][0])
	for y, row := range colors {
		for x, c := range row {
			img.Set(x, y, c)
		}
	}
	if squareSize == 1 {
		return img, nil
	}
	return imaging.Resize(img, g.Width*squareSize, g.Height*squareSize, imaging.NearestNeighbor), nil
}

// PNGWriter renders a grid as a PNG image.
type PNGWriter struct {
	SquareSize int
}

// Write encodes the PNG image to w.
func (pw PNGWriter) Write(w io.Writer, g *matrix.Grid, p palette.Palette) error {
	img, err := Image(g, p, pw.SquareSize)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// PNG renders g and writes it to w as a PNG image.
func PNG(w io.Writer, g *matrix.Grid, p palette.Palette, squareSize int) error {
	return PNGWriter{SquareSize: squareSize}.Write(w, g, p)
}

// EncodePNGBase64 renders g as PNG and returns it base64-encoded.
func EncodePNGBase64(g *matrix.Grid, p palette.Palette, squareSize int) (*ImageResult, error) {
	img, err := Image(g, p, squareSize)
	if err != nil {
		return nil, err
	}
	return encodeImage(img)
}

func encodeImage(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	bounds := img.Bounds()
	return &ImageResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SavePNG renders g and writes it to a PNG file at path.
func SavePNG(path string, g *matrix.Grid, p palette.Palette, squareSize int) error {
	img, err := Image(g, p, squareSize)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

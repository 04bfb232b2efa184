package softrast

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sink receives a finished frame for presentation.
//
// pixels is row-major packed 0xRRGGBB with width*height elements. The
// slice is only valid for the duration of the call; sinks that keep the
// frame must copy it.
type Sink interface {
	Present(pixels []uint32, width, height int) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(pixels []uint32, width, height int) error

// Present calls f(pixels, width, height).
func (f SinkFunc) Present(pixels []uint32, width, height int) error {
	return f(pixels, width, height)
}

// ImageSink captures presented frames as an image.RGBA.
type ImageSink struct {
	// Image holds the most recently presented frame.
	Image *image.RGBA
}

// Present implements Sink.
func (s *ImageSink) Present(pixels []uint32, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidDimensions, len(pixels), width, height)
	}
	s.Image = packedToImage(pixels, width, height)
	return nil
}

// PNGSink writes each presented frame to a PNG file.
type PNGSink struct {
	Path string
}

// Present implements Sink.
func (s PNGSink) Present(pixels []uint32, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidDimensions, len(pixels), width, height)
	}
	f, err := os.Create(filepath.Clean(s.Path))
	if err != nil {
		return fmt.Errorf("softrast: create file: %w", err)
	}
	if err := png.Encode(f, packedToImage(pixels, width, height)); err != nil {
		_ = f.Close()
		return fmt.Errorf("softrast: encode PNG: %w", err)
	}
	return f.Close()
}

// packedToImage expands 0xRRGGBB pixels into an opaque image.RGBA.
func packedToImage(pixels []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, raw := range pixels[:width*height] {
		o := i * 4
		img.Pix[o+0] = uint8(raw >> 16)
		img.Pix[o+1] = uint8(raw >> 8)
		img.Pix[o+2] = uint8(raw)
		img.Pix[o+3] = 0xFF
	}
	return img
}

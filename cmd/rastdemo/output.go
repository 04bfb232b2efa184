package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/softrast"
)

// sinkFor picks a sink from the output file extension.
func sinkFor(path string) (softrast.Sink, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return softrast.PNGSink{Path: path}, nil
	case ".bmp":
		return encoderSink(path, bmp.Encode), nil
	case ".tif", ".tiff":
		return encoderSink(path, func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

// encoderSink writes each frame to path with encode.
func encoderSink(path string, encode func(io.Writer, image.Image) error) softrast.Sink {
	return softrast.SinkFunc(func(pixels []uint32, width, height int) error {
		var img softrast.ImageSink
		if err := img.Present(pixels, width, height); err != nil {
			return err
		}
		f, err := os.Create(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("create file: %w", err)
		}
		if err := encode(f, img.Image); err != nil {
			_ = f.Close()
			return fmt.Errorf("encode %s: %w", filepath.Ext(path), err)
		}
		return f.Close()
	})
}

// Package texture provides images and samplers for fragment shaders.
//
// An Image stores opaque texels packed as 0xRRGGBB, the same layout as a
// softrast framebuffer. A Sampler reads any Source with nearest, bilinear
// or anisotropic filtering and per-axis address modes.
package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/softrast"
)

// Common errors for texture operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrDataSize is returned when the pixel slice does not hold exactly
	// width*height texels.
	ErrDataSize = errors.New("texture: pixel data does not match dimensions")

	// ErrEmptyData is returned when encoded image data is empty.
	ErrEmptyData = errors.New("texture: empty data")
)

// Source is a readable grid of texels.
//
// Samplers only call Texel with 0 <= x < Width() and 0 <= y < Height().
type Source interface {
	Width() int
	Height() int
	Texel(x, y int) softrast.Color
}

// Image is an immutable texture.
type Image struct {
	pixels []uint32
	width  int
	height int
}

var _ Source = (*Image)(nil)

// NewImage creates an image from packed 0xRRGGBB texels in row-major
// order. The image takes ownership of pixels.
func NewImage(pixels []uint32, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d texels for %dx%d", ErrDataSize, len(pixels), width, height)
	}
	return &Image{pixels: pixels, width: width, height: height}, nil
}

// FromColors creates an image from a row-major slice of colors.
func FromColors(colors []softrast.Color, width, height int) (*Image, error) {
	pixels := make([]uint32, len(colors))
	for i, c := range colors {
		pixels[i] = softrast.ToRaw(c)
	}
	return NewImage(pixels, width, height)
}

// FromImage converts any image to a texture. Alpha is discarded.
func FromImage(img image.Image) (*Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Rect, img, b.Min, xdraw.Src)
	}
	return fromRGBA(rgba), nil
}

// fromRGBA packs an RGBA image whose bounds start at the origin.
func fromRGBA(rgba *image.RGBA) *Image {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	pixels := make([]uint32, w*h)
	for y := range h {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*w]
		for x := range w {
			p := row[4*x : 4*x+4]
			pixels[y*w+x] = uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return &Image{pixels: pixels, width: w, height: h}
}

// Checkerboard creates a width x height image of cell-sized squares
// alternating between a and b, starting with a in the top-left corner.
func Checkerboard(width, height, cell int, a, b softrast.Color) (*Image, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidDimensions, cell)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	ra, rb := softrast.ToRaw(a), softrast.ToRaw(b)
	pixels := make([]uint32, width*height)
	for y := range height {
		for x := range width {
			if (x/cell+y/cell)%2 == 0 {
				pixels[y*width+x] = ra
			} else {
				pixels[y*width+x] = rb
			}
		}
	}
	return &Image{pixels: pixels, width: width, height: height}, nil
}

// Width returns the width in texels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height in texels.
func (m *Image) Height() int {
	return m.height
}

// Size returns the image extent.
func (m *Image) Size() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(m.width),  //nolint:gosec // positive by construction
		Height:             uint32(m.height), //nolint:gosec // positive by construction
		DepthOrArrayLayers: 1,
	}
}

// Texel returns the color at (x, y). The coordinates must be in range.
func (m *Image) Texel(x, y int) softrast.Color {
	return softrast.FromRaw(m.pixels[y*m.width+x])
}

// Pixels returns the packed texels. The slice must not be modified.
func (m *Image) Pixels() []uint32 {
	return m.pixels
}

// ToRGBA converts the image to an opaque image.RGBA.
func (m *Image) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for i, p := range m.pixels {
		o := 4 * i
		img.Pix[o+0] = uint8(p >> 16)
		img.Pix[o+1] = uint8(p >> 8)
		img.Pix[o+2] = uint8(p)
		img.Pix[o+3] = 0xff
	}
	return img
}

// Resize returns a copy of the image scaled to width x height with a
// Catmull-Rom filter.
func (m *Image) Resize(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == m.width && height == m.height {
		return m, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Rect, m.ToRGBA(), image.Rect(0, 0, m.width, m.height), xdraw.Src, nil)
	return fromRGBA(dst), nil
}

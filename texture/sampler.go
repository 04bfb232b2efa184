package texture

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softrast"
	"github.com/gogpu/softrast/linear"
)

// Filter selects how texels are combined.
type Filter uint8

const (
	// FilterNearest selects the texel containing the sample point.
	FilterNearest Filter = iota

	// FilterBilinear blends the four texels around the sample point.
	FilterBilinear

	// FilterAnisotropic averages a grid of bilinear samples covering the
	// pixel footprint, up to 2^MaxLevel texels per axis.
	FilterAnisotropic
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterAnisotropic:
		return "Anisotropic"
	default:
		return "Unknown"
	}
}

// Sampler reads filtered colors from a Source at normalized coordinates.
//
// (0, 0) is the top-left corner of the first texel and (1, 1) the
// bottom-right corner of the last. The zero value samples nearest texels
// with clamp-to-edge addressing.
type Sampler struct {
	// AddressU and AddressV map out-of-range texel indices per axis.
	// AddressModeUndefined behaves as ClampToEdge.
	AddressU, AddressV gputypes.AddressMode

	Filter Filter

	// MaxLevel bounds the anisotropic footprint to 2^MaxLevel texels.
	MaxLevel int
}

// FromDescriptor builds a sampler from a GPU sampler descriptor.
//
// A MaxAnisotropy above 1 selects FilterAnisotropic with MaxLevel set to
// floor(log2(MaxAnisotropy)). Otherwise a linear min or mag filter selects
// FilterBilinear. The W address mode, LOD and compare settings have no
// equivalent and are ignored.
func FromDescriptor(desc gputypes.SamplerDescriptor) Sampler {
	s := Sampler{
		AddressU: desc.AddressModeU,
		AddressV: desc.AddressModeV,
	}
	switch {
	case desc.MaxAnisotropy > 1:
		s.Filter = FilterAnisotropic
		for n := desc.MaxAnisotropy; n > 1; n >>= 1 {
			s.MaxLevel++
		}
	case desc.MinFilter == gputypes.FilterModeLinear || desc.MagFilter == gputypes.FilterModeLinear:
		s.Filter = FilterBilinear
	default:
		s.Filter = FilterNearest
	}
	return s
}

// Sample returns the filtered color of src at uv.
//
// duvdx and duvdy are the change of uv for a one pixel step in x and y.
// Only the anisotropic filter uses them.
func (s Sampler) Sample(src Source, uv, duvdx, duvdy linear.Vec2) softrast.Color {
	size := linear.V2(float32(src.Width()), float32(src.Height()))
	p := uv.MulVec(size)

	switch s.Filter {
	case FilterBilinear:
		return s.bilinear(src, p)
	case FilterAnisotropic:
		return s.anisotropic(src, p, duvdx.MulVec(size).Abs(), duvdy.MulVec(size).Abs())
	default:
		return s.nearest(src, p)
	}
}

// nearest samples the texel containing the texel-space point p.
func (s Sampler) nearest(src Source, p linear.Vec2) softrast.Color {
	return s.texel(src, int(math32.Floor(p.X)), int(math32.Floor(p.Y)))
}

// bilinear blends the four texels whose centers surround p.
func (s Sampler) bilinear(src Source, p linear.Vec2) softrast.Color {
	p = p.Sub(linear.V2(0.5, 0.5))
	f := p.Floor()
	a := p.Sub(f)
	i, j := int(f.X), int(f.Y)

	c00 := s.texel(src, i, j).Mul((1 - a.X) * (1 - a.Y))
	c10 := s.texel(src, i+1, j).Mul(a.X * (1 - a.Y))
	c01 := s.texel(src, i, j+1).Mul((1 - a.X) * a.Y)
	c11 := s.texel(src, i+1, j+1).Mul(a.X * a.Y)
	return c00.Add(c10).Add(c01).Add(c11)
}

// anisotropic averages an n x m grid of bilinear samples centered at p.
// The footprint along each axis is the smaller of the two screen-space
// derivatives, limited to 2^MaxLevel texels.
func (s Sampler) anisotropic(src Source, p, dx, dy linear.Vec2) softrast.Color {
	limit := math32.Pow(2, float32(max(s.MaxLevel, 0)))
	footprint := linear.V2(
		min(dx.X, dy.X, limit),
		min(dx.Y, dy.Y, limit),
	)
	nx := max(int(math32.Ceil(footprint.X)), 1)
	ny := max(int(math32.Ceil(footprint.Y)), 1)

	var sum softrast.Color
	for j := range ny {
		oy := ((float32(j)+0.5)/float32(ny) - 0.5) * footprint.Y
		for i := range nx {
			ox := ((float32(i)+0.5)/float32(nx) - 0.5) * footprint.X
			sum = sum.Add(s.bilinear(src, p.Add(linear.V2(ox, oy))))
		}
	}
	return sum.Mul(1 / float32(nx*ny))
}

// texel fetches a texel after applying the address modes.
func (s Sampler) texel(src Source, i, j int) softrast.Color {
	return src.Texel(address(s.AddressU, i, src.Width()), address(s.AddressV, j, src.Height()))
}

// address maps a texel index into [0, size).
func address(mode gputypes.AddressMode, i, size int) int {
	switch mode {
	case gputypes.AddressModeRepeat:
		return euclidMod(i, size)
	case gputypes.AddressModeMirrorRepeat:
		m := euclidMod(i, 2*size)
		if m >= size {
			return 2*size - 1 - m
		}
		return m
	default:
		return min(max(i, 0), size-1)
	}
}

// euclidMod returns i mod n in [0, n).
func euclidMod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

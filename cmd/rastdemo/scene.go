package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/softrast"
	"github.com/gogpu/softrast/texture"
)

// Scene describes what the demo renders.
type Scene struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Background string   `yaml:"background"`
	Camera     Camera   `yaml:"camera"`
	Objects    []Object `yaml:"objects"`

	// dir resolves relative texture paths.
	dir string
}

// Camera is a perspective camera on the +z axis looking at the origin.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV      float32 `yaml:"fov"`
	Distance float32 `yaml:"distance"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

// Object is one mesh instance.
type Object struct {
	// Mesh is one of triangle, quad or cube.
	Mesh  string `yaml:"mesh"`
	Color string `yaml:"color"`

	// Texture is "checker" or an image path. Without a texture the mesh is
	// drawn with per-vertex colors.
	Texture string     `yaml:"texture"`
	Sampler SamplerDef `yaml:"sampler"`

	Position [3]float32 `yaml:"position"`
	// Rotation is in degrees around x, y and z, applied in z, x, y order.
	Rotation [3]float32 `yaml:"rotation"`
	Scale    float32    `yaml:"scale"`

	// Cull is back, front or none.
	Cull string `yaml:"cull"`
}

// SamplerDef mirrors the subset of a GPU sampler descriptor the demo
// exposes.
type SamplerDef struct {
	// Address is clamp, repeat or mirror.
	Address    string `yaml:"address"`
	// Filter is nearest or linear.
	Filter     string `yaml:"filter"`
	Anisotropy uint16 `yaml:"anisotropy"`

	// Repeat is the number of texture repetitions across a face.
	Repeat float32 `yaml:"repeat"`
}

// defaultScene is rendered when no scene file is given.
const defaultScene = `
width: 640
height: 360
background: "#1a1a2e"
camera:
  fov: 60
  distance: 3
objects:
  - mesh: cube
    texture: checker
    color: "#ffcc66"
    sampler:
      address: repeat
      filter: linear
      anisotropy: 8
      repeat: 2
    position: [-0.7, 0, 0]
    rotation: [25, 35, 0]
  - mesh: cube
    position: [0.9, 0.1, -0.5]
    rotation: [-20, -30, 10]
    scale: 0.8
  - mesh: quad
    texture: checker
    sampler:
      address: repeat
      filter: linear
      anisotropy: 16
      repeat: 8
    position: [0, -0.8, -1]
    rotation: [-80, 0, 0]
    scale: 6
`

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := ParseScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// ParseScene decodes a YAML scene and fills in defaults.
func ParseScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	s.setDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) setDefaults() {
	if s.Width == 0 {
		s.Width = 640
	}
	if s.Height == 0 {
		s.Height = 360
	}
	if s.Background == "" {
		s.Background = "#000000"
	}
	if s.Camera.FOV == 0 {
		s.Camera.FOV = 60
	}
	if s.Camera.Distance == 0 {
		s.Camera.Distance = 3
	}
	if s.Camera.Near == 0 {
		s.Camera.Near = 0.1
	}
	if s.Camera.Far == 0 {
		s.Camera.Far = 100
	}
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Scale == 0 {
			o.Scale = 1
		}
		if o.Cull == "" {
			o.Cull = "back"
		}
		if o.Sampler.Repeat == 0 {
			o.Sampler.Repeat = 1
		}
	}
}

func (s *Scene) validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	if _, err := softrast.ParseHex(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if s.Camera.Near >= s.Camera.Far {
		return fmt.Errorf("camera near %v must be below far %v", s.Camera.Near, s.Camera.Far)
	}
	for i, o := range s.Objects {
		switch o.Mesh {
		case "triangle", "quad", "cube":
		default:
			return fmt.Errorf("object %d: unknown mesh %q", i, o.Mesh)
		}
		if o.Color != "" {
			if _, err := softrast.ParseHex(o.Color); err != nil {
				return fmt.Errorf("object %d: color: %w", i, err)
			}
		}
		if _, err := parseCull(o.Cull); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		if _, err := o.Sampler.descriptor(); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

func parseCull(s string) (gputypes.CullMode, error) {
	switch strings.ToLower(s) {
	case "back":
		return gputypes.CullModeBack, nil
	case "front":
		return gputypes.CullModeFront, nil
	case "none":
		return gputypes.CullModeNone, nil
	default:
		return 0, fmt.Errorf("unknown cull mode %q", s)
	}
}

// descriptor converts the definition to a GPU sampler descriptor.
func (d SamplerDef) descriptor() (gputypes.SamplerDescriptor, error) {
	desc := gputypes.DefaultSamplerDescriptor()

	switch strings.ToLower(d.Address) {
	case "", "clamp":
		desc.AddressModeU = gputypes.AddressModeClampToEdge
	case "repeat":
		desc.AddressModeU = gputypes.AddressModeRepeat
	case "mirror":
		desc.AddressModeU = gputypes.AddressModeMirrorRepeat
	default:
		return desc, fmt.Errorf("unknown address mode %q", d.Address)
	}
	desc.AddressModeV = desc.AddressModeU

	switch strings.ToLower(d.Filter) {
	case "", "nearest":
		desc.MagFilter, desc.MinFilter = gputypes.FilterModeNearest, gputypes.FilterModeNearest
	case "linear":
		desc.MagFilter, desc.MinFilter = gputypes.FilterModeLinear, gputypes.FilterModeLinear
	default:
		return desc, fmt.Errorf("unknown filter %q", d.Filter)
	}

	if d.Anisotropy > 1 {
		desc.MaxAnisotropy = d.Anisotropy
	}
	return desc, nil
}

// sampler builds the texture sampler for the definition.
func (d SamplerDef) sampler() (texture.Sampler, error) {
	desc, err := d.descriptor()
	if err != nil {
		return texture.Sampler{}, err
	}
	return texture.FromDescriptor(desc), nil
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softrast"
	"github.com/gogpu/softrast/mesh"
	"github.com/gogpu/softrast/texture"
)

func TestParseDefaultScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader(defaultScene))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}
	if s.Width != 640 || s.Height != 360 {
		t.Errorf("size = %dx%d, want 640x360", s.Width, s.Height)
	}
	if len(s.Objects) != 3 {
		t.Fatalf("len(Objects) = %d, want 3", len(s.Objects))
	}
	if got := s.Objects[1].Scale; got != 0.8 {
		t.Errorf("Objects[1].Scale = %v, want 0.8", got)
	}
	if got := s.Objects[1].Cull; got != "back" {
		t.Errorf("Objects[1].Cull = %q, want default back", got)
	}
	if s.Camera.Near != 0.1 || s.Camera.Far != 100 {
		t.Errorf("camera clip range = %v..%v", s.Camera.Near, s.Camera.Far)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "colour: red\n", "colour"},
		{"unknown mesh", "objects:\n  - mesh: teapot\n", "teapot"},
		{"unknown cull", "objects:\n  - mesh: cube\n    cull: sideways\n", "sideways"},
		{"unknown address", "objects:\n  - mesh: cube\n    sampler:\n      address: wrap\n", "wrap"},
		{"bad camera", "camera:\n  near: 5\n  far: 1\n", "near"},
		{"bad background", "background: \"#12zz56\"\n", "background"},
		{"bad object color", "objects:\n  - mesh: quad\n    color: red\n", "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseScene() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseSceneEmpty(t *testing.T) {
	s, err := ParseScene(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseScene(empty) error = %v", err)
	}
	if s.Width != 640 || len(s.Objects) != 0 {
		t.Errorf("empty scene = %+v", s)
	}
}

func TestSamplerDescriptor(t *testing.T) {
	desc, err := SamplerDef{Address: "repeat", Filter: "linear", Anisotropy: 4}.descriptor()
	if err != nil {
		t.Fatal(err)
	}
	if desc.AddressModeU != gputypes.AddressModeRepeat || desc.AddressModeV != gputypes.AddressModeRepeat {
		t.Errorf("address modes = %v, %v", desc.AddressModeU, desc.AddressModeV)
	}
	s := texture.FromDescriptor(desc)
	if s.Filter != texture.FilterAnisotropic || s.MaxLevel != 2 {
		t.Errorf("sampler = %+v, want anisotropic level 2", s)
	}

	s, err = SamplerDef{}.sampler()
	if err != nil {
		t.Fatal(err)
	}
	if s.Filter != texture.FilterNearest || s.AddressU != gputypes.AddressModeClampToEdge {
		t.Errorf("default sampler = %+v", s)
	}
}

func TestRenderQuadFillsCenter(t *testing.T) {
	s, err := ParseScene(strings.NewReader(`
width: 32
height: 32
background: "#000000"
camera: {fov: 90, distance: 1}
objects:
  - mesh: quad
    color: "#ff0000"
`))
	if err != nil {
		t.Fatal(err)
	}

	fb, stats, err := Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stats.Triangles != 2 || stats.Culled != 0 {
		t.Errorf("stats = %+v, want 2 front-facing triangles", stats)
	}
	if got := fb.ColorAt(16, 16); got != softrast.Red {
		t.Errorf("center = %v, want red", got)
	}
	if got := fb.ColorAt(0, 0); got != softrast.Black {
		t.Errorf("corner = %v, want background", got)
	}
}

func TestRenderCubeShowsFrontFaces(t *testing.T) {
	s, err := ParseScene(strings.NewReader(`
width: 48
height: 48
objects:
  - mesh: cube
`))
	if err != nil {
		t.Fatal(err)
	}

	fb, stats, err := Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Looking straight at the cube only the front face survives culling.
	if stats.Triangles != 12 || stats.Rasterized != 2 {
		t.Errorf("stats = %+v, want 12 triangles with 2 rasterized", stats)
	}
	if got := fb.ColorAt(24, 24); got != softrast.FromRaw(softrast.ToRaw(facePalette[mesh.FaceFront])) {
		t.Errorf("center = %v, want the front face color", got)
	}
}

func TestRenderDefaultSceneToFiles(t *testing.T) {
	s, err := ParseScene(strings.NewReader(defaultScene))
	if err != nil {
		t.Fatal(err)
	}
	s.Width, s.Height = 64, 36

	fb, stats, err := Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stats.Triangles != 26 || stats.Written == 0 {
		t.Errorf("stats = %+v", stats)
	}

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(dir, name)
		sink, err := sinkFor(path)
		if err != nil {
			t.Fatalf("sinkFor(%q) error = %v", name, err)
		}
		if err := fb.Present(sink); err != nil {
			t.Fatalf("Present(%q) error = %v", name, err)
		}
		img, err := texture.Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		if img.Width() != 64 || img.Height() != 36 {
			t.Errorf("%s: size = %dx%d", name, img.Width(), img.Height())
		}
		for i, p := range img.Pixels() {
			if p != fb.Pixels()[i] {
				t.Fatalf("%s: pixel %d = %06x, want %06x", name, i, p, fb.Pixels()[i])
			}
		}
	}

	if _, err := sinkFor(filepath.Join(dir, "out.gif")); err == nil {
		t.Error("sinkFor(.gif) succeeded")
	}
}

func TestLoadSceneWithTextureFile(t *testing.T) {
	dir := t.TempDir()
	img, err := texture.Checkerboard(4, 4, 2, softrast.Green, softrast.Green)
	if err != nil {
		t.Fatal(err)
	}
	sink := softrast.PNGSink{Path: filepath.Join(dir, "green.png")}
	if err := sink.Present(img.Pixels(), 4, 4); err != nil {
		t.Fatal(err)
	}
	scene := "width: 16\nheight: 16\ncamera: {fov: 90, distance: 1}\nobjects:\n  - mesh: quad\n    texture: green.png\n"
	if err := os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(scene), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScene(filepath.Join(dir, "scene.yaml"))
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}
	fb, _, err := Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := fb.ColorAt(8, 8); got != softrast.Green {
		t.Errorf("center = %v, want green", got)
	}
}

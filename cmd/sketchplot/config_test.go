package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scottkirkwood/sketch"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
out_dir = "out"

[[figure]]
name = "parabola"
kind = "function"
curve = "parabola"
seed = 100
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "out" {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, "out")
	}
	if len(cfg.Figures) != 1 {
		t.Fatalf("want 1 figure, got %d", len(cfg.Figures))
	}

	fig := cfg.Figures[0]
	if fig.Width != 900 || fig.Height != 900 || fig.Margin != 120 {
		t.Errorf("size defaults wrong: %gx%g margin %g", fig.Width, fig.Height, fig.Margin)
	}
	if fig.Samples != 110 {
		t.Errorf("Samples = %d, want 110", fig.Samples)
	}
	if fig.Ticks != 6 {
		t.Errorf("Ticks = %d, want 6", fig.Ticks)
	}
	if len(fig.Formats) != 1 || fig.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want [svg]", fig.Formats)
	}
	if fig.Xmin != -3.2 || fig.Xmax != 3.2 {
		t.Errorf("x window defaults wrong: [%g, %g]", fig.Xmin, fig.Xmax)
	}
}

func TestLoadConfigParametricDefaults(t *testing.T) {
	path := writeConfig(t, `
[[figure]]
name = "circle"
kind = "parametric"
curve = "circle"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Figures[0].Samples; got != 200 {
		t.Errorf("parametric Samples = %d, want 200", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no figures", `out_dir = "out"`},
		{"missing name", `
[[figure]]
kind = "axes"
`},
		{"unknown kind", `
[[figure]]
name = "x"
kind = "scatter"
`},
		{"unknown curve", `
[[figure]]
name = "x"
kind = "function"
curve = "nope"
`},
		{"unknown parametric curve", `
[[figure]]
name = "x"
kind = "parametric"
curve = "parabola"
`},
		{"bad format", `
[[figure]]
name = "x"
kind = "axes"
formats = ["bmp"]
`},
		{"inverted window", `
[[figure]]
name = "x"
kind = "axes"
xmin = 5.0
xmax = 1.0
`},
		{"margin too big", `
[[figure]]
name = "x"
kind = "axes"
width = 100.0
height = 100.0
margin = 60.0
`},
		{"projection point outside window", `
[[figure]]
name = "x"
kind = "projection"
curve = "parabola"
point_x = 99.0
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := LoadConfig(path); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestDrawFigureKinds(t *testing.T) {
	// Every kind must emit at least the two axis strokes, and the richer
	// kinds strictly more.
	base := Figure{Name: "t", Seed: 3}
	base.applyDefaults()

	axes := base
	axes.Kind = kindAxes

	fn := base
	fn.Kind = kindFunction
	fn.Curve = "sine"

	proj := base
	proj.Kind = kindProjection
	proj.Curve = "parabola"
	proj.PointX = 1.0

	countStrokes := func(f *Figure) int {
		var buf strokeCounter
		drawFigure(&buf, f)
		return buf.n
	}

	nAxes := countStrokes(&axes)
	nFn := countStrokes(&fn)
	nProj := countStrokes(&proj)

	if nAxes < 2 {
		t.Errorf("axes figure emitted %d strokes", nAxes)
	}
	// function curve adds samples-1 strokes on top of the axes
	if want := nAxes + base.Samples - 1; nFn != want {
		t.Errorf("function figure emitted %d strokes, want %d", nFn, want)
	}
	// projection adds two dashed drops and a crosshair
	if want := nFn + 4; nProj != want {
		t.Errorf("projection figure emitted %d strokes, want %d", nProj, want)
	}
}

type strokeCounter struct{ n int }

func (c *strokeCounter) Stroke(sketch.Path) { c.n++ }

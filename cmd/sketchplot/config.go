package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/scottkirkwood/sketch"
)

// Figure kinds.
const (
	kindAxes       = "axes"       // axes, arrowheads and ticks only
	kindFunction   = "function"   // axes plus a sampled y=f(x) curve
	kindParametric = "parametric" // axes plus a sampled (x(t), y(t)) curve
	kindProjection = "projection" // function plus dashed drops from one point
)

// Config is a gallery file: an output directory plus the figures to render.
type Config struct {
	OutDir  string   `toml:"out_dir"`
	Figures []Figure `toml:"figure"`
}

// Figure describes one rendered image.
type Figure struct {
	Name    string   `toml:"name"`
	Kind    string   `toml:"kind"`
	Curve   string   `toml:"curve"` // preset name, see curveFuncs / paramFuncs
	Seed    int64    `toml:"seed"`
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Margin  float64  `toml:"margin"`
	Samples int      `toml:"samples"`
	Ticks   int      `toml:"ticks"`
	Formats []string `toml:"formats"`

	Xmin float64 `toml:"xmin"`
	Xmax float64 `toml:"xmax"`
	Ymin float64 `toml:"ymin"`
	Ymax float64 `toml:"ymax"`

	// Data x of the projected point, for kind "projection".
	PointX float64 `toml:"point_x"`

	Style StyleOverride `toml:"style"`
}

// StyleOverride tweaks the data stroke style; zero fields keep defaults.
type StyleOverride struct {
	Width float64 `toml:"width"`
	Amp   float64 `toml:"amp"`
	Waves float64 `toml:"waves"`
	Taper float64 `toml:"taper"`
	Color string  `toml:"color"`
}

// Named curve presets for kind "function" and "projection".
var curveFuncs = map[string]func(float64) float64{
	"parabola": func(x float64) float64 { return 0.35*(x-1.6)*(x-1.6) - 1.3 },
	"sine":     func(x float64) float64 { return 2.5 * math.Sin(1.3*x) },
	"cubic":    func(x float64) float64 { return 0.12*x*x*x - 0.8*x },
	"exp":      func(x float64) float64 { return math.Exp(0.6*x) - 2.0 },
}

// Named curve presets for kind "parametric".
var paramFuncs = map[string]func(float64) (float64, float64){
	"circle": func(t float64) (float64, float64) {
		a := 2 * math.Pi * t
		return 2.5 * math.Cos(a), 2.5 * math.Sin(a)
	},
	"lissajous": func(t float64) (float64, float64) {
		a := 2 * math.Pi * t
		return 2.8 * math.Sin(3*a), 2.8 * math.Sin(2*a)
	},
	"spiral": func(t float64) (float64, float64) {
		a := 6 * math.Pi * t
		r := 0.15 + 2.6*t
		return r * math.Cos(a), r * math.Sin(a)
	},
}

// LoadConfig reads a gallery TOML file, fills in defaults and validates
// every figure.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Figures) == 0 {
		return nil, fmt.Errorf("%s: no [[figure]] entries", path)
	}
	for i := range cfg.Figures {
		fig := &cfg.Figures[i]
		fig.applyDefaults()
		if err := fig.validate(); err != nil {
			return nil, fmt.Errorf("%s: figure %d (%q): %w", path, i, fig.Name, err)
		}
	}
	return &cfg, nil
}

func (f *Figure) applyDefaults() {
	if f.Width <= 0 {
		f.Width = 900
	}
	if f.Height <= 0 {
		f.Height = 900
	}
	if f.Margin <= 0 {
		f.Margin = 120
	}
	if f.Samples <= 0 {
		if f.Kind == kindParametric {
			f.Samples = 200
		} else {
			f.Samples = 110
		}
	}
	if f.Ticks == 0 {
		f.Ticks = 6
	}
	if len(f.Formats) == 0 {
		f.Formats = []string{"svg"}
	}
	if f.Xmin == 0 && f.Xmax == 0 {
		f.Xmin, f.Xmax = -3.2, 3.2
	}
	if f.Ymin == 0 && f.Ymax == 0 {
		f.Ymin, f.Ymax = -3.2, 3.2
	}
}

func (f *Figure) validate() error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch f.Kind {
	case kindAxes:
	case kindFunction, kindProjection:
		if _, ok := curveFuncs[f.Curve]; !ok {
			return fmt.Errorf("unknown curve %q", f.Curve)
		}
	case kindParametric:
		if _, ok := paramFuncs[f.Curve]; !ok {
			return fmt.Errorf("unknown parametric curve %q", f.Curve)
		}
	default:
		return fmt.Errorf("unknown kind %q", f.Kind)
	}
	if f.Xmax <= f.Xmin {
		return fmt.Errorf("xmax (%g) must be greater than xmin (%g)", f.Xmax, f.Xmin)
	}
	if f.Ymax <= f.Ymin {
		return fmt.Errorf("ymax (%g) must be greater than ymin (%g)", f.Ymax, f.Ymin)
	}
	if 2*f.Margin >= f.Width || 2*f.Margin >= f.Height {
		return fmt.Errorf("margin %g leaves no room in a %gx%g figure", f.Margin, f.Width, f.Height)
	}
	for _, format := range f.Formats {
		switch format {
		case "svg", "png", "pdf":
		default:
			return fmt.Errorf("unsupported format %q", format)
		}
	}
	if f.Kind == kindProjection && (f.PointX < f.Xmin || f.PointX > f.Xmax) {
		return fmt.Errorf("point_x %g outside [%g, %g]", f.PointX, f.Xmin, f.Xmax)
	}
	return nil
}

// box maps the figure's data window onto the device rectangle inside the
// margin.
func (f *Figure) box() sketch.PlotBox {
	return sketch.PlotBox{
		X0: f.Margin, Y0: f.Margin,
		W: f.Width - 2*f.Margin, H: f.Height - 2*f.Margin,
		Xmin: f.Xmin, Xmax: f.Xmax,
		Ymin: f.Ymin, Ymax: f.Ymax,
	}
}

// dataStyle is the default data stroke with the figure's overrides applied.
func (f *Figure) dataStyle() sketch.StrokeStyle {
	sty := sketch.StrokeStyle{
		Width: 2.2, Amp: 0.55, Waves: 0.75, Taper: 0.10,
		Color: "#111111", Linecap: "round", Linejoin: "round",
	}
	if f.Style.Width > 0 {
		sty.Width = f.Style.Width
	}
	if f.Style.Amp > 0 {
		sty.Amp = f.Style.Amp
	}
	if f.Style.Waves > 0 {
		sty.Waves = f.Style.Waves
	}
	if f.Style.Taper > 0 {
		sty.Taper = f.Style.Taper
	}
	if f.Style.Color != "" {
		sty.Color = f.Style.Color
	}
	return sty
}

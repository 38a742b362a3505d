package core

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// ParseHex parses "#rrggbb" into RGB
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Palette hands out deterministic random body colors
type Palette struct {
	rng *rand.Rand
}

// NewPalette creates a palette seeded for reproducible runs
func NewPalette(seed uint64) *Palette {
	return &Palette{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random, reasonably bright color
func (p *Palette) Next() RGB {
	h := p.rng.Float64() * 360
	c := 0.4 + 0.4*p.rng.Float64()
	l := 0.55 + 0.3*p.rng.Float64()
	r, g, b := colorful.Hcl(h, c, l).Clamped().RGB255()
	return RGB{r, g, b}
}

package scheme

import (
	"sort"

	"github.com/jmylchreest/tinge/pkg/color"
)

// PaletteOptions controls palette extraction.
type PaletteOptions struct {
	// Threshold drops colors whose share of all color occurrences falls
	// below this fraction. Zero keeps every color.
	Threshold float64 `json:"threshold"`
}

// DefaultPaletteOptions returns the palette extraction defaults.
func DefaultPaletteOptions() *PaletteOptions {
	return &PaletteOptions{Threshold: 0.01}
}

// GetPalette collects every color used by the scheme across group fg, bg
// and sp attributes and the terminal slots, drops colors occurring below
// the threshold share, and returns the distinct survivors sorted from
// darkest to lightest.
func (cs *Colorscheme) GetPalette(opts *PaletteOptions) ([]color.Hex, error) {
	if opts == nil {
		opts = DefaultPaletteOptions()
	}
	counts := make(map[color.Hex]int)
	total := 0
	tally := func(c color.Color) error {
		if c == nil {
			return nil
		}
		h, err := color.Convert(c, color.SpaceHex, nil)
		if err != nil {
			return err
		}
		counts[h.(color.Hex)]++
		total++
		return nil
	}
	for _, g := range cs.Groups {
		for _, c := range []color.Color{g.Fg, g.Bg, g.Sp} {
			if err := tally(c); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range cs.Terminal {
		if err := tally(c); err != nil {
			return nil, err
		}
	}
	if total == 0 {
		return nil, nil
	}

	palette := make([]color.Hex, 0, len(counts))
	for h, n := range counts {
		if float64(n)/float64(total) >= opts.Threshold {
			palette = append(palette, h)
		}
	}
	lightness := make(map[color.Hex]float64, len(palette))
	for _, h := range palette {
		lch, err := color.Convert(h, color.SpaceOklch, nil)
		if err != nil {
			return nil, err
		}
		lightness[h] = lch.(color.Oklch).L
	}
	sort.Slice(palette, func(i, j int) bool {
		li, lj := lightness[palette[i]], lightness[palette[j]]
		if li != lj {
			return li < lj
		}
		return palette[i] < palette[j]
	})
	return palette, nil
}

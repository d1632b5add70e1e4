package scheme

import (
	"github.com/jmylchreest/tinge/pkg/color"
)

// CtermOptions controls cterm attribute derivation.
type CtermOptions struct {
	// Force overwrites cterm values that are already set.
	Force bool `json:"force"`
}

// DefaultCtermOptions returns the cterm derivation defaults.
func DefaultCtermOptions() *CtermOptions {
	return &CtermOptions{Force: true}
}

// AddCtermAttributes returns a copy where every group with an fg or bg also
// carries the matching 256-color terminal index. Existing cterm values are
// overwritten unless opts.Force is false. Special colors have no cterm slot
// and pass through untouched.
func (cs *Colorscheme) AddCtermAttributes(opts *CtermOptions) (*Colorscheme, error) {
	if opts == nil {
		opts = DefaultCtermOptions()
	}
	out := cs.Clone()
	for _, g := range out.Groups {
		if g.Fg != nil && (opts.Force || g.CtermFg == nil) {
			idx, err := eightBitIndex(g.Fg)
			if err != nil {
				return nil, err
			}
			g.CtermFg = &idx
		}
		if g.Bg != nil && (opts.Force || g.CtermBg == nil) {
			idx, err := eightBitIndex(g.Bg)
			if err != nil {
				return nil, err
			}
			g.CtermBg = &idx
		}
	}
	return out, nil
}

func eightBitIndex(c color.Color) (int, error) {
	out, err := color.Convert(c, color.Space8Bit, nil)
	if err != nil {
		return 0, err
	}
	return int(out.(color.EightBit)), nil
}

// TerminalOptions controls terminal palette derivation.
type TerminalOptions struct {
	// Force replaces terminal slots that are already set.
	Force bool `json:"force"`
	// Background selects the fallback anchor lightness used when the
	// scheme defines no Normal colors: "dark" or "light".
	Background string `json:"background"`
	// PaletteArgs is forwarded to GetPalette when collecting candidates.
	PaletteArgs *PaletteOptions `json:"palette_args"`
}

// DefaultTerminalOptions returns the terminal derivation defaults.
func DefaultTerminalOptions() *TerminalOptions {
	return &TerminalOptions{Background: "dark"}
}

// ansiHues maps the six chromatic ANSI slots to their conventional hue:
// red, green, yellow, blue, magenta, cyan. Bright variants at slot+8 share
// the hue.
var ansiHues = map[int]float64{
	1: 30,
	2: 140,
	3: 90,
	4: 265,
	5: 330,
	6: 195,
}

// AddTerminalColors returns a copy where absent terminal slots are filled
// from the scheme's own palette. Each slot gets the palette color nearest
// to an ideal ANSI target whose lightness is anchored to the resolved
// Normal foreground and background. A scheme with an empty palette is
// returned unchanged.
func (cs *Colorscheme) AddTerminalColors(opts *TerminalOptions) (*Colorscheme, error) {
	if opts == nil {
		opts = DefaultTerminalOptions()
	}
	palette, err := cs.GetPalette(opts.PaletteArgs)
	if err != nil {
		return nil, err
	}
	out := cs.Clone()
	if len(palette) == 0 {
		return out, nil
	}

	fgL, bgL, err := cs.anchorLightness(opts.Background)
	if err != nil {
		return nil, err
	}
	candidates, err := newCandidatePool(palette)
	if err != nil {
		return nil, err
	}

	for slot := 0; slot < 16; slot++ {
		if !opts.Force {
			if _, ok := out.Terminal[slot]; ok {
				continue
			}
		}
		target := ansiTarget(slot, fgL, bgL)
		pick, err := candidates.nearest(target)
		if err != nil {
			return nil, err
		}
		out.Terminal[slot] = pick
	}
	return out, nil
}

// anchorLightness derives the foreground and background lightness used to
// place the ANSI targets. When Normal resolves to concrete colors those
// win; otherwise the fallback depends on the declared background.
func (cs *Colorscheme) anchorLightness(background string) (fgL, bgL float64, err error) {
	fgL, bgL = 85, 15
	if background == "light" {
		fgL, bgL = 20, 90
	}
	normal := cs.resolveGroup("Normal")
	if normal == nil {
		return fgL, bgL, nil
	}
	if normal.Fg != nil {
		l, err := oklchLightness(normal.Fg)
		if err != nil {
			return 0, 0, err
		}
		fgL = l
	}
	if normal.Bg != nil {
		l, err := oklchLightness(normal.Bg)
		if err != nil {
			return 0, 0, err
		}
		bgL = l
	}
	return fgL, bgL, nil
}

func oklchLightness(c color.Color) (float64, error) {
	out, err := color.Convert(c, color.SpaceOklch, nil)
	if err != nil {
		return 0, err
	}
	return out.(color.Oklch).L, nil
}

// ansiTarget builds the ideal Oklch value for one terminal slot. Slots 0,
// 8, 7 and 15 are the achromatic corners around the background and
// foreground; the rest sit on the conventional ANSI hues near the
// foreground lightness, with the dim variants a step darker.
func ansiTarget(slot int, fgL, bgL float64) color.Oklch {
	var t color.Oklch
	switch slot {
	case 0:
		t = color.Oklch{L: bgL}
	case 8:
		t = color.Oklch{L: bgL + 15}
	case 7:
		t = color.Oklch{L: fgL - 15}
	case 15:
		t = color.Oklch{L: fgL}
	default:
		hueSlot, l := slot, fgL-10
		if slot > 8 {
			hueSlot, l = slot-8, fgL
		}
		t = color.Oklch{L: l, C: 10, H: ansiHues[hueSlot]}
	}
	if t.L < 0 {
		t.L = 0
	}
	if t.L > 100 {
		t.L = 100
	}
	return t
}

// chromaticCutoff separates palette colors into gray-ish and colorful
// pools so a near-gray never wins a chromatic slot while colorful
// candidates exist, and vice versa.
const chromaticCutoff = 4.0

type candidate struct {
	hex       color.Hex
	lab       color.Oklab
	chromatic bool
}

type candidatePool struct {
	all       []candidate
	chromatic []candidate
	gray      []candidate
}

func newCandidatePool(palette []color.Hex) (*candidatePool, error) {
	pool := &candidatePool{}
	for _, h := range palette {
		lab, err := color.Convert(h, color.SpaceOklab, nil)
		if err != nil {
			return nil, err
		}
		lch, err := color.Convert(h, color.SpaceOklch, nil)
		if err != nil {
			return nil, err
		}
		c := candidate{
			hex:       h,
			lab:       lab.(color.Oklab),
			chromatic: lch.(color.Oklch).C >= chromaticCutoff,
		}
		pool.all = append(pool.all, c)
		if c.chromatic {
			pool.chromatic = append(pool.chromatic, c)
		} else {
			pool.gray = append(pool.gray, c)
		}
	}
	return pool, nil
}

// nearest returns the pool color closest to the target in Oklab. Targets
// with chroma pick from the chromatic pool and achromatic targets from the
// gray pool, falling back to the whole palette when the preferred pool is
// empty.
func (p *candidatePool) nearest(target color.Oklch) (color.Hex, error) {
	lab, err := color.Convert(target, color.SpaceOklab, nil)
	if err != nil {
		return "", err
	}
	tl := lab.(color.Oklab)

	pool := p.gray
	if target.C > 0 {
		pool = p.chromatic
	}
	if len(pool) == 0 {
		pool = p.all
	}
	best := pool[0]
	bestDist := color.OklabDistance(tl, best.lab)
	for _, c := range pool[1:] {
		if d := color.OklabDistance(tl, c.lab); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best.hex, nil
}

// TransparencyOptions selects which group categories AddTransparency
// strips. Each category covers a fixed set of UI group names.
type TransparencyOptions struct {
	General      bool `json:"general"`
	Float        bool `json:"float"`
	StatusColumn bool `json:"statuscolumn"`
	StatusLine   bool `json:"statusline"`
	TabLine      bool `json:"tabline"`
	WinBar       bool `json:"winbar"`
	// ExtraGroups names additional groups to strip, such as the text or
	// number highlights referenced by defined signs.
	ExtraGroups []string `json:"extra_groups"`
}

// DefaultTransparencyOptions returns the transparency defaults: only the
// general UI category is stripped.
func DefaultTransparencyOptions() *TransparencyOptions {
	return &TransparencyOptions{General: true}
}

var transparencyCategories = map[string][]string{
	"general":      {"Normal", "NormalNC", "EndOfBuffer", "MsgArea", "MsgSeparator", "VertSplit", "WinSeparator"},
	"float":        {"NormalFloat", "FloatBorder", "FloatTitle", "FloatFooter"},
	"statuscolumn": {"FoldColumn", "SignColumn", "LineNr", "LineNrAbove", "LineNrBelow", "CursorLineNr"},
	"statusline":   {"StatusLine", "StatusLineNC"},
	"tabline":      {"TabLine", "TabLineFill", "TabLineSel"},
	"winbar":       {"WinBar", "WinBarNC"},
}

// AddTransparency returns a copy where the groups in every enabled
// category lose their background and cterm background and gain blend 0.
// Groups the scheme does not define are not created.
func (cs *Colorscheme) AddTransparency(opts *TransparencyOptions) *Colorscheme {
	if opts == nil {
		opts = DefaultTransparencyOptions()
	}
	names := make([]string, 0, 8)
	for category, enabled := range map[string]bool{
		"general":      opts.General,
		"float":        opts.Float,
		"statuscolumn": opts.StatusColumn,
		"statusline":   opts.StatusLine,
		"tabline":      opts.TabLine,
		"winbar":       opts.WinBar,
	} {
		if enabled {
			names = append(names, transparencyCategories[category]...)
		}
	}
	names = append(names, opts.ExtraGroups...)

	out := cs.Clone()
	for _, name := range names {
		g, ok := out.Groups[name]
		if !ok {
			continue
		}
		g.Bg = nil
		g.CtermBg = nil
		blend := 0
		g.Blend = &blend
	}
	return out
}

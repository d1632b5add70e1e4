package scheme

import (
	"fmt"
	"math"

	"github.com/jmylchreest/tinge/pkg/color"
)

// Blend computes the scheme a fraction t of the way from one scheme to
// another. Colors interpolate in Oklab, blend values interpolate linearly,
// and everything discrete (style flags, links, cterm indices, the name)
// snaps to the destination at or past the midpoint. Fields present on only
// one side are treated as cleared on the other, so they fade by snapping.
// Groups that come out empty are omitted.
func Blend(from, to *Colorscheme, t float64) (*Colorscheme, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: blend requires two schemes", color.ErrInvalidArgument)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	snap := t >= 0.5

	name := from.Name
	if snap {
		name = to.Name
	}
	out := New(name)

	for name := range unionGroupNames(from, to) {
		a, b := from.Groups[name], to.Groups[name]
		if a == nil {
			a = &Group{}
		}
		if b == nil {
			b = &Group{}
		}
		g, err := blendGroup(a, b, t, snap)
		if err != nil {
			return nil, err
		}
		if !g.Empty() {
			out.Groups[name] = g
		}
	}

	for slot := range unionTerminalSlots(from, to) {
		c, err := blendColor(from.Terminal[slot], to.Terminal[slot], t, snap)
		if err != nil {
			return nil, err
		}
		if c != nil {
			out.Terminal[slot] = c
		}
	}
	return out, nil
}

func blendGroup(a, b *Group, t float64, snap bool) (*Group, error) {
	g := &Group{}
	var err error
	if g.Fg, err = blendColor(a.Fg, b.Fg, t, snap); err != nil {
		return nil, err
	}
	if g.Bg, err = blendColor(a.Bg, b.Bg, t, snap); err != nil {
		return nil, err
	}
	if g.Sp, err = blendColor(a.Sp, b.Sp, t, snap); err != nil {
		return nil, err
	}
	g.Blend = blendInt(a.Blend, b.Blend, t, snap)

	src := a
	if snap {
		src = b
	}
	g.Bold = src.Bold
	g.Italic = src.Italic
	g.Underline = src.Underline
	g.Undercurl = src.Undercurl
	g.Underdouble = src.Underdouble
	g.Underdotted = src.Underdotted
	g.Underdashed = src.Underdashed
	g.Strikethrough = src.Strikethrough
	g.Reverse = src.Reverse
	g.Standout = src.Standout
	g.Nocombine = src.Nocombine
	g.Link = src.Link
	g.CtermFg = clonedInt(src.CtermFg)
	g.CtermBg = clonedInt(src.CtermBg)
	return g, nil
}

// blendColor interpolates when both sides are present and snaps otherwise,
// since there is no halfway point between a color and nothing.
func blendColor(a, b color.Color, t float64, snap bool) (color.Color, error) {
	if a != nil && b != nil {
		return color.Lerp(a, b, t)
	}
	if snap {
		return b, nil
	}
	return a, nil
}

func blendInt(a, b *int, t float64, snap bool) *int {
	if a != nil && b != nil {
		v := int(math.Round(float64(*a) + (float64(*b)-float64(*a))*t))
		return &v
	}
	if snap {
		return clonedInt(b)
	}
	return clonedInt(a)
}

func clonedInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func unionGroupNames(a, b *Colorscheme) map[string]struct{} {
	names := make(map[string]struct{}, len(a.Groups)+len(b.Groups))
	for name := range a.Groups {
		names[name] = struct{}{}
	}
	for name := range b.Groups {
		names[name] = struct{}{}
	}
	return names
}

func unionTerminalSlots(a, b *Colorscheme) map[int]struct{} {
	slots := make(map[int]struct{}, len(a.Terminal)+len(b.Terminal))
	for slot := range a.Terminal {
		slots[slot] = struct{}{}
	}
	for slot := range b.Terminal {
		slots[slot] = struct{}{}
	}
	return slots
}

package scheme

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/tinge/pkg/color"
)

// ModifyFunc rewrites one color of a scheme. It receives the color in
// canonical hex form together with the attribute ("fg", "bg", "sp" or
// "terminal") and the group name or terminal slot it belongs to. Returning
// nil clears the attribute. The returned color is stored as-is.
type ModifyFunc func(hex color.Hex, attr, name string) (color.Color, error)

// ColorModify applies f to every present color of the scheme: each group's
// fg, bg and sp plus every terminal slot. Absent attributes are skipped
// without invoking f. Style flags, blend, link and cterm fields pass
// through untouched.
func (cs *Colorscheme) ColorModify(f ModifyFunc) (*Colorscheme, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: color modify requires a callback", color.ErrInvalidArgument)
	}
	out := cs.Clone()
	for _, name := range out.GroupNames() {
		g := out.Groups[name]
		fields := []struct {
			attr string
			c    *color.Color
		}{
			{"fg", &g.Fg},
			{"bg", &g.Bg},
			{"sp", &g.Sp},
		}
		for _, fld := range fields {
			nc, err := applyModify(f, *fld.c, fld.attr, name)
			if err != nil {
				return nil, err
			}
			*fld.c = nc
		}
	}
	for _, slot := range out.TerminalSlots() {
		nc, err := applyModify(f, out.Terminal[slot], "terminal", strconv.Itoa(slot))
		if err != nil {
			return nil, err
		}
		if nc == nil {
			delete(out.Terminal, slot)
		} else {
			out.Terminal[slot] = nc
		}
	}
	return out, nil
}

func applyModify(f ModifyFunc, c color.Color, attr, name string) (color.Color, error) {
	if c == nil {
		return nil, nil
	}
	out, err := color.Convert(c, color.SpaceHex, nil)
	if err != nil {
		return nil, err
	}
	return f(out.(color.Hex), attr, name)
}

// ChanAdd shifts one channel of every color in the scheme by delta.
func (cs *Colorscheme) ChanAdd(ch color.Channel, delta float64, opts *color.ModifyOptions) (*Colorscheme, error) {
	if err := validChannel(ch); err != nil {
		return nil, err
	}
	return cs.ColorModify(func(h color.Hex, _, _ string) (color.Color, error) {
		return color.ChanAdd(h, ch, delta, opts)
	})
}

// ChanMultiply scales one channel of every color in the scheme by factor.
func (cs *Colorscheme) ChanMultiply(ch color.Channel, factor float64, opts *color.ModifyOptions) (*Colorscheme, error) {
	if err := validChannel(ch); err != nil {
		return nil, err
	}
	return cs.ColorModify(func(h color.Hex, _, _ string) (color.Color, error) {
		return color.ChanMultiply(h, ch, factor, opts)
	})
}

// ChanInvert mirrors one channel of every color in the scheme within its
// domain.
func (cs *Colorscheme) ChanInvert(ch color.Channel, opts *color.ModifyOptions) (*Colorscheme, error) {
	if err := validChannel(ch); err != nil {
		return nil, err
	}
	return cs.ColorModify(func(h color.Hex, _, _ string) (color.Color, error) {
		return color.ChanInvert(h, ch, opts)
	})
}

// ChanSet snaps one channel of every color in the scheme to the nearest of
// the candidate values.
func (cs *Colorscheme) ChanSet(ch color.Channel, values []float64, opts *color.ModifyOptions) (*Colorscheme, error) {
	if err := validChannel(ch); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: set on channel %q requires at least one candidate value", color.ErrInvalidArgument, ch)
	}
	return cs.ColorModify(func(h color.Hex, _, _ string) (color.Color, error) {
		return color.ChanSet(h, ch, values, opts)
	})
}

// ChanRepel displaces one channel of every color in the scheme away from
// (coef > 0) or toward (coef < 0) the source values.
func (cs *Colorscheme) ChanRepel(ch color.Channel, sources []float64, coef float64, opts *color.ModifyOptions) (*Colorscheme, error) {
	if err := validChannel(ch); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: repel on channel %q requires at least one source value", color.ErrInvalidArgument, ch)
	}
	return cs.ColorModify(func(h color.Hex, _, _ string) (color.Color, error) {
		return color.ChanRepel(h, ch, sources, coef, opts)
	})
}

// SimulateCVD renders every color in the scheme as a viewer with the given
// deficiency would see it.
func (cs *Colorscheme) SimulateCVD(kind color.CVDKind, severity float64) (*Colorscheme, error) {
	if !color.IsValidCVDKind(kind) {
		return nil, fmt.Errorf("%w: cvd kind %q is not one of %v", color.ErrInvalidArgument, kind, color.ValidCVDKinds())
	}
	return cs.ColorModify(func(h color.Hex, _, _ string) (color.Color, error) {
		return color.SimulateCVD(h, kind, severity)
	})
}

// validChannel rejects unknown channels before any per-color work, so the
// error surfaces even on schemes with no colors.
func validChannel(ch color.Channel) error {
	if !color.IsValidChannel(ch) {
		return fmt.Errorf("%w: channel %q is not one of %v", color.ErrInvalidArgument, ch, color.ValidChannels())
	}
	return nil
}

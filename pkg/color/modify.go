package color

import (
	"fmt"
	"math"
)

// ModifyOptions tunes a channel transformation. The zero value selects the
// defaults.
type ModifyOptions struct {
	// GamutClip is the strategy used when the transformed color is encoded
	// back to hex. Defaults to ClipChroma.
	GamutClip ClipStrategy
}

// Hue anchors for the derived channels: 270 is the coolest hue, 180 the
// zero-pressure hue.
const (
	temperatureAnchor = 270.0
	pressureAnchor    = 180.0
)

// ModifyChannel applies f to one channel of c and returns the result as
// hex. The channel value is read in its owning space, transformed, clamped
// back to the channel domain and re-encoded. Hue, temperature and pressure
// are undefined on achromatic colors, so those transforms leave grays
// untouched. A nil color modifies to nil.
func ModifyChannel(c Color, ch Channel, f func(float64) float64, opts *ModifyOptions) (Color, error) {
	if c == nil {
		return nil, nil
	}
	if !IsValidChannel(ch) {
		return nil, fmt.Errorf("%w: channel %q is not one of %v", ErrInvalidArgument, ch, ValidChannels())
	}
	if f == nil {
		return nil, fmt.Errorf("%w: channel %q requires a transform function", ErrInvalidArgument, ch)
	}
	strategy := ClipChroma
	if opts != nil && opts.GamutClip != "" {
		if !IsValidClipStrategy(opts.GamutClip) {
			return nil, fmt.Errorf("%w: clip strategy %q is not one of %v", ErrInvalidArgument, opts.GamutClip, ValidClipStrategies())
		}
		strategy = opts.GamutClip
	}
	convOpts := &ConvertOptions{GamutClip: strategy}

	var modified Color
	switch ch {
	case ChannelRed, ChannelGreen, ChannelBlue:
		out, err := Convert(c, SpaceRGB, convOpts)
		if err != nil {
			return nil, err
		}
		rgb := out.(RGB)
		switch ch {
		case ChannelRed:
			rgb.R = clampInt(int(math.Round(f(float64(rgb.R)))), 0, 255)
		case ChannelGreen:
			rgb.G = clampInt(int(math.Round(f(float64(rgb.G)))), 0, 255)
		case ChannelBlue:
			rgb.B = clampInt(int(math.Round(f(float64(rgb.B)))), 0, 255)
		}
		modified = rgb

	case ChannelA, ChannelB:
		lab, err := toOklab(c)
		if err != nil {
			return nil, err
		}
		if ch == ChannelA {
			lab.A = f(lab.A)
		} else {
			lab.B = f(lab.B)
		}
		modified = lab

	case ChannelSaturation:
		lch, err := toOklch(c)
		if err != nil {
			return nil, err
		}
		hsl := oklchToOkhsl(lch)
		hsl.S = clampFloat(f(hsl.S), 0, 100)
		modified = hsl

	default:
		lch, err := toOklch(c)
		if err != nil {
			return nil, err
		}
		switch ch {
		case ChannelLightness:
			lch.L = clampFloat(f(lch.L), 0, 100)
		case ChannelChroma:
			lch.C = math.Max(f(lch.C), 0)
		case ChannelHue:
			if lch.C > 0 {
				lch.H = normalizeHue(f(lch.H))
			}
		case ChannelTemperature:
			if lch.C > 0 {
				t := clampFloat(f(hueDistance(lch.H, temperatureAnchor)), 0, 180)
				lch.H = applyTemperature(lch.H, t)
			}
		case ChannelPressure:
			if lch.C > 0 {
				p := clampFloat(f(hueDistance(lch.H, pressureAnchor)), 0, 180)
				lch.H = applyPressure(lch.H, p)
			}
		}
		modified = normalizeOklch(lch)
	}

	return Convert(modified, SpaceHex, convOpts)
}

// ChanAdd shifts a channel by delta.
func ChanAdd(c Color, ch Channel, delta float64, opts *ModifyOptions) (Color, error) {
	return ModifyChannel(c, ch, func(x float64) float64 { return x + delta }, opts)
}

// ChanMultiply scales a channel by factor.
func ChanMultiply(c Color, ch Channel, factor float64, opts *ModifyOptions) (Color, error) {
	return ModifyChannel(c, ch, func(x float64) float64 { return x * factor }, opts)
}

// ChanInvert mirrors a channel within its domain: bounded channels reflect
// against their maximum, hue rotates a half turn, a and b negate and chroma
// reflects against the gamut ceiling for the color's lightness and hue.
func ChanInvert(c Color, ch Channel, opts *ModifyOptions) (Color, error) {
	if c == nil {
		return nil, nil
	}
	var f func(float64) float64
	switch ch {
	case ChannelLightness, ChannelSaturation:
		f = func(x float64) float64 { return 100 - x }
	case ChannelRed, ChannelGreen, ChannelBlue:
		f = func(x float64) float64 { return 255 - x }
	case ChannelTemperature, ChannelPressure:
		f = func(x float64) float64 { return 180 - x }
	case ChannelHue:
		f = func(x float64) float64 { return x + 180 }
	case ChannelA, ChannelB:
		f = func(x float64) float64 { return -x }
	case ChannelChroma:
		lch, err := toOklch(c)
		if err != nil {
			return nil, err
		}
		ceiling := chromaCeiling(lch.L, lch.H)
		f = func(x float64) float64 { return math.Max(ceiling-x, 0) }
	default:
		return nil, fmt.Errorf("%w: channel %q is not one of %v", ErrInvalidArgument, ch, ValidChannels())
	}
	return ModifyChannel(c, ch, f, opts)
}

// ChanSet snaps a channel to the nearest of the candidate values. Hue
// candidates compare by circular distance, everything else by absolute
// difference. Candidates are normalized to the channel domain before the
// comparison.
func ChanSet(c Color, ch Channel, values []float64, opts *ModifyOptions) (Color, error) {
	if c == nil {
		return nil, nil
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: set on channel %q requires at least one candidate value", ErrInvalidArgument, ch)
	}
	norm := make([]float64, len(values))
	for i, v := range values {
		norm[i] = normalizeChannelValue(ch, v)
	}
	dist := func(a, b float64) float64 { return math.Abs(a - b) }
	if ch == ChannelHue {
		dist = hueDistance
	}
	return ModifyChannel(c, ch, func(x float64) float64 {
		best, bestDist := norm[0], dist(x, norm[0])
		for _, v := range norm[1:] {
			if d := dist(x, v); d < bestDist {
				best, bestDist = v, d
			}
		}
		return best
	}, opts)
}

// ChanRepel displaces a channel away from (coef > 0) or toward (coef < 0)
// each source value, summing the per-source nudges. A zero coefficient
// leaves the channel unchanged.
func ChanRepel(c Color, ch Channel, sources []float64, coef float64, opts *ModifyOptions) (Color, error) {
	if c == nil {
		return nil, nil
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: repel on channel %q requires at least one source value", ErrInvalidArgument, ch)
	}
	norm := make([]float64, len(sources))
	for i, s := range sources {
		norm[i] = normalizeChannelValue(ch, s)
	}
	return ModifyChannel(c, ch, func(x float64) float64 {
		if coef == 0 {
			return x
		}
		var total float64
		for _, s := range norm {
			delta := x - s
			if ch == ChannelHue {
				delta = hueDelta(s, x)
			}
			total += repelNudge(delta, coef)
		}
		return x + total
	}, opts)
}

// repelNudge is the displacement one source contributes at signed distance
// delta. Positive coefficients push away with strength coef at the source,
// decaying exponentially with distance. Negative coefficients attract:
// values within the reach -coef snap onto the source, farther values move
// toward it by an exponentially decaying step. Both forms are continuous
// in delta.
func repelNudge(delta, coef float64) float64 {
	d := math.Abs(delta)
	sign := 1.0
	if delta < 0 {
		sign = -1
	}
	switch {
	case coef > 0:
		return sign * coef * math.Exp(-d/coef)
	case coef < 0:
		reach := -coef
		if d <= reach {
			return -sign * d
		}
		return -sign * reach * math.Exp(1-d/reach)
	}
	return 0
}

// normalizeChannelValue clamps or wraps v into the domain of ch.
func normalizeChannelValue(ch Channel, v float64) float64 {
	switch ch {
	case ChannelLightness, ChannelSaturation:
		return clampFloat(v, 0, 100)
	case ChannelTemperature, ChannelPressure:
		return clampFloat(v, 0, 180)
	case ChannelHue:
		return normalizeHue(v)
	case ChannelRed, ChannelGreen, ChannelBlue:
		return clampFloat(v, 0, 255)
	case ChannelChroma:
		return math.Max(v, 0)
	}
	return v
}

// applyTemperature rewrites hue h to sit at temperature t, keeping it on
// its side of the 90/270 axis.
func applyTemperature(h, t float64) float64 {
	if h >= 90 && h < 270 {
		return normalizeHue(temperatureAnchor - t)
	}
	return normalizeHue(temperatureAnchor + t)
}

// applyPressure rewrites hue h to sit at pressure p, keeping it on its
// side of the 0/180 axis.
func applyPressure(h, p float64) float64 {
	if h < 180 {
		return normalizeHue(pressureAnchor - p)
	}
	return normalizeHue(pressureAnchor + p)
}

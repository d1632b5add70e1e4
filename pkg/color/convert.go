package color

import "fmt"

// ConvertOptions tunes a conversion. The zero value selects the defaults.
type ConvertOptions struct {
	// GamutClip is the strategy applied when a conversion target cannot
	// represent the input exactly. Defaults to ClipChroma.
	GamutClip ClipStrategy
}

// Convert returns c expressed in the target space. Inputs are normalized to
// their domains first; conversions into the RGB family gamut-clip according
// to opts. A nil color converts to nil.
func Convert(c Color, target Space, opts *ConvertOptions) (Color, error) {
	if c == nil {
		return nil, nil
	}
	if !IsValidSpace(target) {
		return nil, fmt.Errorf("%w: target space %q is not one of %v", ErrInvalidArgument, target, ValidSpaces())
	}
	strategy := ClipChroma
	if opts != nil && opts.GamutClip != "" {
		if !IsValidClipStrategy(opts.GamutClip) {
			return nil, fmt.Errorf("%w: clip strategy %q is not one of %v", ErrInvalidArgument, opts.GamutClip, ValidClipStrategies())
		}
		strategy = opts.GamutClip
	}

	// An index is already an exact palette slot, so converting it to the
	// 8-bit space is the identity rather than a re-quantization.
	if e, ok := c.(EightBit); ok && target == Space8Bit {
		return e, nil
	}

	// RGB-family inputs are in gamut by construction and convert within
	// the family without an Oklab round trip.
	rgb, direct, err := asRGB(c)
	if err != nil {
		return nil, err
	}
	if direct {
		switch target {
		case SpaceHex:
			return rgb.Hex(), nil
		case SpaceRGB:
			return rgb, nil
		case Space8Bit:
			return nearestEightBit(rgbToOklab(rgb)), nil
		}
		return fromOklch(oklabToOklch(rgbToOklab(rgb)), target, strategy)
	}

	lch, err := toOklch(c)
	if err != nil {
		return nil, err
	}
	return fromOklch(lch, target, strategy)
}

// asRGB unwraps RGB-family colors. The second return is false for colors
// that live in the Oklab family.
func asRGB(c Color) (RGB, bool, error) {
	switch v := c.(type) {
	case Hex:
		rgb, err := hexToRGB(v)
		if err != nil {
			return RGB{}, false, err
		}
		return rgb, true, nil
	case EightBit:
		return eightBitToRGB(v), true, nil
	case RGB:
		return RGB{
			R: clampInt(v.R, 0, 255),
			G: clampInt(v.G, 0, 255),
			B: clampInt(v.B, 0, 255),
		}, true, nil
	}
	return RGB{}, false, nil
}

// toOklch normalizes any color into engine Oklch coordinates.
func toOklch(c Color) (Oklch, error) {
	switch v := c.(type) {
	case Hex, EightBit, RGB:
		rgb, _, err := asRGB(c)
		if err != nil {
			return Oklch{}, err
		}
		return oklabToOklch(rgbToOklab(rgb)), nil
	case Oklab:
		return normalizeOklch(oklabToOklch(v)), nil
	case Oklch:
		return normalizeOklch(v), nil
	case Okhsl:
		return okhslToOklch(v), nil
	}
	return Oklch{}, fmt.Errorf("%w: unsupported color type %T", ErrInvalidArgument, c)
}

// toOklab normalizes any color into engine Oklab coordinates.
func toOklab(c Color) (Oklab, error) {
	rgb, direct, err := asRGB(c)
	if err != nil {
		return Oklab{}, err
	}
	if direct {
		return rgbToOklab(rgb), nil
	}
	lch, err := toOklch(c)
	if err != nil {
		return Oklab{}, err
	}
	return oklchToOklab(lch), nil
}

// fromOklch expresses a normalized Oklch color in the target space.
func fromOklch(lch Oklch, target Space, strategy ClipStrategy) (Color, error) {
	switch target {
	case SpaceOklch:
		return lch, nil
	case SpaceOklab:
		return oklchToOklab(lch), nil
	case SpaceOkhsl:
		return oklchToOkhsl(lch), nil
	}

	clipped, err := ClipToGamut(lch, strategy)
	if err != nil {
		return nil, err
	}
	rgb := encodeRGB(oklabToLinearRGB(oklchToOklab(clipped)))
	switch target {
	case SpaceRGB:
		return rgb, nil
	case Space8Bit:
		return nearestEightBit(rgbToOklab(rgb)), nil
	default:
		return rgb.Hex(), nil
	}
}

// okhslChromaFloor is the chroma ceiling below which saturation becomes
// meaningless and is pinned to zero. Engine chroma tops out around 32, so
// this only triggers in the immediate neighborhood of black and white.
const okhslChromaFloor = 1e-9

func okhslToOklch(v Okhsl) Oklch {
	l := clampFloat(v.L, 0, 100)
	s := clampFloat(v.S, 0, 100)
	h := normalizeHue(v.H)
	return normalizeOklch(Oklch{L: l, C: s * chromaCeiling(l, h) / 100, H: h})
}

func oklchToOkhsl(lch Oklch) Okhsl {
	ceiling := chromaCeiling(lch.L, lch.H)
	if ceiling <= okhslChromaFloor || lch.C <= 0 {
		return Okhsl{L: lch.L, S: 0, H: lch.H}
	}
	return Okhsl{L: lch.L, S: clampFloat(100*lch.C/ceiling, 0, 100), H: lch.H}
}

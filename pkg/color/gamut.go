package color

import "fmt"

// ClipStrategy selects how an out-of-gamut color is pulled back into sRGB.
type ClipStrategy string

const (
	// ClipChroma reduces chroma at constant lightness and hue.
	ClipChroma ClipStrategy = "chroma"
	// ClipLightness moves lightness toward 50 at constant chroma and hue.
	ClipLightness ClipStrategy = "lightness"
	// ClipCusp projects toward the black/white corner through the cusp,
	// trading lightness and chroma together.
	ClipCusp ClipStrategy = "cusp"
)

// ValidClipStrategies returns all supported gamut clip strategies.
func ValidClipStrategies() []ClipStrategy {
	return []ClipStrategy{ClipChroma, ClipLightness, ClipCusp}
}

// IsValidClipStrategy reports whether s is a supported clip strategy.
func IsValidClipStrategy(s ClipStrategy) bool {
	switch s {
	case ClipChroma, ClipLightness, ClipCusp:
		return true
	}
	return false
}

// gamutEps absorbs float noise at the gamut boundary so colors that
// round-trip exactly onto an sRGB edge still count as inside.
const gamutEps = 1e-6

// inGamut reports whether lch maps into sRGB without clamping.
func inGamut(lch Oklch) bool {
	r, g, b := oklabToLinearRGB(oklchToOklab(lch))
	return r >= -gamutEps && r <= 1+gamutEps &&
		g >= -gamutEps && g <= 1+gamutEps &&
		b >= -gamutEps && b <= 1+gamutEps
}

// clipIterations is enough bisection steps to pin the boundary well below
// visible precision.
const clipIterations = 32

// ClipToGamut returns lch unchanged when it is already displayable,
// otherwise the nearest in-gamut color along the path the strategy defines.
// Hue is preserved by every strategy.
func ClipToGamut(lch Oklch, strategy ClipStrategy) (Oklch, error) {
	if !IsValidClipStrategy(strategy) {
		return Oklch{}, fmt.Errorf("%w: clip strategy %q is not one of %v", ErrInvalidArgument, strategy, ValidClipStrategies())
	}
	lch = normalizeOklch(lch)
	if inGamut(lch) {
		return lch, nil
	}
	switch strategy {
	case ClipLightness:
		return clipByLightness(lch), nil
	case ClipCusp:
		return clipByCusp(lch), nil
	default:
		return clipByChroma(lch), nil
	}
}

// clipByChroma bisects chroma down to the boundary. Zero chroma is always
// in gamut for lightness within [0, 100], so the bracket is valid.
func clipByChroma(lch Oklch) Oklch {
	lo, hi := 0.0, lch.C
	for i := 0; i < clipIterations; i++ {
		mid := (lo + hi) / 2
		if inGamut(Oklch{L: lch.L, C: mid, H: lch.H}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Oklch{L: lch.L, C: lo, H: lch.H}
}

// clipByLightness bisects lightness toward 50 at fixed chroma. When the
// chroma exceeds the gamut even at mid lightness the strategy falls back to
// the cusp lightness and clips chroma there, which keeps the result as
// saturated as the hue allows.
func clipByLightness(lch Oklch) Oklch {
	target := Oklch{L: 50, C: lch.C, H: lch.H}
	if !inGamut(target) {
		lCusp, _ := cuspFor(lch.H)
		return clipByChroma(Oklch{L: lCusp, C: lch.C, H: lch.H})
	}
	lo, hi := 50.0, lch.L
	for i := 0; i < clipIterations; i++ {
		mid := (lo + hi) / 2
		if inGamut(Oklch{L: mid, C: lch.C, H: lch.H}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Oklch{L: lo, C: lch.C, H: lch.H}
}

// clipByCusp projects onto the triangular gamut slice for the hue. Colors
// whose chroma-to-lightness slope exceeds the cusp's land on the cusp
// itself; the rest slide along their slope line to the triangle edge.
func clipByCusp(lch Oklch) Oklch {
	if lch.L <= 0 {
		return Oklch{L: 0, C: 0, H: lch.H}
	}
	if lch.L >= 100 {
		return Oklch{L: 100, C: 0, H: lch.H}
	}
	lCusp, cCusp := cuspFor(lch.H)
	slope := lch.C / lch.L
	if slope >= cCusp/lCusp {
		return Oklch{L: lCusp, C: cCusp, H: lch.H}
	}
	// Intersect c = slope*l with the upper edge c = cCusp*(100-l)/(100-lCusp).
	l := 100 * cCusp / (slope*(100-lCusp) + cCusp)
	return Oklch{L: l, C: slope * l, H: lch.H}
}

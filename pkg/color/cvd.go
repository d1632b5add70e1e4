package color

import (
	"fmt"
	"math"
)

// CVDKind names a color vision deficiency to simulate.
type CVDKind string

const (
	// CVDProtan simulates missing or anomalous long-wavelength cones.
	CVDProtan CVDKind = "protan"
	// CVDDeutan simulates missing or anomalous medium-wavelength cones.
	CVDDeutan CVDKind = "deutan"
	// CVDTritan simulates missing or anomalous short-wavelength cones.
	CVDTritan CVDKind = "tritan"
	// CVDMono simulates total color blindness by dropping chroma.
	CVDMono CVDKind = "mono"
)

// ValidCVDKinds returns all supported deficiency kinds.
func ValidCVDKinds() []CVDKind {
	return []CVDKind{CVDProtan, CVDDeutan, CVDTritan, CVDMono}
}

// IsValidCVDKind reports whether kind is a supported deficiency.
func IsValidCVDKind(kind CVDKind) bool {
	switch kind {
	case CVDProtan, CVDDeutan, CVDTritan, CVDMono:
		return true
	}
	return false
}

// SimulateCVD returns c as a viewer with the given deficiency would see it,
// encoded as hex. Severity is clamped to [0, 1] and snapped to the nearest
// tabulated 0.1 step for the dichromacy kinds; mono ignores it and always
// removes all chroma. A nil color simulates to nil.
func SimulateCVD(c Color, kind CVDKind, severity float64) (Color, error) {
	if c == nil {
		return nil, nil
	}
	if !IsValidCVDKind(kind) {
		return nil, fmt.Errorf("%w: cvd kind %q is not one of %v", ErrInvalidArgument, kind, ValidCVDKinds())
	}

	if kind == CVDMono {
		lch, err := toOklch(c)
		if err != nil {
			return nil, err
		}
		lch.C = 0
		return Convert(normalizeOklch(lch), SpaceHex, nil)
	}

	idx := int(math.Round(clampFloat(severity, 0, 1) * 10))
	var m [3][3]float64
	switch kind {
	case CVDProtan:
		m = protanMatrices[idx]
	case CVDDeutan:
		m = deutanMatrices[idx]
	case CVDTritan:
		m = tritanMatrices[idx]
	}

	out, err := Convert(c, SpaceRGB, nil)
	if err != nil {
		return nil, err
	}
	rgb := out.(RGB)

	// The matrices operate on gamma-encoded components.
	r := float64(rgb.R)
	g := float64(rgb.G)
	b := float64(rgb.B)
	sim := RGB{
		R: clampInt(int(math.Round(m[0][0]*r+m[0][1]*g+m[0][2]*b)), 0, 255),
		G: clampInt(int(math.Round(m[1][0]*r+m[1][1]*g+m[1][2]*b)), 0, 255),
		B: clampInt(int(math.Round(m[2][0]*r+m[2][1]*g+m[2][2]*b)), 0, 255),
	}
	return sim.Hex(), nil
}

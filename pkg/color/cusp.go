package color

import "math"

// The gamut cusp for a hue is the maximum-chroma point that still fits in
// sRGB, considered across all lightness values. It is computed analytically
// from Ottosson's max-saturation polynomial plus one Halley refinement step,
// so no per-hue lookup table is needed and both Okhsl directions see exactly
// the same ceiling.

// maxSaturationForHue returns the largest S = C/L such that the raw Oklab
// color (1, S*a, S*b) sits on the sRGB boundary. a and b must form a unit
// vector.
func maxSaturationForHue(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// Red channel clips first.
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		// Green channel clips first.
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// Blue channel clips first.
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	s := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	// One Halley step against the exact boundary condition.
	kl := +0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	lp := 1.0 + s*kl
	mp := 1.0 + s*km
	sp := 1.0 + s*ks

	l3 := lp * lp * lp
	m3 := mp * mp * mp
	s3 := sp * sp * sp

	lds := 3.0 * kl * lp * lp
	mds := 3.0 * km * mp * mp
	sds := 3.0 * ks * sp * sp

	lds2 := 6.0 * kl * kl * lp
	mds2 := 6.0 * km * km * mp
	sds2 := 6.0 * ks * ks * sp

	f := wl*l3 + wm*m3 + ws*s3
	f1 := wl*lds + wm*mds + ws*sds
	f2 := wl*lds2 + wm*mds2 + ws*sds2

	return s - f*f1/(f1*f1-0.5*f*f2)
}

// findCuspRaw returns the raw-scale (L, C) cusp for a unit hue direction.
func findCuspRaw(a, b float64) (float64, float64) {
	sCusp := maxSaturationForHue(a, b)

	// Rescale so the brightest linear channel is exactly 1.
	r, g, bl := oklabToLinear(1, sCusp*a, sCusp*b)
	lCusp := math.Cbrt(1.0 / math.Max(math.Max(r, g), bl))
	return lCusp, lCusp * sCusp
}

// cuspFor returns the cusp for hue h in engine coordinates.
func cuspFor(h float64) (l, c float64) {
	hr := normalizeHue(h) * (math.Pi / 180.0)
	rawL, rawC := findCuspRaw(math.Cos(hr), math.Sin(hr))
	return 100 * toe(rawL), 100 * rawC
}

// chromaCeiling returns the maximum chroma of the triangular gamut slice
// (0,0)-(cusp)-(100,0) at the given lightness and hue. Zero at and beyond
// the lightness extremes.
func chromaCeiling(l, h float64) float64 {
	if l <= 0 || l >= 100 {
		return 0
	}
	lCusp, cCusp := cuspFor(h)
	var ceiling float64
	if l <= lCusp {
		ceiling = cCusp * l / lCusp
	} else {
		ceiling = cCusp * (100 - l) / (100 - lCusp)
	}
	return math.Max(ceiling, 0)
}

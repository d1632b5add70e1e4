package color

import "math"

// Oklab matrices and the lightness toe follow Björn Ottosson's reference
// constants. Lightness is carried as the toe-corrected percentage 100*toe(L)
// and a/b/chroma are scaled by 100, so values sit in editor-friendly ranges.

// achromaticEps snaps raw a/b residue to zero so integer grays stay exact
// grays through the matrix round trip.
const achromaticEps = 1e-4

// srgbToLinear converts a single sRGB component [0,1] to linear light.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear component [0,1] to gamma-encoded sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// linearToOklab converts linear RGB to raw Oklab (L in [0,1]).
func linearToOklab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB -> LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' -> Lab
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinear converts raw Oklab to linear RGB. The result is unclamped
// and may fall outside [0,1] for out-of-gamut coordinates.
func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab -> LMS'
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS -> linear RGB
	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}

// Toe constants for the perceptual lightness estimate Lr.
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1.0 + toeK1) / (1.0 + toeK2)
)

// toe maps raw Oklab lightness to the corrected estimate in [0,1].
func toe(x float64) float64 {
	t := toeK3*x - toeK1
	return 0.5 * (t + math.Sqrt(t*t+4*toeK2*toeK3*x))
}

// toeInv is the exact inverse of toe.
func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// rgbToOklab converts gamma-encoded channels to engine Oklab coordinates.
func rgbToOklab(c RGB) Oklab {
	lr := srgbToLinear(float64(clampInt(c.R, 0, 255)) / 255.0)
	lg := srgbToLinear(float64(clampInt(c.G, 0, 255)) / 255.0)
	lb := srgbToLinear(float64(clampInt(c.B, 0, 255)) / 255.0)

	L, a, b := linearToOklab(lr, lg, lb)
	if math.Abs(a) < achromaticEps {
		a = 0
	}
	if math.Abs(b) < achromaticEps {
		b = 0
	}
	return Oklab{L: 100 * toe(L), A: 100 * a, B: 100 * b}
}

// oklabToLinearRGB converts engine Oklab coordinates to linear RGB,
// unclamped.
func oklabToLinearRGB(lab Oklab) (float64, float64, float64) {
	return oklabToLinear(toeInv(lab.L/100), lab.A/100, lab.B/100)
}

// encodeRGB gamma-encodes linear components, clamping residual excursions.
func encodeRGB(r, g, b float64) RGB {
	return RGB{
		R: int(math.Round(255 * linearToSRGB(clampFloat(r, 0, 1)))),
		G: int(math.Round(255 * linearToSRGB(clampFloat(g, 0, 1)))),
		B: int(math.Round(255 * linearToSRGB(clampFloat(b, 0, 1)))),
	}
}

// oklchToOklab expands polar coordinates. Grays keep a = b = 0.
func oklchToOklab(lch Oklch) Oklab {
	if lch.C <= 0 {
		return Oklab{L: lch.L}
	}
	hr := lch.H * (math.Pi / 180.0)
	return Oklab{L: lch.L, A: lch.C * math.Cos(hr), B: lch.C * math.Sin(hr)}
}

// oklabToOklch collapses to polar coordinates. Grays get hue 0 so a hue is
// never read back out of an achromatic color.
func oklabToOklch(lab Oklab) Oklch {
	c := math.Hypot(lab.A, lab.B)
	if c == 0 {
		return Oklch{L: lab.L}
	}
	h := math.Atan2(lab.B, lab.A) * (180.0 / math.Pi)
	if h < 0 {
		h += 360.0
	}
	return Oklch{L: lab.L, C: c, H: h}
}

// normalizeHue wraps a hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueDistance returns the circular distance between two hue angles, in
// [0, 180].
func hueDistance(a, b float64) float64 {
	d := math.Abs(normalizeHue(a) - normalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// hueDelta returns the signed shortest-path rotation from one hue to
// another, in [-180, 180).
func hueDelta(from, to float64) float64 {
	return math.Mod(to-from+540, 360) - 180
}

// normalizeOklch clamps lightness and chroma into their domains and wraps
// hue. Achromatic coordinates lose their hue.
func normalizeOklch(lch Oklch) Oklch {
	lch.L = clampFloat(lch.L, 0, 100)
	if lch.C < 0 {
		lch.C = 0
	}
	if lch.C == 0 {
		lch.H = 0
	} else {
		lch.H = normalizeHue(lch.H)
	}
	return lch
}

// OklabDistance returns the Euclidean distance between two colors in engine
// Oklab coordinates.
func OklabDistance(a, b Oklab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Lerp interpolates between two colors in Oklab space and returns the result
// as hex. The factor t is clamped to [0, 1]; absent endpoints short-circuit
// to absent.
func Lerp(from, to Color, t float64) (Color, error) {
	if from == nil || to == nil {
		return nil, nil
	}
	t = clampFloat(t, 0, 1)
	a, err := toOklab(from)
	if err != nil {
		return nil, err
	}
	b, err := toOklab(to)
	if err != nil {
		return nil, err
	}
	mixed := Oklab{
		L: a.L + (b.L-a.L)*t,
		A: a.A + (b.A-a.A)*t,
		B: a.B + (b.B-a.B)*t,
	}
	return Convert(mixed, SpaceHex, nil)
}

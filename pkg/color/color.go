// Package color implements conversion and transformation between sRGB,
// Oklab, Oklch, Okhsl and terminal palette color representations.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Space identifies a color representation.
type Space string

const (
	// Space8Bit is an index into the fixed 256-entry terminal palette.
	Space8Bit Space = "8-bit"

	// SpaceHex is a lowercase "#rrggbb" string.
	SpaceHex Space = "hex"

	// SpaceRGB is gamma-encoded sRGB with integer channels in [0, 255].
	SpaceRGB Space = "rgb"

	// SpaceOklab is Oklab with lightness as a percentage in [0, 100] and
	// a/b scaled to roughly [-40, 40].
	SpaceOklab Space = "oklab"

	// SpaceOklch is the polar form of Oklab: lightness, chroma, hue.
	SpaceOklch Space = "oklch"

	// SpaceOkhsl normalizes chroma against the maximum in-gamut chroma at
	// the same lightness and hue, giving a saturation percentage.
	SpaceOkhsl Space = "okhsl"
)

// ValidSpaces returns the list of supported color spaces.
func ValidSpaces() []Space {
	return []Space{Space8Bit, SpaceHex, SpaceRGB, SpaceOklab, SpaceOklch, SpaceOkhsl}
}

// IsValidSpace checks if the given space name is supported.
func IsValidSpace(s Space) bool {
	for _, valid := range ValidSpaces() {
		if s == valid {
			return true
		}
	}
	return false
}

var (
	// ErrInvalidColorFormat reports input that matches no recognized color
	// shape. The wrapped message renders the offending value.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidArgument reports an option value outside its allowed set.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Color is a single color value in one of the supported representations.
// A nil Color means "absent"; every operation in this package short-circuits
// absent input to absent output.
type Color interface {
	// Space reports which representation the value carries.
	Space() Space
}

// Hex is a lowercase "#rrggbb" string.
type Hex string

// Space implements Color.
func (Hex) Space() Space { return SpaceHex }

func (h Hex) String() string { return string(h) }

// EightBit is an index into the fixed 256-entry terminal palette.
type EightBit uint8

// Space implements Color.
func (EightBit) Space() Space { return Space8Bit }

// RGB is a gamma-encoded sRGB color with channels in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Space implements Color.
func (RGB) Space() Space { return SpaceRGB }

// Hex returns the color formatted as a lowercase hex string.
func (c RGB) Hex() Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", clampInt(c.R, 0, 255), clampInt(c.G, 0, 255), clampInt(c.B, 0, 255)))
}

// String returns the color in rgb(r, g, b) notation.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Oklab is a perceptually uniform color. L is a corrected lightness
// percentage in [0, 100]; A and B are unbounded opponent axes.
type Oklab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Space implements Color.
func (Oklab) Space() Space { return SpaceOklab }

func (c Oklab) String() string {
	return fmt.Sprintf("oklab(%.2f, %.2f, %.2f)", c.L, c.A, c.B)
}

// Oklch is the polar form of Oklab. L in [0, 100], C >= 0, H in [0, 360).
type Oklch struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// Space implements Color.
func (Oklch) Space() Space { return SpaceOklch }

func (c Oklch) String() string {
	return fmt.Sprintf("oklch(%.2f, %.2f, %.2f)", c.L, c.C, c.H)
}

// Okhsl is an HSL-style form of Oklab. L in [0, 100], S in [0, 100]
// relative to the maximum in-gamut chroma at that lightness and hue,
// H in [0, 360).
type Okhsl struct {
	L float64 `json:"l"`
	S float64 `json:"s"`
	H float64 `json:"h"`
}

// Space implements Color.
func (Okhsl) Space() Space { return SpaceOkhsl }

func (c Okhsl) String() string {
	return fmt.Sprintf("okhsl(%.2f, %.2f, %.2f)", c.L, c.S, c.H)
}

// Parse classifies an externally supplied value into a Color. Strings of six
// hex digits (leading '#' optional) are hex colors, integers in [0, 255] are
// terminal palette indices, and three-key tables are matched against the
// component sets {r,g,b}, {l,a,b}, {l,c,h} and {l,s,h}. A nil input stays
// nil. Anything else fails with ErrInvalidColorFormat.
func Parse(v any) (Color, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Hex:
		return ParseHex(string(x))
	case Color:
		return x, nil
	case string:
		return ParseHex(x)
	case int:
		return parseIndex(float64(x))
	case int64:
		return parseIndex(float64(x))
	case uint8:
		return EightBit(x), nil
	case float64:
		return parseIndex(x)
	case map[string]any:
		return parseTable(x)
	}
	return nil, fmt.Errorf("%w: unrecognized color value %v", ErrInvalidColorFormat, v)
}

// ParseHex parses a six-digit hex color string, with or without a leading
// '#', and returns it normalized to lowercase "#rrggbb" form.
func ParseHex(s string) (Hex, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return "", fmt.Errorf("%w: %q is not a #rrggbb string", ErrInvalidColorFormat, s)
	}
	for i := 0; i < 6; i++ {
		if _, ok := hexNibble(digits[i]); !ok {
			return "", fmt.Errorf("%w: %q is not a #rrggbb string", ErrInvalidColorFormat, s)
		}
	}
	return Hex("#" + strings.ToLower(digits)), nil
}

// parseIndex accepts integral numbers in [0, 255] as palette indices.
func parseIndex(f float64) (Color, error) {
	if f != math.Trunc(f) || f < 0 || f > 255 {
		return nil, fmt.Errorf("%w: %v is not an 8-bit palette index", ErrInvalidColorFormat, f)
	}
	return EightBit(int(f)), nil
}

// parseTable matches a table against the known component key sets.
func parseTable(m map[string]any) (Color, error) {
	if len(m) == 3 {
		if r, g, b, ok := tableFields(m, "r", "g", "b"); ok {
			return RGB{R: int(math.Round(r)), G: int(math.Round(g)), B: int(math.Round(b))}, nil
		}
		if l, a, b, ok := tableFields(m, "l", "a", "b"); ok {
			return Oklab{L: l, A: a, B: b}, nil
		}
		if l, c, h, ok := tableFields(m, "l", "c", "h"); ok {
			return Oklch{L: l, C: c, H: h}, nil
		}
		if l, s, h, ok := tableFields(m, "l", "s", "h"); ok {
			return Okhsl{L: l, S: s, H: h}, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognized color table %v", ErrInvalidColorFormat, m)
}

// tableFields extracts three numeric fields when the table has exactly the
// given keys.
func tableFields(m map[string]any, k1, k2, k3 string) (float64, float64, float64, bool) {
	v1, ok1 := numericField(m, k1)
	v2, ok2 := numericField(m, k2)
	v3, ok3 := numericField(m, k3)
	if ok1 && ok2 && ok3 {
		return v1, v2, v3, true
	}
	return 0, 0, 0, false
}

func numericField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// hexNibble decodes a single hex digit.
func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// hexToRGB decodes a hex color. The input may be unnormalized.
func hexToRGB(h Hex) (RGB, error) {
	norm, err := ParseHex(string(h))
	if err != nil {
		return RGB{}, err
	}
	digits := string(norm)[1:]
	byteAt := func(i int) int {
		hi, _ := hexNibble(digits[i])
		lo, _ := hexNibble(digits[i+1])
		return hi<<4 | lo
	}
	return RGB{R: byteAt(0), G: byteAt(2), B: byteAt(4)}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

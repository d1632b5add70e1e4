package color

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func oklchOf(t *testing.T, c Color) Oklch {
	t.Helper()
	out, err := Convert(c, SpaceOklch, nil)
	if err != nil {
		t.Fatalf("Convert(%v, oklch) returned error: %v", c, err)
	}
	return out.(Oklch)
}

func okhslOf(t *testing.T, c Color) Okhsl {
	t.Helper()
	out, err := Convert(c, SpaceOkhsl, nil)
	if err != nil {
		t.Fatalf("Convert(%v, okhsl) returned error: %v", c, err)
	}
	return out.(Okhsl)
}

func TestChanAddLightnessClamps(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		wantL float64
	}{
		{name: "far above range", delta: 1000, wantL: 100},
		{name: "far below range", delta: -1000, wantL: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChanAdd(Hex("#5f87af"), ChannelLightness, tt.delta, nil)
			if err != nil {
				t.Fatalf("ChanAdd returned error: %v", err)
			}
			if l := oklchOf(t, got).L; math.Abs(l-tt.wantL) > 0.01 {
				t.Errorf("lightness after add %v = %v, want %v", tt.delta, l, tt.wantL)
			}
		})
	}
}

func TestChanAddHuePeriodicity(t *testing.T) {
	base := Hex("#ba4a73")

	noop, err := ChanAdd(base, ChannelHue, 360, nil)
	if err != nil {
		t.Fatalf("ChanAdd(hue, 360) returned error: %v", err)
	}
	if noop != base {
		t.Errorf("ChanAdd(hue, 360) = %v, want %v unchanged", noop, base)
	}

	wrapped, err := ChanAdd(base, ChannelHue, 370, nil)
	if err != nil {
		t.Fatalf("ChanAdd(hue, 370) returned error: %v", err)
	}
	plain, err := ChanAdd(base, ChannelHue, 10, nil)
	if err != nil {
		t.Fatalf("ChanAdd(hue, 10) returned error: %v", err)
	}
	if wrapped != plain {
		t.Errorf("ChanAdd(hue, 370) = %v, ChanAdd(hue, 10) = %v, want equal", wrapped, plain)
	}
}

func TestChanInvertHueMatchesHalfTurn(t *testing.T) {
	base := Hex("#ba4a73")
	origHue := oklchOf(t, base).H

	inverted, err := ChanInvert(base, ChannelHue, nil)
	if err != nil {
		t.Fatalf("ChanInvert(hue) returned error: %v", err)
	}
	added, err := ChanAdd(base, ChannelHue, 180, nil)
	if err != nil {
		t.Fatalf("ChanAdd(hue, 180) returned error: %v", err)
	}
	if inverted != added {
		t.Errorf("ChanInvert(hue) = %v, ChanAdd(hue, 180) = %v, want equal", inverted, added)
	}

	wantHue := normalizeHue(origHue + 180)
	if gotHue := oklchOf(t, inverted).H; hueDistance(gotHue, wantHue) > 2 {
		t.Errorf("inverted hue = %v, want about %v", gotHue, wantHue)
	}
}

func TestChanInvertLightnessExtremes(t *testing.T) {
	tests := []struct {
		name string
		in   Hex
		want Hex
	}{
		{name: "black to white", in: "#000000", want: "#ffffff"},
		{name: "white to black", in: "#ffffff", want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChanInvert(tt.in, ChannelLightness, nil)
			if err != nil {
				t.Fatalf("ChanInvert(lightness) returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ChanInvert(%v, lightness) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChanInvertRed(t *testing.T) {
	got, err := ChanInvert(Hex("#5f87af"), ChannelRed, nil)
	if err != nil {
		t.Fatalf("ChanInvert(red) returned error: %v", err)
	}
	if got != Hex("#a087af") {
		t.Errorf("ChanInvert(#5f87af, red) = %v, want #a087af", got)
	}
}

func TestChanMultiplyChroma(t *testing.T) {
	base := Hex("#5f87af")
	origC := oklchOf(t, base).C

	grayed, err := ChanMultiply(base, ChannelChroma, 0, nil)
	if err != nil {
		t.Fatalf("ChanMultiply(chroma, 0) returned error: %v", err)
	}
	if s := okhslOf(t, grayed).S; s != 0 {
		t.Errorf("saturation after chroma*0 = %v, want 0", s)
	}
	if l := oklchOf(t, grayed).L; math.Abs(l-54.73) > 0.5 {
		t.Errorf("lightness after chroma*0 = %v, want about 54.73", l)
	}

	halved, err := ChanMultiply(base, ChannelChroma, 0.5, nil)
	if err != nil {
		t.Fatalf("ChanMultiply(chroma, 0.5) returned error: %v", err)
	}
	if c := oklchOf(t, halved).C; math.Abs(c-origC/2) > 0.2 {
		t.Errorf("chroma after *0.5 = %v, want about %v", c, origC/2)
	}
}

func TestChanAddSaturation(t *testing.T) {
	base := Hex("#5f87af")
	origS := okhslOf(t, base).S

	got, err := ChanAdd(base, ChannelSaturation, 20, nil)
	if err != nil {
		t.Fatalf("ChanAdd(saturation, 20) returned error: %v", err)
	}
	if s := okhslOf(t, got).S; math.Abs(s-(origS+20)) > 1.5 {
		t.Errorf("saturation after +20 = %v, want about %v", s, origS+20)
	}
}

func TestChanInvertSaturation(t *testing.T) {
	base := Hex("#5f87af")
	origS := okhslOf(t, base).S

	got, err := ChanInvert(base, ChannelSaturation, nil)
	if err != nil {
		t.Fatalf("ChanInvert(saturation) returned error: %v", err)
	}
	if s := okhslOf(t, got).S; math.Abs(s-(100-origS)) > 1.5 {
		t.Errorf("saturation after invert = %v, want about %v", s, 100-origS)
	}
}

func TestChanSetTemperature(t *testing.T) {
	// #5f87af sits on the 90..270 side of the hue circle, so temperature 0
	// lands on hue 270 and temperature 180 on hue 90.
	tests := []struct {
		name    string
		value   float64
		wantHue float64
	}{
		{name: "coolest", value: 0, wantHue: 270},
		{name: "warmest", value: 180, wantHue: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChanSet(Hex("#5f87af"), ChannelTemperature, []float64{tt.value}, nil)
			if err != nil {
				t.Fatalf("ChanSet(temperature) returned error: %v", err)
			}
			if h := oklchOf(t, got).H; hueDistance(h, tt.wantHue) > 2 {
				t.Errorf("hue after temperature set %v = %v, want about %v", tt.value, h, tt.wantHue)
			}
		})
	}
}

func TestChanAddPressure(t *testing.T) {
	base := Hex("#5f87af")
	origH := oklchOf(t, base).H
	origP := hueDistance(origH, 180)

	got, err := ChanAdd(base, ChannelPressure, 10, nil)
	if err != nil {
		t.Fatalf("ChanAdd(pressure, 10) returned error: %v", err)
	}
	// Hue stays on the >= 180 side for this color.
	wantHue := normalizeHue(180 + origP + 10)
	if h := oklchOf(t, got).H; hueDistance(h, wantHue) > 2 {
		t.Errorf("hue after pressure +10 = %v, want about %v", h, wantHue)
	}
}

func TestChanSetNearest(t *testing.T) {
	// Hue candidates compare circularly: from 355, candidate 5 is 10 away
	// while 300 is 55 away.
	got, err := ChanSet(Oklch{L: 60, C: 10, H: 355}, ChannelHue, []float64{5, 300}, nil)
	if err != nil {
		t.Fatalf("ChanSet(hue) returned error: %v", err)
	}
	if h := oklchOf(t, got).H; hueDistance(h, 5) > 2 {
		t.Errorf("hue after set = %v, want about 5", h)
	}

	// Linear channels use plain distance.
	got, err = ChanSet(Hex("#5f87af"), ChannelLightness, []float64{20, 80}, nil)
	if err != nil {
		t.Fatalf("ChanSet(lightness) returned error: %v", err)
	}
	if l := oklchOf(t, got).L; math.Abs(l-80) > 0.2 {
		t.Errorf("lightness after set = %v, want 80", l)
	}
}

func TestChanSetEmpty(t *testing.T) {
	_, err := ChanSet(Hex("#5f87af"), ChannelHue, nil, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ChanSet with no values error = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "hue") {
		t.Errorf("error %q should name the channel", err)
	}
}

func TestChanRepelEmpty(t *testing.T) {
	_, err := ChanRepel(Hex("#5f87af"), ChannelHue, nil, 30, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ChanRepel with no sources error = %v, want ErrInvalidArgument", err)
	}
}

func TestChanRepelZeroCoefficient(t *testing.T) {
	base := Hex("#5f87af")
	got, err := ChanRepel(base, ChannelHue, []float64{240}, 0, nil)
	if err != nil {
		t.Fatalf("ChanRepel returned error: %v", err)
	}
	if got != base {
		t.Errorf("ChanRepel with coefficient 0 = %v, want %v unchanged", got, base)
	}
}

func TestChanRepelPushesAway(t *testing.T) {
	base := Hex("#5f87af")
	origDist := hueDistance(oklchOf(t, base).H, 240)

	got, err := ChanRepel(base, ChannelHue, []float64{240}, 30, nil)
	if err != nil {
		t.Fatalf("ChanRepel returned error: %v", err)
	}
	if gotDist := hueDistance(oklchOf(t, got).H, 240); gotDist <= origDist+3 {
		t.Errorf("hue distance from source after repel = %v, want clearly above %v", gotDist, origDist)
	}
}

func TestChanRepelAttractSnaps(t *testing.T) {
	// A negative coefficient attracts, and values within its reach snap
	// onto the source.
	got, err := ChanRepel(Hex("#5f87af"), ChannelHue, []float64{240}, -30, nil)
	if err != nil {
		t.Fatalf("ChanRepel returned error: %v", err)
	}
	if h := oklchOf(t, got).H; hueDistance(h, 240) > 2 {
		t.Errorf("hue after attract = %v, want about 240", h)
	}
}

func TestModifyGrayHueOpsNoop(t *testing.T) {
	gray := Hex("#808080")

	for _, ch := range []Channel{ChannelHue, ChannelTemperature, ChannelPressure} {
		got, err := ChanAdd(gray, ch, 40, nil)
		if err != nil {
			t.Fatalf("ChanAdd(%s) on gray returned error: %v", ch, err)
		}
		if got != gray {
			t.Errorf("ChanAdd(%s, 40) on gray = %v, want %v unchanged", ch, got, gray)
		}
	}
}

func TestModifyChannelReturnsHex(t *testing.T) {
	for _, ch := range []Channel{ChannelLightness, ChannelHue, ChannelSaturation, ChannelA, ChannelRed} {
		got, err := ChanAdd(Oklch{L: 60, C: 8, H: 100}, ch, 5, nil)
		if err != nil {
			t.Fatalf("ChanAdd(%s) returned error: %v", ch, err)
		}
		if got.Space() != SpaceHex {
			t.Errorf("ChanAdd(%s) returned a %s color, want hex", ch, got.Space())
		}
	}
}

func TestModifyChannelInvalid(t *testing.T) {
	_, err := ChanAdd(Hex("#5f87af"), Channel("bogus"), 1, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ChanAdd(bogus) error = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "bogus") || !strings.Contains(err.Error(), string(ChannelTemperature)) {
		t.Errorf("error %q should name the bad channel and the allowed set", err)
	}
}

func TestModifyChannelNil(t *testing.T) {
	checks := []struct {
		name string
		call func() (Color, error)
	}{
		{name: "add", call: func() (Color, error) { return ChanAdd(nil, ChannelHue, 10, nil) }},
		{name: "multiply", call: func() (Color, error) { return ChanMultiply(nil, ChannelChroma, 2, nil) }},
		{name: "invert", call: func() (Color, error) { return ChanInvert(nil, ChannelChroma, nil) }},
		{name: "set", call: func() (Color, error) { return ChanSet(nil, ChannelHue, nil, nil) }},
		{name: "repel", call: func() (Color, error) { return ChanRepel(nil, ChannelHue, nil, 1, nil) }},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			if err != nil {
				t.Fatalf("%s on nil returned error: %v", tt.name, err)
			}
			if got != nil {
				t.Errorf("%s on nil = %v, want nil", tt.name, got)
			}
		})
	}
}

func TestChanInvertChroma(t *testing.T) {
	base := Hex("#5f87af")
	lch := oklchOf(t, base)
	ceiling := chromaCeiling(lch.L, lch.H)

	got, err := ChanInvert(base, ChannelChroma, nil)
	if err != nil {
		t.Fatalf("ChanInvert(chroma) returned error: %v", err)
	}
	want := ceiling - lch.C
	if c := oklchOf(t, got).C; math.Abs(c-want) > 0.3 {
		t.Errorf("chroma after invert = %v, want about %v", c, want)
	}
}

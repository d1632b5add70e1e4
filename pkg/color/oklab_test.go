package color

import (
	"math"
	"testing"
)

func TestToeRoundTrip(t *testing.T) {
	for x := 0.0; x <= 1.0; x += 0.05 {
		if got := toeInv(toe(x)); math.Abs(got-x) > 1e-12 {
			t.Errorf("toeInv(toe(%v)) = %v, want input back", x, got)
		}
	}
	if got := toe(1); math.Abs(got-1) > 1e-12 {
		t.Errorf("toe(1) = %v, want 1", got)
	}
	if got := toe(0); got != 0 {
		t.Errorf("toe(0) = %v, want 0", got)
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 360, want: 0},
		{in: 370, want: 10},
		{in: -10, want: 350},
		{in: 725, want: 5},
	}
	for _, tt := range tests {
		if got := normalizeHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{a: 10, b: 350, want: 20},
		{a: 350, b: 10, want: 20},
		{a: 0, b: 180, want: 180},
		{a: 90, b: 90, want: 0},
		{a: 249.16, b: 270, want: 20.84},
	}
	for _, tt := range tests {
		if got := hueDistance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("hueDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHueDelta(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{from: 350, to: 10, want: 20},
		{from: 10, to: 350, want: -20},
		{from: 100, to: 130, want: 30},
		{from: 0, to: 180, want: -180},
	}
	for _, tt := range tests {
		if got := hueDelta(tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("hueDelta(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	from, to := Hex("#000000"), Hex("#ffffff")

	start, err := Lerp(from, to, 0)
	if err != nil {
		t.Fatalf("Lerp(t=0) returned error: %v", err)
	}
	if start != from {
		t.Errorf("Lerp(t=0) = %v, want %v", start, from)
	}

	end, err := Lerp(from, to, 1)
	if err != nil {
		t.Fatalf("Lerp(t=1) returned error: %v", err)
	}
	if end != to {
		t.Errorf("Lerp(t=1) = %v, want %v", end, to)
	}

	over, err := Lerp(from, to, 1.7)
	if err != nil {
		t.Fatalf("Lerp(t=1.7) returned error: %v", err)
	}
	if over != to {
		t.Errorf("Lerp(t=1.7) = %v, want clamped to %v", over, to)
	}
}

func TestLerpMidpointLightness(t *testing.T) {
	mid, err := Lerp(Hex("#000000"), Hex("#ffffff"), 0.5)
	if err != nil {
		t.Fatalf("Lerp returned error: %v", err)
	}
	out, err := Convert(mid, SpaceOklch, nil)
	if err != nil {
		t.Fatalf("Convert(%v, oklch) returned error: %v", mid, err)
	}
	// Perceptual midpoint, not the naive sRGB average #808080 (whose
	// corrected lightness is about 53.6).
	if l := out.(Oklch).L; math.Abs(l-50) > 0.5 {
		t.Errorf("midpoint lightness = %v, want about 50", l)
	}
}

func TestLerpNil(t *testing.T) {
	got, err := Lerp(nil, Hex("#ffffff"), 0.5)
	if err != nil {
		t.Fatalf("Lerp(nil, _) returned error: %v", err)
	}
	if got != nil {
		t.Errorf("Lerp(nil, _) = %v, want nil", got)
	}

	got, err = Lerp(Hex("#000000"), nil, 0.5)
	if err != nil {
		t.Fatalf("Lerp(_, nil) returned error: %v", err)
	}
	if got != nil {
		t.Errorf("Lerp(_, nil) = %v, want nil", got)
	}
}

package scheme

import (
	"testing"

	"github.com/jmylchreest/tinge/pkg/color"
)

func TestAddCtermAttributesSetsIndices(t *testing.T) {
	cs := New("cterm")
	cs.Groups["Normal"] = &Group{
		Fg: color.Hex("#5f87af"),
		Bg: color.Hex("#000000"),
		Sp: color.Hex("#ba4a73"),
	}

	got, err := cs.AddCtermAttributes(nil)
	if err != nil {
		t.Fatalf("AddCtermAttributes() error = %v", err)
	}
	g := got.Groups["Normal"]
	if g.CtermFg == nil || *g.CtermFg != 67 {
		t.Errorf("CtermFg = %v, want 67", g.CtermFg)
	}
	if g.CtermBg == nil || *g.CtermBg != 16 {
		t.Errorf("CtermBg = %v, want 16", g.CtermBg)
	}
	if g.Fg != color.Hex("#5f87af") || g.Bg != color.Hex("#000000") || g.Sp != color.Hex("#ba4a73") {
		t.Errorf("colors changed: %+v", g)
	}
}

func TestAddCtermAttributesForce(t *testing.T) {
	tests := []struct {
		name string
		opts *CtermOptions
		want int
	}{
		{
			name: "default overwrites",
			opts: nil,
			want: 67,
		},
		{
			name: "force overwrites",
			opts: &CtermOptions{Force: true},
			want: 67,
		},
		{
			name: "no force preserves",
			opts: &CtermOptions{Force: false},
			want: 99,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := New("force")
			cs.Groups["Normal"] = &Group{
				Fg:      color.Hex("#5f87af"),
				Bg:      color.Hex("#000000"),
				CtermFg: intPtr(99),
			}

			got, err := cs.AddCtermAttributes(tt.opts)
			if err != nil {
				t.Fatalf("AddCtermAttributes() error = %v", err)
			}
			g := got.Groups["Normal"]
			if g.CtermFg == nil || *g.CtermFg != tt.want {
				t.Errorf("CtermFg = %v, want %d", g.CtermFg, tt.want)
			}
			if g.CtermBg == nil || *g.CtermBg != 16 {
				t.Errorf("CtermBg = %v, want 16", g.CtermBg)
			}
		})
	}
}

func TestAddCtermAttributesSkipsAbsent(t *testing.T) {
	cs := New("absent")
	cs.Groups["Underlined"] = &Group{Underline: true}

	got, err := cs.AddCtermAttributes(nil)
	if err != nil {
		t.Fatalf("AddCtermAttributes() error = %v", err)
	}
	g := got.Groups["Underlined"]
	if g.CtermFg != nil || g.CtermBg != nil {
		t.Errorf("cterm values set for colorless group: %+v", g)
	}
}

// terminalScheme has a light-gray foreground, a near-black background and
// two strongly separated chromatic accents.
func terminalScheme() *Colorscheme {
	cs := New("anchored")
	cs.Groups["Normal"] = &Group{Fg: color.Hex("#c5c8c6"), Bg: color.Hex("#1d1f21")}
	cs.Groups["Error"] = &Group{Fg: color.Hex("#d75f5f")}
	cs.Groups["Info"] = &Group{Fg: color.Hex("#5fafd7")}
	return cs
}

func TestAddTerminalColorsFillsAllSlots(t *testing.T) {
	cs := terminalScheme()
	got, err := cs.AddTerminalColors(nil)
	if err != nil {
		t.Fatalf("AddTerminalColors() error = %v", err)
	}
	palette := map[color.Hex]bool{
		"#c5c8c6": true,
		"#1d1f21": true,
		"#d75f5f": true,
		"#5fafd7": true,
	}
	for slot := 0; slot < 16; slot++ {
		c, ok := got.Terminal[slot]
		if !ok {
			t.Errorf("terminal[%d] not filled", slot)
			continue
		}
		h, ok := c.(color.Hex)
		if !ok {
			t.Errorf("terminal[%d] = %T, want color.Hex", slot, c)
			continue
		}
		if !palette[h] {
			t.Errorf("terminal[%d] = %v, not a palette color", slot, h)
		}
	}
	if len(cs.Terminal) != 0 {
		t.Error("filling the copy mutated the original")
	}
}

func TestAddTerminalColorsAnchorsToNormal(t *testing.T) {
	cs := terminalScheme()
	got, err := cs.AddTerminalColors(nil)
	if err != nil {
		t.Fatalf("AddTerminalColors() error = %v", err)
	}
	tests := []struct {
		slot int
		want color.Hex
	}{
		{0, "#1d1f21"},
		{8, "#1d1f21"},
		{7, "#c5c8c6"},
		{15, "#c5c8c6"},
		{1, "#d75f5f"},
		{6, "#5fafd7"},
	}
	for _, tt := range tests {
		if got.Terminal[tt.slot] != tt.want {
			t.Errorf("terminal[%d] = %v, want %v", tt.slot, got.Terminal[tt.slot], tt.want)
		}
	}
}

func TestAddTerminalColorsKeepsExisting(t *testing.T) {
	cs := terminalScheme()
	// Green is far from slot 1's red target, so a forced refill never
	// picks it back.
	cs.Terminal[1] = color.Hex("#00ff00")

	got, err := cs.AddTerminalColors(nil)
	if err != nil {
		t.Fatalf("AddTerminalColors() error = %v", err)
	}
	if got.Terminal[1] != color.Hex("#00ff00") {
		t.Errorf("terminal[1] = %v, want preserved #00ff00", got.Terminal[1])
	}

	forced, err := cs.AddTerminalColors(&TerminalOptions{Force: true})
	if err != nil {
		t.Fatalf("AddTerminalColors(force) error = %v", err)
	}
	if forced.Terminal[1] == color.Hex("#00ff00") {
		t.Error("force did not replace terminal[1]")
	}
}

func TestAddTerminalColorsEmptyPalette(t *testing.T) {
	cs := New("bare")
	got, err := cs.AddTerminalColors(nil)
	if err != nil {
		t.Fatalf("AddTerminalColors() error = %v", err)
	}
	if len(got.Terminal) != 0 {
		t.Errorf("terminal = %v, want empty", got.Terminal)
	}
}

func TestAddTerminalColorsResolvesLinkedNormal(t *testing.T) {
	cs := terminalScheme()
	fg, bg := cs.Groups["Normal"].Fg, cs.Groups["Normal"].Bg
	cs.Groups["Base"] = &Group{Fg: fg, Bg: bg}
	cs.Groups["Normal"] = &Group{Link: "Base"}

	got, err := cs.AddTerminalColors(nil)
	if err != nil {
		t.Fatalf("AddTerminalColors() error = %v", err)
	}
	if got.Terminal[15] != color.Hex("#c5c8c6") {
		t.Errorf("terminal[15] = %v, want #c5c8c6 via linked Normal", got.Terminal[15])
	}
	if got.Terminal[0] != color.Hex("#1d1f21") {
		t.Errorf("terminal[0] = %v, want #1d1f21 via linked Normal", got.Terminal[0])
	}
}

func TestAddTransparencyDefault(t *testing.T) {
	cs := New("transparent")
	cs.Groups["Normal"] = &Group{
		Fg:      color.Hex("#c5c8c6"),
		Bg:      color.Hex("#1d1f21"),
		CtermBg: intPtr(234),
	}
	cs.Groups["Comment"] = &Group{Fg: color.Hex("#5f87af"), Bg: color.Hex("#1d1f21")}

	got := cs.AddTransparency(nil)

	g := got.Groups["Normal"]
	if g.Bg != nil {
		t.Errorf("Normal bg = %v, want cleared", g.Bg)
	}
	if g.CtermBg != nil {
		t.Errorf("Normal ctermbg = %v, want cleared", g.CtermBg)
	}
	if g.Blend == nil || *g.Blend != 0 {
		t.Errorf("Normal blend = %v, want 0", g.Blend)
	}
	if g.Fg != color.Hex("#c5c8c6") {
		t.Errorf("Normal fg = %v, want untouched", g.Fg)
	}
	if got.Groups["Comment"].Bg == nil {
		t.Error("Comment bg cleared but Comment is in no category")
	}
}

func TestAddTransparencyCategories(t *testing.T) {
	cs := New("categories")
	cs.Groups["Normal"] = &Group{Bg: color.Hex("#1d1f21")}
	cs.Groups["NormalFloat"] = &Group{Bg: color.Hex("#27292c")}
	cs.Groups["StatusLine"] = &Group{Bg: color.Hex("#303030")}

	got := cs.AddTransparency(&TransparencyOptions{Float: true})

	if got.Groups["NormalFloat"].Bg != nil {
		t.Error("NormalFloat bg survived the float category")
	}
	if got.Groups["Normal"].Bg == nil {
		t.Error("Normal bg cleared without the general category")
	}
	if got.Groups["StatusLine"].Bg == nil {
		t.Error("StatusLine bg cleared without the statusline category")
	}
}

func TestAddTransparencyExtraGroups(t *testing.T) {
	cs := New("extra")
	cs.Groups["GitSignsAdd"] = &Group{Fg: color.Hex("#5faf5f"), Bg: color.Hex("#1d1f21")}

	got := cs.AddTransparency(&TransparencyOptions{ExtraGroups: []string{"GitSignsAdd"}})

	g := got.Groups["GitSignsAdd"]
	if g.Bg != nil {
		t.Errorf("bg = %v, want cleared", g.Bg)
	}
	if g.Blend == nil || *g.Blend != 0 {
		t.Errorf("blend = %v, want 0", g.Blend)
	}
}

func TestAddTransparencySkipsUndefinedGroups(t *testing.T) {
	cs := New("sparse")
	cs.Groups["Normal"] = &Group{Bg: color.Hex("#1d1f21")}

	got := cs.AddTransparency(nil)

	if len(got.Groups) != 1 {
		t.Errorf("groups = %v, want only Normal", got.GroupNames())
	}
}

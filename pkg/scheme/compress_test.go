package scheme

import (
	"testing"

	"github.com/jmylchreest/tinge/pkg/color"
)

func TestCompressDropsBaselineLinks(t *testing.T) {
	cs := New("baseline")
	cs.Groups["Boolean"] = &Group{Link: "Constant"}

	got := cs.Compress(nil)

	if len(got.Groups) != 0 {
		t.Errorf("Compress() groups = %v, want empty", got.GroupNames())
	}
}

func TestCompressKeepsDivergentGroups(t *testing.T) {
	cs := New("divergent")
	cs.Groups["Boolean"] = &Group{Link: "Statement"}
	cs.Groups["Normal"] = &Group{Fg: color.Hex("#c5c8c6")}

	got := cs.Compress(nil)

	if _, ok := got.Groups["Boolean"]; !ok {
		t.Error("Boolean with a non-default link was dropped")
	}
	if _, ok := got.Groups["Normal"]; !ok {
		t.Error("Normal was dropped")
	}
}

func TestCompressDropsEmptyGroups(t *testing.T) {
	cs := New("empties")
	cs.Groups["Whitespace"] = &Group{}
	cs.Groups["Normal"] = &Group{Fg: color.Hex("#c5c8c6")}

	got := cs.Compress(nil)

	if _, ok := got.Groups["Whitespace"]; ok {
		t.Error("empty group survived compression")
	}
	if _, ok := got.Groups["Normal"]; !ok {
		t.Error("Normal was dropped")
	}
}

func TestCompressPluginGroups(t *testing.T) {
	tests := []struct {
		name string
		opts *CompressOptions
		want bool
	}{
		{
			name: "dropped by default",
			opts: nil,
			want: false,
		},
		{
			name: "kept when plugins disabled",
			opts: &CompressOptions{Plugins: false},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := New("plugins")
			cs.Groups["TelescopeBorder"] = &Group{Fg: color.Hex("#5f87af")}
			cs.Groups["Normal"] = &Group{Fg: color.Hex("#c5c8c6")}

			got := cs.Compress(tt.opts)

			if _, ok := got.Groups["TelescopeBorder"]; ok != tt.want {
				t.Errorf("TelescopeBorder kept = %v, want %v", ok, tt.want)
			}
			if _, ok := got.Groups["Normal"]; !ok {
				t.Error("Normal was dropped")
			}
		})
	}
}

func TestCompressPassesTerminalThrough(t *testing.T) {
	cs := New("terminal")
	cs.Terminal[0] = color.Hex("#1d1f21")
	cs.Terminal[15] = color.Hex("#ffffff")

	got := cs.Compress(nil)

	if len(got.Terminal) != 2 {
		t.Fatalf("len(Terminal) = %d, want 2", len(got.Terminal))
	}
	for slot, want := range cs.Terminal {
		if got.Terminal[slot] != want {
			t.Errorf("terminal[%d] = %v, want %v", slot, got.Terminal[slot], want)
		}
	}
}

func TestCompressCustomBaseline(t *testing.T) {
	cs := New("custom")
	cs.Groups["MyGroup"] = &Group{Fg: color.Hex("#5f87af")}

	opts := &CompressOptions{
		Plugins:  true,
		Baseline: map[string]*Group{"MyGroup": {Fg: color.Hex("#5f87af")}},
	}
	got := cs.Compress(opts)

	if len(got.Groups) != 0 {
		t.Errorf("Compress() groups = %v, want empty", got.GroupNames())
	}
}

func TestCompressLeavesOriginal(t *testing.T) {
	cs := New("immutable")
	cs.Groups["Boolean"] = &Group{Link: "Constant"}
	cs.Groups["Normal"] = &Group{Fg: color.Hex("#c5c8c6")}

	got := cs.Compress(nil)
	got.Groups["Normal"].Fg = color.Hex("#000000")

	if len(cs.Groups) != 2 {
		t.Errorf("original group count = %d, want 2", len(cs.Groups))
	}
	if cs.Groups["Normal"].Fg != color.Hex("#c5c8c6") {
		t.Errorf("original fg = %v, want #c5c8c6", cs.Groups["Normal"].Fg)
	}
}

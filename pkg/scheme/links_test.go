package scheme

import (
	"testing"

	"github.com/jmylchreest/tinge/pkg/color"
)

func TestResolveLinksChain(t *testing.T) {
	cs := New("chained")
	cs.Groups["Constant"] = &Group{Fg: color.Hex("#cc6633"), Bold: true}
	cs.Groups["Number"] = &Group{Link: "Constant"}
	cs.Groups["Float"] = &Group{Link: "Number"}

	got := cs.ResolveLinks()

	for _, name := range []string{"Number", "Float"} {
		g := got.Groups[name]
		if g.Link != "" {
			t.Errorf("group %q link = %q, want resolved", name, g.Link)
		}
		if g.Fg != color.Hex("#cc6633") {
			t.Errorf("group %q fg = %v, want #cc6633", name, g.Fg)
		}
		if !g.Bold {
			t.Errorf("group %q lost the bold flag", name)
		}
	}
	if got.Groups["Constant"].Fg != color.Hex("#cc6633") {
		t.Errorf("terminus fg = %v, want #cc6633", got.Groups["Constant"].Fg)
	}
}

func TestResolveLinksDeepCopies(t *testing.T) {
	cs := New("copied")
	cs.Groups["Constant"] = &Group{Fg: color.Hex("#cc6633"), Blend: intPtr(5)}
	cs.Groups["Number"] = &Group{Link: "Constant"}

	got := cs.ResolveLinks()
	got.Groups["Number"].Fg = color.Hex("#000000")
	*got.Groups["Number"].Blend = 99

	if cs.Groups["Constant"].Fg != color.Hex("#cc6633") {
		t.Errorf("source terminus fg = %v, want #cc6633", cs.Groups["Constant"].Fg)
	}
	if *cs.Groups["Constant"].Blend != 5 {
		t.Errorf("source terminus blend = %d, want 5", *cs.Groups["Constant"].Blend)
	}
	if got.Groups["Constant"].Fg != color.Hex("#cc6633") {
		t.Error("mutating one resolved copy mutated another")
	}
	if cs.Groups["Number"].Link != "Constant" {
		t.Errorf("source link = %q, want Constant", cs.Groups["Number"].Link)
	}
}

func TestResolveLinksDangling(t *testing.T) {
	cs := New("dangling")
	cs.Groups["Number"] = &Group{Link: "Missing"}
	cs.Groups["Float"] = &Group{Link: "Number"}

	got := cs.ResolveLinks()

	if got.Groups["Number"].Link != "Missing" {
		t.Errorf("dangling link = %q, want Missing", got.Groups["Number"].Link)
	}
	if got.Groups["Float"].Link != "Number" {
		t.Errorf("chain into dangling link = %q, want Number", got.Groups["Float"].Link)
	}
}

func TestResolveLinksNoLinks(t *testing.T) {
	cs := New("plain")
	cs.Groups["Normal"] = &Group{Fg: color.Hex("#c5c8c6")}
	cs.Terminal[0] = color.Hex("#1d1f21")

	got := cs.ResolveLinks()

	if !got.Groups["Normal"].Equal(cs.Groups["Normal"]) {
		t.Errorf("group Normal = %+v, want unchanged", got.Groups["Normal"])
	}
	if got.Terminal[0] != cs.Terminal[0] {
		t.Errorf("terminal[0] = %v, want %v", got.Terminal[0], cs.Terminal[0])
	}
}

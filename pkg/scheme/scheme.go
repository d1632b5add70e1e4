// Package scheme models editor colorschemes as named highlight groups plus
// a 16-slot terminal palette, and provides the transformations between
// them: channel edits, CVD simulation, link resolution, palette extraction,
// compression, style derivation and interpolation. Every operation returns
// a new scheme; inputs are never mutated.
package scheme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/jmylchreest/tinge/pkg/color"
)

// Group is one highlight attribute record. Nil colors and nil integer
// fields mean the attribute is absent. A group with Link set defers to
// another group; resolution follows the chain until a group without a link
// or a name missing from the scheme. Cycles are not guarded against.
type Group struct {
	Fg color.Color
	Bg color.Color
	Sp color.Color

	Bold          bool
	Italic        bool
	Underline     bool
	Undercurl     bool
	Underdouble   bool
	Underdotted   bool
	Underdashed   bool
	Strikethrough bool
	Reverse       bool
	Standout      bool
	Nocombine     bool

	// Blend is a 0-100 pseudo-transparency level.
	Blend *int

	Link string

	// CtermFg and CtermBg are 8-bit palette indices for terminals without
	// true color. There is no cterm slot for Sp.
	CtermFg *int
	CtermBg *int
}

// Colorscheme is the aggregate under transformation: named groups plus the
// ANSI terminal palette, keyed by slot 0-15.
type Colorscheme struct {
	Name     string
	Groups   map[string]*Group
	Terminal map[int]color.Color
}

// New returns an empty scheme with the given name.
func New(name string) *Colorscheme {
	return &Colorscheme{
		Name:     name,
		Groups:   make(map[string]*Group),
		Terminal: make(map[int]color.Color),
	}
}

// Clone returns a deep copy of the group. Color values are immutable and
// shared; pointer fields are duplicated.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	ng := *g
	if g.Blend != nil {
		v := *g.Blend
		ng.Blend = &v
	}
	if g.CtermFg != nil {
		v := *g.CtermFg
		ng.CtermFg = &v
	}
	if g.CtermBg != nil {
		v := *g.CtermBg
		ng.CtermBg = &v
	}
	return &ng
}

// Empty reports whether the group carries no attributes at all.
func (g *Group) Empty() bool {
	if g == nil {
		return true
	}
	return g.Fg == nil && g.Bg == nil && g.Sp == nil &&
		!g.Bold && !g.Italic && !g.Underline && !g.Undercurl &&
		!g.Underdouble && !g.Underdotted && !g.Underdashed &&
		!g.Strikethrough && !g.Reverse && !g.Standout && !g.Nocombine &&
		g.Blend == nil && g.Link == "" && g.CtermFg == nil && g.CtermBg == nil
}

// Equal reports whether two groups define the same visible attributes.
// Colors compare by canonical hex; a nil group equals an empty one.
func (g *Group) Equal(o *Group) bool {
	if g == nil || o == nil {
		return g.Empty() && o.Empty()
	}
	return colorsEqual(g.Fg, o.Fg) && colorsEqual(g.Bg, o.Bg) && colorsEqual(g.Sp, o.Sp) &&
		g.Bold == o.Bold && g.Italic == o.Italic && g.Underline == o.Underline &&
		g.Undercurl == o.Undercurl && g.Underdouble == o.Underdouble &&
		g.Underdotted == o.Underdotted && g.Underdashed == o.Underdashed &&
		g.Strikethrough == o.Strikethrough && g.Reverse == o.Reverse &&
		g.Standout == o.Standout && g.Nocombine == o.Nocombine &&
		intPtrEqual(g.Blend, o.Blend) && g.Link == o.Link &&
		intPtrEqual(g.CtermFg, o.CtermFg) && intPtrEqual(g.CtermBg, o.CtermBg)
}

func colorsEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ha, err := color.Convert(a, color.SpaceHex, nil)
	if err != nil {
		return false
	}
	hb, err := color.Convert(b, color.SpaceHex, nil)
	if err != nil {
		return false
	}
	return ha == hb
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a deep copy of the scheme. Mutating the copy never affects
// the original.
func (cs *Colorscheme) Clone() *Colorscheme {
	if cs == nil {
		return nil
	}
	out := &Colorscheme{
		Name:     cs.Name,
		Groups:   make(map[string]*Group, len(cs.Groups)),
		Terminal: make(map[int]color.Color, len(cs.Terminal)),
	}
	for name, g := range cs.Groups {
		out.Groups[name] = g.Clone()
	}
	for slot, c := range cs.Terminal {
		out.Terminal[slot] = c
	}
	return out
}

// GroupNames returns the scheme's group names in sorted order.
func (cs *Colorscheme) GroupNames() []string {
	names := make([]string, 0, len(cs.Groups))
	for name := range cs.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TerminalSlots returns the occupied terminal slots in ascending order.
func (cs *Colorscheme) TerminalSlots() []int {
	slots := make([]int, 0, len(cs.Terminal))
	for slot := range cs.Terminal {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

type jsonGroup struct {
	Fg            any    `json:"fg,omitempty"`
	Bg            any    `json:"bg,omitempty"`
	Sp            any    `json:"sp,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Undercurl     bool   `json:"undercurl,omitempty"`
	Underdouble   bool   `json:"underdouble,omitempty"`
	Underdotted   bool   `json:"underdotted,omitempty"`
	Underdashed   bool   `json:"underdashed,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Reverse       bool   `json:"reverse,omitempty"`
	Standout      bool   `json:"standout,omitempty"`
	Nocombine     bool   `json:"nocombine,omitempty"`
	Blend         *int   `json:"blend,omitempty"`
	Link          string `json:"link,omitempty"`
	CtermFg       *int   `json:"ctermfg,omitempty"`
	CtermBg       *int   `json:"ctermbg,omitempty"`
}

// MarshalJSON emits colors in their canonical hex form.
func (g *Group) MarshalJSON() ([]byte, error) {
	jg := jsonGroup{
		Bold:          g.Bold,
		Italic:        g.Italic,
		Underline:     g.Underline,
		Undercurl:     g.Undercurl,
		Underdouble:   g.Underdouble,
		Underdotted:   g.Underdotted,
		Underdashed:   g.Underdashed,
		Strikethrough: g.Strikethrough,
		Reverse:       g.Reverse,
		Standout:      g.Standout,
		Nocombine:     g.Nocombine,
		Blend:         g.Blend,
		Link:          g.Link,
		CtermFg:       g.CtermFg,
		CtermBg:       g.CtermBg,
	}
	var err error
	if jg.Fg, err = marshalColor(g.Fg); err != nil {
		return nil, err
	}
	if jg.Bg, err = marshalColor(g.Bg); err != nil {
		return nil, err
	}
	if jg.Sp, err = marshalColor(g.Sp); err != nil {
		return nil, err
	}
	return json.Marshal(jg)
}

// UnmarshalJSON accepts any recognized color shape for fg, bg and sp: hex
// strings, palette indices or component tables.
func (g *Group) UnmarshalJSON(data []byte) error {
	var jg jsonGroup
	if err := json.Unmarshal(data, &jg); err != nil {
		return err
	}
	fg, err := color.Parse(jg.Fg)
	if err != nil {
		return err
	}
	bg, err := color.Parse(jg.Bg)
	if err != nil {
		return err
	}
	sp, err := color.Parse(jg.Sp)
	if err != nil {
		return err
	}
	*g = Group{
		Fg:            fg,
		Bg:            bg,
		Sp:            sp,
		Bold:          jg.Bold,
		Italic:        jg.Italic,
		Underline:     jg.Underline,
		Undercurl:     jg.Undercurl,
		Underdouble:   jg.Underdouble,
		Underdotted:   jg.Underdotted,
		Underdashed:   jg.Underdashed,
		Strikethrough: jg.Strikethrough,
		Reverse:       jg.Reverse,
		Standout:      jg.Standout,
		Nocombine:     jg.Nocombine,
		Blend:         jg.Blend,
		Link:          jg.Link,
		CtermFg:       jg.CtermFg,
		CtermBg:       jg.CtermBg,
	}
	return nil
}

func marshalColor(c color.Color) (any, error) {
	if c == nil {
		return nil, nil
	}
	out, err := color.Convert(c, color.SpaceHex, nil)
	if err != nil {
		return nil, err
	}
	return string(out.(color.Hex)), nil
}

type jsonScheme struct {
	Name     string            `json:"name,omitempty"`
	Groups   map[string]*Group `json:"groups,omitempty"`
	Terminal map[string]any    `json:"terminal,omitempty"`
}

// MarshalJSON emits terminal slots keyed by their decimal index.
func (cs *Colorscheme) MarshalJSON() ([]byte, error) {
	js := jsonScheme{Name: cs.Name, Groups: cs.Groups}
	if len(cs.Terminal) > 0 {
		js.Terminal = make(map[string]any, len(cs.Terminal))
		for slot, c := range cs.Terminal {
			v, err := marshalColor(c)
			if err != nil {
				return nil, err
			}
			js.Terminal[strconv.Itoa(slot)] = v
		}
	}
	return json.Marshal(js)
}

// UnmarshalJSON parses terminal slot keys as decimal indices and slot
// values through the color parser.
func (cs *Colorscheme) UnmarshalJSON(data []byte) error {
	var js jsonScheme
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	out := Colorscheme{Name: js.Name, Groups: js.Groups}
	if out.Groups == nil {
		out.Groups = make(map[string]*Group)
	}
	out.Terminal = make(map[int]color.Color, len(js.Terminal))
	for key, v := range js.Terminal {
		slot, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("%w: terminal slot %q is not an integer index", color.ErrInvalidArgument, key)
		}
		c, err := color.Parse(v)
		if err != nil {
			return err
		}
		if c != nil {
			out.Terminal[slot] = c
		}
	}
	*cs = out
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tinge/pkg/color"
)

// Enum-valued flags validate at parse time so commands never see an
// unrecognized space, strategy or deficiency name.
var (
	_ pflag.Value = (*spaceValue)(nil)
	_ pflag.Value = (*clipValue)(nil)
	_ pflag.Value = (*cvdValue)(nil)
)

type spaceValue struct {
	v *color.Space
}

func newSpaceValue(def color.Space, p *color.Space) *spaceValue {
	*p = def
	return &spaceValue{v: p}
}

func (s *spaceValue) Set(raw string) error {
	sp := color.Space(raw)
	if !color.IsValidSpace(sp) {
		return fmt.Errorf("%q is not one of %v", raw, color.ValidSpaces())
	}
	*s.v = sp
	return nil
}

func (s *spaceValue) String() string { return string(*s.v) }
func (s *spaceValue) Type() string   { return "space" }

type clipValue struct {
	v *color.ClipStrategy
}

func newClipValue(def color.ClipStrategy, p *color.ClipStrategy) *clipValue {
	*p = def
	return &clipValue{v: p}
}

func (c *clipValue) Set(raw string) error {
	cs := color.ClipStrategy(raw)
	if !color.IsValidClipStrategy(cs) {
		return fmt.Errorf("%q is not one of %v", raw, color.ValidClipStrategies())
	}
	*c.v = cs
	return nil
}

func (c *clipValue) String() string { return string(*c.v) }
func (c *clipValue) Type() string   { return "strategy" }

type cvdValue struct {
	v *color.CVDKind
}

func newCVDValue(def color.CVDKind, p *color.CVDKind) *cvdValue {
	*p = def
	return &cvdValue{v: p}
}

func (c *cvdValue) Set(raw string) error {
	kind := color.CVDKind(raw)
	if !color.IsValidCVDKind(kind) {
		return fmt.Errorf("%q is not one of %v", raw, color.ValidCVDKinds())
	}
	*c.v = kind
	return nil
}

func (c *cvdValue) String() string { return string(*c.v) }
func (c *cvdValue) Type() string   { return "kind" }

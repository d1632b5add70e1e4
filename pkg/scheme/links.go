package scheme

// ResolveLinks replaces every linked group with a copy of the group at the
// end of its link chain. Chains are followed through intermediate links on
// the original scheme, so a->b->c resolves a and b both to copies of c.
// Links naming a group the scheme does not define are left in place.
func (cs *Colorscheme) ResolveLinks() *Colorscheme {
	out := cs.Clone()
	for name, g := range out.Groups {
		if g.Link == "" {
			continue
		}
		if target := cs.resolveGroup(g.Link); target != nil {
			out.Groups[name] = target.Clone()
		}
	}
	return out
}

// resolveGroup follows the link chain starting at name and returns the
// terminal group, or nil when the chain leaves the scheme.
func (cs *Colorscheme) resolveGroup(name string) *Group {
	g, ok := cs.Groups[name]
	if !ok {
		return nil
	}
	for g.Link != "" {
		next, ok := cs.Groups[g.Link]
		if !ok {
			return nil
		}
		g = next
	}
	return g
}

package scheme

import "strings"

// CompressOptions controls which groups Compress discards.
type CompressOptions struct {
	// Plugins drops groups whose name carries a known plugin prefix.
	Plugins bool `json:"plugins"`
	// Baseline is the cleared editor state to diff against. Nil selects
	// DefaultBaseline.
	Baseline map[string]*Group `json:"-"`
	// PluginPrefixes overrides the plugin name prefixes. Nil selects
	// DefaultPluginPrefixes.
	PluginPrefixes []string `json:"-"`
}

// DefaultCompressOptions returns the compression defaults.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		Plugins:        true,
		Baseline:       DefaultBaseline(),
		PluginPrefixes: DefaultPluginPrefixes(),
	}
}

// Compress returns a copy retaining only the groups that differ from the
// cleared baseline state. Empty groups always drop, since a cleared editor
// defines no attributes for them. Terminal slots pass through unchanged.
func (cs *Colorscheme) Compress(opts *CompressOptions) *Colorscheme {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	baseline := opts.Baseline
	if baseline == nil {
		baseline = DefaultBaseline()
	}
	prefixes := opts.PluginPrefixes
	if prefixes == nil {
		prefixes = DefaultPluginPrefixes()
	}

	out := New(cs.Name)
	for name, g := range cs.Groups {
		if g.Equal(baseline[name]) {
			continue
		}
		if opts.Plugins && hasPluginPrefix(name, prefixes) {
			continue
		}
		out.Groups[name] = g.Clone()
	}
	for slot, c := range cs.Terminal {
		out.Terminal[slot] = c
	}
	return out
}

func hasPluginPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

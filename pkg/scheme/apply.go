package scheme

// ApplyOptions controls how a host installs a scheme.
type ApplyOptions struct {
	// Clear resets previously active groups not present in the new scheme
	// before the new attributes are set.
	Clear bool `json:"clear"`
}

// ApplyFunc installs a scheme as the host's active highlighting: every
// group becomes the active attribute record for its name, the terminal
// slots are set, and the scheme name is recorded as the active theme.
type ApplyFunc func(cs *Colorscheme, opts ApplyOptions) error

// SnapshotFunc captures the host's currently active groups and terminal
// palette as a scheme.
type SnapshotFunc func() (*Colorscheme, error)

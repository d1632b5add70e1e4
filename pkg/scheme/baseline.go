package scheme

// defaultLinks lists the groups a cleared editor defines as bare links.
// A scheme entry that matches one of these carries no information.
var defaultLinks = map[string]string{
	"Boolean":        "Constant",
	"Character":      "Constant",
	"Conditional":    "Statement",
	"CursorLineFold": "FoldColumn",
	"CursorLineSign": "SignColumn",
	"Debug":          "Special",
	"Define":         "PreProc",
	"Delimiter":      "Special",
	"EndOfBuffer":    "NonText",
	"Exception":      "Statement",
	"Float":          "Number",
	"Function":       "Identifier",
	"Include":        "PreProc",
	"Keyword":        "Statement",
	"Label":          "Statement",
	"LineNrAbove":    "LineNr",
	"LineNrBelow":    "LineNr",
	"Macro":          "PreProc",
	"MsgSeparator":   "StatusLine",
	"Number":         "Constant",
	"Operator":       "Statement",
	"PreCondit":      "PreProc",
	"Repeat":         "Statement",
	"SpecialChar":    "Special",
	"SpecialComment": "Special",
	"StorageClass":   "Type",
	"String":         "Constant",
	"Structure":      "Type",
	"Tag":            "Special",
	"Typedef":        "Type",
}

// DefaultBaseline returns the group definitions a cleared editor state
// produces. Compress drops scheme entries equal to their baseline entry.
func DefaultBaseline() map[string]*Group {
	baseline := make(map[string]*Group, len(defaultLinks))
	for name, target := range defaultLinks {
		baseline[name] = &Group{Link: target}
	}
	return baseline
}

// DefaultPluginPrefixes returns the group-name prefixes used by common
// third-party plugins. Compress drops matching groups unless told to keep
// them.
func DefaultPluginPrefixes() []string {
	return []string{
		"Cmp",
		"Dap",
		"DevIcon",
		"Diffview",
		"Gitsigns",
		"Lazy",
		"Lspsaga",
		"Mason",
		"Mini",
		"Navic",
		"Neogit",
		"NeoTree",
		"Noice",
		"Notify",
		"NvimTree",
		"Telescope",
		"Trouble",
		"WhichKey",
	}
}

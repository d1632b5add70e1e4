package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/pkg/scheme"
)

// SchemeCmd returns the scheme command and its document operations.
func SchemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Operate on colorscheme documents",
		Long: `Operate on a colorscheme document: a JSON object with a name, a map of
highlight groups and a terminal palette. Each operation reads a scheme
file, transforms a copy and writes the result as JSON, either to stdout
or to the file named by --output.`,
	}

	cmd.AddCommand(
		schemeCompressCmd(),
		schemeResolveLinksCmd(),
		schemePaletteCmd(),
		schemeCtermCmd(),
		schemeTerminalColorsCmd(),
		schemeTransparencyCmd(),
	)

	return cmd
}

func schemeCompressCmd() *cobra.Command {
	var (
		plugins bool
		output  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "compress <scheme.json>",
		Short: "Drop groups a cleared editor already defines",
		Long: `Drop groups that restate the editor's default link table, groups that
set nothing at all, and optionally groups that belong to plugins. The
result renders identically after a clear but carries fewer entries.

Examples:
  # Minimal scheme, plugin groups removed
  tinge scheme compress theme.json -o compact.json

  # Keep plugin groups
  tinge scheme compress theme.json --plugins=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := loadScheme(args[0])
			if err != nil {
				return err
			}
			opts := scheme.DefaultCompressOptions()
			opts.Plugins = plugins
			out := cs.Compress(opts)
			buildLogger(cmd).Debug("compressed scheme",
				"groups_in", len(cs.Groups), "groups_out", len(out.Groups))
			return emitSchemeResult(cmd, out, output, preview)
		},
	}

	cmd.Flags().BoolVar(&plugins, "plugins", true, "drop groups with known plugin name prefixes")
	addSchemeOutputFlags(cmd, &output, &preview)
	return cmd
}

func schemeResolveLinksCmd() *cobra.Command {
	var (
		output  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "resolve-links <scheme.json>",
		Short: "Replace linked groups with copies of their targets",
		Long: `Replace each linked group with an independent copy of the group its
link chain terminates in. Links whose chain leaves the scheme are kept
as they are.

Examples:
  tinge scheme resolve-links theme.json -o flat.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := loadScheme(args[0])
			if err != nil {
				return err
			}
			return emitSchemeResult(cmd, cs.ResolveLinks(), output, preview)
		},
	}

	addSchemeOutputFlags(cmd, &output, &preview)
	return cmd
}

func schemePaletteCmd() *cobra.Command {
	var (
		threshold float64
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "palette <scheme.json>",
		Short: "List the scheme's distinct colors by lightness",
		Long: `List the distinct colors a scheme uses, ordered dark to light. Colors
whose share of all occurrences falls below the threshold are dropped.

Examples:
  # Every color
  tinge scheme palette theme.json --threshold 0

  # Only colors covering at least 5% of occurrences, as swatches
  tinge scheme palette theme.json --threshold 0.05 --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := loadScheme(args[0])
			if err != nil {
				return err
			}
			palette, err := cs.GetPalette(&scheme.PaletteOptions{Threshold: threshold})
			if err != nil {
				return err
			}
			if preview {
				return renderPalette(cmd.OutOrStdout(), palette)
			}
			for _, hex := range palette {
				fmt.Fprintln(cmd.OutOrStdout(), string(hex))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", scheme.DefaultPaletteOptions().Threshold,
		"minimum share of occurrences a color needs to be listed")
	cmd.Flags().BoolVar(&preview, "preview", false, "render swatches instead of hex strings")
	return cmd
}

func schemeCtermCmd() *cobra.Command {
	var (
		force   bool
		output  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "cterm <scheme.json>",
		Short: "Derive 256-color indices for every group",
		Long: `Fill each group's cterm attributes with the 256-color palette index
nearest its fg and bg colors, for terminals without truecolor support.

Examples:
  tinge scheme cterm theme.json -o theme.json

  # Only fill indices that are missing
  tinge scheme cterm theme.json --force=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := loadScheme(args[0])
			if err != nil {
				return err
			}
			out, err := cs.AddCtermAttributes(&scheme.CtermOptions{Force: force})
			if err != nil {
				return err
			}
			return emitSchemeResult(cmd, out, output, preview)
		},
	}

	cmd.Flags().BoolVar(&force, "force", true, "replace cterm indices that are already set")
	addSchemeOutputFlags(cmd, &output, &preview)
	return cmd
}

func schemeTerminalColorsCmd() *cobra.Command {
	var (
		force      bool
		background string
		threshold  float64
		output     string
		preview    bool
	)

	cmd := &cobra.Command{
		Use:   "terminal-colors <scheme.json>",
		Short: "Fill the 16 ANSI terminal slots from the scheme's palette",
		Long: `Fill the scheme's 16 ANSI terminal slots with the palette colors
nearest each slot's conventional target: grays anchored to the Normal
group's lightness for slots 0, 7, 8 and 15, and the six standard hues
for the chromatic slots. Already-set slots are kept unless --force is
given.

Examples:
  tinge scheme terminal-colors theme.json -o theme.json

  # Rebuild every slot for a light scheme
  tinge scheme terminal-colors theme.json --force --background light`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if background != "dark" && background != "light" {
				return fmt.Errorf(`background must be "dark" or "light", got %q`, background)
			}
			cs, err := loadScheme(args[0])
			if err != nil {
				return err
			}
			out, err := cs.AddTerminalColors(&scheme.TerminalOptions{
				Force:       force,
				Background:  background,
				PaletteArgs: &scheme.PaletteOptions{Threshold: threshold},
			})
			if err != nil {
				return err
			}
			return emitSchemeResult(cmd, out, output, preview)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace terminal slots that are already set")
	cmd.Flags().StringVar(&background, "background", "dark", "anchor lightness when Normal sets no colors (dark, light)")
	cmd.Flags().Float64Var(&threshold, "threshold", scheme.DefaultPaletteOptions().Threshold,
		"minimum palette share for a color to be a candidate")
	addSchemeOutputFlags(cmd, &output, &preview)
	return cmd
}

func schemeTransparencyCmd() *cobra.Command {
	var (
		opts    scheme.TransparencyOptions
		output  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "transparency <scheme.json>",
		Short: "Strip backgrounds so the terminal shows through",
		Long: `Clear the background color, background index and blend of selected
group categories so a transparent terminal shows through. Only groups
the scheme actually defines are touched.

Examples:
  # General UI groups only
  tinge scheme transparency theme.json -o clear.json

  # Floats and the status line too
  tinge scheme transparency theme.json --float --statusline

  # Extra plugin groups
  tinge scheme transparency theme.json --extra-groups NeoTreeNormal,NeoTreeEndOfBuffer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := loadScheme(args[0])
			if err != nil {
				return err
			}
			return emitSchemeResult(cmd, cs.AddTransparency(&opts), output, preview)
		},
	}

	cmd.Flags().BoolVar(&opts.General, "general", true, "strip the general UI groups")
	cmd.Flags().BoolVar(&opts.Float, "float", false, "strip floating window groups")
	cmd.Flags().BoolVar(&opts.StatusColumn, "statuscolumn", false, "strip sign, fold and line number columns")
	cmd.Flags().BoolVar(&opts.StatusLine, "statusline", false, "strip the status line groups")
	cmd.Flags().BoolVar(&opts.TabLine, "tabline", false, "strip the tab line groups")
	cmd.Flags().BoolVar(&opts.WinBar, "winbar", false, "strip the window bar groups")
	cmd.Flags().StringSliceVar(&opts.ExtraGroups, "extra-groups", nil, "additional group names to strip")
	addSchemeOutputFlags(cmd, &output, &preview)
	return cmd
}

func addSchemeOutputFlags(cmd *cobra.Command, output *string, preview *bool) {
	cmd.Flags().StringVarP(output, "output", "o", "", "write the transformed scheme to this file (default stdout)")
	cmd.Flags().BoolVar(preview, "preview", false, "render the result as swatches instead of JSON")
}

// emitSchemeResult writes the transformed scheme. An output path always gets
// the JSON document; stdout gets swatches under --preview and JSON otherwise.
func emitSchemeResult(cmd *cobra.Command, cs *scheme.Colorscheme, output string, preview bool) error {
	if output != "" && output != "-" {
		if err := emitScheme(cmd, cs, output); err != nil {
			return err
		}
	}
	if preview {
		return renderScheme(cmd.OutOrStdout(), cs)
	}
	if output == "" || output == "-" {
		return emitScheme(cmd, cs, output)
	}
	return nil
}

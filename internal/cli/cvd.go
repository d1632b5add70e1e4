package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/pkg/color"
)

// CVDCmd returns the cvd command.
func CVDCmd() *cobra.Command {
	var (
		kind     color.CVDKind
		severity float64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "cvd <color|scheme.json>",
		Short: "Simulate color vision deficiency",
		Long: `Render a color, or every color in a scheme, as a viewer with a color
vision deficiency would see it.

Severity runs from 0 (typical vision) to 1 (dichromacy) and snaps to
tabulated steps of 0.1. The mono kind ignores severity and removes
all chroma while preserving perceived lightness.

Examples:
  # Pure green through protanopia
  tinge cvd '#00ff00' --kind protan

  # Check a scheme under moderate deuteranomaly
  tinge cvd theme.json --kind deutan --severity 0.6 -o deutan.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isSchemePath(args[0]) {
				cs, err := loadScheme(args[0])
				if err != nil {
					return err
				}
				out, err := cs.SimulateCVD(kind, severity)
				if err != nil {
					return err
				}
				return emitScheme(cmd, out, output)
			}
			in, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			out, err := color.SimulateCVD(in, kind, severity)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatColor(out))
			return nil
		},
	}

	cmd.Flags().VarP(newCVDValue(color.CVDProtan, &kind), "kind", "k", "deficiency kind (protan, deutan, tritan, mono)")
	cmd.Flags().Float64VarP(&severity, "severity", "s", 1, "deficiency severity in [0, 1]")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the transformed scheme to this file (default stdout)")

	return cmd
}

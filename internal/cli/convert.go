package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/pkg/color"
)

// ConvertCmd returns the convert command.
func ConvertCmd() *cobra.Command {
	var (
		to      color.Space
		clip    color.ClipStrategy
		asJSON  bool
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color between color spaces",
		Long: `Convert a color between sRGB and the Oklab family of spaces.

Out-of-gamut results are clipped back into sRGB before being encoded
as hex, rgb or an 8-bit index; the --clip flag selects the strategy.

Examples:
  # Hex to Oklch
  tinge convert '#5f87af' --to oklch

  # Palette index 67 to hex
  tinge convert 67 --to hex

  # Out-of-gamut Oklch to hex, clipping toward the cusp
  tinge convert '{"l":60,"c":35,"h":145}' --to hex --clip cusp

  # Machine-readable output
  tinge convert '#5f87af' --to okhsl --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			out, err := color.Convert(in, to, &color.ConvertOptions{GamutClip: clip})
			if err != nil {
				return err
			}
			logger := buildLogger(cmd)
			logger.Debug("converted color", "from", args[0], "to", string(to), "result", formatColor(out))

			if asJSON {
				data, err := json.Marshal(out)
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if preview {
				return renderColor(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatColor(out))
			return nil
		},
	}

	cmd.Flags().VarP(newSpaceValue(color.SpaceHex, &to), "to", "t", "target space (8-bit, hex, rgb, oklab, oklch, okhsl)")
	cmd.Flags().Var(newClipValue(color.ClipChroma, &clip), "clip", "gamut clip strategy (chroma, lightness, cusp)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	cmd.Flags().BoolVar(&preview, "preview", false, "show a terminal swatch")

	return cmd
}

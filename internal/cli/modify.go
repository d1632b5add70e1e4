package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/pkg/color"
	"github.com/jmylchreest/tinge/pkg/scheme"
)

// ModifyCmd returns the modify command and its channel operations.
func ModifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Adjust one channel of a color or of every color in a scheme",
		Long: `Adjust a single channel of a color, or of every color in a scheme.

Channels: lightness, chroma, saturation, hue, temperature, pressure,
a, b, red, green, blue. Results come back as hex, clipped into the
sRGB gamut by the selected strategy. When the target is a scheme file
the operation applies to every fg, bg, sp and terminal color.`,
	}

	cmd.AddCommand(
		modifyAddCmd(),
		modifyMultiplyCmd(),
		modifyInvertCmd(),
		modifySetCmd(),
		modifyRepelCmd(),
	)

	return cmd
}

func modifyAddCmd() *cobra.Command {
	var (
		clip   color.ClipStrategy
		output string
	)

	cmd := &cobra.Command{
		Use:   "add <channel> <delta> <color|scheme.json>",
		Short: "Shift a channel by a fixed amount",
		Long: `Shift a channel by a fixed amount. Bounded channels clamp to their
domain; hue, temperature and pressure wrap.

Examples:
  # Rotate hue half a turn
  tinge modify add hue 180 '#ba4a73'

  # Lighten every color in a scheme
  tinge modify add lightness 10 theme.json -o lighter.json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := color.Channel(args[0])
			delta, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			opts := &color.ModifyOptions{GamutClip: clip}
			return applyChannelOp(cmd, args[2], output,
				func(c color.Color) (color.Color, error) {
					return color.ChanAdd(c, ch, delta, opts)
				},
				func(cs *scheme.Colorscheme) (*scheme.Colorscheme, error) {
					return cs.ChanAdd(ch, delta, opts)
				})
		},
	}

	addModifyFlags(cmd, &clip, &output)
	return cmd
}

func modifyMultiplyCmd() *cobra.Command {
	var (
		clip   color.ClipStrategy
		output string
	)

	cmd := &cobra.Command{
		Use:   "multiply <channel> <factor> <color|scheme.json>",
		Short: "Scale a channel by a factor",
		Long: `Scale a channel by a factor.

Examples:
  # Halve the chroma
  tinge modify multiply chroma 0.5 '#ba4a73'

  # Desaturate a whole scheme by a quarter
  tinge modify multiply saturation 0.75 theme.json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := color.Channel(args[0])
			factor, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			opts := &color.ModifyOptions{GamutClip: clip}
			return applyChannelOp(cmd, args[2], output,
				func(c color.Color) (color.Color, error) {
					return color.ChanMultiply(c, ch, factor, opts)
				},
				func(cs *scheme.Colorscheme) (*scheme.Colorscheme, error) {
					return cs.ChanMultiply(ch, factor, opts)
				})
		},
	}

	addModifyFlags(cmd, &clip, &output)
	return cmd
}

func modifyInvertCmd() *cobra.Command {
	var (
		clip   color.ClipStrategy
		output string
	)

	cmd := &cobra.Command{
		Use:   "invert <channel> <color|scheme.json>",
		Short: "Mirror a channel within its domain",
		Long: `Mirror a channel within its domain: lightness and saturation flip
around 50, RGB components around 127.5, hue rotates half a turn, and
chroma reflects against the gamut ceiling for the color's lightness
and hue.

Examples:
  # Dark scheme from a light one
  tinge modify invert lightness theme.json -o dark.json

  # Complementary accent
  tinge modify invert hue '#ba4a73'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := color.Channel(args[0])
			opts := &color.ModifyOptions{GamutClip: clip}
			return applyChannelOp(cmd, args[1], output,
				func(c color.Color) (color.Color, error) {
					return color.ChanInvert(c, ch, opts)
				},
				func(cs *scheme.Colorscheme) (*scheme.Colorscheme, error) {
					return cs.ChanInvert(ch, opts)
				})
		},
	}

	addModifyFlags(cmd, &clip, &output)
	return cmd
}

func modifySetCmd() *cobra.Command {
	var (
		clip   color.ClipStrategy
		output string
	)

	cmd := &cobra.Command{
		Use:   "set <channel> <color|scheme.json> <value>...",
		Short: "Snap a channel to the nearest of the given values",
		Long: `Snap a channel to whichever of the given values is nearest. Hue
distance is circular.

Examples:
  # Quantize scheme hues to a triad
  tinge modify set hue theme.json 30 150 270

  # Pin lightness to one of two levels
  tinge modify set lightness '#5f87af' 20 80`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := color.Channel(args[0])
			values, err := parseNumbers(args[2:])
			if err != nil {
				return err
			}
			opts := &color.ModifyOptions{GamutClip: clip}
			return applyChannelOp(cmd, args[1], output,
				func(c color.Color) (color.Color, error) {
					return color.ChanSet(c, ch, values, opts)
				},
				func(cs *scheme.Colorscheme) (*scheme.Colorscheme, error) {
					return cs.ChanSet(ch, values, opts)
				})
		},
	}

	addModifyFlags(cmd, &clip, &output)
	return cmd
}

func modifyRepelCmd() *cobra.Command {
	var (
		clip        color.ClipStrategy
		output      string
		coefficient float64
	)

	cmd := &cobra.Command{
		Use:   "repel <channel> <color|scheme.json> <source>...",
		Short: "Push a channel away from the given values",
		Long: `Push a channel away from the given source values. A positive
coefficient repels, displacing values near a source to just outside
the source's interval; a negative coefficient attracts, snapping
values within reach onto the source.

Examples:
  # Clear scheme hues away from pure red
  tinge modify repel hue theme.json 30 --coefficient 20

  # Pull hues onto a cyan axis
  tinge modify repel hue theme.json 195 --coefficient -40`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := color.Channel(args[0])
			sources, err := parseNumbers(args[2:])
			if err != nil {
				return err
			}
			opts := &color.ModifyOptions{GamutClip: clip}
			return applyChannelOp(cmd, args[1], output,
				func(c color.Color) (color.Color, error) {
					return color.ChanRepel(c, ch, sources, coefficient, opts)
				},
				func(cs *scheme.Colorscheme) (*scheme.Colorscheme, error) {
					return cs.ChanRepel(ch, sources, coefficient, opts)
				})
		},
	}

	addModifyFlags(cmd, &clip, &output)
	cmd.Flags().Float64VarP(&coefficient, "coefficient", "c", 30, "repel strength; negative attracts")
	return cmd
}

func addModifyFlags(cmd *cobra.Command, clip *color.ClipStrategy, output *string) {
	cmd.Flags().Var(newClipValue(color.ClipChroma, clip), "clip", "gamut clip strategy (chroma, lightness, cusp)")
	cmd.Flags().StringVarP(output, "output", "o", "", "write the transformed scheme to this file (default stdout)")
}

// applyChannelOp routes a channel operation to a single color or a scheme
// document depending on the target argument.
func applyChannelOp(cmd *cobra.Command, target, output string,
	colorOp func(color.Color) (color.Color, error),
	schemeOp func(*scheme.Colorscheme) (*scheme.Colorscheme, error),
) error {
	if isSchemePath(target) {
		cs, err := loadScheme(target)
		if err != nil {
			return err
		}
		out, err := schemeOp(cs)
		if err != nil {
			return err
		}
		return emitScheme(cmd, out, output)
	}
	in, err := parseColorArg(target)
	if err != nil {
		return err
	}
	out, err := colorOp(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatColor(out))
	return nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}

func parseNumbers(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, r := range raw {
		v, err := parseNumber(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Package cli provides the command-line interface for Tinge.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/internal/version"
)

// NewRootCmd assembles the tinge command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tinge",
		Short: "Transform editor color schemes in perceptual color space",
		Long: `Tinge converts colors between sRGB and the Oklab family of perceptual
spaces and transforms whole editor color schemes: channel arithmetic,
gamut clipping, color vision deficiency simulation, terminal palette
derivation and animated transitions between schemes.

Colors are given as hex strings ('#5f87af'), 8-bit palette indices (67)
or JSON component tables ('{"l":54.73,"c":7.57,"h":249.16}'). Commands
that accept a scheme take the path of a colorscheme JSON document.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		ConvertCmd(),
		ModifyCmd(),
		CVDCmd(),
		SchemeCmd(),
		AnimateCmd(),
		VersionCmd(),
	)

	return rootCmd
}

// VersionCmd returns the version command.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// buildLogger derives a logger from the persistent verbosity flags.
func buildLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	switch {
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tinge",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case verbose:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tinge",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	default:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tinge",
			Output: os.Stderr,
			Level:  hclog.Info,
		})
	}
}

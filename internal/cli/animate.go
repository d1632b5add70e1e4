package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/pkg/animate"
	"github.com/jmylchreest/tinge/pkg/scheme"
)

// AnimateCmd returns the animate command.
func AnimateCmd() *cobra.Command {
	var (
		transition time.Duration
		show       time.Duration
		steps      int
		cycles     int
		fromPath   string
	)

	cmd := &cobra.Command{
		Use:   "animate <scheme.json> [scheme.json...]",
		Short: "Animate transitions through a sequence of schemes",
		Long: `Cycle through the given schemes, rendering every interpolated frame as
a row of terminal swatches. Colors blend perceptually; styles, links
and terminal indices switch over at the midpoint of each transition.
Interrupt with Ctrl-C to stop.

Examples:
  # Fade between two schemes once
  tinge animate night.json day.json

  # Quick transitions, long holds, looping forever
  tinge animate a.json b.json c.json --transition 500ms --show 5s --cycles 0

  # Start the first fade from a third scheme
  tinge animate day.json --from night.json --steps 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes := make([]*scheme.Colorscheme, len(args))
			for i, path := range args {
				cs, err := loadScheme(path)
				if err != nil {
					return err
				}
				schemes[i] = cs
			}

			opts := animate.DefaultOptions()
			opts.TransitionDuration = transition
			opts.ShowDuration = show
			opts.TransitionSteps = steps
			opts.Cycles = cycles
			if fromPath != "" {
				from, err := loadScheme(fromPath)
				if err != nil {
					return err
				}
				opts.From = from
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			apply := func(cs *scheme.Colorscheme, _ scheme.ApplyOptions) error {
				return renderFrame(out, cs)
			}

			animator := animate.New(apply, nil, buildLogger(cmd))
			if err := animator.Animate(ctx, schemes, opts); err != nil {
				return err
			}
			err := <-animator.Done()
			if colorOutputEnabled(out) {
				// Frames render in place on a TTY; move past the last one.
				fmt.Fprintln(out)
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&transition, "transition", time.Second, "duration of each transition")
	cmd.Flags().DurationVar(&show, "show", time.Second, "hold time on each scheme between transitions")
	cmd.Flags().IntVar(&steps, "steps", 0, "frames per transition (0 derives one frame per 20ms)")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "passes through the sequence (0 repeats until interrupted)")
	cmd.Flags().StringVar(&fromPath, "from", "", "scheme to start the first transition from (default the current first scheme)")

	return cmd
}

// Package animate cycles a host through a sequence of colorschemes,
// interpolating intermediate schemes between each pair of endpoints.
package animate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tinge/pkg/color"
	"github.com/jmylchreest/tinge/pkg/scheme"
)

// Options controls the pacing of an animation.
type Options struct {
	// TransitionDuration is the total wall-clock time for moving between
	// two schemes, divided evenly across the steps.
	TransitionDuration time.Duration `json:"transition_duration"`
	// ShowDuration is the hold time at each scheme before the next
	// transition begins.
	ShowDuration time.Duration `json:"show_duration"`
	// TransitionSteps is the number of intermediate schemes per
	// transition. Zero derives a step count that paces frames about 20ms
	// apart.
	TransitionSteps int `json:"transition_steps"`
	// From overrides the starting point. Nil starts from the host's
	// current state when a snapshot collaborator is available, otherwise
	// from the first scheme.
	From *scheme.Colorscheme `json:"-"`
	// Cycles is the number of passes through the sequence. Zero loops
	// until the context is cancelled.
	Cycles int `json:"cycles"`
}

// DefaultOptions returns the animation pacing defaults.
func DefaultOptions() *Options {
	return &Options{
		TransitionDuration: time.Second,
		ShowDuration:       time.Second,
	}
}

const stepInterval = 20 * time.Millisecond

func (o *Options) normalized() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.TransitionDuration <= 0 {
		out.TransitionDuration = time.Second
	}
	if out.ShowDuration <= 0 {
		out.ShowDuration = time.Second
	}
	if out.TransitionSteps <= 0 {
		out.TransitionSteps = int(out.TransitionDuration / stepInterval)
		if out.TransitionSteps < 1 {
			out.TransitionSteps = 1
		}
	}
	if out.Cycles < 0 {
		out.Cycles = 0
	}
	return out
}

// Animator drives scheme transitions against a host. Starting a new
// animation supersedes any animation already running; the two never apply
// frames concurrently.
type Animator struct {
	logger   hclog.Logger
	apply    scheme.ApplyFunc
	snapshot scheme.SnapshotFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

// New returns an Animator that hands frames to apply. snapshot supplies the
// implicit starting point and may be nil. A nil logger disables logging.
func New(apply scheme.ApplyFunc, snapshot scheme.SnapshotFunc, logger hclog.Logger) *Animator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Animator{
		logger:   logger,
		apply:    apply,
		snapshot: snapshot,
	}
}

// Animate starts cycling through schemes in order, looping back to the
// first after the last. It returns once the animation is running; errors
// raised while computing or applying frames halt the animation and surface
// on Done. A running animation is stopped first.
func (a *Animator) Animate(ctx context.Context, schemes []*scheme.Colorscheme, opts *Options) error {
	if len(schemes) == 0 {
		return fmt.Errorf("%w: animate requires at least one scheme", color.ErrInvalidArgument)
	}
	if a.apply == nil {
		return fmt.Errorf("%w: animator has no apply collaborator", color.ErrInvalidArgument)
	}
	o := opts.normalized()

	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()

	a.logger.Debug("starting animation",
		"schemes", len(schemes),
		"transition", o.TransitionDuration,
		"show", o.ShowDuration,
		"steps", o.TransitionSteps,
		"cycles", o.Cycles)

	go func() {
		err := a.run(runCtx, schemes, o)
		if err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("animation halted", "error", err)
		}
		done <- err
	}()
	return nil
}

// Stop cancels the running animation. Frames already handed to the apply
// collaborator are not rolled back.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Done returns the channel carrying the most recent animation's outcome:
// nil after completing its cycles, the causing error after a halt, or the
// context error after cancellation. It returns nil before the first
// Animate call.
func (a *Animator) Done() <-chan error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

func (a *Animator) run(ctx context.Context, schemes []*scheme.Colorscheme, opts Options) error {
	from, err := a.startingPoint(schemes, opts)
	if err != nil {
		return err
	}
	for cycle := 1; ; cycle++ {
		for _, to := range schemes {
			if err := a.transition(ctx, from, to, opts); err != nil {
				return err
			}
			if err := wait(ctx, opts.ShowDuration); err != nil {
				return err
			}
			from = to
		}
		if opts.Cycles > 0 && cycle >= opts.Cycles {
			return nil
		}
	}
}

func (a *Animator) startingPoint(schemes []*scheme.Colorscheme, opts Options) (*scheme.Colorscheme, error) {
	if opts.From != nil {
		return opts.From, nil
	}
	if a.snapshot != nil {
		snap, err := a.snapshot()
		if err != nil {
			return nil, fmt.Errorf("snapshotting current state: %w", err)
		}
		if snap != nil {
			return snap, nil
		}
	}
	return schemes[0], nil
}

func (a *Animator) transition(ctx context.Context, from, to *scheme.Colorscheme, opts Options) error {
	steps := opts.TransitionSteps
	stepDur := opts.TransitionDuration / time.Duration(steps)
	a.logger.Debug("transitioning", "to", to.Name, "steps", steps, "step_duration", stepDur)
	for i := 1; i <= steps; i++ {
		if err := wait(ctx, stepDur); err != nil {
			return err
		}
		frame, err := scheme.Blend(from, to, float64(i)/float64(steps))
		if err != nil {
			return err
		}
		if err := a.apply(frame, scheme.ApplyOptions{}); err != nil {
			return err
		}
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

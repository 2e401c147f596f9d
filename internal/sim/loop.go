package sim

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/render"
)

// Loop is the always-on driver: flash once, then render and advance
// forever.
type Loop struct {
	sim           *Simulator
	renderer      *render.Renderer
	indicator     display.Indicator
	state         State
	frameInterval time.Duration
	log           zerolog.Logger
	degenerate    bool
}

type LoopOption func(*Loop)

// WithIndicator sets the power-on indicator. Without one the loop starts
// drawing immediately.
func WithIndicator(ind display.Indicator) LoopOption {
	return func(l *Loop) { l.indicator = ind }
}

// WithFrameInterval sleeps d between frames. Zero runs as fast as the
// display flushes.
func WithFrameInterval(d time.Duration) LoopOption {
	return func(l *Loop) { l.frameInterval = d }
}

func WithLogger(log zerolog.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

func NewLoop(s *Simulator, r *render.Renderer, initial State, opts ...LoopOption) *Loop {
	l := &Loop{
		sim:      s,
		renderer: r,
		state:    initial,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current simulation state.
func (l *Loop) State() State { return l.state }

// Reset replaces the current state, e.g. to restart from the initial
// conditions. Metrics attached to the simulator are reset too.
func (l *Loop) Reset(st State) {
	l.state = st
	l.degenerate = false
	for _, m := range l.sim.metrics {
		m.Reset()
		m.Observe(st)
	}
}

// Run flashes the indicator and loops until ctx is done. With
// context.Background it never returns.
func (l *Loop) Run(ctx context.Context) error {
	return l.run(ctx, -1)
}

// RunSteps is Run bounded to n iterations.
func (l *Loop) RunSteps(ctx context.Context, n int) error {
	return l.run(ctx, n)
}

func (l *Loop) run(ctx context.Context, n int) error {
	if l.indicator != nil {
		if err := l.indicator.Flash(ctx); err != nil {
			return err
		}
	}

	l.log.Info().
		Float64("dt", l.sim.Dt()).
		Int("step", l.state.Step).
		Msg("simulation started")

	for i := 0; n < 0 || i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.Tick()

		if l.frameInterval > 0 {
			if err := wait(ctx, l.frameInterval); err != nil {
				return err
			}
		}
	}
	return nil
}

// Tick performs one iteration: render the current state, then advance it.
func (l *Loop) Tick() {
	l.renderer.Frame(l.state.Bodies, l.state.Trails)
	l.sim.step(&l.state)
	l.checkDegenerate()
}

// checkDegenerate logs once when the configuration turns degenerate and
// once when it recovers. Rendering continues either way; NaN positions
// project off-screen.
func (l *Loop) checkDegenerate() {
	err := l.sim.Check(l.state)
	switch {
	case err != nil && !l.degenerate:
		l.degenerate = true
		l.log.Warn().Err(err).Int("step", l.state.Step).Float64("t", l.state.Time).Msg("degenerate configuration")
	case err == nil && l.degenerate:
		l.degenerate = false
		l.log.Info().Int("step", l.state.Step).Msg("configuration recovered")
	}
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

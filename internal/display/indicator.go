package display

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Default flash timing: LED on briefly, then a pause before the first frame.
const (
	DefaultFlashOn    = 100 * time.Millisecond
	DefaultFlashPause = time.Second
)

// Light is a single on/off output, such as the board LED.
type Light interface {
	Set(on bool)
}

// LEDIndicator flashes a Light once: on, wait, off, wait.
type LEDIndicator struct {
	light Light
	on    time.Duration
	pause time.Duration
	log   zerolog.Logger
}

func NewLEDIndicator(light Light, on, pause time.Duration, log zerolog.Logger) *LEDIndicator {
	return &LEDIndicator{light: light, on: on, pause: pause, log: log}
}

func (l *LEDIndicator) Flash(ctx context.Context) error {
	l.light.Set(true)
	l.log.Debug().Dur("on", l.on).Msg("indicator on")
	if err := sleep(ctx, l.on); err != nil {
		l.light.Set(false)
		return err
	}
	l.light.Set(false)
	l.log.Debug().Dur("pause", l.pause).Msg("indicator off")
	return sleep(ctx, l.pause)
}

// LogLight is a Light that only logs state changes.
type LogLight struct {
	log zerolog.Logger
	on  bool
}

func NewLogLight(log zerolog.Logger) *LogLight {
	return &LogLight{log: log}
}

func (l *LogLight) Set(on bool) {
	l.on = on
	l.log.Info().Bool("on", on).Msg("led")
}

func (l *LogLight) On() bool { return l.on }

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

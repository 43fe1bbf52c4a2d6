package formation

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

type Strategy string

const (
	StrategyPreferences Strategy = "preferences"
	StrategySkills      Strategy = "skills"
)

const DefaultMaxAttempts = 10_000

func ParseStrategy(raw string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "preferences", "preference", "prefs":
		return StrategyPreferences, nil
	case "skills", "skill", "balance":
		return StrategySkills, nil
	default:
		return "", fmt.Errorf("%w %q (expected preferences|skills)", ErrUnknownStrategy, raw)
	}
}

type Options struct {
	GroupSize int
	Strategy  Strategy
	// ScoreFloors enables the per-size floor policy in DefaultFloors.
	ScoreFloors bool
	// MaxAttempts bounds preference formation restarts. Zero means DefaultMaxAttempts.
	MaxAttempts int
	Logger      *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts == 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return o
}

func (o Options) validate() error {
	if o.GroupSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGroupSize, o.GroupSize)
	}
	if o.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative: %d", o.MaxAttempts)
	}
	switch o.Strategy {
	case StrategyPreferences, StrategySkills:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownStrategy, o.Strategy)
	}
}

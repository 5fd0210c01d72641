// Package strategy picks the braking behaviour of a Brake at construction time.
package strategy

import "log/slog"

//go:generate mockgen -source=strategy.go -destination=mock_strategy_test.go -package=strategy

// BrakeStrategy performs a brake and describes what it did.
type BrakeStrategy interface {
	Brake() string
}

// BrakeWithABS brakes with an anti-lock braking system.
type BrakeWithABS struct{}

// Brake returns "Brake with ABS".
func (BrakeWithABS) Brake() string {
	return "Brake with ABS"
}

// SimpleBrake brakes without assistance.
type SimpleBrake struct{}

// Brake returns "Simple brake".
func (SimpleBrake) Brake() string {
	return "Simple brake"
}

// Brake delegates to its strategy.
type Brake struct {
	strategy BrakeStrategy
	logger   *slog.Logger
}

// NewBrake creates a Brake. A nil strategy falls back to SimpleBrake.
func NewBrake(strategy BrakeStrategy) *Brake {
	if strategy == nil {
		strategy = SimpleBrake{}
	}
	return &Brake{
		strategy: strategy,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Brake runs the current strategy and returns its description.
func (b *Brake) Brake() string {
	result := b.strategy.Brake()
	b.logger.Info(result)
	return result
}

// SetStrategy swaps the strategy. A nil strategy is ignored.
func (b *Brake) SetStrategy(strategy BrakeStrategy) {
	if strategy == nil {
		return
	}
	b.strategy = strategy
}

// SetLogger sets the structured logger for the brake.
func (b *Brake) SetLogger(logger *slog.Logger) {
	b.logger = logger
}

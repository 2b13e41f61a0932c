package app

import (
	"log/slog"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/slots"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	registry    *slots.Registry
	offset      float64
}

// WithEventPublisher sets the event publisher notified after each committed change
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithActivationOffset sets the activation line offset used by the slot
// registry. Ignored when WithRegistry is also given.
func WithActivationOffset(offset float64) Option {
	return func(cfg *appConfig) {
		cfg.offset = offset
	}
}

// WithRegistry shares an existing slot registry with the controller
func WithRegistry(r *slots.Registry) Option {
	return func(cfg *appConfig) {
		cfg.registry = r
	}
}

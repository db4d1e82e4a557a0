// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"
	"time"

	"github.com/pdftoolbox/pdftoolbox/internal/config"
	"github.com/pdftoolbox/pdftoolbox/internal/home"
	"github.com/pdftoolbox/pdftoolbox/internal/ratelimit"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	// Config is the snapshot the rest of the service set was built
	// from; it is always non-nil even when no Manager is wired.
	Config    *config.Config
	ConfigMgr *config.Manager
	Limiter   ratelimit.Limiter
	Logger    *slog.Logger
	Home      *home.Dir
	StartedAt time.Time
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigFrom extracts the current configuration from context.
func ConfigFrom(ctx context.Context) *config.Config {
	s := ServicesFrom(ctx)
	if s == nil {
		return nil
	}
	if s.Config != nil {
		return s.Config
	}
	if s.ConfigMgr != nil {
		return s.ConfigMgr.Get()
	}
	return nil
}

// LimiterFrom extracts the rate limiter from context.
func LimiterFrom(ctx context.Context) ratelimit.Limiter {
	if s := ServicesFrom(ctx); s != nil {
		return s.Limiter
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// StartedAtFrom extracts the server start time from context.
func StartedAtFrom(ctx context.Context) time.Time {
	if s := ServicesFrom(ctx); s != nil {
		return s.StartedAt
	}
	return time.Time{}
}

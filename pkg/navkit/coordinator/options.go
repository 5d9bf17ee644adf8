package coordinator

import (
	"log/slog"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
)

type options struct {
	name          string
	rootView      any
	logger        *slog.Logger
	checks        bool
	deferredSetup bool
}

// Option configures a Coordinator or RootCoordinator.
type Option func(*options)

func defaultOptions() options {
	return options{
		checks: constants.IsDebug(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}
	return o
}

// WithName sets the name used in logs and snapshots.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithRootView sets the renderable shown beneath the root router's stack.
func WithRootView(view any) Option {
	return func(o *options) {
		o.rootView = view
	}
}

// WithLogger overrides the internal navkit logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInvariantChecks verifies the router list after every mutation and
// panics with an *InvariantError on violation. Enabled by NAVKIT_DEBUG.
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) {
		o.checks = enabled
	}
}

// WithDeferredSetup skips the root router New normally creates. The caller
// must call SetupNavigationRouter before any navigation operation.
func WithDeferredSetup() Option {
	return func(o *options) {
		o.deferredSetup = true
	}
}

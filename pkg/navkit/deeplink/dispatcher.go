package deeplink

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
)

// Handler opens the links it recognizes.
type Handler interface {
	CanOpenURL(u *url.URL) bool
	OpenURL(u *url.URL)
}

// HandlerFunc builds a Handler from a predicate and an action.
type HandlerFunc struct {
	Can  func(u *url.URL) bool
	Open func(u *url.URL)
}

func (h HandlerFunc) CanOpenURL(u *url.URL) bool {
	return h.Can != nil && h.Can(u)
}

func (h HandlerFunc) OpenURL(u *url.URL) {
	if h.Open != nil {
		h.Open(u)
	}
}

// Dispatcher hands each incoming link to the first registered handler that
// accepts it. Handlers registered earlier take priority.
type Dispatcher struct {
	handlers []Handler
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher with an initial set of handlers.
func NewDispatcher(handlers ...Handler) *Dispatcher {
	d := &Dispatcher{logger: internal.GetInternalLogger().With("component", "deeplink")}
	d.AddHandlers(handlers...)
	return d
}

// AddHandlers appends handlers after the ones already registered.
func (d *Dispatcher) AddHandlers(handlers ...Handler) {
	for _, h := range handlers {
		if h == nil {
			continue
		}
		d.handlers = append(d.handlers, h)
	}
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}

// HandleURL opens u with the first handler whose CanOpenURL returns true and
// reports whether one was found. At most one handler is invoked.
func (d *Dispatcher) HandleURL(u *url.URL) bool {
	if u == nil {
		return false
	}

	for i, h := range d.handlers {
		if !h.CanOpenURL(u) {
			continue
		}
		d.logger.Debug("opening deep link", "url", u.String(), "handler", i)
		h.OpenURL(u)
		return true
	}

	d.logger.Debug("no handler for deep link", "url", u.String())
	return false
}

// HandleString parses raw and dispatches it. A malformed link is returned as
// an error rather than treated as unhandled.
func (d *Dispatcher) HandleString(raw string) (bool, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return false, fmt.Errorf("deeplink: parse %q: %w", raw, err)
	}
	return d.HandleURL(u), nil
}

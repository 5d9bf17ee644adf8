package deeplink

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navkit/pkg/navkit/coordinator"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
)

// ErrUnknownOpener indicates a route names an opener that was not supplied to Bind.
var ErrUnknownOpener = errors.New("unknown opener")

// ErrInvalidRoute indicates a route table entry that cannot be used.
var ErrInvalidRoute = errors.New("invalid route")

// RouteError reports a problem with one route table entry.
type RouteError struct {
	Route string // Route name, or its index when unnamed
	Err   error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("deeplink: route %s: %v", e.Route, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// OpenFunc is invoked with the link and the params its route bound.
type OpenFunc func(u *url.URL, params Params)

// RouteHandler is a Handler that accepts the links matching Route.
type RouteHandler struct {
	Route Route
	Open  OpenFunc
}

var _ Handler = (*RouteHandler)(nil)

// NewRouteHandler creates a handler for route.
func NewRouteHandler(route Route, open OpenFunc) *RouteHandler {
	return &RouteHandler{Route: route, Open: open}
}

// CanOpenURL reports whether u matches the route. A handler without an
// opener accepts nothing, so the dispatcher moves on to later handlers.
func (h *RouteHandler) CanOpenURL(u *url.URL) bool {
	if h.Open == nil {
		return false
	}
	_, ok := h.Route.Match(u)
	return ok
}

func (h *RouteHandler) OpenURL(u *url.URL) {
	params, ok := h.Route.Match(u)
	if !ok || h.Open == nil {
		return
	}
	h.Open(u, params)
}

type routeTable struct {
	Routes []Route `toml:"route"`
}

// LoadRoutes reads a TOML route table made of [[route]] entries and
// validates each entry.
func LoadRoutes(r io.Reader) ([]Route, error) {
	var table routeTable
	if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("deeplink: decode routes: %w", err)
	}
	if err := ValidateRoutes(table.Routes); err != nil {
		return nil, err
	}
	return table.Routes, nil
}

// LoadRoutesFile reads a TOML route table from path.
func LoadRoutesFile(path string) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("deeplink: open routes: %w", err)
	}
	defer f.Close()

	return LoadRoutes(f)
}

// ValidateRoutes checks names are present and unique and that every
// presentation parses.
func ValidateRoutes(routes []Route) error {
	seen := make(map[string]struct{}, len(routes))
	for i, route := range routes {
		name := route.Name
		if strings.TrimSpace(name) == "" {
			return &RouteError{Route: fmt.Sprintf("#%d", i), Err: fmt.Errorf("%w: missing name", ErrInvalidRoute)}
		}
		if _, dup := seen[name]; dup {
			return &RouteError{Route: name, Err: fmt.Errorf("%w: duplicate name", ErrInvalidRoute)}
		}
		seen[name] = struct{}{}

		if _, err := route.NavigationType(); err != nil {
			return &RouteError{Route: name, Err: fmt.Errorf("%w: %v", ErrInvalidRoute, err)}
		}
	}
	return nil
}

// Bind pairs each route with its opener (Route.Opener, or Route.Name when
// unset) and returns the handlers in route order.
func Bind(routes []Route, openers map[string]OpenFunc) ([]Handler, error) {
	handlers := make([]Handler, 0, len(routes))
	for _, route := range routes {
		open, ok := openers[route.opener()]
		if !ok {
			return nil, &RouteError{Route: route.Name, Err: fmt.Errorf("%w %q", ErrUnknownOpener, route.opener())}
		}
		handlers = append(handlers, NewRouteHandler(route, open))
	}
	return handlers, nil
}

// BindAll builds one handler per route with the opener newOpener returns for it.
func BindAll(routes []Route, newOpener func(route Route) OpenFunc) []Handler {
	handlers := make([]Handler, 0, len(routes))
	for _, route := range routes {
		handlers = append(handlers, NewRouteHandler(route, newOpener(route)))
	}
	return handlers
}

// Destination is the renderable NavigateTo pushes. Its identity is the
// route's view name, so destinations for the same view compare equal
// whatever their params.
type Destination struct {
	Name   string
	URL    *url.URL
	Params Params
}

func (d Destination) ViewID() string {
	return d.Name
}

// NavigateTo returns a BindAll opener that shows each route's view on c as
// a Destination. Routes without a View use their Name. A route whose
// presentation does not parse gets no opener and never matches.
func NavigateTo(c *coordinator.Coordinator) func(route Route) OpenFunc {
	return func(route Route) OpenFunc {
		nt, err := route.NavigationType()
		if err != nil {
			internal.GetInternalLogger().Warn("route has an invalid presentation, links will not match",
				"route", route.Name, "presentation", route.Presentation, "error", err)
			return nil
		}

		name := route.View
		if name == "" {
			name = route.Name
		}
		return func(u *url.URL, params Params) {
			c.Push(navigation.NewView(Destination{Name: name, URL: u, Params: params}, nt))
		}
	}
}

// IsUnknownOpener checks if an error reports a route bound to a missing opener.
func IsUnknownOpener(err error) bool {
	return errors.Is(err, ErrUnknownOpener)
}

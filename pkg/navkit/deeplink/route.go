package deeplink

import (
	"net/url"
	"strings"

	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
)

// Params holds the values bound by a route's ":name" path segments.
// A trailing "*" binds the remainder under "*".
type Params map[string]string

// Get returns the value bound to name, or "".
func (p Params) Get(name string) string {
	return p[name]
}

// Route describes a family of links and the view they navigate to.
//
// Scheme and Host compare case-insensitively; empty means any. Host is
// compared without the link's port. Path is
// matched segment by segment: literal segments must match exactly,
// ":name" binds one segment, and a final "*" matches any remainder.
// An empty Path matches every path.
type Route struct {
	Name         string   `toml:"name"`
	Scheme       string   `toml:"scheme"`
	Host         string   `toml:"host"`
	Path         string   `toml:"path"`
	View         string   `toml:"view"`         // Named view to show, for NavigateTo
	Presentation string   `toml:"presentation"` // "", "push", "sheet", "fullscreen" or "custom"
	Detents      []string `toml:"detents"`      // Sheet detents, e.g. "medium", "fraction:0.4"
	Opener       string   `toml:"opener"`       // Opener used by Bind; defaults to Name
}

// Match reports whether u belongs to the route and binds its path params.
func (r Route) Match(u *url.URL) (Params, bool) {
	if u == nil {
		return nil, false
	}
	if r.Scheme != "" && !strings.EqualFold(r.Scheme, u.Scheme) {
		return nil, false
	}
	if r.Host != "" && !strings.EqualFold(r.Host, u.Hostname()) {
		return nil, false
	}

	params := Params{}
	if r.Path == "" {
		return params, true
	}

	pattern := splitPath(r.Path)
	segments := splitPath(linkPath(u))

	for i, p := range pattern {
		if p == "*" && i == len(pattern)-1 {
			params["*"] = strings.Join(segments[min(i, len(segments)):], "/")
			return params, true
		}
		if i >= len(segments) {
			return nil, false
		}
		switch {
		case strings.HasPrefix(p, ":"):
			params[p[1:]] = segments[i]
		case p != segments[i]:
			return nil, false
		}
	}

	if len(segments) != len(pattern) {
		return nil, false
	}
	return params, true
}

// NavigationType returns how the route's view is shown.
func (r Route) NavigationType() (navigation.NavigationType, error) {
	switch strings.ToLower(strings.TrimSpace(r.Presentation)) {
	case "", "push":
		return navigation.Push(), nil
	}
	p, err := navigation.ParsePresentation(r.Presentation, r.Detents)
	if err != nil {
		return navigation.NavigationType{}, err
	}
	return navigation.Present(p), nil
}

func (r Route) opener() string {
	if r.Opener != "" {
		return r.Opener
	}
	return r.Name
}

// linkPath returns the path of u. Opaque links such as "app:settings"
// use their opaque part.
func linkPath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Path
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

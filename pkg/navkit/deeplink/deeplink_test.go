package deeplink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navkit/pkg/navkit/coordinator"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

type recordingHandler struct {
	name    string
	matches string
	opened  *[]string
}

func (h recordingHandler) CanOpenURL(u *url.URL) bool {
	return u.String() == h.matches
}

func (h recordingHandler) OpenURL(*url.URL) {
	*h.opened = append(*h.opened, h.name)
}

func TestDispatcherFirstMatchWins(t *testing.T) {
	var opened []string
	d := NewDispatcher(
		recordingHandler{name: "A", matches: "", opened: &opened},
		recordingHandler{name: "B", matches: "x", opened: &opened},
		recordingHandler{name: "C", matches: "x", opened: &opened},
	)

	assert.True(t, d.HandleURL(mustParse(t, "x")))
	assert.Equal(t, []string{"B"}, opened)

	assert.False(t, d.HandleURL(mustParse(t, "y")))
	assert.Equal(t, []string{"B"}, opened)
}

func TestDispatcherAddHandlersKeepsOrder(t *testing.T) {
	var opened []string
	d := NewDispatcher()
	assert.False(t, d.HandleURL(mustParse(t, "x")))

	d.AddHandlers(recordingHandler{name: "first", matches: "x", opened: &opened}, nil)
	d.AddHandlers(recordingHandler{name: "second", matches: "x", opened: &opened})
	require.Equal(t, 2, d.Len())

	d.HandleURL(mustParse(t, "x"))
	assert.Equal(t, []string{"first"}, opened)
	assert.False(t, d.HandleURL(nil))
}

func TestDispatcherHandleString(t *testing.T) {
	opened := 0
	d := NewDispatcher(HandlerFunc{
		Can:  func(u *url.URL) bool { return u.Scheme == "arcade" },
		Open: func(*url.URL) { opened++ },
	})

	ok, err := d.HandleString("arcade://games/1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.HandleString("https://example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.HandleString("arcade://bad host/%zz")
	assert.Error(t, err)
	assert.Equal(t, 1, opened)
}

func TestHandlerFuncZeroValue(t *testing.T) {
	var h HandlerFunc
	u := mustParse(t, "x")
	assert.False(t, h.CanOpenURL(u))
	h.OpenURL(u)
}

func TestRouteMatch(t *testing.T) {
	tests := []struct {
		name   string
		route  Route
		link   string
		want   bool
		params Params
	}{
		{"any", Route{}, "arcade://games/1", true, Params{}},
		{"scheme case", Route{Scheme: "ARCADE"}, "arcade://x", true, Params{}},
		{"scheme mismatch", Route{Scheme: "arcade"}, "https://x", false, nil},
		{"host", Route{Host: "games"}, "arcade://games", true, Params{}},
		{"host mismatch", Route{Host: "games"}, "arcade://store", false, nil},
		{"host ignores port", Route{Host: "games", Path: "/:id"}, "arcade://games:8080/1", true, Params{"id": "1"}},
		{"param", Route{Host: "games", Path: "/:id"}, "arcade://games/42", true, Params{"id": "42"}},
		{"literal and param", Route{Path: "/games/:id/reviews"}, "arcade://x/games/7/reviews", true, Params{"id": "7"}},
		{"literal mismatch", Route{Path: "/games/:id/reviews"}, "arcade://x/games/7/media", false, nil},
		{"too short", Route{Path: "/games/:id"}, "arcade://x/games", false, nil},
		{"too long", Route{Path: "/games/:id"}, "arcade://x/games/7/extra", false, nil},
		{"wildcard", Route{Path: "/files/*"}, "arcade://x/files/a/b/c", true, Params{"*": "a/b/c"}},
		{"empty wildcard", Route{Path: "/files/*"}, "arcade://x/files", true, Params{"*": ""}},
		{"opaque", Route{Scheme: "arcade", Path: "settings"}, "arcade:settings", true, Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := tt.route.Match(mustParse(t, tt.link))
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.params, params)
		})
	}

	_, ok := Route{}.Match(nil)
	assert.False(t, ok)
}

func TestRouteNavigationType(t *testing.T) {
	nt, err := Route{}.NavigationType()
	require.NoError(t, err)
	assert.True(t, nt.IsPush())

	nt, err = Route{Presentation: "sheet", Detents: []string{"medium"}}.NavigationType()
	require.NoError(t, err)
	p, ok := nt.Presentation()
	require.True(t, ok)
	assert.Equal(t, []navigation.Detent{navigation.DetentMedium}, p.Detents())

	_, err = Route{Presentation: "popover"}.NavigationType()
	assert.Error(t, err)
}

const routeTOML = `
[[route]]
name = "game"
scheme = "arcade"
host = "games"
path = "/:id"

[[route]]
name = "filters"
scheme = "arcade"
host = "filters"
presentation = "sheet"
detents = ["medium", "large"]
opener = "game"

[[route]]
name = "player"
scheme = "arcade"
host = "play"
view = "Player"
presentation = "fullscreen"
`

func TestLoadRoutes(t *testing.T) {
	routes, err := LoadRoutes(strings.NewReader(routeTOML))
	require.NoError(t, err)
	require.Len(t, routes, 3)

	assert.Equal(t, "game", routes[0].Name)
	assert.Equal(t, "/:id", routes[0].Path)
	assert.Equal(t, []string{"medium", "large"}, routes[1].Detents)
	assert.Equal(t, "Player", routes[2].View)
}

func TestLoadRoutesRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"syntax", "[[route]\nname ="},
		{"missing name", "[[route]]\nhost = \"x\""},
		{"duplicate", "[[route]]\nname = \"a\"\n[[route]]\nname = \"a\""},
		{"bad presentation", "[[route]]\nname = \"a\"\npresentation = \"popover\""},
		{"bad detent", "[[route]]\nname = \"a\"\npresentation = \"sheet\"\ndetents = [\"tall\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRoutes(strings.NewReader(tt.toml))
			assert.Error(t, err)
		})
	}

	_, err := LoadRoutes(strings.NewReader("[[route]]\nname = \"a\"\n[[route]]\nname = \"a\""))
	var re *RouteError
	require.ErrorAs(t, err, &re)
	assert.ErrorIs(t, err, ErrInvalidRoute)
	assert.Equal(t, "a", re.Route)
}

func TestLoadRoutesFileMissing(t *testing.T) {
	_, err := LoadRoutesFile(t.TempDir() + "/missing.toml")
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	routes, err := LoadRoutes(strings.NewReader(routeTOML))
	require.NoError(t, err)

	var got []string
	_, err = Bind(routes, map[string]OpenFunc{
		"game": func(u *url.URL, p Params) {},
	})
	require.Error(t, err)
	assert.True(t, IsUnknownOpener(err))

	handlers, err := Bind(routes, map[string]OpenFunc{
		"game":   func(u *url.URL, p Params) { got = append(got, "game:"+p.Get("id")) },
		"player": func(u *url.URL, p Params) { got = append(got, "player") },
	})
	require.NoError(t, err)

	d := NewDispatcher(handlers...)
	assert.True(t, d.HandleURL(mustParse(t, "arcade://games/12")))
	assert.True(t, d.HandleURL(mustParse(t, "arcade://filters")))
	assert.True(t, d.HandleURL(mustParse(t, "arcade://play")))
	assert.False(t, d.HandleURL(mustParse(t, "arcade://store")))

	assert.Equal(t, []string{"game:12", "game:", "player"}, got)
}

func TestNavigateTo(t *testing.T) {
	routes, err := LoadRoutes(strings.NewReader(routeTOML))
	require.NoError(t, err)

	c := coordinator.New(coordinator.WithInvariantChecks(true))
	d := NewDispatcher(BindAll(routes, NavigateTo(c))...)

	require.True(t, d.HandleURL(mustParse(t, "arcade://games/3")))
	top, ok := c.TopNavigationRouter().Top()
	require.True(t, ok)
	assert.Equal(t, "game", top.ID())
	dest, ok := top.Renderable().(Destination)
	require.True(t, ok)
	assert.Equal(t, "3", dest.Params.Get("id"))

	require.True(t, d.HandleURL(mustParse(t, "arcade://filters")))
	assert.Equal(t, 2, c.Depth())

	require.True(t, d.HandleURL(mustParse(t, "arcade://play")))
	assert.Equal(t, 3, c.Depth())
	presented, ok := c.Routers()[1].PresentedView()
	require.True(t, ok)
	assert.Equal(t, "Player", presented.ID())
}

func TestNavigateToSkipsRouteWithInvalidPresentation(t *testing.T) {
	routes := []Route{
		{Name: "broken", Host: "games", Presentation: "popover"},
		{Name: "fallback", Host: "games"},
	}

	c := coordinator.New()
	d := NewDispatcher(BindAll(routes, NavigateTo(c))...)

	require.True(t, d.HandleURL(mustParse(t, "arcade://games")))
	top, ok := c.TopNavigationRouter().Top()
	require.True(t, ok)
	assert.Equal(t, "fallback", top.ID())

	d = NewDispatcher(BindAll(routes[:1], NavigateTo(c))...)
	assert.False(t, d.HandleURL(mustParse(t, "arcade://games")))
	assert.Equal(t, 1, c.TopNavigationRouter().Len())
}

func TestRouteHandlerWithoutOpener(t *testing.T) {
	h := NewRouteHandler(Route{Host: "games"}, nil)
	assert.False(t, h.CanOpenURL(mustParse(t, "arcade://games")))
}

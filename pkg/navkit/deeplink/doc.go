// Package deeplink routes incoming links to the code that navigates to them.
//
// A Dispatcher holds handlers in registration order and gives each link to
// the first handler whose CanOpenURL accepts it. Unmatched links are
// reported back as false so the caller can decide on a fallback:
//
//	d := deeplink.NewDispatcher(profileLinks, settingsLinks)
//	if !d.HandleURL(u) {
//	    showHome()
//	}
//
// # Route tables
//
// Handlers can also be declared in TOML and bound to code by name:
//
//	[[route]]
//	name = "game"
//	scheme = "arcade"
//	host = "games"
//	path = "/:id"
//	presentation = "sheet"
//	detents = ["medium", "large"]
//
// LoadRoutes parses such a table. Bind attaches an OpenFunc per route name,
// while BindAll with NavigateTo simply shows each route's view on a
// coordinator.
package deeplink

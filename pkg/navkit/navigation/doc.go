// Package navigation defines the values that move through navkit routers:
// views, how they are displayed, and how they are identified.
//
// A View pairs an opaque renderable with a NavigationType. Push views land on
// the current router's stack; Present views open a new modal level:
//
//	settings := navigation.PushView(SettingsScreen{})
//	picker := navigation.PresentView(ColorPicker{}, navigation.Sheet(navigation.DetentMedium))
//
// # Identity
//
// Views are identified by the kind of their renderable, not by instance.
// SettingsScreen{Tab: 1} and SettingsScreen{Tab: 2} produce equal views, and
// equality ignores the navigation type as well. Renderables that need a
// different kind name implement Identifiable.
//
// PresentationType equality likewise ignores sheet detents: Sheet() equals
// Sheet(DetentLarge).
package navigation

// Package router provides the per-level navigation state navkit coordinators
// are built from.
//
// A NavigationRouter owns one presentation level: a Stack of pushed views and
// at most one view presented modally on top of it. A coordinator keeps one
// router per open level; presenting a view over router N creates router N+1,
// which then receives every further push.
//
// # Rendering
//
// The render layer reads Path and PresentedView to draw a push container and
// its modal. For each modal container it observes IsPresented with the
// container's presentation type:
//
//	sheet := r.IsPresented(navigation.Sheet())
//	if sheet.Get() {
//	    showSheet(r.PresentedDetents())
//	}
//
//	// user swiped the sheet away
//	sheet.Set(false)
//
// Writing false is the only way the render layer changes state. The router
// clears its presented view and calls its DismissFunc so the owning
// coordinator can drop the routers that belonged to the dismissed modal.
//
// # Change notification
//
// Every mutation emits a Change. Routers owned by one coordinator share a
// hub, and the coordinator batches each operation, so observers run after
// the operation completes and never see a half-applied state.
package router

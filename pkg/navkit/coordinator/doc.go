// Package coordinator composes navkit routers into navigation flows.
//
// A Coordinator keeps an ordered list of routers, one per open presentation
// level, and exposes the operations applications navigate with:
//
//	c := coordinator.New(coordinator.WithName("library"))
//
//	c.Push(navigation.PushView(GameDetail{ID: 7}))              // onto the top stack
//	c.Push(navigation.PresentView(Filters{}, navigation.Sheet())) // opens level 2
//	c.Push(navigation.PushView(FilterGenre{}))                   // lands in the sheet
//
//	c.PopLast()       // back within the sheet
//	c.DismissTop()    // close the sheet
//	c.DismissToRoot() // close everything, finishing any child first
//
// # Children
//
// A Coordinator presents at most one child coordinator at a time
// (PresentChild). The child is shown as a modal over the top router while
// ShouldPresentChild reads true, and is detached when it calls Finish or the
// user dismisses it.
//
// A RootCoordinator instead keeps a set of concurrently active children,
// for example one per tab, removing each as it finishes.
//
// Children reach their parent through a DelegateRef. Parents register a
// weak reference, so a child never keeps a discarded parent alive, and a
// child whose parent is gone finishes silently.
//
// # Failure modes
//
// Operating on a coordinator that has no routers is a programming error and
// panics with a *PreconditionError. Everything else that can go wrong is
// benign: popping an empty stack, dismissing at root level, a stale router's
// dismiss callback, or a finish from an unknown child are all no-ops.
//
// With WithInvariantChecks (or NAVKIT_DEBUG set) the router list is verified
// after every mutation and a broken presentation chain panics with an
// *InvariantError.
package coordinator

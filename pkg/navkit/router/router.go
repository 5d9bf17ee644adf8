package router

import (
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navkit/pkg/navkit/binding"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
)

// ChangeKind identifies which part of a router changed.
type ChangeKind int

const (
	ChangePath      ChangeKind = iota // The push stack grew or shrank
	ChangePresented                   // The presented view was set or cleared
)

func (k ChangeKind) String() string {
	if k == ChangePath {
		return "path"
	}
	return "presented"
}

// Change is emitted after a router mutation.
type Change struct {
	Router *NavigationRouter
	Kind   ChangeKind
}

// DismissFunc is called when the render layer dismisses a router's presented
// view on its own, e.g. after a swipe-down gesture.
type DismissFunc func(r *NavigationRouter)

var nextID = atomic.NewUint64(0)

// NavigationRouter holds one presentation level: the stack of views pushed
// within it and at most one view presented on top of it.
//
// A router is owned by exactly one Coordinator. Applications read it to
// render and write to it only through IsPresented; all other mutation goes
// through the owning Coordinator.
type NavigationRouter struct {
	id        uint64
	path      *Stack
	presented *navigation.View
	onDismiss DismissFunc
	hub       *binding.Hub[Change]
}

// Option configures a NavigationRouter.
type Option func(*NavigationRouter)

// WithHub makes the router publish changes on h instead of a private hub.
// Coordinators share one hub across their routers so an operation touching
// several routers is delivered as a single batch.
func WithHub(h *binding.Hub[Change]) Option {
	return func(r *NavigationRouter) {
		r.hub = h
	}
}

// New creates a router with an empty stack. onDismiss may be nil.
func New(onDismiss DismissFunc, opts ...Option) *NavigationRouter {
	r := &NavigationRouter{
		id:        nextID.Inc(),
		path:      NewStack(),
		onDismiss: onDismiss,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.hub == nil {
		r.hub = binding.NewHub[Change]()
	}
	return r
}

// ID returns a process-unique identifier for logging.
func (r *NavigationRouter) ID() uint64 {
	return r.id
}

// Path returns a copy of the push stack, bottom first.
func (r *NavigationRouter) Path() []navigation.View {
	return r.path.Entries()
}

// Len returns the number of pushed views.
func (r *NavigationRouter) Len() int {
	return r.path.Len()
}

// Top returns the last pushed view.
func (r *NavigationRouter) Top() (navigation.View, bool) {
	return r.path.Peek()
}

// PresentedView returns the view presented over this router, if any.
func (r *NavigationRouter) PresentedView() (navigation.View, bool) {
	if r.presented == nil {
		return navigation.View{}, false
	}
	return *r.presented, true
}

// IsPresenting reports whether a view is presented over this router.
func (r *NavigationRouter) IsPresenting() bool {
	return r.presented != nil
}

// PresentedDetents returns the detents of a presented sheet.
func (r *NavigationRouter) PresentedDetents() []navigation.Detent {
	if p, ok := r.presentationType(); ok {
		return p.Detents()
	}
	return nil
}

func (r *NavigationRouter) presentationType() (navigation.PresentationType, bool) {
	if r.presented == nil {
		return navigation.PresentationType{}, false
	}
	return r.presented.NavigationType().Presentation()
}

// IsPresented returns the binding a modal container of type t observes.
//
// It reads true while a view with a presentation equal to t (detents
// ignored) is presented. Writing false clears the presented view and calls
// the router's DismissFunc; every false write produces one callback.
// Writing true does nothing: presentation starts only from Coordinator.Push.
func (r *NavigationRouter) IsPresented(t navigation.PresentationType) binding.Bool {
	return binding.NewBool(
		func() bool {
			current, ok := r.presentationType()
			return ok && current.Equal(t)
		},
		func(shown bool) {
			if shown {
				return
			}
			r.dismissExternally()
		},
	)
}

func (r *NavigationRouter) dismissExternally() {
	internal.GetInternalLogger().Debug("router dismissed externally", "router", r.id)

	r.hub.Begin()
	defer r.hub.End()

	r.clearPresented()
	if r.onDismiss != nil {
		r.onDismiss(r)
	}
}

// Observe subscribes fn to changes of this router only.
func (r *NavigationRouter) Observe(fn func(Change)) (cancel func()) {
	return r.hub.Subscribe(func(c Change) {
		if c.Router == r {
			fn(c)
		}
	})
}

// Append pushes view onto the stack.
func (r *NavigationRouter) Append(view navigation.View) {
	r.path.Push(view)
	r.emit(ChangePath)
}

// RemoveLast pops the top view. It reports false when the stack was empty.
func (r *NavigationRouter) RemoveLast() bool {
	if _, ok := r.path.Pop(); !ok {
		return false
	}
	r.emit(ChangePath)
	return true
}

// RemoveAll empties the stack. It reports false when the stack was empty.
func (r *NavigationRouter) RemoveAll() bool {
	if r.path.IsEmpty() {
		return false
	}
	r.path.Clear()
	r.emit(ChangePath)
	return true
}

// SetPresented records view as presented over this router.
func (r *NavigationRouter) SetPresented(view navigation.View) {
	r.presented = &view
	r.emit(ChangePresented)
}

// ClearPresented forgets the presented view without calling the DismissFunc.
func (r *NavigationRouter) ClearPresented() {
	r.clearPresented()
}

func (r *NavigationRouter) clearPresented() {
	if r.presented == nil {
		return
	}
	r.presented = nil
	r.emit(ChangePresented)
}

func (r *NavigationRouter) emit(kind ChangeKind) {
	r.hub.Emit(Change{Router: r, Kind: kind})
}

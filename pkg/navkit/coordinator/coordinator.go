package coordinator

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/navkit/pkg/navkit/binding"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
	"github.com/BrandonKowalski/navkit/pkg/navkit/router"
)

// EventKind identifies what an Event reports.
type EventKind int

const (
	EventRouterChanged  EventKind = iota // A router's stack or presented view changed
	EventRoutersChanged                  // Routers were added or removed
	EventChildChanged                    // A child was attached or detached
)

func (k EventKind) String() string {
	switch k {
	case EventRouterChanged:
		return "router"
	case EventRoutersChanged:
		return "routers"
	default:
		return "child"
	}
}

// Event is delivered to coordinator observers after an operation completes.
type Event struct {
	Kind   EventKind
	Change router.Change // Set for EventRouterChanged
	Depth  int           // Router count when the event was emitted
}

// Coordinator owns a sub-tree of navigation state: one router per open
// presentation level, plus at most one child coordinator presented over it.
//
// routers[0] is the root router and is never removed. The last router is
// the top router; pushes and presentations always target it. Every router
// above the root exists because the router below it presents a view.
//
// A Coordinator is not safe for concurrent use. Confine it to the goroutine
// that drives rendering.
type Coordinator struct {
	id       string
	name     string
	rootView any
	routers  []*router.NavigationRouter
	child    childSlot
	delegate DelegateRef

	routerHub *binding.Hub[router.Change]
	hub       *binding.Hub[Event]
	logger    *slog.Logger
	checks    bool
}

var (
	_ Child          = (*Coordinator)(nil)
	_ FinishDelegate = (*Coordinator)(nil)
)

// New creates a coordinator with its root router already set up,
// unless WithDeferredSetup is given.
func New(opts ...Option) *Coordinator {
	o := applyOptions(opts)

	c := &Coordinator{
		id:        uuid.NewString(),
		name:      o.name,
		rootView:  o.rootView,
		routerHub: binding.NewHub[router.Change](),
		hub:       binding.NewHub[Event](),
		checks:    o.checks,
	}
	if c.name == "" {
		c.name = "coordinator"
	}
	c.logger = o.logger.With("coordinator", c.name, "coordinator_id", c.id)

	c.routerHub.Subscribe(func(change router.Change) {
		c.hub.Emit(Event{Kind: EventRouterChanged, Change: change, Depth: len(c.routers)})
	})

	if !o.deferredSetup {
		c.SetupNavigationRouter()
	}
	return c
}

func (c *Coordinator) ID() string {
	return c.id
}

func (c *Coordinator) Name() string {
	return c.name
}

// RootView returns the renderable shown beneath the root router's stack.
func (c *Coordinator) RootView() any {
	return c.rootView
}

// Observe subscribes fn to this coordinator's events. Events produced by one
// operation are delivered together once the operation has completed.
func (c *Coordinator) Observe(fn func(Event)) (cancel func()) {
	return c.hub.Subscribe(fn)
}

// SetupNavigationRouter appends a root router. New calls it unless setup is
// deferred; calling it on a coordinator that already has routers appends a
// second "root", which is a caller error.
func (c *Coordinator) SetupNavigationRouter() {
	c.mutate("setup", func() {
		c.routers = append(c.routers, c.newRouter())
		c.emitRouters()
	})
}

func (c *Coordinator) newRouter() *router.NavigationRouter {
	return router.New(c.DismissNavigationRouter, router.WithHub(c.routerHub))
}

// Routers returns a copy of the router list, root first.
func (c *Coordinator) Routers() []*router.NavigationRouter {
	return slices.Clone(c.routers)
}

// Depth returns the number of routers: one plus the open presentations.
func (c *Coordinator) Depth() int {
	return len(c.routers)
}

// TryTopNavigationRouter returns the top router, or a *PreconditionError
// wrapping ErrNotInitialized when setup has not happened yet.
func (c *Coordinator) TryTopNavigationRouter() (*router.NavigationRouter, error) {
	if len(c.routers) == 0 {
		return nil, &PreconditionError{Op: "top navigation router", Err: ErrNotInitialized}
	}
	return c.routers[len(c.routers)-1], nil
}

// TopNavigationRouter returns the router receiving pushes and presentations.
// It panics if the coordinator has no routers.
func (c *Coordinator) TopNavigationRouter() *router.NavigationRouter {
	r, err := c.TryTopNavigationRouter()
	if err != nil {
		panic(err)
	}
	return r
}

// RootNavigationRouter returns the router created at setup.
// It panics if the coordinator has no routers.
func (c *Coordinator) RootNavigationRouter() *router.NavigationRouter {
	if len(c.routers) == 0 {
		panic(&PreconditionError{Op: "root navigation router", Err: ErrNotInitialized})
	}
	return c.routers[constants.RootRouterIndex]
}

// Push shows view on the top router. Push views are appended to its stack.
// Present views are recorded as the top router's presented view and a new,
// empty router is added above it; later pushes go to that new router.
func (c *Coordinator) Push(view navigation.View) {
	top := c.TopNavigationRouter()

	c.mutate("push", func() {
		if view.NavigationType().IsPush() {
			top.Append(view)
			return
		}

		top.SetPresented(view)
		c.routers = append(c.routers, c.newRouter())
		c.emitRouters()
	}, "view", view.ID(), "navigation", view.NavigationType().String())
}

// PopLast removes the last view pushed onto the top router.
// It does nothing when the top router's stack is empty.
func (c *Coordinator) PopLast() {
	top := c.TopNavigationRouter()
	if top.Len() == 0 {
		return
	}

	c.mutate("pop last", func() {
		top.RemoveLast()
	})
}

// PopToRoot empties the top router's stack. Lower routers are untouched.
func (c *Coordinator) PopToRoot() {
	top := c.TopNavigationRouter()
	if top.Len() == 0 {
		return
	}

	c.mutate("pop to root", func() {
		top.RemoveAll()
	})
}

// DismissTop closes the innermost presentation: the top router is removed
// and the router below it stops presenting. Does nothing at root level.
func (c *Coordinator) DismissTop() {
	c.TopNavigationRouter()
	if len(c.routers) <= 1 {
		return
	}

	c.mutate("dismiss top", func() {
		c.truncate(len(c.routers) - 1)
		c.routers[len(c.routers)-1].ClearPresented()
	})
}

// DismissToRoot finishes the child coordinator, if any, then closes every
// presentation so only the root router remains.
//
// The child is finished even when no presentation is open; in that case the
// router list is left as it is.
func (c *Coordinator) DismissToRoot() {
	c.TopNavigationRouter()

	c.mutate("dismiss to root", func() {
		if child := c.child.current(); child != nil {
			child.Finish()
		}

		if len(c.routers) <= 1 {
			return
		}
		c.truncate(1)
		c.routers[0].ClearPresented()
	})
}

// DismissNavigationRouter drops every router above r. It is the callback
// routers invoke after the render layer dismissed their presented view, so
// r has already cleared that view itself.
//
// A router that is no longer in the list is ignored: a dismiss gesture can
// race a programmatic dismiss that already removed it.
func (c *Coordinator) DismissNavigationRouter(r *router.NavigationRouter) {
	i := slices.Index(c.routers, r)
	if i < 0 {
		c.logger.Debug("ignoring dismiss from stale router", "router", routerID(r))
		return
	}
	if i == len(c.routers)-1 {
		return
	}

	c.mutate("dismiss navigation router", func() {
		c.truncate(i + 1)
	}, "router", r.ID())
}

// ShouldPresentChild returns the binding the render layer uses to show the
// child coordinator's root view as a modal over r. It reads true while a
// child is attached and r is the top router. Writing false detaches the
// child; writing true does nothing.
func (c *Coordinator) ShouldPresentChild(r *router.NavigationRouter) binding.Bool {
	return binding.NewBool(
		func() bool {
			return c.child.current() != nil && c.TopNavigationRouter() == r
		},
		func(shown bool) {
			if shown {
				return
			}
			c.DismissChild()
		},
	)
}

// PresentChild makes child the single child coordinator, replacing any
// current one, and routes the child's completion back to c.
func (c *Coordinator) PresentChild(child Child) {
	if child == nil {
		c.logger.Warn("ignoring nil child coordinator")
		return
	}

	c.mutate("present child", func() {
		if previous := c.child.current(); previous != nil && previous != child {
			c.logger.Debug("replacing child coordinator")
		}
		adopt(&c.child, child, WeakRef(c))
		c.emitChild()
	})
}

// DismissChild drops the child coordinator reference.
func (c *Coordinator) DismissChild() {
	if c.child.current() == nil {
		return
	}

	c.mutate("dismiss child", func() {
		c.child.clear()
		c.emitChild()
	})
}

// ChildCoordinator returns the attached child, if any.
func (c *Coordinator) ChildCoordinator() (Child, bool) {
	child := c.child.current()
	return child, child != nil
}

// DidFinish detaches child when it is the current child. Completion from
// any other coordinator is ignored.
func (c *Coordinator) DidFinish(child Child) {
	if c.child.current() == nil || c.child.current() != child {
		c.logger.Debug("ignoring finish from unknown child")
		return
	}

	c.mutate("child finished", func() {
		c.child.detach(child)
		c.emitChild()
	})
}

// Finish notifies the finish delegate that c has completed. Nothing happens
// if the delegate is unset or has been garbage collected.
func (c *Coordinator) Finish() {
	if !c.delegate.Notify(c) {
		c.logger.Debug("finished without a delegate")
	}
}

// SetFinishDelegate sets the sink notified by Finish.
func (c *Coordinator) SetFinishDelegate(ref DelegateRef) {
	c.delegate = ref
}

// truncate drops routers from index n upward.
func (c *Coordinator) truncate(n int) {
	clear(c.routers[n:])
	c.routers = c.routers[:n]
	c.emitRouters()
}

func (c *Coordinator) emitRouters() {
	c.hub.Emit(Event{Kind: EventRoutersChanged, Depth: len(c.routers)})
}

func (c *Coordinator) emitChild() {
	c.hub.Emit(Event{Kind: EventChildChanged, Depth: len(c.routers)})
}

// mutate runs fn as one batch: router and coordinator events raised inside
// are delivered after fn returns and the invariants have been checked.
func (c *Coordinator) mutate(op string, fn func(), attrs ...any) {
	c.hub.Begin()
	c.routerHub.Begin()
	defer func() {
		c.routerHub.End()
		c.hub.End()
	}()

	fn()

	c.logger.Debug(op, append(attrs, "depth", len(c.routers))...)

	if c.checks {
		if err := verifyRouters(op, c.routers); err != nil {
			c.logger.Error("navigation invariant violated", "error", err)
			panic(err)
		}
	}
}

func routerID(r *router.NavigationRouter) uint64 {
	if r == nil {
		return 0
	}
	return r.ID()
}

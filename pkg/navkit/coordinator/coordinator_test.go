package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
	"github.com/BrandonKowalski/navkit/pkg/navkit/router"
)

type homeScreen struct{}
type detailScreen struct{ id int }
type filterSheet struct{}
type playerCover struct{}
type overlay struct{}

func newTestCoordinator(opts ...Option) *Coordinator {
	return New(append([]Option{WithInvariantChecks(true)}, opts...)...)
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestNewSetsUpRootRouter(t *testing.T) {
	c := newTestCoordinator()

	require.Equal(t, 1, c.Depth())
	assert.Same(t, c.RootNavigationRouter(), c.TopNavigationRouter())
	assert.Same(t, c.Routers()[0], c.RootNavigationRouter())
	assert.NotEmpty(t, c.ID())
	assert.Equal(t, "coordinator", c.Name())
}

func TestPushThenPopLastRestoresStack(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PushView(homeScreen{}))
	c.Push(navigation.PushView(detailScreen{id: 1}))
	before := c.TopNavigationRouter().Path()

	c.Push(navigation.PushView(detailScreen{id: 2}))
	c.PopLast()

	assert.Equal(t, before, c.TopNavigationRouter().Path())
	assert.Equal(t, 1, c.Depth())
}

func TestPresentRoundTrip(t *testing.T) {
	presentations := []navigation.PresentationType{
		navigation.Sheet(navigation.DetentMedium),
		navigation.FullScreen(),
		navigation.Custom(),
	}

	for _, p := range presentations {
		t.Run(p.String(), func(t *testing.T) {
			c := newTestCoordinator()
			c.Push(navigation.PushView(homeScreen{}))
			previous := c.TopNavigationRouter()
			depth := c.Depth()

			view := navigation.PresentView(filterSheet{}, p)
			c.Push(view)

			require.Equal(t, depth+1, c.Depth())
			presented, ok := previous.PresentedView()
			require.True(t, ok)
			assert.True(t, presented.Equal(view))
			assert.NotSame(t, previous, c.TopNavigationRouter())
			assert.True(t, previous.IsPresented(p).Get())

			c.DismissTop()

			assert.Equal(t, depth, c.Depth())
			assert.Same(t, previous, c.TopNavigationRouter())
			assert.False(t, previous.IsPresenting())
			assert.Equal(t, 1, previous.Len())
		})
	}
}

func TestPushAfterPresentTargetsNewTop(t *testing.T) {
	c := newTestCoordinator()
	root := c.RootNavigationRouter()

	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PushView(detailScreen{}))

	assert.Equal(t, 0, root.Len())
	assert.Equal(t, 1, c.TopNavigationRouter().Len())
}

func TestPopOnEmptyStackIsNoOp(t *testing.T) {
	c := newTestCoordinator()
	events := 0
	c.Observe(func(Event) { events++ })

	c.PopLast()
	c.PopToRoot()

	assert.Equal(t, 0, c.TopNavigationRouter().Len())
	assert.Equal(t, 0, events)
}

func TestPopToRootOnlyClearsTopRouter(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PushView(homeScreen{}))
	c.Push(navigation.PushView(detailScreen{}))
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PushView(homeScreen{}))
	c.Push(navigation.PushView(detailScreen{}))

	c.PopToRoot()

	assert.Equal(t, 0, c.TopNavigationRouter().Len())
	assert.Equal(t, 2, c.RootNavigationRouter().Len())
	assert.True(t, c.RootNavigationRouter().IsPresenting())
	assert.Equal(t, 2, c.Depth())
}

func TestDismissTopAtRootIsNoOp(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PushView(homeScreen{}))

	c.DismissTop()

	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, 1, c.RootNavigationRouter().Len())
}

func TestNestedPresentationScenario(t *testing.T) {
	c := newTestCoordinator()

	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PresentView(playerCover{}, navigation.FullScreen()))
	require.Equal(t, 3, c.Depth())

	c.DismissTop()
	require.Equal(t, 2, c.Depth())
	assert.False(t, c.TopNavigationRouter().IsPresenting())
	assert.True(t, c.RootNavigationRouter().IsPresenting())

	c.DismissToRoot()
	assert.Equal(t, 1, c.Depth())
	assert.False(t, c.RootNavigationRouter().IsPresenting())
}

func TestDismissToRootCollapsesChainAndFinishesChild(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PresentView(playerCover{}, navigation.FullScreen()))
	c.Push(navigation.PresentView(overlay{}, navigation.Custom()))

	child := newTestCoordinator(WithName("child"))
	c.PresentChild(child)

	c.DismissToRoot()

	assert.Equal(t, 1, c.Depth())
	assert.False(t, c.RootNavigationRouter().IsPresenting())
	_, ok := c.ChildCoordinator()
	assert.False(t, ok)
}

func TestDismissToRootFinishesChildWithoutPresentations(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PushView(homeScreen{}))
	root := c.RootNavigationRouter()

	finished := 0
	child := newTestCoordinator(WithName("child"))
	c.PresentChild(child)
	// Observe the finish through a wrapping delegate that still forwards to c.
	parent := WeakRef(c)
	child.SetFinishDelegate(StrongRef(FinishFunc(func(ch Child) {
		finished++
		parent.Notify(ch)
	})))

	c.DismissToRoot()

	assert.Equal(t, 1, finished)
	_, ok := c.ChildCoordinator()
	assert.False(t, ok)
	assert.Same(t, root, c.TopNavigationRouter())
	assert.Equal(t, 1, root.Len())
}

func TestDismissNavigationRouterIgnoresStaleRouter(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	before := c.Routers()

	c.DismissNavigationRouter(router.New(nil))
	c.DismissNavigationRouter(nil)

	assert.Equal(t, before, c.Routers())
}

func TestDismissNavigationRouterKeepsPresentedView(t *testing.T) {
	c := New(WithInvariantChecks(false))
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PresentView(playerCover{}, navigation.FullScreen()))
	middle := c.Routers()[1]

	c.DismissNavigationRouter(middle)

	require.Equal(t, 2, c.Depth())
	assert.Same(t, middle, c.TopNavigationRouter())
	assert.True(t, middle.IsPresenting(), "clearing is left to the binding write that triggered the callback")
}

func TestExternalDismissCollapsesRouters(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PresentView(playerCover{}, navigation.FullScreen()))
	c.Push(navigation.PushView(detailScreen{}))
	root := c.RootNavigationRouter()

	// The user swipes away the sheet presented over the root.
	root.IsPresented(navigation.Sheet()).Set(false)

	assert.Equal(t, 1, c.Depth())
	assert.False(t, root.IsPresenting())
}

func TestStaleExternalDismissAfterProgrammaticDismiss(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PresentView(playerCover{}, navigation.FullScreen()))
	stale := c.TopNavigationRouter()

	c.DismissTop()
	c.DismissTop()
	stale.IsPresented(navigation.FullScreen()).Set(false)

	assert.Equal(t, 1, c.Depth())
}

func TestSetupNavigationRouterTwiceAddsSecondRoot(t *testing.T) {
	c := New(WithInvariantChecks(false))
	c.SetupNavigationRouter()

	assert.Equal(t, 2, c.Depth())
	assert.NotSame(t, c.RootNavigationRouter(), c.TopNavigationRouter())
}

func TestDeferredSetup(t *testing.T) {
	c := New(WithDeferredSetup())

	_, err := c.TryTopNavigationRouter()
	require.Error(t, err)
	assert.True(t, IsNotInitialized(err))

	var pe *PreconditionError
	err = recoverError(func() { c.Push(navigation.PushView(homeScreen{})) })
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "top navigation router", pe.Op)

	assert.Error(t, recoverError(func() { c.RootNavigationRouter() }))
	assert.Error(t, recoverError(func() { c.PopLast() }))
	assert.Error(t, recoverError(func() { c.DismissTop() }))
	assert.Error(t, recoverError(func() { c.DismissToRoot() }))

	// A stale dismiss needs no router.
	c.DismissNavigationRouter(router.New(nil))

	c.SetupNavigationRouter()
	c.Push(navigation.PushView(homeScreen{}))
	assert.Equal(t, 1, c.TopNavigationRouter().Len())
}

func TestInvariantChecksPanicOnBrokenChain(t *testing.T) {
	c := newTestCoordinator()
	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	c.Push(navigation.PresentView(playerCover{}, navigation.FullScreen()))

	// Removing routers without the matching binding write leaves the root presenting.
	err := recoverError(func() { c.DismissNavigationRouter(c.RootNavigationRouter()) })

	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	var ie *InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, ie.Index)
}

func TestVerifyRouters(t *testing.T) {
	a := router.New(nil)
	b := router.New(nil)
	assert.NoError(t, verifyRouters("test", nil))
	assert.NoError(t, verifyRouters("test", []*router.NavigationRouter{a}))

	err := verifyRouters("test", []*router.NavigationRouter{a, b})
	var ie *InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)

	a.SetPresented(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	assert.NoError(t, verifyRouters("test", []*router.NavigationRouter{a, b}))
}

func TestObserversSeeCompletedOperations(t *testing.T) {
	c := newTestCoordinator()
	var kinds []EventKind
	c.Observe(func(e Event) {
		kinds = append(kinds, e.Kind)
		assert.NoError(t, verifyRouters("observe", c.routers), "observer saw a torn state")
	})

	c.Push(navigation.PresentView(filterSheet{}, navigation.Sheet()))
	assert.Equal(t, []EventKind{EventRoutersChanged, EventRouterChanged}, kinds)

	kinds = nil
	c.TopNavigationRouter().Append(navigation.PushView(homeScreen{}))
	c.RootNavigationRouter().IsPresented(navigation.Sheet()).Set(false)
	assert.Contains(t, kinds, EventRoutersChanged)
	assert.Equal(t, 1, c.Depth())
}

func TestObserveCancel(t *testing.T) {
	c := newTestCoordinator()
	calls := 0
	cancel := c.Observe(func(Event) { calls++ })

	c.Push(navigation.PushView(homeScreen{}))
	cancel()
	c.Push(navigation.PushView(detailScreen{}))

	assert.Equal(t, 1, calls)
}

func TestRootViewOption(t *testing.T) {
	c := New(WithRootView(homeScreen{}), WithName("library"))
	assert.Equal(t, homeScreen{}, c.RootView())
	assert.Equal(t, "library", c.Name())
}

package coordinator

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/navkit/pkg/navkit/binding"
)

// RootCoordinator tracks any number of concurrently active child
// coordinators, such as one flow per tab. It owns no routers itself.
// Each child is removed when it finishes.
type RootCoordinator struct {
	id       string
	name     string
	rootView any
	children childSet
	delegate DelegateRef

	hub    *binding.Hub[Event]
	logger *slog.Logger
}

var (
	_ Child          = (*RootCoordinator)(nil)
	_ FinishDelegate = (*RootCoordinator)(nil)
)

// NewRoot creates an empty root coordinator. Router related options are ignored.
func NewRoot(opts ...Option) *RootCoordinator {
	o := applyOptions(opts)

	rc := &RootCoordinator{
		id:       uuid.NewString(),
		name:     o.name,
		rootView: o.rootView,
		hub:      binding.NewHub[Event](),
	}
	if rc.name == "" {
		rc.name = "root"
	}
	rc.logger = o.logger.With("coordinator", rc.name, "coordinator_id", rc.id)
	return rc
}

func (rc *RootCoordinator) ID() string {
	return rc.id
}

func (rc *RootCoordinator) Name() string {
	return rc.name
}

func (rc *RootCoordinator) RootView() any {
	return rc.rootView
}

// Observe subscribes fn to child attach and detach events.
func (rc *RootCoordinator) Observe(fn func(Event)) (cancel func()) {
	return rc.hub.Subscribe(fn)
}

// Start adds child to the active set and routes its completion back here.
// Starting a child that is already active does nothing.
func (rc *RootCoordinator) Start(child Child) {
	if child == nil {
		rc.logger.Warn("ignoring nil child coordinator")
		return
	}
	if !adopt(&rc.children, child, WeakRef(rc)) {
		return
	}

	rc.logger.Debug("child started", "children", rc.Len())
	rc.hub.Emit(Event{Kind: EventChildChanged})
}

// Children returns the active children in start order.
func (rc *RootCoordinator) Children() []Child {
	return rc.children.members()
}

// Len returns the number of active children.
func (rc *RootCoordinator) Len() int {
	return len(rc.children.children)
}

// Contains reports whether child is active.
func (rc *RootCoordinator) Contains(child Child) bool {
	return slices.Contains(rc.children.children, child)
}

// DidFinish removes child from the active set. A child that was already
// removed, or never started here, is ignored.
func (rc *RootCoordinator) DidFinish(child Child) {
	if !rc.children.detach(child) {
		rc.logger.Debug("ignoring finish from unknown child")
		return
	}

	rc.logger.Debug("child finished", "children", rc.Len())
	rc.hub.Emit(Event{Kind: EventChildChanged})
}

// FinishAll asks every active child to finish. Children whose delegate still
// points here are removed as they report back.
func (rc *RootCoordinator) FinishAll() {
	rc.hub.Begin()
	defer rc.hub.End()

	for _, child := range rc.children.members() {
		child.Finish()
	}
}

// Finish notifies this coordinator's own finish delegate, if any.
func (rc *RootCoordinator) Finish() {
	if !rc.delegate.Notify(rc) {
		rc.logger.Debug("finished without a delegate")
	}
}

func (rc *RootCoordinator) SetFinishDelegate(ref DelegateRef) {
	rc.delegate = ref
}

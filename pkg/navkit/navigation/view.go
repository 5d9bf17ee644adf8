package navigation

import "reflect"

// Identifiable lets a renderable choose its own kind name instead of the
// one derived from its Go type.
type Identifiable interface {
	ViewID() string
}

// Named is a renderable identified only by its name.
// Config-driven navigation uses it where no Go type exists for a view.
type Named struct {
	Name string
}

func (n Named) ViewID() string {
	return n.Name
}

// View is one navigable unit: a renderable plus how it should be displayed.
//
// A View's identity is the kind of its renderable, not the instance. Two views
// wrapping values of the same type are equal even when their contents or
// navigation types differ.
type View struct {
	id             string
	renderable     any
	navigationType NavigationType
}

// NewView wraps renderable with the given navigation type.
func NewView(renderable any, navigationType NavigationType) View {
	return View{
		id:             KindOf(renderable),
		renderable:     renderable,
		navigationType: navigationType,
	}
}

// PushView returns a view that is pushed onto the current stack.
func PushView(renderable any) View {
	return NewView(renderable, Push())
}

// PresentView returns a view that is presented modally.
func PresentView(renderable any, p PresentationType) View {
	return NewView(renderable, Present(p))
}

// ID returns the view's kind identity.
func (v View) ID() string {
	return v.id
}

// Key returns a value usable as a map key. Views with equal keys are equal.
func (v View) Key() string {
	return v.id
}

func (v View) Renderable() any {
	return v.renderable
}

func (v View) NavigationType() NavigationType {
	return v.navigationType
}

// Equal compares views by identity only.
func (v View) Equal(other View) bool {
	return v.id == other.id
}

func (v View) String() string {
	return v.id + " [" + v.navigationType.String() + "]"
}

// KindOf returns the identity used for renderable: its ViewID when it
// implements Identifiable, otherwise its type name without pointer indirection.
func KindOf(renderable any) string {
	if renderable == nil {
		return "<nil>"
	}
	if id, ok := renderable.(Identifiable); ok {
		return id.ViewID()
	}

	t := reflect.TypeOf(renderable)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// Package binding provides the two-way cells and change notification that
// connect navkit's navigation state to a rendering layer.
//
// A Bool is read by the renderer to decide whether something is shown and
// written when the user dismisses it. Writes never set state directly; they
// call back into the operation that owns the state.
//
// A Hub delivers change events synchronously. Mutations that span several
// steps wrap themselves in Begin/End so subscribers only ever observe the
// state after the whole operation has completed.
//
// Nothing in this package is safe for concurrent use. Like the rest of navkit
// it is meant to be confined to the UI goroutine.
package binding

// Bool is a two-way boolean cell.
type Bool struct {
	get func() bool
	set func(bool)
}

// NewBool builds a Bool from a getter and a setter. A nil setter makes the
// binding read-only.
func NewBool(get func() bool, set func(bool)) Bool {
	return Bool{get: get, set: set}
}

// Constant returns a read-only binding that always reports v.
func Constant(v bool) Bool {
	return Bool{get: func() bool { return v }}
}

// Get returns the current value. The zero Bool reports false.
func (b Bool) Get() bool {
	if b.get == nil {
		return false
	}
	return b.get()
}

// Set routes v to the owning operation.
func (b Bool) Set(v bool) {
	if b.set == nil {
		return
	}
	b.set(v)
}

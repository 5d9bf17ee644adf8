package coordinator

import "weak"

// Child is anything a coordinator can present and be notified about.
// Implementations must be comparable, in practice pointer types, since
// parents locate children by identity.
type Child interface {
	// Finish signals completion to the current finish delegate, if it is still around.
	Finish()
	// SetFinishDelegate replaces the sink Finish notifies.
	SetFinishDelegate(ref DelegateRef)
}

// FinishDelegate receives completion from children.
type FinishDelegate interface {
	DidFinish(child Child)
}

// FinishFunc adapts a function to FinishDelegate.
type FinishFunc func(child Child)

func (f FinishFunc) DidFinish(child Child) {
	f(child)
}

// DelegateRef is a handle to a completion sink that may become unavailable.
// It carries no ownership: a child holding a weak ref to its parent does not
// keep the parent alive. The zero DelegateRef points nowhere.
type DelegateRef struct {
	resolve func() FinishDelegate
}

// WeakRef returns a ref to p that stops resolving once p has been garbage collected.
func WeakRef[T any, P interface {
	*T
	FinishDelegate
}](p P) DelegateRef {
	if (*T)(p) == nil {
		return DelegateRef{}
	}

	wp := weak.Make((*T)(p))
	return DelegateRef{resolve: func() FinishDelegate {
		if v := wp.Value(); v != nil {
			return P(v)
		}
		return nil
	}}
}

// StrongRef returns a ref that always resolves to d.
func StrongRef(d FinishDelegate) DelegateRef {
	if d == nil {
		return DelegateRef{}
	}
	return DelegateRef{resolve: func() FinishDelegate { return d }}
}

// Delegate resolves the sink. It reports false when there is none.
func (r DelegateRef) Delegate() (FinishDelegate, bool) {
	if r.resolve == nil {
		return nil, false
	}
	d := r.resolve()
	return d, d != nil
}

// Notify tells the sink that child finished. An unavailable sink is not an
// error; Notify just reports false.
func (r DelegateRef) Notify(child Child) bool {
	d, ok := r.Delegate()
	if !ok {
		return false
	}
	d.DidFinish(child)
	return true
}

// IsZero reports whether the ref was never pointed at a sink.
func (r DelegateRef) IsZero() bool {
	return r.resolve == nil
}

package binding

type subscription[E any] struct {
	id int
	fn func(E)
}

// Hub fans out events of type E to subscribers in subscription order.
// The zero value is ready to use.
type Hub[E any] struct {
	subs    []subscription[E]
	nextID  int
	depth   int
	pending []E
}

// NewHub creates an empty hub.
func NewHub[E any]() *Hub[E] {
	return &Hub[E]{}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (h *Hub[E]) Subscribe(fn func(E)) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription[E]{id: id, fn: fn})

	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of active subscribers.
func (h *Hub[E]) Len() int {
	return len(h.subs)
}

// Begin opens a batch. Batches nest; events are held until the outermost End.
func (h *Hub[E]) Begin() {
	h.depth++
}

// End closes a batch and, when it was the outermost one, delivers every
// event queued since the matching Begin.
func (h *Hub[E]) End() {
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 || len(h.pending) == 0 {
		return
	}

	events := h.pending
	h.pending = nil
	for _, e := range events {
		h.deliver(e)
	}
}

// Emit delivers e now, or queues it while a batch is open.
func (h *Hub[E]) Emit(e E) {
	if h.depth > 0 {
		h.pending = append(h.pending, e)
		return
	}
	h.deliver(e)
}

func (h *Hub[E]) deliver(e E) {
	// Subscribers may cancel themselves or subscribe others while being notified.
	subs := make([]subscription[E], len(h.subs))
	copy(subs, h.subs)
	for _, s := range subs {
		s.fn(e)
	}
}

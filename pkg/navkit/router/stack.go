package router

import "github.com/BrandonKowalski/navkit/pkg/navkit/navigation"

// Stack is the ordered list of views pushed onto one router.
// The first entry sits directly above the router's root content; the last
// entry is the one currently on screen.
type Stack struct {
	entries []navigation.View
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]navigation.View, 0),
	}
}

// Push adds a view to the top of the stack.
func (s *Stack) Push(view navigation.View) {
	s.entries = append(s.entries, view)
}

// Pop removes and returns the top view.
// Returns false if the stack is empty.
func (s *Stack) Pop() (navigation.View, bool) {
	if len(s.entries) == 0 {
		return navigation.View{}, false
	}
	view := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return view, true
}

// Peek returns the top view without removing it.
// Returns false if the stack is empty.
func (s *Stack) Peek() (navigation.View, bool) {
	if len(s.entries) == 0 {
		return navigation.View{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []navigation.View {
	out := make([]navigation.View, len(s.entries))
	copy(out, s.entries)
	return out
}

package coordinator

import "slices"

// composition is the capability set shared by both ways of holding children.
type composition interface {
	attach(child Child) bool
	detach(child Child) bool
	members() []Child
}

var (
	_ composition = (*childSlot)(nil)
	_ composition = (*childSet)(nil)
)

// childSlot holds at most one child. Attaching replaces the current child.
type childSlot struct {
	child Child
}

func (s *childSlot) attach(child Child) bool {
	s.child = child
	return true
}

func (s *childSlot) detach(child Child) bool {
	if s.child == nil || s.child != child {
		return false
	}
	s.child = nil
	return true
}

func (s *childSlot) clear() bool {
	had := s.child != nil
	s.child = nil
	return had
}

func (s *childSlot) current() Child {
	return s.child
}

func (s *childSlot) members() []Child {
	if s.child == nil {
		return nil
	}
	return []Child{s.child}
}

// childSet holds any number of concurrently active children, each at most once.
type childSet struct {
	children []Child
}

func (s *childSet) attach(child Child) bool {
	if slices.Contains(s.children, child) {
		return false
	}
	s.children = append(s.children, child)
	return true
}

func (s *childSet) detach(child Child) bool {
	i := slices.Index(s.children, child)
	if i < 0 {
		return false
	}
	s.children = slices.Delete(s.children, i, i+1)
	return true
}

func (s *childSet) members() []Child {
	return slices.Clone(s.children)
}

// adopt attaches child to comp and points its finish delegate at parent.
func adopt(comp composition, child Child, parent DelegateRef) bool {
	if !comp.attach(child) {
		return false
	}
	child.SetFinishDelegate(parent)
	return true
}

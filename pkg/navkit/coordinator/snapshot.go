package coordinator

import (
	"fmt"
	"strings"
)

// Level describes one router in a Snapshot.
type Level struct {
	RouterID     uint64
	Path         []string // View IDs, bottom first
	Presented    string   // View ID of the presented view, empty if none
	Presentation string   // Presentation of the presented view, empty if none
}

// Snapshot is a plain copy of a coordinator's navigation state.
type Snapshot struct {
	ID       string
	Name     string
	Levels   []Level
	HasChild bool
	Child    *Snapshot // Set when the child is itself a *Coordinator
	Children []Snapshot
}

// Snapshotter is implemented by coordinators that can describe their state.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot captures the router list and, recursively, the child.
func (c *Coordinator) Snapshot() Snapshot {
	s := Snapshot{
		ID:     c.id,
		Name:   c.name,
		Levels: make([]Level, 0, len(c.routers)),
	}

	for _, r := range c.routers {
		level := Level{RouterID: r.ID()}
		for _, v := range r.Path() {
			level.Path = append(level.Path, v.ID())
		}
		if v, ok := r.PresentedView(); ok {
			level.Presented = v.ID()
			if p, ok := v.NavigationType().Presentation(); ok {
				level.Presentation = p.String()
			}
		}
		s.Levels = append(s.Levels, level)
	}

	if child := c.child.current(); child != nil {
		s.HasChild = true
		if sn, ok := child.(Snapshotter); ok {
			cs := sn.Snapshot()
			s.Child = &cs
		}
	}
	return s
}

// Snapshot captures every active child that can describe itself.
func (rc *RootCoordinator) Snapshot() Snapshot {
	s := Snapshot{ID: rc.id, Name: rc.name}
	for _, child := range rc.children.members() {
		if sn, ok := child.(Snapshotter); ok {
			s.Children = append(s.Children, sn.Snapshot())
		}
	}
	return s
}

// String renders the snapshot as an indented tree.
func (s Snapshot) String() string {
	var b strings.Builder
	s.write(&b, 0)
	return b.String()
}

func (s Snapshot) write(b *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(b, "%s%s\n", pad, s.Name)

	for i, level := range s.Levels {
		path := "(empty)"
		if len(level.Path) > 0 {
			path = strings.Join(level.Path, " > ")
		}
		fmt.Fprintf(b, "%s  [%d] %s\n", pad, i, path)
		if level.Presented != "" {
			fmt.Fprintf(b, "%s      presents %s as %s\n", pad, level.Presented, level.Presentation)
		}
	}

	if s.Child != nil {
		fmt.Fprintf(b, "%s  child:\n", pad)
		s.Child.write(b, indent+2)
	} else if s.HasChild {
		fmt.Fprintf(b, "%s  child: (opaque)\n", pad)
	}

	for _, child := range s.Children {
		child.write(b, indent+1)
	}
}

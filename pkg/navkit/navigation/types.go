package navigation

import (
	"fmt"
	"strconv"
	"strings"
)

// PresentationStyle identifies how a presented view is displayed.
type PresentationStyle int

const (
	StyleSheet      PresentationStyle = iota // Partial-height modal with optional detents
	StyleFullScreen                          // Modal covering the whole screen
	StyleCustom                              // Rendered by an application-supplied container
)

func (s PresentationStyle) String() string {
	switch s {
	case StyleSheet:
		return "sheet"
	case StyleFullScreen:
		return "fullscreen"
	case StyleCustom:
		return "custom"
	default:
		return "PresentationStyle(" + strconv.Itoa(int(s)) + ")"
	}
}

// Detent is an opaque resting height for a sheet.
// The core never interprets detents; it only carries them to the render layer.
type Detent string

const (
	DetentMedium Detent = "medium"
	DetentLarge  Detent = "large"
)

// Fraction returns a detent at the given fraction of the available height.
func Fraction(f float64) Detent {
	return Detent("fraction:" + strconv.FormatFloat(f, 'g', -1, 64))
}

// Height returns a detent at a fixed height in points.
func Height(h float64) Detent {
	return Detent("height:" + strconv.FormatFloat(h, 'g', -1, 64))
}

// ParseDetent parses the textual form used in config files
// ("medium", "large", "fraction:0.3", "height:200").
func ParseDetent(s string) (Detent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case string(DetentMedium), string(DetentLarge):
		return Detent(s), nil
	}

	kind, value, ok := strings.Cut(s, ":")
	if !ok || (kind != "fraction" && kind != "height") {
		return "", fmt.Errorf("navigation: unknown detent %q", s)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return "", fmt.Errorf("navigation: invalid %s detent %q", kind, value)
	}
	if kind == "fraction" {
		if f > 1 {
			return "", fmt.Errorf("navigation: fraction detent %q out of range", value)
		}
		return Fraction(f), nil
	}
	return Height(f), nil
}

// PresentationType describes a modal presentation.
// Two presentation types are equal when their styles match; sheet detents are ignored.
type PresentationType struct {
	style   PresentationStyle
	detents []Detent
}

// Sheet returns a sheet presentation. Detents form a set: duplicates are dropped,
// first occurrence order is kept.
func Sheet(detents ...Detent) PresentationType {
	set := make([]Detent, 0, len(detents))
	seen := make(map[Detent]struct{}, len(detents))
	for _, d := range detents {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		set = append(set, d)
	}
	return PresentationType{style: StyleSheet, detents: set}
}

// FullScreen returns a full-screen cover presentation.
func FullScreen() PresentationType {
	return PresentationType{style: StyleFullScreen}
}

// Custom returns a presentation rendered by an application-defined container.
func Custom() PresentationType {
	return PresentationType{style: StyleCustom}
}

// ParsePresentation builds a PresentationType from config text.
func ParsePresentation(style string, detents []string) (PresentationType, error) {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "sheet":
		parsed := make([]Detent, 0, len(detents))
		for _, raw := range detents {
			d, err := ParseDetent(raw)
			if err != nil {
				return PresentationType{}, err
			}
			parsed = append(parsed, d)
		}
		return Sheet(parsed...), nil
	case "fullscreen", "full_screen", "full-screen":
		return FullScreen(), nil
	case "custom":
		return Custom(), nil
	}
	return PresentationType{}, fmt.Errorf("navigation: unknown presentation %q", style)
}

func (p PresentationType) Style() PresentationStyle {
	return p.style
}

// Detents returns a copy of the sheet detents. Non-sheet presentations have none.
func (p PresentationType) Detents() []Detent {
	if p.style != StyleSheet || len(p.detents) == 0 {
		return nil
	}
	out := make([]Detent, len(p.detents))
	copy(out, p.detents)
	return out
}

// Equal reports whether both presentations use the same style.
func (p PresentationType) Equal(other PresentationType) bool {
	return p.style == other.style
}

func (p PresentationType) String() string {
	if p.style == StyleSheet && len(p.detents) > 0 {
		parts := make([]string, len(p.detents))
		for i, d := range p.detents {
			parts[i] = string(d)
		}
		return "sheet(" + strings.Join(parts, ",") + ")"
	}
	return p.style.String()
}

// NavigationType is either Push or Present(PresentationType).
// The zero value is Push.
type NavigationType struct {
	present      bool
	presentation PresentationType
}

// Push returns the navigation type for views appended to a router's stack.
func Push() NavigationType {
	return NavigationType{}
}

// Present returns the navigation type for a modally presented view.
func Present(p PresentationType) NavigationType {
	return NavigationType{present: true, presentation: p}
}

func (n NavigationType) IsPush() bool {
	return !n.present
}

// Presentation returns the presentation type and true for Present navigation.
func (n NavigationType) Presentation() (PresentationType, bool) {
	if !n.present {
		return PresentationType{}, false
	}
	return n.presentation, true
}

// Equal compares navigation types, ignoring sheet detents.
func (n NavigationType) Equal(other NavigationType) bool {
	if n.present != other.present {
		return false
	}
	return !n.present || n.presentation.Equal(other.presentation)
}

func (n NavigationType) String() string {
	if !n.present {
		return "push"
	}
	return "present(" + n.presentation.String() + ")"
}

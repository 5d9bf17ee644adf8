// Package i18n resolves localized titles for navkit views.
//
// Message IDs are view IDs, so a message file for a Named{"Settings"} view
// and a GameDetail type from package library looks like:
//
//	Settings = "Einstellungen"
//	"library.GameDetail" = "Spieldetails"
//
// Views without a translation fall back to their ID.
package i18n

import (
	"fmt"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/navkit/pkg/navkit/coordinator"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
	"github.com/BrandonKowalski/navkit/pkg/navkit/router"
)

// Titler looks up view titles in a message bundle.
type Titler struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	languages []string
}

// NewTitler creates a titler whose bundle falls back to defaultLanguage.
// Message files in TOML and JSON are understood.
func NewTitler(defaultLanguage language.Tag) *Titler {
	bundle := goi18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Titler{bundle: bundle}
	t.SetLanguages(defaultLanguage.String())
	return t
}

// ParseLanguage parses a BCP 47 tag such as "de" or "pt-BR".
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("i18n: parse language %q: %w", s, err)
	}
	return tag, nil
}

// SetLanguages sets the preferred languages, most preferred first. Entries
// may be tags or Accept-Language header values.
func (t *Titler) SetLanguages(langs ...string) {
	t.languages = append([]string(nil), langs...)
	t.localizer = goi18n.NewLocalizer(t.bundle, t.languages...)
}

// Languages returns the preferred languages.
func (t *Titler) Languages() []string {
	return append([]string(nil), t.languages...)
}

// LoadMessageFile loads a message file whose name carries its language,
// e.g. "active.de.toml".
func (t *Titler) LoadMessageFile(path string) error {
	if _, err := t.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("i18n: load %s: %w", path, err)
	}
	return nil
}

// ParseMessageFile loads message file contents. name determines the
// language and format the same way a path does for LoadMessageFile.
func (t *Titler) ParseMessageFile(data []byte, name string) error {
	if _, err := t.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	return nil
}

// AddTitles registers titles for tag keyed by view ID.
func (t *Titler) AddTitles(tag language.Tag, titles map[string]string) error {
	messages := make([]*goi18n.Message, 0, len(titles))
	for id, title := range titles {
		messages = append(messages, &goi18n.Message{ID: id, Other: title})
	}
	return t.bundle.AddMessages(tag, messages...)
}

// TitleForID returns the localized title for a view ID, or the ID itself.
func (t *Titler) TitleForID(id string) string {
	title, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || title == "" {
		return id
	}
	return title
}

// Title returns the localized title for v.
func (t *Titler) Title(v navigation.View) string {
	return t.TitleForID(v.ID())
}

// Breadcrumbs returns the titles along r's push stack, bottom first.
func (t *Titler) Breadcrumbs(r *router.NavigationRouter) []string {
	path := r.Path()
	out := make([]string, 0, len(path))
	for _, v := range path {
		out = append(out, t.Title(v))
	}
	return out
}

// Trail returns the titles of everything c shows, from the root router's
// stack through each presented view and the stack above it.
func (t *Titler) Trail(c *coordinator.Coordinator) []string {
	var out []string
	for _, r := range c.Routers() {
		out = append(out, t.Breadcrumbs(r)...)
		if v, ok := r.PresentedView(); ok {
			out = append(out, t.Title(v))
		}
	}
	return out
}

package ui

import (
	tint "github.com/lrstanley/bubbletint"
)

// FallbackTheme is used when the configured theme id is unknown.
const FallbackTheme = "dracula"

// Themes wraps a bubbletint registry holding every bundled theme.
type Themes struct {
	registry *tint.Registry
}

// NewThemes creates a registry positioned on the given theme id. Unknown or
// empty ids leave the registry on FallbackTheme.
func NewThemes(id string) *Themes {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == FallbackTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	themes := &Themes{registry: tint.NewRegistry(fallback, all...)}
	if id != "" {
		themes.registry.SetTintID(id)
	}
	return themes
}

// Set switches to the theme with the given id and reports whether it exists.
func (t *Themes) Set(id string) bool {
	return t.registry.SetTintID(id)
}

// Next cycles to the next theme and returns its id.
func (t *Themes) Next() string {
	t.registry.NextTint()
	return t.registry.ID()
}

// Name returns the id of the current theme.
func (t *Themes) Name() string {
	return t.registry.ID()
}

// DisplayName returns the human readable name of the current theme.
func (t *Themes) DisplayName() string {
	return t.registry.DisplayName()
}

// Styles builds board styles from the current theme colors.
func (t *Themes) Styles() Styles {
	return NewStyles(t.registry)
}

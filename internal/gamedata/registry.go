package gamedata

import "errors"

// ThemeRegistry holds loaded theme definitions.
type ThemeRegistry struct {
	themes []ThemeDef
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	return &ThemeRegistry{themes: themes}
}

// LoadThemeRegistry loads and validates the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	for i := range themes {
		if err := themes[i].Validate(); err != nil {
			return nil, err
		}
	}
	return NewThemeRegistry(themes), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *ThemeDef {
	for i := range r.themes {
		if r.themes[i].ID == id {
			return &r.themes[i]
		}
	}
	return nil
}

// Default returns the first theme in the file.
func (r *ThemeRegistry) Default() *ThemeDef {
	if len(r.themes) == 0 {
		return nil
	}
	return &r.themes[0]
}

// Resolve returns the theme with the given ID, or the default theme.
func (r *ThemeRegistry) Resolve(id string) *ThemeDef {
	if t := r.GetByID(id); t != nil {
		return t
	}
	return r.Default()
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.themes)
}

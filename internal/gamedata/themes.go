package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef defines the glyphs and colors used to draw the arena.
type ThemeDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "classic")
	Name        string `json:"name"`        // Display name
	HeadGlyph   string `json:"headGlyph"`   // Single character for the snake head
	BodyGlyph   string `json:"bodyGlyph"`   // Single character for body segments
	FoodGlyph   string `json:"foodGlyph"`   // Single character for food
	HeadColor   string `json:"headColor"`   // Hex color of the head; body fades from here
	TailColor   string `json:"tailColor"`   // Hex color the body fades to
	FoodColor   string `json:"foodColor"`   // Hex color of food
	BorderColor string `json:"borderColor"` // Hex color of the arena border
	TextColor   string `json:"textColor"`   // Hex color of HUD and overlay text
}

// HeadRune returns the head glyph as a rune.
func (t *ThemeDef) HeadRune() rune { return glyphRune(t.HeadGlyph) }

// BodyRune returns the body glyph as a rune.
func (t *ThemeDef) BodyRune() rune { return glyphRune(t.BodyGlyph) }

// FoodRune returns the food glyph as a rune.
func (t *ThemeDef) FoodRune() rune { return glyphRune(t.FoodGlyph) }

// Color parses one of the theme's hex colors, falling back to white.
func (t *ThemeDef) Color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// BodyColors returns n colors fading from the head color to the tail color.
func (t *ThemeDef) BodyColors(n int) []tcell.Color {
	colors, err := Gradient(t.HeadColor, t.TailColor, n)
	if err != nil {
		colors = make([]tcell.Color, n)
		for i := range colors {
			colors[i] = tcell.ColorWhite
		}
	}
	return colors
}

// Validate checks that every color in the theme parses.
func (t *ThemeDef) Validate() error {
	for _, hex := range []string{t.HeadColor, t.TailColor, t.FoodColor, t.BorderColor, t.TextColor} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("theme %q: %w", t.ID, err)
		}
	}
	return nil
}

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

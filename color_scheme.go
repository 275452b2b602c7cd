package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by LineEngine and by the styled helpers for
// menu labels, banners and error messages.
type Theme struct {
	Name       string           `json:"name"`
	Prefix     Color            `json:"prefix"`
	Input      Color            `json:"input"`
	Suggestion SuggestionColors `json:"suggestion"`
	Selected   Color            `json:"selected"`
	Label      Color            `json:"label"`
	Banner     Color            `json:"banner"`
	Error      Color            `json:"error"`
}

// SuggestionColors defines colors for completion candidates. Description is
// also used for the default answer shown in an empty input line.
type SuggestionColors struct {
	Text        Color `json:"text"`
	Description Color `json:"description"`
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default theme with green prefix and white input
var ThemeDefault = &Theme{
	Name:   "default",
	Prefix: Color{R: 0, G: 255, B: 0, Bold: true},
	Input:  Color{R: 255, G: 255, B: 255, Bold: true},
	Suggestion: SuggestionColors{
		Text:        Color{R: 200, G: 200, B: 200},
		Description: Color{R: 128, G: 128, B: 128},
	},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
	Label:    Color{R: 0, G: 255, B: 255, Bold: true},
	Banner:   Color{R: 255, G: 255, B: 255, Bold: true},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeDark is a dark theme with light blue prefix and off-white input
var ThemeDark = &Theme{
	Name:   "dark",
	Prefix: Color{R: 102, G: 217, B: 239, Bold: true},
	Input:  Color{R: 248, G: 248, B: 242},
	Suggestion: SuggestionColors{
		Text:        Color{R: 189, G: 147, B: 249},
		Description: Color{R: 98, G: 114, B: 164},
	},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Label:    Color{R: 255, G: 184, B: 108, Bold: true},
	Banner:   Color{R: 248, G: 248, B: 242, Bold: true},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeNightOwl is the Night Owl theme
var ThemeNightOwl = &Theme{
	Name:   "nightowl",
	Prefix: Color{R: 130, G: 170, B: 255, Bold: true},
	Input:  Color{R: 214, G: 222, B: 235, Bold: true},
	Suggestion: SuggestionColors{
		Text:        Color{R: 197, G: 228, B: 120},
		Description: Color{R: 127, G: 219, B: 202},
	},
	Selected: Color{R: 34, G: 218, B: 110, Bold: true},
	Label:    Color{R: 199, G: 146, B: 234, Bold: true},
	Banner:   Color{R: 214, G: 222, B: 235, Bold: true},
	Error:    Color{R: 239, G: 83, B: 80, Bold: true},
}

// ThemeDracula is the Dracula theme
var ThemeDracula = &Theme{
	Name:   "dracula",
	Prefix: Color{R: 255, G: 121, B: 198, Bold: true},
	Input:  Color{R: 248, G: 248, B: 242},
	Suggestion: SuggestionColors{
		Text:        Color{R: 139, G: 233, B: 253},
		Description: Color{R: 98, G: 114, B: 164},
	},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Label:    Color{R: 241, G: 250, B: 140, Bold: true},
	Banner:   Color{R: 189, G: 147, B: 249, Bold: true},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeMonokai is the Monokai theme
var ThemeMonokai = &Theme{
	Name:   "monokai",
	Prefix: Color{R: 249, G: 38, B: 114, Bold: true},
	Input:  Color{R: 248, G: 248, B: 242},
	Suggestion: SuggestionColors{
		Text:        Color{R: 166, G: 226, B: 46},
		Description: Color{R: 117, G: 113, B: 94},
	},
	Selected: Color{R: 102, G: 217, B: 239, Bold: true},
	Label:    Color{R: 253, G: 151, B: 31, Bold: true},
	Banner:   Color{R: 248, G: 248, B: 242, Bold: true},
	Error:    Color{R: 249, G: 38, B: 114, Bold: true},
}

// Themes lists the built-in themes by name.
var Themes = map[string]*Theme{
	ThemeDefault.Name:  ThemeDefault,
	ThemeDark.Name:     ThemeDark,
	ThemeNightOwl.Name: ThemeNightOwl,
	ThemeDracula.Name:  ThemeDracula,
	ThemeMonokai.Name:  ThemeMonokai,
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style returns a lipgloss style with c as its foreground.
func (c Color) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(c.Bold)
}

// Labeler returns a label function that styles DefaultLabel with the theme's
// label color.
func (t *Theme) Labeler() func(int) Text {
	style := t.Label.Style()
	return func(position int) Text {
		return Styled(DefaultLabel(position).Plain(), style)
	}
}

// BannerText styles s with the theme's banner color.
func (t *Theme) BannerText(s string) Text {
	return Styled(s, t.Banner.Style())
}

// ErrorText styles s with the theme's error color.
func (t *Theme) ErrorText(s string) Text {
	return Styled(s, t.Error.Style())
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is a styled piece of output made of one or more spans.
//
// The zero Text is "absent": optional fields such as a menu banner use it to
// mean "print nothing". Plain("") is present but empty and still prints a line.
type Text struct {
	spans []span
}

type span struct {
	text   string
	style  lipgloss.Style
	styled bool
}

// Plain returns an unstyled Text.
func Plain(s string) Text {
	return Text{spans: []span{{text: s}}}
}

// Styled returns a Text rendered with the given lipgloss style.
//
// Example:
//
//	banner := menu.Styled("Pick a branch", lipgloss.NewStyle().Bold(true))
func Styled(s string, style lipgloss.Style) Text {
	return Text{spans: []span{{text: s, style: style, styled: true}}}
}

// Append returns a new Text with the spans of others added after t.
func (t Text) Append(others ...Text) Text {
	n := len(t.spans)
	for _, o := range others {
		n += len(o.spans)
	}
	spans := make([]span, 0, n)
	spans = append(spans, t.spans...)
	for _, o := range others {
		spans = append(spans, o.spans...)
	}
	return Text{spans: spans}
}

// IsZero reports whether t is the absent Text.
func (t Text) IsZero() bool {
	return len(t.spans) == 0
}

// Plain strips all styling and returns the bare string.
func (t Text) Plain() string {
	if len(t.spans) == 1 {
		return t.spans[0].text
	}
	var b strings.Builder
	for _, s := range t.spans {
		b.WriteString(s.text)
	}
	return b.String()
}

// Render returns t decorated for the given renderer. A nil renderer uses the
// lipgloss default renderer, which detects the color profile of stdout.
func (t Text) Render(r *lipgloss.Renderer) string {
	var b strings.Builder
	for _, s := range t.spans {
		if !s.styled {
			b.WriteString(s.text)
			continue
		}
		style := s.style
		if r != nil {
			style = style.Renderer(r)
		}
		b.WriteString(style.Render(s.text))
	}
	return b.String()
}

// String implements fmt.Stringer and returns the plain form.
func (t Text) String() string {
	return t.Plain()
}

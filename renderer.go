package menu

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// renderer draws the input line of a LineEngine and, below it, the list of
// completion candidates.
//
// It remembers how many candidate lines were drawn last time so the next
// frame can clear them, and positions the cursor by display width so that
// wide (CJK) characters do not shift it. Candidates are cut to the terminal
// width so each one occupies exactly one row.
type renderer struct {
	output      io.Writer // Target output writer (typically stdout or colorable wrapper)
	theme       *Theme    // Colors for prefix, input and candidates
	lastLines   int       // Candidate lines drawn by the previous frame
	width       int       // Terminal columns; 0 disables truncation
	placeholder string    // Dimmed text shown while the input is empty
}

// ellipsis marks a truncated candidate.
const ellipsis = "..."

// newRenderer creates a new renderer with the given output and theme.
func newRenderer(output io.Writer, theme *Theme) *renderer {
	return &renderer{
		output: output,
		theme:  theme,
	}
}

// render displays the prompt with the current input.
func (r *renderer) render(prefix, input string, cursor int) error {
	return r.renderWithSuggestions(prefix, input, cursor, nil, 0, 0)
}

// renderWithSuggestions displays the prompt and up to maxDisplayedSuggestions
// candidates starting at offset, highlighting the one at index selected.
func (r *renderer) renderWithSuggestions(prefix, input string, cursor int, suggestions []Completion, selected, offset int) error {
	if err := r.clearSuggestionLines(); err != nil {
		return err
	}
	if err := r.renderMainLine(prefix, input); err != nil {
		return err
	}

	visible := visibleWindow(suggestions, offset)
	if len(visible) > 0 {
		if err := r.renderSuggestions(visible, selected-offset); err != nil {
			return err
		}
	}
	r.lastLines = len(visible)

	return r.positionCursor(prefix, input, cursor)
}

// visibleWindow returns the slice of suggestions shown for the given scroll
// offset. Out of range offsets are clamped.
func visibleWindow(suggestions []Completion, offset int) []Completion {
	if len(suggestions) == 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(suggestions) {
		offset = len(suggestions) - 1
	}
	end := min(offset+maxDisplayedSuggestions, len(suggestions))
	return suggestions[offset:end]
}

// renderMainLine clears the current line and draws the colored prefix and
// input, or the placeholder when there is no input yet.
func (r *renderer) renderMainLine(prefix, input string) error {
	text, color := input, r.theme.Input
	if input == "" && r.placeholder != "" {
		text, color = r.placeholder, r.theme.Suggestion.Description
	}
	_, err := fmt.Fprintf(r.output, "\r\x1b[K%s%s%s%s%s%s",
		r.theme.Prefix.ToANSI(), prefix, Reset(),
		color.ToANSI(), text, Reset())
	return err
}

// renderSuggestions draws candidates on the lines below the input and moves
// the cursor back up to the input line.
func (r *renderer) renderSuggestions(suggestions []Completion, selected int) error {
	for i, s := range suggestions {
		if _, err := fmt.Fprint(r.output, "\r\n\x1b[K"); err != nil {
			return err
		}

		marker, color := "  ", r.theme.Suggestion.Text
		if i == selected {
			marker, color = "▶ ", r.theme.Selected
		}

		text, description := r.fit(marker, s)
		if _, err := fmt.Fprintf(r.output, "%s%s%s%s", color.ToANSI(), marker, text, Reset()); err != nil {
			return err
		}
		if description != "" {
			if _, err := fmt.Fprintf(r.output, "  %s%s%s", r.theme.Suggestion.Description.ToANSI(), description, Reset()); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(r.output, "\x1b[%dA", len(suggestions))
	return err
}

// fit returns the candidate text and description cut to the columns left
// after marker. The last column stays empty so the terminal never wraps.
// The description is dropped before the text is shortened.
func (r *renderer) fit(marker string, s Completion) (text, description string) {
	text = s.Display
	if text == "" {
		text = s.Replacement
	}
	description = s.Description
	if r.width <= 0 {
		return text, description
	}

	avail := r.width - runewidth.StringWidth(marker) - 1
	if avail <= 0 {
		return "", ""
	}
	text = runewidth.Truncate(text, avail, ellipsis)

	// Two spaces separate text and description.
	rest := avail - runewidth.StringWidth(text) - 2
	if description == "" || rest <= runewidth.StringWidth(ellipsis) {
		return text, ""
	}
	return text, runewidth.Truncate(description, rest, ellipsis)
}

// clearSuggestionLines wipes the candidate lines drawn by the previous frame.
func (r *renderer) clearSuggestionLines() error {
	if r.lastLines == 0 {
		return nil
	}
	for i := 0; i < r.lastLines; i++ {
		if _, err := fmt.Fprint(r.output, "\x1b[E\x1b[K"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.output, "\x1b[%dA\r", r.lastLines)
	r.lastLines = 0
	return err
}

// positionCursor moves the terminal cursor to the rune index cursor of the
// input, measured in display columns from the start of the line.
func (r *renderer) positionCursor(prefix, input string, cursor int) error {
	runes := []rune(input)
	cursor = max(0, min(cursor, len(runes)))
	cols := runewidth.StringWidth(prefix) + runewidth.StringWidth(string(runes[:cursor]))
	if _, err := fmt.Fprint(r.output, "\r"); err != nil {
		return err
	}
	if cols > 0 {
		_, err := fmt.Fprintf(r.output, "\x1b[%dC", cols)
		return err
	}
	return nil
}

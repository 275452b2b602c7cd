package menu

import "strings"

// MatchOnPrefix returns the items whose plain text starts with query, in
// display order. Matching is exact and case-sensitive; an empty query matches
// every item.
func MatchOnPrefix[T any](m Menu[T], query string) []T {
	var matches []T
	for _, item := range m.items {
		if strings.HasPrefix(m.display(item).Plain(), query) {
			matches = append(matches, item)
		}
	}
	return matches
}

// DefaultResolver resolves raw input against the menu:
//
//  1. The input is trimmed.
//  2. If exactly one item starts with the trimmed input, that item matches.
//  3. Otherwise the trimmed input is looked up as a label.
//  4. Otherwise the result is Other with the untrimmed input.
//
// A unique prefix match wins over a label, so a label that is also an
// unambiguous prefix of some item's text selects that item, not the labelled one.
func DefaultResolver[T any](m Menu[T], labels LabelMap[T], raw string) Resolution[T] {
	clean := strings.TrimSpace(raw)
	if matches := MatchOnPrefix(m, clean); len(matches) == 1 {
		return Match(matches[0])
	}
	if item, ok := labels[clean]; ok {
		return Match(item)
	}
	return Other[T](raw)
}

// Completer returns a completion provider offering the items of m that start
// with the text left of the cursor. The whole left text is consumed, so the
// returned unconsumed prefix is always empty.
func Completer[T any](m Menu[T]) CompleterFunc {
	return func(left string) (string, []Completion) {
		matches := MatchOnPrefix(m, left)
		completions := make([]Completion, 0, len(matches))
		for _, item := range matches {
			text := m.display(item).Plain()
			completions = append(completions, Completion{
				Replacement: text,
				Display:     text,
				Final:       true,
			})
		}
		return "", completions
	}
}

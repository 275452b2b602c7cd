package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
)

// ErrNoItems is returned by FromSlice when the item slice is empty.
var ErrNoItems = errors.New("menu: at least one item is required")

// Resolver turns a raw answer into a Resolution. The label map is the one
// built while the menu was rendered for the current round.
type Resolver[T any] func(m Menu[T], labels LabelMap[T], raw string) Resolution[T]

// LabelMap maps a trimmed, plain label to the item it was printed next to.
type LabelMap[T any] map[string]T

// Menu is an immutable menu configuration. Every With* method returns a
// modified copy and leaves the receiver untouched.
type Menu[T any] struct {
	items     []T
	banner    Text
	labeler   func(int) Text
	suffix    Text
	prePrompt Text
	resolver  Resolver[T]
	display   func(T) Text
	logger    *log.Logger
}

// New creates a menu from at least one item. Items are displayed in the given
// order; duplicates are allowed.
//
// Example:
//
//	m := menu.New("main", "develop", "feature/login").
//		WithBanner(menu.Plain("Choose a branch"))
//
//	branch, err := menu.AskRepeatedly(ctx, engine, m, "branch> ", menu.Plain("No such branch"))
func New[T any](first T, rest ...T) Menu[T] {
	items := make([]T, 0, len(rest)+1)
	items = append(items, first)
	items = append(items, rest...)
	return newMenu(items)
}

// FromSlice creates a menu from a slice. It returns ErrNoItems if the slice is
// empty. The slice is copied.
func FromSlice[T any](items []T) (Menu[T], error) {
	if len(items) == 0 {
		return Menu[T]{}, ErrNoItems
	}
	return newMenu(append([]T(nil), items...)), nil
}

func newMenu[T any](items []T) Menu[T] {
	return Menu[T]{
		items:    items,
		labeler:  DefaultLabel,
		suffix:   Plain(") "),
		resolver: DefaultResolver[T],
		display:  defaultDisplay[T],
		logger:   log.New(io.Discard),
	}
}

func defaultDisplay[T any](item T) Text {
	return Plain(fmt.Sprint(item))
}

// WithBanner sets the text printed once above the items.
func (m Menu[T]) WithBanner(banner Text) Menu[T] {
	m.banner = banner
	return m
}

// WithLabeler sets the function that maps a 1-based position to its label.
func (m Menu[T]) WithLabeler(labeler func(int) Text) Menu[T] {
	if labeler == nil {
		labeler = DefaultLabel
	}
	m.labeler = labeler
	return m
}

// WithSuffix sets the text printed between a label and the item.
func (m Menu[T]) WithSuffix(suffix Text) Menu[T] {
	m.suffix = suffix
	return m
}

// WithResolver replaces the function that interprets the user's answer.
func (m Menu[T]) WithResolver(resolver Resolver[T]) Menu[T] {
	if resolver == nil {
		resolver = DefaultResolver[T]
	}
	m.resolver = resolver
	return m
}

// WithDisplay sets how an item is rendered. The plain form of the result is
// also what prefix matching compares against.
func (m Menu[T]) WithDisplay(display func(T) Text) Menu[T] {
	if display == nil {
		display = defaultDisplay[T]
	}
	m.display = display
	return m
}

// WithPrePrompt sets the text printed right before the input prompt.
// AskRepeatedly uses it to show the error message on retries.
func (m Menu[T]) WithPrePrompt(text Text) Menu[T] {
	m.prePrompt = text
	return m
}

// WithLogger sets the logger used for debug traces of each round.
func (m Menu[T]) WithLogger(logger *log.Logger) Menu[T] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m.logger = logger
	return m
}

// Items returns a copy of the menu items in display order.
func (m Menu[T]) Items() []T {
	return append([]T(nil), m.items...)
}

// Len returns the number of items.
func (m Menu[T]) Len() int {
	return len(m.items)
}

// Label returns the trimmed plain label for a 1-based position.
func (m Menu[T]) Label(position int) string {
	return strings.TrimSpace(m.labeler(position).Plain())
}

// Display returns the rendered text of an item.
func (m Menu[T]) Display(item T) Text {
	return m.display(item)
}

// DefaultLabel formats position as a decimal right-aligned to two columns.
func DefaultLabel(position int) Text {
	return Plain(fmt.Sprintf("%2d", position))
}

// LetterLabel labels positions a, b, ..., z, aa, ab, ... like spreadsheet columns.
func LetterLabel(position int) Text {
	if position < 1 {
		return Plain("")
	}
	var b []byte
	for n := position; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('a' + (n-1)%26)}, b...)
	}
	return Plain(string(b))
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// RomanLabel labels positions with lower-case roman numerals.
func RomanLabel(position int) Text {
	var b strings.Builder
	n := position
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return Plain(b.String())
}

// PadLabel right-aligns the labels produced by labeler to width display
// columns. Wide runes count as two columns.
//
// Example:
//
//	m = m.WithLabeler(menu.PadLabel(3, menu.LetterLabel)) // "  a", "  b", ...
func PadLabel(width int, labeler func(int) Text) func(int) Text {
	return func(position int) Text {
		label := labeler(position)
		if pad := width - runewidth.StringWidth(label.Plain()); pad > 0 {
			return Plain(strings.Repeat(" ", pad)).Append(label)
		}
		return label
	}
}

package menu

import "fmt"

// Resolution is the outcome of one menu round: either a matched item or the
// raw text the user typed.
type Resolution[T any] struct {
	item    T
	raw     string
	matched bool
}

// Match returns a Resolution holding item.
func Match[T any](item T) Resolution[T] {
	return Resolution[T]{item: item, matched: true}
}

// Other returns a Resolution holding unmatched, untrimmed input.
func Other[T any](raw string) Resolution[T] {
	return Resolution[T]{raw: raw}
}

// IsMatch reports whether the resolution holds an item.
func (r Resolution[T]) IsMatch() bool {
	return r.matched
}

// Matched returns the item and true for a match.
func (r Resolution[T]) Matched() (T, bool) {
	return r.item, r.matched
}

// Other returns the raw input and true when nothing matched.
func (r Resolution[T]) Other() (string, bool) {
	return r.raw, !r.matched
}

func (r Resolution[T]) String() string {
	if r.matched {
		return fmt.Sprintf("Match(%v)", r.item)
	}
	return fmt.Sprintf("Other(%q)", r.raw)
}

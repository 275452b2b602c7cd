package menu

import "context"

// Engine is the line-input host a menu runs on. LineEngine is the
// terminal implementation shipped with this package.
type Engine interface {
	// PushCompleter makes c the active completion provider until the
	// matching PopCompleter call.
	PushCompleter(c CompleterFunc)
	// PopCompleter removes the most recently pushed completion provider.
	PopCompleter()
	// AskLine displays prompt and blocks until the user submits a line.
	// def is the answer returned for an empty line.
	AskLine(ctx context.Context, prompt, def string) (string, error)
	// PrintLine writes t followed by a newline.
	PrintLine(t Text) error
}

// CompleterFunc supplies completion candidates for the text left of the
// cursor. It returns the part of left that is kept as is; everything after it
// is replaced by the chosen candidate.
type CompleterFunc func(left string) (unconsumed string, completions []Completion)

// Completion is a single completion candidate.
type Completion struct {
	Replacement string // Text inserted after the unconsumed prefix
	Display     string // Text shown in the candidate list
	Description string // Optional note shown dimmed after Display
	Final       bool   // No further completion is offered after accepting
}

package menu

import (
	"context"
	"errors"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedEngine is an Engine that answers from a fixed script and records
// everything printed.
type scriptedEngine struct {
	answers   []string
	readErr   error // returned instead of the next answer when set
	panicMsg  string
	printed   []string
	defaults  []string
	prompts   []string
	stack     []CompleterFunc
	askDepths []int
	rounds    int
}

func (s *scriptedEngine) PushCompleter(c CompleterFunc) {
	s.stack = append(s.stack, c)
}

func (s *scriptedEngine) PopCompleter() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *scriptedEngine) AskLine(_ context.Context, prompt, def string) (string, error) {
	s.rounds++
	s.prompts = append(s.prompts, prompt)
	s.defaults = append(s.defaults, def)
	s.askDepths = append(s.askDepths, len(s.stack))
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.readErr != nil {
		return "", s.readErr
	}
	if len(s.answers) == 0 {
		return "", errScriptExhausted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedEngine) PrintLine(t Text) error {
	s.printed = append(s.printed, t.Plain())
	return nil
}

// failingPrinter fails every PrintLine call.
type failingPrinter struct {
	scriptedEngine
	err error
}

func (f *failingPrinter) PrintLine(Text) error {
	return f.err
}

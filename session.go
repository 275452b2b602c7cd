package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoEngine is returned when Ask or AskRepeatedly is called without an engine.
var ErrNoEngine = errors.New("menu: engine is nil")

const itemIndent = "  "

// Render prints the banner, the labelled items and the pre-prompt text, and
// returns the label map built while printing. When two positions share a
// trimmed label, the later item wins.
func Render[T any](e Engine, m Menu[T]) (LabelMap[T], error) {
	if !m.banner.IsZero() {
		if err := e.PrintLine(m.banner); err != nil {
			return nil, fmt.Errorf("menu: failed to print banner: %w", err)
		}
		if err := e.PrintLine(Plain("")); err != nil {
			return nil, fmt.Errorf("menu: failed to print banner: %w", err)
		}
	}

	labels := make(LabelMap[T], len(m.items))
	for i, item := range m.items {
		label := m.labeler(i + 1)
		line := Plain(itemIndent).Append(label, m.suffix, m.display(item))
		if err := e.PrintLine(line); err != nil {
			return nil, fmt.Errorf("menu: failed to print item %d: %w", i+1, err)
		}
		labels[strings.TrimSpace(label.Plain())] = item
	}

	if !m.prePrompt.IsZero() {
		if err := e.PrintLine(Plain("")); err != nil {
			return nil, fmt.Errorf("menu: failed to print pre-prompt text: %w", err)
		}
		if err := e.PrintLine(m.prePrompt); err != nil {
			return nil, fmt.Errorf("menu: failed to print pre-prompt text: %w", err)
		}
	}
	return labels, nil
}

// Ask runs a single menu round: it prints the menu, reads one line with the
// first label as the default answer and resolves it.
//
// The menu's completer is active only while the line is read and is removed
// on every return path, including errors and panics. Errors from AskLine are
// returned as they are, so err == ErrEOF and err == context.Canceled hold
// for a LineEngine.
func Ask[T any](ctx context.Context, e Engine, m Menu[T], prompt string) (Resolution[T], error) {
	return ask(ctx, e, m, prompt, 1)
}

func ask[T any](ctx context.Context, e Engine, m Menu[T], prompt string, round int) (Resolution[T], error) {
	if e == nil {
		return Resolution[T]{}, ErrNoEngine
	}

	e.PushCompleter(Completer(m))
	defer e.PopCompleter()

	labels, err := Render(e, m)
	if err != nil {
		return Resolution[T]{}, err
	}

	answer, err := e.AskLine(ctx, prompt, m.Label(1))
	if err != nil {
		return Resolution[T]{}, err
	}

	res := m.resolver(m, labels, answer)
	m.logger.Debug("menu round", "round", round, "answer", answer, "matched", res.IsMatch())
	return res, nil
}

// AskRepeatedly asks until the answer matches an item and returns that item.
// After each miss the menu is shown again with errText before the prompt.
// There is no retry limit; errors from the engine end the loop and are
// returned unchanged.
func AskRepeatedly[T any](ctx context.Context, e Engine, m Menu[T], prompt string, errText Text) (T, error) {
	for round := 1; ; round++ {
		res, err := ask(ctx, e, m, prompt, round)
		if err != nil {
			var zero T
			return zero, err
		}
		if item, ok := res.Matched(); ok {
			return item, nil
		}
		m.logger.Debug("no match, asking again", "round", round)
		m = m.WithPrePrompt(errText)
	}
}

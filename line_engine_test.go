package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Engine = (*LineEngine)(nil)

// newForTesting creates a LineEngine that reads mockInput from a mock
// terminal and writes to the returned buffer.
func newForTesting(t *testing.T, mockInput string, options ...Option) (*LineEngine, *mockTerminal, *bytes.Buffer) {
	t.Helper()

	var output bytes.Buffer
	config := Config{
		Output: &output,
		Logger: log.New(io.Discard),
	}
	for _, option := range options {
		option(&config)
	}

	terminal := newMockTerminal(mockInput)
	return newFromConfig(config, terminal), terminal, &output
}

func fruitCompleter(left string) (string, []Completion) {
	var out []Completion
	for _, f := range []string{"apple", "banana", "blueberry", "cherry"} {
		if strings.HasPrefix(f, left) {
			out = append(out, Completion{Replacement: f, Display: f, Final: true})
		}
	}
	return "", out
}

func TestNewFromConfigDefaults(t *testing.T) {
	t.Parallel()

	e := newFromConfig(Config{Output: io.Discard}, newMockTerminal(""))
	assert.Equal(t, ThemeDefault, e.config.Theme)
	assert.NotNil(t, e.keyMap)
	assert.NotNil(t, e.logger)
	assert.Zero(t, e.Depth())
}

func TestAskLineEditing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		def      string
		input    string
		expected string
	}{
		{name: "empty line returns the default", def: "1", input: "\r", expected: "1"},
		{name: "typing replaces the default", def: "1", input: "2\r", expected: "2"},
		{name: "erased line returns the default", def: "1", input: "x\x7f\r", expected: "1"},
		{name: "ctrl+u clears typed text", def: "1", input: "bogus\x15ok\n", expected: "ok"},
		{name: "backspace", def: "", input: "hello\x7f\x7fo\r", expected: "helo"},
		{name: "move home and insert", def: "", input: "bc\x01a\r", expected: "abc"},
		{name: "arrow left and insert", def: "", input: "ac\x1b[Db\r", expected: "abc"},
		{name: "delete key", def: "", input: "abc\x01\x1b[3~\r", expected: "bc"},
		{name: "kill to end", def: "", input: "hello world\x01\x1b[1;5C\x0b\r", expected: "hello"},
		{name: "delete word back", def: "", input: "git status\x17\r", expected: "git "},
		{name: "unicode input", def: "", input: "こんにちは\r", expected: "こんにちは"},
		{name: "ctrl+d on non-empty line is ignored", def: "", input: "x\x04\r", expected: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, terminal, _ := newForTesting(t, tt.input)
			got, err := e.AskLine(t.Context(), "> ", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.False(t, terminal.rawMode, "terminal should be restored")
		})
	}
}

func TestAskLineErrors(t *testing.T) {
	t.Parallel()

	readErr := errors.New("device gone")

	tests := []struct {
		name    string
		input   string
		readErr error
		want    error
	}{
		{name: "ctrl+c", input: "ab\x03", want: ErrInterrupted},
		{name: "ctrl+d on empty line", input: "\x04", want: ErrEOF},
		{name: "end of input", input: "abc", want: ErrEOF},
		{name: "read failure", input: "", readErr: readErr, want: readErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, terminal, _ := newForTesting(t, tt.input)
			terminal.readErr = tt.readErr

			_, err := e.AskLine(t.Context(), "> ", "1")
			require.ErrorIs(t, err, tt.want)
			assert.False(t, terminal.rawMode)
			assert.Equal(t, 1, terminal.restores)
		})
	}
}

func TestAskLineContextCancelled(t *testing.T) {
	t.Parallel()

	e, terminal, _ := newForTesting(t, "never read\r")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := e.AskLine(ctx, "> ", "")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, terminal.inputPos)
	assert.False(t, terminal.rawMode)
}

func TestAskLineRendersPromptAndDefault(t *testing.T) {
	t.Parallel()

	e, _, output := newForTesting(t, "\r")
	_, err := e.AskLine(t.Context(), "choice> ", "1")
	require.NoError(t, err)

	result := output.String()
	assert.Contains(t, result, "choice> ")
	assert.Contains(t, result, ThemeDefault.Suggestion.Description.ToANSI()+"1"+Reset(), "default is drawn as a placeholder")
	assert.Contains(t, result, ThemeDefault.Input.ToANSI()+"1"+Reset(), "submitted default is echoed as input")
}

func TestAskLineTypingHidesPlaceholder(t *testing.T) {
	t.Parallel()

	e, _, output := newForTesting(t, "2\r")
	got, err := e.AskLine(t.Context(), "> ", "1")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	result := output.String()
	last := result[strings.LastIndex(result, "\r\x1b[K"):]
	assert.Contains(t, last, ThemeDefault.Input.ToANSI()+"2"+Reset())
	assert.NotContains(t, last, ThemeDefault.Suggestion.Description.ToANSI(), "placeholder is not drawn once text is typed")
	assert.Empty(t, e.renderer.placeholder, "placeholder is cleared after the line")
}

func TestAskLineTruncatesCandidatesToTerminalWidth(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 120)
	completer := func(string) (string, []Completion) {
		return "", []Completion{{Replacement: long, Final: true}, {Replacement: "short", Final: true}}
	}

	e, terminal, output := newForTesting(t, "\t\x1b[B\r\r", WithCompleter(completer))
	terminal.terminalSize = [2]int{40, 24}

	got, err := e.AskLine(t.Context(), "> ", "")
	require.NoError(t, err)
	assert.Equal(t, "short", got)

	assert.Equal(t, 40, e.renderer.width)
	assert.NotContains(t, output.String(), strings.Repeat("x", 38))
	assert.Contains(t, output.String(), strings.Repeat("x", 34)+ellipsis)
}

func TestAskLineCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single candidate completes at once", input: "ch\t\r", expected: "cherry"},
		{name: "tab accepts the first of several", input: "b\t\t\r", expected: "banana"},
		{name: "enter accepts the highlighted candidate", input: "b\t\x1b[B\r\r", expected: "blueberry"},
		{name: "up stops at the first candidate", input: "b\t\x1b[A\x1b[A\r\r", expected: "banana"},
		{name: "right arrow accepts", input: "b\t\x1b[B\x1b[C\r", expected: "blueberry"},
		{name: "typing closes the list", input: "b\tl\t\r", expected: "blueberry"},
		{name: "no candidates leaves the line", input: "zz\t\r", expected: "zz"},
		{name: "completion replaces the whole left text", input: "xyz\x01\t\x1b[B\x1b[B\x1b[B\r\r", expected: "cherryxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _, _ := newForTesting(t, tt.input)
			e.PushCompleter(fruitCompleter)
			defer e.PopCompleter()

			got, err := e.AskLine(t.Context(), "> ", "1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAskLineCompletionKeepsUnconsumedPrefix(t *testing.T) {
	t.Parallel()

	completer := func(left string) (string, []Completion) {
		i := strings.LastIndex(left, " ")
		word := left[i+1:]
		var out []Completion
		for _, d := range []string{"docs", "internal"} {
			if strings.HasPrefix(d, word) {
				out = append(out, Completion{Replacement: d, Final: true})
			}
		}
		return left[:i+1], out
	}

	e, _, _ := newForTesting(t, "cd d\t\r", WithCompleter(completer))
	got, err := e.AskLine(t.Context(), "$ ", "")
	require.NoError(t, err)
	assert.Equal(t, "cd docs", got)
}

func TestAskLineNonFinalCompletion(t *testing.T) {
	t.Parallel()

	completer := func(left string) (string, []Completion) {
		switch left {
		case "":
			return "", []Completion{{Replacement: "git "}}
		case "git ":
			return "", []Completion{
				{Replacement: "git status", Final: true},
				{Replacement: "git stash", Final: true},
			}
		}
		return "", nil
	}

	e, _, output := newForTesting(t, "\t\r\r", WithCompleter(completer))
	got, err := e.AskLine(t.Context(), "$ ", "")
	require.NoError(t, err)
	assert.Equal(t, "git status", got)
	assert.Contains(t, output.String(), "git stash", "second level candidates should be listed")
}

func TestCompleterStack(t *testing.T) {
	t.Parallel()

	base := func(string) (string, []Completion) {
		return "", []Completion{{Replacement: "base", Final: true}}
	}
	pushed := func(string) (string, []Completion) {
		return "", []Completion{{Replacement: "pushed", Final: true}}
	}

	e, _, _ := newForTesting(t, "\t\r\t\r", WithCompleter(base))

	e.PushCompleter(pushed)
	assert.Equal(t, 1, e.Depth())
	got, err := e.AskLine(t.Context(), "> ", "")
	require.NoError(t, err)
	assert.Equal(t, "pushed", got)

	e.PopCompleter()
	assert.Zero(t, e.Depth())
	got, err = e.AskLine(t.Context(), "> ", "")
	require.NoError(t, err)
	assert.Equal(t, "base", got)

	// Popping an empty stack is a no-op
	e.PopCompleter()
	assert.Zero(t, e.Depth())
}

func TestPrintLine(t *testing.T) {
	t.Parallel()

	e, _, output := newForTesting(t, "")
	require.NoError(t, e.PrintLine(Plain("hello")))
	require.NoError(t, e.PrintLine(Plain("")))
	require.NoError(t, e.PrintLine(ThemeDefault.ErrorText("oops")))

	lines := strings.Split(output.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "hello", lines[0])
	assert.Empty(t, lines[1])
	assert.Contains(t, lines[2], "oops")
}

func TestClose(t *testing.T) {
	t.Parallel()

	e, terminal, output := newForTesting(t, "")
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	assert.True(t, terminal.closed)
	assert.Contains(t, output.String(), "\x1b[?25h")
}

func TestAskWithLineEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "default answer selects the first item", input: "\r", expected: "apple"},
		{name: "label", input: "2\r", expected: "banana"},
		{name: "last label", input: "4\r", expected: "cherry"},
		{name: "unique prefix", input: "ban\r", expected: "banana"},
		{name: "tab completed item", input: "bl\t\r", expected: "blueberry"},
		{name: "retry after a miss", input: "nope\r2\r", expected: "banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _, output := newForTesting(t, tt.input)
			m := New("apple", "banana", "blueberry", "cherry").WithBanner(Plain("Fruit"))

			got, err := AskRepeatedly(t.Context(), e, m, "> ", Plain("Unknown fruit"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Zero(t, e.Depth())
			assert.Contains(t, output.String(), "   4) cherry\n")
		})
	}
}

func TestAskWithLineEngineRemovesCompleterOnFailure(t *testing.T) {
	t.Parallel()

	e, terminal, output := newForTesting(t, "nope\r")
	terminal.readErr = io.ErrUnexpectedEOF

	_, err := AskRepeatedly(t.Context(), e, New("a", "b"), "> ", Plain("Unknown"))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Zero(t, e.Depth())
	assert.Contains(t, output.String(), "Unknown\n")
}

func TestFindWordBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		cursor    int
		direction int
		expected  int
	}{
		{name: "forward over word", text: "git status", cursor: 0, direction: 1, expected: 3},
		{name: "forward skips separator", text: "git status", cursor: 3, direction: 1, expected: 10},
		{name: "backward to word start", text: "git status", cursor: 10, direction: -1, expected: 4},
		{name: "backward from start", text: "git", cursor: 0, direction: -1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := &LineEngine{buffer: []rune(tt.text), cursor: tt.cursor}
			assert.Equal(t, tt.expected, e.findWordBoundary(tt.direction))
		})
	}
}

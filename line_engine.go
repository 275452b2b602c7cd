package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-colorable"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line or input ends
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
)

// maxDisplayedSuggestions is the number of completion candidates shown at once.
const maxDisplayedSuggestions = 10

// Config holds the configuration for a LineEngine.
type Config struct {
	Completer CompleterFunc // Base completer used when no completer is pushed
	Theme     *Theme        // Colors (nil for ThemeDefault)
	KeyMap    *KeyMap       // Key bindings (nil for default)
	Output    io.Writer     // Output writer (nil for stdout)
	Logger    *log.Logger   // Logger for warnings (nil for stderr at warn level)
}

// Option represents a configuration option for LineEngine
type Option func(*Config)

// WithCompleter sets the base completer that is active when nothing is pushed
func WithCompleter(completer CompleterFunc) Option {
	return func(c *Config) {
		c.Completer = completer
	}
}

// WithTheme sets the color theme
func WithTheme(theme *Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithOutput sets the writer menus and prompts are printed to
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithLogger sets the logger used for terminal warnings
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// LineEngine is a terminal line editor implementing Engine.
//
// It reads keys from the controlling terminal in raw mode and supports a stack
// of completion providers. The default answer is shown dimmed while the line
// is empty and is returned when an empty line is submitted.
// A LineEngine is not safe for concurrent use.
type LineEngine struct {
	config     Config
	output     io.Writer
	buffer     []rune
	cursor     int
	prefix     string
	renderer   *renderer
	styles     *lipgloss.Renderer
	terminal   terminalInterface
	keyMap     *KeyMap
	completers []CompleterFunc
	unconsumed string
	logger     *log.Logger
}

// NewLineEngine creates a LineEngine attached to the controlling terminal.
//
// Example:
//
//	engine, err := menu.NewLineEngine(menu.WithTheme(menu.ThemeDracula))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer engine.Close()
//
//	res, err := menu.Ask(ctx, engine, menu.New("yes", "no"), "> ")
func NewLineEngine(options ...Option) (*LineEngine, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}
	return newFromConfig(config, terminal), nil
}

func newFromConfig(config Config, terminal terminalInterface) *LineEngine {
	if config.Theme == nil {
		config.Theme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "menu",
			Level:  log.WarnLevel,
		})
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
		if runtime.GOOS == "windows" {
			// Use colorable for Windows ANSI color support
			output = colorable.NewColorableStdout()
		}
	}

	return &LineEngine{
		config:   config,
		output:   output,
		renderer: newRenderer(output, config.Theme),
		styles:   lipgloss.NewRenderer(output),
		terminal: terminal,
		keyMap:   config.KeyMap,
		logger:   config.Logger,
	}
}

// PushCompleter makes c the active completer until the matching PopCompleter.
func (e *LineEngine) PushCompleter(c CompleterFunc) {
	e.completers = append(e.completers, c)
}

// PopCompleter removes the most recently pushed completer. Popping an empty
// stack is a no-op.
func (e *LineEngine) PopCompleter() {
	if len(e.completers) == 0 {
		e.logger.Warn("completer stack is already empty")
		return
	}
	e.completers[len(e.completers)-1] = nil
	e.completers = e.completers[:len(e.completers)-1]
}

// Depth returns the number of pushed completers.
func (e *LineEngine) Depth() int {
	return len(e.completers)
}

func (e *LineEngine) activeCompleter() CompleterFunc {
	if n := len(e.completers); n > 0 {
		return e.completers[n-1]
	}
	return e.config.Completer
}

// PrintLine writes t followed by a newline, styled for the output's color profile.
func (e *LineEngine) PrintLine(t Text) error {
	_, err := fmt.Fprintln(e.output, t.Render(e.styles))
	return err
}

// AskLine shows prompt and returns the submitted line, or def when the line
// is submitted empty. def is drawn as a placeholder until the first key is
// typed.
//
// The line can be cancelled through ctx; the context is checked between key
// presses. Ctrl+C returns ErrInterrupted, Ctrl+D on an empty line or the end
// of input returns ErrEOF.
func (e *LineEngine) AskLine(ctx context.Context, prompt, def string) (string, error) {
	if err := e.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := e.terminal.Restore(); err != nil {
			e.logger.Warn("failed to exit raw mode", "err", err)
		}
	}()

	e.prefix = prompt
	e.setBuffer("")
	e.renderer.placeholder = def
	defer func() { e.renderer.placeholder = "" }()
	if err := e.render(nil, 0, 0); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	var suggestions []Completion
	selected := 0
	offset := 0

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		r, err := e.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		var action KeyAction
		if r == '\x1b' {
			seq, err := e.readEscapeSequence()
			if err != nil {
				continue
			}
			action = e.keyMap.GetSequenceAction(seq)
		} else {
			action = e.keyMap.GetAction(r)
		}

		// Any action other than navigating the list closes it
		resetList := true

		switch action {
		case ActionSubmit:
			if len(suggestions) > 0 {
				suggestions = e.accept(suggestions[selected])
				selected, offset = 0, 0
				resetList = false
			} else {
				if len(e.buffer) == 0 {
					e.setBuffer(def)
					if err := e.render(nil, 0, 0); err != nil {
						return "", fmt.Errorf("failed to render: %w", err)
					}
				}
				fmt.Fprint(e.output, "\r\n")
				return string(e.buffer), nil
			}

		case ActionCancel:
			fmt.Fprint(e.output, "^C\r\n")
			return "", ErrInterrupted

		case ActionMoveLeft:
			if e.cursor > 0 {
				e.cursor--
			}

		case ActionMoveRight:
			if len(suggestions) > 0 {
				suggestions = e.accept(suggestions[selected])
				selected, offset = 0, 0
				resetList = false
			} else if e.cursor < len(e.buffer) {
				e.cursor++
			}

		case ActionMoveUp:
			resetList = false
			if selected > 0 {
				selected--
				if selected < offset {
					offset = selected
				}
			}

		case ActionMoveDown:
			resetList = false
			if selected < len(suggestions)-1 {
				selected++
				if selected >= offset+maxDisplayedSuggestions {
					offset = selected - maxDisplayedSuggestions + 1
				}
			}

		case ActionMoveHome:
			e.cursor = 0

		case ActionMoveEnd:
			e.cursor = len(e.buffer)

		case ActionMoveWordLeft:
			e.cursor = e.findWordBoundary(-1)

		case ActionMoveWordRight:
			e.cursor = e.findWordBoundary(1)

		case ActionDeleteChar:
			if r == '\x7f' || r == '\b' {
				if e.cursor > 0 {
					e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
					e.cursor--
				}
			} else if e.cursor < len(e.buffer) {
				e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
			}

		case ActionDeleteLine:
			e.setBuffer("")

		case ActionDeleteToEnd:
			e.buffer = e.buffer[:e.cursor]

		case ActionDeleteWordBack:
			if e.cursor > 0 {
				newPos := e.findWordBoundary(-1)
				e.buffer = append(e.buffer[:newPos], e.buffer[e.cursor:]...)
				e.cursor = newPos
			}

		case ActionComplete:
			resetList = false
			if len(suggestions) > 0 {
				suggestions = e.accept(suggestions[selected])
			} else {
				suggestions = e.complete()
			}
			selected, offset = 0, 0

		default:
			if r == '\x04' { // Ctrl+D
				if len(e.buffer) == 0 {
					fmt.Fprint(e.output, "\r\n")
					return "", ErrEOF
				}
			} else if r >= 32 && r != 127 {
				e.insertRune(r)
			}
		}

		if resetList {
			suggestions = nil
			selected, offset = 0, 0
		}

		if err := e.render(suggestions, selected, offset); err != nil {
			return "", fmt.Errorf("failed to render: %w", err)
		}
	}
}

// Close restores the cursor and releases the terminal. It is safe to call
// Close multiple times.
func (e *LineEngine) Close() error {
	if e.output != nil {
		fmt.Fprint(e.output, "\x1b[?25h") // Show cursor
	}
	if e.terminal != nil {
		return e.terminal.Close()
	}
	return nil
}

// query asks the active completer for candidates without applying any.
func (e *LineEngine) query() []Completion {
	completer := e.activeCompleter()
	if completer == nil {
		return nil
	}
	unconsumed, candidates := completer(string(e.buffer[:e.cursor]))
	e.unconsumed = unconsumed
	if len(candidates) == 0 {
		return nil
	}
	return candidates
}

// complete queries the active completer and applies a lone candidate directly.
func (e *LineEngine) complete() []Completion {
	candidates := e.query()
	if len(candidates) == 1 {
		return e.accept(candidates[0])
	}
	return candidates
}

// accept replaces the consumed text left of the cursor with c. A non-final
// completion shows the next set of candidates.
func (e *LineEngine) accept(c Completion) []Completion {
	left := string(e.buffer[:e.cursor])
	keep := e.unconsumed
	if !strings.HasPrefix(left, keep) {
		keep = left
	}

	newLeft := []rune(keep + c.Replacement)
	rest := e.buffer[e.cursor:]
	e.buffer = append(newLeft, rest...)
	e.cursor = len(newLeft)

	if c.Final {
		return nil
	}
	return e.query()
}

func (e *LineEngine) insertRune(r rune) {
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
}

func (e *LineEngine) setBuffer(text string) {
	e.buffer = []rune(text)
	e.cursor = len(e.buffer)
}

// findWordBoundary finds the next word boundary in the given direction.
//
// direction > 0 moves past the next word; direction < 0 moves to the start
// of the previous word. Words are runs of isWordChar characters.
func (e *LineEngine) findWordBoundary(direction int) int {
	if direction > 0 {
		pos := e.cursor
		for pos < len(e.buffer) && !isWordChar(e.buffer[pos]) {
			pos++
		}
		for pos < len(e.buffer) && isWordChar(e.buffer[pos]) {
			pos++
		}
		return pos
	}
	pos := e.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(e.buffer[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(e.buffer[pos-1]) {
		pos--
	}
	return pos
}

// isWordChar reports whether r is a letter, digit or underscore.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// render redraws the line. The terminal width is read on every frame so a
// resize takes effect on the next key.
func (e *LineEngine) render(suggestions []Completion, selected, offset int) error {
	if width, _, err := e.terminal.Size(); err == nil || width > 0 {
		e.renderer.width = width
	}
	return e.renderer.renderWithSuggestions(e.prefix, string(e.buffer), e.cursor, suggestions, selected, offset)
}

func (e *LineEngine) readRune() (rune, error) {
	r, _, err := e.terminal.ReadRune()
	return r, err
}

// readEscapeSequence reads the rest of an escape sequence after ESC. CSI
// sequences ("[" ...) end at the first byte in 0x40-0x7E; SS3 sequences
// ("O" x) are two runes long.
func (e *LineEngine) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 10)
	for i := 0; i < 10; i++ { // Limit to prevent infinite loop
		r, err := e.readRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		if len(seq) == 1 {
			if r != '[' && r != 'O' {
				return string(seq), nil
			}
			continue
		}
		if seq[0] == 'O' || (r >= 0x40 && r <= 0x7e) {
			return string(seq), nil
		}
	}
	return string(seq), nil
}

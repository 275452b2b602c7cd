package menu

import "io"

// mockTerminal implements terminalInterface for tests.
//
// It replays a fixed key sequence and then reports io.EOF, or readErr when
// one is set, so that failing reads can be simulated. Raw mode switches are
// only recorded.
type mockTerminal struct {
	input        []rune // Pre-configured input sequence
	inputPos     int    // Current position in the input sequence
	readErr      error  // Returned once input is exhausted (io.EOF when nil)
	rawMode      bool   // Raw mode state for test verification
	restores     int    // Number of Restore calls
	closed       bool
	terminalSize [2]int // Fixed terminal dimensions [width, height]
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restores++
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		if m.readErr != nil {
			return 0, 0, m.readErr
		}
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}

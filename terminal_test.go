package menu

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "simple input", input: "hello"},
		{name: "empty input", input: ""},
		{name: "unicode input", input: "こんにちは"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMockTerminal(tt.input)

			require.NoError(t, mock.SetRaw())
			assert.True(t, mock.rawMode)

			w, h, err := mock.Size()
			require.NoError(t, err)
			assert.Equal(t, 80, w)
			assert.Equal(t, 24, h)

			for i, want := range []rune(tt.input) {
				r, size, err := mock.ReadRune()
				require.NoError(t, err, "position %d", i)
				assert.Equal(t, want, r)
				assert.Equal(t, 1, size)
			}

			_, _, err = mock.ReadRune()
			assert.True(t, errors.Is(err, io.EOF))

			require.NoError(t, mock.Restore())
			assert.False(t, mock.rawMode)
			assert.Equal(t, 1, mock.restores)

			require.NoError(t, mock.Close())
			assert.True(t, mock.closed)
		})
	}
}

func TestMockTerminalReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("unplugged")
	mock := newMockTerminal("a")
	mock.readErr = readErr

	r, _, err := mock.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	_, _, err = mock.ReadRune()
	assert.ErrorIs(t, err, readErr)
}

func TestRealTerminalInterface(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	terminal, err := newRealTerminal()
	if err != nil {
		t.Skipf("Cannot create real terminal in this environment: %v", err)
	}
	defer terminal.Close()

	assert.NoError(t, terminal.SetRaw())
	assert.NoError(t, terminal.Restore())

	width, height, _ := terminal.Size()
	assert.Positive(t, width)
	assert.Positive(t, height)

	// Double close must not fail or panic
	assert.NoError(t, terminal.Close())
	assert.NoError(t, terminal.Close())
}

func TestRealTerminalCloseWithoutTTY(t *testing.T) {
	t.Parallel()

	terminal := &realTerminal{}
	assert.NoError(t, terminal.Close())
	assert.NoError(t, terminal.Restore(), "restore without saved state is a no-op")
}

func TestTerminalInterfaceCompliance(_ *testing.T) {
	var _ terminalInterface = (*realTerminal)(nil)
	var _ terminalInterface = (*mockTerminal)(nil)
}

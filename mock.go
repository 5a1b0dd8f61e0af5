package wizard

import (
	"io"
)

// mockTerminal implements terminalInterface with a scripted input sequence.
//
// It gives tests deterministic, side-effect-free behavior: the configured
// runes are replayed one by one, raw-mode switches are tracked for
// verification, and the size is fixed so layout assertions are stable.
type mockTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	rawCycles    int // number of SetRaw calls, for leak checks
	terminalSize [2]int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	m.rawCycles++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Close() error { return nil }

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name       string
		tty        bool
		env        map[string]string
		forcePlain bool
		noColor    bool
		noTTY      bool
		want       OutputMode
	}{
		{name: "terminal", tty: true, want: OutputModeInteractive},
		{name: "pipe", tty: false, want: OutputModePlain},
		{name: "forced plain", tty: true, forcePlain: true, want: OutputModePlain},
		{name: "no color flag", tty: true, noColor: true, want: OutputModePlain},
		{name: "NO_COLOR", tty: true, env: map[string]string{"NO_COLOR": "1"}, want: OutputModePlain},
		{name: "dumb terminal", tty: true, env: map[string]string{"TERM": "dumb"}, want: OutputModePlain},
		{name: "no tty flag", tty: true, noTTY: true, want: OutputModeStyled},
		{name: "CI", tty: true, env: map[string]string{"CI": "true"}, want: OutputModeStyled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CI", "")
			t.Setenv("TERM", "xterm-256color")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			withTerminal(t, tt.tty)

			assert.Equal(t, tt.want, DetectOutputMode(tt.forcePlain, tt.noColor, tt.noTTY))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}

func TestTerminalWidth_Default(t *testing.T) {
	// Test binaries do not run with a terminal on stdout.
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, defaultTerminalWidth, TerminalWidth())
}

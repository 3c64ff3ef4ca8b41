// Package iostreams wraps the standard streams of a command invocation and
// carries terminal capabilities (colors, interactivity) alongside them.
package iostreams

import (
	"bytes"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	colorEnabled bool
	is256enabled bool
	hasTrueColor bool

	stdinIsTTY  bool
	stdoutIsTTY bool
	stderrIsTTY bool
}

// ColorEnabled reports whether output should be colorized.
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

func (s *IOStreams) ColorSupport256() bool {
	return s.is256enabled
}

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal, i.e. whether prompting the user makes sense.
func (s *IOStreams) IsInteractive() bool {
	return s.stdinIsTTY && s.stdoutIsTTY
}

func (s *IOStreams) IsStdoutTTY() bool {
	return s.stdoutIsTTY
}

func (s *IOStreams) IsStderrTTY() bool {
	return s.stderrIsTTY
}

func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled(), s.ColorSupport256(), s.hasTrueColor)
}

// System returns an IOStreams bound to the process' standard streams.
func System() *IOStreams {
	stdinIsTTY := isTerminal(os.Stdin)
	stdoutIsTTY := isTerminal(os.Stdout)
	stderrIsTTY := isTerminal(os.Stderr)

	io := &IOStreams{
		In:           os.Stdin,
		Out:          colorable.NewColorable(os.Stdout),
		ErrOut:       colorable.NewColorable(os.Stderr),
		colorEnabled: EnvColorForced() || (!EnvColorDisabled() && stdoutIsTTY),
		is256enabled: Is256ColorSupported(),
		hasTrueColor: IsTrueColor(),
		stdinIsTTY:   stdinIsTTY,
		stdoutIsTTY:  stdoutIsTTY,
		stderrIsTTY:  stderrIsTTY,
	}

	return io
}

// Test returns an IOStreams suitable for tests along with the buffers backing
// its streams.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := new(bytes.Buffer)
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)

	streams := &IOStreams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}

	return streams, in, out, errOut
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

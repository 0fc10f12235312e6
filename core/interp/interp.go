// Package interp implements the parsing-to-execution core of duosh:
// tokenization, builtin dispatch, external process launch and two stage
// pipeline orchestration.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Interp executes parsed invocations against the host OS. The zero value is
// not usable; call New.
type Interp struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// MaxArgs caps the tokenizer. Values <= 0 mean DefaultMaxArgs.
	MaxArgs int

	// ErrColor, when set, colors user-facing diagnostics.
	ErrColor *color.Color

	// LastStatus is the exit status of the most recently completed external
	// command or pipeline.
	LastStatus int
}

// New returns an interpreter wired to the process's standard streams.
func New() *Interp {
	return &Interp{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		MaxArgs: DefaultMaxArgs,
	}
}

// RunLine parses and dispatches one newline-stripped input line. The result
// reports whether the session should continue. Parse failures are reported
// and discard the line; they never stop the session.
func (in *Interp) RunLine(line string) bool {
	inv, err := Parse(line, in.MaxArgs)
	if err != nil {
		in.reportf("%v", err)
		return true
	}
	return in.Execute(inv)
}

// Execute dispatches one parsed invocation: pipeline, builtin or external
// launch. The result is false only for the exit builtin.
func (in *Interp) Execute(inv *Invocation) bool {
	if inv.Pipe != nil {
		in.LastStatus = in.runPipeline(inv.Pipe)
		return true
	}

	cmd := inv.Cmd
	if len(cmd) == 0 {
		return true // blank input
	}

	if b, ok := builtins[cmd.Name()]; ok {
		if b.run == nil {
			in.reportf("%s: builtin not implemented", cmd.Name())
			return true
		}
		return b.run(in, cmd)
	}

	in.LastStatus = in.launch(cmd)
	return true
}

// reportf writes a user-facing diagnostic to the session's stderr.
func (in *Interp) reportf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if in.ErrColor != nil {
		msg = in.ErrColor.Sprint(msg)
	}
	fmt.Fprintf(in.Stderr, "duosh: %s\n", msg)
}

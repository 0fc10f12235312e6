// Package core ties the duosh interpreter to an interactive terminal
// session.
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"os/user"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/duosh/duosh/core/config"
	"github.com/duosh/duosh/core/interp"
)

const (
	// DefaultPrompt is used when the configured template is empty.
	DefaultPrompt = `\u@\h:\w\$ `

	farewell = "exit"
)

// Shell is one interactive session: a readline loop feeding the
// interpreter one line per dispatch cycle.
type Shell struct {
	Interp   *interp.Interp
	Readline *readline.Instance

	prompt  string
	toClose listCloser
}

// SessionIO carries the streams a session runs on. IsTerminal gates prompt
// drawing and diagnostic coloring.
type SessionIO struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal bool
}

// StdSessionIO returns the process's own terminal streams.
func StdSessionIO() SessionIO {
	return SessionIO{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewShell builds a session from the configuration.
func NewShell(cfg *config.Configuration, sio SessionIO) (*Shell, error) {
	rlCfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(sio.Stdin),
		Stdout:      sio.Stdout,
		Stderr:      sio.Stderr,
		HistoryFile: cfg.HistoryFile,
		FuncIsTerminal: func() bool {
			return sio.IsTerminal
		},
	}

	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	in := interp.New()
	in.Stdin = sio.Stdin
	in.Stdout = sio.Stdout
	in.Stderr = sio.Stderr
	in.MaxArgs = cfg.MaxArgs
	if cfg.ShouldColor(sio.IsTerminal) {
		in.ErrColor = color.New(color.FgRed, color.Bold)
	}

	shell := &Shell{
		Interp:   in,
		Readline: rl,
		prompt:   cfg.Prompt,
	}
	shell.toClose = append(shell.toClose, rl)

	return shell, nil
}

// Prompt renders the PS1 style template for the current process state.
func (s *Shell) Prompt() string {
	prompt := s.prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	username := os.Getenv("USER")
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	prompt = strings.ReplaceAll(prompt, `\u`, username)

	host, _ := os.Hostname()
	prompt = strings.ReplaceAll(prompt, `\h`, host)

	pwd, _ := os.Getwd()
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)

	if os.Geteuid() == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

// Run reads and dispatches lines until exit or end-of-input. The session's
// own exit is always success; individual command failures only get
// reported.
//
// SIGINT is ignored for the duration of the session so a user interrupt
// reaches the running child instead of the interpreter. The ignore is a Go
// handler, not SIG_IGN, so exec'd children start with default disposition.
func (s *Shell) Run() error {
	defer ignoreInterrupts()()

	defer fmt.Fprintln(s.Interp.Stdout, farewell)

	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return nil // input closed, same as exit

		case err == readline.ErrInterrupt:
			continue // ^C at the prompt clears the line

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(strings.TrimSpace(line)) == 0:
			continue // empty line

		default:
			if !s.Interp.RunLine(line) {
				return nil
			}
		}
	}
}

// RunCommand dispatches a single line without entering the interactive
// loop, returning the last command's exit status.
func (s *Shell) RunCommand(line string) int {
	s.Interp.RunLine(line)
	return s.Interp.LastStatus
}

func (s *Shell) Close() error {
	return s.toClose.Close()
}

// ignoreInterrupts diverts SIGINT into a drain goroutine so the session
// survives a user interrupt. The returned restore undoes the diversion and
// only returns once the drain goroutine has exited.
func ignoreInterrupts() (restore func()) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range interrupts {
		}
	}()

	return func() {
		signal.Stop(interrupts)
		close(interrupts)
		<-done
	}
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

package interp

import (
	"errors"
	"os/exec"
	"syscall"
)

// statusStartFailed is reported when a child could not be created or its
// program image could not be taken on, mirroring the shell convention for
// "command not found".
const statusStartFailed = 127

// launch runs one external command and blocks until it has resolved,
// returning its exit status. The program is located through the host's PATH
// search. A start failure is reported and treated as a no-op for the line.
//
// Children begin with default SIGINT disposition even though the session
// ignores the signal: the session's ignore is a Go handler, and installed
// handlers do not survive exec.
func (in *Interp) launch(cmd Command) int {
	c := exec.Command(cmd.Name(), cmd[1:]...)
	c.Stdin = in.Stdin
	c.Stdout = in.Stdout
	c.Stderr = in.Stderr

	if err := c.Start(); err != nil {
		in.reportf("%s: %v", cmd.Name(), err)
		return statusStartFailed
	}

	return reap(c)
}

// reap waits until the child has exited or been terminated by a signal and
// returns its exit status. A merely stopped child (e.g. SIGTSTP) does not
// satisfy the wait.
func reap(c *exec.Cmd) int {
	err := c.Wait()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}

	// Wait itself failed (e.g. an IO copy error); the child is still reaped.
	return statusStartFailed
}

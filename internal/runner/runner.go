// Package runner executes the wrapped command through a shell and measures
// its wall-clock duration.
//
// The command tokens are joined with single spaces and handed to `sh -c`
// unescaped, so shell metacharacters in arguments are interpreted by the
// shell. The child's exit status is recorded but never treated as a failure,
// and the child is always waited for: there is no cancellation.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"ddeventwrap/internal/event"
	logx "ddeventwrap/pkg/logx"
)

// DefaultShell interprets the joined command line.
const DefaultShell = "/bin/sh"

var ErrEmptyCommand = errors.New("runner: empty command")

// Result describes one finished execution. Start and End are rounded to
// tenths of a second.
type Result struct {
	Start    time.Time
	End      time.Time
	ExitCode int
}

// Elapsed returns End-Start.
func (r Result) Elapsed() time.Duration { return r.End.Sub(r.Start) }

type Runner struct {
	Shell string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Now is the wall clock; tests replace it.
	Now func() time.Time
	Log logx.Logger
}

// New returns a Runner wired to the process's own standard streams.
func New(log logx.Logger) *Runner {
	return &Runner{
		Shell:  DefaultShell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
		Log:    log,
	}
}

// Run blocks until the shell exits. It only returns an error when the shell
// could not be started or waited on; a non-zero exit is reported in
// Result.ExitCode.
func (r *Runner) Run(cmd []string) (Result, error) {
	if len(cmd) == 0 {
		return Result{}, ErrEmptyCommand
	}
	line := event.JoinCommand(cmd)
	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	c := exec.Command(shell, "-c", line)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	res := Result{Start: event.RoundTenth(now())}
	if err := c.Start(); err != nil {
		return Result{}, fmt.Errorf("start %s: %w", shell, err)
	}
	err := c.Wait()
	res.End = event.RoundTenth(now())

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("wait %s: %w", shell, err)
	}

	r.Log.Debug("command finished",
		logx.String("command", line),
		logx.Int("exit_code", res.ExitCode),
		logx.Duration("elapsed", res.Elapsed()),
	)
	return res, nil
}

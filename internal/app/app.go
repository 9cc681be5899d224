// Package app wires the wrapper's pipeline: resolve settings, send the start
// event, run the command, send the end event. Every outcome is mapped to a
// process exit code; nothing here calls os.Exit.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ddeventwrap/internal/cli"
	"ddeventwrap/internal/config"
	"ddeventwrap/internal/datadog"
	"ddeventwrap/internal/event"
	"ddeventwrap/internal/notifier"
	"ddeventwrap/internal/runner"
	logx "ddeventwrap/pkg/logx"
)

const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

// CommandRunner executes the wrapped command.
type CommandRunner interface {
	Run(cmd []string) (runner.Result, error)
}

// SenderFactory builds the event sender once settings are known. It is not
// called in dry-run mode.
type SenderFactory func(s config.Settings, log logx.Logger) (notifier.Sender, error)

type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    config.LookupFunc

	// Runner defaults to a shell runner on the process's standard streams.
	Runner    CommandRunner
	NewSender SenderFactory
}

// New returns an App bound to the real process environment.
func New() *App {
	return &App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Env:       os.LookupEnv,
		NewSender: DatadogSender,
	}
}

// DatadogSender is the production SenderFactory.
func DatadogSender(s config.Settings, log logx.Logger) (notifier.Sender, error) {
	return datadog.New(datadog.Config{
		APIKey: s.APIKey,
		AppKey: s.AppKey,
		Host:   s.APIHost,
	}, log)
}

// Run executes one invocation with args (without the program name) and
// returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		cli.Usage(a.Stdout, err.Error())
		return ExitUsage
	}
	if parsed.Help {
		cli.Usage(a.Stdout, "")
		return ExitOK
	}

	opts := parsed.Options
	bootLog := logx.NewConsole(a.Stderr, logLevel(opts.Debug || opts.DryRun, ""))

	resolver := config.NewResolver(a.Stdout, bootLog.With(logx.String("comp", "config")))
	if a.Env != nil {
		resolver.Env = a.Env
	}
	s, err := resolver.Resolve(opts)
	if err != nil {
		var ce *config.ConfigurationError
		if errors.As(err, &ce) {
			cli.Usage(a.Stdout, ce.Error())
			return ExitUsage
		}
		fmt.Fprintln(a.Stderr, "fatal:", err)
		return ExitFatal
	}

	logSvc, log := logx.New(logx.Config{
		Level: logLevel(s.Debug, s.Logging.Level),
		Out:   a.Stderr,
		File:  logx.FileConfig{Enabled: s.Logging.File != "", Path: s.Logging.File},
	})
	defer logSvc.Close()
	log = log.With(logx.String("comp", "app"))

	return a.run(ctx, s, log)
}

func (a *App) run(ctx context.Context, s config.Settings, log logx.Logger) int {
	var sender notifier.Sender
	if !s.DryRun {
		newSender := a.NewSender
		if newSender == nil {
			newSender = DatadogSender
		}
		snd, err := newSender(s, log)
		if err != nil {
			log.Error("initialize event sender", logx.Err(err))
			fmt.Fprintln(a.Stderr, "fatal:", err)
			return ExitFatal
		}
		if c, ok := snd.(io.Closer); ok {
			defer c.Close()
		}
		sender = snd
	}
	n := notifier.New(s, sender, a.Stdout, log)

	if code, stop := a.deliver(ctx, n, s, event.PhaseStart, event.Start(s), log); stop {
		return code
	}

	if s.Debug {
		fmt.Fprintln(a.Stdout, "Executing: "+event.JoinCommand(s.Command))
	}
	r := a.Runner
	if r == nil {
		r = runner.New(log.With(logx.String("comp", "runner")))
	}
	res, err := r.Run(s.Command)
	if err != nil {
		log.Error("command could not be run", logx.Err(err))
		fmt.Fprintln(a.Stderr, "fatal:", err)
		return ExitFatal
	}

	if code, stop := a.deliver(ctx, n, s, event.PhaseEnd, event.End(s, res.Start, res.End), log); stop {
		return code
	}
	return ExitOK
}

// deliver sends one event and applies the ignore-event-errors policy.
// stop is true when the run must end with code.
func (a *App) deliver(ctx context.Context, n *notifier.Notifier, s config.Settings, phase event.Phase, ev event.Event, log logx.Logger) (code int, stop bool) {
	err := n.Notify(ctx, phase, ev)
	if err == nil {
		return ExitOK, false
	}
	if notifier.IsValidation(err) {
		if s.IgnoreEventErrors {
			log.Warn("event error ignored", logx.String("phase", string(phase)), logx.Err(err))
			return ExitOK, false
		}
		fmt.Fprintf(a.Stdout, "Could not create %s event: %v\n", phase, err)
		return ExitUsage, true
	}
	log.Error("event delivery failed", logx.String("phase", string(phase)), logx.Err(err))
	fmt.Fprintln(a.Stderr, "fatal:", err)
	return ExitFatal, true
}

func logLevel(debug bool, configured string) string {
	if debug {
		return "DEBUG"
	}
	if configured != "" {
		return configured
	}
	return "WARN"
}

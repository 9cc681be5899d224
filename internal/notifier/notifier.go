package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ddeventwrap/internal/config"
	"ddeventwrap/internal/datadog"
	"ddeventwrap/internal/event"
	logx "ddeventwrap/pkg/logx"
)

var ErrNoSender = errors.New("notifier: no sender configured")

// Sender delivers one event to the monitoring service.
type Sender interface {
	CreateEvent(ctx context.Context, ev event.Event) error
}

type Notifier struct {
	out    io.Writer
	sender Sender
	log    logx.Logger

	dryRun bool
	debug  bool
}

// New builds a Notifier for s. sender may be nil in dry-run mode.
func New(s config.Settings, sender Sender, out io.Writer, log logx.Logger) *Notifier {
	if out == nil {
		out = logx.Stdout()
	}
	return &Notifier{
		out:    out,
		sender: sender,
		log:    log.With(logx.String("comp", "notifier")),
		dryRun: s.DryRun,
		debug:  s.Debug || s.DryRun,
	}
}

// Notify prints ev when debugging and sends it unless this is a dry run.
func (n *Notifier) Notify(ctx context.Context, phase event.Phase, ev event.Event) error {
	if n.debug {
		Print(n.out, ev)
	}
	if n.dryRun {
		n.log.Debug("dry run, event not sent", logx.String("phase", string(phase)))
		return nil
	}
	if n.sender == nil {
		return ErrNoSender
	}
	if err := n.sender.CreateEvent(ctx, ev); err != nil {
		n.log.Debug("event delivery failed", logx.String("phase", string(phase)), logx.Err(err))
		return err
	}
	n.log.Debug("event sent", logx.String("phase", string(phase)), logx.Strings("tags", ev.Tags))
	return nil
}

// IsValidation reports whether err is a refusal of the event itself rather
// than a transport or server failure.
func IsValidation(err error) bool {
	var ve *datadog.ValidationError
	return errors.As(err, &ve)
}

// Print writes ev in the wrapper's human-readable debug layout.
func Print(w io.Writer, ev event.Event) {
	var b strings.Builder
	b.WriteString("\n--- EVENT ---\n")
	b.WriteString("Title: " + ev.Title + "\n")
	b.WriteString("Text: " + ev.Text + "\n")
	b.WriteString("Tags: \n")
	for _, tag := range ev.Tags {
		b.WriteString("\t" + tag + "\n")
	}
	b.WriteString("\n\n")
	_, _ = fmt.Fprint(w, b.String())
}

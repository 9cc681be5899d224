package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"ddeventwrap/internal/config"
	"ddeventwrap/internal/datadog"
	"ddeventwrap/internal/event"
	logx "ddeventwrap/pkg/logx"
)

type fakeSender struct {
	err  error
	sent []event.Event
}

func (f *fakeSender) CreateEvent(_ context.Context, ev event.Event) error {
	f.sent = append(f.sent, ev)
	return f.err
}

var testEvent = event.Event{Title: "Starting `x`", Text: "Starting `x`", Tags: []string{"a:b", "c:d"}}

func TestNotifyDryRunPrintsAndNeverSends(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	s := &fakeSender{}
	n := New(config.Settings{DryRun: true}, s, &out, logx.Nop())
	if err := n.Notify(context.Background(), event.PhaseStart, testEvent); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(s.sent) != 0 {
		t.Fatalf("dry run sent %d events", len(s.sent))
	}
	want := "\n--- EVENT ---\nTitle: Starting `x`\nText: Starting `x`\nTags: \n\ta:b\n\tc:d\n\n\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestNotifyDryRunWithoutSender(t *testing.T) {
	t.Parallel()
	n := New(config.Settings{DryRun: true}, nil, &bytes.Buffer{}, logx.Nop())
	if err := n.Notify(context.Background(), event.PhaseEnd, testEvent); err != nil {
		t.Fatalf("Notify: %v", err)
	}
}

func TestNotifyDebugPrintsThenSends(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	s := &fakeSender{}
	n := New(config.Settings{Debug: true}, s, &out, logx.Nop())
	if err := n.Notify(context.Background(), event.PhaseStart, testEvent); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(s.sent) != 1 {
		t.Fatalf("sent %d events, want 1", len(s.sent))
	}
	if out.Len() == 0 {
		t.Fatal("debug mode should print the event")
	}
}

func TestNotifyQuietSend(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	s := &fakeSender{}
	n := New(config.Settings{}, s, &out, logx.Nop())
	if err := n.Notify(context.Background(), event.PhaseStart, testEvent); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
	if len(s.sent) != 1 {
		t.Fatalf("sent %d events, want 1", len(s.sent))
	}
}

func TestNotifyReturnsSenderError(t *testing.T) {
	t.Parallel()
	ve := &datadog.ValidationError{StatusCode: 400, Reasons: []string{"bad"}}
	n := New(config.Settings{}, &fakeSender{err: ve}, &bytes.Buffer{}, logx.Nop())
	err := n.Notify(context.Background(), event.PhaseStart, testEvent)
	if !errors.Is(err, ve) {
		t.Fatalf("err = %v, want sender error", err)
	}
	if !IsValidation(err) {
		t.Fatal("IsValidation = false for ValidationError")
	}
	if IsValidation(fmt.Errorf("transport: %w", errors.New("refused"))) {
		t.Fatal("IsValidation = true for transport error")
	}
}

func TestNotifyWithoutSender(t *testing.T) {
	t.Parallel()
	n := New(config.Settings{}, nil, &bytes.Buffer{}, logx.Nop())
	if err := n.Notify(context.Background(), event.PhaseStart, testEvent); !errors.Is(err, ErrNoSender) {
		t.Fatalf("err = %v, want ErrNoSender", err)
	}
}

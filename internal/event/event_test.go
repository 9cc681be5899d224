package event

import (
	"reflect"
	"testing"
	"time"

	"ddeventwrap/internal/config"
)

func at(sec float64) time.Time {
	return time.Unix(0, int64(sec*float64(time.Second)))
}

func TestStartEvent(t *testing.T) {
	t.Parallel()
	s := config.Settings{
		Command:   []string{"deploy.sh", "--env", "prod west"},
		StartTags: []string{"phase:start"},
		EndTags:   []string{"phase:end"},
		EventTags: []string{"app:web", "team:ops"},
	}
	ev := Start(s)
	if want := "Starting `deploy.sh --env prod west`"; ev.Title != want {
		t.Fatalf("Title = %q, want %q", ev.Title, want)
	}
	if ev.Text != ev.Title {
		t.Fatalf("Text = %q, want title", ev.Text)
	}
	if want := []string{"phase:start", "app:web", "team:ops"}; !reflect.DeepEqual(ev.Tags, want) {
		t.Fatalf("Tags = %v, want %v", ev.Tags, want)
	}
	if len(s.StartTags) != 1 {
		t.Fatalf("event tags leaked into settings: %v", s.StartTags)
	}
}

func TestEndEvent(t *testing.T) {
	t.Parallel()
	s := config.Settings{
		Command:   []string{"make", "release"},
		EndTags:   []string{"phase:end"},
		EventTags: []string{"app:web"},
	}
	ev := End(s, at(100.0), at(102.3))
	if want := "Finished `make release`"; ev.Title != want {
		t.Fatalf("Title = %q, want %q", ev.Title, want)
	}
	if want := "Completed in 2.3 seconds."; ev.Text != want {
		t.Fatalf("Text = %q, want %q", ev.Text, want)
	}
	if want := []string{"phase:end", "app:web"}; !reflect.DeepEqual(ev.Tags, want) {
		t.Fatalf("Tags = %v, want %v", ev.Tags, want)
	}
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{name: "exact tenths", start: at(100.0), end: at(102.3), want: "2.3"},
		{name: "whole seconds", start: at(100.0), end: at(102.0), want: "2.0"},
		{name: "instant", start: at(100.0), end: at(100.0), want: "0.0"},
		{name: "end rounds down", start: at(100.0), end: at(102.34), want: "2.3"},
		{name: "rounded before subtracting", start: at(100.04), end: at(102.36), want: "2.4"},
		{name: "long run", start: at(1_700_000_000.0), end: at(1_700_003_661.5), want: "3661.5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatElapsed(tt.start, tt.end); got != tt.want {
				t.Fatalf("FormatElapsed = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTenth(t *testing.T) {
	t.Parallel()
	got := RoundTenth(time.Unix(100, 349_000_000))
	if want := time.Unix(100, 300_000_000); !got.Equal(want) {
		t.Fatalf("RoundTenth = %v, want %v", got, want)
	}
}

// Package event builds the start and end notifications for a wrapped command.
package event

import (
	"strconv"
	"strings"
	"time"

	"ddeventwrap/internal/config"
)

// Phase names which side of the command an event describes.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseEnd   Phase = "end"
)

// Event is one notification for the monitoring service.
type Event struct {
	Title string
	Text  string
	Tags  []string
}

// JoinCommand renders the command for display: tokens joined by a single
// space, without quoting.
func JoinCommand(cmd []string) string { return strings.Join(cmd, " ") }

// Start builds the event sent before the command runs.
func Start(s config.Settings) Event {
	title := "Starting `" + JoinCommand(s.Command) + "`"
	return Event{
		Title: title,
		Text:  title,
		Tags:  concat(s.StartTags, s.EventTags),
	}
}

// End builds the event sent after the command returned. start and end are
// expected to be already rounded by RoundTenth.
func End(s config.Settings, start, end time.Time) Event {
	return Event{
		Title: "Finished `" + JoinCommand(s.Command) + "`",
		Text:  "Completed in " + FormatElapsed(start, end) + " seconds.",
		Tags:  concat(s.EndTags, s.EventTags),
	}
}

// RoundTenth rounds t to the nearest tenth of a second.
func RoundTenth(t time.Time) time.Time {
	return t.Round(100 * time.Millisecond)
}

// FormatElapsed renders end-start in seconds with one decimal place. Both
// timestamps are rounded to tenths first, then subtracted.
func FormatElapsed(start, end time.Time) string {
	tenths := RoundTenth(end).Sub(RoundTenth(start)) / (100 * time.Millisecond)
	return strconv.FormatFloat(float64(tenths)/10, 'f', 1, 64)
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

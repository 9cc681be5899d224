package logx

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConsoleLoggerLevelAndFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := NewConsole(&buf, "WARN").With(String("comp", "test"))

	log.Debug("hidden")
	log.Warn("shown", Int("n", 7), Err(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at WARN: %q", out)
	}
	for _, want := range []string{"shown", "comp", "test", "boom", "logging_test.go:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %q", want, out)
		}
	}
	if log.Enabled(LevelDebug) || log.Enabled(LevelInfo) || !log.Enabled(LevelWarn) || !log.Enabled(LevelError) {
		t.Fatal("Enabled disagrees with WARN level")
	}
}

func TestServiceWritesJSONFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "wrap.log")
	var console bytes.Buffer
	svc, log := New(Config{Level: "DEBUG", Out: &console, File: FileConfig{Enabled: true, Path: path}})
	log.Debug("to both", String("k", "v"))
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"k":"v"`) || !strings.Contains(string(b), `"message":"to both"`) {
		t.Fatalf("file output = %q", string(b))
	}
	if !strings.Contains(console.String(), "to both") {
		t.Fatalf("console output = %q", console.String())
	}
}

func TestZeroLoggerIsNop(t *testing.T) {
	t.Parallel()
	var l Logger
	if !l.IsZero() {
		t.Fatal("zero Logger should report IsZero")
	}
	l.Error("nothing happens")
	Nop().Info("nothing happens")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in, zerolog.InfoLevel); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// Package cli parses the wrapper's command line and renders its usage text.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"ddeventwrap/internal/config"
)

// Name is the program name shown in the usage text.
const Name = "ddEventWrap"

// ArgumentError wraps a flag parsing failure.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }
func (e *ArgumentError) Unwrap() error { return e.Err }

// Parsed is the outcome of Parse.
type Parsed struct {
	Options config.Options
	Help    bool
}

// Parse reads args (without the program name). Flag parsing stops at the
// first non-flag argument or at "--"; everything after it is the command.
func Parse(args []string) (Parsed, error) {
	var p Parsed
	o := &p.Options

	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVarP(&p.Help, "help", "h", false, "show help")
	fs.StringVarP(&o.ConfigPath, "config", "c", config.DefaultPath, "path to the configuration file")
	fs.VarP(tagList{&o.EventTags}, "tag", "t", "tag for every event (repeatable)")
	fs.Var(tagList{&o.EventTags}, "eventtag", "tag for every event (repeatable)")
	fs.VarP(tagList{&o.StartTags}, "starttag", "s", "tag for the start event (repeatable)")
	fs.VarP(tagList{&o.EndTags}, "endtag", "e", "tag for the end event (repeatable)")
	fs.BoolVarP(&o.Debug, "debug", "d", false, "enable debug mode")
	fs.BoolVar(&o.DryRun, "dryrun", false, "enable debug mode and skip event creation")
	fs.BoolVar(&o.IgnoreEventErrors, "ignore-event-errors", false, "ignore errors during event creation")

	if err := fs.Parse(args); err != nil {
		return Parsed{}, &ArgumentError{Err: err}
	}
	if rest := fs.Args(); len(rest) > 0 {
		o.Command = append([]string(nil), rest...)
	}
	return p, nil
}

// tagList appends every occurrence to a shared slice, so aliases of one
// flag (-t, --tag, --eventtag) keep their relative order.
type tagList struct{ dst *[]string }

func (t tagList) String() string {
	if t.dst == nil {
		return ""
	}
	return strings.Join(*t.dst, ",")
}

func (t tagList) Set(v string) error {
	*t.dst = append(*t.dst, v)
	return nil
}

func (t tagList) Type() string { return "tag" }

// Usage prints the help text, preceded by errMsg when it is not empty.
func Usage(w io.Writer, errMsg string) {
	var b strings.Builder
	if errMsg != "" {
		b.WriteString(errMsg + "\n\n")
	}
	b.WriteString("Datadog Event Wrapper\n")
	b.WriteString("\tLogs events using the DataDog API when the given command starts and finishes\n")
	b.WriteString("\nUsage:\n")
	b.WriteString("\t" + Name + " <options> [--] <command>\n")
	b.WriteString("\nOptions:\n")
	for _, line := range []string{
		"-c=/some/config.yaml, --config=/some/config.yaml - Path to the configuration file. Defaults to " + config.DefaultPath,
		"-t=sometag:somevalue, --tag=sometag:somevalue, --eventtag=sometag:somevalue - Additional tag to include for all the events triggered",
		"-s=sometag:somevalue, --starttag=sometag:somevalue - Additional tag to include for the start event triggered",
		"-e=sometag:somevalue, --endtag=sometag:somevalue - Additional tag to include for the end event triggered",
		"-d, --debug - Enable debug mode",
		"--dryrun - Enable debug mode and skip event creation",
		"--ignore-event-errors - Ignore errors that happen during event creation",
		"-h, --help - Show this help",
	} {
		b.WriteString("\t" + line + "\n")
	}
	fmt.Fprint(w, b.String())
}

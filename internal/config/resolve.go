package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	logx "ddeventwrap/pkg/logx"
)

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Environment variable names, in lookup order. The lower-case names are the
// tool's own; the DD_* names are the Datadog agent convention.
var (
	apiKeyEnv  = []string{"datadog_api_key", "DD_API_KEY"}
	appKeyEnv  = []string{"datadog_app_key", "DD_APP_KEY"}
	apiHostEnv = []string{"datadog_api_host", "DD_API_HOST"}
)

// Resolver merges CLI options, the configuration document and the
// environment into one Settings.
type Resolver struct {
	// Out receives user-facing notices (document errors, debug dumps).
	Out io.Writer
	Log logx.Logger
	Env LookupFunc
}

func NewResolver(out io.Writer, log logx.Logger) *Resolver {
	return &Resolver{Out: out, Log: log, Env: os.LookupEnv}
}

// Resolve produces the effective settings. It fails with *ConfigurationError
// when no command was given or, outside dry-run mode, credentials are missing
// after every fallback. A broken document is reported and skipped.
func (r *Resolver) Resolve(opts Options) (Settings, error) {
	if len(opts.Command) == 0 {
		return Settings{}, &ConfigurationError{Err: ErrNoCommand}
	}

	b := NewBuilder().
		ConfigPath(opts.ConfigPath).
		Command(opts.Command).
		AddStartTags(opts.StartTags...).
		AddEndTags(opts.EndTags...).
		AddEventTags(opts.EventTags...).
		Debug(opts.Debug).
		DryRun(opts.DryRun).
		IgnoreEventErrors(opts.IgnoreEventErrors)
	debug := b.s.Debug
	path := b.s.ConfigPath
	log := r.Log.With(logx.String("config", path))

	var apiKey, appKey, apiHost string
	doc, err := LoadDocument(path)
	switch {
	case err != nil:
		log.Warn("config document ignored", logx.Err(err))
		fmt.Fprintln(r.out(), "There was an error processing your configuration file:")
		fmt.Fprintln(r.out(), err)
	case doc == nil:
		log.Debug("config document not found or not a regular file")
	default:
		if debug {
			fmt.Fprintln(r.out(), "--- CONFIG FILE ---")
			fmt.Fprintln(r.out(), doc.Redacted())
		}
		apiKey = deref(doc.APIKey)
		appKey = deref(doc.AppKey)
		apiHost = deref(doc.APIHost)
		b.AddStartTags(doc.StartTags...).
			AddEndTags(doc.EndTags...).
			AddEventTags(doc.EventTags...).
			Logging(doc.LogLevel, doc.LogFile)
		if doc.IgnoreEventErrors != nil {
			b.IgnoreEventErrors(*doc.IgnoreEventErrors)
		}
	}

	if apiHost == "" {
		apiHost, _ = r.lookup(apiHostEnv)
	}
	b.APIHost(apiHost)

	apiKey, apiFound := r.credential(apiKey, apiKeyEnv)
	appKey, appFound := r.credential(appKey, appKeyEnv)
	b.Credentials(apiKey, appKey)

	s := b.Build()
	if !s.DryRun {
		switch {
		case !apiFound || !appFound:
			return Settings{}, &ConfigurationError{Err: ErrCredentialsUnset}
		case strings.TrimSpace(s.APIKey) == "":
			return Settings{}, &ConfigurationError{Err: ErrAPIKeyEmpty}
		case strings.TrimSpace(s.AppKey) == "":
			return Settings{}, &ConfigurationError{Err: ErrAppKeyEmpty}
		}
	}

	log.Debug("settings resolved",
		logx.Bool("dry_run", s.DryRun),
		logx.Bool("ignore_event_errors", s.IgnoreEventErrors),
		logx.String("api_host", s.APIHost),
		logx.String("api_key", Mask(s.APIKey)),
		logx.String("app_key", Mask(s.AppKey)),
	)
	return s, nil
}

// credential prefers a non-empty document value, then the environment.
// found reports whether any source defined the key, even as empty.
func (r *Resolver) credential(fromDoc string, names []string) (value string, found bool) {
	if fromDoc != "" {
		return fromDoc, true
	}
	return r.lookup(names)
}

func (r *Resolver) lookup(names []string) (string, bool) {
	env := r.Env
	if env == nil {
		env = os.LookupEnv
	}
	var (
		first string
		found bool
	)
	for _, n := range names {
		v, ok := env(n)
		if !ok {
			continue
		}
		if v != "" {
			return v, true
		}
		if !found {
			first, found = v, true
		}
	}
	return first, found
}

func (r *Resolver) out() io.Writer {
	if r.Out == nil {
		return logx.Stdout()
	}
	return r.Out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

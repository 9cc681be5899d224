package config

// DefaultPath is the configuration document looked up in the working
// directory when --config is not given.
const DefaultPath = "datadogEventWrap.yaml"

// DefaultAPIHost is the Datadog API endpoint used when neither the document
// nor the environment names one.
const DefaultAPIHost = "https://api.datadoghq.com"

// Options holds what the command line supplied, before any other source is
// consulted. Tag slices keep flag-occurrence order.
type Options struct {
	ConfigPath string

	StartTags []string
	EndTags   []string
	EventTags []string

	Debug  bool
	DryRun bool

	// IgnoreEventErrors is replaced by the document's value when the
	// document sets one.
	IgnoreEventErrors bool

	Command []string
}

// Settings is the effective configuration of one run. It is produced once by
// a Builder and must not be mutated afterwards.
type Settings struct {
	APIKey  string
	AppKey  string
	APIHost string

	StartTags []string
	EndTags   []string
	EventTags []string

	DryRun            bool
	Debug             bool
	IgnoreEventErrors bool

	Command []string

	// ConfigPath is the document path that was consulted (it may not exist).
	ConfigPath string

	Logging LoggingSettings
}

// LoggingSettings controls the diagnostic log sinks.
type LoggingSettings struct {
	Level string
	File  string
}

// Document is the optional YAML configuration file. Unknown keys are ignored.
//
// Scalars are pointers so we can distinguish "omitted" from an explicit zero
// value (e.g. ignore_event_errors: false).
type Document struct {
	APIKey  *string `yaml:"datadog_api_key"`
	AppKey  *string `yaml:"datadog_app_key"`
	APIHost *string `yaml:"datadog_api_host"`

	StartTags []string `yaml:"start_tags"`
	EndTags   []string `yaml:"end_tags"`
	EventTags []string `yaml:"event_tags"`

	IgnoreEventErrors *bool `yaml:"ignore_event_errors"`

	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
}

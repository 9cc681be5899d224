package config

// Builder accumulates values from every source and produces one Settings.
// Tag appends keep call order, so seeding CLI values before document values
// yields the CLI-then-file ordering.
type Builder struct {
	s Settings
}

func NewBuilder() *Builder {
	return &Builder{s: Settings{APIHost: DefaultAPIHost, ConfigPath: DefaultPath}}
}

func (b *Builder) ConfigPath(p string) *Builder {
	if p != "" {
		b.s.ConfigPath = p
	}
	return b
}

func (b *Builder) Command(cmd []string) *Builder {
	b.s.Command = append([]string(nil), cmd...)
	return b
}

func (b *Builder) AddStartTags(tags ...string) *Builder {
	b.s.StartTags = append(b.s.StartTags, tags...)
	return b
}

func (b *Builder) AddEndTags(tags ...string) *Builder {
	b.s.EndTags = append(b.s.EndTags, tags...)
	return b
}

func (b *Builder) AddEventTags(tags ...string) *Builder {
	b.s.EventTags = append(b.s.EventTags, tags...)
	return b
}

func (b *Builder) Debug(v bool) *Builder {
	b.s.Debug = b.s.Debug || v
	return b
}

// DryRun also enables debug output.
func (b *Builder) DryRun(v bool) *Builder {
	b.s.DryRun = v
	if v {
		b.s.Debug = true
	}
	return b
}

func (b *Builder) IgnoreEventErrors(v bool) *Builder {
	b.s.IgnoreEventErrors = v
	return b
}

func (b *Builder) Credentials(apiKey, appKey string) *Builder {
	b.s.APIKey = apiKey
	b.s.AppKey = appKey
	return b
}

func (b *Builder) APIHost(host string) *Builder {
	if host != "" {
		b.s.APIHost = host
	}
	return b
}

func (b *Builder) Logging(level, file string) *Builder {
	b.s.Logging = LoggingSettings{Level: level, File: file}
	return b
}

// Build returns a Settings value that shares no slices with the builder.
func (b *Builder) Build() Settings {
	out := b.s
	out.StartTags = cloneStrings(b.s.StartTags)
	out.EndTags = cloneStrings(b.s.EndTags)
	out.EventTags = cloneStrings(b.s.EventTags)
	out.Command = cloneStrings(b.s.Command)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

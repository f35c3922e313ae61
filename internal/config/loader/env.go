package loader

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// DefaultPrefix is the prefix of keyshell environment variables.
const DefaultPrefix = "KEYSHELL_"

// ValueKind says how an environment value is converted.
type ValueKind uint8

const (
	// KindGuess converts booleans and integers and keeps the rest as text.
	KindGuess ValueKind = iota
	KindString
	KindInt
	KindBool
)

// EnvVar maps one environment variable to a configuration path.
type EnvVar struct {
	Name string
	Path string
	Kind ValueKind
}

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string
	mapping map[string]EnvVar
	environ func() []string
}

// NewEnvLoader returns a loader for variables starting with prefix, using
// the default mapping.
func NewEnvLoader(prefix string) *EnvLoader {
	l := &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]EnvVar),
		environ: os.Environ,
	}
	for _, v := range defaultEnvMapping() {
		l.AddMapping(v)
	}
	return l
}

// defaultEnvMapping names the variables whose paths or types can't be
// derived from their names.
func defaultEnvMapping() []EnvVar {
	return []EnvVar{
		{Name: "KEYSHELL_LOG_LEVEL", Path: "logging.level", Kind: KindString},
		{Name: "KEYSHELL_LOG_FILE", Path: "logging.file", Kind: KindString},
		{Name: "KEYSHELL_HISTFILE", Path: "history.file", Kind: KindString},
		{Name: "KEYSHELL_HISTSIZE", Path: "history.maxEntries", Kind: KindInt},
		{Name: "KEYSHELL_PROMPT", Path: "editor.prompt", Kind: KindString},
		{Name: "KEYSHELL_WORDCHARS", Path: "editor.wordChars", Kind: KindString},
		{Name: "KEYSHELL_INIT", Path: "plugin.init", Kind: KindString},
	}
}

// AddMapping registers or replaces a variable mapping.
func (l *EnvLoader) AddMapping(v EnvVar) {
	l.mapping[v.Name] = v
}

// RemoveMapping drops a variable mapping.
func (l *EnvLoader) RemoveMapping(name string) {
	delete(l.mapping, name)
}

// Load reads the environment. Mapped variables land on their configured
// path. Other prefixed variables map by name, SECTION_SETTING_NAME to
// section.settingName. Empty values are kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	env := l.environ()
	sort.Strings(env)
	for _, kv := range env {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if v, mapped := l.mapping[name]; mapped {
			setByPath(config, v.Path, convert(value, v.Kind))
			continue
		}
		path := l.envToPath(name)
		if path == "" {
			continue
		}
		setByPath(config, path, convert(value, KindGuess))
	}
	return config, nil
}

// envToPath converts KEYSHELL_HISTORY_MAX_ENTRIES to history.maxEntries.
// A name with no setting part yields "".
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0]))
	b.WriteByte('.')
	for i, part := range parts[1:] {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(part))
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

func convert(s string, kind ValueKind) any {
	switch kind {
	case KindString:
		return s
	case KindInt:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i
		}
		return s
	case KindBool:
		if b, ok := parseBool(s); ok {
			return b
		}
		return s
	}

	if b, ok := parseBool(s); ok {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}

// setByPath stores value under a dot-separated path, creating
// intermediate maps and replacing non-map values in the way.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project file looked up by FindConfig.
const ConfigFileName = "monkey.yml"

const (
	defaultPrompt       = ">> "
	defaultContinuation = ".. "
	defaultHistory      = ".monkey_history"
)

// ErrConfigNotFound is returned by FindConfig when no monkey.yml exists in
// the directory or any of its parents.
var ErrConfigNotFound = errors.New("config: monkey.yml not found")

// Config represents the parsed contents of monkey.yml.
type Config struct {
	// Path is the absolute location of the file; empty for DefaultConfig.
	Path string
	// Entry is the script `monkey run` executes without a file argument,
	// resolved against the config directory.
	Entry    string
	LogLevel logrus.Level
	REPL     REPLConfig

	rawEntry    string
	rawLogLevel string
}

// REPLConfig holds the interactive loop settings.
type REPLConfig struct {
	Prompt       string
	Continuation string
	// History is relative to the user's home directory unless absolute.
	// An empty value disables history.
	History string
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no monkey.yml is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: logrus.InfoLevel,
		REPL: REPLConfig{
			Prompt:       defaultPrompt,
			Continuation: defaultContinuation,
			History:      defaultHistory,
		},
	}
}

// LoadConfig parses monkey.yml from disk, returning a validated config. An
// empty file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig walks from dir up to the filesystem root and returns the first
// monkey.yml it finds.
func FindConfig(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrConfigNotFound
		}
		current = parent
	}
}

// Dir returns the directory holding the config file.
func (c *Config) Dir() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.rawLogLevel != "" {
		level, err := logrus.ParseLevel(c.rawLogLevel)
		if err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q is not a valid level", c.rawLogLevel))
		} else {
			c.LogLevel = level
		}
	}
	if strings.HasSuffix(c.rawEntry, "/") {
		errs.Issues = append(errs.Issues, fmt.Sprintf("entry %q must name a file", c.rawEntry))
	}
	if c.REPL.Prompt == "" {
		errs.Issues = append(errs.Issues, "repl.prompt must not be empty")
	}
	if c.REPL.Continuation == "" {
		errs.Issues = append(errs.Issues, "repl.continuation must not be empty")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

type configFile struct {
	Entry    string   `yaml:"entry"`
	LogLevel string   `yaml:"log_level"`
	REPL     replYAML `yaml:"repl"`
}

type replYAML struct {
	Prompt       *string `yaml:"prompt"`
	Continuation *string `yaml:"continuation"`
	History      *string `yaml:"history"`
}

// UnmarshalYAML accepts a null or missing repl section as "all defaults".
func (r *replYAML) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		*r = replYAML{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("config: repl must be a mapping")
	}
	var out replYAML
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var target **string
		switch keyNode.Value {
		case "prompt":
			target = &out.Prompt
		case "continuation":
			target = &out.Continuation
		case "history":
			target = &out.History
		default:
			return fmt.Errorf("config: line %d: unknown repl field %q", keyNode.Line, keyNode.Value)
		}
		var str string
		if err := valueNode.Decode(&str); err != nil {
			return fmt.Errorf("config: repl.%s: %w", keyNode.Value, err)
		}
		*target = &str
	}
	*r = out
	return nil
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	cfg.rawLogLevel = strings.TrimSpace(cf.LogLevel)
	cfg.rawEntry = strings.TrimSpace(cf.Entry)

	if entry := cfg.rawEntry; entry != "" {
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(filepath.Dir(path), entry)
		}
		cfg.Entry = entry
	}
	if cf.REPL.Prompt != nil {
		cfg.REPL.Prompt = *cf.REPL.Prompt
	}
	if cf.REPL.Continuation != nil {
		cfg.REPL.Continuation = *cf.REPL.Continuation
	}
	if cf.REPL.History != nil {
		cfg.REPL.History = strings.TrimSpace(*cf.REPL.History)
	}
	return cfg
}

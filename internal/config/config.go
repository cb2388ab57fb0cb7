package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the manifest name used when none is given.
const DefaultFile = "embed.yaml"

// Config represents the top-level structure of an embed.yaml manifest.
// It names the two generated files, the binaries to embed and the
// generation and logging settings.
type Config struct {
	// Output names the generated definitions and declarations files.
	Output OutputConfig `yaml:"output"`
	// Inputs is the ordered list of binary files to embed.
	Inputs []string `yaml:"inputs"`
	// Gen contains settings for code generation.
	Gen GenConfig `yaml:"gen"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig names the generated files.
type OutputConfig struct {
	// Definitions is the source file holding the array contents.
	Definitions string `yaml:"definitions"`
	// Declarations is the header file holding the extern declarations.
	Declarations string `yaml:"declarations"`
}

// GenConfig controls the code generation process.
type GenConfig struct {
	// CheckSymbols rejects inputs whose names are not unique C identifiers.
	CheckSymbols bool `yaml:"check_symbols"`
	// Atomic writes outputs through temporary files. Defaults to true.
	Atomic *bool `yaml:"atomic"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads and parses the manifest at path, applies defaults, validates it
// and resolves relative file paths against the manifest's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.resolve(filepath.Dir(path))
	return &cfg, nil
}

// Validate checks the configuration for errors such as missing outputs or an
// unknown logging level.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Output.Definitions == "" {
		return fmt.Errorf("output.definitions cannot be empty")
	}
	if config.Output.Declarations == "" {
		return fmt.Errorf("output.declarations cannot be empty")
	}
	if filepath.Clean(config.Output.Definitions) == filepath.Clean(config.Output.Declarations) {
		return fmt.Errorf("output.definitions and output.declarations must be different files")
	}

	for i, in := range config.Inputs {
		if strings.TrimSpace(in) == "" {
			return fmt.Errorf("inputs[%d]: path cannot be empty", i)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Gen.Atomic == nil {
		t := true
		config.Gen.Atomic = &t
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "warn"
	}
}

// resolve makes relative paths relative to dir instead of the working directory.
func (c *Config) resolve(dir string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	c.Output.Definitions = join(c.Output.Definitions)
	c.Output.Declarations = join(c.Output.Declarations)
	for i, in := range c.Inputs {
		c.Inputs[i] = join(in)
	}
	c.Logging.Path = join(c.Logging.Path)
}

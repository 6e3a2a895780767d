package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"maat/internal/errors"
)

// Default engine settings, used when no config document is present
// or when the document cannot be read.
const (
	// DefaultEnginePath is where a local engine build lands
	DefaultEnginePath = "../target/code-maat-1.0.5-SNAPSHOT-standalone.jar"
	// DefaultRuntimeExecutable runs the engine artifact
	DefaultRuntimeExecutable = "java"
)

// DefaultRuntimeOptions returns the default JVM options for the engine.
// The engine loads whole history logs in memory, hence the large heap
// and thread stack.
func DefaultRuntimeOptions() []string {
	return []string{"-Xmx4g", "-Djava.awt.headless=true", "-Xss512M"}
}

// EngineConfig describes how to launch the analysis engine
type EngineConfig struct {
	Path              string   `json:"path" mapstructure:"path"`
	RuntimeExecutable string   `json:"runtime_executable" mapstructure:"runtime_executable"`
	RuntimeOptions    []string `json:"runtime_options" mapstructure:"runtime_options"`
}

// Config represents the complete maat configuration
type Config struct {
	Engine EngineConfig `json:"engine" mapstructure:"engine"`
}

// DefaultConfig returns the built-in default configuration
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Path:              DefaultEnginePath,
			RuntimeExecutable: DefaultRuntimeExecutable,
			RuntimeOptions:    DefaultRuntimeOptions(),
		},
	}
}

// Load reads the configuration document and resolves the engine path.
//
// configFile may be empty, in which case maat.json in the working directory
// is used. A missing or malformed document falls back to the built-in
// defaults. A relative engine path is rewritten to an absolute one exactly
// once: against the config file's directory when a document was read,
// against the working directory otherwise. After resolution the engine
// artifact must exist on disk.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("engine.path", DefaultEnginePath)
	v.SetDefault("engine.runtime_executable", DefaultRuntimeExecutable)
	v.SetDefault("engine.runtime_options", DefaultRuntimeOptions())

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("json")
	} else {
		v.SetConfigName("maat")
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	cfg := DefaultConfig()
	baseDir := ""

	// Absence and malformed content are both non-fatal: run on defaults.
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			cfg = DefaultConfig()
		} else {
			baseDir = filepath.Dir(v.ConfigFileUsed())
		}
	}

	if err := resolveEnginePath(cfg, baseDir); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveEnginePath rewrites a relative engine path to absolute and verifies
// the artifact exists. The rewrite happens exactly once, at load time.
func resolveEnginePath(cfg *Config, baseDir string) error {
	path := cfg.Engine.Path
	if !filepath.IsAbs(path) {
		if baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.NewMaatError(errors.Configuration, "cannot resolve engine path", err).
				WithDetails(map[string]interface{}{"path": cfg.Engine.Path})
		}
		path = abs
	}

	if _, err := os.Stat(path); err != nil {
		return errors.NewMaatError(errors.Configuration, "engine artifact not found at "+path, err)
	}

	cfg.Engine.Path = path
	return nil
}

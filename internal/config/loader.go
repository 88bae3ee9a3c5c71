package config

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "TRIAGE"

// newViper builds a pre-configured viper instance: YAML file type, TRIAGE_
// env prefix, automatic env binding, and a key replacer mapping "." → "_"
// so that "engine.thresholds.escalation" resolves to
// "TRIAGE_ENGINE_THRESHOLDS_ESCALATION".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads the YAML file at configPath, merges TRIAGE_* environment
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigRead, "failed to read config file").
			WithDetail(configPath)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from TRIAGE_* environment variables
// with no config file, the preferred strategy for containerised deployments.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigRead, "failed to unmarshal configuration")
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "configuration validation failed")
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed
// Config whenever the file is modified on disk.  Intended for hot-reloading
// non-critical settings such as log level or extra signal patterns.
//
// Watch is non-blocking; it starts a background goroutine that runs until
// the returned stop function is called.  A change that fails to parse or
// validate is skipped so the application never observes a broken config.
func Watch(configPath string, onChange func(*Config)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigRead, "failed to create config watcher")
	}

	// Watch the directory rather than the file: editors and config-map
	// updates replace the file via rename, which drops a direct file watch.
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigRead, "failed to watch config directory").
			WithDetail(dir)
	}

	target := filepath.Clean(configPath)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				cfg, loadErr := Load(configPath)
				if loadErr != nil {
					continue
				}
				onChange(cfg)
			case <-watcher.Errors:
				// Watcher errors are non-fatal; keep running.
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = watcher.Close()
	}, nil
}

// MustLoad is a convenience wrapper around Load that panics on error.
// Intended for main(), where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}

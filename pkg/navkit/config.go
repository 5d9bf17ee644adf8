package navkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/coordinator"
	"github.com/BrandonKowalski/navkit/pkg/navkit/deeplink"
	"github.com/BrandonKowalski/navkit/pkg/navkit/i18n"
)

// Config is the TOML configuration file:
//
//	[log]
//	level = "info"
//	format = "console"
//
//	[i18n]
//	default_language = "en"
//	languages = ["de"]
//	message_files = ["locales/active.de.toml"]
//
//	[navigation]
//	invariant_checks = true
//
//	[[route]]
//	name = "settings"
//	scheme = "arcade"
//	host = "settings"
//	presentation = "sheet"
type Config struct {
	Log        LogConfig        `toml:"log"`
	I18n       I18nConfig       `toml:"i18n"`
	Navigation NavigationConfig `toml:"navigation"`
	Routes     []deeplink.Route `toml:"route"`

	dir string // Directory relative message file paths resolve against
}

type LogConfig struct {
	Level         string `toml:"level"`
	InternalLevel string `toml:"internal_level"`
	Format        string `toml:"format"`
	Path          string `toml:"path"`
}

type I18nConfig struct {
	DefaultLanguage string   `toml:"default_language"`
	Languages       []string `toml:"languages"`
	MessageFiles    []string `toml:"message_files"`
}

type NavigationConfig struct {
	InvariantChecks bool `toml:"invariant_checks"`
}

// DecodeConfig reads and validates a config from r. Relative message file
// paths resolve against the working directory.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, NewConfigError("decode", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads a config file. An empty path uses NAVKIT_CONFIG, then
// navkit.toml in the working directory if it exists.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(constants.ConfigEnvVar)
	}
	if path == "" {
		if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
			path = constants.DefaultConfigFile
		}
	}
	if path == "" {
		return nil, NewConfigError("read", fmt.Errorf("%w: no config path given", ErrInvalidConfig))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewConfigError("read", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Validate checks the language tags and route table.
func (c *Config) Validate() error {
	if c.I18n.DefaultLanguage != "" {
		if _, err := i18n.ParseLanguage(c.I18n.DefaultLanguage); err != nil {
			return NewConfigError("validate", fmt.Errorf("%w: %v", ErrInvalidConfig, err))
		}
	}
	if err := deeplink.ValidateRoutes(c.Routes); err != nil {
		return NewConfigError("validate", err)
	}
	return nil
}

// Options returns the Init options the [log] section describes.
func (c *Config) Options() Options {
	return Options{
		LogPath:          c.Log.Path,
		LogLevel:         c.Log.Level,
		InternalLogLevel: c.Log.InternalLevel,
		LogFormat:        c.Log.Format,
	}
}

// CoordinatorOptions returns options for coordinators built from this config.
func (c *Config) CoordinatorOptions() []coordinator.Option {
	if !c.Navigation.InvariantChecks {
		return nil
	}
	return []coordinator.Option{coordinator.WithInvariantChecks(true)}
}

// Titler builds a titler with every configured message file loaded.
func (c *Config) Titler() (*i18n.Titler, error) {
	def := c.I18n.DefaultLanguage
	if def == "" {
		def = constants.DefaultLanguage
	}
	tag, err := i18n.ParseLanguage(def)
	if err != nil {
		return nil, NewConfigError("load_messages", err)
	}

	t := i18n.NewTitler(tag)
	for _, file := range c.I18n.MessageFiles {
		if !filepath.IsAbs(file) && c.dir != "" {
			file = filepath.Join(c.dir, file)
		}
		if err := t.LoadMessageFile(file); err != nil {
			return nil, NewConfigError("load_messages", err)
		}
	}

	if len(c.I18n.Languages) > 0 {
		t.SetLanguages(append(append([]string(nil), c.I18n.Languages...), def)...)
	}
	return t, nil
}

// Dispatcher returns a dispatcher that shows each configured route's view on c.
func (c *Config) Dispatcher(target *coordinator.Coordinator) *deeplink.Dispatcher {
	return deeplink.NewDispatcher(deeplink.BindAll(c.Routes, deeplink.NavigateTo(target))...)
}

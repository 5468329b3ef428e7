package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "DOCPRINT_"

// Config holds the resolved settings for a render
type Config struct {
	Color   string `koanf:"color" toml:"color" validate:"oneof=auto always never"`
	Private bool   `koanf:"private" toml:"private"`
	Theme   string `koanf:"theme" toml:"theme"`
	Format  string `koanf:"format" toml:"format" validate:"oneof=auto json yaml"`
}

// LoadOptions controls where Load looks for settings
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string

	// Flags holds values set on the command line, keyed like the config file
	Flags map[string]interface{}
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := unmarshal(mustDefaults())
	if err != nil {
		panic(err)
	}
	return cfg
}

// UserConfigPath is the config file consulted when no explicit path is given
func UserConfigPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, logging.AppName, "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// Load resolves the configuration from all layers and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	k, err := defaults()
	if err != nil {
		return nil, err
	}

	path := opts.Path
	required := path != ""
	if !required {
		path = UserConfigPath()
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if required {
		return nil, errors.Wrap(statErr, errors.ErrFileNotFound, "config file not found").
			WithDetail("path", path)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("color", cfg.Color).
		Bool("private", cfg.Private).
		Str("theme", cfg.Theme).
		Str("format", cfg.Format).
		Msg("Configuration resolved")

	return cfg, nil
}

func defaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return k, nil
}

func mustDefaults() *koanf.Koanf {
	k, err := defaults()
	if err != nil {
		panic(err)
	}
	return k
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

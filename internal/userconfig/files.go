package userconfig

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

var userPaths []string = func() []string {
	var paths []string

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		paths = append(paths, filepath.Join(configHome, "codespan", "config.toml"))
	}

	if u, err := user.Current(); err == nil {
		if configHome == "" {
			paths = append(paths, filepath.Join(u.HomeDir, ".config", "codespan", "config.toml"))
		}
		paths = append(paths, filepath.Join(u.HomeDir, ".codespan.toml"))
	}

	return paths
}()

// UserPaths reports the settings files read by Global, lowest priority first.
func UserPaths() []string {
	return userPaths
}

var tomlParser = toml.Parser()

var global = sync.OnceValues(Load)

// Global returns the settings from the user's settings files.
// Files that do not exist are skipped. The result is computed once.
func Global() (*Config, error) {
	return global()
}

// Load is like Global but reads the files again on every call.
func Load() (*Config, error) {
	return newInstance(nil, userPaths...)
}

// WithFile returns the user's settings overridden by the settings file at path,
// which must exist.
func WithFile(path string) (*Config, error) {
	return newInstance([]string{path}, userPaths...)
}

// Parse returns the settings described by the TOML document data, on top of
// the defaults.
func Parse(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), tomlParser); err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}
	return unmarshal(k)
}

// newInstance loads the optional files in order followed by the required files.
func newInstance(required []string, optional ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range optional {
		err := k.Load(file.Provider(path), tomlParser)
		if errors.Is(err, fs.ErrNotExist) {
			log.Trace().Str("path", path).Msg("no settings file")
			continue
		} else if err != nil {
			return nil, errors.Wrapf(err, "unable to parse config file %s", path)
		}
		log.Debug().Str("path", path).Msg("loaded settings file")
	}
	for _, path := range required {
		if err := k.Load(file.Provider(path), tomlParser); err != nil {
			return nil, errors.Wrapf(err, "unable to load config file %s", path)
		}
		log.Debug().Str("path", path).Msg("loaded settings file")
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag:       "koanf",
		FlatPaths: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the default settings.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

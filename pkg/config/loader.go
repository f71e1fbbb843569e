package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mojochao/j2render/pkg/errors"
	"github.com/mojochao/j2render/pkg/logging"
)

const (
	envPrefix      = "J2RENDER_"
	userConfigFile = "j2render/config.toml"
)

// userConfigPath locates the XDG user config; replaced in tests
var userConfigPath = func() (string, bool) {
	path, err := xdg.SearchConfigFile(userConfigFile)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load builds the configuration. An explicit path must exist; without one
// the XDG user file is used when present.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if path == "" {
		if found, ok := userConfigPath(); ok {
			path = found
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
			WithDetail("config", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("config", path)
		}
		logger.Debug().Str("path", path).Msg("user config loaded")
	}

	// 3. Environment
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToBoolHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration").
			WithDetail("config", path)
	}
	cfg.Path = path

	return &cfg, nil
}

// envKey maps J2RENDER_RENDER__TRIM_BLOCKS to render.trim_blocks
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// stringToBoolHookFunc accepts the spellings people put in env vars
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		return data, nil
	}
}

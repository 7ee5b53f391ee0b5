package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	secretFileSuffix = "_FILE"
	defaultConfigDir = "configs"
)

// secretKeys may be supplied as APP_<KEY>_FILE pointing at a mounted secret.
// The file wins over APP_<KEY> and the YAML layers.
var secretKeys = []string{
	"auth.jwt_secret",
	"storage.access_key_id",
	"storage.secret_access_key",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir overrides the directory holding base.yaml and the profile
// files. The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the Config for profile from these layers, later ones winning:
// built-in defaults, base.yaml, {profile}.yaml, APP_* environment variables,
// then APP_*_FILE secret files. Env names are matched against known keys so
// that APP_FENCE_RADIUS_METERS maps to fence.radius_meters rather than
// fence.radius.meters.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	if err := loadSecretFiles(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())
	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

func loadSecretFiles(k *koanf.Koanf) error {
	secrets := make(map[string]any)
	for _, key := range secretKeys {
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_")) + secretFileSuffix
		path := os.Getenv(name)
		if path == "" {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		secrets[key] = strings.TrimSpace(string(raw))
	}
	if len(secrets) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(secrets, "."), nil); err != nil {
		return fmt.Errorf("loading secret files: %w", err)
	}
	return nil
}

// envKeys maps the env spelling of each known key ("fence_radius_meters")
// to the key itself ("fence.radius_meters").
func envKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[strings.ReplaceAll(key, ".", "_")] = key
	}
	return out
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "NOTEBOARD"

type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type Config struct {
	DataPath   string `mapstructure:"data_path"`
	StorageKey string `mapstructure:"storage_key"`
	Encrypt    bool   `mapstructure:"encrypt"`
	Passphrase string `mapstructure:"passphrase"`
	Editor     string `mapstructure:"editor"`
	Log        Log    `mapstructure:"log"`
}

var envRef = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnv replaces ${VAR} and ${VAR:-default} with environment values.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		m := envRef.FindStringSubmatch(match)
		if v := os.Getenv(m[1]); v != "" {
			return v
		}
		return m[2]
	})
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultFile is the config file read when none is given explicitly.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "noteboard", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_path", filepath.Join(dataHome(), "noteboard", "store.json"))
	v.SetDefault("storage_key", "studentNotes_v1")
	v.SetDefault("encrypt", false)
	v.SetDefault("passphrase", "")
	v.SetDefault("editor", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load layers defaults, the config file and NOTEBOARD_* variables, in
// increasing priority. An empty configFile falls back to DefaultFile and
// tolerates its absence.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configFile != ""
	if !explicit {
		configFile = DefaultFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(strings.TrimLeft(filepath.Ext(configFile), "."))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("v.ReadInConfig: %w", err)
			}
		}
	}

	for _, k := range v.AllKeys() {
		if s, ok := v.Get(k).(string); ok && strings.Contains(s, "${") {
			v.Set(k, expandEnv(s))
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}
	return cfg, nil
}

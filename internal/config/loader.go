package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".descq"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. DESCQ_FORMAT.
const envPrefix = "DESCQ"

// envKeySeparator replaces "." in nested keys, e.g.
// DESCQ_DESCRIPTOR_TABLE_NAMING.
const envKeySeparator = "_"

// Load reads configuration from file, env vars and defaults.
// If configPath is non-empty it is used as the config file. Otherwise
// .descq.yaml is searched in CWD and $HOME. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("verbose", DefaultVerbose)

	v.SetDefault("descriptor.lenient_segments", DefaultLenientSegments)
	v.SetDefault("descriptor.table_naming", DefaultTableNaming)
}

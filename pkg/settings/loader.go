package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigFile   = "bgscore"
	ConfigDir    = "bgscore"
	ConfigEnv    = "XDG_CONFIG_HOME"
	ConfigFormat = "json"
	EnvPrefix    = "BGSCORE"
	SystemDir    = "/etc"
)

func Load() (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	// Check for explicit config file path first
	if configFile := os.Getenv("BGSCORE_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigFile)
		v.SetConfigType(ConfigFormat)

		v.AddConfigPath(filepath.Join(SystemDir, ConfigDir))

		if xdgConfig := os.Getenv(ConfigEnv); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, ConfigDir))
		}

		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &settings, nil
}

func LoadWithViper(v *viper.Viper) (*Settings, error) {
	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &settings, nil
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName   = "config"
	LogLevelFlagName = "log-level"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.yml", "path to the configuration file")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(LogLevelFlagName, "", "overrides the configured log level")
	_ = viper.BindPFlag(LogLevelFlagName, rootCMD.PersistentFlags().Lookup(LogLevelFlagName))
}

type TestkitConfig struct {
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	Env                       string `mapstructure:"env" default:"local"`
	ApiAddr                   string `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"opentelemetryCollectorURL"`
}

type Config struct {
	TestkitConfig TestkitConfig            `mapstructure:"testkit"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains"`
}

func DefaultConfig() *Config {
	c := &Config{}
	_ = defaults.Set(c)
	return c
}

// GetConfigFromFile reads the configuration at path and layers it over
// defaultConfig; fields the file leaves unset keep their defaults.
func GetConfigFromFile(path string, defaultConfig *Config) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := mergo.Merge(c, defaultConfig); err != nil {
		return nil, err
	}

	if lvl := viper.GetString(LogLevelFlagName); lvl != "" {
		c.TestkitConfig.LogLevel = lvl
	}

	if len(c.ChainConfigs) == 0 {
		return nil, fmt.Errorf("config at %s defines no chains", path)
	}
	return c, nil
}

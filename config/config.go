// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/feemeter/usage"
	"github.com/ava-labs/feemeter/utils/logging"
)

type Config struct {
	Properties       usage.Properties `json:"properties"`
	Logging          logging.Config   `json:"logging"`
	MetricsNamespace string           `json:"metricsNamespace"`
}

// BuildViper parses [args] into [fs] and returns the viper instance described
// by NewViper.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return NewViper(fs)
}

// NewViper returns a viper instance bound to the already parsed [fs]. Each key
// resolves from, in order: flags, FEEMETER_ environment variables, the config
// file, and the flag defaults.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// GetConfig reads the config defined in [v]
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Properties: usage.Properties{
			LegacyReceiptStorageSeconds: v.GetUint64(LegacyReceiptStorageSecondsKey),
		},
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
	}
	if err := config.Properties.Verify(); err != nil {
		return Config{}, err
	}

	var err error
	config.Logging.Level, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %q: %w", LogLevelKey, err)
	}
	config.Logging.Format, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %q: %w", LogFormatKey, err)
	}
	return config, nil
}

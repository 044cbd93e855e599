package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "FRACTION"

	cfgKeyOutput = "output"
	cfgKeyJSON   = "json"
)

// Output modes for the "output" key.
const (
	outputFraction = "fraction"
	outputDecimal  = "decimal"
	outputBoth     = "both"
)

// loadConfig reads config.yaml from configDir using Viper. Values can be
// overridden with FRACTION_* environment variables, e.g. FRACTION_OUTPUT.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, outputFraction)
	v.SetDefault(cfgKeyJSON, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// outputMode returns the effective output mode. --decimal wins over the
// configured value.
func (a *app) outputMode() (string, error) {
	if a.flags.decimal {
		return outputDecimal, nil
	}
	mode := strings.ToLower(a.config.GetString(cfgKeyOutput))
	switch mode {
	case outputFraction, outputDecimal, outputBoth:
		return mode, nil
	}
	return "", systemErr("config: invalid %s %q (want %s, %s or %s)",
		cfgKeyOutput, mode, outputFraction, outputDecimal, outputBoth)
}

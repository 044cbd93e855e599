package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Output string `yaml:"output"`
	JSON   bool   `yaml:"json"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Long:  "Create the configuration directory and write a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return systemErr("create config directory: %w", err)
			}

			path := filepath.Join(a.configDir, configFileExt)
			created, err := writeConfigIfMissing(path)
			if err != nil {
				return systemErr("write config: %w", err)
			}
			a.log.Printf("config file %s (created: %t)", path, created)

			out := cmd.OutOrStdout()
			if !created {
				fmt.Fprintln(out, "Config already exists:", path)
				return nil
			}
			fmt.Fprintln(out, "Fraction initialized successfully")
			fmt.Fprintln(out, "  config:", path)
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{Output: outputFraction})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// Package cli implements the tagsyncctl operator commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "tagsyncctl",
	Short: "Operator tooling for the tagsync webhook service",
	Long:  "Sign webhook payloads, replay deliveries against a running tagsync service, and preview reconciliation locally without touching the Order Store.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file with url/secret/event defaults")
}

// fileConfig carries per-environment defaults so operators do not retype
// the target URL and secret on every invocation.
type fileConfig struct {
	URL    string `yaml:"url"`
	Secret string `yaml:"secret"`
	Event  string `yaml:"event"`
}

func loadFileConfig() (fileConfig, error) {
	var fc fileConfig
	if configPath == "" {
		return fc, nil
	}
	b, err := os.ReadFile(configPath)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return fc, nil
}

// readPayload returns the payload bytes from --payload, or stdin when the
// flag is empty and stdin is piped.
func readPayload(cmd *cobra.Command) ([]byte, error) {
	path, _ := cmd.Flags().GetString("payload")
	if path != "" {
		return os.ReadFile(path)
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return nil, fmt.Errorf("payload is required (--payload file or stdin)")
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

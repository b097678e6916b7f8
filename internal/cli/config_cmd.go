package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alanmeadows/sheetsmart/internal/config"
	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sheetsmart configuration",
	Long:  `Show and modify sheetsmart configuration values.`,
}

var configJSONFlag bool

// valueParser converts a command-line value into the JSON type of its key.
type valueParser func(raw string) (any, error)

// settableKeys maps the dotted keys accepted by "config set" to the parser
// for their type.
var settableKeys = map[string]valueParser{
	"model.provider":         parseString,
	"model.name":             parseString,
	"model.base_url":         parseString,
	"sheets.backend":         parseString,
	"sheets.highlight.red":   parseChannel,
	"sheets.highlight.green": parseChannel,
	"sheets.highlight.blue":  parseChannel,
	"history.enabled":        parseBool,
	"history.dir":            parseString,
}

func init() {
	configShowCmd.Flags().BoolVar(&configJSONFlag, "json", false, "Output raw JSON without formatting")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show merged configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if cfg == nil {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
		}

		var data []byte
		var err error
		if configJSONFlag {
			data, err = json.Marshal(cfg)
		} else {
			data, err = json.MarshalIndent(cfg, "", "  ")
		}
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a configuration value using a dotted key path.

The value is written to sheetsmart.jsonc in the user config directory
(~/.config/sheetsmart on Linux). The file is created if it does not exist.
API keys and credentials are never stored in configuration.

Note: JSONC comments are not preserved on write.`,
	Example: `  sheetsmart config set model.provider gemini
  sheetsmart config set model.name gpt-4o
  sheetsmart config set sheets.backend xlsx
  sheetsmart config set history.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		parse, ok := settableKeys[key]
		if !ok {
			return fmt.Errorf("unknown config key %q", key)
		}
		value, err := parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		path, err := config.UserConfigPath()
		if err != nil {
			return fmt.Errorf("locating user config: %w", err)
		}

		if err := setConfigValue(path, key, value); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
		return nil
	},
}

func parseString(raw string) (any, error) {
	return raw, nil
}

func parseBool(raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a boolean", raw)
	}
	return b, nil
}

// parseChannel accepts a color channel between 0 and 1.
func parseChannel(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", raw)
	}
	if f < 0 || f > 1 {
		return nil, fmt.Errorf("%v is outside 0..1", f)
	}
	return f, nil
}

// setConfigValue writes key into the JSONC file at path.
func setConfigValue(path, key string, value any) error {
	var existing []byte
	if data, err := os.ReadFile(path); err == nil {
		// sjson needs plain JSON; comments are dropped.
		existing = jsonc.ToJSON(data)
	} else {
		existing = []byte("{}")
	}

	updated, err := sjson.SetBytes(existing, key, value)
	if err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the recycle configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting in the global config",
	Long: `Write a single setting to the global recycle config file. Keys use dots to
reach nested fields. Values are read as JSON when they parse, and as plain
strings otherwise.`,
	Example: `
# Switch to a grid layout
recycle config set layout.mode grid

# Taller items
recycle config set layout.item_height 3

# Change the dataset presets
recycle config set dataset.presets '[100, 10000, 1000000]'
  `,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupConfig(cmd)
		if err != nil {
			return err
		}
		key, value := args[0], parseValue(args[1])
		if err := cfg.SetConfigField(key, value); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// parseValue decodes raw as JSON, falling back to the raw string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

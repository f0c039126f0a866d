package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/recycle/internal/config"
	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Print directories used by recycle",
	Long: `Print the directories holding the global config file, the file written
by "recycle config set" and the project data directory with its logs.`,
	Example: `
# Print all directories
recycle dirs

# Print only the config directory
recycle dirs --config

# Print only the data directory
recycle dirs --data
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		configOnly, _ := cmd.Flags().GetBool("config")
		dataOnly, _ := cmd.Flags().GetBool("data")

		cwd, err := ResolveCwd(cmd)
		if err != nil {
			return err
		}
		return writeDirs(cmd.OutOrStdout(), cwd, configOnly, dataOnly)
	},
}

func init() {
	dirsCmd.Flags().Bool("config", false, "Print only the config directory")
	dirsCmd.Flags().Bool("data", false, "Print only the data directory")
}

func writeDirs(w io.Writer, cwd string, configOnly, dataOnly bool) error {
	if configOnly && dataOnly {
		return errors.New("cannot specify both --config and --data flags")
	}

	configDir := filepath.Dir(config.GlobalConfig())
	dataDir := filepath.Dir(config.GlobalConfigData())

	if configOnly {
		_, _ = fmt.Fprintln(w, configDir)
		return nil
	}
	if dataOnly {
		_, _ = fmt.Fprintln(w, dataDir)
		return nil
	}

	projectDir := config.Defaults().Options.DataDirectory
	if !filepath.IsAbs(projectDir) {
		projectDir = filepath.Join(cwd, projectDir)
	}
	_, _ = fmt.Fprintf(w, "Config directory:  %s\n", configDir)
	_, _ = fmt.Fprintf(w, "Data directory:    %s\n", dataDir)
	_, _ = fmt.Fprintf(w, "Project directory: %s\n", projectDir)
	_, _ = fmt.Fprintf(w, "Log file:          %s\n", filepath.Join(projectDir, "logs", "recycle.log"))
	return nil
}

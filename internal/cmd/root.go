package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/recycle/internal/config"
	"github.com/charmbracelet/recycle/internal/log"
	"github.com/charmbracelet/recycle/internal/tui"
	"github.com/charmbracelet/recycle/internal/tui/components/placeholder"
	"github.com/charmbracelet/recycle/internal/version"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().String("config", "", "Extra config file, merged last")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().BoolP("grid", "g", false, "Lay items out in a grid")
	rootCmd.PersistentFlags().BoolP("horizontal", "H", false, "Scroll horizontally")
	rootCmd.Flags().IntP("count", "n", -1, "Initial number of items (defaults to dataset.initial)")
	rootCmd.Flags().BoolP("help", "h", false, "Help")

	rootCmd.AddCommand(
		layoutCmd,
		configCmd,
		dirsCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "recycle",
	Short: "Scroll through a million items with a handful of cells",
	Long: `Recycle is a terminal demo of a recycling list view. It only ever draws
enough cells to fill the screen and rebinds them to new items as you scroll,
so lists of any length cost the same to display.`,
	Example: `
# Start with the default 25 items
recycle

# Start with a million items
recycle -n 1000000

# Use a flexible grid
recycle -g

# Scroll left to right, with debug logging
recycle -H -d
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupConfig(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		if count < 0 {
			count = cfg.Dataset.Initial
		}

		ui, err := tui.New(cfg, count)
		if err != nil {
			slog.Error("Failed to create list", "error", err)
			return err
		}

		program := tea.NewProgram(
			ui,
			tea.WithContext(cmd.Context()),
			tea.WithFilter(tui.MouseEventFilter),
		)
		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("recycle crashed: %w", err)
		}
		return nil
	},
}

var banner = lipgloss.NewStyle().Foreground(charmtone.Guac).SetString(placeholder.Bin)

// copied from cobra:
const defaultVersionTemplate = `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`

func Execute() {
	// cobra prints the version before any hook runs, so the coloured banner
	// has to be baked into the template up front.
	if term.IsTerminal(os.Stdout.Fd()) {
		var b bytes.Buffer
		w := colorprofile.NewWriter(os.Stdout, os.Environ())
		w.Forward = &b
		_, _ = w.WriteString(banner.String())
		rootCmd.SetVersionTemplate(b.String() + "\n" + defaultVersionTemplate)
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setupConfig loads the config for the working directory, applies the
// layout flags and starts logging.
func setupConfig(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	extra, _ := cmd.Flags().GetString("config")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd, extra, debug)
	if err != nil {
		return nil, err
	}
	applyLayoutFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := createDataDir(cfg.Options.DataDirectory); err != nil {
		return nil, err
	}
	log.Setup(filepath.Join(cfg.Options.DataDirectory, "logs", "recycle.log"), cfg.Options.Debug)
	slog.Debug("Loaded config", "cwd", cwd, "mode", cfg.Layout.Mode, "axis", cfg.Layout.Axis)
	return cfg, nil
}

func applyLayoutFlags(cmd *cobra.Command, cfg *config.Config) {
	if grid, _ := cmd.Flags().GetBool("grid"); grid {
		cfg.Layout.Mode = config.LayoutModeGrid
	}
	if horizontal, _ := cmd.Flags().GetBool("horizontal"); horizontal {
		cfg.Layout.Axis = config.AxisHorizontal
	}
}

// ResolveCwd returns the --cwd flag as an absolute path, or the process
// working directory.
func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to resolve directory: %v", err)
		}
		if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
			return "", fmt.Errorf("not a directory: %s", cwd)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}

func createDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %q %w", dir, err)
	}

	gitIgnorePath := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); os.IsNotExist(err) {
		if err := os.WriteFile(gitIgnorePath, []byte("*\n"), 0o644); err != nil {
			return fmt.Errorf("failed to create .gitignore file: %q %w", gitIgnorePath, err)
		}
	}

	return nil
}

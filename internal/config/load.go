package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/charmbracelet/recycle/internal/data"
	"github.com/qjebbs/go-jsons"
)

var projectConfigNames = []string{
	fmt.Sprintf("%s.json", appName),
	fmt.Sprintf(".%s.json", appName),
}

// Defaults returns the configuration used when no file sets a value.
func Defaults() *Config {
	return &Config{
		Layout: LayoutOptions{
			Mode:       LayoutModeLinear,
			Axis:       AxisVertical,
			ItemWidth:  24,
			ItemHeight: 1,
			SpacingX:   1,
			Constraint: ConstraintFlexible,
			Count:      3,
		},
		Dataset: DatasetOptions{
			Initial: defaultInitialCount,
			Presets: slices.Clone(data.Presets),
		},
		Options: &Options{
			DataDirectory: defaultDataDirectory,
		},
	}
}

// Load reads and merges the global, project and explicit config files on top
// of the defaults. Missing files are skipped. extra may be empty.
func Load(workingDir, extra string, debug bool) (*Config, error) {
	cfg := Defaults()
	cfg.workingDir = workingDir
	cfg.globalDataPath = GlobalConfigData()

	paths := []string{GlobalConfig(), GlobalConfigData()}
	for _, name := range projectConfigNames {
		paths = append(paths, filepath.Join(workingDir, name))
	}

	var readers []io.Reader
	for _, path := range paths {
		bts, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		slog.Debug("Loaded config file", "path", path)
		readers = append(readers, bytes.NewReader(bts))
	}
	if extra != "" {
		bts, err := os.ReadFile(extra)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", extra, err)
		}
		readers = append(readers, bytes.NewReader(bts))
	}

	if len(readers) > 0 {
		merged, err := jsons.Merge(readers)
		if err != nil {
			return nil, fmt.Errorf("failed to merge config files: %w", err)
		}
		if err := json.Unmarshal([]byte(merged), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cfg.Options == nil {
		cfg.Options = &Options{}
	}
	if cfg.Options.DataDirectory == "" {
		cfg.Options.DataDirectory = defaultDataDirectory
	}
	if !filepath.IsAbs(cfg.Options.DataDirectory) {
		cfg.Options.DataDirectory = filepath.Join(workingDir, cfg.Options.DataDirectory)
	}
	if envDebug, _ := strconv.ParseBool(os.Getenv("RECYCLE_DEBUG")); envDebug || debug {
		cfg.Options.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GlobalConfig returns the path to the main config file for the user.
func GlobalConfig() string {
	if dir := os.Getenv("RECYCLE_GLOBAL_CONFIG"); dir != "" {
		return filepath.Join(dir, fmt.Sprintf("%s.json", appName))
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName, fmt.Sprintf("%s.json", appName))
	}
	return filepath.Join(homeDir(), ".config", appName, fmt.Sprintf("%s.json", appName))
}

// GlobalConfigData returns the path to the config file written by
// SetConfigField.
func GlobalConfigData() string {
	if dir := os.Getenv("RECYCLE_GLOBAL_DATA"); dir != "" {
		return filepath.Join(dir, fmt.Sprintf("%s.json", appName))
	}
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName, fmt.Sprintf("%s.json", appName))
	}
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, fmt.Sprintf("%s.json", appName))
	}
	return filepath.Join(homeDir(), ".local", "share", appName, fmt.Sprintf("%s.json", appName))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

const (
	configDirName   = ".factorial"
	configFileName  = "config.json"
	historyFileName = "history"

	DefaultMaxInput = 100000
	DefaultWorkers  = 4
	DefaultLogLevel = "info"
	DefaultFormat   = "text"
)

var (
	Formats   = []string{"text", "json", "yaml"}
	LogLevels = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	MaxInput    int    `json:"max_input"`
	HistoryFile string `json:"history_file"`
	LogLevel    string `json:"log_level"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`
}

// configDir returns ~/.factorial.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to detect home directory")
	}
	return filepath.Join(home, configDirName), nil
}

// FilePath returns the path to ~/.factorial/config.json.
func FilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{
		MaxInput: DefaultMaxInput,
		LogLevel: DefaultLogLevel,
		Format:   DefaultFormat,
		Workers:  DefaultWorkers,
	}
	if dir, err := configDir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, historyFileName)
	}
	return cfg
}

// LoadConfigFile reads ~/.factorial/config.json on top of Default().
// Returns an error if the file does not exist, cannot be parsed or is invalid.
func LoadConfigFile() (Config, error) {
	cfg := Default()

	path, err := FilePath()
	if err != nil {
		return cfg, err
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Default(), errors.Wrapf(err, "failed to parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid configuration in %s", path)
	}

	return cfg, nil
}

// LoadOrDefault is LoadConfigFile falling back to Default() when the file is
// missing. Other failures are returned with the default configuration.
func LoadOrDefault() (Config, error) {
	cfg, err := LoadConfigFile()
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}

// SaveConfigFile writes the provided configuration to ~/.factorial/config.json.
func SaveConfigFile(cfg Config) error {
	path, err := FilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// InteractiveSetup launches a CLI wizard to collect configuration from the user
// and saves the result to ~/.factorial/config.json.
func InteractiveSetup() (Config, error) {
	fmt.Println("🔧 Configuration (factorial)")

	cfg, _ := LoadOrDefault()

	maxPrompt := promptui.Prompt{
		Label:    "Largest accepted n (0 for no limit)",
		Default:  strconv.Itoa(cfg.MaxInput),
		Validate: validateNonNegative,
	}
	maxStr, err := maxPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.MaxInput, _ = strconv.Atoi(strings.TrimSpace(maxStr))

	workersPrompt := promptui.Prompt{
		Label:    "Workers for table computations (0 for one per row)",
		Default:  strconv.Itoa(cfg.Workers),
		Validate: validateNonNegative,
	}
	workersStr, err := workersPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.Workers, _ = strconv.Atoi(strings.TrimSpace(workersStr))

	formatSel := promptui.Select{
		Label:     "Select default output format",
		Items:     Formats,
		CursorPos: indexOf(Formats, cfg.Format),
	}
	_, cfg.Format, err = formatSel.Run()
	if err != nil {
		return cfg, err
	}

	levelSel := promptui.Select{
		Label:     "Select log level",
		Items:     LogLevels,
		CursorPos: indexOf(LogLevels, cfg.LogLevel),
	}
	_, cfg.LogLevel, err = levelSel.Run()
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if err := SaveConfigFile(cfg); err != nil {
		return cfg, err
	}

	fmt.Println("Configuration saved to ~/.factorial/config.json ✅")

	return cfg, nil
}

func validateNonNegative(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func indexOf(items []string, item string) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return 0
}

// Validate validates the configuration and fills in empty fields with defaults
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if c.MaxInput < 0 {
		return errors.Errorf("max_input must not be negative, got %d", c.MaxInput)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if !slices.Contains(Formats, c.Format) {
		return errors.Errorf("unknown format %q: must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return errors.Errorf("unknown log level %q: must be one of %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}

	return nil
}

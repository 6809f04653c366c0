// Package config defines the persisted configuration record and includes
// functions for loading, initializing, and updating the config file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/gift-calc/internal/cli"
	"github.com/iwvelando/gift-calc/pkg/constants"
	"github.com/spf13/viper"
)

// Settings is the on-disk configuration record. Pointer fields distinguish
// "not set" from a deliberate zero so the override chain stays explicit.
type Settings struct {
	BaseValue        *float64      `json:"baseValue,omitempty" mapstructure:"baseValue"`
	VariationPercent *float64      `json:"variation,omitempty" mapstructure:"variation"`
	FriendScore      *float64      `json:"friendScore,omitempty" mapstructure:"friendScore"`
	NiceScore        *float64      `json:"niceScore,omitempty" mapstructure:"niceScore"`
	Currency         *string       `json:"currency,omitempty" mapstructure:"currency"`
	Decimals         *int          `json:"decimals,omitempty" mapstructure:"decimals"`
	Logging          LoggingConfig `json:"logging,omitempty" mapstructure:"logging"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `json:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `json:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `json:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// Path returns the config file location: the GIFT_CALC_CONFIG environment
// variable when set, otherwise ~/.config/gift-calc/.config.json.
func Path() (string, error) {
	if p := os.Getenv(constants.EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", constants.ConfigDirName, constants.ConfigFileName), nil
}

// DataDir returns the directory holding the naughty list and spending log,
// which live beside the config file.
func DataDir() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Load reads the JSON config file at configPath. A missing file is not an
// error; found reports whether a file was read.
func Load(configPath string) (settings *Settings, found bool, err error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading config file, %s", err)
	}

	settings = &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, false, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return settings, true, nil
}

// ApplyTo overlays the persisted values onto the built-in defaults, forming
// the middle tier of the override chain.
func (s *Settings) ApplyTo(d *cli.Defaults) {
	if s == nil {
		return
	}
	if s.BaseValue != nil {
		d.BaseValue = *s.BaseValue
	}
	if s.VariationPercent != nil {
		d.VariationPercent = *s.VariationPercent
	}
	if s.FriendScore != nil {
		d.FriendScore = *s.FriendScore
	}
	if s.NiceScore != nil {
		d.NiceScore = *s.NiceScore
	}
	if s.Currency != nil {
		d.Currency = strings.ToUpper(*s.Currency)
	}
	if s.Decimals != nil {
		d.Decimals = *s.Decimals
	}
}

// Save writes the settings to configPath wholesale, creating the directory
// if needed.
func (s *Settings) Save(configPath string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(configPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config file %s: %w", configPath, err)
	}
	return nil
}

// Init creates a fresh config file populated with the built-in defaults.
// It refuses to overwrite an existing file.
func Init(configPath string) (*Settings, error) {
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("config file already exists at %s", configPath)
	}

	defaults := cli.BuiltinDefaults()
	s := fromDefaults(defaults)
	if err := s.Save(configPath); err != nil {
		return nil, err
	}
	return s, nil
}

// Update parses calculation flags from args, applies them on top of the
// existing persisted record, and rewrites the file wholesale.
func Update(configPath string, args []string) (*Settings, error) {
	existing, _, err := Load(configPath)
	if err != nil {
		return nil, err
	}

	defaults := cli.BuiltinDefaults()
	existing.ApplyTo(&defaults)

	parsed, err := cli.Parse(args, defaults)
	if err != nil {
		return nil, err
	}
	if parsed.Command != cli.CommandCalculate {
		return nil, fmt.Errorf("update-config accepts calculation flags only")
	}

	s := fromDefaults(cli.Defaults{
		BaseValue:        parsed.BaseValue,
		VariationPercent: parsed.VariationPercent,
		FriendScore:      parsed.FriendScore,
		NiceScore:        parsed.NiceScore,
		Currency:         parsed.Currency,
		Decimals:         parsed.Decimals,
	})
	if existing != nil {
		s.Logging = existing.Logging
	}
	if err := s.Save(configPath); err != nil {
		return nil, err
	}
	return s, nil
}

func fromDefaults(d cli.Defaults) *Settings {
	return &Settings{
		BaseValue:        &d.BaseValue,
		VariationPercent: &d.VariationPercent,
		FriendScore:      &d.FriendScore,
		NiceScore:        &d.NiceScore,
		Currency:         &d.Currency,
		Decimals:         &d.Decimals,
	}
}

// Package cli turns an ordered list of command-line tokens into a validated
// configuration record. Parsing is table-driven: a finite set of flag specs
// processed in one left-to-right pass, failing fast on the first bad token.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/gift-calc/pkg/constants"
	"github.com/iwvelando/gift-calc/pkg/validation"
)

// Command identifies the top-level operation selected by the invocation.
type Command string

const (
	CommandCalculate    Command = "calculate"
	CommandInitConfig   Command = "init-config"
	CommandUpdateConfig Command = "update-config"
	CommandLog          Command = "log"
	CommandVersion      Command = "version"
	CommandNaughtyList  Command = "naughty-list"
	CommandSpendings    Command = "spendings"
)

// Defaults holds the resolved lower tiers of the override chain: built-in
// defaults overlaid with the persisted config record. The parser fills any
// flag not supplied on the command line from here.
type Defaults struct {
	BaseValue        float64
	VariationPercent float64
	FriendScore      float64
	NiceScore        float64
	Currency         string
	Decimals         int
}

// BuiltinDefaults returns the fixed bottom tier of the override chain.
func BuiltinDefaults() Defaults {
	return Defaults{
		BaseValue:        constants.DefaultBaseValue,
		VariationPercent: constants.DefaultVariationPercent,
		FriendScore:      constants.DefaultFriendScore,
		NiceScore:        constants.DefaultNiceScore,
		Currency:         constants.DefaultCurrency,
		Decimals:         constants.DefaultDecimals,
	}
}

// ParsedConfig is the validated configuration record produced by Parse and
// consumed by the calculator. It is immutable once produced.
type ParsedConfig struct {
	BaseValue        float64
	VariationPercent float64
	FriendScore      float64
	NiceScore        float64
	Currency         string
	Decimals         int
	UseMaximum       bool
	UseMinimum       bool
	CopyToClipboard  bool
	NoLog            bool
	RecipientName    string
	LogLevel         string
	Command          Command
	CommandArgs      []string
	ShowHelp         bool
}

// flagSpec describes one entry of the flag table. valueKind is empty for
// boolean flags; otherwise it names the expected value in error messages.
type flagSpec struct {
	aliases   []string
	valueKind string
	apply     func(cfg *ParsedConfig, flag, value string) error
}

var flagTable = []flagSpec{
	{
		aliases:   []string{"-b", "--basevalue"},
		valueKind: "numeric value",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			v, err := parseNumeric(flag, value)
			if err != nil {
				return err
			}
			if err := validation.Positive(flag, v); err != nil {
				return err
			}
			cfg.BaseValue = v
			return nil
		},
	},
	{
		aliases:   []string{"-v", "--variation"},
		valueKind: "numeric value",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			v, err := parseNumeric(flag, value)
			if err != nil {
				return err
			}
			if err := validation.NumericRange(flag, v, 0, constants.MaxVariationPercent); err != nil {
				return err
			}
			cfg.VariationPercent = v
			return nil
		},
	},
	{
		aliases:   []string{"-f", "--friendscore"},
		valueKind: "numeric value",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			v, err := parseNumeric(flag, value)
			if err != nil {
				return err
			}
			if err := validation.NumericRange(flag, v, constants.MinFriendScore, constants.MaxFriendScore); err != nil {
				return err
			}
			cfg.FriendScore = v
			return nil
		},
	},
	{
		aliases:   []string{"-n", "--nicescore"},
		valueKind: "numeric value",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			v, err := parseNumeric(flag, value)
			if err != nil {
				return err
			}
			if err := validation.NumericRange(flag, v, 0, constants.MaxNiceScore); err != nil {
				return err
			}
			cfg.NiceScore = v
			return nil
		},
	},
	{
		aliases:   []string{"-c", "--currency"},
		valueKind: "currency code",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			code, err := validation.CurrencyCode(flag, value)
			if err != nil {
				return err
			}
			cfg.Currency = code
			return nil
		},
	},
	{
		aliases:   []string{"-d", "--decimals"},
		valueKind: "numeric value",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s requires a numeric value", flag)
			}
			if err := validation.NumericRange(flag, float64(n), 0, constants.MaxDecimals); err != nil {
				return err
			}
			cfg.Decimals = n
			return nil
		},
	},
	{
		aliases:   []string{"--name"},
		valueKind: "name",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			name := strings.TrimSpace(value)
			if name == "" {
				return fmt.Errorf("%s requires a name", flag)
			}
			cfg.RecipientName = name
			return nil
		},
	},
	{
		aliases: []string{"--max"},
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.UseMaximum = true
			return nil
		},
	},
	{
		aliases: []string{"--min"},
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.UseMinimum = true
			return nil
		},
	},
	{
		aliases: []string{"--no-log"},
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.NoLog = true
			return nil
		},
	},
	{
		aliases: []string{"-cp", "--copy"},
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.CopyToClipboard = true
			return nil
		},
	},
	{
		aliases: []string{"-h", "--help"},
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.ShowHelp = true
			return nil
		},
	},
	{
		aliases:   []string{"--log-level"},
		valueKind: "log level",
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.LogLevel = value
			return nil
		},
	},
	// Convenience shortcuts forcing the least generous score combination.
	{
		aliases: []string{"--asshole", "--dickhead"},
		apply: func(cfg *ParsedConfig, flag, value string) error {
			cfg.FriendScore = constants.MinFriendScore
			cfg.NiceScore = 1
			return nil
		},
	},
}

var flagLookup = buildLookup()

func buildLookup() map[string]*flagSpec {
	m := make(map[string]*flagSpec)
	for i := range flagTable {
		for _, alias := range flagTable[i].aliases {
			m[alias] = &flagTable[i]
		}
	}
	return m
}

// commandTokens maps recognized first tokens to their command. A match
// short-circuits all flag interpretation; the remaining tokens go to the
// subsystem's own mini-parser untouched.
var commandTokens = map[string]Command{
	"init-config":   CommandInitConfig,
	"update-config": CommandUpdateConfig,
	"log":           CommandLog,
	"version":       CommandVersion,
	"--version":     CommandVersion,
	"spendings":     CommandSpendings,
	"s":             CommandSpendings,
	"naughty-list":  CommandNaughtyList,
	"nl":            CommandNaughtyList,
}

// Parse maps the token list to a validated configuration record, filling
// unsupplied flags from defaults. The first error aborts parsing.
func Parse(args []string, defaults Defaults) (*ParsedConfig, error) {
	cfg := &ParsedConfig{
		BaseValue:        defaults.BaseValue,
		VariationPercent: defaults.VariationPercent,
		FriendScore:      defaults.FriendScore,
		NiceScore:        defaults.NiceScore,
		Currency:         defaults.Currency,
		Decimals:         defaults.Decimals,
		Command:          CommandCalculate,
	}

	if len(args) > 0 {
		if cmd, ok := commandTokens[args[0]]; ok {
			cfg.Command = cmd
			cfg.CommandArgs = args[1:]
			return cfg, nil
		}
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		spec, ok := flagLookup[flag]
		if !ok {
			return nil, fmt.Errorf("Unknown flag: %s", flag)
		}
		value := ""
		if spec.valueKind != "" {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a %s", flag, spec.valueKind)
			}
			i++
			value = args[i]
		}
		if err := spec.apply(cfg, flag, value); err != nil {
			return nil, err
		}
	}

	if cfg.UseMaximum && cfg.UseMinimum {
		return nil, fmt.Errorf("--max and --min cannot be combined")
	}

	return cfg, nil
}

func parseNumeric(flag, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s requires a numeric value", flag)
	}
	return v, nil
}

// Package constants provides shared constants for the gift-calc application.
package constants

// Calculation defaults, used when neither the persisted config file nor the
// command line supplies a value.
const (
	// DefaultBaseValue is the default gift base amount.
	DefaultBaseValue = 70.0

	// DefaultVariationPercent is the default symmetric variation bound.
	DefaultVariationPercent = 20.0

	// DefaultFriendScore is the neutral friend score.
	DefaultFriendScore = 5.0

	// DefaultNiceScore is the neutral nice score.
	DefaultNiceScore = 5.0

	// DefaultCurrency is the default display currency.
	DefaultCurrency = "SEK"

	// DefaultDecimals is the default number of fractional digits.
	DefaultDecimals = 2
)

// Validation bounds enforced by the argument parser.
const (
	// MaxVariationPercent is the upper bound for --variation.
	MaxVariationPercent = 100.0

	// MinFriendScore is the lower bound for --friendscore.
	MinFriendScore = 1.0

	// MaxFriendScore is the upper bound for --friendscore.
	MaxFriendScore = 10.0

	// MaxNiceScore is the upper bound for --nicescore.
	MaxNiceScore = 10.0

	// MaxDecimals is the upper bound for --decimals.
	MaxDecimals = 10

	// MinCurrencyLength is the minimum accepted currency code length.
	MinCurrencyLength = 3
)

// PercentageMultiplier is used for percentage conversions.
const PercentageMultiplier = 100.0

// File locations, all resolved relative to the user config directory unless
// overridden through the environment.
const (
	// ConfigDirName is the directory under ~/.config holding all state files.
	ConfigDirName = "gift-calc"

	// ConfigFileName is the persisted configuration file name.
	ConfigFileName = ".config.json"

	// NaughtyListFileName is the naughty-list store file name.
	NaughtyListFileName = "naughty-list.json"

	// LogFileName is the spending log file name.
	LogFileName = "gift-calc.log"

	// EnvConfigPath overrides the config file location when set.
	EnvConfigPath = "GIFT_CALC_CONFIG"
)

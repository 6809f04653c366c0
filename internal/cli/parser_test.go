package cli

import (
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, BuiltinDefaults())
	if err != nil {
		t.Fatalf("Parse(nil) unexpected error: %v", err)
	}
	if cfg.BaseValue != 70 {
		t.Errorf("default base value = %v, expected 70", cfg.BaseValue)
	}
	if cfg.VariationPercent != 20 {
		t.Errorf("default variation = %v, expected 20", cfg.VariationPercent)
	}
	if cfg.FriendScore != 5 || cfg.NiceScore != 5 {
		t.Errorf("default scores = %v/%v, expected 5/5", cfg.FriendScore, cfg.NiceScore)
	}
	if cfg.Currency != "SEK" {
		t.Errorf("default currency = %q, expected SEK", cfg.Currency)
	}
	if cfg.Decimals != 2 {
		t.Errorf("default decimals = %v, expected 2", cfg.Decimals)
	}
	if cfg.Command != CommandCalculate {
		t.Errorf("default command = %v, expected calculate", cfg.Command)
	}
}

func TestParseValueFlags(t *testing.T) {
	cfg, err := Parse([]string{"-b", "100", "-v", "30", "-f", "8", "-n", "7", "-c", "usd", "-d", "0", "--name", " Alice "}, BuiltinDefaults())
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if cfg.BaseValue != 100 {
		t.Errorf("base value = %v, expected 100", cfg.BaseValue)
	}
	if cfg.VariationPercent != 30 {
		t.Errorf("variation = %v, expected 30", cfg.VariationPercent)
	}
	if cfg.FriendScore != 8 {
		t.Errorf("friend score = %v, expected 8", cfg.FriendScore)
	}
	if cfg.NiceScore != 7 {
		t.Errorf("nice score = %v, expected 7", cfg.NiceScore)
	}
	if cfg.Currency != "USD" {
		t.Errorf("currency = %q, expected USD (case-folded)", cfg.Currency)
	}
	if cfg.Decimals != 0 {
		t.Errorf("decimals = %v, expected 0", cfg.Decimals)
	}
	if cfg.RecipientName != "Alice" {
		t.Errorf("recipient = %q, expected trimmed Alice", cfg.RecipientName)
	}
}

func TestParseBooleanFlags(t *testing.T) {
	cfg, err := Parse([]string{"--max", "--no-log", "-cp"}, BuiltinDefaults())
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if !cfg.UseMaximum {
		t.Errorf("expected UseMaximum set")
	}
	if !cfg.NoLog {
		t.Errorf("expected NoLog set")
	}
	if !cfg.CopyToClipboard {
		t.Errorf("expected CopyToClipboard set")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"Variation above bound", []string{"-v", "150"}, "must be between 0 and 100"},
		{"Variation below bound", []string{"-v", "-1"}, "must be between 0 and 100"},
		{"Friend score below bound", []string{"-f", "0"}, "must be between 1 and 10"},
		{"Friend score above bound", []string{"--friendscore", "11"}, "must be between 1 and 10"},
		{"Nice score above bound", []string{"-n", "11"}, "must be between 0 and 10"},
		{"Decimals above bound", []string{"-d", "15"}, "must be between 0 and 10"},
		{"Base value zero", []string{"-b", "0"}, "must be greater than 0"},
		{"Base value missing token", []string{"-b"}, "-b requires a numeric value"},
		{"Base value non-numeric", []string{"-b", "abc"}, "-b requires a numeric value"},
		{"Variation flag as value", []string{"-v", "--max"}, "-v requires a numeric value"},
		{"Currency missing token", []string{"-c"}, "-c requires a currency code"},
		{"Currency too short", []string{"-c", "kr"}, "-c requires a currency code"},
		{"Name missing token", []string{"--name"}, "--name requires a name"},
		{"Unknown long flag", []string{"--unknown-flag"}, "Unknown flag: --unknown-flag"},
		{"Unknown short flag", []string{"-x"}, "Unknown flag: -x"},
		{"Bare token", []string{"eighty"}, "Unknown flag: eighty"},
		{"Max and min combined", []string{"--max", "--min"}, "cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, BuiltinDefaults())
			if err == nil {
				t.Fatalf("Parse(%v) expected error containing %q, got nil", tt.args, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse(%v) error = %q, expected to contain %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestParseFailFast(t *testing.T) {
	// The first bad flag aborts parsing; the later valid flag never applies.
	_, err := Parse([]string{"-v", "150", "-b", "100"}, BuiltinDefaults())
	if err == nil || !strings.Contains(err.Error(), "must be between 0 and 100") {
		t.Fatalf("expected eager range failure, got %v", err)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		command  Command
		restLen  int
	}{
		{"Init config", []string{"init-config"}, CommandInitConfig, 0},
		{"Update config", []string{"update-config", "-b", "100"}, CommandUpdateConfig, 2},
		{"Log", []string{"log"}, CommandLog, 0},
		{"Version word", []string{"version"}, CommandVersion, 0},
		{"Version flag", []string{"--version"}, CommandVersion, 0},
		{"Spendings", []string{"spendings", "--from", "2026-01-01"}, CommandSpendings, 2},
		{"Spendings alias", []string{"s", "-w", "2"}, CommandSpendings, 2},
		{"Naughty list", []string{"naughty-list", "add", "Kevin"}, CommandNaughtyList, 2},
		{"Naughty list alias", []string{"nl", "list"}, CommandNaughtyList, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, BuiltinDefaults())
			if err != nil {
				t.Fatalf("Parse(%v) unexpected error: %v", tt.args, err)
			}
			if cfg.Command != tt.command {
				t.Errorf("command = %v, expected %v", cfg.Command, tt.command)
			}
			if len(cfg.CommandArgs) != tt.restLen {
				t.Errorf("command args = %v, expected %d tokens", cfg.CommandArgs, tt.restLen)
			}
		})
	}
}

func TestParseCommandShortCircuitsValidation(t *testing.T) {
	// Tokens after a command are the subsystem's problem, not this parser's.
	cfg, err := Parse([]string{"spendings", "-v", "9999"}, BuiltinDefaults())
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if cfg.Command != CommandSpendings {
		t.Errorf("command = %v, expected spendings", cfg.Command)
	}
}

func TestParseAbuseShortcuts(t *testing.T) {
	for _, flag := range []string{"--asshole", "--dickhead"} {
		cfg, err := Parse([]string{flag}, BuiltinDefaults())
		if err != nil {
			t.Fatalf("Parse(%s) unexpected error: %v", flag, err)
		}
		if cfg.FriendScore != 1 || cfg.NiceScore != 1 {
			t.Errorf("%s scores = %v/%v, expected 1/1", flag, cfg.FriendScore, cfg.NiceScore)
		}
	}
}

func TestParseMergesPersistedDefaults(t *testing.T) {
	persisted := BuiltinDefaults()
	persisted.BaseValue = 100
	persisted.Currency = "USD"

	cfg, err := Parse(nil, persisted)
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if cfg.BaseValue != 100 || cfg.Currency != "USD" {
		t.Errorf("persisted tier not honored: base %v currency %q", cfg.BaseValue, cfg.Currency)
	}

	// Explicit flags win over the persisted tier.
	cfg, err = Parse([]string{"-b", "50"}, persisted)
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if cfg.BaseValue != 50 {
		t.Errorf("flag tier not honored: base %v, expected 50", cfg.BaseValue)
	}
	if cfg.Currency != "USD" {
		t.Errorf("untouched persisted value lost: currency %q", cfg.Currency)
	}
}

func TestParseHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		cfg, err := Parse([]string{flag}, BuiltinDefaults())
		if err != nil {
			t.Fatalf("Parse(%s) unexpected error: %v", flag, err)
		}
		if !cfg.ShowHelp {
			t.Errorf("%s did not set ShowHelp", flag)
		}
	}
}

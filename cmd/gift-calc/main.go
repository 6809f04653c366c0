package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/iwvelando/gift-calc/internal/calc"
	"github.com/iwvelando/gift-calc/internal/cli"
	"github.com/iwvelando/gift-calc/internal/config"
	"github.com/iwvelando/gift-calc/internal/naughty"
	"github.com/iwvelando/gift-calc/internal/spendings"
	"github.com/iwvelando/gift-calc/pkg/constants"
	"github.com/iwvelando/gift-calc/pkg/format"
	"github.com/iwvelando/gift-calc/pkg/output"
	"github.com/iwvelando/gift-calc/pkg/random"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "warn" // Diagnostics stay quiet; stdout carries the result line
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	logFormat := loggingConfig.Format
	if logFormat == "" {
		logFormat = "console"
	}

	var zapConfig zap.Config
	switch logFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func usage() string {
	return `gift-calc - randomized gift amount suggestions

Usage:
  gift-calc [flags]
  gift-calc <command> [args]

Flags:
  -b, --basevalue <num>     base amount (default 70)
  -v, --variation <0-100>   variation percent (default 20)
  -f, --friendscore <1-10>  friend score biasing the draw (default 5)
  -n, --nicescore <0-10>    nice score; 0 means no gift (default 5)
  -c, --currency <code>     display currency (default SEK)
  -d, --decimals <0-10>     fractional digits (default 2)
      --max                 force the maximum variation
      --min                 force the minimum variation
      --name <text>         recipient name
      --no-log              skip the spending log entry
  -cp, --copy               copy the amount to the clipboard
      --log-level <level>   diagnostic log level override
  -h, --help                show this help
      --version             show the version

Commands:
  init-config               create the config file with defaults
  update-config [flags]     persist calculation flags as new defaults
  log                       print the spending log
  spendings, s              report logged spendings (--from/--to, -w, -m)
  naughty-list, nl          manage the naughty list (add/remove/list)
`
}

func main() {
	configPath, err := config.Path()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	dataDir := filepath.Dir(configPath)

	// Load the config file to get persisted defaults and logging configuration
	settings, _, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration at %s: %v\n", configPath, err)
		os.Exit(1)
	}

	// Three-tier override resolution: built-in defaults, then the persisted
	// config record, then explicit CLI flags applied by the parser.
	defaults := cli.BuiltinDefaults()
	settings.ApplyTo(&defaults)

	cfg, err := cli.Parse(os.Args[1:], defaults)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var loggingConfig config.LoggingConfig
	if settings != nil {
		loggingConfig = settings.Logging
	}
	logger, err := initializeLogger(loggingConfig, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.ShowHelp {
		fmt.Print(usage())
		return
	}

	switch cfg.Command {
	case cli.CommandVersion:
		fmt.Printf("gift-calc version %s\n", version)
	case cli.CommandInitConfig:
		if _, err := config.Init(configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Config file created at %s\n", configPath)
	case cli.CommandUpdateConfig:
		if _, err := config.Update(configPath, cfg.CommandArgs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Config file updated at %s\n", configPath)
	case cli.CommandLog:
		if err := printLog(filepath.Join(dataDir, constants.LogFileName)); err != nil {
			logger.Fatal("failed to read spending log",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case cli.CommandNaughtyList:
		if err := naughty.Run(cfg.CommandArgs, filepath.Join(dataDir, constants.NaughtyListFileName), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case cli.CommandSpendings:
		if err := runSpendings(cfg.CommandArgs, filepath.Join(dataDir, constants.LogFileName), logger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case cli.CommandCalculate:
		runCalculate(cfg, dataDir, logger)
	}
}

// runCalculate performs the single-shot computation: naughty-list check,
// amount calculation, result line, then the clipboard and spending-log side
// effects.
func runCalculate(cfg *cli.ParsedConfig, dataDir string, logger *zap.Logger) {
	onNaughtyList := false
	if cfg.RecipientName != "" {
		list, err := naughty.Load(filepath.Join(dataDir, constants.NaughtyListFileName))
		if err != nil {
			logger.Fatal("failed to load naughty list",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		onNaughtyList = list.IsNaughty(cfg.RecipientName)
	}

	var amount float64
	var display string
	if onNaughtyList {
		display = format.Amount(0, cfg.Decimals, cfg.Currency, cfg.RecipientName) + " (on naughty list!)"
	} else {
		result := calc.Calculate(*cfg, random.Default())
		amount = result.Amount
		display = result.Display
	}

	fmt.Println(display)

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(format.Number(amount, cfg.Decimals)); err != nil {
			logger.Warn("failed to copy amount to clipboard",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if !cfg.NoLog {
		entry := spendings.Entry{
			Timestamp: time.Now(),
			Amount:    amount,
			Currency:  cfg.Currency,
			Recipient: cfg.RecipientName,
		}
		if err := spendings.Append(filepath.Join(dataDir, constants.LogFileName), entry); err != nil {
			logger.Warn("failed to append spending log",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

func runSpendings(args []string, logPath string, logger *zap.Logger) error {
	window, err := spendings.ParseWindowArgs(args, time.Now())
	if err != nil {
		return err
	}
	entries, err := spendings.ReadLog(logPath, logger)
	if err != nil {
		return err
	}
	output.SpendingsReport(os.Stdout, spendings.Summarize(entries, window))
	return nil
}

func printLog(logPath string) error {
	f, err := os.Open(logPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("No spendings logged yet")
			return nil
		}
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	_, err = io.Copy(os.Stdout, f)
	return err
}

// Package spendings maintains the append-only spending log and answers
// report queries over it: a linear scan with a date filter and per-currency
// sums. Malformed lines are tolerated and skipped with a warning.
package spendings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/gift-calc/pkg/datetime"
	"go.uber.org/zap"
)

// Entry is one logged gift amount.
type Entry struct {
	Timestamp time.Time
	Amount    float64
	Currency  string
	Recipient string
}

// FormatLine renders an entry as a log line:
// "<RFC3339 timestamp> <amount> <CURRENCY>[ for <recipient>]".
func FormatLine(e Entry) string {
	line := e.Timestamp.Format(datetime.LogLayout) + " " +
		strconv.FormatFloat(e.Amount, 'f', -1, 64) + " " + e.Currency
	if e.Recipient != "" {
		line += " for " + e.Recipient
	}
	return line
}

// ParseLine decodes one log line produced by FormatLine.
func ParseLine(line string) (Entry, error) {
	parts := strings.SplitN(line, " ", 4)
	if len(parts) < 3 {
		return Entry{}, fmt.Errorf("malformed log line: %q", line)
	}

	ts, err := time.Parse(datetime.LogLayout, parts[0])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid timestamp in log line: %q", parts[0])
	}
	amount, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid amount in log line: %q", parts[1])
	}

	e := Entry{Timestamp: ts, Amount: amount, Currency: parts[2]}
	if len(parts) == 4 {
		recipient, ok := strings.CutPrefix(parts[3], "for ")
		if !ok {
			return Entry{}, fmt.Errorf("malformed recipient in log line: %q", parts[3])
		}
		e.Recipient = recipient
	}

	return e, nil
}

// Append writes one entry to the log file at path, creating it if needed.
func Append(path string, e Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open spending log %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(FormatLine(e) + "\n"); err != nil {
		return fmt.Errorf("append to spending log: %w", err)
	}
	return nil
}

// Scan reads all parseable entries from r. Lines that fail to parse are
// skipped with a warning rather than aborting the report.
func Scan(r io.Reader, logger *zap.Logger) ([]Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			logger.Warn("skipping malformed spending log line",
				zap.String("op", "spendings.Scan"),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read spending log: %w", err)
	}

	return entries, nil
}

// ReadLog loads all entries from the log file at path. A missing file yields
// an empty log.
func ReadLog(path string, logger *zap.Logger) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open spending log %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Scan(f, logger)
}

// Window is the inclusive time range a report covers.
type Window struct {
	From time.Time
	To   time.Time
}

// ParseWindowArgs handles the spendings command tokens: either an absolute
// range (--from <YYYY-MM-DD> [--to <YYYY-MM-DD>]) or a relative window
// ending now (-w/--weeks <n> or -m/--months <n>). Exactly one mode is
// required and they cannot be combined.
func ParseWindowArgs(args []string, now time.Time) (Window, error) {
	var (
		fromStr, toStr string
		weeks, months  int
		haveRelative   bool
	)

	i := 0
	next := func(flag, kind string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a %s", flag, kind)
		}
		i++
		return args[i], nil
	}

	for ; i < len(args); i++ {
		flag := args[i]
		switch flag {
		case "--from":
			v, err := next(flag, "date (YYYY-MM-DD)")
			if err != nil {
				return Window{}, err
			}
			fromStr = v
		case "--to":
			v, err := next(flag, "date (YYYY-MM-DD)")
			if err != nil {
				return Window{}, err
			}
			toStr = v
		case "-w", "--weeks":
			v, err := next(flag, "numeric value")
			if err != nil {
				return Window{}, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return Window{}, fmt.Errorf("%s requires a positive number of weeks", flag)
			}
			weeks = n
			haveRelative = true
		case "-m", "--months":
			v, err := next(flag, "numeric value")
			if err != nil {
				return Window{}, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return Window{}, fmt.Errorf("%s requires a positive number of months", flag)
			}
			months = n
			haveRelative = true
		default:
			return Window{}, fmt.Errorf("Unknown flag: %s", flag)
		}
	}

	haveAbsolute := fromStr != "" || toStr != ""
	if haveAbsolute && haveRelative {
		return Window{}, fmt.Errorf("cannot combine --from/--to with a relative window")
	}
	if !haveAbsolute && !haveRelative {
		return Window{}, fmt.Errorf("spendings requires --from/--to, -w/--weeks, or -m/--months")
	}

	if haveRelative {
		from := now
		if weeks > 0 {
			from = from.AddDate(0, 0, -7*weeks)
		}
		if months > 0 {
			from = from.AddDate(0, -months, 0)
		}
		return Window{From: from, To: now}, nil
	}

	if fromStr == "" {
		return Window{}, fmt.Errorf("--to requires --from")
	}
	from, err := datetime.ParseDay(fromStr)
	if err != nil {
		return Window{}, fmt.Errorf("--from requires a date (YYYY-MM-DD)")
	}
	to := now
	if toStr != "" {
		t, err := datetime.ParseDay(toStr)
		if err != nil {
			return Window{}, fmt.Errorf("--to requires a date (YYYY-MM-DD)")
		}
		to = datetime.EndOfDay(t)
	}
	return Window{From: from, To: to}, nil
}

// Report holds the filtered entries and their per-currency sums.
type Report struct {
	Window  Window
	Entries []Entry
	Totals  map[string]float64
}

// Summarize filters entries to the window and sums amounts per currency.
func Summarize(entries []Entry, window Window) Report {
	report := Report{Window: window, Totals: make(map[string]float64)}
	for _, e := range entries {
		if !datetime.WithinRange(e.Timestamp, window.From, window.To) {
			continue
		}
		report.Entries = append(report.Entries, e)
		report.Totals[e.Currency] += e.Amount
	}
	return report
}

// Currencies returns the report's currency codes in sorted order.
func (r Report) Currencies() []string {
	codes := make([]string, 0, len(r.Totals))
	for c := range r.Totals {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

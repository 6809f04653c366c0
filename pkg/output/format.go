// Package output provides utilities for formatting and displaying spendings
// reports.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/gift-calc/internal/spendings"
	"github.com/iwvelando/gift-calc/pkg/datetime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SpendingsReport outputs a human-readable table of the matching log entries
// followed by per-currency totals.
func SpendingsReport(w io.Writer, report spendings.Report) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Spendings from %s to %s ---\n",
		report.Window.From.Format(datetime.DayLayout),
		report.Window.To.Format(datetime.DayLayout))

	if len(report.Entries) == 0 {
		fmt.Fprintf(w, "No spendings in the selected period\n")
		return
	}

	fmt.Fprintf(w, "Date       | Amount\n")
	fmt.Fprintf(w, "____       | ______\n")
	for _, e := range report.Entries {
		line := p.Sprintf("%s | %.2f %s", e.Timestamp.Format(datetime.DayLayout), e.Amount, e.Currency)
		if e.Recipient != "" {
			line += " for " + e.Recipient
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nTotals:\n")
	for _, currency := range report.Currencies() {
		_, _ = p.Fprintf(w, "  %.2f %s\n", report.Totals[currency], currency)
	}
}

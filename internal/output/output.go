package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agenthands/arena/internal/model"
)

const divider = "----------------------------------------"

// Render writes a round report in a plain terminal layout: the question,
// any providers that dropped out and why, then the ranking best-first.
func Render(w io.Writer, report *model.Report) {
	fmt.Fprintln(w, "Question:")
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, report.Question.Text)
	fmt.Fprintln(w, divider)

	if len(report.Failed) > 0 {
		fmt.Fprintln(w, "\nProviders without a valid response:")
		names := make([]string, 0, len(report.Failed))
		for name := range report.Failed {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			o := report.Failed[name]
			switch o.Kind {
			case model.OutcomeTimeout:
				fmt.Fprintf(w, "  - %s: timed out\n", name)
			default:
				fmt.Fprintf(w, "  - %s: %s\n", name, o.Err)
			}
		}
	}

	if report.Unjudged {
		fmt.Fprintln(w, "\nNo ranking was produced for this round.")
		if len(report.Unranked) > 0 {
			fmt.Fprintln(w, "\nUnranked responses:")
			names := make([]string, 0, len(report.Unranked))
			for name := range report.Unranked {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "  - %s:\n", name)
				fmt.Fprintf(w, "    %s\n", indent(report.Unranked[name], 4))
			}
		}
		return
	}

	fmt.Fprintln(w, "\nRanking (best to worst):")
	for _, r := range report.Ranking {
		fmt.Fprintf(w, "  %d. %s\n", r.Rank, r.Provider)
		fmt.Fprintf(w, "     %s\n", indent(r.Text, 5))
	}

	if report.Rationale != "" {
		fmt.Fprintln(w, "\nJudge's rationale:")
		fmt.Fprintln(w, report.Rationale)
	}
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n"+pad)
}

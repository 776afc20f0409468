package analyze

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/insaineyesay/mrkrabz/internal/types"
)

var (
	// One report row: label|file_count|line_count. Labels may contain
	// anything but a pipe; whitespace around fields is tolerated.
	reportLineRe = regexp.MustCompile(`^\s*([^|]+?)\s*\|\s*(\d+)\s*\|\s*(\d+)\s*$`)

	// The trailing summary the scripts emit after the rows.
	totalLineRe = regexp.MustCompile(`^\s*Total:\s*(\d+)\s+code files`)
)

// ParseReport turns the captured text output of a file-count script into
// a structured report. Lines that match neither a report row nor the
// total line are ignored, so scripts may emit extra diagnostics freely.
// Row order is kept exactly as emitted. The script's own total is only
// cross-checked: on a mismatch the accumulated per-language sum wins and
// the report carries a warning.
func ParseReport(output string) types.AnalysisReport {
	var report types.AnalysisReport
	scriptTotal := -1

	for _, line := range strings.Split(output, "\n") {
		if m := reportLineRe.FindStringSubmatch(line); m != nil {
			files, _ := strconv.Atoi(m[2])
			lines, _ := strconv.Atoi(m[3])
			if files == 0 {
				// Languages with no files never appear in a report.
				continue
			}
			report.Entries = append(report.Entries, types.LanguageCount{
				Language: m[1],
				Files:    files,
				Lines:    lines,
			})
			report.Total += files
			continue
		}
		if m := totalLineRe.FindStringSubmatch(line); m != nil {
			scriptTotal, _ = strconv.Atoi(m[1])
		}
	}

	if scriptTotal >= 0 && scriptTotal != report.Total {
		report.Warning = fmt.Sprintf("script total %d disagrees with entry sum %d; using the sum", scriptTotal, report.Total)
	}
	if len(report.Entries) == 0 && scriptTotal < 0 {
		report.Partial = true
		report.Warning = "no report lines found in script output"
	}

	return report
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/insaineyesay/mrkrabz/internal/analyze"
	"github.com/insaineyesay/mrkrabz/internal/config"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

// AnalyzeOptions contains options for a one-shot analysis
type AnalyzeOptions struct {
	Repo string // owner/repo shorthand or a full clone URL
}

// Analyze clones the repository into a throwaway workspace, runs the
// configured count script, and prints the parsed report to stdout.
// Progress goes to stderr so the report stays pipeable.
func Analyze(opts AnalyzeOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repoURL := NormalizeRepoURL(opts.Repo)
	runner := analyze.NewRunner(cfg)

	var bar *progressbar.ProgressBar
	runner.SetProgressCallback(func(step, total int, phase string) {
		if bar == nil {
			bar = newPhaseBar(total, os.Stderr)
		}
		bar.Describe(phaseDescription(phase))
		_ = bar.Set(step - 1)
	})

	report, err := runner.Run(context.Background(), repoURL)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	printReport(os.Stdout, repoURL, report)
	return nil
}

// NormalizeRepoURL turns an owner/repo shorthand into a github.com URL.
// Anything already shaped like a URL or an SSH remote passes through.
func NormalizeRepoURL(repo string) string {
	if strings.HasPrefix(repo, "http://") ||
		strings.HasPrefix(repo, "https://") ||
		strings.HasPrefix(repo, "git@") {
		return repo
	}
	return "https://github.com/" + repo
}

// newPhaseBar creates a progress bar with consistent styling
func newPhaseBar(max int, writer io.Writer) *progressbar.ProgressBar {
	if writer == nil {
		writer = io.Discard
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription("Analyzing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)
}

// phaseDescription returns a human-readable description for each
// pipeline phase.
func phaseDescription(phase string) string {
	switch phase {
	case "clone":
		return "Cloning repository"
	case "stage":
		return "Staging count script"
	case "count":
		return "Counting files"
	case "parse":
		return "Parsing report"
	default:
		return phase
	}
}

// printReport renders a parsed analysis report.
func printReport(w io.Writer, repoURL string, report types.AnalysisReport) {
	bannerColor.Fprintf(w, "File count for %s\n\n", repoURL)

	for _, e := range report.Entries {
		fmt.Fprintf(w, "%-16s %6d files", e.Language, e.Files)
		if e.Lines > 0 {
			fmt.Fprintf(w, " %9d lines", e.Lines)
		}
		fmt.Fprintln(w)
	}
	if report.HasEntries() {
		fmt.Fprintln(w)
	}

	line := fmt.Sprintf("Total: %d code files", report.Total)
	if report.Partial {
		line += " (partial)"
	}
	totalColor.Fprintln(w, line)

	if report.Warning != "" {
		warnColor.Fprintf(w, "⚠ %s\n", report.Warning)
	}
}

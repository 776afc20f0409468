package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/insaineyesay/mrkrabz/internal/types"
)

func TestMain(m *testing.M) {
	// Keep ANSI escapes out of the assertions
	color.NoColor = true
	os.Exit(m.Run())
}

func sampleMatches() []types.RepositoryMatch {
	return []types.RepositoryMatch{
		{
			FullName:    "octocat/hello-world",
			Description: "My first repository",
			Stars:       1420,
			Forks:       320,
			Language:    "Rust",
			URL:         "https://github.com/octocat/hello-world",
			SizeKB:      2048,
			UpdatedAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			FullName: "octocat/spoon-knife",
			Stars:    9,
			Forks:    4,
			URL:      "https://github.com/octocat/spoon-knife",
		},
	}
}

func TestFormatOutputText(t *testing.T) {
	out, err := formatOutput(sampleMatches(), 42, "text", "")
	if err != nil {
		t.Fatalf("formatOutput() error = %v", err)
	}

	for _, want := range []string{
		"Found 42 repositories (showing 2)",
		"1. octocat/hello-world",
		"⭐ 1420",
		"🍴 320",
		"💻 Rust",
		"My first repository",
		"https://github.com/octocat/hello-world",
		"2. octocat/spoon-knife",
		"💻 Unknown",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatOutputTextEmpty(t *testing.T) {
	out, err := formatOutput(nil, 0, "text", "")
	if err != nil {
		t.Fatalf("formatOutput() error = %v", err)
	}
	if !strings.Contains(out, "No repositories found.") {
		t.Errorf("empty output = %q, want no-results notice", out)
	}
}

func TestFormatOutputJSON(t *testing.T) {
	out, err := formatOutput(sampleMatches(), 42, "json", "")
	if err != nil {
		t.Fatalf("formatOutput() error = %v", err)
	}

	var result searchResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if result.Total != 42 {
		t.Errorf("total = %d, want 42", result.Total)
	}
	if len(result.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(result.Matches))
	}
	if result.Matches[0].FullName != "octocat/hello-world" {
		t.Errorf("first match = %q", result.Matches[0].FullName)
	}
}

func TestFormatOutputYAML(t *testing.T) {
	out, err := formatOutput(sampleMatches(), 42, "yaml", "")
	if err != nil {
		t.Fatalf("formatOutput() error = %v", err)
	}

	var result searchResult
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if result.Total != 42 || len(result.Matches) != 2 {
		t.Errorf("round trip = total %d, %d matches", result.Total, len(result.Matches))
	}
}

func TestFormatOutputUnknownFormat(t *testing.T) {
	if _, err := formatOutput(sampleMatches(), 42, "xml", ""); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFormatOutputFilter(t *testing.T) {
	out, err := formatOutput(sampleMatches(), 42, "json", "matches[].fullName")
	if err != nil {
		t.Fatalf("formatOutput() error = %v", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		t.Fatalf("filter output does not parse: %v", err)
	}
	want := []string{"octocat/hello-world", "octocat/spoon-knife"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("filter output = %v, want %v", names, want)
	}
}

func TestFormatOutputFilterYAML(t *testing.T) {
	out, err := formatOutput(sampleMatches(), 42, "yaml", "total")
	if err != nil {
		t.Fatalf("formatOutput() error = %v", err)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("yaml filter output = %q, want 42", out)
	}
}

func TestFormatOutputFilterInvalid(t *testing.T) {
	if _, err := formatOutput(sampleMatches(), 42, "json", "matches[unclosed"); err == nil {
		t.Fatal("expected error for invalid JMESPath expression")
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"shorthand", "octocat/hello-world", "https://github.com/octocat/hello-world"},
		{"https url", "https://github.com/octocat/hello-world", "https://github.com/octocat/hello-world"},
		{"http url", "http://example.com/repo", "http://example.com/repo"},
		{"ssh remote", "git@github.com:octocat/hello-world.git", "git@github.com:octocat/hello-world.git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.in); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPhaseDescription(t *testing.T) {
	if got := phaseDescription("clone"); got != "Cloning repository" {
		t.Errorf("phaseDescription(clone) = %q", got)
	}
	if got := phaseDescription("mystery"); got != "mystery" {
		t.Errorf("unknown phase = %q, want pass-through", got)
	}
}

func TestPrintReport(t *testing.T) {
	report := types.AnalysisReport{
		Entries: []types.LanguageCount{
			{Language: "JavaScript", Files: 10, Lines: 450},
			{Language: "JSON", Files: 3},
		},
		Total: 13,
	}

	var buf bytes.Buffer
	printReport(&buf, "https://github.com/octocat/hello-world", report)
	out := buf.String()

	for _, want := range []string{
		"File count for https://github.com/octocat/hello-world",
		"JavaScript",
		"450 lines",
		"JSON",
		"Total: 13 code files",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(partial)") {
		t.Error("complete report must not be marked partial")
	}
}

func TestPrintReportPartialWithWarning(t *testing.T) {
	report := types.AnalysisReport{
		Total:   0,
		Partial: true,
		Warning: "no report lines found in script output",
	}

	var buf bytes.Buffer
	printReport(&buf, "https://github.com/octocat/hello-world", report)
	out := buf.String()

	if !strings.Contains(out, "Total: 0 code files (partial)") {
		t.Errorf("partial marker missing:\n%s", out)
	}
	if !strings.Contains(out, "no report lines found") {
		t.Errorf("warning missing:\n%s", out)
	}
}

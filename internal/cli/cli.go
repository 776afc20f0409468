// Package cli implements the one-shot command line modes: a single
// search printed to stdout and a single repository analysis. Colors are
// handled by fatih/color, which downgrades to plain text when stdout is
// not a terminal.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"

	"github.com/insaineyesay/mrkrabz/internal/search"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	totalColor  = color.New(color.FgGreen, color.Bold)
	indexColor  = color.New(color.FgCyan)
	nameColor   = color.New(color.Bold)
	starsColor  = color.New(color.FgYellow)
	forksColor  = color.New(color.FgGreen)
	langColor   = color.New(color.FgBlue)
	descColor   = color.New(color.Faint)
	urlColor    = color.New(color.FgCyan, color.Underline)
	warnColor   = color.New(color.FgYellow)
)

// RunOptions contains options for running a search in CLI mode
type RunOptions struct {
	Query        types.Query
	Token        string
	OutputFormat string // text, json, yaml
	Filter       string // JMESPath expression applied to the JSON form
}

// searchResult is the machine-readable shape of one search.
type searchResult struct {
	Total   int                     `json:"total" yaml:"total"`
	Matches []types.RepositoryMatch `json:"matches" yaml:"matches"`
}

// Run executes one search and prints the results to stdout
func Run(opts RunOptions) error {
	if opts.OutputFormat == "" || opts.OutputFormat == "text" {
		bannerColor.Printf("🔍 Searching for: %s\n\n", opts.Query.Text)
	}

	client := search.NewClient(opts.Token)
	matches, total, err := client.Search(context.Background(), opts.Query)
	if err != nil {
		return err
	}

	output, err := formatOutput(matches, total, opts.OutputFormat, opts.Filter)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(output)
	return nil
}

// formatOutput renders matches in the requested format. A JMESPath
// filter reshapes the results arbitrarily, so its output is the filter
// result itself rather than the repository listing.
func formatOutput(matches []types.RepositoryMatch, total int, format, filter string) (string, error) {
	result := searchResult{Total: total, Matches: matches}

	if filter != "" {
		data, err := json.Marshal(result)
		if err != nil {
			return "", err
		}
		filtered, err := applyJMESPath(string(data), filter)
		if err != nil {
			return "", err
		}
		if format == "yaml" {
			return jsonToYAML(filtered)
		}
		return filtered + "\n", nil
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text", "":
		return renderText(matches, total), nil

	default:
		return "", fmt.Errorf("unknown output format %q: use text, json, or yaml", format)
	}
}

// renderText renders the ranked listing: index, name, stats line,
// description, URL.
func renderText(matches []types.RepositoryMatch, total int) string {
	if len(matches) == 0 {
		return warnColor.Sprint("No repositories found.") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(totalColor.Sprintf("Found %d repositories (showing %d)", total, len(matches)))
	sb.WriteString("\n\n")

	for i, m := range matches {
		language := m.Language
		if language == "" {
			language = "Unknown"
		}

		sb.WriteString(indexColor.Sprintf("%d.", i+1))
		sb.WriteString(" ")
		sb.WriteString(nameColor.Sprint(m.FullName))
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("   %s | %s | %s\n",
			starsColor.Sprintf("⭐ %d", m.Stars),
			forksColor.Sprintf("🍴 %d", m.Forks),
			langColor.Sprintf("💻 %s", language)))

		if m.Description != "" {
			sb.WriteString("   ")
			sb.WriteString(descColor.Sprint(m.Description))
			sb.WriteString("\n")
		}

		sb.WriteString("   ")
		sb.WriteString(urlColor.Sprint(m.URL))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// applyJMESPath applies a JMESPath expression to a JSON string
func applyJMESPath(jsonStr string, expression string) (string, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(output), nil
}

// jsonToYAML re-renders a JSON document as YAML.
func jsonToYAML(jsonStr string) (string, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

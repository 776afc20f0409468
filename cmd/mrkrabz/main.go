package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/insaineyesay/mrkrabz/internal/cli"
	"github.com/insaineyesay/mrkrabz/internal/tui"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mrkrabz [query...]",
	Short: "GitHub repository search with an interactive TUI",
	Long: `mrkrabz searches GitHub repositories from the terminal.

Run without arguments to start the interactive TUI, or provide query
tokens for one-shot output. Filter flags carry over into the TUI: a
language or size filter set here applies to every interactive search.

Examples:
  mrkrabz                              # Start interactive TUI
  mrkrabz rust game engine             # One-shot search
  mrkrabz -L rust -s 1000 web          # Rust repos with 1000+ stars
  mrkrabz --size small cli             # Repos under 25 MB
  mrkrabz -o json game | jq .          # Machine-readable output
  mrkrabz search game --query 'matches[].fullName'
  mrkrabz analyze octocat/hello-world  # Clone and count code files`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Query tokens select one-shot mode; bare invocation starts the TUI
		if len(args) > 0 {
			return runSearch(args)
		}
		if flagNoTUI {
			return fmt.Errorf("no query provided; use --help for usage")
		}
		return runTUI()
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search repositories once and print the results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <owner/repo|url>",
	Short: "Clone a repository and count its code files by language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Analyze(cli.AnalyzeOptions{Repo: args[0]})
	},
}

// Flags for root/search command
var (
	flagLimit    int
	flagLanguage string
	flagStars    int
	flagSize     string
	flagSort     string
	flagToken    string
	flagNoTUI    bool
	flagOutput   string
	flagQuery    string
)

func init() {
	// Root command flags
	rootCmd.Flags().IntVarP(&flagLimit, "limit", "l", 100, "Number of results to display")
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "L", "", "Filter by language (e.g., \"rust\", \"python\")")
	rootCmd.Flags().IntVarP(&flagStars, "stars", "s", 0, "Filter by minimum stars")
	rootCmd.Flags().StringVar(&flagSize, "size", "", "Filter by repository size: small (<25MB), medium (25-100MB), large (>100MB)")
	rootCmd.Flags().StringVar(&flagSort, "sort", "", "Sort by: stars, forks, updated (default: best match)")
	rootCmd.PersistentFlags().StringVarP(&flagToken, "token", "t", "", "GitHub personal access token (defaults to GITHUB_TOKEN)")
	rootCmd.Flags().BoolVar(&flagNoTUI, "no-tui", false, "Force CLI mode (no interactive TUI)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (text/json/yaml)")
	rootCmd.Flags().StringVar(&flagQuery, "query", "", "JMESPath expression applied to the JSON results")

	// Search command flags (same as root)
	searchCmd.Flags().IntVarP(&flagLimit, "limit", "l", 100, "Number of results to display")
	searchCmd.Flags().StringVarP(&flagLanguage, "language", "L", "", "Filter by language (e.g., \"rust\", \"python\")")
	searchCmd.Flags().IntVarP(&flagStars, "stars", "s", 0, "Filter by minimum stars")
	searchCmd.Flags().StringVar(&flagSize, "size", "", "Filter by repository size: small (<25MB), medium (25-100MB), large (>100MB)")
	searchCmd.Flags().StringVar(&flagSort, "sort", "", "Sort by: stars, forks, updated (default: best match)")
	searchCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (text/json/yaml)")
	searchCmd.Flags().StringVar(&flagQuery, "query", "", "JMESPath expression applied to the JSON results")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// runSearch executes a one-shot search in CLI mode
func runSearch(tokens []string) error {
	opts := cli.RunOptions{
		Query:        buildQuery(tokens),
		Token:        githubToken(),
		OutputFormat: flagOutput,
		Filter:       flagQuery,
	}
	return cli.Run(opts)
}

// runTUI starts the interactive TUI
func runTUI() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("interactive mode needs a terminal; provide a query for one-shot output")
	}

	// bubbletea owns the terminal, so the standard logger writes to a file
	logFile, err := os.OpenFile("mrkrabz.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	return tui.Run(tui.Options{
		Token:   githubToken(),
		Base:    buildQuery(nil),
		Version: version,
	})
}

// buildQuery assembles a Query from the positional tokens and the
// filter flags.
func buildQuery(tokens []string) types.Query {
	return types.Query{
		Text:     strings.Join(tokens, " "),
		Language: flagLanguage,
		MinStars: flagStars,
		Size:     flagSize,
		Sort:     flagSort,
		Limit:    flagLimit,
	}
}

func githubToken() string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv("GITHUB_TOKEN")
}

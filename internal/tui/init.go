package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/insaineyesay/mrkrabz/internal/analyze"
	"github.com/insaineyesay/mrkrabz/internal/config"
	"github.com/insaineyesay/mrkrabz/internal/search"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

// Options carries startup state from the command line into the model
type Options struct {
	Token   string      // GitHub token, may be empty
	Base    types.Query // filters from flags, applied to every search
	Version string
}

// New creates a new TUI model
func New(client *search.Client, runner *analyze.Runner, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. rust game"
	ti.CharLimit = 256
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleWarning

	return Model{
		client:      client,
		runner:      runner,
		version:     opts.Version,
		mode:        ModeEditing,
		queryInput:  ti,
		baseQuery:   opts.Base,
		sizeFilter:  opts.Base.Size,
		selected:    -1,
		reports:     make(map[string]types.AnalysisReport),
		cloneStatus: make(map[string]string),
		detailsView: viewport.New(80, 20),
		spinner:     sp,
	}
}

// Run starts the TUI
func Run(opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := search.NewClient(opts.Token)
	runner := analyze.NewRunner(cfg)

	m := New(client, runner, opts)

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/insaineyesay/mrkrabz/internal/analyze"
	"github.com/insaineyesay/mrkrabz/internal/search"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeEditing Mode = iota
	ModeSearching
	ModeBrowsing
	ModeAnalyzing
	ModeError
)

// Model represents the TUI state
type Model struct {
	// Collaborators
	client  *search.Client
	runner  *analyze.Runner
	version string

	mode Mode

	// Query state
	queryInput textinput.Model
	baseQuery  types.Query // language/stars/sort/limit carried over from flags
	sizeFilter string      // size filter applied to the next search
	query      types.Query // last submitted query

	// Results
	matches       []types.RepositoryMatch
	totalCount    int // total reported by GitHub, not just the page we hold
	selected      int // index into matches, -1 when nothing is selected
	resultsOffset int // scroll offset for the results list

	// Per-repository results of side operations, keyed by URL so they
	// survive selection changes and later searches
	reports     map[string]types.AnalysisReport
	cloneStatus map[string]string

	// Pending flag and generation counter per operation kind. A dispatch
	// bumps the generation; completions carrying an older generation are
	// dropped. At most one operation per kind is in flight.
	searchPending  bool
	analyzePending bool
	clonePending   bool
	searchGen      int
	analyzeGen     int
	cloneGen       int

	// Widgets
	detailsView viewport.Model
	spinner     spinner.Model

	// UI state
	width         int
	height        int
	resultsHeight int
	detailsHeight int
	statusMsg     string
	errorMsg      string

	// Release check
	updateAvailable bool
	latestVersion   string
	updateURL       string
}

// Init kicks off cursor blinking and the background release check
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.checkForUpdate())
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.updateDetailsView()

	case spinner.TickMsg:
		if m.anyPending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			if m.analyzePending || m.clonePending {
				m.updateDetailsView()
			}
			return m, cmd
		}

	case searchDoneMsg:
		if msg.gen != m.searchGen {
			log.Printf("tui: dropping stale search completion (gen %d, current %d)", msg.gen, m.searchGen)
			return m, nil
		}
		m.searchPending = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			m.mode = ModeError
			return m, nil
		}
		m.matches = msg.matches
		m.totalCount = msg.total
		m.resultsOffset = 0
		if len(m.matches) > 0 {
			m.selected = 0
		} else {
			m.selected = -1
		}
		m.mode = ModeBrowsing
		m.queryInput.Blur()
		m.detailsView.GotoTop()
		m.updateDetailsView()

	case analyzeDoneMsg:
		if msg.gen != m.analyzeGen {
			log.Printf("tui: dropping stale analysis completion (gen %d, current %d)", msg.gen, m.analyzeGen)
			return m, nil
		}
		m.analyzePending = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			m.mode = ModeError
			return m, nil
		}
		m.reports[msg.url] = msg.report
		m.mode = ModeBrowsing
		m.updateDetailsView()
		return m, m.setStatusMessage(fmt.Sprintf("Counted %d code files", msg.report.Total))

	case cloneDoneMsg:
		if msg.gen != m.cloneGen {
			log.Printf("tui: dropping stale clone completion (gen %d, current %d)", msg.gen, m.cloneGen)
			return m, nil
		}
		m.clonePending = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			m.mode = ModeError
			return m, nil
		}
		m.cloneStatus[msg.url] = "Cloned to " + msg.path
		m.updateDetailsView()
		return m, m.setStatusMessage("Cloned to " + msg.path)

	case versionCheckMsg:
		if msg.err == nil && msg.available {
			m.updateAvailable = true
			m.latestVersion = msg.latestVersion
			m.updateURL = msg.url
		}

	case clearStatusMsg:
		m.statusMsg = ""
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.renderMain()
}

func (m *Model) anyPending() bool {
	return m.searchPending || m.analyzePending || m.clonePending
}

// selectedMatch returns the currently selected repository, if any.
func (m *Model) selectedMatch() (types.RepositoryMatch, bool) {
	if m.selected < 0 || m.selected >= len(m.matches) {
		return types.RepositoryMatch{}, false
	}
	return m.matches[m.selected], true
}

// layout recomputes section heights after a resize. The query box, help
// bar, and status line are fixed; results and details share the rest.
func (m *Model) layout() {
	flexible := m.height - QueryBoxHeight - HelpBarHeight - StatusBarLines
	resultsH := flexible * ResultsHeightNum / ResultsHeightDen
	if resultsH < ResultsMinHeight {
		resultsH = ResultsMinHeight
	}
	detailsH := flexible - resultsH
	if detailsH < DetailsMinHeight {
		detailsH = DetailsMinHeight
	}
	m.resultsHeight = resultsH
	m.detailsHeight = detailsH

	m.queryInput.Width = m.width - BorderColumns - 4
	m.detailsView.Width = m.width - BorderColumns - 2
	m.detailsView.Height = detailsH - BorderLines - 1
	if m.detailsView.Height < 1 {
		m.detailsView.Height = 1
	}
}

// setStatusMessage shows a transient status line and schedules its clear
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(StatusTimeoutSeconds*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Custom message types
type searchDoneMsg struct {
	gen     int
	matches []types.RepositoryMatch
	total   int
	err     error
}

type analyzeDoneMsg struct {
	gen    int
	url    string
	report types.AnalysisReport
	err    error
}

type cloneDoneMsg struct {
	gen  int
	url  string
	path string
	err  error
}

type versionCheckMsg struct {
	available     bool
	latestVersion string
	url           string
	err           error
}

type clearStatusMsg struct{}

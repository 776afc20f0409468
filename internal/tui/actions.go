package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/insaineyesay/mrkrabz/internal/analyze"
	"github.com/insaineyesay/mrkrabz/internal/browser"
	"github.com/insaineyesay/mrkrabz/internal/version"
)

// CloneDestDir is where alt+g clones land, relative to the working directory
const CloneDestDir = "repositories"

// moveSelection moves the result selection up or down, clamped to bounds
func (m *Model) moveSelection(delta int) {
	if len(m.matches) == 0 {
		return
	}

	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	} else if m.selected >= len(m.matches) {
		m.selected = len(m.matches) - 1
	}

	// Adjust scroll offset
	pageSize := m.resultsPageSize()
	if m.selected < m.resultsOffset {
		m.resultsOffset = m.selected
	} else if m.selected >= m.resultsOffset+pageSize {
		m.resultsOffset = m.selected - pageSize + 1
	}

	// Details follow the selection
	m.detailsView.GotoTop()
	m.updateDetailsView()
}

func (m *Model) resultsPageSize() int {
	pageSize := m.resultsHeight - BorderLines - BoxTitleLines - ResultsFooterLines
	if pageSize < 1 {
		pageSize = 1
	}
	return pageSize
}

// dispatchSearch submits the draft query. An empty draft, or a dispatch
// while a search is already pending, is a no-op.
func (m *Model) dispatchSearch() tea.Cmd {
	if m.searchPending {
		return nil
	}
	draft := strings.TrimSpace(m.queryInput.Value())
	if draft == "" {
		return nil
	}

	query := m.baseQuery
	query.Text = draft
	query.Size = m.sizeFilter
	m.query = query

	m.searchPending = true
	m.searchGen++
	gen := m.searchGen
	m.mode = ModeSearching
	m.errorMsg = ""

	client := m.client
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		matches, total, err := client.Search(context.Background(), query)
		return searchDoneMsg{gen: gen, matches: matches, total: total, err: err}
	})
}

// dispatchAnalyze starts a clone-and-count run for the selected
// repository. At most one analysis is in flight at a time.
func (m *Model) dispatchAnalyze() tea.Cmd {
	if m.analyzePending {
		return nil
	}
	repo, ok := m.selectedMatch()
	if !ok {
		return nil
	}

	m.analyzePending = true
	m.analyzeGen++
	gen := m.analyzeGen
	m.mode = ModeAnalyzing
	m.errorMsg = ""
	m.updateDetailsView()

	runner := m.runner
	url := repo.URL
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		report, err := runner.Run(context.Background(), url)
		return analyzeDoneMsg{gen: gen, url: url, report: report, err: err}
	})
}

// dispatchClone starts a persistent clone of the selected repository
// into ./repositories. Browsing continues while it runs.
func (m *Model) dispatchClone() tea.Cmd {
	if m.clonePending {
		return nil
	}
	repo, ok := m.selectedMatch()
	if !ok {
		return nil
	}

	m.clonePending = true
	m.cloneGen++
	gen := m.cloneGen
	m.updateDetailsView()

	url := repo.URL
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		path, err := analyze.CloneInto(context.Background(), url, CloneDestDir)
		return cloneDoneMsg{gen: gen, url: url, path: path, err: err}
	})
}

// openSelected hands the selected repository's URL to the system
// browser. Fire and forget; a launch failure becomes a status line.
func (m *Model) openSelected() tea.Cmd {
	repo, ok := m.selectedMatch()
	if !ok {
		return nil
	}
	if err := browser.Open(repo.URL); err != nil {
		return m.setStatusMessage("Could not open browser: " + err.Error())
	}
	return m.setStatusMessage("Opened " + repo.FullName)
}

// copySelectedURL puts the selected repository's URL on the clipboard
func (m *Model) copySelectedURL() tea.Cmd {
	repo, ok := m.selectedMatch()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(repo.URL); err != nil {
		return m.setStatusMessage("Clipboard unavailable: " + err.Error())
	}
	return m.setStatusMessage("Copied " + repo.URL)
}

// setSizeFilter pre-sets the size qualifier for the next search
func (m *Model) setSizeFilter(size string) tea.Cmd {
	m.sizeFilter = size
	if size == "" {
		return m.setStatusMessage("Size filter cleared")
	}
	return m.setStatusMessage("Size filter: " + size + " (applies to the next search)")
}

// checkForUpdate queries the latest release in the background
func (m *Model) checkForUpdate() tea.Cmd {
	current := m.version
	return func() tea.Msg {
		available, latest, url, err := version.CheckForUpdate(current)
		return versionCheckMsg{available: available, latestVersion: latest, url: url, err: err}
	}
}

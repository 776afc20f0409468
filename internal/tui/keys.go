package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.mode {
	case ModeEditing:
		return m.handleEditingKeys(msg)
	case ModeSearching, ModeAnalyzing:
		return m.handleLoadingKeys(msg)
	case ModeBrowsing:
		return m.handleBrowsingKeys(msg)
	case ModeError:
		return m.handleErrorKeys(msg)
	}

	return nil
}

// handleEditingKeys handles input while the query field has focus
func (m *Model) handleEditingKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return tea.Quit
	case "enter":
		return m.dispatchSearch()
	case "alt+c":
		m.queryInput.Reset()
		return nil
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return cmd
}

// handleLoadingKeys covers modes with an operation in flight, where
// only quitting is allowed
func (m *Model) handleLoadingKeys(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		return tea.Quit
	}
	return nil
}

// handleBrowsingKeys handles navigation and commands over the results
func (m *Model) handleBrowsingKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		return tea.Quit

	case "/":
		// Back to the query input for the next search
		m.mode = ModeEditing
		m.queryInput.Focus()
		return textinput.Blink

	case "up":
		m.moveSelection(-1)

	case "down":
		m.moveSelection(1)

	case "left":
		m.detailsView.LineUp(1)

	case "right":
		m.detailsView.LineDown(1)

	case "enter":
		return m.openSelected()

	case "f":
		return m.dispatchAnalyze()

	case "alt+g":
		return m.dispatchClone()

	case "y":
		return m.copySelectedURL()

	case "1":
		return m.setSizeFilter("small")

	case "2":
		return m.setSizeFilter("medium")

	case "3":
		return m.setSizeFilter("large")

	case "0":
		return m.setSizeFilter("")
	}

	return nil
}

// handleErrorKeys handles the error screen; dismissing returns to the
// results when there are any, otherwise to the query input
func (m *Model) handleErrorKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.errorMsg = ""
		if len(m.matches) > 0 {
			m.mode = ModeBrowsing
			return nil
		}
		m.mode = ModeEditing
		m.queryInput.Focus()
		return textinput.Blink
	}
	return nil
}

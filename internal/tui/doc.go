/*
Package tui implements the interactive terminal interface for mrkrabz.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Model struct, Update loop, message types
  - keys.go: Keyboard input handling routed by mode
  - render.go: View rendering (query box, results, details, help)
  - actions.go: Dispatching searches, analyses, and clones

# Modes

A Mode enum drives both key routing and rendering:
  - ModeEditing: the query input has focus
  - ModeSearching: a search is in flight
  - ModeBrowsing: navigating results (also the empty-results state)
  - ModeAnalyzing: a clone-and-count run is in flight
  - ModeError: a failed operation's message is displayed until dismissed

# Threading Model

The TUI runs in a single goroutine (Bubble Tea's event loop). Searches,
analyses, and clones run inside tea.Cmd closures and come back as private
message structs carrying a generation number. The model counts a
generation per operation kind; completions from superseded dispatches are
dropped on receipt so late results can never clobber current state. At
most one operation per kind is in flight: dispatch while pending is a
no-op.

# Example Usage

	client := search.NewClient(token)
	runner := analyze.NewRunner(cfg)

	m := tui.New(client, runner, tui.Options{Token: token, Version: "0.1.0"})
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
*/
package tui

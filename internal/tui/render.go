package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed     = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff5fff"} // Dark magenta / Bright magenta
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleAccent = lipgloss.NewStyle().
			Foreground(colorMagenta)

	styleLink = lipgloss.NewStyle().
			Foreground(colorCyan).
			Underline(true)
)

// renderMain renders the four stacked sections plus the status line
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderQueryBox(),
		m.renderResults(),
		m.renderDetails(),
		m.renderHelpBar(),
		m.renderStatusBar(),
	)
}

// renderQueryBox renders the query input with the active size filter
func (m Model) renderQueryBox() string {
	title := "Search GitHub Repositories"
	if m.sizeFilter != "" {
		title = fmt.Sprintf("Search GitHub Repositories [filter: %s]", m.sizeFilter)
	}

	borderColor := colorGray
	if m.mode == ModeEditing {
		borderColor = colorCyan
	}

	content := styleTitle.Render(title) + "\n" + m.queryInput.View()

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(m.width - BorderColumns).
		Render(content)
}

// renderResults renders the middle section, which doubles as the
// surface for the searching, error, and welcome screens
func (m Model) renderResults() string {
	innerHeight := m.resultsHeight - BorderLines
	innerWidth := m.width - BorderColumns

	var content string
	switch {
	case m.mode == ModeSearching:
		content = lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center,
			styleWarning.Render(m.spinner.View()+" Searching..."))
	case m.mode == ModeError:
		content = m.renderErrorContent(innerWidth, innerHeight)
	case len(m.matches) == 0 && m.query.Text == "":
		content = m.renderWelcome(innerWidth, innerHeight)
	case len(m.matches) == 0:
		content = lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center,
			styleSubtle.Render(fmt.Sprintf("No results for %q", m.query.Text)))
	default:
		content = m.renderResultsList(innerWidth)
	}

	borderColor := colorGray
	if m.mode == ModeBrowsing {
		borderColor = colorGreen
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(innerWidth).
		Height(innerHeight).
		Render(content)
}

// renderWelcome renders the pre-first-search screen
func (m Model) renderWelcome(width, height int) string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styleTitle.Render("Welcome to GitHub Search!"),
		"",
		"Type a search query and press Enter to search.",
		"Examples: 'rust game', 'web framework', 'machine learning'",
		"",
		styleSubtle.Render("Use ↑/↓ to navigate results, Enter to open in browser."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderErrorContent renders a failed operation's message in the
// results area, with prior results kept behind it for after dismissal
func (m Model) renderErrorContent(width, height int) string {
	msg := lipgloss.NewStyle().Width(width - 4).Render(styleError.Render("Error: ") + m.errorMsg)
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		msg,
		"",
		styleSubtle.Render("press esc to dismiss"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderResultsList renders the repository list window
func (m Model) renderResultsList(width int) string {
	var lines []string

	title := "Results"
	if m.totalCount > 0 {
		title = fmt.Sprintf("Results (%d total)", m.totalCount)
	}
	lines = append(lines, styleTitle.Render(title))
	lines = append(lines, "")

	pageSize := m.resultsPageSize()
	endIdx := m.resultsOffset + pageSize
	if endIdx > len(m.matches) {
		endIdx = len(m.matches)
	}

	for i := m.resultsOffset; i < endIdx; i++ {
		repo := m.matches[i]

		// Truncate the name, the only unbounded column
		name := repo.FullName
		maxNameLen := width - 36
		if maxNameLen < 10 {
			maxNameLen = 10
		}
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}

		line := fmt.Sprintf("%s | ⭐ %d | %s | 📦 %d KB",
			name, repo.Stars, orUnknown(repo.Language), repo.SizeKB)

		if i == m.selected {
			line = styleSelected.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	// Footer - show position
	lines = append(lines, "")
	lines = append(lines, styleSubtle.Render(fmt.Sprintf("[%d/%d]", m.selected+1, len(m.matches))))

	return strings.Join(lines, "\n")
}

// renderDetails renders the details panel; updateDetailsView maintains
// the viewport content
func (m Model) renderDetails() string {
	content := styleTitle.Render("Details") + "\n" + m.detailsView.View()

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - BorderColumns).
		Height(m.detailsHeight - BorderLines).
		Render(content)
}

// updateDetailsView rebuilds the details viewport for the current
// selection and operation state
func (m *Model) updateDetailsView() {
	repo, ok := m.selectedMatch()
	if !ok {
		m.detailsView.SetContent(styleSubtle.Render("Select a repository to see details"))
		return
	}
	m.detailsView.SetContent(m.renderDetailsContent(repo))
}

func (m *Model) renderDetailsContent(repo types.RepositoryMatch) string {
	width := m.detailsView.Width
	if width <= 0 {
		width = 80
	}

	var lines []string

	desc := repo.Description
	if desc == "" {
		desc = "No description"
	}
	lines = append(lines, lipgloss.NewStyle().Width(width).Render(styleSubtle.Render("Description: ")+desc))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %d   %s %d   %s %s",
		styleWarning.Render("⭐ Stars:"), repo.Stars,
		styleSuccess.Render("🍴 Forks:"), repo.Forks,
		styleAccent.Render("💻 Language:"), orUnknown(repo.Language)))
	lines = append(lines, fmt.Sprintf("%s %d KB   %s %s",
		styleSubtle.Render("📦 Size:"), repo.SizeKB,
		styleSubtle.Render("🕒 Updated:"), repo.UpdatedAt.Format("2006-01-02")))
	lines = append(lines, "")

	if m.clonePending {
		lines = append(lines, styleTitle.Render("📦 Cloning: ")+styleWarning.Render(m.spinner.View()+" please wait..."))
		lines = append(lines, "")
	} else if status, ok := m.cloneStatus[repo.URL]; ok {
		lines = append(lines, styleTitle.Render("📦 Clone: ")+styleSuccess.Render(status))
		lines = append(lines, "")
	}

	if m.analyzePending {
		lines = append(lines, styleAccent.Render("📁 Files: ")+styleWarning.Render(m.spinner.View()+" cloning and counting..."))
	} else if report, ok := m.reports[repo.URL]; ok {
		lines = append(lines, m.renderReport(report)...)
	} else {
		lines = append(lines, styleAccent.Render("📁 Files: ")+styleSubtle.Render("press 'f' to count"))
	}

	lines = append(lines, "")
	lines = append(lines, styleLink.Render(repo.URL))

	return strings.Join(lines, "\n")
}

// renderReport formats a cached analysis report for the details panel
func (m *Model) renderReport(report types.AnalysisReport) []string {
	lines := []string{styleAccent.Render("📁 File Count:"), ""}

	if !report.HasEntries() {
		lines = append(lines, styleSubtle.Render("no code files found"))
	}
	for _, e := range report.Entries {
		lines = append(lines, fmt.Sprintf("%-16s %6d files %9d lines", e.Language, e.Files, e.Lines))
	}

	lines = append(lines, "")
	total := fmt.Sprintf("Total: %d code files", report.Total)
	if report.Partial {
		total += " (partial)"
	}
	lines = append(lines, styleTitle.Render(total))
	if report.Warning != "" {
		lines = append(lines, styleWarning.Render("⚠ "+report.Warning))
	}
	return lines
}

// renderHelpBar renders the key hints for the current mode
func (m Model) renderHelpBar() string {
	var help string
	switch m.mode {
	case ModeEditing:
		help = "enter: search · alt+c: clear · esc: quit"
	case ModeSearching:
		help = "searching · esc: quit"
	case ModeAnalyzing:
		help = "counting files · esc: quit"
	case ModeError:
		help = "esc: dismiss"
	default:
		help = "enter: open · ↑/↓: navigate · ←/→: scroll · f: count · alt+g: clone · y: copy url · 1/2/3/0: size · /: search · esc: quit"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - BorderColumns).
		Render(lipgloss.PlaceHorizontal(m.width-BorderColumns, lipgloss.Center, styleSubtle.Render(help)))
}

// renderStatusBar renders the single transient line under the help bar
func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		return truncate(m.statusMsg, m.width)
	}
	if m.updateAvailable {
		return styleSubtle.Render(truncate(
			fmt.Sprintf("Update v%s available: %s", m.latestVersion, m.updateURL), m.width))
	}
	return ""
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func truncate(s string, max int) string {
	if max > 3 && len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

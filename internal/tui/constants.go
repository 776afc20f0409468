package tui

// UI Layout Constants
// These constants define spacing and dimensions for the TUI layout

const (
	// Fixed-height sections
	QueryBoxHeight = 4 // Title line + input line + borders
	HelpBarHeight  = 3 // Help bar: 1 content line + borders
	StatusBarLines = 1 // Status line below the help bar

	// Flexible-section minimums
	ResultsMinHeight = 5 // Results list never collapses below this
	DetailsMinHeight = 8 // Details panel keeps room for a report block

	// Box overheads
	BorderLines        = 2 // Lines consumed by top+bottom borders
	BorderColumns      = 2 // Columns consumed by left+right borders
	BoxTitleLines      = 2 // Title line + blank separator inside a box
	ResultsFooterLines = 2 // Blank line + [i/n] position footer

	// Results list share of the flexible space (the rest goes to details)
	ResultsHeightNum = 2
	ResultsHeightDen = 5

	// Transient status messages clear themselves after this many seconds
	StatusTimeoutSeconds = 5
)

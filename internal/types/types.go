package types

import "time"

// Query describes one repository search. A Query is immutable once
// submitted; filters set before submission travel with it.
type Query struct {
	Text     string `json:"text" yaml:"text"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	MinStars int    `json:"minStars,omitempty" yaml:"minStars,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"` // small, medium, large or empty
	Sort     string `json:"sort,omitempty" yaml:"sort,omitempty"` // stars, forks, updated or empty (best match)
	Limit    int    `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// RepositoryMatch is one repository entry returned by a search call.
// Matches are ranked by the remote service; slice order is significant
// and is never re-sorted client-side.
type RepositoryMatch struct {
	FullName    string    `json:"fullName" yaml:"fullName"` // owner/name
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Stars       int       `json:"stars" yaml:"stars"`
	Forks       int       `json:"forks" yaml:"forks"`
	Language    string    `json:"language,omitempty" yaml:"language,omitempty"`
	URL         string    `json:"url" yaml:"url"`
	SizeKB      int       `json:"sizeKb" yaml:"sizeKb"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// LanguageCount is one parsed line of analysis output: how many files of
// a language were found and, for languages in the line-counting subset,
// how many lines they hold. Lines is 0 for languages outside that subset.
type LanguageCount struct {
	Language string `json:"language" yaml:"language"`
	Files    int    `json:"files" yaml:"files"`
	Lines    int    `json:"lines" yaml:"lines"`
}

// AnalysisReport is the structured result of running the file-count
// script against a cloned repository. Entries keep the emission order of
// the script. Total is the sum of per-language file counts; when the
// script's own trailing total disagrees, the accumulated sum wins and
// Warning records the discrepancy. Partial marks a report built from
// output the parser could not fully understand.
type AnalysisReport struct {
	Entries []LanguageCount `json:"entries" yaml:"entries"`
	Total   int             `json:"total" yaml:"total"`
	Partial bool            `json:"partial,omitempty" yaml:"partial,omitempty"`
	Warning string          `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// HasEntries reports whether any language was recognized.
func (r AnalysisReport) HasEntries() bool {
	return len(r.Entries) > 0
}

/*
Package types defines the core data structures shared across mrkrabz.

# Overview

The types package provides shared type definitions for:
  - Search input and results (Query, RepositoryMatch)
  - Analysis output (AnalysisReport, LanguageCount)

# Search Types

Query:
  - One repository search: free text plus filters
  - Language, minimum stars, size bucket, sort key, result limit
  - Immutable once submitted; passed by value

RepositoryMatch:
  - One repository entry from a search
  - Name, description, stars, forks, language, URL, size, update time
  - Slices keep the remote ranking; never re-sorted client-side

# Analysis Types

LanguageCount:
  - One parsed line of count-script output
  - File count always set; line count only for the counted subset

AnalysisReport:
  - Structured result of one analysis run
  - Entries in script emission order
  - Total is the sum of per-language file counts
  - Partial/Warning mark output the parser could not fully trust

# Design Principles

1. Flat structs with json and yaml tags; no behavior beyond small helpers
2. No references into other internal packages
3. Safe to copy; nothing holds hidden state
*/
package types

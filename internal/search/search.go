// Package search wraps the GitHub repository search API behind a single
// call returning ranked matches. The gateway performs no retries; every
// failure is classified (errors.go) and surfaced to the caller at once.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/insaineyesay/mrkrabz/internal/types"
)

const (
	// DefaultLimit is used when a query carries no limit of its own.
	DefaultLimit = 100
	// maxLimit is GitHub's per_page ceiling.
	maxLimit = 100
	// searchTimeout bounds one search round trip.
	searchTimeout = 15 * time.Second
)

// Client issues repository searches. The zero value is not usable;
// construct with NewClient.
type Client struct {
	gh *github.Client
}

// NewClient builds a search client. An empty token gives the anonymous
// rate limit (60/hr); a personal access token raises it to 5000/hr.
func NewClient(token string) *Client {
	gh := github.NewClient(nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		gh = github.NewClient(oauth2.NewClient(context.Background(), ts))
	}
	return &Client{gh: gh}
}

// Search performs one repository search and returns the ranked matches
// plus the service's total hit count. Match order is GitHub's ranking
// and is preserved as-is.
func (c *Client) Search(ctx context.Context, q types.Query) ([]types.RepositoryMatch, int, error) {
	query, err := BuildQuery(q)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: clampLimit(q.Limit)},
	}
	if q.Sort != "" {
		opts.Sort = q.Sort
		opts.Order = "desc"
	}

	result, _, err := c.gh.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, 0, classify(err)
	}

	matches := make([]types.RepositoryMatch, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		matches = append(matches, types.RepositoryMatch{
			FullName:    repo.GetFullName(),
			Description: repo.GetDescription(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Language:    repo.GetLanguage(),
			URL:         repo.GetHTMLURL(),
			SizeKB:      repo.GetSize(),
			UpdatedAt:   repo.GetUpdatedAt().Time,
		})
	}

	return matches, result.GetTotal(), nil
}

// BuildQuery renders a Query into GitHub's search syntax: the free text
// followed by language, star and size qualifiers.
func BuildQuery(q types.Query) (string, error) {
	var sb strings.Builder
	sb.WriteString(q.Text)

	if q.Language != "" {
		fmt.Fprintf(&sb, " language:%s", q.Language)
	}
	if q.MinStars > 0 {
		fmt.Fprintf(&sb, " stars:>=%d", q.MinStars)
	}

	if q.Size != "" {
		switch strings.ToLower(q.Size) {
		case "small":
			sb.WriteString(" size:<25000")
		case "medium":
			sb.WriteString(" size:25000..100000")
		case "large":
			sb.WriteString(" size:>100000")
		default:
			return "", fmt.Errorf("invalid size %q: use small, medium, or large", q.Size)
		}
	}

	return sb.String(), nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

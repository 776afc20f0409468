package search

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
)

// Kind distinguishes the failure classes a search call can surface.
type Kind int

const (
	// KindRateLimited means GitHub refused the call because the client
	// is over its request quota.
	KindRateLimited Kind = iota
	// KindUnauthenticated means the token was rejected.
	KindUnauthenticated
	// KindNetwork covers transport failures: DNS, connect, timeout.
	KindNetwork
	// KindRemote covers non-2xx application errors from GitHub.
	KindRemote
)

// Error wraps a failed search call with its classification. RetryAfter
// carries the quota-reset hint when GitHub provided one, zero otherwise.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("GitHub rate limit exceeded, retry in %s (a token raises the limit to 5000/hr)", e.RetryAfter.Round(time.Second))
		}
		return "GitHub rate limit exceeded (a token raises the limit to 5000/hr)"
	case KindUnauthenticated:
		return "GitHub rejected the token: check --token or GITHUB_TOKEN"
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	default:
		return fmt.Sprintf("GitHub search failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps an error from the GitHub client onto the gateway's
// taxonomy. Rate-limit errors keep the reset hint; a 401 means the
// token is bad; other HTTP-level errors are remote failures; anything
// else is transport trouble.
func classify(err error) *Error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		retry := time.Until(rateErr.Rate.Reset.Time)
		if retry < 0 {
			retry = 0
		}
		return &Error{Kind: KindRateLimited, RetryAfter: retry, Err: err}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		var retry time.Duration
		if abuseErr.RetryAfter != nil {
			retry = *abuseErr.RetryAfter
		}
		return &Error{Kind: KindRateLimited, RetryAfter: retry, Err: err}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		if respErr.Response != nil && respErr.Response.StatusCode == http.StatusUnauthorized {
			return &Error{Kind: KindUnauthenticated, Err: err}
		}
		return &Error{Kind: KindRemote, Err: err}
	}

	return &Error{Kind: KindNetwork, Err: err}
}

/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

const (
	// userAgent identifies this client to GitHub, which requires one.
	userAgent = "gitroast (+https://github.com/gitroast/gitroast)"

	// maxRepositories caps the repository listing, newest pushes first.
	maxRepositories = 15

	// maxEvents caps the public event listing scanned for push events.
	maxEvents = 100

	pushEventType = "PushEvent"
)

// loginPattern is GitHub's login grammar: alphanumeric with single interior
// hyphens, at most 39 characters.
var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9]){0,38}$`)

// ValidateLogin rejects strings that cannot be a GitHub login before any
// network call is made with them.
func ValidateLogin(login string) error {
	if login == "" {
		return fmt.Errorf("login must not be empty")
	}
	if !loginPattern.MatchString(login) {
		return fmt.Errorf("invalid GitHub login %q", login)
	}
	return nil
}

// Client fetches roast source data from the GitHub REST API.
type Client struct {
	gh *github.Client

	// Settings collected by options; NewClient builds gh from them once all
	// options have run, so option order never matters.
	token   string
	baseURL *url.URL
}

// Option configures a Client.
type Option func(*Client) error

// WithToken authenticates requests with a static OAuth token. Unauthenticated
// clients share GitHub's 60 requests/hour/IP budget, so a token is advisable
// for anything beyond casual use.
func WithToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("token must not be empty")
		}
		c.token = token
		return nil
	}
}

// WithBaseURL points the client at an alternate API base URL, primarily for
// tests against local servers.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("parsing base URL: %w", err)
		}
		c.baseURL = u
		return nil
	}
}

// NewClient creates a GitHub data client. Without options it talks to the
// public API unauthenticated.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	var httpClient *http.Client
	if c.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	c.gh = github.NewClient(httpClient)
	if c.baseURL != nil {
		c.gh.BaseURL = c.baseURL
	}
	c.gh.UserAgent = userAgent
	return c, nil
}

// Repositories lists up to maxRepositories of the user's repositories,
// most recently pushed first, projected to RepositorySummary.
func (c *Client) Repositories(ctx context.Context, login string) ([]RepositorySummary, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}
	log := clog.FromContext(ctx)

	repos, _, err := c.gh.Repositories.ListByUser(ctx, login, &github.RepositoryListByUserOptions{
		Sort:        "pushed",
		ListOptions: github.ListOptions{PerPage: maxRepositories},
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(repos) > maxRepositories {
		repos = repos[:maxRepositories]
	}

	out := make([]RepositorySummary, 0, len(repos))
	for i, repo := range repos {
		summary, err := summarize(i, repo)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}

	log.With("login", login).With("repositories", len(out)).Info("Fetched repositories")
	return out, nil
}

// summarize validates one repository record and projects it to the reduced
// field set. Every field except language must be present.
func summarize(i int, repo *github.Repository) (RepositorySummary, error) {
	field := func(name string) string { return fmt.Sprintf("repos[%d].%s", i, name) }

	if repo.Name == nil {
		return RepositorySummary{}, &ValidationError{Field: field("name"), Reason: "missing"}
	}
	if repo.PushedAt == nil {
		return RepositorySummary{}, &ValidationError{Field: field("pushed_at"), Reason: "missing"}
	}
	if repo.StargazersCount == nil {
		return RepositorySummary{}, &ValidationError{Field: field("stargazers_count"), Reason: "missing"}
	}
	if *repo.StargazersCount < 0 {
		return RepositorySummary{}, &ValidationError{Field: field("stargazers_count"), Reason: "negative"}
	}
	if repo.ForksCount == nil {
		return RepositorySummary{}, &ValidationError{Field: field("forks"), Reason: "missing"}
	}
	if *repo.ForksCount < 0 {
		return RepositorySummary{}, &ValidationError{Field: field("forks"), Reason: "negative"}
	}

	return RepositorySummary{
		Name:     *repo.Name,
		Language: repo.Language, // nil is a valid "no dominant language"
		PushedAt: repo.PushedAt.Time.UTC().Format(time.RFC3339),
		Stars:    *repo.StargazersCount,
		Forks:    *repo.ForksCount,
	}, nil
}

// CommitMessages scans up to maxEvents of the user's recent public events
// and flattens the commit messages of every push event into one ordered
// list. Users with no push activity yield an empty list, not an error.
func (c *Client) CommitMessages(ctx context.Context, login string) ([]string, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}
	log := clog.FromContext(ctx)

	// The bare events endpoint only ever exposes public activity for other
	// users, which is all a roast needs.
	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, login, false, &github.ListOptions{
		PerPage: maxEvents,
	})
	if err != nil {
		return nil, classify(err)
	}

	messages := []string{}
	for i, event := range events {
		if event.Type == nil {
			return nil, &ValidationError{Field: fmt.Sprintf("events[%d].type", i), Reason: "missing"}
		}
		if *event.Type != pushEventType {
			continue
		}
		if event.RawPayload == nil {
			// A push event with no payload carries no commits.
			continue
		}
		payload, err := event.ParsePayload()
		if err != nil {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("events[%d].payload", i),
				Reason: err.Error(),
			}
		}
		push, ok := payload.(*github.PushEvent)
		if !ok {
			continue
		}
		for _, commit := range push.Commits {
			if commit == nil || commit.Message == nil {
				continue
			}
			messages = append(messages, *commit.Message)
		}
	}

	log.With("login", login).With("messages", len(messages)).Info("Fetched commit messages")
	return messages, nil
}

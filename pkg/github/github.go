// Copyright 2025 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package github provides the functionality to send requests to the GitHub API.
package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"

	"github.com/abcxyz/auto-assign/pkg/util"
)

// ignoredStatusCodes are status codes that should not be retried. This list
// is taken from the GitHub REST API documentation.
var ignoredStatusCodes = map[int]struct{}{
	400: {},
	401: {},
	403: {},
	404: {},
	422: {},
}

// Config is the config values for the GitHub client.
type Config struct {
	maxRetries        uint64
	initialRetryDelay time.Duration
	maxRetryDelay     time.Duration
}

// Issue is the GitHub issue.
type Issue struct {
	Number int
}

// PullRequest is the GitHub pull request.
type PullRequest struct {
	Number int
	Author string
}

// APIError is the error returned when a call to the GitHub API fails after
// all retries are exhausted or the response status is not retryable.
type APIError struct {
	// Op is the failed operation, e.g. "request_reviewers".
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// GitHub provides the minimum interface for sending requests to the GitHub API.
type GitHub interface {
	// GetIssue gets an issue by number.
	GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error)

	// GetPullRequest gets a pull request by number.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)

	// AddAssignees adds assignees to the issue record backing an issue or
	// pull request.
	AddAssignees(ctx context.Context, owner, repo string, number int, assignees []string) error

	// RequestReviewers requests user reviews on a pull request.
	RequestReviewers(ctx context.Context, owner, repo string, number int, reviewers []string) error
}

var _ GitHub = (*GitHubClient)(nil)

// GitHubClient implements the GitHub interface.
type GitHubClient struct {
	cfg    *Config
	client *github.Client
}

// NewClient creates a new GitHub client.
func NewClient(ctx context.Context, token string, opts ...Option) *GitHubClient {
	cfg := &Config{
		maxRetries:        3,
		initialRetryDelay: 1 * time.Second,
		maxRetryDelay:     20 * time.Second,
	}

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)

	g := &GitHubClient{
		cfg:    cfg,
		client: client,
	}

	return g
}

// withRetries runs fn with the configured fibonacci backoff.
func (g *GitHubClient) withRetries(ctx context.Context, fn retry.RetryFunc) error {
	backoff := retry.NewFibonacci(g.cfg.initialRetryDelay)
	backoff = retry.WithMaxRetries(g.cfg.maxRetries, backoff)
	backoff = retry.WithCappedDuration(g.cfg.maxRetryDelay, backoff)

	return retry.Do(ctx, backoff, fn) //nolint:wrapcheck // Want passthrough
}

// GetIssue gets an issue by number.
func (g *GitHubClient) GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error) {
	var response *Issue

	if err := g.withRetries(ctx, func(ctx context.Context) error {
		issue, resp, err := g.client.Issues.Get(ctx, owner, repo, number)
		if err != nil {
			if resp != nil {
				if _, ok := ignoredStatusCodes[resp.StatusCode]; !ok {
					return retry.RetryableError(err)
				}
			}

			return fmt.Errorf("failed to get issue: %w", err)
		}

		response = &Issue{Number: util.PtrVal(issue.Number)}

		return nil
	}); err != nil {
		return nil, &APIError{Op: "get_issue", Err: err}
	}

	return response, nil
}

// GetPullRequest gets a pull request by number.
func (g *GitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	var response *PullRequest

	if err := g.withRetries(ctx, func(ctx context.Context) error {
		pullRequest, resp, err := g.client.PullRequests.Get(ctx, owner, repo, number)
		if err != nil {
			if resp != nil {
				if _, ok := ignoredStatusCodes[resp.StatusCode]; !ok {
					return retry.RetryableError(err)
				}
			}

			return fmt.Errorf("failed to get pull request: %w", err)
		}

		response = &PullRequest{Number: util.PtrVal(pullRequest.Number)}
		if pullRequest.User != nil {
			response.Author = util.PtrVal(pullRequest.User.Login)
		}

		return nil
	}); err != nil {
		return nil, &APIError{Op: "get_pull_request", Err: err}
	}

	return response, nil
}

// AddAssignees adds assignees to the issue record backing an issue or pull
// request. GitHub applies assignees through the issues endpoint for both.
func (g *GitHubClient) AddAssignees(ctx context.Context, owner, repo string, number int, assignees []string) error {
	if err := g.withRetries(ctx, func(ctx context.Context) error {
		_, resp, err := g.client.Issues.AddAssignees(ctx, owner, repo, number, assignees)
		if err != nil {
			if resp != nil {
				if _, ok := ignoredStatusCodes[resp.StatusCode]; !ok {
					return retry.RetryableError(err)
				}
			}

			return fmt.Errorf("failed to add assignees: %w", err)
		}

		return nil
	}); err != nil {
		return &APIError{Op: "add_assignees", Err: err}
	}

	return nil
}

// RequestReviewers requests user reviews on a pull request. Requesting a
// review from the pull request author is rejected by the API, callers are
// expected to filter the author out.
func (g *GitHubClient) RequestReviewers(ctx context.Context, owner, repo string, number int, reviewers []string) error {
	if err := g.withRetries(ctx, func(ctx context.Context) error {
		_, resp, err := g.client.PullRequests.RequestReviewers(ctx, owner, repo, number, github.ReviewersRequest{
			Reviewers: reviewers,
		})
		if err != nil {
			if resp != nil {
				if _, ok := ignoredStatusCodes[resp.StatusCode]; !ok {
					return retry.RetryableError(err)
				}
			}

			return fmt.Errorf("failed to request reviewers: %w", err)
		}

		return nil
	}); err != nil {
		return &APIError{Op: "request_reviewers", Err: err}
	}

	return nil
}

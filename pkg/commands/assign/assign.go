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

// Package assign implements the command that assigns users and requests
// reviewers on the issue or pull request that triggered the workflow run.
package assign

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"github.com/abcxyz/auto-assign/pkg/commands/actions"
	"github.com/abcxyz/auto-assign/pkg/flags"
	"github.com/abcxyz/auto-assign/pkg/github"
	"github.com/abcxyz/pkg/cli"
	"github.com/abcxyz/pkg/logging"
)

var _ cli.Command = (*AssignCommand)(nil)

type AssignCommand struct {
	actions.GitHubActionCommand

	flags.RetryFlags

	flagAssignees string
	flagReviewers string

	// event is the decoded webhook payload that triggered the run.
	event map[string]any

	gitHubClient github.GitHub
}

func (c *AssignCommand) Desc() string {
	return `Assign users and request reviewers on the triggering issue or pull request`
}

func (c *AssignCommand) Help() string {
	return `
Usage: {{ COMMAND }} [options]

	Assign the configured users to the issue or pull request that triggered
	the workflow run. For pull requests, additionally request reviews from the
	configured reviewers, never from the pull request author. The event
	payload is read from the file referenced by GITHUB_EVENT_PATH.
`
}

func (c *AssignCommand) Flags() *cli.FlagSet {
	set := c.NewFlagSet()

	c.GitHubFlags.Register(set)
	c.RetryFlags.Register(set)

	f := set.NewSection("COMMAND OPTIONS")

	f.StringVar(&cli.StringVar{
		Name:    "assignees",
		EnvVar:  "INPUT_ASSIGNEES",
		Target:  &c.flagAssignees,
		Example: "alice,bob",
		Usage:   "Comma or whitespace separated user handles to assign to the issue or pull request.",
	})

	f.StringVar(&cli.StringVar{
		Name:    "reviewers",
		EnvVar:  "INPUT_REVIEWERS",
		Target:  &c.flagReviewers,
		Example: "carol,dave",
		Usage:   "Comma or whitespace separated user handles to request reviews from, pull requests only.",
	})

	return set
}

func (c *AssignCommand) Run(ctx context.Context, args []string) error {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	parsedArgs := f.Args()
	if len(parsedArgs) > 0 {
		return flag.ErrHelp
	}

	if c.Action == nil {
		c.Action = githubactions.New(githubactions.WithWriter(c.Stdout()))
	}

	token := c.GitHubFlags.ResolveToken(c.Action)
	if token == "" {
		return c.AnnotatedError("Missing token", fmt.Errorf("the github-token flag or the repo-token input is required"))
	}

	gctx, err := c.Action.Context()
	if err != nil {
		return c.AnnotatedError("Invalid event", fmt.Errorf("failed to load the github context: %w", err))
	}
	c.GitHubFlags.FromGitHubContext(gctx)

	if c.FlagGitHubOwner == "" || c.FlagGitHubRepo == "" {
		return c.AnnotatedError("Missing context", fmt.Errorf("the target repository is required, set GITHUB_REPOSITORY or the github-owner and github-repo flags"))
	}

	// The context loads without error when the event path is unset or the
	// file does not exist, leaving the event empty.
	if gctx.EventPath == "" {
		return c.AnnotatedError("Invalid event", fmt.Errorf("GITHUB_EVENT_PATH is not set"))
	}
	if gctx.Event == nil {
		return c.AnnotatedError("Invalid event", fmt.Errorf("failed to read the event payload from %q", gctx.EventPath))
	}

	c.event = gctx.Event

	if c.gitHubClient == nil {
		c.gitHubClient = github.NewClient(
			ctx,
			token,
			github.WithMaxRetries(c.RetryFlags.FlagMaxRetries),
			github.WithInitialRetryDelay(c.RetryFlags.FlagInitialRetryDelay),
			github.WithMaxRetryDelay(c.RetryFlags.FlagMaxRetryDelay),
		)
	}

	if err := c.Process(ctx); err != nil {
		var apiErr *github.APIError
		if errors.As(err, &apiErr) {
			return c.AnnotatedError("GitHub API error", err)
		}

		return c.AnnotatedError("Unhandled error", err)
	}

	return nil
}

// Process handles the dispatch on the triggering event. Unsupported event
// kinds are not failures, only the two flows below perform API calls.
func (c *AssignCommand) Process(ctx context.Context) error {
	logger := logging.FromContext(ctx).
		With("github_owner", c.FlagGitHubOwner).
		With("github_repo", c.FlagGitHubRepo)

	assignees := SplitHandles(c.flagAssignees)
	reviewers := SplitHandles(c.flagReviewers)

	eventName := strings.ToLower(c.FlagGitHubEventName)

	if eventName == "issues" {
		if issue, ok := payloadObject(c.event, "issue"); ok {
			return c.processIssue(ctx, issue, assignees)
		}
	}

	if eventName == "pull_request" || eventName == "pull_request_target" {
		if pullRequest, ok := payloadObject(c.event, "pull_request"); ok {
			return c.processPullRequest(ctx, pullRequest, assignees, reviewers)
		}
	}

	logger.InfoContext(ctx, "unsupported event, this command handles issues and pull_request events",
		"github_event_name", c.FlagGitHubEventName)

	return nil
}

// processIssue handles the issue flow. Reviewers never apply to issues.
func (c *AssignCommand) processIssue(ctx context.Context, payload map[string]any, assignees []string) error {
	logger := logging.FromContext(ctx)

	number, ok := payloadNumber(payload["number"])
	if !ok {
		return fmt.Errorf("event payload is missing the issue number")
	}

	issue, err := c.gitHubClient.GetIssue(ctx, c.FlagGitHubOwner, c.FlagGitHubRepo, number)
	if err != nil {
		return fmt.Errorf("failed to get issue: %w", err)
	}

	if len(assignees) == 0 {
		logger.InfoContext(ctx, "no assignees provided, skipping", "issue_number", issue.Number)
		return nil
	}

	logger.InfoContext(ctx, "assigning users to issue",
		"issue_number", issue.Number,
		"assignees", assignees)

	return c.WithActionsOutGroup(fmt.Sprintf("Assigning users to issue #%d", issue.Number), func() error {
		if err := c.gitHubClient.AddAssignees(ctx, c.FlagGitHubOwner, c.FlagGitHubRepo, issue.Number, assignees); err != nil {
			return fmt.Errorf("failed to add assignees: %w", err)
		}

		c.SetActionsOutput("assignees", strings.Join(assignees, ","))

		return nil
	})
}

// processPullRequest handles the pull request flow, assigning users to the
// issue record backing the pull request and requesting reviewers, excluding
// the pull request author.
func (c *AssignCommand) processPullRequest(ctx context.Context, payload map[string]any, assignees, reviewers []string) error {
	logger := logging.FromContext(ctx)

	number, ok := payloadNumber(payload["number"])
	if !ok {
		return fmt.Errorf("event payload is missing the pull request number")
	}

	pullRequest, err := c.gitHubClient.GetPullRequest(ctx, c.FlagGitHubOwner, c.FlagGitHubRepo, number)
	if err != nil {
		return fmt.Errorf("failed to get pull request: %w", err)
	}

	if len(assignees) > 0 {
		logger.InfoContext(ctx, "assigning users to pull request",
			"pull_request_number", pullRequest.Number,
			"assignees", assignees)

		if err := c.WithActionsOutGroup(fmt.Sprintf("Assigning users to pull request #%d", pullRequest.Number), func() error {
			if err := c.gitHubClient.AddAssignees(ctx, c.FlagGitHubOwner, c.FlagGitHubRepo, pullRequest.Number, assignees); err != nil {
				return fmt.Errorf("failed to add assignees: %w", err)
			}

			c.SetActionsOutput("assignees", strings.Join(assignees, ","))

			return nil
		}); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "no assignees provided, skipping", "pull_request_number", pullRequest.Number)
	}

	if len(reviewers) == 0 {
		logger.InfoContext(ctx, "no reviewers provided, skipping", "pull_request_number", pullRequest.Number)
		return nil
	}

	author := payloadAuthor(payload)
	if author == "" {
		author = pullRequest.Author
	}

	logger.InfoContext(ctx, "requesting reviewers",
		"pull_request_number", pullRequest.Number,
		"author", author,
		"reviewers", reviewers)

	// A review cannot be requested from the author of the pull request.
	filtered := ExcludeHandle(reviewers, author)
	if len(filtered) == 0 {
		logger.InfoContext(ctx, "all reviewers matched the pull request author, cannot request a review from the author",
			"pull_request_number", pullRequest.Number,
			"author", author)
		return nil
	}

	return c.WithActionsOutGroup(fmt.Sprintf("Requesting reviewers for pull request #%d", pullRequest.Number), func() error {
		if err := c.gitHubClient.RequestReviewers(ctx, c.FlagGitHubOwner, c.FlagGitHubRepo, pullRequest.Number, filtered); err != nil {
			return fmt.Errorf("failed to request reviewers: %w", err)
		}

		c.SetActionsOutput("reviewers", strings.Join(filtered, ","))

		return nil
	})
}

// payloadObject looks up a nested object in a decoded event payload.
func payloadObject(event map[string]any, key string) (map[string]any, bool) {
	obj, ok := event[key].(map[string]any)
	return obj, ok
}

// payloadNumber converts a decoded payload value to an issue or pull request
// number. JSON decoding produces float64 values, fractional numbers are
// rejected.
func payloadNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// payloadAuthor extracts the author login from an issue or pull request
// payload, or the empty string when absent.
func payloadAuthor(payload map[string]any) string {
	user, ok := payload["user"].(map[string]any)
	if !ok {
		return ""
	}

	login, _ := user["login"].(string)

	return login
}

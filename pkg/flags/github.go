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

// Package flags provides the flag structs shared among commands.
package flags

import (
	"github.com/sethvargo/go-githubactions"

	"github.com/abcxyz/pkg/cli"
)

// tokenInputNames are the action input spellings checked, in priority order,
// when the github-token flag is not set.
var tokenInputNames = []string{"repo_token", "repo-token"}

// GitHubFlags represent the shared GitHub flags among all commands.
// Embed this struct into any commands that interact with GitHub.
type GitHubFlags struct {
	FlagIsGitHubActions bool
	FlagGitHubToken     string
	FlagGitHubOwner     string
	FlagGitHubRepo      string
	FlagGitHubEventName string
}

func (g *GitHubFlags) Register(set *cli.FlagSet) {
	f := set.NewSection("GITHUB OPTIONS")

	f.BoolVar(&cli.BoolVar{
		Name:   "github-actions",
		EnvVar: "GITHUB_ACTIONS",
		Target: &g.FlagIsGitHubActions,
		Usage:  "Is this running as a GitHub action.",
		Hidden: true,
	})

	f.StringVar(&cli.StringVar{
		Name:   "github-token",
		EnvVar: "GITHUB_TOKEN",
		Target: &g.FlagGitHubToken,
		Usage:  "The GitHub access token to make GitHub API calls.",
		Hidden: true,
	})

	f.StringVar(&cli.StringVar{
		Name:    "github-owner",
		Target:  &g.FlagGitHubOwner,
		Example: "organization-name",
		Usage:   "The GitHub repository owner.",
		Hidden:  true,
	})

	f.StringVar(&cli.StringVar{
		Name:    "github-repo",
		Target:  &g.FlagGitHubRepo,
		Example: "repository-name",
		Usage:   "The GitHub repository name.",
		Hidden:  true,
	})

	f.StringVar(&cli.StringVar{
		Name:    "github-event-name",
		EnvVar:  "GITHUB_EVENT_NAME",
		Target:  &g.FlagGitHubEventName,
		Example: "pull_request",
		Usage:   "The name of the GitHub event that triggered the run.",
		Hidden:  true,
	})
}

// FromGitHubContext maps missing GitHub flag values from the GitHub context.
func (g *GitHubFlags) FromGitHubContext(gctx *githubactions.GitHubContext) {
	if gctx == nil {
		return
	}

	owner, repo := gctx.Repo()

	if g.FlagGitHubOwner == "" {
		g.FlagGitHubOwner = owner
	}

	if g.FlagGitHubRepo == "" {
		g.FlagGitHubRepo = repo
	}

	if g.FlagGitHubEventName == "" {
		g.FlagGitHubEventName = gctx.EventName
	}
}

// ResolveToken returns the access token to use for GitHub API calls. The
// github-token flag wins, otherwise the action input spellings are checked in
// order and the first non-empty value is used. Returns the empty string when
// no token is configured.
func (g *GitHubFlags) ResolveToken(action *githubactions.Action) string {
	if g.FlagGitHubToken != "" {
		return g.FlagGitHubToken
	}

	for _, name := range tokenInputNames {
		if v := action.GetInput(name); v != "" {
			return v
		}
	}

	return ""
}

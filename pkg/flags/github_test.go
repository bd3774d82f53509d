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

package flags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-githubactions"
)

func TestFromGitHubContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		flags     *GitHubFlags
		gctx      *githubactions.GitHubContext
		wantFlags *GitHubFlags
	}{
		{
			name:  "maps_missing_values",
			flags: &GitHubFlags{},
			gctx: &githubactions.GitHubContext{
				Repository: "owner/repo",
				EventName:  "pull_request",
			},
			wantFlags: &GitHubFlags{
				FlagGitHubOwner:     "owner",
				FlagGitHubRepo:      "repo",
				FlagGitHubEventName: "pull_request",
			},
		},
		{
			name: "flags_take_precedence",
			flags: &GitHubFlags{
				FlagGitHubOwner:     "flag-owner",
				FlagGitHubRepo:      "flag-repo",
				FlagGitHubEventName: "issues",
			},
			gctx: &githubactions.GitHubContext{
				Repository: "owner/repo",
				EventName:  "pull_request",
			},
			wantFlags: &GitHubFlags{
				FlagGitHubOwner:     "flag-owner",
				FlagGitHubRepo:      "flag-repo",
				FlagGitHubEventName: "issues",
			},
		},
		{
			name:      "nil_context_is_a_noop",
			flags:     &GitHubFlags{FlagGitHubOwner: "owner"},
			gctx:      nil,
			wantFlags: &GitHubFlags{FlagGitHubOwner: "owner"},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.flags.FromGitHubContext(tc.gctx)

			if diff := cmp.Diff(tc.flags, tc.wantFlags); diff != "" {
				t.Errorf("flags not as expected; (-got,+want): %s", diff)
			}
		})
	}
}

func TestResolveToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		flags *GitHubFlags
		env   map[string]string
		want  string
	}{
		{
			name:  "flag_wins",
			flags: &GitHubFlags{FlagGitHubToken: "flag-token"},
			env: map[string]string{
				"INPUT_REPO_TOKEN": "input-token",
			},
			want: "flag-token",
		},
		{
			name:  "underscore_input",
			flags: &GitHubFlags{},
			env: map[string]string{
				"INPUT_REPO_TOKEN": "underscore-token",
				"INPUT_REPO-TOKEN": "dash-token",
			},
			want: "underscore-token",
		},
		{
			name:  "dash_input_fallback",
			flags: &GitHubFlags{},
			env: map[string]string{
				"INPUT_REPO-TOKEN": "dash-token",
			},
			want: "dash-token",
		},
		{
			name:  "no_token",
			flags: &GitHubFlags{},
			env:   map[string]string{},
			want:  "",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			action := githubactions.New(githubactions.WithGetenv(func(k string) string {
				return tc.env[k]
			}))

			if got := tc.flags.ResolveToken(action); got != tc.want {
				t.Errorf("expected token %q to be %q", got, tc.want)
			}
		})
	}
}

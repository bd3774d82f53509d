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

package assign

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitHandles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "only_delimiters",
			raw:  " ,  ,\t, ",
			want: nil,
		},
		{
			name: "single",
			raw:  "alice",
			want: []string{"alice"},
		},
		{
			name: "strips_leading_at",
			raw:  "@alice",
			want: []string{"alice"},
		},
		{
			name: "comma_separated",
			raw:  "alice, bob",
			want: []string{"alice", "bob"},
		},
		{
			name: "whitespace_separated",
			raw:  "alice bob  alice",
			want: []string{"alice", "bob"},
		},
		{
			name: "mixed_delimiters_and_duplicates",
			raw:  "alice,@bob,  @alice",
			want: []string{"alice", "bob"},
		},
		{
			name: "newlines_and_tabs",
			raw:  "alice, bob,  \n  carol\tdave",
			want: []string{"alice", "bob", "carol", "dave"},
		},
		{
			name: "case_sensitive_identity",
			raw:  "alice, Alice",
			want: []string{"alice", "Alice"},
		},
		{
			name: "bare_at_is_dropped",
			raw:  "@, alice",
			want: []string{"alice"},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SplitHandles(tc.raw)
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("handles not as expected; (-got,+want): %s", diff)
			}

			// Normalizing a normalized list is a no-op.
			again := SplitHandles(strings.Join(got, ","))
			if diff := cmp.Diff(again, got); diff != "" {
				t.Errorf("normalization not idempotent; (-got,+want): %s", diff)
			}

			for _, h := range got {
				if strings.HasPrefix(h, "@") || strings.TrimSpace(h) != h {
					t.Errorf("handle %q contains a leading @ or surrounding whitespace", h)
				}
			}
		})
	}
}

func TestExcludeHandle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handles []string
		handle  string
		want    []string
	}{
		{
			name:    "removes_matches_preserving_order",
			handles: []string{"alice", "bob", "carol"},
			handle:  "bob",
			want:    []string{"alice", "carol"},
		},
		{
			name:    "no_match",
			handles: []string{"alice", "bob"},
			handle:  "dave",
			want:    []string{"alice", "bob"},
		},
		{
			name:    "all_match",
			handles: []string{"author"},
			handle:  "author",
			want:    nil,
		},
		{
			name:    "empty_input",
			handles: nil,
			handle:  "alice",
			want:    nil,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ExcludeHandle(tc.handles, tc.handle)
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("handles not as expected; (-got,+want): %s", diff)
			}
		})
	}
}

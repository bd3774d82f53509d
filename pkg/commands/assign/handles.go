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

import "strings"

// SplitHandles normalizes a raw list of user handles into a deduplicated
// slice preserving first-occurrence order. The raw value may mix comma and
// whitespace separators. Entries are trimmed and a single leading "@" is
// stripped, empty entries are dropped. Handle comparison is case-sensitive.
func SplitHandles(raw string) []string {
	seen := make(map[string]struct{})

	var handles []string
	for _, part := range strings.Split(raw, ",") {
		for _, token := range strings.Fields(part) {
			token = strings.TrimPrefix(token, "@")
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			handles = append(handles, token)
		}
	}

	return handles
}

// ExcludeHandle returns handles without any entry equal to handle, preserving
// order. The input slice is not modified.
func ExcludeHandle(handles []string, handle string) []string {
	var filtered []string
	for _, h := range handles {
		if h != handle {
			filtered = append(filtered, h)
		}
	}

	return filtered
}

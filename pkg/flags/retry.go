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
	"time"

	"github.com/abcxyz/pkg/cli"
)

// RetryFlags represent the shared retry flags among all commands.
// Embed this struct into any commands that make API calls.
type RetryFlags struct {
	FlagMaxRetries        uint64
	FlagInitialRetryDelay time.Duration
	FlagMaxRetryDelay     time.Duration
}

func (r *RetryFlags) Register(set *cli.FlagSet) {
	f := set.NewSection("RETRY OPTIONS")

	f.Uint64Var(&cli.Uint64Var{
		Name:    "max-retries",
		Target:  &r.FlagMaxRetries,
		Default: uint64(3),
		Example: "3",
		Usage:   "The maximum number of attempts to retry any failed GitHub API calls.",
	})

	f.DurationVar(&cli.DurationVar{
		Name:    "initial-retry-delay",
		Target:  &r.FlagInitialRetryDelay,
		Default: 1 * time.Second,
		Example: "1s",
		Usage:   "The initial duration to wait before retrying a failed GitHub API call.",
	})

	f.DurationVar(&cli.DurationVar{
		Name:    "max-retry-delay",
		Target:  &r.FlagMaxRetryDelay,
		Default: 20 * time.Second,
		Example: "20s",
		Usage:   "The maximum duration to wait before retrying a failed GitHub API call.",
	})
}

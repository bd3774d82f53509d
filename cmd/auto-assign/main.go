// Copyright 2025 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main is the main entrypoint to the application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abcxyz/auto-assign/internal/version"
	"github.com/abcxyz/auto-assign/pkg/commands/assign"
	"github.com/abcxyz/auto-assign/pkg/util"
	"github.com/abcxyz/pkg/cli"
	"github.com/abcxyz/pkg/logging"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	defaultLogDebug  = "false"
)

// rootCmd defines the starting command structure.
var rootCmd = func() cli.Command {
	return &cli.RootCommand{
		Name:    "auto-assign",
		Version: version.HumanVersion,
		Commands: map[string]cli.CommandFactory{
			"assign": func() cli.Command {
				return &assign.AssignCommand{}
			},
		},
	}
}

func main() {
	ctx, done := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer done()

	if err := realMain(ctx); err != nil {
		done()

		var exitErr *util.ExitCodeError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, exitErr.Err.Error())
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func realMain(ctx context.Context) error {
	setLogEnvVars()
	ctx = logging.WithLogger(ctx, logging.NewFromEnv("AUTO_ASSIGN_"))

	return rootCmd().Run(ctx, os.Args[1:]) //nolint:wrapcheck // Want passthrough
}

// setLogEnvVars set the logging environment variables to their default
// values if not provided.
func setLogEnvVars() {
	if os.Getenv("AUTO_ASSIGN_LOG_FORMAT") == "" {
		os.Setenv("AUTO_ASSIGN_LOG_FORMAT", defaultLogFormat)
	}

	if os.Getenv("AUTO_ASSIGN_LOG_LEVEL") == "" {
		os.Setenv("AUTO_ASSIGN_LOG_LEVEL", defaultLogLevel)
	}

	if os.Getenv("AUTO_ASSIGN_LOG_DEBUG") == "" {
		os.Setenv("AUTO_ASSIGN_LOG_DEBUG", defaultLogDebug)
	}
}

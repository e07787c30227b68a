// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/pkg/chat"
	"github.com/kraklabs/sorry/pkg/config"
)

// maxHistoryLines caps how many shell-history lines are forwarded as
// context for one query.
const maxHistoryLines = 10

type askOptions struct {
	configPath   string
	lastCommands string
	timeout      time.Duration
	jsonOutput   bool
}

// runAsk executes the query path: load config, build the chat request,
// perform the single provider call, print the reply.
//
// A query either prints one complete reply and exits 0, or prints
// exactly one error and exits non-zero. There is no retry; the user
// re-runs manually.
func runAsk(args []string, opts askOptions) {
	message := strings.Join(args, " ")
	history := splitHistory(opts.lastCommands)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		errors.FatalError(err, opts.jsonOutput)
	}

	req, err := chat.Build(cfg, history, message)
	if err != nil {
		errors.FatalError(err, opts.jsonOutput)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	reply, err := chat.NewClient(opts.timeout).Send(ctx, req)
	if err != nil {
		errors.FatalError(err, opts.jsonOutput)
	}

	fmt.Println(reply)
}

// splitHistory turns the --last-commands payload (newline-separated,
// already stripped of history index numbers by the shell integration)
// into an ordered slice, oldest first, keeping at most the last
// maxHistoryLines entries. The lines are opaque; no shell syntax is
// parsed here.
func splitHistory(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

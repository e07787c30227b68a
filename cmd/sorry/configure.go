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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/internal/ui"
	"github.com/kraklabs/sorry/pkg/catalog"
	"github.com/kraklabs/sorry/pkg/config"
)

// runConfigure executes a --config-<provider> command.
//
// The API key may be passed as the positional argument; otherwise it is
// prompted for without echo. The model is then picked from the curated
// catalog list (a number), typed as a custom name, or left at the
// default with an empty answer. The mutation is only reported as
// successful once the config file has been persisted.
func runConfigure(provider catalog.Provider, args []string, path string) {
	cfg, err := config.Load(path)
	if err != nil {
		errors.FatalError(err, false)
	}

	fmt.Printf("\nConfiguring %s\n\n", provider)

	key := ""
	if len(args) > 0 {
		key = strings.TrimSpace(args[0])
	}
	if key == "" {
		key, err = promptSecret("Enter API key: ")
		if err != nil {
			errors.FatalError(errors.NewInternalError("Cannot read API key", err), false)
		}
	}

	if err := config.SetProviderKey(cfg, provider, key); err != nil {
		errors.FatalError(err, false)
	}

	model := promptModel(provider, cfg.Providers[string(provider)].Model)
	if err := config.SetProviderModel(cfg, provider, model); err != nil {
		errors.FatalError(err, false)
	}

	if err := config.Save(path, cfg); err != nil {
		errors.FatalError(err, false)
	}

	fmt.Println()
	ui.Successf("Configured %s with model '%s'", provider, model)
}

// promptModel shows the curated model list and reads the user's pick.
// Accepts a list number, a custom model name, or empty for the current
// default.
func promptModel(provider catalog.Provider, current string) string {
	defaults := catalog.Defaults(provider)
	if current == "" {
		current = defaults.Model
	}

	fmt.Println("Models:")
	for i, m := range defaults.Models {
		marker := ""
		if m == current {
			marker = " (current)"
		}
		fmt.Printf("  %d. %s%s\n", i+1, m, marker)
	}
	fmt.Println()

	input := promptLine(fmt.Sprintf("Select model [1-%d], type a name, or press enter for '%s': ",
		len(defaults.Models), current))
	if input == "" {
		return current
	}
	if idx, err := strconv.Atoi(input); err == nil {
		if idx >= 1 && idx <= len(defaults.Models) {
			return defaults.Models[idx-1]
		}
		ui.Warningf("No model %d in the list, keeping '%s'", idx, current)
		return current
	}
	// Anything else is a custom model name; compatible endpoints often
	// serve models outside the curated list.
	return input
}

// promptLine prints a prompt and reads one trimmed line from stdin.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

// promptSecret reads a line without echoing when stdin is a terminal,
// falling back to a plain read when input is piped.
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println() // newline after hidden input
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

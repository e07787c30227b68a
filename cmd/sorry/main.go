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

// Package main implements the sorry CLI: send your terminal mistakes
// to an LLM and get help.
//
// Usage:
//
//	sorry <message...>            Ask about what went wrong
//	sorry --config-openai [key]   Configure OpenAI (interactive if key omitted)
//	sorry --config-groq [key]     Configure Groq (interactive if key omitted)
//	sorry --behaviour             Pick sorry's mood
//	sorry --show-config           Show configuration (API key masked)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/internal/ui"
	"github.com/kraklabs/sorry/pkg/catalog"
	"github.com/kraklabs/sorry/pkg/chat"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

func main() {
	var (
		configOpenAI = flag.Bool("config-openai", false, "Configure OpenAI (interactive setup)")
		configGroq   = flag.Bool("config-groq", false, "Configure Groq (interactive setup)")
		behaviour    = flag.Bool("behaviour", false, "Configure sorry's behaviour/mood")
		showConfig   = flag.Bool("show-config", false, "Show current configuration (without revealing keys)")
		showVersion  = flag.Bool("version", false, "Show version and exit")
		jsonOutput   = flag.Bool("json", false, "Output as JSON where supported")
		noColor      = flag.Bool("no-color", false, "Disable colored output")
		configPath   = flag.String("config", "", "Path to config file (default: <os config dir>/sorry/config.json)")
		lastCommands = flag.String("last-commands", "", "Recent shell commands, newline-separated (supplied by the shell integration)")
		timeout      = flag.Duration("timeout", chat.DefaultTimeout, "Request timeout for the provider call")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `sorry - send your mistakes to an LLM and get help

Usage:
  sorry [options] <message...>

Describe what went wrong in plain words; sorry forwards it, together
with your recent shell commands when the shell integration provides
them, to the configured provider and prints the reply.

Setup:
  sorry --config-openai [key]   Configure OpenAI (prompts for the key if omitted)
  sorry --config-groq [key]     Configure Groq (prompts for the key if omitted)
  sorry --behaviour             Pick the reply mood
  sorry --show-config           Show active provider, base URL, model (key masked)

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sorry I committed to the wrong branch
  sorry "git says detached HEAD, what now"
  sorry --config-groq
  sorry --behaviour

Configuration is stored at <os config dir>/sorry/config.json.
`)
	}

	flag.Parse()
	ui.InitColors(*noColor)

	if *showVersion {
		fmt.Printf("sorry version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		path = defaultConfigPath()
	}

	switch {
	case *configOpenAI:
		runConfigure(catalog.ProviderOpenAI, flag.Args(), path)
	case *configGroq:
		runConfigure(catalog.ProviderGroq, flag.Args(), path)
	case *behaviour:
		runBehaviour(path)
	case *showConfig:
		runShowConfig(path, *jsonOutput)
	default:
		if flag.NArg() == 0 {
			flag.Usage()
			os.Exit(errors.ExitInput)
		}
		runAsk(flag.Args(), askOptions{
			configPath:   path,
			lastCommands: *lastCommands,
			timeout:      timeoutOrDefault(*timeout),
			jsonOutput:   *jsonOutput,
		})
	}
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return chat.DefaultTimeout
	}
	return d
}

// defaultConfigPath resolves the per-OS config file location. The core
// packages take the path as a parameter; only the CLI knows about the
// OS config directory.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "sorry", "config.json")
}

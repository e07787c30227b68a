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
	"fmt"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/internal/output"
	"github.com/kraklabs/sorry/internal/ui"
	"github.com/kraklabs/sorry/pkg/catalog"
	"github.com/kraklabs/sorry/pkg/config"
)

// configView is the --show-config output shape. The API key is masked
// before it enters this struct so neither output mode can leak it.
type configView struct {
	Mood     string `json:"mood"`
	Provider string `json:"provider,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
}

// runShowConfig executes the --show-config command: mood, active
// provider, effective base URL and model, and the masked API key.
func runShowConfig(path string, jsonOutput bool) {
	cfg, err := config.Load(path)
	if err != nil {
		errors.FatalError(err, jsonOutput)
	}

	view := configView{Mood: string(cfg.Mood)}
	if cfg.Provider != "" {
		defaults := catalog.Defaults(catalog.Provider(cfg.Provider))
		settings := cfg.Providers[cfg.Provider]

		view.Provider = cfg.Provider
		view.BaseURL = settings.BaseURL
		view.Model = settings.Model
		if view.BaseURL == "" {
			view.BaseURL = defaults.BaseURL
		}
		if view.Model == "" {
			view.Model = defaults.Model
		}
		view.APIKey = ui.MaskKey(settings.APIKey)
	}

	if jsonOutput {
		if err := output.JSON(view); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	fmt.Println()
	fmt.Printf("%s %s\n", ui.Bold.Sprint("Mood:"), cfg.Mood.DisplayName())
	fmt.Println()

	if view.Provider == "" {
		fmt.Printf("%s not configured\n", ui.Bold.Sprint("Provider:"))
		ui.Info("Run 'sorry --config-openai' or 'sorry --config-groq' to set up.")
		fmt.Println()
		return
	}

	fmt.Printf("%s %s\n", ui.Bold.Sprint("Provider:"), view.Provider)
	fmt.Printf("  Base URL: %s\n", view.BaseURL)
	fmt.Printf("  Model:    %s\n", view.Model)
	fmt.Printf("  API Key:  %s\n", view.APIKey)
	fmt.Println()
}

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

package config

import (
	"fmt"
	"strings"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/pkg/catalog"
)

// The editor functions mutate a Config in memory and enforce the
// invariants around provider entries. Callers persist the result with
// Save before reporting success; a failed persist means the mutation
// failed, not "saved, sort of".

// SetProviderKey stores an API key for the given provider and makes it
// the active provider.
//
// If the provider has no Settings entry yet, one is created from the
// catalog defaults. The key must be non-empty.
func SetProviderKey(cfg *Config, provider catalog.Provider, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.NewInvalidInput(
			"API key cannot be empty",
			"An empty key would make every query fail",
			fmt.Sprintf("Run 'sorry --config-%s' again and paste the key", provider),
		)
	}

	name := string(provider)
	if cfg.Providers == nil {
		cfg.Providers = map[string]Settings{}
	}
	settings, ok := cfg.Providers[name]
	if !ok {
		defaults := catalog.Defaults(provider)
		settings = Settings{
			BaseURL: defaults.BaseURL,
			Model:   defaults.Model,
		}
	}
	settings.APIKey = key
	cfg.Providers[name] = settings
	cfg.Provider = name
	return nil
}

// SetProviderModel sets the model for an already-configured provider.
//
// Any non-empty model name is accepted, including ones outside the
// curated catalog list: the curated list only drives the interactive
// picker, and users may point at compatible but unlisted models.
func SetProviderModel(cfg *Config, provider catalog.Provider, model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errors.NewInvalidInput(
			"Model name cannot be empty",
			"A provider entry always carries a model",
			"Pass a model name or pick one from the list",
		)
	}

	name := string(provider)
	settings, ok := cfg.Providers[name]
	if !ok {
		return errors.NewInvalidInput(
			fmt.Sprintf("Provider '%s' is not configured", name),
			"Setting a model requires an existing provider entry",
			fmt.Sprintf("Run 'sorry --config-%s' first", name),
		)
	}
	settings.Model = model
	cfg.Providers[name] = settings
	return nil
}

// SetMood selects the behavioral preset. Every catalog mood is valid
// and the operation is idempotent; there is no failure path.
func SetMood(cfg *Config, mood catalog.Mood) {
	cfg.Mood = catalog.ParseMood(string(mood))
}

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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/pkg/catalog"
)

// Settings holds the stored per-provider configuration.
//
// Empty BaseURL or Model fields fall back to the catalog defaults at
// resolve time; they are still written to disk in full so the file is
// self-describing. APIKey is stored unmasked: masking is a display
// transform, not a storage property.
type Settings struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
}

// Config is the root persisted entity.
//
// Provider names the active provider and is empty until the user
// configures one. Providers holds only the entries the user has
// configured. Mood defaults to catalog.MoodNone.
//
// Field names match the on-disk JSON schema and must stay stable
// across versions. Unknown fields in the file are ignored on load.
type Config struct {
	Provider  string              `json:"provider,omitempty"`
	Providers map[string]Settings `json:"providers"`
	Mood      catalog.Mood        `json:"mood,omitempty"`
}

// Resolved is the effective active-provider view used to build a
// request: stored settings merged against the catalog defaults.
type Resolved struct {
	Provider catalog.Provider
	BaseURL  string
	Model    string
	APIKey   string
}

// Load reads and parses the config file at path.
//
// A missing file is not an error: it returns an empty default Config
// and creates nothing on disk. A file that exists but does not parse
// is a hard error, never silently replaced, since discarding it would
// lose a saved API key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Providers: map[string]Settings{}}, nil
		}
		return nil, errors.NewIOError("Cannot read config file", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewCorruptConfigError(path, err)
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]Settings{}
	}
	// Unknown mood tags from newer versions degrade to neutral.
	cfg.Mood = catalog.ParseMood(string(cfg.Mood))
	return &cfg, nil
}

// Save serializes cfg and writes it to path, creating parent
// directories as needed.
//
// The write is atomic from the reader's perspective: the document is
// written to a temp file in the same directory and renamed over the
// target, so a failed save never leaves a half-written file for Load
// to choke on.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIOError("Cannot create config directory", dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.NewInternalError("Cannot serialize config", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return errors.NewIOError("Cannot save config", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewIOError("Cannot save config", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("Cannot save config", path, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("Cannot save config", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("Cannot save config", path, err)
	}
	return nil
}

// ResolveActive returns the effective endpoint, model, and key for the
// active provider, merging stored settings with catalog defaults.
//
// It fails when no provider is active, or when the active provider has
// no API key. The two failures carry distinct user-facing hints: the
// former tells the user to run a --config command, the latter that the
// stored entry is missing its key.
func (c *Config) ResolveActive() (*Resolved, error) {
	if c.Provider == "" {
		return nil, errors.NewNoProviderError()
	}

	id := catalog.Provider(c.Provider)
	settings, ok := c.Providers[c.Provider]
	if !ok {
		// Active provider without an entry is as unconfigured as no
		// key at all.
		return nil, errors.NewMissingKeyError(c.Provider)
	}
	if strings.TrimSpace(settings.APIKey) == "" {
		return nil, errors.NewMissingKeyError(c.Provider)
	}

	defaults := catalog.Defaults(id)
	resolved := &Resolved{
		Provider: id,
		BaseURL:  settings.BaseURL,
		Model:    settings.Model,
		APIKey:   settings.APIKey,
	}
	if resolved.BaseURL == "" {
		resolved.BaseURL = defaults.BaseURL
	}
	if resolved.Model == "" {
		resolved.Model = defaults.Model
	}
	return resolved, nil
}

// String renders a one-line summary for logging and debugging. The
// API key is never included.
func (r *Resolved) String() string {
	return fmt.Sprintf("%s (%s, model %s)", r.Provider, r.BaseURL, r.Model)
}

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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/pkg/catalog"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sorry", "config.json")
}

func TestLoad_MissingFile(t *testing.T) {
	path := testPath(t)

	cfg, err := Load(path)
	require.NoError(t, err, "a missing file is not an error")
	assert.Empty(t, cfg.Provider)
	assert.Empty(t, cfg.Providers)
	assert.Equal(t, catalog.MoodNone, cfg.Mood)

	// A failed read must not create the file as a side effect.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "Load created %s", path)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := testPath(t)

	cfg := &Config{Providers: map[string]Settings{}}
	require.NoError(t, SetProviderKey(cfg, catalog.ProviderGroq, "gsk-abc"))
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "groq", loaded.Provider)
	assert.Equal(t, "gsk-abc", loaded.Providers["groq"].APIKey)
	assert.Equal(t, cfg.Providers["groq"].BaseURL, loaded.Providers["groq"].BaseURL)
	assert.Equal(t, cfg.Providers["groq"].Model, loaded.Providers["groq"].Model)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	path := testPath(t)

	cfg := &Config{Providers: map[string]Settings{}}
	require.NoError(t, SetProviderKey(cfg, catalog.ProviderOpenAI, "sk-test"))
	require.NoError(t, Save(path, cfg))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "save must leave only the config file behind")
	assert.Equal(t, "config.json", entries[0].Name())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	require.Error(t, err, "a corrupt file must never be silently discarded")
	assert.True(t, errors.IsKind(err, errors.KindCorruptConfig))
	assert.Contains(t, err.(*errors.UserError).Cause, path)
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	doc := `{
		"provider": "openai",
		"providers": {
			"openai": {"api_key": "sk-x", "base_url": "", "model": "", "extra": true}
		},
		"mood": "bro",
		"future_field": {"nested": 1}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-x", cfg.Providers["openai"].APIKey)
	assert.Equal(t, catalog.MoodBro, cfg.Mood)
}

func TestLoad_UnknownMoodDegradesToNone(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"mood": "sarcastic"}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.MoodNone, cfg.Mood)
}

func TestResolveActive_NoProvider(t *testing.T) {
	cfg := &Config{Providers: map[string]Settings{}}

	_, err := cfg.ResolveActive()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNoProvider))
	assert.Contains(t, err.(*errors.UserError).Fix, "--config-openai")
}

func TestResolveActive_MissingKey(t *testing.T) {
	cfg := &Config{
		Provider: "groq",
		Providers: map[string]Settings{
			"groq": {BaseURL: "https://api.groq.com/openai/v1", Model: "openai/gpt-oss-20b"},
		},
	}

	_, err := cfg.ResolveActive()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMissingKey))
	assert.Contains(t, err.(*errors.UserError).Message, "groq")
}

func TestResolveActive_ActiveProviderWithoutEntry(t *testing.T) {
	cfg := &Config{Provider: "openai", Providers: map[string]Settings{}}

	_, err := cfg.ResolveActive()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMissingKey))
}

func TestResolveActive_MergesCatalogDefaults(t *testing.T) {
	cfg := &Config{
		Provider: "groq",
		Providers: map[string]Settings{
			"groq": {APIKey: "gsk-abc"},
		},
	}

	resolved, err := cfg.ResolveActive()
	require.NoError(t, err)
	defaults := catalog.Defaults(catalog.ProviderGroq)
	assert.Equal(t, catalog.ProviderGroq, resolved.Provider)
	assert.Equal(t, defaults.BaseURL, resolved.BaseURL)
	assert.Equal(t, defaults.Model, resolved.Model)
	assert.Equal(t, "gsk-abc", resolved.APIKey)
}

func TestResolveActive_StoredValuesWin(t *testing.T) {
	cfg := &Config{
		Provider: "openai",
		Providers: map[string]Settings{
			"openai": {
				APIKey:  "sk-x",
				BaseURL: "https://proxy.internal/v1",
				Model:   "my-custom-model",
			},
		},
	}

	resolved, err := cfg.ResolveActive()
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.internal/v1", resolved.BaseURL)
	// Unlisted models are allowed: the curated list is a picker
	// convenience, not validation.
	assert.Equal(t, "my-custom-model", resolved.Model)
}

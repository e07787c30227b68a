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

package catalog

// Provider identifies a chat-completion service.
//
// The built-in identities are ProviderOpenAI and ProviderGroq. Any other
// tag is treated as an OpenAI-compatible endpoint: it resolves to the
// OpenAI defaults unless the user overrides base URL and model.
type Provider string

// Built-in provider identities.
const (
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
)

// ProviderDefaults holds the catalog defaults for one provider identity.
//
// Models is the curated list shown by the interactive model picker.
// It is never empty and its first entry is the default model. The list
// is a picker convenience only: users may configure any model name,
// including ones not listed here.
type ProviderDefaults struct {
	// BaseURL is the default API endpoint (absolute HTTPS URL, no
	// trailing slash).
	BaseURL string

	// Model is the default model name (always Models[0]).
	Model string

	// Models is the curated, ordered list of selectable models.
	Models []string
}

var providerDefaults = map[Provider]ProviderDefaults{
	ProviderOpenAI: {
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4.1-mini",
		Models: []string{
			"gpt-4.1-mini",
			"gpt-4.1",
			"gpt-4o-mini",
			"gpt-4o",
		},
	},
	ProviderGroq: {
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "openai/gpt-oss-20b",
		Models: []string{
			"openai/gpt-oss-20b",
			"openai/gpt-oss-120b",
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
		},
	},
}

// Providers returns the built-in provider identities in display order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderGroq}
}

// Defaults returns the catalog defaults for the given provider.
//
// Unknown identities fall back to the OpenAI defaults, so a custom
// OpenAI-compatible provider still resolves to something usable.
func Defaults(p Provider) ProviderDefaults {
	if d, ok := providerDefaults[p]; ok {
		return d
	}
	return providerDefaults[ProviderOpenAI]
}

// Known reports whether p is a built-in provider identity.
func Known(p Provider) bool {
	_, ok := providerDefaults[p]
	return ok
}

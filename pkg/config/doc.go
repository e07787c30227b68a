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

// Package config owns the on-disk configuration and provider
// resolution for the sorry CLI.
//
// The persisted document is a single JSON file:
//
//	{
//	  "provider": "groq",
//	  "providers": {
//	    "groq": { "api_key": "gsk-...", "base_url": "https://...", "model": "..." }
//	  },
//	  "mood": "bro"
//	}
//
// Field names are stable across versions; unknown fields are ignored
// on load so newer files keep working with older binaries.
//
// The package has three surfaces: Load/Save (store), the Set*
// editor functions (mutations, persisted by the caller), and
// Config.ResolveActive (merge stored settings with catalog defaults
// into the effective endpoint/model/key).
//
// The Config value is threaded explicitly through callers; there is no
// ambient global configuration. Concurrent invocations of the tool are
// not coordinated: the file has no lock and the last writer wins,
// which is accepted for a single-user, low-frequency CLI.
package config

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

// Package catalog holds the static provider and mood catalogs.
//
// Both catalogs are closed sets defined at build time. Adding a
// provider or mood means adding a catalog entry here; nothing else in
// the codebase switches on the concrete identity.
//
// The provider catalog supplies per-identity defaults (base URL,
// default model, curated model list) that pkg/config merges against
// user settings at resolve time. The mood catalog supplies the system
// prompt fragment that pkg/chat injects into outgoing requests.
package catalog

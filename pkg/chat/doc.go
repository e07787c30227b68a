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

// Package chat builds chat-completions requests and interprets
// provider responses.
//
// The query path is three steps, each usable on its own:
//
//	req, err := chat.Build(cfg, history, message)   // compose prompts
//	reply, err := chat.NewClient(0).Send(ctx, req)  // one POST, bearer auth
//	// or, with your own transport:
//	reply, err := chat.Interpret(status, body)      // classify the result
//
// Build merges the selected mood's system prompt fragment with an
// optional shell-history context block and the user's message, then
// resolves the active provider's endpoint, model, and key. Interpret
// is a pure function over status and bytes so it can be tested without
// a network. The wire shape is the OpenAI chat-completions JSON, which
// both built-in providers speak.
package chat

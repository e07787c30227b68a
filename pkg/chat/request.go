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

package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/pkg/catalog"
	"github.com/kraklabs/sorry/pkg/config"
)

// Message is one entry of the chat-completions messages array.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Request is a wire-ready chat request for the resolved provider.
//
// It is built once per invocation and discarded after the HTTP call.
// Endpoint and APIKey address the transport; System and User are the
// composed prompts.
type Request struct {
	Provider catalog.Provider
	Endpoint string
	Model    string
	APIKey   string
	System   string
	User     string
}

// Build constructs the chat request from the active provider config,
// the selected mood, optional history lines, and the user message.
//
// History lines are an opaque ordered sequence, oldest first; when
// present they are framed in a delimited context block ahead of the
// literal message. With no history, the user prompt is exactly the
// trimmed message. The message itself is the only required input.
func Build(cfg *config.Config, history []string, message string) (*Request, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.NewInvalidInput(
			"No message provided",
			"There is nothing to ask the provider",
			"Run 'sorry <what went wrong>'",
		)
	}

	resolved, err := cfg.ResolveActive()
	if err != nil {
		return nil, err
	}

	return &Request{
		Provider: resolved.Provider,
		Endpoint: strings.TrimSuffix(resolved.BaseURL, "/") + "/chat/completions",
		Model:    resolved.Model,
		APIKey:   resolved.APIKey,
		System:   cfg.Mood.SystemPrompt(),
		User:     composeUserPrompt(history, message),
	}, nil
}

// composeUserPrompt frames the message with the history context block
// when history is present. Lines stay in their original order (oldest
// first) and are never parsed as shell syntax.
func composeUserPrompt(history []string, message string) string {
	if len(history) == 0 {
		return message
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the user's last %d shell commands:\n```\n", len(history))
	for i, cmd := range history {
		fmt.Fprintf(&b, "%d. %s\n", i+1, cmd)
	}
	b.WriteString("```\n\n")
	b.WriteString("My question/problem: ")
	b.WriteString(message)
	return b.String()
}

// wireRequest is the JSON body of the chat-completions POST.
type wireRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// MarshalBody renders the provider wire shape:
//
//	{ "model": "...", "messages": [ {"role":"system",...}, {"role":"user",...} ] }
//
// The system message is always present, even when empty, so the wire
// shape is identical across moods.
func (r *Request) MarshalBody() ([]byte, error) {
	body := wireRequest{
		Model: r.Model,
		Messages: []Message{
			{Role: "system", Content: r.System},
			{Role: "user", Content: r.User},
		},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.NewInternalError("Cannot serialize chat request", err)
	}
	return data, nil
}

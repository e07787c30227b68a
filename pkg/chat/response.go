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
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/kraklabs/sorry/internal/errors"
)

// excerptLen bounds the body excerpt attached to malformed-response
// errors.
const excerptLen = 200

// wireResponse is the subset of the chat-completions response we read.
type wireResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// wireError is the provider error envelope ({"error":{"message":...}}).
type wireError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Interpret classifies a raw HTTP response into the assistant's text
// or a failure. It is a pure function over status and body: the caller
// owns the transport.
//
//   - 2xx with at least one choice: the first choice's text, trimmed.
//   - 2xx with zero choices: empty response.
//   - 2xx that does not parse: malformed response with a body excerpt.
//   - 401/403: an API key hint, without guessing a more specific cause.
//   - other 4xx: provider rejection carrying the provider's own error
//     message when the body has one.
//   - 5xx: provider unavailable.
//
// No status triggers a retry; transient and permanent failures are
// reported identically and the user re-runs manually.
func Interpret(status int, body []byte) (string, error) {
	switch {
	case status >= 200 && status < 300:
		return interpretSuccess(body)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "", errors.NewMissingKeyError("")
	case status >= 400 && status < 500:
		return "", errors.NewRejectedError(status, extractErrorMessage(body))
	default:
		return "", errors.NewUnavailableError(
			"The provider answered with status "+http.StatusText(status), nil)
	}
}

func interpretSuccess(body []byte) (string, error) {
	var resp wireResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.NewMalformedResponseError(excerpt(body), err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.NewEmptyResponseError()
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// extractErrorMessage pulls the provider's own message out of a 4xx
// body. Returns "" when the body has no recognizable error envelope.
func extractErrorMessage(body []byte) string {
	var we wireError
	if err := json.Unmarshal(body, &we); err != nil {
		return ""
	}
	return we.Error.Message
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > excerptLen {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := excerptLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	if s == "" {
		s = "(empty body)"
	}
	return s
}

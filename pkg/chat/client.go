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
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/kraklabs/sorry/internal/errors"
)

// DefaultTimeout bounds the single network round-trip so the process
// cannot hang forever on a stalled provider.
const DefaultTimeout = 60 * time.Second

// Client performs the chat-completions POST. One invocation makes at
// most one call; there is no retry or backoff.
type Client struct {
	hc *http.Client
}

// NewClient creates a client with the given request timeout.
// A zero or negative timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{hc: &http.Client{Timeout: timeout}}
}

// Send posts the request and interprets the response.
//
// Network-layer failures, including the client timeout, surface as the
// provider being unavailable; everything that reaches HTTP status
// handling goes through Interpret.
func (c *Client) Send(ctx context.Context, req *Request) (string, error) {
	body, err := req.MarshalBody()
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.NewInternalError("Cannot build HTTP request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return "", errors.NewUnavailableError(
			"The request to "+req.Endpoint+" did not complete", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewUnavailableError(
			"Reading the response from "+req.Endpoint+" failed", err)
	}

	return Interpret(resp.StatusCode, respBody)
}

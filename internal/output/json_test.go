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

package output

import (
	"bytes"
	"strings"
	"testing"
)

// TestJSONTo verifies pretty-printed JSON output.
func TestJSONTo(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{
		"provider": "groq",
		"model":    "openai/gpt-oss-20b",
	}

	if err := JSONTo(&buf, data); err != nil {
		t.Fatalf("JSONTo failed: %v", err)
	}

	out := buf.String()

	// Check for pretty-printing (2-space indentation)
	if !strings.Contains(out, "  \"provider\"") {
		t.Errorf("Expected 2-space indentation, got: %s", out)
	}
	if !strings.Contains(out, `"provider": "groq"`) {
		t.Errorf("Missing provider field, got: %s", out)
	}
	// json.Encoder adds a trailing newline
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("Expected trailing newline, got: %q", out)
	}
}

// TestJSONTo_EncodingError verifies unencodable values are reported.
func TestJSONTo_EncodingError(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONTo(&buf, make(chan int)); err == nil {
		t.Fatal("expected encoding error for a channel value")
	}
}

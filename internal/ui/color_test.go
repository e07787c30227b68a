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

package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// TestInfo verifies the info prefix and that output lands on the
// configured color writer.
func TestInfo(t *testing.T) {
	originalNoColor := color.NoColor
	originalOutput := color.Output
	defer func() {
		color.NoColor = originalNoColor
		color.Output = originalOutput
	}()

	var buf bytes.Buffer
	color.NoColor = true
	color.Output = &buf

	Info("Run 'sorry --config-openai' or 'sorry --config-groq' to set up.")

	want := "ℹ Run 'sorry --config-openai' or 'sorry --config-groq' to set up.\n"
	if buf.String() != want {
		t.Errorf("Info output = %q, want %q", buf.String(), want)
	}
}

func TestInitColors(t *testing.T) {
	// Save original state
	original := color.NoColor
	defer func() { color.NoColor = original }()

	tests := []struct {
		name     string
		noColor  bool
		expected bool
	}{
		{
			name:     "colors enabled when noColor is false",
			noColor:  false,
			expected: false,
		},
		{
			name:     "colors disabled when noColor is true",
			noColor:  true,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitColors(tt.noColor)
			if color.NoColor != tt.expected {
				t.Errorf("InitColors(%v): color.NoColor = %v, expected %v",
					tt.noColor, color.NoColor, tt.expected)
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"empty key", "", "(not set)"},
		{"typical key", "gsk-abcdef1234", "****1234"},
		{"short key", "abc", "***"},
		{"exactly four chars", "abcd", "****"},
		{"five chars", "abcde", "****bcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskKey(tt.key)
			if got != tt.want {
				t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// TestMaskKey_NeverLeaksPrefix guards the redaction rule: only the last
// four characters of a key may ever appear in display output.
func TestMaskKey_NeverLeaksPrefix(t *testing.T) {
	key := "sk-proj-supersecretvalue9876"
	masked := MaskKey(key)
	if strings.Contains(masked, "supersecret") {
		t.Errorf("MaskKey leaked the key body: %q", masked)
	}
	if !strings.HasSuffix(masked, "9876") {
		t.Errorf("MaskKey(%q) = %q, want the last four characters kept", key, masked)
	}
}

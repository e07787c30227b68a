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

package main

import (
	"fmt"
	"strconv"

	"github.com/kraklabs/sorry/internal/errors"
	"github.com/kraklabs/sorry/internal/ui"
	"github.com/kraklabs/sorry/pkg/catalog"
	"github.com/kraklabs/sorry/pkg/config"
)

// runBehaviour executes the --behaviour command: a numbered picker over
// the mood catalog. An unrecognized answer leaves the mood unchanged;
// a valid pick is persisted before success is reported.
func runBehaviour(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		errors.FatalError(err, false)
	}

	moods := catalog.Moods()

	fmt.Println("\nConfigure sorry's behaviour")
	fmt.Println("\nChoose a mood:")
	fmt.Println()
	for i, mood := range moods {
		marker := ""
		if mood == cfg.Mood {
			marker = " (current)"
		}
		fmt.Printf("  %d. %s%s\n", i+1, mood.DisplayName(), marker)
	}
	fmt.Println()

	input := promptLine(fmt.Sprintf("Select mood [1-%d]: ", len(moods)))
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(moods) {
		ui.Warning("Invalid selection, mood unchanged.")
		return
	}

	config.SetMood(cfg, moods[idx-1])
	if err := config.Save(path, cfg); err != nil {
		errors.FatalError(err, false)
	}

	fmt.Println()
	ui.Successf("Mood set to: %s", cfg.Mood.DisplayName())
}

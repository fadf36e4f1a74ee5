//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"log/slog"

	"fyne.io/fyne/v2/widget"

	applog "drawscatter/internal/log"
	"drawscatter/internal/scatter"
)

// NewColorPicker returns a horizontal radio group bound to the board's current color.
func NewColorPicker(board *scatter.Board) *widget.RadioGroup {
	labels := make([]string, 0, len(scatter.Colors))
	for _, c := range scatter.Colors {
		labels = append(labels, c.Label())
	}
	rg := widget.NewRadioGroup(labels, nil)
	rg.Horizontal = true
	rg.Required = true
	rg.SetSelected(board.Color().Label())
	rg.OnChanged = func(label string) {
		c, err := scatter.ParseColor(label)
		if err != nil {
			return
		}
		board.SetColor(c)
		applog.WithComponent("ui").Debug("color selected", slog.String("color", c.String()))
	}
	return rg
}

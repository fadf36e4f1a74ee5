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
	"fyne.io/fyne/v2/widget"

	"drawscatter/internal/config"
	"drawscatter/internal/scatter"
)

// prefsForm edits the settings that matter while drawing. Fields shadowed by
// an environment variable say so in their hint.
type prefsForm struct {
	exportDir *widget.Entry
	color     *widget.Select
	caption   *widget.Check
}

func newPrefsForm(cfg config.AppConfig) *prefsForm {
	f := &prefsForm{
		exportDir: widget.NewEntry(),
		caption:   widget.NewCheck("Print point count under PNG snapshots", nil),
	}
	f.exportDir.SetPlaceHolder("Ask with a save dialog")
	f.exportDir.SetText(cfg.Export.Dir)

	labels := make([]string, 0, len(scatter.Colors))
	for _, c := range scatter.Colors {
		labels = append(labels, c.Label())
	}
	f.color = widget.NewSelect(labels, nil)
	f.color.SetSelected(cfg.StartColor().Label())
	f.caption.SetChecked(cfg.Export.Caption)
	return f
}

func (f *prefsForm) items() []*widget.FormItem {
	dir := widget.NewFormItem("CSV folder", f.exportDir)
	dir.HintText = envHint("export.dir", "Downloads go here directly when set")
	col := widget.NewFormItem("Start color", f.color)
	col.HintText = envHint("general.default_color", "")
	return []*widget.FormItem{dir, col, widget.NewFormItem("", f.caption)}
}

func envHint(key, fallback string) string {
	if env, ok := config.EnvOverrideFor(key); ok {
		return "Overridden by " + env
	}
	return fallback
}

// apply copies the form values onto base.
func (f *prefsForm) apply(base config.AppConfig) (config.AppConfig, error) {
	out := base
	if err := out.Set("export.dir", f.exportDir.Text); err != nil {
		return base, err
	}
	if err := out.Set("general.default_color", f.color.Selected); err != nil {
		return base, err
	}
	out.Export.Caption = f.caption.Checked
	return out, nil
}

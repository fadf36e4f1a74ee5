//go:build fyne && cgo

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
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"drawscatter/internal/chart"
	"drawscatter/internal/config"
	"drawscatter/internal/crash"
	"drawscatter/internal/export"
	applog "drawscatter/internal/log"
	"drawscatter/internal/scatter"
	"drawscatter/internal/version"
)

const appTitle = "Scatterplot Data Generator"

// Run starts the Fyne-based desktop UI.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	board := scatter.NewBoard()
	board.SetColor(cfg.StartColor())
	defer crash.Recover(board)

	fyneApp := app.NewWithID("drawscatter")
	applyTheme(fyneApp, cfg.General.Theme)
	w := fyneApp.NewWindow(appTitle)
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 900)
	winH := prefs.IntWithFallback("window.height", 600)
	if winW < 860 {
		winW = 860
	}
	if winH < 540 {
		winH = 540
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	count := widget.NewLabel("0 points")
	board.OnChange(func() { count.SetText(fmt.Sprintf("%d points", board.Len())) })

	drawCanvas := NewDrawCanvas(board)
	chartView := NewChartView(board)
	picker := NewColorPicker(board)

	resetBtn := widget.NewButton("Reset", func() {
		l.Info("reset", slog.Int("points", board.Len()))
		board.Reset()
		status.SetText("Cleared.")
	})
	downloadBtn := widget.NewButton("Download CSV", func() { downloadCSV(w, board, cfg, status, l) })

	cell := fyne.NewSize(scatter.CanvasSize, scatter.CanvasSize)
	title := widget.NewLabelWithStyle(appTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	root := container.NewVBox(
		title,
		container.NewHBox(resetBtn, downloadBtn, count),
		picker,
		container.NewHBox(container.NewGridWrap(cell, drawCanvas), container.NewGridWrap(cell, chartView)),
		status,
	)
	w.SetContent(container.NewPadded(root))

	exportCanvasItem := fyne.NewMenuItem("Export Canvas PNG…", func() {
		l.Info("menu: export canvas png")
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			outPath := uc.URI().Path()
			_ = uc.Close()
			opt := export.PNGOptions{Border: true}
			if cfg.Export.Caption {
				opt.Caption = fmt.Sprintf("%d points", board.Len())
			}
			if err := export.ExportCanvasPNG(outPath, board.Points(), opt); err != nil {
				l.Error("export canvas png", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Exported " + outPath)
		}, w)
		save.SetFileName("scatter_canvas.png")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".png"}))
		save.Show()
	})
	exportChartItem := fyne.NewMenuItem("Export Chart PNG…", func() {
		l.Info("menu: export chart png")
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			defer uc.Close()
			if err := chart.RenderTo(uc, chart.PNG, board.Points(), 800, 800); err != nil {
				l.Error("export chart png", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Exported " + uc.URI().Path())
		}, w)
		save.SetFileName("scatter_chart.png")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".png"}))
		save.Show()
	})
	exportPDFItem := fyne.NewMenuItem("Export PDF…", func() {
		l.Info("menu: export pdf")
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			defer uc.Close()
			if err := export.WritePDF(uc, board.Points(), export.PDFOptions{Grid: true}); err != nil {
				l.Error("export pdf", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Exported " + uc.URI().Path())
		}, w)
		save.SetFileName("scatter_data.pdf")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".pdf"}))
		save.Show()
	})
	downloadItem := fyne.NewMenuItem("Download CSV…", func() { downloadCSV(w, board, cfg, status, l) })
	prefsItem := fyne.NewMenuItem("Preferences…", func() {
		l.Info("menu: preferences")
		// Edit the file values only; env overrides stay out of the saved file.
		fileCfg, err := config.LoadFile()
		if err != nil {
			l.Warn("config file unreadable, saving replaces it", slog.Any("err", err))
		}
		form := newPrefsForm(fileCfg)
		dialog.ShowForm("Preferences", "Save", "Cancel", form.items(), func(ok bool) {
			if !ok {
				return
			}
			fileCfg, err := form.apply(fileCfg)
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if err := config.Save(fileCfg); err != nil {
				l.Error("save config", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			if next, err := config.Load(); err == nil {
				cfg = next
			}
			status.SetText("Preferences saved.")
		}, w)
	})
	fileMenu := fyne.NewMenu("File", downloadItem, fyne.NewMenuItemSeparator(), exportCanvasItem, exportChartItem, exportPDFItem, fyne.NewMenuItemSeparator(), prefsItem)

	aboutItem := fyne.NewMenuItem("About", func() {
		l.Info("menu: about")
		exe, _ := os.Executable()
		info := fmt.Sprintf("%s\nVersion: %s\nOS: %s\nArch: %s\nGo: %s\nExecutable: %s",
			appTitle, version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version(), exe)
		dialog.ShowInformation("About", info, w)
	})
	w.SetMainMenu(fyne.NewMainMenu(fileMenu, fyne.NewMenu("Help", aboutItem)))

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}

// downloadCSV writes the current points either straight into the configured
// export directory or wherever the user picks in a save dialog.
func downloadCSV(w fyne.Window, board *scatter.Board, cfg config.AppConfig, status *widget.Label, l *slog.Logger) {
	l = applog.WithOperation(l, "download_csv")
	pts := board.Points()
	if cfg.Export.Dir != "" {
		path, err := export.DownloadCSV(cfg.Export.Dir, pts)
		if err != nil {
			l.Error("write csv", slog.Any("err", err))
			status.SetText("Download failed: " + err.Error())
			return
		}
		l.Info("csv written", slog.String("path", path), slog.Int("points", len(pts)))
		status.SetText("Saved " + path)
		return
	}
	save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if uc == nil {
			return
		}
		defer uc.Close()
		if err := export.WriteCSV(uc, pts); err != nil {
			l.Error("write csv", slog.Any("err", err))
			status.SetText("Download failed: " + err.Error())
			return
		}
		l.Info("csv written", slog.String("path", uc.URI().Path()), slog.String("mime", export.CSVMimeType), slog.Int("points", len(pts)))
		status.SetText("Saved " + uc.URI().Path())
	}, w)
	save.SetFileName(export.CSVFileName)
	save.SetFilter(fstorage.NewExtensionFileFilter([]string{".csv"}))
	save.Show()
}

func applyTheme(a fyne.App, name string) {
	switch name {
	case "light":
		a.Settings().SetTheme(theme.LightTheme()) //nolint:staticcheck
	case "dark":
		a.Settings().SetTheme(theme.DarkTheme()) //nolint:staticcheck
	}
}

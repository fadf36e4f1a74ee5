/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"drawscatter/internal/chart"
	"drawscatter/internal/config"
	"drawscatter/internal/crash"
	"drawscatter/internal/export"
	applog "drawscatter/internal/log"
	"drawscatter/internal/scatter"
	"drawscatter/internal/ui"
	"drawscatter/internal/version"
)

const chartExportSize = 800

func usage(w io.Writer) {
	fmt.Fprintln(w, "drawscatter: scatterplot data generator")
	fmt.Fprintf(w, "Version: %s\n", version.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  drawscatter version|-v|--version            Show version")
	fmt.Fprintln(w, "  drawscatter ui                               Launch desktop UI (build with -tags fyne)")
	fmt.Fprintln(w, "  drawscatter render <in.csv> <out.png>        Draw the canvas bitmap for a CSV")
	fmt.Fprintln(w, "  drawscatter chart <in.csv> <out.png|out.svg> Render the scatterplot for a CSV")
	fmt.Fprintln(w, "  drawscatter pdf <in.csv> <out.pdf>           Write a PDF report for a CSV")
	fmt.Fprintln(w, "  drawscatter config                           Show the effective configuration")
	fmt.Fprintln(w, "  drawscatter config set <key> <value>         Persist one setting to the config file")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	if cfgErr != nil {
		applog.WithComponent("config").Warn("using defaults", slog.Any("err", cfgErr))
	}

	board := scatter.NewBoard()
	defer crash.Recover(board)

	if code := run(os.Args[1:], cfg, board, os.Stdout); code != 0 {
		os.Exit(code)
	}
}

// run executes one subcommand and returns the process exit code.
func run(args []string, cfg config.AppConfig, board *scatter.Board, out io.Writer) int {
	l := applog.WithComponent("cli")
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) == 0 {
		usage(out)
		return 0
	}
	switch args[0] {
	case "version", "--version", "-v":
		fmt.Fprintln(out, version.String())
		return 0
	case "ui":
		if err := ui.Run(cfg); err != nil {
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		return 0
	case "config":
		return runConfig(args[1:], cfg, out)
	case "render", "chart", "pdf":
		if len(args) < 3 {
			fmt.Fprintf(out, "%s requires <in.csv> and <out>\n", args[0])
			usage(out)
			return 2
		}
		in, dst := args[1], args[2]
		pts, err := export.LoadCSV(in)
		if err != nil {
			l.Error("load csv failed", slog.String("path", in), slog.Any("err", err))
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		board.Replace(pts)
		l = applog.WithOperation(l, args[0])
		l.Info("loaded points", slog.String("path", in), slog.Int("points", board.Len()))
		if err := write(args[0], dst, board.Points(), cfg); err != nil {
			l.Error("export failed", slog.String("out", dst), slog.Any("err", err))
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		fmt.Fprintf(out, "Wrote %s (%d points)\n", dst, board.Len())
		return 0
	}
	usage(out)
	return 2
}

func write(cmd, dst string, pts []scatter.Point, cfg config.AppConfig) error {
	switch cmd {
	case "render":
		opt := export.PNGOptions{Border: true}
		if cfg.Export.Caption {
			opt.Caption = fmt.Sprintf("%d points", len(pts))
		}
		return export.ExportCanvasPNG(dst, pts, opt)
	case "chart":
		format := chart.PNG
		if strings.EqualFold(filepath.Ext(dst), ".svg") {
			format = chart.SVG
		}
		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("create %s: %w", dst, err)
		}
		if err := chart.RenderTo(f, format, pts, chartExportSize, chartExportSize); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	case "pdf":
		title := strings.TrimSuffix(filepath.Base(dst), filepath.Ext(dst))
		return export.ExportPDF(dst, pts, export.PDFOptions{Title: title, Grid: true})
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runConfig(args []string, cfg config.AppConfig, out io.Writer) int {
	l := applog.WithOperation(applog.WithComponent("cli"), "config")
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	if len(args) == 0 {
		fmt.Fprintf(out, "file: %s\n", path)
		for _, key := range config.Keys {
			v, _ := cfg.Get(key)
			if env, ok := config.EnvOverrideFor(key); ok {
				fmt.Fprintf(out, "%s = %s (from %s)\n", key, v, env)
				continue
			}
			fmt.Fprintf(out, "%s = %s\n", key, v)
		}
		return 0
	}
	if args[0] != "set" || len(args) != 3 {
		fmt.Fprintln(out, "config expects no arguments or: set <key> <value>")
		usage(out)
		return 2
	}
	key, value := args[1], args[2]
	fileCfg, err := config.LoadFile()
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	if err := fileCfg.Set(key, value); err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	if err := config.Save(fileCfg); err != nil {
		l.Error("save config failed", slog.String("path", path), slog.Any("err", err))
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	saved, _ := fileCfg.Get(key)
	l.Info("config saved", slog.String("key", key), slog.String("path", path))
	fmt.Fprintf(out, "Saved %s = %s to %s\n", key, saved, path)
	if env, ok := config.EnvOverrideFor(key); ok {
		fmt.Fprintf(out, "Note: %s is set and overrides this value\n", env)
	}
	return 0
}

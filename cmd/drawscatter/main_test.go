/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drawscatter/internal/config"
	"drawscatter/internal/scatter"
)

const sampleCSV = "x,y,color\n10,390,blue\n200,200,red\n390,10,green"

func writeSample(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(p, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun_Exports(t *testing.T) {
	in := writeSample(t)
	dir := t.TempDir()
	cases := []struct {
		cmd, out, magic string
	}{
		{"render", "canvas.png", "\x89PNG"},
		{"chart", "chart.png", "\x89PNG"},
		{"chart", "chart.svg", "<svg"},
		{"pdf", "report.pdf", "%PDF"},
	}
	for _, tc := range cases {
		t.Run(tc.cmd+"_"+tc.out, func(t *testing.T) {
			var buf bytes.Buffer
			b := scatter.NewBoard()
			dst := filepath.Join(dir, tc.out)
			if code := run([]string{tc.cmd, in, dst}, config.Defaults(), b, &buf); code != 0 {
				t.Fatalf("exit %d: %s", code, buf.String())
			}
			if b.Len() != 3 {
				t.Fatalf("board should hold the loaded points, got %d", b.Len())
			}
			data, err := os.ReadFile(dst)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data[:min(len(data), 256)]), tc.magic) {
				t.Fatalf("%s does not look like %q", tc.out, tc.magic)
			}
			if !strings.Contains(buf.String(), "3 points") {
				t.Fatalf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestRun_BadCSV(t *testing.T) {
	in := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(in, []byte("a,b,c\n1,2,blue"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	code := run([]string{"render", in, filepath.Join(t.TempDir(), "o.png")}, config.Defaults(), scatter.NewBoard(), &buf)
	if code != 1 || !strings.HasPrefix(buf.String(), "Error:") {
		t.Fatalf("want exit 1 with error, got %d %q", code, buf.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	var buf bytes.Buffer
	if code := run([]string{"pdf", "only-one.csv"}, config.Defaults(), scatter.NewBoard(), &buf); code != 2 {
		t.Fatalf("missing args: exit %d", code)
	}
	buf.Reset()
	if code := run([]string{"bogus"}, config.Defaults(), scatter.NewBoard(), &buf); code != 2 {
		t.Fatalf("unknown command: exit %d", code)
	}
	if !strings.Contains(buf.String(), "Usage:") {
		t.Fatalf("usage not printed: %q", buf.String())
	}
	buf.Reset()
	if code := run(nil, config.Defaults(), scatter.NewBoard(), &buf); code != 0 {
		t.Fatalf("no args: exit %d", code)
	}
}

func TestRun_Version(t *testing.T) {
	var buf bytes.Buffer
	if code := run([]string{"--version"}, config.Defaults(), scatter.NewBoard(), &buf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(buf.String()) == "" {
		t.Fatalf("empty version output")
	}
}

func TestRun_HeaderOnlyCSV(t *testing.T) {
	in := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(in, []byte("x,y,color"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, cmd := range []string{"render", "chart", "pdf"} {
		var buf bytes.Buffer
		out := filepath.Join(dir, cmd+".out")
		if cmd == "chart" {
			out = filepath.Join(dir, "chart.png")
		}
		if code := run([]string{cmd, in, out}, config.Defaults(), scatter.NewBoard(), &buf); code != 0 {
			t.Fatalf("%s on header-only csv: exit %d: %s", cmd, code, buf.String())
		}
		if !strings.Contains(buf.String(), "0 points") {
			t.Fatalf("%s: unexpected output %q", cmd, buf.String())
		}
	}
}

func TestRun_ConfigSetAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, path)

	var buf bytes.Buffer
	if code := run([]string{"config", "set", "general.default_color", "Red"}, config.Defaults(), scatter.NewBoard(), &buf); code != 0 {
		t.Fatalf("config set: exit %d: %s", code, buf.String())
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StartColor() != scatter.Red {
		t.Fatalf("saved color not loaded: %q", cfg.General.DefaultColor)
	}

	t.Setenv(config.EnvExportDir, "/from/env")
	cfg, _ = config.Load()
	buf.Reset()
	if code := run([]string{"config"}, cfg, scatter.NewBoard(), &buf); code != 0 {
		t.Fatalf("config show: exit %d", code)
	}
	out := buf.String()
	for _, want := range []string{"file: " + path, "general.default_color = red", "export.dir = /from/env (from " + config.EnvExportDir + ")"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}

	// env overrides must not leak into the saved file
	buf.Reset()
	if code := run([]string{"config", "set", "export.caption", "true"}, cfg, scatter.NewBoard(), &buf); code != 0 {
		t.Fatalf("config set caption: exit %d: %s", code, buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "/from/env") {
		t.Fatalf("env override persisted: %s", data)
	}
}

func TestRun_ConfigSetRejects(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	var buf bytes.Buffer
	if code := run([]string{"config", "set", "logging.level", "loud"}, config.Defaults(), scatter.NewBoard(), &buf); code != 1 {
		t.Fatalf("invalid value: exit %d", code)
	}
	buf.Reset()
	if code := run([]string{"config", "set", "only-key"}, config.Defaults(), scatter.NewBoard(), &buf); code != 2 {
		t.Fatalf("missing value: exit %d", code)
	}
}

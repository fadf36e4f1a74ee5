package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitAndStructuredLoggingToFile verifies that Init with a file handler writes JSON logs
// and that static and contextual attributes are present.
func TestInitAndStructuredLoggingToFile(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "dsc.json")
	var console bytes.Buffer
	Init(Options{Level: "debug", Format: "json", File: fpath, Writer: &console})

	l := WithOperation(WithComponent("testcomp"), "op1")
	l.Info("hello world", slog.String("k", "v"))

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var last string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		t.Fatalf("no log lines found")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal json log: %v", err)
	}
	if m["app"] != "drawscatter" {
		t.Fatalf("missing app attr: %v", m["app"])
	}
	if _, ok := m["ver"].(string); !ok {
		t.Fatalf("missing ver attr")
	}
	if m["session"] != SessionID() {
		t.Fatalf("session attr = %v, want %s", m["session"], SessionID())
	}
	if m["component"] != "testcomp" || m["op"] != "op1" || m["k"] != "v" {
		t.Fatalf("context attrs mismatch: %v", m)
	}
	if !strings.Contains(console.String(), `"msg":"hello world"`) {
		t.Fatalf("console json output missing record: %q", console.String())
	}
}

func TestPrettyConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "console", Writer: &buf})

	l := WithComponent("ui")
	l.Debug("hidden")
	l.Warn("saved file", slog.String("path", "/tmp/a b.csv"), slog.Int("points", 3), slog.Float64("x", 12.5))
	l.WithGroup("g").Info("grouped", slog.Bool("ok", true))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %q", out)
	}
	for _, want := range []string{"WRN saved file", "component=ui", `path="/tmp/a b.csv"`, "points=3", "x=12.5", "app=drawscatter", "g.ok=true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestPrettyConsoleSource(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "console", AddSource: true, Writer: &buf})
	L().Info("with source")

	out := buf.String()
	if !strings.Contains(out, "INF with source") {
		t.Fatalf("record missing: %q", out)
	}
	// Source positions are only available where slog.Record exposes them.
	if _, ok := any(slog.Record{}).(interface{ Source() *slog.Source }); ok {
		if !strings.Contains(out, "src=") || !strings.Contains(out, "logger_test.go:") {
			t.Fatalf("source position missing: %q", out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, " WARN ": slog.LevelWarn, "warning": slog.LevelWarn,
		"error": slog.LevelError, "": slog.LevelInfo, "bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DSC_LOG_LEVEL", "error")
	t.Setenv("DSC_LOG_FORMAT", "json")
	t.Setenv("DSC_LOG_SOURCE", "TRUE")
	t.Setenv("DSC_LOG_FILE", "/tmp/x.log")
	o := FromEnv()
	if o.Level != "error" || o.Format != "json" || !o.AddSource || o.File != "/tmp/x.log" {
		t.Fatalf("FromEnv() = %#v", o)
	}
}

package crash

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drawscatter/internal/scatter"
)

func silenceStderr(t *testing.T) {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	t.Cleanup(func() {
		_ = w.Close()
		os.Stderr = old
		_, _ = io.Copy(io.Discard, r)
	})
}

func findFile(t *testing.T, dir, suffix string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "drawscatter-crash-") && strings.HasSuffix(e.Name(), suffix) {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

// TestRecover_WritesReportAndAutosave ensures Recover handles a panic, writes a report,
// saves the points and does not terminate the test process due to injected exitFn.
func TestRecover_WritesReportAndAutosave(t *testing.T) {
	silenceStderr(t)
	dir := t.TempDir()
	oldDir := reportDir
	reportDir = func() string { return dir }
	t.Cleanup(func() { reportDir = oldDir })

	code := 0
	oldExit := exitFn
	exitFn = func(c int) { code = c }
	t.Cleanup(func() { exitFn = oldExit })

	b := scatter.NewBoard()
	b.PointerDown(10, 10)
	b.PointerMove(20, 20)

	func() {
		defer Recover(b)
		panic("boom")
	}()

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	report := findFile(t, dir, ".log")
	if report == "" {
		t.Fatalf("expected crash report in %s", dir)
	}
	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.Contains(data, []byte("Panic: boom")) || !bytes.Contains(data, []byte("Points: 2")) {
		t.Fatalf("report content unexpected: %s", data)
	}
	csv := findFile(t, dir, ".csv")
	if csv == "" {
		t.Fatalf("expected points autosave in %s", dir)
	}
	got, _ := os.ReadFile(csv)
	if string(got) != "x,y,color\n10,390,blue\n20,380,blue" {
		t.Fatalf("autosave content = %q", got)
	}
}

func TestRecover_NoPanicIsNoop(t *testing.T) {
	called := false
	oldExit := exitFn
	exitFn = func(int) { called = true }
	t.Cleanup(func() { exitFn = oldExit })

	func() {
		defer Recover(nil)
	}()
	if called {
		t.Fatalf("exit must not be called without a panic")
	}
}

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic into a crash report plus a CSV autosave of the
// points drawn so far.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"drawscatter/internal/export"
	applog "drawscatter/internal/log"
	"drawscatter/internal/scatter"
	"drawscatter/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// reportDir is where reports and autosaves land.
var reportDir = os.TempDir

// Recover captures a panic, logs it with the stack, writes an error report
// file and saves the board's points next to it (if a board is given).
//
// It must be deferred directly: defer crash.Recover(board)
func Recover(board *scatter.Board) {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	stamp := time.Now().Format("20060102-150405")
	reportPath, err := writeReport(stamp, board, r, stack)
	if err != nil {
		l.Error("write crash report failed", slog.Any("err", err))
	}
	if board != nil {
		if path, err := autosave(stamp, board); err != nil {
			l.Error("autosave points failed", slog.Any("err", err))
		} else {
			l.Info("points autosaved", slog.String("path", path), slog.Int("points", board.Len()))
		}
	}

	_, _ = fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath)
	_, _ = fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
	exitFn(2)
}

func writeReport(stamp string, board *scatter.Board, panicVal any, stack []byte) (string, error) {
	path := filepath.Join(reportDir(), fmt.Sprintf("drawscatter-crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "drawscatter crash report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&buf, "Session: %s\n", applog.SessionID())
	if board != nil {
		_, _ = fmt.Fprintf(&buf, "Points: %d\nColor: %s\nState: %s\n", board.Len(), board.Color(), board.State())
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", stack)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, err
	}
	return path, nil
}

func autosave(stamp string, board *scatter.Board) (string, error) {
	path := filepath.Join(reportDir(), fmt.Sprintf("drawscatter-crash-%s.csv", stamp))
	if err := os.WriteFile(path, []byte(export.CSV(board.Points())), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"drawscatter/internal/scatter"
)

const (
	// CSVFileName is the default name of a downloaded point list.
	CSVFileName = "scatter_data.csv"
	// CSVMimeType is the content type of the download.
	CSVMimeType = "text/csv"
	// CSVHeader is the first line of every file.
	CSVHeader = "x,y,color"
)

var (
	ErrBadHeader = errors.New("csv: header must be \"" + CSVHeader + "\"")
	ErrBadRow    = errors.New("csv: malformed row")
)

// CSV serializes points as header plus one row per point, rows separated by
// "\n" with no trailing newline. An empty list yields just the header.
func CSV(points []scatter.Point) string {
	var b strings.Builder
	b.Grow(len(CSVHeader) + len(points)*16)
	b.WriteString(CSVHeader)
	for _, p := range points {
		b.WriteByte('\n')
		b.WriteString(scatter.FormatCoord(p.X))
		b.WriteByte(',')
		b.WriteString(scatter.FormatCoord(p.Y))
		b.WriteByte(',')
		b.WriteString(p.Color.String())
	}
	return b.String()
}

// WriteCSV streams CSV(points) to w.
func WriteCSV(w io.Writer, points []scatter.Point) error {
	if _, err := io.WriteString(w, CSV(points)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ReadCSV parses a file produced by WriteCSV. A trailing newline and CRLF line
// endings are tolerated.
func ReadCSV(r io.Reader) ([]scatter.Point, error) {
	sc := bufio.NewScanner(r)
	line := 0
	var out []scatter.Point
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 {
			if strings.TrimPrefix(text, "\ufeff") != CSVHeader {
				return nil, ErrBadHeader
			}
			continue
		}
		if text == "" {
			continue
		}
		p, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if line == 0 {
		return nil, ErrBadHeader
	}
	return out, nil
}

func parseRow(s string) (scatter.Point, error) {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return scatter.Point{}, fmt.Errorf("%w: want 3 fields, got %d", ErrBadRow, len(f))
	}
	x, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return scatter.Point{}, fmt.Errorf("%w: x: %v", ErrBadRow, err)
	}
	y, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return scatter.Point{}, fmt.Errorf("%w: y: %v", ErrBadRow, err)
	}
	c, err := scatter.ParseColor(f[2])
	if err != nil {
		return scatter.Point{}, fmt.Errorf("%w: %v", ErrBadRow, err)
	}
	return scatter.Point{X: x, Y: y, Color: c}, nil
}

// LoadCSV reads a point list from a file on disk.
func LoadCSV(path string) ([]scatter.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(f)
}

// DownloadCSV writes points as CSVFileName into dir and returns the full path.
func DownloadCSV(dir string, points []scatter.Point) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}
	path := filepath.Join(dir, CSVFileName)
	if err := writeFileSync(path, []byte(CSV(points))); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return path, nil
}

// writeFileSync writes data to a file and flushes it to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

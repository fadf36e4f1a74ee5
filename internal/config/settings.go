/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"drawscatter/internal/scatter"
)

// ErrUnknownKey is returned for a key outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Keys lists the dotted names accepted by Get and Set, in file order.
var Keys = []string{
	"general.theme",
	"general.default_color",
	"export.dir",
	"export.caption",
	"logging.level",
	"logging.format",
	"logging.source",
	"logging.file",
}

// Get returns the textual value of a dotted key.
func (c AppConfig) Get(key string) (string, error) {
	switch key {
	case "general.theme":
		return c.General.Theme, nil
	case "general.default_color":
		return c.General.DefaultColor, nil
	case "export.dir":
		return c.Export.Dir, nil
	case "export.caption":
		return strconv.FormatBool(c.Export.Caption), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.source":
		return strconv.FormatBool(c.Logging.Source), nil
	case "logging.file":
		return c.Logging.File, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set assigns a dotted key from its textual form, applying the same
// normalization and checks as a loaded file.
func (c *AppConfig) Set(key, value string) error {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	switch key {
	case "general.theme":
		if !oneOf(lower, "system", "light", "dark") {
			return fmt.Errorf("%w: theme must be system, light or dark", ErrInvalid)
		}
		c.General.Theme = lower
	case "general.default_color":
		col, err := scatter.ParseColor(v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		c.General.DefaultColor = col.String()
	case "export.dir":
		c.Export.Dir = v
	case "export.caption":
		b, err := strconv.ParseBool(lower)
		if err != nil {
			return fmt.Errorf("%w: caption must be true or false", ErrInvalid)
		}
		c.Export.Caption = b
	case "logging.level":
		if !oneOf(lower, "debug", "info", "warn", "warning", "error") {
			return fmt.Errorf("%w: unknown log level %q", ErrInvalid, v)
		}
		c.Logging.Level = lower
	case "logging.format":
		if !oneOf(lower, "console", "json") {
			return fmt.Errorf("%w: log format must be console or json", ErrInvalid)
		}
		c.Logging.Format = lower
	case "logging.source":
		b, err := strconv.ParseBool(lower)
		if err != nil {
			return fmt.Errorf("%w: source must be true or false", ErrInvalid)
		}
		c.Logging.Source = b
	case "logging.file":
		c.Logging.File = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

func oneOf(v string, opts ...string) bool {
	for _, o := range opts {
		if v == o {
			return true
		}
	}
	return false
}

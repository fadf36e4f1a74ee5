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
	"testing"
)

func TestSetGet(t *testing.T) {
	cases := []struct {
		key, in, want string
	}{
		{"general.theme", " Light ", "light"},
		{"general.default_color", "GREEN", "green"},
		{"export.dir", " /tmp/out ", "/tmp/out"},
		{"export.caption", "true", "true"},
		{"logging.level", "Debug", "debug"},
		{"logging.format", "json", "json"},
		{"logging.source", "1", "true"},
		{"logging.file", "/tmp/dsc.log", "/tmp/dsc.log"},
	}
	cfg := Defaults()
	for _, c := range cases {
		if err := cfg.Set(c.key, c.in); err != nil {
			t.Fatalf("Set(%s, %q): %v", c.key, c.in, err)
		}
		got, err := cfg.Get(c.key)
		if err != nil {
			t.Fatalf("Get(%s): %v", c.key, err)
		}
		if got != c.want {
			t.Fatalf("Get(%s) = %q, want %q", c.key, got, c.want)
		}
	}
	if len(cases) != len(Keys) {
		t.Fatalf("every key should be covered: %d cases, %d keys", len(cases), len(Keys))
	}
}

func TestSet_Rejects(t *testing.T) {
	cfg := Defaults()
	bad := map[string]string{
		"general.theme":         "neon",
		"general.default_color": "purple",
		"export.caption":        "maybe",
		"logging.level":         "loud",
		"logging.format":        "xml",
		"logging.source":        "sometimes",
	}
	for k, v := range bad {
		if err := cfg.Set(k, v); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Set(%s, %q) = %v, want ErrInvalid", k, v, err)
		}
	}
	if err := cfg.Set("general.font", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("unknown key: %v", err)
	}
	if _, err := cfg.Get("general.font"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("unknown key: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("rejected values must not change the config: %#v", cfg)
	}
}

func TestSetThenSave(t *testing.T) {
	withConfigFile(t, "")
	cfg, err := LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("export.dir", "/saved"); err != nil {
		t.Fatal(err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Export.Dir != "/saved" {
		t.Fatalf("saved value not loaded: %q", got.Export.Dir)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed getters over decoded texelvim.json sections.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing.
func (c Config) Section(name string) Section {
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills missing keys of a section, creating it if needed.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) value(section, key string) (interface{}, bool) {
	v, ok := c.Section(section)[key]
	return v, ok
}

// GetString returns a string value, or defaultValue when missing or not a string.
func (c Config) GetString(section, key, defaultValue string) string {
	if v, ok := c.value(section, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetFloat accepts numbers and numeric strings.
func (c Config) GetFloat(section, key string, defaultValue float64) float64 {
	if v, ok := c.value(section, key); ok {
		if f, ok := asFloat(v); ok {
			return f
		}
	}
	return defaultValue
}

// GetInt truncates fractional numbers.
func (c Config) GetInt(section, key string, defaultValue int) int {
	v, ok := c.value(section, key)
	if !ok {
		return defaultValue
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return defaultValue
	}
	if f, ok := asFloat(v); ok {
		return int(f)
	}
	return defaultValue
}

// GetBool accepts booleans, strconv.ParseBool strings and numbers (non-zero is true).
func (c Config) GetBool(section, key string, defaultValue bool) bool {
	v, ok := c.value(section, key)
	if !ok {
		return defaultValue
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
		return defaultValue
	}
	if f, ok := asFloat(v); ok {
		return f != 0
	}
	return defaultValue
}

// GetStringSlice retrieves a list of strings. Non-string elements are
// skipped; a single string becomes a one-element list.
func (c Config) GetStringSlice(section, key string, defaultValue []string) []string {
	v, ok := c.value(section, key)
	if !ok {
		return defaultValue
	}
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{list}
	}
	return defaultValue
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

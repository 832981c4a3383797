// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("nvim", Section{
		"command": "nvim",
		"args":    []interface{}{},
	})
	cfg.RegisterDefaults("font", Section{
		"path": "",
		"size": 14.0,
		"dpi":  96.0,
	})
	cfg.RegisterDefaults("window", Section{
		"backend": "auto",
		"width":   1024,
		"height":  768,
		"title":   "texelvim",
	})
	cfg.RegisterDefaults("theme", Section{
		"style":      "catppuccin-mocha",
		"foreground": "",
		"background": "",
		"flash":      "#ffffff",
	})
	cfg.RegisterDefaults("glyph_cache", Section{
		"max_entries": 0,
	})
	cfg.RegisterDefaults("bell", Section{
		"enabled": true,
		"visual":  true,
	})
}

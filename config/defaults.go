// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into every loaded configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("engine", Section{
		"frame_rate":     30,
		"queue_size":     256,
		"fullscreen_key": "F11",
	})
	cfg.RegisterDefaults("window", Section{
		"background":    "#ff00ff",
		"width":         80,
		"height":        24,
		"persist_state": false,
	})
}

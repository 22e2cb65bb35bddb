// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Copy helper for config maps.

package config

// Clone returns a copy of cfg in which every section is a fresh Section.
// Values inside sections are shared.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		if section := asSection(value); section != nil {
			out := make(Section, len(section))
			for key, v := range section {
				out[key] = v
			}
			clone[name] = out
			continue
		}
		clone[name] = value
	}
	return clone
}

func asSection(v interface{}) Section {
	switch s := v.(type) {
	case Section:
		return s
	case map[string]interface{}:
		return Section(s)
	}
	return nil
}

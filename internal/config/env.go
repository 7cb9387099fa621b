package config

import (
	"maps"
	"slices"
	"strings"
)

// Environ overlays the record's Env onto base, a list of KEY=VALUE pairs in
// the form returned by os.Environ. Keys present in both take the overlay
// value. The result is sorted by key. Base entries without '=' are dropped.
func (s LaunchSpec) Environ(base []string) []string {
	merged := make(map[string]string, len(base)+len(s.Env))
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		merged[key] = value
	}
	for key, value := range s.Env {
		merged[key] = value
	}

	out := make([]string, 0, len(merged))
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		out = append(out, key+"="+merged[key])
	}
	return out
}

package harness

import "strings"

// Environment composition helpers. Child environments are always a fresh
// copy-plus-overlay; the harness never mutates its own process environment.

func envMap(env []string) map[string]string {
	out := make(map[string]string, len(env))
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		out[key] = value
	}
	return out
}

func envSlice(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

// overlayEnv returns base with overlay applied on top. The overlay wins on
// key collision. Neither input is mutated.
func overlayEnv(base []string, overlay map[string]string) []string {
	m := envMap(base)
	for k, v := range overlay {
		m[k] = v
	}
	return envSlice(m)
}

func withEnv(env []string, key, value string) []string {
	m := envMap(env)
	m[key] = value
	return envSlice(m)
}

func getEnv(env []string, key string) string {
	m := envMap(env)
	return m[key]
}

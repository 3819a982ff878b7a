package utils

// SafeGet returns the value stored in m under key, or def when the key is
// absent. A present key always wins, even when its stored value is nil —
// the default is only substituted for genuinely missing keys.
func SafeGet(m map[string]any, key string, def any) any {
	if v, ok := m[key]; ok {
		return v
	}

	return def
}

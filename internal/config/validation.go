package config

// requiredKeys are the keys every settings record must carry to be
// considered valid.
var requiredKeys = []string{"version", "environment"}

// Validate reports whether s carries all required keys. Only key presence
// is checked; values are unconstrained and extra keys are ignored.
func Validate(s Settings) bool {
	for _, key := range requiredKeys {
		if _, ok := s[key]; !ok {
			return false
		}
	}

	return true
}

// Package utils holds small pure helpers shared by the demo applications.
package utils

// FormatMessage prepends prefix to message, separated by a single space.
// An empty prefix leaves the message unchanged.
func FormatMessage(message, prefix string) string {
	if prefix != "" {
		return prefix + " " + message
	}

	return message
}

package domain

import "strings"

// FilterChildValues returns the entries of values whose composite job key
// contains queueName. The input map is not modified.
func FilterChildValues[V any](values map[string]V, queueName string) map[string]V {
	out := make(map[string]V, len(values))
	for key, v := range values {
		if strings.Contains(key, queueName) {
			out[key] = v
		}
	}
	return out
}

package headers

import (
	"strings"
)

// ParseHeaders converts "Key: Value" strings into a map. Malformed entries and
// entries with an empty key are skipped.
func ParseHeaders(h []string) map[string]string {
	m := make(map[string]string)
	for _, hdr := range h {
		key, value, ok := strings.Cut(hdr, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		m[key] = strings.TrimSpace(value)
	}
	return m
}

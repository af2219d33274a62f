package product

import "strings"

// ParseTags splits a free-form tag string into tokens.
// Commas delimit tags when present; otherwise tags are whitespace-delimited.
// Tokens are trimmed and empty tokens are dropped. Order and case are kept.
func ParseTags(raw string) []string {
	var parts []string
	if strings.Contains(raw, ",") {
		parts = strings.Split(raw, ",")
	} else {
		parts = strings.Fields(raw)
	}
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

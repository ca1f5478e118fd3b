package shared

import "strings"

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and parts with ":", skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

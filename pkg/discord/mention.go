package discord

import "strings"

// ParseUserMention extracts the user ID from "<@123>" or "<@!123>".
func ParseUserMention(s string) (string, bool) {
	if !strings.HasPrefix(s, "<@") || !strings.HasSuffix(s, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(s, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if !IsSnowflake(id) {
		return "", false
	}
	return id, true
}

// IsSnowflake reports whether s looks like a Discord ID (digits only).
func IsSnowflake(s string) bool {
	if len(s) < 15 || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package discord

import "strings"

// MaxMessageLength is Discord's limit for a message's content.
const MaxMessageLength = 2000

// SplitMessage cuts content into chunks of at most limit bytes, preferring
// line breaks, then spaces, and only then a hard cut on a rune boundary.
// Only the separator at each cut is dropped.
func SplitMessage(content string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if content == "" {
		return nil
	}

	var chunks []string
	for len(content) > limit {
		// skip is the separator dropped at the cut; hard cuts drop nothing.
		cut, skip := strings.LastIndex(content[:limit], "\n"), 1
		if cut <= 0 {
			cut = strings.LastIndex(content[:limit], " ")
		}
		if cut <= 0 {
			cut, skip = runeBoundary(content, limit), 0
		}
		chunks = append(chunks, content[:cut])
		content = content[cut+skip:]
	}
	if content != "" {
		chunks = append(chunks, content)
	}
	return chunks
}

func runeBoundary(s string, limit int) int {
	cut := limit
	// Step back over UTF-8 continuation bytes.
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	if cut == 0 {
		return limit
	}
	return cut
}

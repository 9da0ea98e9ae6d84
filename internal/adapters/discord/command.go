package discord

import "strings"

const (
	commandPing      = "ping"
	commandTranslate = "translate"
	commandLanguages = "languages"
)

// parseCommand splits "!translate de en" into ("translate", ["de", "en"]).
// ok is false when content is not a command for this prefix.
func parseCommand(prefix, content string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	parts := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(parts) == 0 {
		return "", nil, false
	}
	return strings.ToLower(parts[0]), parts[1:], true
}

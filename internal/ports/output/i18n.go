package output

// T is the catalog of user-facing reply strings.
type T interface {
	// T renders the message identified by key.
	// data is an optional map used for template placeholders (may be nil).
	T(key string, data map[string]any) string
}

package entities

// Member is a guild user that a command argument resolved to.
type Member struct {
	ID         string
	Username   string
	GlobalName string
	Nick       string
}

// DisplayName follows Discord's precedence: Nick > GlobalName > Username.
func (m *Member) DisplayName() string {
	if m == nil {
		return ""
	}
	if m.Nick != "" {
		return m.Nick
	}
	if m.GlobalName != "" {
		return m.GlobalName
	}
	return m.Username
}

// Package entity contains the core business objects of the project.
package entity

// ChatRole identifies the author of a conversation turn.
type ChatRole string

const (
	// RoleSystem is the advisor persona / context turn.
	RoleSystem ChatRole = "system"
	// RoleUser is a turn written by the end user.
	RoleUser ChatRole = "user"
	// RoleAssistant is a turn produced by the text-generation API.
	RoleAssistant ChatRole = "assistant"
)

// String returns the string representation of the ChatRole.
func (r ChatRole) String() string {
	return string(r)
}

// ChatTurn is a single message in a conversation session.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Package domain contains core concepts of the chat system.
// This file defines the acting user as seen by authorization.
package domain

// Persisted user field names.
const (
	UserFieldUsername = "username"
	UserFieldBanned   = "banned"
)

// Group names granting the moderator fast path.
const (
	GroupAdministrators   = "administrators"
	GroupGlobalModerators = "Global Moderators"
	PrivilegeChat         = "chat"
)

type Actor struct {
	UID      string
	Username string
	Banned   bool
}

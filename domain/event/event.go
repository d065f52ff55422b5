package event

import "chat-edit/domain"

// EventChatsEdit is pushed to every live connection of a room member after an accepted edit.
const EventChatsEdit = "chats.edit"

// MessageEdited carries the rendered messages of an edit as seen by the editor.
type MessageEdited struct {
	Room     domain.RoomID            `json:"-"`
	Messages []domain.RenderedMessage `json:"messages"`
}

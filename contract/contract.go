//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-edit/domain"
	"context"
)

// ContentPolicy validates proposed message content.
type ContentPolicy interface {
	CheckContent(ctx context.Context, content string) error
}

// MessageStore is the persistence side of chat messages.
// GetMessageFields only fills the requested fields.
type MessageStore interface {
	MessageExists(ctx context.Context, mid domain.MessageID) (bool, error)
	GetMessageField(ctx context.Context, mid domain.MessageID, field string) (string, error)
	GetMessageFields(ctx context.Context, mid domain.MessageID, fields ...string) (domain.Message, error)
	SetMessageFields(ctx context.Context, mid domain.MessageID, payload domain.EditPayload) error
}

type UserDirectory interface {
	IsAdminOrGlobalMod(ctx context.Context, uid string) (bool, error)
	GetUserFields(ctx context.Context, uid string, fields ...string) (domain.Actor, error)
}

type PrivilegeChecker interface {
	Can(ctx context.Context, capability, uid string) (bool, error)
}

// RoomMembership lists the uids of a room. A stop of -1 means up to the last member.
type RoomMembership interface {
	GetUIDsInRoom(ctx context.Context, roomID domain.RoomID, start, stop int) ([]string, error)
}

type MessageRenderer interface {
	GetMessagesData(ctx context.Context, mids []domain.MessageID, viewerUID string,
		roomID domain.RoomID, isNew bool) ([]domain.RenderedMessage, error)
}

// EditFilter transforms the payload of an edit before it is persisted.
// Implementations must return a payload of the same shape.
type EditFilter interface {
	Fire(ctx context.Context, payload domain.EditPayload) (domain.EditPayload, error)
}

// Notifier pushes an event to all live connections of a user.
// Delivery is fire-and-forget.
type Notifier interface {
	Deliver(ctx context.Context, uid string, event string, payload any)
}

// SettingsProvider returns the current chat settings. Never cache the result across calls.
type SettingsProvider interface {
	Settings(ctx context.Context) (domain.Settings, error)
}

// ConnectionSink is one live connection of a user.
type ConnectionSink interface {
	Send(ctx context.Context, event string, payload any) error
}

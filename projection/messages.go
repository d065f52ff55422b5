// Package projection builds client-ready views of stored messages.
// It reads from the stores and never writes.
package projection

import (
	"chat-edit/contract"
	"chat-edit/domain"
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
)

type MessageRenderer struct {
	messages contract.MessageStore
	users    contract.UserDirectory
}

func NewMessageRenderer(messages contract.MessageStore, users contract.UserDirectory) *MessageRenderer {
	return &MessageRenderer{messages: messages, users: users}
}

// GetMessagesData renders mids in order as seen by viewerUID inside roomID.
// isNew marks the messages as starting a new set on the client.
func (r *MessageRenderer) GetMessagesData(ctx context.Context, mids []domain.MessageID, viewerUID string,
	roomID domain.RoomID, isNew bool) ([]domain.RenderedMessage, error) {
	messages := make([]domain.Message, 0, len(mids))
	for _, mid := range mids {
		message, err := r.messages.GetMessageFields(ctx, mid)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", mid, err)
		}
		messages = append(messages, message)
	}

	usernames := map[string]string{}
	for _, uid := range lo.Uniq(lo.Map(messages, func(m domain.Message, _ int) string { return m.FromUID })) {
		actor, err := r.users.GetUserFields(ctx, uid, domain.UserFieldUsername)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", uid, err)
		}
		usernames[uid] = actor.Username
	}

	return lo.Map(messages, func(m domain.Message, _ int) domain.RenderedMessage {
		rendered := domain.RenderedMessage{
			MessageID:    m.ID,
			RoomID:       roomID,
			FromUID:      m.FromUID,
			FromUser:     usernames[m.FromUID],
			Content:      m.Content,
			Timestamp:    m.Timestamp.UnixMilli(),
			TimestampISO: m.Timestamp.UTC().Format(time.RFC3339Nano),
			System:       m.System,
			Self:         m.FromUID == viewerUID,
			NewSet:       isNew,
		}
		if m.Edited() {
			rendered.Edited = m.EditedAt.UnixMilli()
			rendered.EditedISO = m.EditedAt.UTC().Format(time.RFC3339Nano)
		}
		return rendered
	}), nil
}

//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-edit/authorization"
	"chat-edit/contract"
	"chat-edit/domain"
	"chat-edit/errors"
	"context"
	"fmt"
)

type IChatService interface {
	EditMessage(ctx context.Context, cmd domain.EditMessageCommand) error
	Authorize(ctx context.Context, mid domain.MessageID, uid string, op domain.Operation) error
}

// ChatService is the request boundary: it authorizes before delegating the edit.
type ChatService struct {
	authorizer authorization.IAuthorizer
	messages   contract.MessageStore
	editor     IEditService
}

func NewChatService(authorizer authorization.IAuthorizer, messages contract.MessageStore, editor IEditService) *ChatService {
	return &ChatService{authorizer: authorizer, messages: messages, editor: editor}
}

// EditMessage rejects a command whose room is not the room the message was posted in,
// so an edit is only ever broadcast to the message's own room.
func (s *ChatService) EditMessage(ctx context.Context, cmd domain.EditMessageCommand) error {
	if err := s.authorizer.CanEdit(ctx, cmd.Message, cmd.UID); err != nil {
		return err
	}
	message, err := s.messages.GetMessageFields(ctx, cmd.Message, domain.FieldRoomID)
	if err != nil {
		return fmt.Errorf("message room: %w", err)
	}
	if message.RoomID != cmd.Room {
		return errors.ErrInvalidMessage
	}
	return s.editor.EditMessage(ctx, cmd.UID, cmd.Message, cmd.Room, cmd.Content)
}

func (s *ChatService) Authorize(ctx context.Context, mid domain.MessageID, uid string, op domain.Operation) error {
	return s.authorizer.Authorize(ctx, mid, uid, op)
}

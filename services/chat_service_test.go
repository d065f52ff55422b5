package services

import (
	"chat-edit/domain"
	"chat-edit/errors"
	"chat-edit/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatService_EditMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	authorizer := mocks.NewMockIAuthorizer(ctrl)
	messages := mocks.NewMockMessageStore(ctrl)
	editor := mocks.NewMockIEditService(ctrl)
	svc := NewChatService(authorizer, messages, editor)
	ctx := context.Background()
	cmd := domain.EditMessageCommand{Room: 7, Message: 42, UID: "1", Content: "fixed typo"}

	t.Run("should edit once authorized", func(t *testing.T) {
		req := require.New(t)
		authorizer.EXPECT().CanEdit(ctx, domain.MessageID(42), "1").Return(nil)
		messages.EXPECT().GetMessageFields(ctx, domain.MessageID(42), domain.FieldRoomID).
			Return(domain.Message{ID: 42, RoomID: 7}, nil)
		editor.EXPECT().EditMessage(ctx, "1", domain.MessageID(42), domain.RoomID(7), "fixed typo").Return(nil)

		req.NoError(svc.EditMessage(ctx, cmd))
	})

	t.Run("should never reach the editor when denied", func(t *testing.T) {
		req := require.New(t)
		authorizer.EXPECT().CanEdit(ctx, domain.MessageID(42), "1").Return(errors.ErrUserBanned)
		editor.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.EditMessage(ctx, cmd)
		req.ErrorIs(err, errors.ErrUserBanned)
	})

	t.Run("should reject a room the message was not posted in", func(t *testing.T) {
		req := require.New(t)
		authorizer.EXPECT().CanEdit(ctx, domain.MessageID(42), "1").Return(nil)
		messages.EXPECT().GetMessageFields(ctx, domain.MessageID(42), domain.FieldRoomID).
			Return(domain.Message{ID: 42, RoomID: 8}, nil)
		editor.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.EditMessage(ctx, cmd)
		req.ErrorIs(err, errors.ErrInvalidMessage)
	})
}

func TestChatService_Authorize_Delete(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	authorizer := mocks.NewMockIAuthorizer(ctrl)
	svc := NewChatService(authorizer, mocks.NewMockMessageStore(ctrl), mocks.NewMockIEditService(ctrl))

	authorizer.EXPECT().Authorize(gomock.Any(), domain.MessageID(42), "1", domain.OperationDelete).
		Return(&errors.ForbiddenError{Operation: "delete"})

	err := svc.Authorize(context.Background(), 42, "1", domain.OperationDelete)
	req.ErrorIs(err, errors.ErrForbidden)
}

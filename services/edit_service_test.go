package services

import (
	"chat-edit/domain"
	"chat-edit/domain/event"
	"chat-edit/errors"
	"chat-edit/hooks"
	"chat-edit/mocks"
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type editMocks struct {
	policy   *mocks.MockContentPolicy
	messages *mocks.MockMessageStore
	rooms    *mocks.MockRoomMembership
	renderer *mocks.MockMessageRenderer
	notifier *mocks.MockNotifier
}

var editedAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newEditService(t *testing.T, filter *hooks.Chain) (*EditService, editMocks) {
	ctrl := gomock.NewController(t)
	m := editMocks{
		policy:   mocks.NewMockContentPolicy(ctrl),
		messages: mocks.NewMockMessageStore(ctrl),
		rooms:    mocks.NewMockRoomMembership(ctrl),
		renderer: mocks.NewMockMessageRenderer(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	if filter == nil {
		filter = hooks.NewChain(slog.Default(), hooks.FilterMessagingEdit)
	}
	svc := NewEditService(slog.Default(), m.policy, m.messages, filter, m.rooms, m.renderer, m.notifier).
		WithClock(func() time.Time { return editedAt })
	return svc, m
}

func TestEditService_Broadcasts_To_Every_Room_Member(t *testing.T) {
	req := require.New(t)
	svc, m := newEditService(t, nil)
	ctx := context.Background()
	rendered := []domain.RenderedMessage{{MessageID: 42, RoomID: 7, Content: "new", FromUID: "u1"}}
	expected := event.MessageEdited{Room: 7, Messages: rendered}

	m.policy.EXPECT().CheckContent(ctx, "new").Return(nil)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).Return("old", nil)
	write := m.messages.EXPECT().
		SetMessageFields(ctx, domain.MessageID(42), domain.EditPayload{Content: "new", EditedAt: editedAt}).
		Return(nil)
	// Reads happen only once the write is done
	m.rooms.EXPECT().GetUIDsInRoom(gomock.Any(), domain.RoomID(7), 0, -1).
		Return([]string{"u1", "u2", "u3"}, nil).After(write)
	m.renderer.EXPECT().GetMessagesData(gomock.Any(), []domain.MessageID{42}, "u1", domain.RoomID(7), true).
		Return(rendered, nil).After(write)
	for _, uid := range []string{"u1", "u2", "u3"} {
		m.notifier.EXPECT().Deliver(ctx, uid, event.EventChatsEdit, expected).Times(1)
	}

	err := svc.EditMessage(ctx, "u1", 42, 7, "new")
	req.NoError(err)
}

func TestEditService_Same_Content_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	svc, m := newEditService(t, nil)
	ctx := context.Background()

	m.policy.EXPECT().CheckContent(ctx, "same").Return(nil)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).Return("same", nil)
	m.messages.EXPECT().SetMessageFields(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req.NoError(svc.EditMessage(ctx, "u1", 42, 7, "same"))
}

func TestEditService_Repeated_Edit_Writes_Once(t *testing.T) {
	req := require.New(t)
	svc, m := newEditService(t, nil)
	ctx := context.Background()
	stored := "old"
	writes := 0
	broadcasts := 0

	m.policy.EXPECT().CheckContent(ctx, "new").Return(nil).Times(2)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).
		DoAndReturn(func(context.Context, domain.MessageID, string) (string, error) { return stored, nil }).Times(2)
	m.messages.EXPECT().SetMessageFields(ctx, domain.MessageID(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.MessageID, p domain.EditPayload) error {
			stored = p.Content
			writes++
			return nil
		})
	m.rooms.EXPECT().GetUIDsInRoom(gomock.Any(), domain.RoomID(7), 0, -1).Return([]string{"u1"}, nil)
	m.renderer.EXPECT().GetMessagesData(gomock.Any(), gomock.Any(), "u1", domain.RoomID(7), true).Return(nil, nil)
	m.notifier.EXPECT().Deliver(ctx, "u1", event.EventChatsEdit, gomock.Any()).
		Do(func(context.Context, string, string, any) { broadcasts++ })

	req.NoError(svc.EditMessage(ctx, "u1", 42, 7, "new"))
	req.NoError(svc.EditMessage(ctx, "u1", 42, 7, "new"))

	req.Equal(1, writes)
	req.Equal(1, broadcasts)
}

func TestEditService_Hook_Output_Is_Persisted(t *testing.T) {
	req := require.New(t)
	filter := hooks.NewChain(slog.Default(), hooks.FilterMessagingEdit).
		Register("shout", func(_ context.Context, p domain.EditPayload) (domain.EditPayload, error) {
			p.Content = strings.ToUpper(p.Content)
			return p, nil
		})
	svc, m := newEditService(t, filter)
	ctx := context.Background()

	m.policy.EXPECT().CheckContent(ctx, "new").Return(nil)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).Return("old", nil)
	m.messages.EXPECT().SetMessageFields(ctx, domain.MessageID(42), domain.EditPayload{Content: "NEW", EditedAt: editedAt}).Return(nil)
	m.rooms.EXPECT().GetUIDsInRoom(gomock.Any(), domain.RoomID(7), 0, -1).Return(nil, nil)
	m.renderer.EXPECT().GetMessagesData(gomock.Any(), gomock.Any(), "u1", domain.RoomID(7), true).Return(nil, nil)

	req.NoError(svc.EditMessage(ctx, "u1", 42, 7, "new"))
}

func TestEditService_Hook_Producing_Blank_Content_Is_Rejected(t *testing.T) {
	req := require.New(t)
	filter := hooks.NewChain(slog.Default(), hooks.FilterMessagingEdit).
		Register("blank", func(_ context.Context, p domain.EditPayload) (domain.EditPayload, error) {
			p.Content = " \n\t "
			return p, nil
		})
	svc, m := newEditService(t, filter)
	ctx := context.Background()

	m.policy.EXPECT().CheckContent(ctx, "new").Return(nil)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).Return("old", nil)
	m.messages.EXPECT().SetMessageFields(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.EditMessage(ctx, "u1", 42, 7, "new")
	req.ErrorIs(err, errors.ErrInvalidChatMessage)
}

func TestEditService_Rejected_Content_Stops_Early(t *testing.T) {
	req := require.New(t)
	svc, m := newEditService(t, nil)
	ctx := context.Background()

	m.policy.EXPECT().CheckContent(ctx, "").Return(errors.ErrInvalidContent)
	m.messages.EXPECT().GetMessageField(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.EditMessage(ctx, "u1", 42, 7, "")
	req.ErrorIs(err, errors.ErrInvalidContent)
}

func TestEditService_Storage_Failure_Propagates(t *testing.T) {
	req := require.New(t)
	svc, m := newEditService(t, nil)
	ctx := context.Background()
	diskErr := stderrors.New("disk full")

	m.policy.EXPECT().CheckContent(ctx, "new").Return(nil)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).Return("old", nil)
	m.messages.EXPECT().SetMessageFields(ctx, domain.MessageID(42), gomock.Any()).Return(diskErr)
	m.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.EditMessage(ctx, "u1", 42, 7, "new")
	req.ErrorIs(err, diskErr)
}

func TestEditService_Failed_Read_Skips_Broadcast(t *testing.T) {
	req := require.New(t)
	svc, m := newEditService(t, nil)
	ctx := context.Background()
	readErr := stderrors.New("room unavailable")

	m.policy.EXPECT().CheckContent(ctx, "new").Return(nil)
	m.messages.EXPECT().GetMessageField(ctx, domain.MessageID(42), domain.FieldContent).Return("old", nil)
	m.messages.EXPECT().SetMessageFields(ctx, domain.MessageID(42), gomock.Any()).Return(nil)
	m.rooms.EXPECT().GetUIDsInRoom(gomock.Any(), domain.RoomID(7), 0, -1).Return(nil, readErr)
	m.renderer.EXPECT().GetMessagesData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()
	m.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.EditMessage(ctx, "u1", 42, 7, "new")
	req.ErrorIs(err, readErr)
}

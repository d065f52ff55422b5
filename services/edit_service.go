//go:generate go run go.uber.org/mock/mockgen -source=edit_service.go -destination=../mocks/mock_edit_service.go -package=mocks
package services

import (
	"chat-edit/contract"
	"chat-edit/domain"
	"chat-edit/domain/event"
	"chat-edit/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type IEditService interface {
	EditMessage(ctx context.Context, uid string, mid domain.MessageID, roomID domain.RoomID, content string) error
}

// EditService applies an edit and propagates it to the live members of the room.
// It assumes the caller already authorized the edit.
type EditService struct {
	log      *slog.Logger
	policy   contract.ContentPolicy
	messages contract.MessageStore
	filter   contract.EditFilter
	rooms    contract.RoomMembership
	renderer contract.MessageRenderer
	notifier contract.Notifier
	now      func() time.Time
}

func NewEditService(log *slog.Logger, policy contract.ContentPolicy, messages contract.MessageStore,
	filter contract.EditFilter, rooms contract.RoomMembership, renderer contract.MessageRenderer,
	notifier contract.Notifier) *EditService {
	return &EditService{
		log:      log,
		policy:   policy,
		messages: messages,
		filter:   filter,
		rooms:    rooms,
		renderer: renderer,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *EditService) WithClock(now func() time.Time) *EditService {
	s.now = now
	return s
}

// EditMessage replaces the content of mid and pushes chats.edit to every member of roomID.
// Submitting the stored content again is a no-op: nothing is written or broadcast.
// The write always happens before the member and rendering reads, so a broadcast
// never announces content that is not persisted yet.
func (s *EditService) EditMessage(ctx context.Context, uid string, mid domain.MessageID, roomID domain.RoomID, content string) error {
	if err := s.policy.CheckContent(ctx, content); err != nil {
		return err
	}

	raw, err := s.messages.GetMessageField(ctx, mid, domain.FieldContent)
	if err != nil {
		return fmt.Errorf("get content: %w", err)
	}
	if raw == content {
		s.log.Debug("Edit without change, skipping", "mid", mid)
		return nil
	}

	payload, err := s.filter.Fire(ctx, domain.EditPayload{Content: content, EditedAt: s.now()})
	if err != nil {
		return err
	}
	if strings.TrimSpace(payload.Content) == "" {
		return errors.ErrInvalidChatMessage
	}

	if err = s.messages.SetMessageFields(ctx, mid, payload); err != nil {
		return fmt.Errorf("set message fields: %w", err)
	}

	var (
		uids     []string
		messages []domain.RenderedMessage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		uids, err = s.rooms.GetUIDsInRoom(gctx, roomID, 0, -1)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = s.renderer.GetMessagesData(gctx, []domain.MessageID{mid}, uid, roomID, true)
		return err
	})
	if err = g.Wait(); err != nil {
		return fmt.Errorf("prepare broadcast: %w", err)
	}

	evt := event.MessageEdited{Room: roomID, Messages: messages}
	for _, member := range uids {
		s.notifier.Deliver(ctx, member, event.EventChatsEdit, evt)
	}
	s.log.Debug("Message edited", "mid", mid, "room", roomID, "recipients", len(uids))
	return nil
}

package storage

import (
	"chat-edit/domain"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var allMessageFields = []string{
	domain.FieldRoomID, domain.FieldFromUID, domain.FieldTimestamp,
	domain.FieldSystem, domain.FieldContent, domain.FieldEdited,
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
	seq *badger.Sequence
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) (*MessageRepository, error) {
	seq, err := db.GetSequence([]byte("global:nextMid"), 100)
	if err != nil {
		return nil, fmt.Errorf("message sequence: %w", err)
	}
	return &MessageRepository{db: db, log: log, seq: seq}, nil
}

// Close releases the leased message ids.
func (m *MessageRepository) Close() error {
	return m.seq.Release()
}

// CreateMessage stores a new message and returns its id. Ids start at 1.
func (m *MessageRepository) CreateMessage(ctx context.Context, roomID domain.RoomID, fromUID, content string,
	system bool, at time.Time) (domain.MessageID, error) {
	next, err := m.seq.Next()
	if err != nil {
		return 0, err
	}
	mid := domain.MessageID(next + 1)
	fields := map[string]string{
		domain.FieldRoomID:    strconv.FormatInt(int64(roomID), 10),
		domain.FieldFromUID:   fromUID,
		domain.FieldTimestamp: strconv.FormatInt(at.UnixMilli(), 10),
		domain.FieldSystem:    formatBool(system),
		domain.FieldContent:   content,
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		for field, value := range fields {
			if err := txn.Set(messageKey(mid, field), []byte(value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	m.log.Debug("Message stored", "mid", mid, "room", roomID)
	return mid, nil
}

// MessageExists relies on the timestamp field, written once at creation.
func (m *MessageRepository) MessageExists(ctx context.Context, mid domain.MessageID) (bool, error) {
	var found bool
	err := m.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, messageKey(mid, domain.FieldTimestamp))
		return err
	})
	return found, err
}

// GetMessageField returns "" when the field is not set.
func (m *MessageRepository) GetMessageField(ctx context.Context, mid domain.MessageID, field string) (string, error) {
	var value string
	err := m.db.View(func(txn *badger.Txn) error {
		var err error
		value, _, err = getString(txn, messageKey(mid, field))
		return err
	})
	return value, err
}

// GetMessageFields loads the given fields, or every field when none is given.
func (m *MessageRepository) GetMessageFields(ctx context.Context, mid domain.MessageID, fields ...string) (domain.Message, error) {
	if len(fields) == 0 {
		fields = allMessageFields
	}
	message := domain.Message{ID: mid}
	err := m.db.View(func(txn *badger.Txn) error {
		for _, field := range fields {
			value, ok, err := getString(txn, messageKey(mid, field))
			if err != nil {
				return err
			}
			if ok {
				setMessageField(&message, field, value)
			}
		}
		return nil
	})
	return message, err
}

// SetMessageFields writes content and edit time in a single transaction.
func (m *MessageRepository) SetMessageFields(ctx context.Context, mid domain.MessageID, payload domain.EditPayload) error {
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(mid, domain.FieldContent), []byte(payload.Content)); err != nil {
			return err
		}
		edited := strconv.FormatInt(payload.EditedAt.UnixMilli(), 10)
		return txn.Set(messageKey(mid, domain.FieldEdited), []byte(edited))
	})
}

func setMessageField(message *domain.Message, field, value string) {
	switch field {
	case domain.FieldRoomID:
		id, _ := strconv.ParseInt(value, 10, 64)
		message.RoomID = domain.RoomID(id)
	case domain.FieldFromUID:
		message.FromUID = value
	case domain.FieldTimestamp:
		message.Timestamp = fromMillis(value)
	case domain.FieldSystem:
		message.System = parseBool(value)
	case domain.FieldContent:
		message.Content = value
	case domain.FieldEdited:
		message.EditedAt = fromMillis(value)
	}
}

func fromMillis(value string) time.Time {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

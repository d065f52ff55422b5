// Package domain contains core concepts of the chat system.
// This file defines chat messages and the mutable part of a message.
// fromuid, timestamp and system never change once a message exists.
package domain

import (
	"fmt"
	"time"
)

type MessageID int64

// Persisted field names of a message record.
const (
	FieldContent   = "content"
	FieldEdited    = "edited"
	FieldFromUID   = "fromuid"
	FieldTimestamp = "timestamp"
	FieldSystem    = "system"
	FieldRoomID    = "roomId"
)

// Message is the subset of a stored chat message read by the core.
type Message struct {
	ID        MessageID
	RoomID    RoomID
	FromUID   string
	Timestamp time.Time
	System    bool
	Content   string
	EditedAt  time.Time // zero until the first accepted edit
}

func (m Message) Edited() bool {
	return !m.EditedAt.IsZero()
}

// EditPayload is what an accepted edit writes. It flows through the edit
// filter chain before being persisted.
type EditPayload struct {
	Content  string
	EditedAt time.Time
}

type Operation string

const (
	OperationEdit   Operation = "edit"
	OperationDelete Operation = "delete"
)

func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OperationEdit, OperationDelete:
		return Operation(s), nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// RenderedMessage is the client-ready representation of a message as seen by a viewer.
type RenderedMessage struct {
	MessageID    MessageID `json:"messageId"`
	RoomID       RoomID    `json:"roomId"`
	FromUID      string    `json:"fromuid"`
	FromUser     string    `json:"fromUser"`
	Content      string    `json:"content"`
	Timestamp    int64     `json:"timestamp"`
	TimestampISO string    `json:"timestampISO"`
	Edited       int64     `json:"edited,omitempty"`
	EditedISO    string    `json:"editedISO,omitempty"`
	System       bool      `json:"system"`
	Self         bool      `json:"self"`
	NewSet       bool      `json:"newSet"`
}

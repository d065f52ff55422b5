// Package errors holds the domain errors surfaced to callers of the chat core.
// Each denial has its own sentinel so the boundary can render a precise reason.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChatMessage = errors.New("invalid chat message")
	ErrInvalidMessage     = errors.New("invalid message id")
	ErrInvalidContent     = errors.New("invalid content")
	ErrMessageTooLong     = errors.New("chat message too long")
	ErrChatDisabled       = errors.New("chat is disabled")
	ErrEditingDisabled    = errors.New("chat message editing is disabled")
	ErrUserBanned         = errors.New("user is banned")
	ErrNoPrivilege        = errors.New("no privileges")
	ErrDurationExpired    = errors.New("chat duration expired")
	ErrForbidden          = errors.New("cannot mutate chat message")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// DurationExpiredError is returned when the edit or delete window has lapsed.
type DurationExpiredError struct {
	Operation string
	Seconds   int
}

func (e *DurationExpiredError) Error() string {
	return fmt.Sprintf("chat %s duration expired (%ds)", e.Operation, e.Seconds)
}

func (e *DurationExpiredError) Is(target error) bool {
	return target == ErrDurationExpired
}

// ForbiddenError is the catch-all denial: not owner, not moderator.
type ForbiddenError struct {
	Operation string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("cannot %s chat message", e.Operation)
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

type MessageTooLongError struct {
	Max int
}

func (e *MessageTooLongError) Error() string {
	return fmt.Sprintf("chat message too long (max %d)", e.Max)
}

func (e *MessageTooLongError) Is(target error) bool {
	return target == ErrMessageTooLong || target == ErrInvalidContent
}

// Key returns the translation key shown to the end user for a domain error.
// Unknown errors map to the generic key.
func Key(err error) string {
	var expired *DurationExpiredError
	if errors.As(err, &expired) {
		return fmt.Sprintf("[[error:chat-%s-duration-expired, %d]]", expired.Operation, expired.Seconds)
	}
	var forbidden *ForbiddenError
	if errors.As(err, &forbidden) {
		return fmt.Sprintf("[[error:cant-%s-chat-message]]", forbidden.Operation)
	}
	var tooLong *MessageTooLongError
	if errors.As(err, &tooLong) {
		return fmt.Sprintf("[[error:chat-message-too-long, %d]]", tooLong.Max)
	}
	switch {
	case errors.Is(err, ErrInvalidChatMessage):
		return "[[error:invalid-chat-message]]"
	case errors.Is(err, ErrInvalidMessage):
		return "[[error:invalid-mid]]"
	case errors.Is(err, ErrChatDisabled):
		return "[[error:chat-disabled]]"
	case errors.Is(err, ErrEditingDisabled):
		return "[[error:chat-message-editing-disabled]]"
	case errors.Is(err, ErrUserBanned):
		return "[[error:user-banned]]"
	case errors.Is(err, ErrNoPrivilege):
		return "[[error:no-privileges]]"
	case errors.Is(err, ErrInvalidContent):
		return "[[error:invalid-data]]"
	case errors.Is(err, ErrUnauthenticated):
		return "[[error:not-logged-in]]"
	default:
		return "[[error:unknown]]"
	}
}

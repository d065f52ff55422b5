//go:generate go run go.uber.org/mock/mockgen -source=authorizer.go -destination=../mocks/mock_authorizer.go -package=mocks

// Package authorization decides whether an actor may edit or delete a chat message.
// It never mutates anything.
package authorization

import (
	"chat-edit/contract"
	"chat-edit/domain"
	"chat-edit/errors"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

type IAuthorizer interface {
	Authorize(ctx context.Context, mid domain.MessageID, uid string, op domain.Operation) error
	CanEdit(ctx context.Context, mid domain.MessageID, uid string) error
	CanDelete(ctx context.Context, mid domain.MessageID, uid string) error
}

type Authorizer struct {
	log        *slog.Logger
	messages   contract.MessageStore
	users      contract.UserDirectory
	privileges contract.PrivilegeChecker
	settings   contract.SettingsProvider
	now        func() time.Time
}

func NewAuthorizer(log *slog.Logger, messages contract.MessageStore, users contract.UserDirectory,
	privileges contract.PrivilegeChecker, settings contract.SettingsProvider) *Authorizer {
	return &Authorizer{
		log:        log,
		messages:   messages,
		users:      users,
		privileges: privileges,
		settings:   settings,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for the edit/delete window.
func (a *Authorizer) WithClock(now func() time.Time) *Authorizer {
	a.now = now
	return a
}

func (a *Authorizer) CanEdit(ctx context.Context, mid domain.MessageID, uid string) error {
	return a.Authorize(ctx, mid, uid, domain.OperationEdit)
}

func (a *Authorizer) CanDelete(ctx context.Context, mid domain.MessageID, uid string) error {
	return a.Authorize(ctx, mid, uid, domain.OperationDelete)
}

// Authorize returns nil when uid may apply op to the message.
// The checks run in a fixed order and the first failing one decides the error:
//  1. the message exists
//  2. chat is not globally disabled (moderators included)
//  3. editing is not disabled, unless the actor is a moderator
//  4. the actor is not banned
//  5. the actor holds the global chat privilege
//  6. moderators pass for any non-system message
//  7. the message is still inside the configured window
//  8. the actor owns the message and it is not a system message
//
// Anything else is forbidden.
func (a *Authorizer) Authorize(ctx context.Context, mid domain.MessageID, uid string, op domain.Operation) error {
	exists, err := a.messages.MessageExists(ctx, mid)
	if err != nil {
		return fmt.Errorf("message exists: %w", err)
	}
	if !exists {
		return errors.ErrInvalidMessage
	}

	settings, err := a.settings.Settings(ctx)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	isModerator, err := a.users.IsAdminOrGlobalMod(ctx, uid)
	if err != nil {
		return fmt.Errorf("moderator lookup: %w", err)
	}

	if settings.DisableChat {
		return errors.ErrChatDisabled
	}
	if op == domain.OperationEdit && !isModerator && settings.DisableChatMessageEditing {
		return errors.ErrEditingDisabled
	}

	actor, err := a.users.GetUserFields(ctx, uid, domain.UserFieldBanned)
	if err != nil {
		return fmt.Errorf("user fields: %w", err)
	}
	if actor.Banned {
		return errors.ErrUserBanned
	}

	canChat, err := a.privileges.Can(ctx, domain.PrivilegeChat, uid)
	if err != nil {
		return fmt.Errorf("privilege lookup: %w", err)
	}
	if !canChat {
		return errors.ErrNoPrivilege
	}

	message, err := a.messages.GetMessageFields(ctx, mid,
		domain.FieldFromUID, domain.FieldTimestamp, domain.FieldSystem)
	if err != nil {
		return fmt.Errorf("message fields: %w", err)
	}

	// System messages never take the moderator shortcut.
	if isModerator && !message.System {
		a.log.Debug("Moderator bypass", "mid", mid, "uid", uid, "operation", op)
		return nil
	}

	if settings.Expired(op, message.Timestamp, a.now()) {
		return &errors.DurationExpiredError{Operation: string(op), Seconds: settings.DurationFor(op)}
	}

	if sameUID(message.FromUID, uid) && !message.System {
		return nil
	}

	a.log.Debug("Chat message mutation denied", "mid", mid, "uid", uid, "operation", op)
	return &errors.ForbiddenError{Operation: string(op)}
}

// sameUID compares uids numerically when both parse, so "07" and "7" match.
func sameUID(fromUID, uid string) bool {
	if fromUID == "" {
		return false
	}
	a, errA := strconv.ParseInt(fromUID, 10, 64)
	b, errB := strconv.ParseInt(uid, 10, 64)
	if errA == nil && errB == nil {
		return a == b
	}
	return fromUID == uid
}

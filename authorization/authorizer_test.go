package authorization

import (
	"chat-edit/domain"
	"chat-edit/errors"
	"chat-edit/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerUID     = "1"
	strangerUID  = "2"
	moderatorUID = "3"
)

// fixture describes the world seen by the authorizer for a single call.
type fixture struct {
	exists     bool
	settings   domain.Settings
	moderators []string
	banned     bool
	canChat    bool
	message    domain.Message
	messageAge time.Duration
	now        time.Time
}

func defaultFixture() fixture {
	return fixture{
		exists:     true,
		settings:   domain.Settings{ChatEditDuration: 300},
		moderators: []string{moderatorUID},
		canChat:    true,
		message:    domain.Message{ID: 42, FromUID: ownerUID},
		messageAge: time.Minute,
		now:        time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func (f fixture) build(t *testing.T) *Authorizer {
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockMessageStore(ctrl)
	users := mocks.NewMockUserDirectory(ctrl)
	privileges := mocks.NewMockPrivilegeChecker(ctrl)
	settings := mocks.NewMockSettingsProvider(ctrl)

	message := f.message
	message.Timestamp = f.now.Add(-f.messageAge)

	messages.EXPECT().MessageExists(gomock.Any(), message.ID).Return(f.exists, nil).AnyTimes()
	messages.EXPECT().GetMessageFields(gomock.Any(), message.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(message, nil).AnyTimes()
	settings.EXPECT().Settings(gomock.Any()).Return(f.settings, nil).AnyTimes()
	users.EXPECT().IsAdminOrGlobalMod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, uid string) (bool, error) {
			for _, m := range f.moderators {
				if m == uid {
					return true, nil
				}
			}
			return false, nil
		}).AnyTimes()
	users.EXPECT().GetUserFields(gomock.Any(), gomock.Any(), domain.UserFieldBanned).
		DoAndReturn(func(_ context.Context, uid string, _ ...string) (domain.Actor, error) {
			return domain.Actor{UID: uid, Banned: f.banned}, nil
		}).AnyTimes()
	privileges.EXPECT().Can(gomock.Any(), domain.PrivilegeChat, gomock.Any()).Return(f.canChat, nil).AnyTimes()

	return NewAuthorizer(slog.Default(), messages, users, privileges, settings).
		WithClock(func() time.Time { return f.now })
}

func TestAuthorizer_Owner_Within_Window_Is_Allowed(t *testing.T) {
	req := require.New(t)
	authorizer := defaultFixture().build(t)

	req.NoError(authorizer.CanEdit(context.Background(), 42, ownerUID))
	req.NoError(authorizer.CanDelete(context.Background(), 42, ownerUID))
}

func TestAuthorizer_Unknown_Message(t *testing.T) {
	req := require.New(t)
	f := defaultFixture()
	f.exists = false

	err := f.build(t).CanEdit(context.Background(), 42, ownerUID)
	req.ErrorIs(err, errors.ErrInvalidMessage)
}

func TestAuthorizer_Chat_Disabled_Denies_Everyone(t *testing.T) {
	f := defaultFixture()
	f.settings.DisableChat = true
	authorizer := f.build(t)

	for _, uid := range []string{ownerUID, strangerUID, moderatorUID} {
		for _, op := range []domain.Operation{domain.OperationEdit, domain.OperationDelete} {
			err := authorizer.Authorize(context.Background(), 42, uid, op)
			require.ErrorIs(t, err, errors.ErrChatDisabled, "uid %s op %s", uid, op)
		}
	}
}

func TestAuthorizer_Editing_Disabled(t *testing.T) {
	req := require.New(t)
	f := defaultFixture()
	f.settings.DisableChatMessageEditing = true
	authorizer := f.build(t)

	// Given editing is disabled
	// When the owner edits, then it is rejected
	req.ErrorIs(authorizer.CanEdit(context.Background(), 42, ownerUID), errors.ErrEditingDisabled)
	// And deleting is not affected
	req.NoError(authorizer.CanDelete(context.Background(), 42, ownerUID))
	// And moderators still edit
	req.NoError(authorizer.CanEdit(context.Background(), 42, moderatorUID))
}

func TestAuthorizer_Banned_Actor_Is_Denied(t *testing.T) {
	f := defaultFixture()
	f.banned = true
	f.messageAge = time.Hour
	authorizer := f.build(t)

	for _, uid := range []string{ownerUID, moderatorUID, strangerUID} {
		err := authorizer.CanEdit(context.Background(), 42, uid)
		require.ErrorIs(t, err, errors.ErrUserBanned, "uid %s", uid)
	}
}

func TestAuthorizer_Missing_Chat_Privilege(t *testing.T) {
	req := require.New(t)
	f := defaultFixture()
	f.canChat = false

	err := f.build(t).CanEdit(context.Background(), 42, ownerUID)
	req.ErrorIs(err, errors.ErrNoPrivilege)
}

func TestAuthorizer_Moderator_Bypasses_Ownership_And_Window(t *testing.T) {
	req := require.New(t)
	f := defaultFixture()
	f.messageAge = 24 * time.Hour

	err := f.build(t).CanEdit(context.Background(), 42, moderatorUID)
	req.NoError(err)
}

func TestAuthorizer_Edit_Window(t *testing.T) {
	tests := []struct {
		name    string
		age     time.Duration
		wantErr bool
	}{
		{"299 seconds old", 299 * time.Second, false},
		{"exactly 300 seconds old", 300 * time.Second, false},
		{"301 seconds old", 301 * time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := defaultFixture()
			f.messageAge = tt.age

			err := f.build(t).CanEdit(context.Background(), 42, ownerUID)
			if !tt.wantErr {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, errors.ErrDurationExpired)
			var expired *errors.DurationExpiredError
			req.ErrorAs(err, &expired)
			req.Equal("edit", expired.Operation)
			req.Equal(300, expired.Seconds)
		})
	}
}

func TestAuthorizer_Delete_Window_Uses_Delete_Duration(t *testing.T) {
	req := require.New(t)
	f := defaultFixture()
	f.settings = domain.Settings{ChatEditDuration: 0, ChatDeleteDuration: 60}
	f.messageAge = 2 * time.Minute
	authorizer := f.build(t)

	req.NoError(authorizer.CanEdit(context.Background(), 42, ownerUID))
	err := authorizer.CanDelete(context.Background(), 42, ownerUID)
	var expired *errors.DurationExpiredError
	req.ErrorAs(err, &expired)
	req.Equal(expired.Operation, "delete")
	req.Equal(60, expired.Seconds)
}

func TestAuthorizer_Stranger_Is_Forbidden(t *testing.T) {
	req := require.New(t)
	err := defaultFixture().build(t).CanDelete(context.Background(), 42, strangerUID)

	req.ErrorIs(err, errors.ErrForbidden)
	req.Equal("[[error:cant-delete-chat-message]]", errors.Key(err))
}

func TestAuthorizer_System_Message(t *testing.T) {
	f := defaultFixture()
	f.message.System = true
	authorizer := f.build(t)

	t.Run("owner cannot mutate a system message", func(t *testing.T) {
		err := authorizer.CanEdit(context.Background(), 42, ownerUID)
		require.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("moderator does not take the shortcut on a system message", func(t *testing.T) {
		err := authorizer.CanEdit(context.Background(), 42, moderatorUID)
		require.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("moderator past the window reports the window", func(t *testing.T) {
		expired := f
		expired.messageAge = time.Hour
		err := expired.build(t).CanEdit(context.Background(), 42, moderatorUID)
		require.ErrorIs(t, err, errors.ErrDurationExpired)
	})
}

func TestSameUID(t *testing.T) {
	req := require.New(t)
	req.True(sameUID("7", "07"))
	req.True(sameUID("alice", "alice"))
	req.False(sameUID("", ""))
	req.False(sameUID("7", "8"))
}

package policy

import (
	"chat-edit/domain"
	"chat-edit/errors"
	"chat-edit/mocks"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContentPolicy_CheckContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Settings(gomock.Any()).
		Return(domain.Settings{MaximumChatMessageLength: 10}, nil).AnyTimes()
	policy := NewContentPolicy(settings)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"valid content", "hello", nil},
		{"exactly the limit", strings.Repeat("a", 10), nil},
		{"limit counts runes", strings.Repeat("é", 10), nil},
		{"empty content", "", errors.ErrInvalidChatMessage},
		{"whitespace only", " \t\n ", errors.ErrInvalidChatMessage},
		{"surrounding spaces are not counted", "  " + strings.Repeat("a", 10) + "  ", nil},
		{"too long", strings.Repeat("a", 11), errors.ErrMessageTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := policy.CheckContent(context.Background(), tt.content)
			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.wantErr)
			req.ErrorIs(err, errors.ErrInvalidContent)
		})
	}
}

func TestContentPolicy_Unlimited_Length(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Settings(gomock.Any()).Return(domain.Settings{}, nil)

	err := NewContentPolicy(settings).CheckContent(context.Background(), strings.Repeat("a", 5000))
	req.NoError(err)
}

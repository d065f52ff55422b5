package hooks

import (
	"chat-edit/domain"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChain_Without_Transformer_Returns_Payload(t *testing.T) {
	req := require.New(t)
	chain := NewChain(slog.Default(), FilterMessagingEdit)
	payload := domain.EditPayload{Content: "hello", EditedAt: time.Now()}

	out, err := chain.Fire(context.Background(), payload)

	req.NoError(err)
	req.Equal(payload, out)
}

func TestChain_Composes_In_Registration_Order(t *testing.T) {
	req := require.New(t)
	chain := NewChain(slog.Default(), FilterMessagingEdit).
		Register("upper", func(_ context.Context, p domain.EditPayload) (domain.EditPayload, error) {
			p.Content = strings.ToUpper(p.Content)
			return p, nil
		}).
		Register("suffix", func(_ context.Context, p domain.EditPayload) (domain.EditPayload, error) {
			p.Content += " (edited)"
			return p, nil
		})

	out, err := chain.Fire(context.Background(), domain.EditPayload{Content: "hello"})

	req.NoError(err)
	req.Equal("HELLO (edited)", out.Content)
}

func TestChain_Stops_On_Error(t *testing.T) {
	req := require.New(t)
	boom := errors.New("boom")
	called := false
	chain := NewChain(slog.Default(), FilterMessagingEdit).
		Register("failing", func(_ context.Context, p domain.EditPayload) (domain.EditPayload, error) {
			return p, boom
		}).
		Register("never", func(_ context.Context, p domain.EditPayload) (domain.EditPayload, error) {
			called = true
			return p, nil
		})

	_, err := chain.Fire(context.Background(), domain.EditPayload{Content: "hello"})

	req.ErrorIs(err, boom)
	req.False(called)
}

// Package policy validates chat content before it reaches storage.
package policy

import (
	"chat-edit/contract"
	"chat-edit/errors"
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ContentPolicy rejects blank content and content longer than the
// configured maximum (in runes). Surrounding whitespace is ignored by both
// rules. The maximum is read on every call.
type ContentPolicy struct {
	settings contract.SettingsProvider
}

func NewContentPolicy(settings contract.SettingsProvider) *ContentPolicy {
	return &ContentPolicy{settings: settings}
}

func (p *ContentPolicy) CheckContent(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if err := validate.Var(content, "required"); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidContent, errors.ErrInvalidChatMessage)
	}

	settings, err := p.settings.Settings(ctx)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	limit := settings.MaximumChatMessageLength
	if limit <= 0 {
		return nil
	}
	if err := validate.Var(content, fmt.Sprintf("max=%d", limit)); err != nil {
		return &errors.MessageTooLongError{Max: limit}
	}
	return nil
}

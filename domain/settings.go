package domain

import "time"

// Settings is a read-only snapshot of the process-wide chat configuration.
// Durations are in seconds, 0 meaning unlimited.
type Settings struct {
	DisableChat               bool
	DisableChatMessageEditing bool
	ChatEditDuration          int
	ChatDeleteDuration        int
	MaximumChatMessageLength  int
}

// DurationFor returns the configured window of an operation in seconds.
func (s Settings) DurationFor(op Operation) int {
	switch op {
	case OperationEdit:
		return s.ChatEditDuration
	case OperationDelete:
		return s.ChatDeleteDuration
	default:
		return 0
	}
}

// Expired reports whether a message created at timestamp is outside the window of op.
func (s Settings) Expired(op Operation, timestamp, now time.Time) bool {
	duration := s.DurationFor(op)
	return duration > 0 && now.Sub(timestamp) > time.Duration(duration)*time.Second
}

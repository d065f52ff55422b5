package internal

import (
	"chat-edit/domain"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	AllowedOrigins       string        `env:"CORS_ORIGINS,default=http://localhost:5173"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`

	// Defaults written to storage on first start only. Later changes live in storage.
	DisableChat               bool `env:"DISABLE_CHAT,default=false"`
	DisableChatMessageEditing bool `env:"DISABLE_CHAT_MESSAGE_EDITING,default=false"`
	ChatEditDuration          int  `env:"CHAT_EDIT_DURATION,default=0"`
	ChatDeleteDuration        int  `env:"CHAT_DELETE_DURATION,default=0"`
	MaxContentLength          int  `env:"MAX_CONTENT_LENGTH,default=1000"`
}

func (c Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		DisableChat:               c.DisableChat,
		DisableChatMessageEditing: c.DisableChatMessageEditing,
		ChatEditDuration:          c.ChatEditDuration,
		ChatDeleteDuration:        c.ChatDeleteDuration,
		MaximumChatMessageLength:  c.MaxContentLength,
	}
}

// Words splits the comma separated CENSORED_WORDS.
func (c Config) Words() []string {
	return splitList(c.CensoredWords)
}

func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

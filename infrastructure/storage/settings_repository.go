package storage

import (
	"chat-edit/domain"
	"context"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const (
	configDisableChat               = "disableChat"
	configDisableChatMessageEditing = "disableChatMessageEditing"
	configChatEditDuration          = "chatEditDuration"
	configChatDeleteDuration        = "chatDeleteDuration"
	configMaximumChatMessageLength  = "maximumChatMessageLength"
)

// SettingsRepository stores the chat settings. Every Settings call reads the
// current values, so changes made by other writers apply to the next request.
type SettingsRepository struct {
	db *badger.DB
}

func NewSettingsRepository(db *badger.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (s *SettingsRepository) Settings(ctx context.Context) (domain.Settings, error) {
	values := map[string]string{}
	err := s.db.View(func(txn *badger.Txn) error {
		for _, name := range settingNames() {
			value, _, err := getString(txn, configKey(name))
			if err != nil {
				return err
			}
			values[name] = value
		}
		return nil
	})
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{
		DisableChat:               parseBool(values[configDisableChat]),
		DisableChatMessageEditing: parseBool(values[configDisableChatMessageEditing]),
		ChatEditDuration:          parseInt(values[configChatEditDuration]),
		ChatDeleteDuration:        parseInt(values[configChatDeleteDuration]),
		MaximumChatMessageLength:  parseInt(values[configMaximumChatMessageLength]),
	}, nil
}

func (s *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for name, value := range encodeSettings(settings) {
			if err := txn.Set(configKey(name), []byte(value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedDefaults writes defaults only for settings that were never stored.
func (s *SettingsRepository) SeedDefaults(ctx context.Context, defaults domain.Settings) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for name, value := range encodeSettings(defaults) {
			ok, err := exists(txn, configKey(name))
			if err != nil {
				return err
			}
			if ok {
				continue
			}
			if err = txn.Set(configKey(name), []byte(value)); err != nil {
				return err
			}
		}
		return nil
	})
}

func settingNames() []string {
	return []string{
		configDisableChat, configDisableChatMessageEditing,
		configChatEditDuration, configChatDeleteDuration, configMaximumChatMessageLength,
	}
}

func encodeSettings(settings domain.Settings) map[string]string {
	return map[string]string{
		configDisableChat:               formatBool(settings.DisableChat),
		configDisableChatMessageEditing: formatBool(settings.DisableChatMessageEditing),
		configChatEditDuration:          strconv.Itoa(settings.ChatEditDuration),
		configChatDeleteDuration:        strconv.Itoa(settings.ChatDeleteDuration),
		configMaximumChatMessageLength:  strconv.Itoa(settings.MaximumChatMessageLength),
	}
}

package storage

import (
	"chat-edit/domain"
	"context"

	"github.com/dgraph-io/badger/v4"
)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (u *UserRepository) CreateUser(ctx context.Context, uid, username string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(userKey(uid, domain.UserFieldUsername), []byte(username)); err != nil {
			return err
		}
		return txn.Set(userKey(uid, domain.UserFieldBanned), []byte(formatBool(false)))
	})
}

func (u *UserRepository) SetBanned(ctx context.Context, uid string, banned bool) error {
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(uid, domain.UserFieldBanned), []byte(formatBool(banned)))
	})
}

func (u *UserRepository) AddToGroup(ctx context.Context, group, uid string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(groupMemberKey(group, uid), nil)
	})
}

func (u *UserRepository) RemoveFromGroup(ctx context.Context, group, uid string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(groupMemberKey(group, uid))
	})
}

func (u *UserRepository) IsAdminOrGlobalMod(ctx context.Context, uid string) (bool, error) {
	var member bool
	err := u.db.View(func(txn *badger.Txn) error {
		for _, group := range []string{domain.GroupAdministrators, domain.GroupGlobalModerators} {
			ok, err := exists(txn, groupMemberKey(group, uid))
			if err != nil {
				return err
			}
			if ok {
				member = true
				return nil
			}
		}
		return nil
	})
	return member, err
}

// GetUserFields loads the requested fields. Unknown users come back with zero values.
func (u *UserRepository) GetUserFields(ctx context.Context, uid string, fields ...string) (domain.Actor, error) {
	actor := domain.Actor{UID: uid}
	err := u.db.View(func(txn *badger.Txn) error {
		for _, field := range fields {
			value, _, err := getString(txn, userKey(uid, field))
			if err != nil {
				return err
			}
			switch field {
			case domain.UserFieldUsername:
				actor.Username = value
			case domain.UserFieldBanned:
				actor.Banned = parseBool(value)
			}
		}
		return nil
	})
	return actor, err
}

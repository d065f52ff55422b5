package storage

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// PrivilegeRepository holds global privileges granted to users directly or through groups.
type PrivilegeRepository struct {
	db *badger.DB
}

func NewPrivilegeRepository(db *badger.DB) *PrivilegeRepository {
	return &PrivilegeRepository{db: db}
}

func (p *PrivilegeRepository) Grant(ctx context.Context, capability, uid string) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userPrivilegeKey(capability, uid), nil)
	})
}

func (p *PrivilegeRepository) Revoke(ctx context.Context, capability, uid string) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(userPrivilegeKey(capability, uid))
	})
}

func (p *PrivilegeRepository) GrantGroup(ctx context.Context, capability, group string) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(groupPrivilegePrefix(capability)+group), nil)
	})
}

// Can reports whether uid holds capability, directly or through one of its groups.
func (p *PrivilegeRepository) Can(ctx context.Context, capability, uid string) (bool, error) {
	var allowed bool
	err := p.db.View(func(txn *badger.Txn) error {
		ok, err := exists(txn, userPrivilegeKey(capability, uid))
		if err != nil || ok {
			allowed = ok
			return err
		}

		prefixStr := groupPrivilegePrefix(capability)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			group := strings.TrimPrefix(string(it.Item().Key()), prefixStr)
			member, err := exists(txn, groupMemberKey(group, uid))
			if err != nil {
				return err
			}
			if member {
				allowed = true
				return nil
			}
		}
		return nil
	})
	return allowed, err
}

package storage

import (
	"chat-edit/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// RoomRepository keeps room members ordered by join time.
type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
	seq *badger.Sequence
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) (*RoomRepository, error) {
	seq, err := db.GetSequence([]byte("global:roomJoinSeq"), 1000)
	if err != nil {
		return nil, fmt.Errorf("room sequence: %w", err)
	}
	return &RoomRepository{db: db, log: log, seq: seq}, nil
}

func (r *RoomRepository) Close() error {
	return r.seq.Release()
}

// AddUsers appends uids to the room. Users already in the room keep their position.
func (r *RoomRepository) AddUsers(ctx context.Context, roomID domain.RoomID, uids ...string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, uid := range lo.Uniq(uids) {
			member, err := exists(txn, roomMemberKey(roomID, uid))
			if err != nil {
				return err
			}
			if member {
				continue
			}
			n, err := r.seq.Next()
			if err != nil {
				return err
			}
			// 19-digit padding keeps lexicographic order equal to join order
			joined := []byte(fmt.Sprintf("%s%019d:%s", roomJoinedPrefix(roomID), n, uid))
			if err = txn.Set(joined, []byte(uid)); err != nil {
				return err
			}
			if err = txn.Set(roomMemberKey(roomID, uid), joined); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RoomRepository) RemoveUser(ctx context.Context, roomID domain.RoomID, uid string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		joined, ok, err := getString(txn, roomMemberKey(roomID, uid))
		if err != nil || !ok {
			return err
		}
		if err = txn.Delete([]byte(joined)); err != nil {
			return err
		}
		return txn.Delete(roomMemberKey(roomID, uid))
	})
}

// GetUIDsInRoom returns the members between start and stop, both inclusive.
// Negative indexes count from the end, so 0, -1 returns everyone.
func (r *RoomRepository) GetUIDsInRoom(ctx context.Context, roomID domain.RoomID, start, stop int) ([]string, error) {
	var uids []string
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(roomJoinedPrefix(roomID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			uids = append(uids, string(value))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sliceRange(uids, start, stop), nil
}

func sliceRange(values []string, start, stop int) []string {
	n := len(values)
	if start < 0 {
		start = max(n+start, 0)
	}
	if stop < 0 {
		stop = n + stop
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return []string{}
	}
	return values[start : stop+1]
}

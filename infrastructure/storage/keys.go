package storage

import (
	"chat-edit/domain"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Records are stored as one key per field so that a single field can be read
// without decoding the whole record, and several fields can be written in one transaction.
//
//	message:{mid}:{field}
//	user:{uid}:{field}
//	group:{name}:member:{uid}
//	privilege:global:{capability}:user:{uid}
//	privilege:global:{capability}:group:{name}
//	room:{roomID}:joined:{seq}:{uid}  -> uid
//	room:{roomID}:member:{uid}        -> joined key
//	config:{name}

func messageKey(mid domain.MessageID, field string) []byte {
	return []byte(fmt.Sprintf("message:%d:%s", mid, field))
}

func userKey(uid, field string) []byte {
	return []byte(fmt.Sprintf("user:%s:%s", uid, field))
}

func groupMemberKey(group, uid string) []byte {
	return []byte(fmt.Sprintf("group:%s:member:%s", group, uid))
}

func userPrivilegeKey(capability, uid string) []byte {
	return []byte(fmt.Sprintf("privilege:global:%s:user:%s", capability, uid))
}

func groupPrivilegePrefix(capability string) string {
	return fmt.Sprintf("privilege:global:%s:group:", capability)
}

func roomJoinedPrefix(roomID domain.RoomID) string {
	return fmt.Sprintf("room:%d:joined:", roomID)
}

func roomMemberKey(roomID domain.RoomID, uid string) []byte {
	return []byte(fmt.Sprintf("room:%d:member:%s", roomID, uid))
}

func configKey(name string) []byte {
	return []byte("config:" + name)
}

// getString reads a key. A missing key is not an error.
func getString(txn *badger.Txn, key []byte) (string, bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

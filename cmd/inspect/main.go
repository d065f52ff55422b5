package main

import (
	"chat-edit/domain"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// inspect prints the raw records of a chat-edit database, one row per field.
//
//	go run ./cmd/inspect -db ./data -prefix message:42:
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "message:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Entity", "Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			// Sequences hold binary counters
			if strings.HasPrefix(string(item.Key()), "global:") {
				continue
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			table.Append(row(string(item.Key()), string(value)))
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// row splits "entity:id:field" keys and renders millisecond timestamps as time.
func row(key, value string) []string {
	parts := strings.Split(key, ":")
	entity, field := parts[0], ""
	if len(parts) >= 3 {
		entity = parts[0] + ":" + parts[1]
		field = strings.Join(parts[2:], ":")
	}
	if field == domain.FieldTimestamp || field == domain.FieldEdited {
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
			value = fmt.Sprintf("%s (%d)", time.UnixMilli(ms).Format(time.RFC3339), ms)
		}
	}
	return []string{key, entity, field, value}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"selection-lab/infrastructure/storage"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

const defaultPath = "./data/cache"

func main() {
	dbPath := flag.String("db", defaultPath, "Path to the classification cache")
	prefix := flag.String("prefix", storage.KeyPrefix, "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Text", "Label", "Adjust", "Action", "Intent", "Extras", "Expires"})
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
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				entry, err := storage.Decode(v)
				if err != nil {
					// Keep scanning, one corrupted entry should not hide the others
					fmt.Printf("Error decoding key %s: %v\n", key, err)
					return nil
				}

				result := entry.Result
				extras := make([]string, 0, len(result.Action.Extras))
				for k, v := range result.Action.Extras {
					extras = append(extras, k+"="+v)
				}

				expires := "never"
				if at := item.ExpiresAt(); at > 0 {
					expires = time.Unix(int64(at), 0).Format("15:04:05")
				}

				table.Append([]string{
					key,
					entry.Text,
					result.Label,
					fmt.Sprintf("%d,%d", result.StartAdjust, result.EndAdjust),
					shortID(result.Action.ID),
					result.Action.Intent,
					strings.Join(extras, " "),
					expires,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}

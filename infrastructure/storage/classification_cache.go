package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/infrastructure/wire"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const KeyPrefix = "classification:"

var _ contract.Classifier = (*CachedClassifier)(nil)

// CachedClassifier serves repeated selections from BadgerDB instead of asking
// the wrapped classifier again. Only successful results are cached.
// A broken cache never fails a classification, it is just bypassed.
type CachedClassifier struct {
	next contract.Classifier
	db   *badger.DB
	ttl  time.Duration
	log  *slog.Logger
}

func NewCachedClassifier(next contract.Classifier, db *badger.DB, ttl time.Duration, log *slog.Logger) *CachedClassifier {
	return &CachedClassifier{next: next, db: db, ttl: ttl, log: log}
}

// OpenDB opens the cache at path, or an in-memory cache when path is empty.
func OpenDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	return badger.Open(opts)
}

func (c *CachedClassifier) Classify(ctx context.Context, request selection.Request) (selection.Result, error) {
	key := Key(request)

	result, found, err := c.get(key, request.Text)
	if err != nil {
		c.log.Warn("Cache read failed, bypassing", "id", request.ID, "error", err)
	}
	if found {
		c.log.Debug("Cache hit", "id", request.ID)
		return result, nil
	}

	result, err = c.next.Classify(ctx, request)
	if err != nil {
		return selection.Result{}, err
	}

	if err := c.put(key, Entry{Text: request.Text, Result: result}); err != nil {
		c.log.Warn("Cache write failed", "id", request.ID, "error", err)
	}
	return result, nil
}

// Key identifies a selection independently of its id and generation.
// Action ids are cached too, a repeated selection gets the same handle back.
// The text is only hashed here, the entry keeps it to rule out collisions.
func Key(request selection.Request) []byte {
	return []byte(fmt.Sprintf("%s%s:%016x:%d:%d",
		KeyPrefix,
		request.Kind,
		xxhash.Sum64String(request.Text),
		request.Start,
		request.End,
	))
}

func (c *CachedClassifier) get(key []byte, text string) (selection.Result, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return selection.Result{}, false, nil
	}
	if err != nil {
		return selection.Result{}, false, err
	}

	entry, err := Decode(value)
	if err != nil {
		return selection.Result{}, false, err
	}
	if entry.Text != text {
		c.log.Debug("Cache key collision, ignoring entry", "key", string(key))
		return selection.Result{}, false, nil
	}
	return entry.Result, true, nil
}

func (c *CachedClassifier) put(key []byte, entry Entry) error {
	value, err := Encode(entry)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, value)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Entry is a cached result together with the text it was computed for.
type Entry struct {
	Text   string
	Result selection.Result
}

const textField = "text"

func Encode(entry Entry) ([]byte, error) {
	s, err := wire.FromResult(entry.Result)
	if err != nil {
		return nil, err
	}
	s.Fields[textField] = structpb.NewStringValue(entry.Text)
	return proto.Marshal(s)
}

func Decode(value []byte) (Entry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return Entry{}, err
	}
	result, err := wire.ToResult(&s)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Text: s.GetFields()[textField].GetStringValue(), Result: result}, nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const runKeyPrefix = "run:"

// Record is one completed competition run: the two module
// configurations compared, how many color-swapped pairs were played,
// and the resulting outcome tally.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	ModulesA     uint32    `json:"modules_a"`
	ModulesB     uint32    `json:"modules_b"`
	Pairs        int       `json:"pairs"`
	AWins        int       `json:"a_wins"`
	BWins        int       `json:"b_wins"`
	Draws        int       `json:"draws"`
	Inconclusive int       `json:"inconclusive"`
}

func runKey(ts time.Time) []byte {
	return []byte(fmt.Sprintf("%s%020d", runKeyPrefix, ts.UnixNano()))
}

// Storage wraps BadgerDB for persisting competition run records.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the run database at the
// platform's standard data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun persists one completed competition run, keyed by its
// timestamp so ListRuns can return them in chronological order.
func (s *Storage) SaveRun(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(rec.Timestamp), data)
	})
}

// ListRuns returns every saved run, oldest first.
func (s *Storage) ListRuns() ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var rec Record
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

// LastRun returns the most recently saved run, or ok=false if none has
// been saved yet.
func (s *Storage) LastRun() (rec Record, ok bool, err error) {
	records, err := s.ListRuns()
	if err != nil {
		return Record{}, false, err
	}
	if len(records) == 0 {
		return Record{}, false, nil
	}
	return records[len(records)-1], true, nil
}

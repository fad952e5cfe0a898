// store keeps named codon usage tables in a bolt database, so a
// reference gene only has to be supplied once.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/diploid-siva/coor/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// USAGE is the bucket name for all codon usage tables.
var USAGE = []byte("usage")

// ErrNotFound is returned when there is no table with the name.
var ErrNotFound = errors.New("codon usage not found")

// Entry is a stored codon usage table.
type Entry struct {
	// Reference is the reference gene the usage was recorded from.
	Reference string      `json:"reference,omitempty"`
	GCode     int         `json:"gcode"`
	Usage     codon.Usage `json:"usage"`
	Saved     time.Time   `json:"saved"`
}

// Store provides operations on the codon usage database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file.
func Open(fn string) (*Store, error) {
	db, err := bolt.Open(fn, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening codon database %s: %w", fn, err)
	}
	log.Debugf("Opened codon database %s", fn)
	return New(db), nil
}

// New creates a store from an open database.
func New(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the entry under the name, replacing the old one.
func (s *Store) Save(name string, e *Entry) error {
	if name == "" {
		return errors.New("empty codon usage name")
	}
	if e.Saved.IsZero() {
		e.Saved = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Error("Error serializing codon usage", err)
		return err
	}
	err = saveData(s.db, []byte(name), data)
	if err != nil {
		log.Error("Error saving codon usage", err)
		return err
	}
	log.Infof("Saved codon usage %q (%d codons)", name, e.Usage.Len())
	return nil
}

// Load returns the entry stored under the name.
func (s *Store) Load(name string) (*Entry, error) {
	b, err := loadData(s.db, []byte(name))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	var e Entry
	if err = json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("reading codon usage %q: %w", name, err)
	}
	if len(e.Usage) == 0 {
		return nil, fmt.Errorf("codon usage %q is empty", name)
	}
	log.Infof("Loaded codon usage %q (%d codons, saved %v)", name, e.Usage.Len(), e.Saved.Format(time.RFC3339))
	return &e, nil
}

// List returns sorted names of all stored tables.
func (s *Store) List() (names []string, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(USAGE)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	sort.Strings(names)
	return
}

// Delete removes the table with the name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(USAGE)
		if b == nil || b.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return b.Delete([]byte(name))
	})
}

// saveData saves values in bolt database.
func saveData(db *bolt.DB, key []byte, data []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(USAGE)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// loadData loads data from bolt database.
func loadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(USAGE)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			// v is only valid inside the transaction
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

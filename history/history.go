// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package history

import (
	"encoding/binary"
	"strings"
	"sync"
	"time"

	"github.com/boltdb/bolt"
	"github.com/go-json-experiment/json"
	"github.com/mitchellh/hashstructure"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-calc/parse"
)

// buckets:
// - entries: sequence uint64 -> entry (json)
// - expressions: expression hash uint64 -> sequence of its latest entry
var (
	entriesBucket     = []byte("entries")
	expressionsBucket = []byte("expressions")
)

var (
	// ErrBucketNotFound is returned when the history file lacks one of the
	// buckets created by Open.
	ErrBucketNotFound = errors.NewKind("history bucket %s not found")

	// ErrClosed is returned when the store is used after Close.
	ErrClosed = errors.NewKind("history store is closed")
)

// Entry is a single recorded evaluation.
type Entry struct {
	Seq        uint64    `json:"seq"`
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     int64     `json:"result"`
	Error      string    `json:"error,omitempty"`
	Time       time.Time `json:"time"`
}

// Failed reports whether the evaluation ended with an error.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// Store keeps the evaluation history in a bolt database.
type Store struct {
	path string

	mut sync.RWMutex
	db  *bolt.DB
}

// Open opens or creates the history file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0640, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{entriesBucket, expressionsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{path: path, db: db}, nil
}

// Path returns the file the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mut.Lock()
	defer s.mut.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) query(fn func(db *bolt.DB) error) error {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if s.db == nil {
		return ErrClosed.New()
	}
	return fn(s.db)
}

// Record appends e to the history, assigning its Seq, and makes it the
// latest entry for its expression.
func (s *Store) Record(e *Entry) error {
	hash, err := Key(e.Expression)
	if err != nil {
		return err
	}

	return s.query(func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			entries, exprs, err := buckets(tx)
			if err != nil {
				return err
			}

			seq, err := entries.NextSequence()
			if err != nil {
				return err
			}
			e.Seq = seq

			val, err := json.Marshal(e)
			if err != nil {
				return err
			}

			key := itob(seq)
			if err := entries.Put(key, val); err != nil {
				return err
			}

			return exprs.Put(itob(hash), key)
		})
	})
}

// Lookup returns the latest entry recorded for expr. Whitespace between
// tokens of expr is not significant.
func (s *Store) Lookup(expr string) (*Entry, bool, error) {
	hash, err := Key(expr)
	if err != nil {
		return nil, false, err
	}

	var entry *Entry
	err = s.query(func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			entries, exprs, err := buckets(tx)
			if err != nil {
				return err
			}

			key := exprs.Get(itob(hash))
			if key == nil {
				return nil
			}

			val := entries.Get(key)
			if val == nil {
				return nil
			}

			entry = new(Entry)
			return json.Unmarshal(val, entry)
		})
	})
	if err != nil {
		return nil, false, err
	}

	return entry, entry != nil, nil
}

// List returns every entry in the order they were recorded.
func (s *Store) List() ([]*Entry, error) {
	var result []*Entry
	err := s.query(func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			entries, _, err := buckets(tx)
			if err != nil {
				return err
			}

			return entries.ForEach(func(_, v []byte) error {
				e := new(Entry)
				if err := json.Unmarshal(v, e); err != nil {
					return err
				}
				result = append(result, e)
				return nil
			})
		})
	})

	return result, err
}

// Len returns the number of recorded entries.
func (s *Store) Len() (int, error) {
	var n int
	err := s.query(func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			entries, _, err := buckets(tx)
			if err != nil {
				return err
			}

			n = entries.Stats().KeyN
			return nil
		})
	})

	return n, err
}

func buckets(tx *bolt.Tx) (entries, exprs *bolt.Bucket, err error) {
	entries = tx.Bucket(entriesBucket)
	if entries == nil {
		return nil, nil, ErrBucketNotFound.New(entriesBucket)
	}

	exprs = tx.Bucket(expressionsBucket)
	if exprs == nil {
		return nil, nil, ErrBucketNotFound.New(expressionsBucket)
	}

	return entries, exprs, nil
}

type tokenKey struct {
	Type   parse.TokenType
	Number int64
}

// expressionKey holds the token stream of an expression, or the trimmed
// text when the expression does not scan.
type expressionKey struct {
	Tokens []tokenKey
	Raw    string
}

// Key returns the hash under which expr is indexed. Expressions with the
// same tokens share a key, so whitespace between tokens is not significant.
func Key(expr string) (uint64, error) {
	return hashstructure.Hash(newExpressionKey(expr), nil)
}

func newExpressionKey(expr string) expressionKey {
	var tokens []tokenKey
	c := parse.NewCursor(expr)
	for {
		if err := c.NextToken(); err != nil {
			return expressionKey{Raw: strings.TrimSpace(expr)}
		}

		if c.Token() == parse.EndToken {
			return expressionKey{Tokens: tokens}
		}

		tk := tokenKey{Type: c.Token()}
		if tk.Type == parse.NumberToken {
			tk.Number = c.Number()
		}
		tokens = append(tokens, tk)
	}
}

// itob encodes v big endian so bolt iterates keys in sequence order.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

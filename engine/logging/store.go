//go:build !js

package logging

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store records log entries in a bbolt database, one bucket per session.
// Appends are queued and written in batches by a background goroutine so
// that logging from the frame loop never waits on the disk.
type Store struct {
	db      *bolt.DB
	session []byte

	mu     sync.Mutex // guards queue sends against Close
	closed bool
	queue  chan Entry
	done   sync.WaitGroup

	errMu sync.Mutex
	err   error
}

// size of the append queue. an append blocks only when the writer is this
// far behind.
const storeQueueLen = 4096

// OpenStore opens (or creates) the database at path and starts a new
// session bucket.
func OpenStore(path, session string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open log store %q: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(session))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create log session %q: %w", session, err)
	}

	s := &Store{
		db:      db,
		session: []byte(session),
		queue:   make(chan Entry, storeQueueLen),
	}
	s.done.Add(1)
	go s.writer()
	return s, nil
}

// Append queues an entry for writing. Entries appended after Close are
// dropped.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.queue <- e
}

func (s *Store) writer() {
	defer s.done.Done()
	for e := range s.queue {
		batch := []Entry{e}
	drain:
		for {
			select {
			case e, ok := <-s.queue:
				if !ok {
					break drain
				}
				batch = append(batch, e)
			default:
				break drain
			}
		}
		if err := s.write(batch); err != nil {
			s.errMu.Lock()
			if s.err == nil {
				s.err = err
			}
			s.errMu.Unlock()
		}
	}
}

func (s *Store) write(batch []Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.session)
		for _, e := range batch {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			v, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := b.Put(marshalSeq(seq), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close flushes queued entries and closes the database. It returns the
// first error met while writing, if any. Closing twice does nothing.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	s.done.Wait()
	err := s.db.Close()

	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err != nil {
		return s.err
	}
	return err
}

// Sessions lists the session buckets in the database.
func (s *Store) Sessions() ([]string, error) {
	var sessions []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			sessions = append(sessions, string(name))
			return nil
		})
	})
	return sessions, err
}

// Entries returns the entries already written for a session, in order.
// Entries still queued are not included.
func (s *Store) Entries(session string) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(session))
		if b == nil {
			return fmt.Errorf("no log session %q", session)
		}
		return b.ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			entries = append(entries, e)
			return nil
		})
	})
	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

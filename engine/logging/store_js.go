//go:build js

package logging

import "errors"

// ErrNoStore is returned by OpenStore where no file system is available.
var ErrNoStore = errors.New("log store not supported on this platform")

// Store is unavailable in the browser. Entries can still be retrieved from
// the logger's ring.
type Store struct{}

func OpenStore(path, session string) (*Store, error) { return nil, ErrNoStore }

func (s *Store) Append(e Entry)                          {}
func (s *Store) Close() error                            { return nil }
func (s *Store) Sessions() ([]string, error)             { return nil, ErrNoStore }
func (s *Store) Entries(session string) ([]Entry, error) { return nil, ErrNoStore }

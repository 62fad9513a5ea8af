package table

import (
	"strings"
	"sync"
)

// Store keeps every open table
type Store struct {
	lock    sync.RWMutex
	tables  map[string]*Table
	options Options
}

// NewStore returns a store whose tables are created with opts
func NewStore(opts Options) *Store {
	return &Store{
		tables:  make(map[string]*Table),
		options: opts,
	}
}

// CreateTable creates a new table
func (s *Store) CreateTable(name string) (*Table, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalidName
	}

	t := newTable(name, s.options)

	s.lock.Lock()
	s.tables[t.UUID] = t
	s.lock.Unlock()

	return t, nil
}

// GetTableByUUID returns a table by its UUID
// The UUID is case-insensitive.
func (s *Store) GetTableByUUID(uuid string) (*Table, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	t, ok := s.tables[strings.ToLower(uuid)]
	if !ok {
		return nil, ErrTableNotFound
	}

	return t, nil
}

// Tables returns every table
func (s *Store) Tables() []*Table {
	s.lock.RLock()
	defer s.lock.RUnlock()

	tables := make([]*Table, 0, len(s.tables))
	for _, t := range s.tables {
		tables = append(tables, t)
	}

	return tables
}

package dataset

import "sort"

// Store holds the parsed tables of one dataset export, keyed by table
// name. Analyses never assume a table is present; a missing table simply
// yields no relationships.
type Store struct {
	tables map[string]*Table
}

// NewStore creates a Store from a set of parsed tables.
func NewStore(tables ...*Table) *Store {
	store := &Store{tables: make(map[string]*Table, len(tables))}
	for _, table := range tables {
		store.tables[table.Name] = table
	}
	return store
}

// NewTable builds a Table directly from a header and rows. Mostly useful
// for constructing fixtures in tests.
func NewTable(name string, header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	return &Table{
		Name:   name,
		Header: header,
		Rows:   rows,
		index:  index,
	}
}

// Table returns the named table, or nil if it was not loaded.
func (s *Store) Table(name string) *Table {
	return s.tables[name]
}

// Has reports whether the named table was loaded.
func (s *Store) Has(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// Names returns the loaded table names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) add(table *Table) {
	s.tables[table.Name] = table
}

package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func (st *state) getTable(id uuid.UUID) (models.Table, error) {
	table, ok := st.tables[id]
	if !ok {
		return models.Table{}, fmt.Errorf("%w: table %s", errs.ErrNotFound, id)
	}
	return table, nil
}

func (st *state) listTables() ([]models.Table, error) {
	result := make([]models.Table, 0, len(st.tables))
	for _, table := range st.tables {
		result = append(result, table)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (st *state) createTable(table models.Table) (models.Table, error) {
	for _, existing := range st.tables {
		if existing.Number == table.Number {
			return models.Table{}, fmt.Errorf("%w: table number %d already exists", errs.ErrConflict, table.Number)
		}
	}
	table.Revision = 1
	st.tables[table.ID] = table
	return table, nil
}

func (st *state) updateTable(table models.Table) (models.Table, error) {
	existing, ok := st.tables[table.ID]
	if !ok {
		return models.Table{}, fmt.Errorf("%w: table %s", errs.ErrNotFound, table.ID)
	}
	if existing.Revision != table.Revision {
		return models.Table{}, fmt.Errorf("%w: table %s was modified concurrently", errs.ErrConflict, table.ID)
	}
	table.Revision++
	st.tables[table.ID] = table
	return table, nil
}

func (s *Store) GetTable(ctx context.Context, id uuid.UUID) (models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.getTable(id)
}

func (s *Store) ListTables(ctx context.Context) ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listTables()
}

func (s *Store) CreateTable(ctx context.Context, table models.Table) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createTable(table)
}

func (s *Store) UpdateTable(ctx context.Context, table models.Table) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateTable(table)
}

func (t *txStore) GetTable(ctx context.Context, id uuid.UUID) (models.Table, error) {
	return t.s.st.getTable(id)
}

func (t *txStore) ListTables(ctx context.Context) ([]models.Table, error) {
	return t.s.st.listTables()
}

func (t *txStore) CreateTable(ctx context.Context, table models.Table) (models.Table, error) {
	return t.s.st.createTable(table)
}

func (t *txStore) UpdateTable(ctx context.Context, table models.Table) (models.Table, error) {
	return t.s.st.updateTable(table)
}

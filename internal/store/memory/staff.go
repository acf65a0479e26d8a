package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func (st *state) getStaff(id uuid.UUID) (models.Staff, error) {
	staff, ok := st.staff[id]
	if !ok {
		return models.Staff{}, fmt.Errorf("%w: staff %s", errs.ErrNotFound, id)
	}
	return staff, nil
}

func (st *state) getStaffByUsername(username string) (models.Staff, error) {
	for _, staff := range st.staff {
		if staff.Username == username {
			return staff, nil
		}
	}
	return models.Staff{}, fmt.Errorf("%w: staff with username %q", errs.ErrNotFound, username)
}

func (st *state) listStaff() ([]models.Staff, error) {
	result := make([]models.Staff, 0, len(st.staff))
	for _, staff := range st.staff {
		result = append(result, staff)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (st *state) createStaff(staff models.Staff) (models.Staff, error) {
	for _, existing := range st.staff {
		if existing.Username == staff.Username {
			return models.Staff{}, fmt.Errorf("%w: username %q already taken", errs.ErrConflict, staff.Username)
		}
	}
	staff.Revision = 1
	st.staff[staff.ID] = staff
	return staff, nil
}

func (st *state) updateStaff(staff models.Staff) (models.Staff, error) {
	existing, ok := st.staff[staff.ID]
	if !ok {
		return models.Staff{}, fmt.Errorf("%w: staff %s", errs.ErrNotFound, staff.ID)
	}
	if existing.Revision != staff.Revision {
		return models.Staff{}, fmt.Errorf("%w: staff %s was modified concurrently", errs.ErrConflict, staff.ID)
	}
	staff.Revision++
	st.staff[staff.ID] = staff
	return staff, nil
}

func (s *Store) GetStaff(ctx context.Context, id uuid.UUID) (models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.getStaff(id)
}

func (s *Store) GetStaffByUsername(ctx context.Context, username string) (models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.getStaffByUsername(username)
}

func (s *Store) ListStaff(ctx context.Context) ([]models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listStaff()
}

func (s *Store) CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createStaff(staff)
}

func (s *Store) UpdateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateStaff(staff)
}

func (t *txStore) GetStaff(ctx context.Context, id uuid.UUID) (models.Staff, error) {
	return t.s.st.getStaff(id)
}

func (t *txStore) GetStaffByUsername(ctx context.Context, username string) (models.Staff, error) {
	return t.s.st.getStaffByUsername(username)
}

func (t *txStore) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return t.s.st.listStaff()
}

func (t *txStore) CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	return t.s.st.createStaff(staff)
}

func (t *txStore) UpdateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	return t.s.st.updateStaff(staff)
}

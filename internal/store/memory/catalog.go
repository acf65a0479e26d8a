package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func (st *state) listMenuCategories() ([]models.MenuCategory, error) {
	result := make([]models.MenuCategory, 0, len(st.categories))
	for _, category := range st.categories {
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

func (st *state) createMenuCategory(category models.MenuCategory) (models.MenuCategory, error) {
	st.categories[category.ID] = category
	return category, nil
}

func (st *state) getMenuItem(id uuid.UUID) (models.MenuItem, error) {
	item, ok := st.menuItems[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("%w: menu item %s", errs.ErrNotFound, id)
	}
	return item, nil
}

func (st *state) listMenuItems() ([]models.MenuItem, error) {
	result := make([]models.MenuItem, 0, len(st.menuItems))
	for _, item := range st.menuItems {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

func (st *state) listMenuItemsByCategory(categoryID uuid.UUID) ([]models.MenuItem, error) {
	var result []models.MenuItem
	for _, item := range st.menuItems {
		if item.CategoryID == categoryID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

func (st *state) createMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if _, ok := st.categories[item.CategoryID]; !ok {
		return models.MenuItem{}, fmt.Errorf("%w: menu category %s", errs.ErrNotFound, item.CategoryID)
	}
	item.Revision = 1
	st.menuItems[item.ID] = item
	return item, nil
}

func (st *state) updateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	existing, ok := st.menuItems[item.ID]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("%w: menu item %s", errs.ErrNotFound, item.ID)
	}
	if existing.Revision != item.Revision {
		return models.MenuItem{}, fmt.Errorf("%w: menu item %s was modified concurrently", errs.ErrConflict, item.ID)
	}
	item.Revision++
	st.menuItems[item.ID] = item
	return item, nil
}

func (s *Store) ListMenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listMenuCategories()
}

func (s *Store) CreateMenuCategory(ctx context.Context, category models.MenuCategory) (models.MenuCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createMenuCategory(category)
}

func (s *Store) GetMenuItem(ctx context.Context, id uuid.UUID) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.getMenuItem(id)
}

func (s *Store) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listMenuItems()
}

func (s *Store) ListMenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listMenuItemsByCategory(categoryID)
}

func (s *Store) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createMenuItem(item)
}

func (s *Store) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateMenuItem(item)
}

func (t *txStore) ListMenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	return t.s.st.listMenuCategories()
}

func (t *txStore) CreateMenuCategory(ctx context.Context, category models.MenuCategory) (models.MenuCategory, error) {
	return t.s.st.createMenuCategory(category)
}

func (t *txStore) GetMenuItem(ctx context.Context, id uuid.UUID) (models.MenuItem, error) {
	return t.s.st.getMenuItem(id)
}

func (t *txStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return t.s.st.listMenuItems()
}

func (t *txStore) ListMenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error) {
	return t.s.st.listMenuItemsByCategory(categoryID)
}

func (t *txStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	return t.s.st.createMenuItem(item)
}

func (t *txStore) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	return t.s.st.updateMenuItem(item)
}

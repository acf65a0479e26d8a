package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func scanMenuCategory(row pgx.Row) (models.MenuCategory, error) {
	var category models.MenuCategory
	err := row.Scan(&category.ID, &category.Name, &category.Icon, &category.Order, &category.IsActive)
	return category, err
}

func scanMenuItem(row pgx.Row) (models.MenuItem, error) {
	var item models.MenuItem
	var price string
	err := row.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &price,
		&item.Image, &item.IsAvailable, &item.PreparationTime, &item.Order, &item.Revision)
	if err != nil {
		return models.MenuItem{}, err
	}
	item.Price, err = models.MoneyFromString(price)
	return item, err
}

func (s *Store) ListMenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	rows, err := s.q.Query(ctx, listMenuCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}
	defer rows.Close()

	var result []models.MenuCategory
	for rows.Next() {
		category, err := scanMenuCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu category: %w", err)
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func (s *Store) CreateMenuCategory(ctx context.Context, category models.MenuCategory) (models.MenuCategory, error) {
	created, err := scanMenuCategory(s.q.QueryRow(ctx, insertMenuCategorySQL,
		category.ID, category.Name, category.Icon, category.Order, category.IsActive))
	if err != nil {
		return models.MenuCategory{}, fmt.Errorf("failed to create menu category: %w", err)
	}
	return created, nil
}

func (s *Store) GetMenuItem(ctx context.Context, id uuid.UUID) (models.MenuItem, error) {
	item, err := scanMenuItem(s.q.QueryRow(ctx, getMenuItemSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.MenuItem{}, fmt.Errorf("%w: menu item %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *Store) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.queryMenuItems(ctx, listMenuItemsSQL)
}

func (s *Store) ListMenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error) {
	return s.queryMenuItems(ctx, listMenuItemsByCategorySQL, categoryID)
}

func (s *Store) queryMenuItems(ctx context.Context, sql string, args ...any) ([]models.MenuItem, error) {
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var result []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *Store) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	created, err := scanMenuItem(s.q.QueryRow(ctx, insertMenuItemSQL,
		item.ID, item.CategoryID, item.Name, item.Description, item.Price,
		item.Image, item.IsAvailable, item.PreparationTime, item.Order))
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to create menu item: %w", err)
	}
	return created, nil
}

func (s *Store) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	updated, err := scanMenuItem(s.q.QueryRow(ctx, updateMenuItemSQL,
		item.Name, item.Description, item.Price, item.Image, item.IsAvailable,
		item.PreparationTime, item.Order, item.ID, item.Revision))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.MenuItem{}, s.staleOrMissing(ctx, menuItemExistsSQL, item.ID, "menu item")
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to update menu item: %w", err)
	}
	return updated, nil
}

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

func scanTable(row pgx.Row) (models.Table, error) {
	var table models.Table
	err := row.Scan(&table.ID, &table.Number, &table.Seats, &table.Status,
		&table.X, &table.Y, &table.Revision)
	return table, err
}

func (s *Store) GetTable(ctx context.Context, id uuid.UUID) (models.Table, error) {
	table, err := scanTable(s.q.QueryRow(ctx, getTableSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Table{}, fmt.Errorf("%w: table %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to get table: %w", err)
	}
	return table, nil
}

func (s *Store) ListTables(ctx context.Context) ([]models.Table, error) {
	rows, err := s.q.Query(ctx, listTablesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var result []models.Table
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		result = append(result, table)
	}
	return result, rows.Err()
}

func (s *Store) CreateTable(ctx context.Context, table models.Table) (models.Table, error) {
	created, err := scanTable(s.q.QueryRow(ctx, insertTableSQL,
		table.ID, table.Number, table.Seats, table.Status, table.X, table.Y))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Table{}, fmt.Errorf("%w: table number %d already exists", errs.ErrConflict, table.Number)
		}
		return models.Table{}, fmt.Errorf("failed to create table: %w", err)
	}
	return created, nil
}

func (s *Store) UpdateTable(ctx context.Context, table models.Table) (models.Table, error) {
	updated, err := scanTable(s.q.QueryRow(ctx, updateTableSQL,
		table.Seats, table.Status, table.X, table.Y, table.ID, table.Revision))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Table{}, s.staleOrMissing(ctx, tableExistsSQL, table.ID, "table")
	}
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to update table: %w", err)
	}
	return updated, nil
}

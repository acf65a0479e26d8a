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

func scanStaff(row pgx.Row) (models.Staff, error) {
	var staff models.Staff
	err := row.Scan(&staff.ID, &staff.Username, &staff.Password, &staff.Name,
		&staff.Role, &staff.IsActive, &staff.CreatedAt, &staff.Revision)
	return staff, err
}

func (s *Store) GetStaff(ctx context.Context, id uuid.UUID) (models.Staff, error) {
	staff, err := scanStaff(s.q.QueryRow(ctx, getStaffSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Staff{}, fmt.Errorf("%w: staff %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return models.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return staff, nil
}

func (s *Store) GetStaffByUsername(ctx context.Context, username string) (models.Staff, error) {
	staff, err := scanStaff(s.q.QueryRow(ctx, getStaffByUsernameSQL, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Staff{}, fmt.Errorf("%w: staff with username %q", errs.ErrNotFound, username)
	}
	if err != nil {
		return models.Staff{}, fmt.Errorf("failed to get staff by username: %w", err)
	}
	return staff, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]models.Staff, error) {
	rows, err := s.q.Query(ctx, listStaffSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []models.Staff
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (s *Store) CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	created, err := scanStaff(s.q.QueryRow(ctx, insertStaffSQL,
		staff.ID, staff.Username, staff.Password, staff.Name, staff.Role,
		staff.IsActive, staff.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Staff{}, fmt.Errorf("%w: username %q already taken", errs.ErrConflict, staff.Username)
		}
		return models.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

func (s *Store) UpdateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	updated, err := scanStaff(s.q.QueryRow(ctx, updateStaffSQL,
		staff.Name, staff.Role, staff.IsActive, staff.ID, staff.Revision))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Staff{}, s.staleOrMissing(ctx, staffExistsSQL, staff.ID, "staff")
	}
	if err != nil {
		return models.Staff{}, fmt.Errorf("failed to update staff: %w", err)
	}
	return updated, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// FacultyProfileRepository handles the faculty profile singleton.
type FacultyProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyProfileRepository creates a new FacultyProfileRepository
func NewFacultyProfileRepository(db *pgxpool.Pool) *FacultyProfileRepository {
	return &FacultyProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const facultyProfileColumns = "id, full_name, designation, department, university, email, bio, profile_image"

// Get returns the single faculty profile row.
func (r *FacultyProfileRepository) Get(ctx context.Context) (*models.FacultyProfile, error) {
	sql, args, err := r.sb.Select(facultyProfileColumns).From("faculty_profile").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty profile query: %w", err)
	}

	p := &models.FacultyProfile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.FullName, &p.Designation, &p.Department,
		&p.University, &p.Email, &p.Bio, &p.ProfileImage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyProfileNotFound
		}
		logger.Error().Err(err).Msg("Error scanning faculty profile row")
		return nil, fmt.Errorf("error getting faculty profile: %w", err)
	}
	return p, nil
}

// Upsert writes the faculty profile, inserting the row on first save.
func (r *FacultyProfileRepository) Upsert(ctx context.Context, p *models.FacultyProfile) error {
	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	if existing == nil {
		sql, args, err := r.sb.Insert("faculty_profile").
			Columns("full_name", "designation", "department", "university", "email", "bio", "profile_image").
			Values(p.FullName, p.Designation, p.Department, p.University, p.Email, p.Bio, p.ProfileImage).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert faculty profile query: %w", err)
		}
		if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
			logger.Error().Err(err).Msg("Error inserting faculty profile")
			return fmt.Errorf("error inserting faculty profile: %w", err)
		}
		return nil
	}

	sql, args, err := r.sb.Update("faculty_profile").
		SetMap(map[string]interface{}{
			"full_name":     p.FullName,
			"designation":   p.Designation,
			"department":    p.Department,
			"university":    p.University,
			"email":         p.Email,
			"bio":           p.Bio,
			"profile_image": p.ProfileImage,
		}).
		Where(squirrel.Eq{"id": existing.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty profile query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error updating faculty profile")
		return fmt.Errorf("error updating faculty profile: %w", err)
	}
	p.ID = existing.ID
	return nil
}

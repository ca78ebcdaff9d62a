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

// AwardRepository handles award database operations
type AwardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAwardRepository creates a new AwardRepository
func NewAwardRepository(db *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const awardColumns = "id, faculty_id, title, organization, award_date, description, created_at"

func scanAward(row pgx.Row) (*models.Award, error) {
	a := &models.Award{}
	err := row.Scan(&a.ID, &a.FacultyID, &a.Title, &a.Organization, &a.AwardDate, &a.Description, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns one page of awards plus the total row count.
func (r *AwardRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Award, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("awards").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count awards query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting awards")
		return nil, 0, fmt.Errorf("error counting awards: %w", err)
	}

	listSQL, listArgs, err := r.sb.Select(awardColumns).From("awards").
		OrderBy("award_date DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list awards query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying awards")
		return nil, 0, fmt.Errorf("error querying awards: %w", err)
	}
	defer rows.Close()

	awards := []*models.Award{}
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning award row: %w", err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating award rows: %w", err)
	}

	return awards, total, nil
}

// ListAll returns every award, newest first, for the public site.
func (r *AwardRepository) ListAll(ctx context.Context) ([]*models.Award, error) {
	sql, args, err := r.sb.Select(awardColumns).From("awards").
		OrderBy("award_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all awards query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all awards")
		return nil, fmt.Errorf("error querying awards: %w", err)
	}
	defer rows.Close()

	awards := []*models.Award{}
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning award row: %w", err)
		}
		awards = append(awards, a)
	}
	return awards, rows.Err()
}

// GetByID retrieves an award by ID
func (r *AwardRepository) GetByID(ctx context.Context, id int64) (*models.Award, error) {
	sql, args, err := r.sb.Select(awardColumns).From("awards").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get award query: %w", err)
	}

	a, err := scanAward(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAwardNotFound
		}
		logger.Error().Err(err).Int64("awardID", id).Msg("Error scanning award row")
		return nil, fmt.Errorf("error getting award by ID: %w", err)
	}
	return a, nil
}

// Create inserts a new award and returns its assigned ID.
func (r *AwardRepository) Create(ctx context.Context, a *models.Award) (int64, error) {
	sql, args, err := r.sb.Insert("awards").
		Columns("faculty_id", "title", "organization", "award_date", "description").
		Values(a.FacultyID, a.Title, a.Organization, a.AwardDate, a.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create award query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create award query")
		return 0, fmt.Errorf("error creating award: %w", err)
	}
	return a.ID, nil
}

// Update replaces an existing award in full.
func (r *AwardRepository) Update(ctx context.Context, a *models.Award) error {
	sql, args, err := r.sb.Update("awards").
		SetMap(map[string]interface{}{
			"faculty_id":   a.FacultyID,
			"title":        a.Title,
			"organization": a.Organization,
			"award_date":   a.AwardDate,
			"description":  a.Description,
		}).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update award query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("awardID", a.ID).Msg("Error executing update award query")
		return fmt.Errorf("error updating award: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAwardNotFound
	}
	return nil
}

// Delete removes an award by ID.
func (r *AwardRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("awards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete award query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("awardID", id).Msg("Error executing delete award query")
		return fmt.Errorf("error deleting award: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAwardNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// PatentRepository handles patent database operations
type PatentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPatentRepository creates a new PatentRepository
func NewPatentRepository(db *pgxpool.Pool) *PatentRepository {
	return &PatentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const patentColumns = "id, faculty_id, title, patent_type, application_number, registration_number, filing_date, publication_date, issue_date, inventors, status, created_at"

// Numbers and milestone dates are nullable; a patent only accumulates them as
// it moves through filed -> published -> granted.
func scanPatent(row pgx.Row) (*models.Patent, error) {
	p := &models.Patent{}
	var appNo, regNo, filing, pub, issue sql.NullString
	err := row.Scan(&p.ID, &p.FacultyID, &p.Title, &p.PatentType, &appNo, &regNo,
		&filing, &pub, &issue, &p.Inventors, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.ApplicationNumber = helpers.FromNullString(appNo)
	p.RegistrationNumber = helpers.FromNullString(regNo)
	p.FilingDate = helpers.FromNullString(filing)
	p.PublicationDate = helpers.FromNullString(pub)
	p.IssueDate = helpers.FromNullString(issue)
	return p, nil
}

func patentConds(filter dto.PatentFilter) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{}
	if filter.Status != "" {
		conds = append(conds, squirrel.Eq{"status": filter.Status})
	}
	if filter.PatentType != "" {
		conds = append(conds, squirrel.Eq{"patent_type": filter.PatentType})
	}
	return conds
}

// List returns one page of patents matching the filter plus the total row
// count for that filter.
func (r *PatentRepository) List(ctx context.Context, filter dto.PatentFilter, offset uint64, limit int) ([]*models.Patent, int64, error) {
	conds := patentConds(filter)

	countQ := r.sb.Select("COUNT(*)").From("patents")
	listQ := r.sb.Select(patentColumns).From("patents").
		OrderBy("id DESC").
		Offset(offset).
		Limit(uint64(limit))
	for _, c := range conds {
		countQ = countQ.Where(c)
		listQ = listQ.Where(c)
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count patents query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting patents")
		return nil, 0, fmt.Errorf("error counting patents: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list patents query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying patents")
		return nil, 0, fmt.Errorf("error querying patents: %w", err)
	}
	defer rows.Close()

	patents := []*models.Patent{}
	for rows.Next() {
		p, err := scanPatent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning patent row: %w", err)
		}
		patents = append(patents, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating patent rows: %w", err)
	}

	return patents, total, nil
}

// ListAll returns every patent, newest first, for the public site.
func (r *PatentRepository) ListAll(ctx context.Context) ([]*models.Patent, error) {
	sql, args, err := r.sb.Select(patentColumns).From("patents").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all patents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all patents")
		return nil, fmt.Errorf("error querying patents: %w", err)
	}
	defer rows.Close()

	patents := []*models.Patent{}
	for rows.Next() {
		p, err := scanPatent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning patent row: %w", err)
		}
		patents = append(patents, p)
	}
	return patents, rows.Err()
}

// GetByID retrieves a patent by ID
func (r *PatentRepository) GetByID(ctx context.Context, id int64) (*models.Patent, error) {
	sql, args, err := r.sb.Select(patentColumns).From("patents").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get patent query: %w", err)
	}

	p, err := scanPatent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPatentNotFound
		}
		logger.Error().Err(err).Int64("patentID", id).Msg("Error scanning patent row")
		return nil, fmt.Errorf("error getting patent by ID: %w", err)
	}
	return p, nil
}

// Create inserts a new patent and returns its assigned ID.
func (r *PatentRepository) Create(ctx context.Context, p *models.Patent) (int64, error) {
	sql, args, err := r.sb.Insert("patents").
		Columns("faculty_id", "title", "patent_type", "application_number", "registration_number",
			"filing_date", "publication_date", "issue_date", "inventors", "status").
		Values(p.FacultyID, p.Title, p.PatentType,
			helpers.GetNullString(p.ApplicationNumber), helpers.GetNullString(p.RegistrationNumber),
			helpers.GetNullString(p.FilingDate), helpers.GetNullString(p.PublicationDate),
			helpers.GetNullString(p.IssueDate), p.Inventors, p.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create patent query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create patent query")
		return 0, fmt.Errorf("error creating patent: %w", err)
	}
	return p.ID, nil
}

// Update replaces an existing patent in full.
func (r *PatentRepository) Update(ctx context.Context, p *models.Patent) error {
	sql, args, err := r.sb.Update("patents").
		SetMap(map[string]interface{}{
			"faculty_id":          p.FacultyID,
			"title":               p.Title,
			"patent_type":         p.PatentType,
			"application_number":  helpers.GetNullString(p.ApplicationNumber),
			"registration_number": helpers.GetNullString(p.RegistrationNumber),
			"filing_date":         helpers.GetNullString(p.FilingDate),
			"publication_date":    helpers.GetNullString(p.PublicationDate),
			"issue_date":          helpers.GetNullString(p.IssueDate),
			"inventors":           p.Inventors,
			"status":              p.Status,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update patent query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("patentID", p.ID).Msg("Error executing update patent query")
		return fmt.Errorf("error updating patent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPatentNotFound
	}
	return nil
}

// Delete removes a patent by ID.
func (r *PatentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("patents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete patent query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("patentID", id).Msg("Error executing delete patent query")
		return fmt.Errorf("error deleting patent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPatentNotFound
	}
	return nil
}

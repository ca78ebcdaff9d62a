package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// PublicationRepository handles publication database operations
type PublicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const publicationColumns = "id, faculty_id, title, authors, publication_type, year, official_url, abstract, cover_image, created_at"

func scanPublication(row pgx.Row) (*models.Publication, error) {
	p := &models.Publication{}
	err := row.Scan(&p.ID, &p.FacultyID, &p.Title, &p.Authors, &p.PublicationType, &p.Year,
		&p.OfficialURL, &p.Abstract, &p.CoverImage, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// publicationConds translates the list filter into SQL predicates.
func publicationConds(filter dto.PublicationFilter) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{}
	if filter.Search != "" {
		conds = append(conds, squirrel.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.Year != nil {
		conds = append(conds, squirrel.Eq{"year": *filter.Year})
	}
	if filter.PublicationType != "" {
		conds = append(conds, squirrel.Eq{"publication_type": filter.PublicationType})
	}
	return conds
}

// List returns one page of publications matching the filter plus the total
// row count for that filter.
func (r *PublicationRepository) List(ctx context.Context, filter dto.PublicationFilter, offset uint64, limit int) ([]*models.Publication, int64, error) {
	conds := publicationConds(filter)

	countQ := r.sb.Select("COUNT(*)").From("publications")
	for _, c := range conds {
		countQ = countQ.Where(c)
	}
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count publications query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting publications")
		return nil, 0, fmt.Errorf("error counting publications: %w", err)
	}

	listQ := r.sb.Select(publicationColumns).From("publications").
		OrderBy("year DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit))
	for _, c := range conds {
		listQ = listQ.Where(c)
	}
	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list publications query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying publications")
		return nil, 0, fmt.Errorf("error querying publications: %w", err)
	}
	defer rows.Close()

	publications := []*models.Publication{}
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning publication row: %w", err)
		}
		publications = append(publications, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating publication rows: %w", err)
	}

	return publications, total, nil
}

// ListAll returns every publication, newest first, for the public site.
func (r *PublicationRepository) ListAll(ctx context.Context) ([]*models.Publication, error) {
	sql, args, err := r.sb.Select(publicationColumns).From("publications").
		OrderBy("year DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all publications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all publications")
		return nil, fmt.Errorf("error querying publications: %w", err)
	}
	defer rows.Close()

	publications := []*models.Publication{}
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning publication row: %w", err)
		}
		publications = append(publications, p)
	}
	return publications, rows.Err()
}

// GetByID retrieves a publication by ID
func (r *PublicationRepository) GetByID(ctx context.Context, id int64) (*models.Publication, error) {
	sql, args, err := r.sb.Select(publicationColumns).From("publications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get publication query: %w", err)
	}

	p, err := scanPublication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		logger.Error().Err(err).Int64("publicationID", id).Msg("Error scanning publication row")
		return nil, fmt.Errorf("error getting publication by ID: %w", err)
	}
	return p, nil
}

// Create inserts a new publication and returns its assigned ID.
func (r *PublicationRepository) Create(ctx context.Context, p *models.Publication) (int64, error) {
	sql, args, err := r.sb.Insert("publications").
		Columns("faculty_id", "title", "authors", "publication_type", "year", "official_url", "abstract", "cover_image").
		Values(p.FacultyID, p.Title, p.Authors, p.PublicationType, p.Year, p.OfficialURL, p.Abstract, p.CoverImage).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create publication query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create publication query")
		return 0, fmt.Errorf("error creating publication: %w", err)
	}
	return p.ID, nil
}

// Update replaces an existing publication in full.
func (r *PublicationRepository) Update(ctx context.Context, p *models.Publication) error {
	sql, args, err := r.sb.Update("publications").
		SetMap(map[string]interface{}{
			"faculty_id":       p.FacultyID,
			"title":            p.Title,
			"authors":          p.Authors,
			"publication_type": p.PublicationType,
			"year":             p.Year,
			"official_url":     p.OfficialURL,
			"abstract":         p.Abstract,
			"cover_image":      p.CoverImage,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update publication query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("publicationID", p.ID).Msg("Error executing update publication query")
		return fmt.Errorf("error updating publication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// Delete removes a publication by ID.
func (r *PublicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("publications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete publication query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("publicationID", id).Msg("Error executing delete publication query")
		return fmt.Errorf("error deleting publication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

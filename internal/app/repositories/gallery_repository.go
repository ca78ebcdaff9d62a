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

// GalleryRepository handles gallery database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const galleryColumns = "id, faculty_id, title, description, media_url, media_type, created_at"

func scanGalleryItem(row pgx.Row) (*models.GalleryItem, error) {
	g := &models.GalleryItem{}
	err := row.Scan(&g.ID, &g.FacultyID, &g.Title, &g.Description, &g.MediaURL, &g.MediaType, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// List returns one page of gallery items plus the total row count.
func (r *GalleryRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.GalleryItem, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("gallery_items").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count gallery query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting gallery items")
		return nil, 0, fmt.Errorf("error counting gallery items: %w", err)
	}

	listSQL, listArgs, err := r.sb.Select(galleryColumns).From("gallery_items").
		OrderBy("id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying gallery items")
		return nil, 0, fmt.Errorf("error querying gallery items: %w", err)
	}
	defer rows.Close()

	items := []*models.GalleryItem{}
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning gallery row: %w", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating gallery rows: %w", err)
	}

	return items, total, nil
}

// ListAll returns every gallery item, newest first, for the public site.
func (r *GalleryRepository) ListAll(ctx context.Context) ([]*models.GalleryItem, error) {
	sql, args, err := r.sb.Select(galleryColumns).From("gallery_items").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all gallery items")
		return nil, fmt.Errorf("error querying gallery items: %w", err)
	}
	defer rows.Close()

	items := []*models.GalleryItem{}
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning gallery row: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

// GetByID retrieves a gallery item by ID
func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	sql, args, err := r.sb.Select(galleryColumns).From("gallery_items").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get gallery item query: %w", err)
	}

	g, err := scanGalleryItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGalleryItemNotFound
		}
		logger.Error().Err(err).Int64("galleryItemID", id).Msg("Error scanning gallery row")
		return nil, fmt.Errorf("error getting gallery item by ID: %w", err)
	}
	return g, nil
}

// Create inserts a new gallery item and returns its assigned ID.
func (r *GalleryRepository) Create(ctx context.Context, g *models.GalleryItem) (int64, error) {
	sql, args, err := r.sb.Insert("gallery_items").
		Columns("faculty_id", "title", "description", "media_url", "media_type").
		Values(g.FacultyID, g.Title, g.Description, g.MediaURL, g.MediaType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create gallery item query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&g.ID, &g.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery item query")
		return 0, fmt.Errorf("error creating gallery item: %w", err)
	}
	return g.ID, nil
}

// Update replaces an existing gallery item in full.
func (r *GalleryRepository) Update(ctx context.Context, g *models.GalleryItem) error {
	sql, args, err := r.sb.Update("gallery_items").
		SetMap(map[string]interface{}{
			"faculty_id":  g.FacultyID,
			"title":       g.Title,
			"description": g.Description,
			"media_url":   g.MediaURL,
			"media_type":  g.MediaType,
		}).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update gallery item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("galleryItemID", g.ID).Msg("Error executing update gallery item query")
		return fmt.Errorf("error updating gallery item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryItemNotFound
	}
	return nil
}

// Delete removes a gallery item by ID.
func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("gallery_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete gallery item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("galleryItemID", id).Msg("Error executing delete gallery item query")
		return fmt.Errorf("error deleting gallery item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryItemNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/pkg/dberrors"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// BookRepository handles book database operations
type BookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const bookColumns = "id, faculty_id, title, publisher, year, category, isbn, doi, official_url, cover_image, created_at"

func scanBook(row pgx.Row) (*models.Book, error) {
	b := &models.Book{}
	err := row.Scan(&b.ID, &b.FacultyID, &b.Title, &b.Publisher, &b.Year, &b.Category,
		&b.ISBN, &b.DOI, &b.OfficialURL, &b.CoverImage, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns one page of books, optionally filtered by category, plus the
// total row count for that filter.
func (r *BookRepository) List(ctx context.Context, category string, offset uint64, limit int) ([]*models.Book, int64, error) {
	countQ := r.sb.Select("COUNT(*)").From("books")
	listQ := r.sb.Select(bookColumns).From("books").
		OrderBy("year DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if category != "" {
		countQ = countQ.Where(squirrel.Eq{"category": category})
		listQ = listQ.Where(squirrel.Eq{"category": category})
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count books query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting books")
		return nil, 0, fmt.Errorf("error counting books: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list books query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying books")
		return nil, 0, fmt.Errorf("error querying books: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, total, nil
}

// ListAll returns every book, newest first, for the public site.
func (r *BookRepository) ListAll(ctx context.Context) ([]*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns).From("books").
		OrderBy("year DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all books query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all books")
		return nil, fmt.Errorf("error querying books: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetByID retrieves a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns).From("books").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	b, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		logger.Error().Err(err).Int64("bookID", id).Msg("Error scanning book row")
		return nil, fmt.Errorf("error getting book by ID: %w", err)
	}
	return b, nil
}

// Create inserts a new book and returns its assigned ID.
func (r *BookRepository) Create(ctx context.Context, b *models.Book) (int64, error) {
	sql, args, err := r.sb.Insert("books").
		Columns("faculty_id", "title", "publisher", "year", "category", "isbn", "doi", "official_url", "cover_image").
		Values(b.FacultyID, b.Title, b.Publisher, b.Year, b.Category, b.ISBN, b.DOI, b.OfficialURL, b.CoverImage).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create book query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "idx_books_isbn") {
			return 0, apperrors.NewConflictError("book with this ISBN already exists")
		}
		logger.Error().Err(err).Msg("Error executing create book query")
		return 0, fmt.Errorf("error creating book: %w", err)
	}
	return b.ID, nil
}

// Update replaces an existing book in full.
func (r *BookRepository) Update(ctx context.Context, b *models.Book) error {
	sql, args, err := r.sb.Update("books").
		SetMap(map[string]interface{}{
			"faculty_id":   b.FacultyID,
			"title":        b.Title,
			"publisher":    b.Publisher,
			"year":         b.Year,
			"category":     b.Category,
			"isbn":         b.ISBN,
			"doi":          b.DOI,
			"official_url": b.OfficialURL,
			"cover_image":  b.CoverImage,
		}).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update book query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "idx_books_isbn") {
			return apperrors.NewConflictError("book with this ISBN already exists")
		}
		logger.Error().Err(err).Int64("bookID", b.ID).Msg("Error executing update book query")
		return fmt.Errorf("error updating book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}
	return nil
}

// Delete removes a book by ID.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("books").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete book query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bookID", id).Msg("Error executing delete book query")
		return fmt.Errorf("error deleting book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}
	return nil
}

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

// PhDStudentRepository handles PhD student database operations
type PhDStudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPhDStudentRepository creates a new PhDStudentRepository
func NewPhDStudentRepository(db *pgxpool.Pool) *PhDStudentRepository {
	return &PhDStudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const phdStudentColumns = "id, faculty_id, name, university, award_date, thesis_title, role, status, research_area, bio, profile_image, created_at"

func scanPhDStudent(row pgx.Row) (*models.PhDStudent, error) {
	s := &models.PhDStudent{}
	err := row.Scan(&s.ID, &s.FacultyID, &s.Name, &s.University, &s.AwardDate, &s.ThesisTitle,
		&s.Role, &s.Status, &s.ResearchArea, &s.Bio, &s.ProfileImage, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns one page of PhD students plus the total row count.
func (r *PhDStudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.PhDStudent, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("phd_students").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count phd students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting phd students")
		return nil, 0, fmt.Errorf("error counting phd students: %w", err)
	}

	listSQL, listArgs, err := r.sb.Select(phdStudentColumns).From("phd_students").
		OrderBy("id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list phd students query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying phd students")
		return nil, 0, fmt.Errorf("error querying phd students: %w", err)
	}
	defer rows.Close()

	students := []*models.PhDStudent{}
	for rows.Next() {
		s, err := scanPhDStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning phd student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating phd student rows: %w", err)
	}

	return students, total, nil
}

// GetByID retrieves a PhD student by ID
func (r *PhDStudentRepository) GetByID(ctx context.Context, id int64) (*models.PhDStudent, error) {
	sql, args, err := r.sb.Select(phdStudentColumns).From("phd_students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get phd student query: %w", err)
	}

	s, err := scanPhDStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPhDStudentNotFound
		}
		logger.Error().Err(err).Int64("phdStudentID", id).Msg("Error scanning phd student row")
		return nil, fmt.Errorf("error getting phd student by ID: %w", err)
	}
	return s, nil
}

// Create inserts a new PhD student and returns its assigned ID.
func (r *PhDStudentRepository) Create(ctx context.Context, s *models.PhDStudent) (int64, error) {
	sql, args, err := r.sb.Insert("phd_students").
		Columns("faculty_id", "name", "university", "award_date", "thesis_title", "role", "status", "research_area", "bio", "profile_image").
		Values(s.FacultyID, s.Name, s.University, s.AwardDate, s.ThesisTitle, s.Role, s.Status, s.ResearchArea, s.Bio, s.ProfileImage).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create phd student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create phd student query")
		return 0, fmt.Errorf("error creating phd student: %w", err)
	}
	return s.ID, nil
}

// Update replaces an existing PhD student in full.
func (r *PhDStudentRepository) Update(ctx context.Context, s *models.PhDStudent) error {
	sql, args, err := r.sb.Update("phd_students").
		SetMap(map[string]interface{}{
			"faculty_id":    s.FacultyID,
			"name":          s.Name,
			"university":    s.University,
			"award_date":    s.AwardDate,
			"thesis_title":  s.ThesisTitle,
			"role":          s.Role,
			"status":        s.Status,
			"research_area": s.ResearchArea,
			"bio":           s.Bio,
			"profile_image": s.ProfileImage,
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update phd student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("phdStudentID", s.ID).Msg("Error executing update phd student query")
		return fmt.Errorf("error updating phd student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPhDStudentNotFound
	}
	return nil
}

// Delete removes a PhD student by ID.
func (r *PhDStudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("phd_students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete phd student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("phdStudentID", id).Msg("Error executing delete phd student query")
		return fmt.Errorf("error deleting phd student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPhDStudentNotFound
	}
	return nil
}

// ListAll returns every PhD student for the public site.
func (r *PhDStudentRepository) ListAll(ctx context.Context) ([]*models.PhDStudent, error) {
	sql, args, err := r.sb.Select(phdStudentColumns).From("phd_students").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all phd students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all phd students")
		return nil, fmt.Errorf("error querying phd students: %w", err)
	}
	defer rows.Close()

	students := []*models.PhDStudent{}
	for rows.Next() {
		s, err := scanPhDStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning phd student row: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

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

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const projectColumns = "id, faculty_id, title, funding_agency, amount, role, duration, status, description, created_at"

func scanProject(row pgx.Row) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(&p.ID, &p.FacultyID, &p.Title, &p.FundingAgency, &p.Amount, &p.Role,
		&p.Duration, &p.Status, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func projectConds(filter dto.ProjectFilter) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{}
	if filter.Search != "" {
		conds = append(conds, squirrel.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.Status != "" {
		conds = append(conds, squirrel.Eq{"status": filter.Status})
	}
	return conds
}

// List returns one page of projects matching the filter plus the total row
// count for that filter.
func (r *ProjectRepository) List(ctx context.Context, filter dto.ProjectFilter, offset uint64, limit int) ([]*models.Project, int64, error) {
	conds := projectConds(filter)

	countQ := r.sb.Select("COUNT(*)").From("projects")
	listQ := r.sb.Select(projectColumns).From("projects").
		OrderBy("id DESC").
		Offset(offset).
		Limit(uint64(limit))
	for _, c := range conds {
		countQ = countQ.Where(c)
		listQ = listQ.Where(c)
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count projects query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting projects")
		return nil, 0, fmt.Errorf("error counting projects: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying projects")
		return nil, 0, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, total, nil
}

// ListAll returns every project, newest first, for the public site.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns).From("projects").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all projects")
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns).From("projects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	p, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Error scanning project row")
		return nil, fmt.Errorf("error getting project by ID: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns its assigned ID.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) (int64, error) {
	sql, args, err := r.sb.Insert("projects").
		Columns("faculty_id", "title", "funding_agency", "amount", "role", "duration", "status", "description").
		Values(p.FacultyID, p.Title, p.FundingAgency, p.Amount, p.Role, p.Duration, p.Status, p.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create project query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create project query")
		return 0, fmt.Errorf("error creating project: %w", err)
	}
	return p.ID, nil
}

// Update replaces an existing project in full.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	sql, args, err := r.sb.Update("projects").
		SetMap(map[string]interface{}{
			"faculty_id":     p.FacultyID,
			"title":          p.Title,
			"funding_agency": p.FundingAgency,
			"amount":         p.Amount,
			"role":           p.Role,
			"duration":       p.Duration,
			"status":         p.Status,
			"description":    p.Description,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", p.ID).Msg("Error executing update project query")
		return fmt.Errorf("error updating project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project by ID.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error executing delete project query")
		return fmt.Errorf("error deleting project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

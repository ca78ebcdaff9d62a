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

// AdminUserRepository handles admin account database operations
type AdminUserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const adminUserColumns = "id, email, password_hash, full_name, created_at"

func scanAdminUser(row pgx.Row) (*models.AdminUser, error) {
	u := &models.AdminUser{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves an admin account by email
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select(adminUserColumns).From("admin_users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin user query: %w", err)
	}

	u, err := scanAdminUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning admin user row")
		return nil, fmt.Errorf("error getting admin user by email: %w", err)
	}
	return u, nil
}

// GetByID retrieves an admin account by ID
func (r *AdminUserRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select(adminUserColumns).From("admin_users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin user query: %w", err)
	}

	u, err := scanAdminUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminUserNotFound
		}
		logger.Error().Err(err).Int64("adminUserID", id).Msg("Error scanning admin user row")
		return nil, fmt.Errorf("error getting admin user by ID: %w", err)
	}
	return u, nil
}

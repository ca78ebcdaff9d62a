package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dip-mandal/hod-website/internal/config"
	"github.com/dip-mandal/hod-website/internal/db"
	"github.com/dip-mandal/hod-website/internal/pkg/auth"
	"github.com/dip-mandal/hod-website/internal/pkg/dberrors"
)

// CreateDefaultData seeds the records the application assumes exist: the
// bootstrap admin account, the faculty profile row and the contact card.
// Every step is idempotent so restarts are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdminAccount(ctx, dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin account")
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedFacultyProfile(ctx, dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding faculty profile")
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedContactInfo(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding contact info")
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

func seedAdminAccount(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin account seed")
		return nil
	}

	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admin_users WHERE email = $1)`, cfg.Admin.Email).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		hash, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO admin_users (email, password_hash, full_name) VALUES ($1, $2, $3)`,
			cfg.Admin.Email, hash, cfg.Admin.FullName)
		if err != nil {
			// another instance may have seeded the same account concurrently
			if dberrors.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		lgr.Info().Str("email", cfg.Admin.Email).Msg("Bootstrap admin account created")
		return nil
	})
}

func seedFacultyProfile(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM faculty_profile`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		fullName := cfg.Admin.FullName
		if fullName == "" {
			fullName = "Head of Department"
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO faculty_profile (full_name, designation, department, university, email, bio, profile_image)
			 VALUES ($1, '', '', '', $2, '', '')`,
			fullName, cfg.Admin.Email)
		if err != nil {
			return err
		}
		lgr.Info().Msg("Placeholder faculty profile created")
		return nil
	})
}

func seedContactInfo(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM contact_info`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO contact_info (faculty_id, address, phone, email, website, google_scholar, linkedin)
			 VALUES (1, '', '', '', '', '', '')`)
		if err != nil {
			return err
		}
		lgr.Info().Msg("Placeholder contact card created")
		return nil
	})
}

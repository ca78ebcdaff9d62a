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

// ContactRepository handles the contact card singleton and the message inbox.
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const contactInfoColumns = "id, faculty_id, address, phone, email, website, google_scholar, linkedin"

// GetInfo returns the single contact card row.
func (r *ContactRepository) GetInfo(ctx context.Context) (*models.ContactInfo, error) {
	sql, args, err := r.sb.Select(contactInfoColumns).From("contact_info").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact info query: %w", err)
	}

	info := &models.ContactInfo{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&info.ID, &info.FacultyID, &info.Address, &info.Phone,
		&info.Email, &info.Website, &info.GoogleScholar, &info.Linkedin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactInfoNotFound
		}
		logger.Error().Err(err).Msg("Error scanning contact info row")
		return nil, fmt.Errorf("error getting contact info: %w", err)
	}
	return info, nil
}

// UpsertInfo writes the contact card, inserting the row on first save.
func (r *ContactRepository) UpsertInfo(ctx context.Context, info *models.ContactInfo) error {
	existing, err := r.GetInfo(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	if existing == nil {
		sql, args, err := r.sb.Insert("contact_info").
			Columns("faculty_id", "address", "phone", "email", "website", "google_scholar", "linkedin").
			Values(info.FacultyID, info.Address, info.Phone, info.Email, info.Website, info.GoogleScholar, info.Linkedin).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert contact info query: %w", err)
		}
		if err := r.db.QueryRow(ctx, sql, args...).Scan(&info.ID); err != nil {
			logger.Error().Err(err).Msg("Error inserting contact info")
			return fmt.Errorf("error inserting contact info: %w", err)
		}
		return nil
	}

	sql, args, err := r.sb.Update("contact_info").
		SetMap(map[string]interface{}{
			"faculty_id":     info.FacultyID,
			"address":        info.Address,
			"phone":          info.Phone,
			"email":          info.Email,
			"website":        info.Website,
			"google_scholar": info.GoogleScholar,
			"linkedin":       info.Linkedin,
		}).
		Where(squirrel.Eq{"id": existing.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact info query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error updating contact info")
		return fmt.Errorf("error updating contact info: %w", err)
	}
	info.ID = existing.ID
	return nil
}

const contactMessageColumns = "id, name, email, subject, message, created_at"

// ListMessages returns one inbox page plus the total message count, newest first.
func (r *ContactRepository) ListMessages(ctx context.Context, offset uint64, limit int) ([]*models.ContactMessage, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("contact_messages").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count messages query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting contact messages")
		return nil, 0, fmt.Errorf("error counting contact messages: %w", err)
	}

	listSQL, listArgs, err := r.sb.Select(contactMessageColumns).From("contact_messages").
		OrderBy("created_at DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying contact messages")
		return nil, 0, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		m := &models.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning contact message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contact message rows: %w", err)
	}

	return messages, total, nil
}

// CreateMessage stores a visitor-submitted message.
func (r *ContactRepository) CreateMessage(ctx context.Context, m *models.ContactMessage) (int64, error) {
	sql, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "subject", "message").
		Values(m.Name, m.Email, m.Subject, m.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create message query")
		return 0, fmt.Errorf("error creating contact message: %w", err)
	}
	return m.ID, nil
}

// DeleteMessage removes an inbox message by ID.
func (r *ContactRepository) DeleteMessage(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("contact_messages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete message query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error executing delete message query")
		return fmt.Errorf("error deleting contact message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactMessageNotFound
	}
	return nil
}

// CountMessages returns the inbox size for the dashboard card.
func (r *ContactRepository) CountMessages(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("contact_messages").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count messages query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting contact messages: %w", err)
	}
	return total, nil
}

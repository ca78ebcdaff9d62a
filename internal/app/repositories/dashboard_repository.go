package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// DashboardRepository aggregates counts and groupings for the admin dashboard.
type DashboardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CountRows returns COUNT(*) for one table.
func (r *DashboardRepository) CountRows(ctx context.Context, table string) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error counting rows")
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return total, nil
}

// PublicationsByYear returns publication counts grouped by year, oldest
// first, ready for a left-to-right chart axis.
func (r *DashboardRepository) PublicationsByYear(ctx context.Context) ([]dto.YearCount, error) {
	sql, args, err := r.sb.Select("year", "COUNT(*)").From("publications").
		GroupBy("year").
		OrderBy("year ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build publications by year query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying publications by year")
		return nil, fmt.Errorf("error querying publications by year: %w", err)
	}
	defer rows.Close()

	result := []dto.YearCount{}
	for rows.Next() {
		var yc dto.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, fmt.Errorf("error scanning year count row: %w", err)
		}
		result = append(result, yc)
	}
	return result, rows.Err()
}

// FundingByAgency returns summed project funding grouped by agency, largest first.
func (r *DashboardRepository) FundingByAgency(ctx context.Context) ([]dto.AgencyFunding, error) {
	sql, args, err := r.sb.Select("funding_agency", "COALESCE(SUM(amount), 0)").From("projects").
		Where(squirrel.NotEq{"funding_agency": ""}).
		GroupBy("funding_agency").
		OrderBy("2 DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build funding by agency query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying funding by agency")
		return nil, fmt.Errorf("error querying funding by agency: %w", err)
	}
	defer rows.Close()

	result := []dto.AgencyFunding{}
	for rows.Next() {
		var af dto.AgencyFunding
		if err := rows.Scan(&af.FundingAgency, &af.TotalAmount); err != nil {
			return nil, fmt.Errorf("error scanning agency funding row: %w", err)
		}
		result = append(result, af)
	}
	return result, rows.Err()
}

// PatentsByStatus returns patent counts grouped by status.
func (r *DashboardRepository) PatentsByStatus(ctx context.Context) ([]dto.StatusCount, error) {
	sql, args, err := r.sb.Select("status", "COUNT(*)").From("patents").
		GroupBy("status").
		OrderBy("status ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build patents by status query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying patents by status")
		return nil, fmt.Errorf("error querying patents by status: %w", err)
	}
	defer rows.Close()

	result := []dto.StatusCount{}
	for rows.Next() {
		var sc dto.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("error scanning status count row: %w", err)
		}
		result = append(result, sc)
	}
	return result, rows.Err()
}

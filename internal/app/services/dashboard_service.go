package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
)

// DashboardService aggregates the admin dashboard figures.
type DashboardService struct {
	dashboardRepo *repositories.DashboardRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dashboardRepo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetSummary returns the headline counters shown on the dashboard cards.
func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	summary := &dto.DashboardSummary{}

	counts := []struct {
		table string
		dest  *int64
	}{
		{"publications", &summary.TotalPublications},
		{"projects", &summary.TotalProjects},
		{"books", &summary.TotalBooks},
		{"phd_students", &summary.TotalPhDStudents},
		{"patents", &summary.TotalPatents},
		{"awards", &summary.TotalAwards},
		{"contact_messages", &summary.TotalMessages},
	}
	for _, c := range counts {
		total, err := s.dashboardRepo.CountRows(ctx, c.table)
		if err != nil {
			return nil, err
		}
		*c.dest = total
	}
	return summary, nil
}

// GetPublicationsByYear returns publication counts per year for the bar chart.
func (s *DashboardService) GetPublicationsByYear(ctx context.Context) ([]dto.YearCount, error) {
	return s.dashboardRepo.PublicationsByYear(ctx)
}

// GetFundingByAgency returns summed project funding per agency for the pie chart.
func (s *DashboardService) GetFundingByAgency(ctx context.Context) ([]dto.AgencyFunding, error) {
	return s.dashboardRepo.FundingByAgency(ctx)
}

// GetPatentsByStatus returns patent counts per status for the donut chart.
func (s *DashboardService) GetPatentsByStatus(ctx context.Context) ([]dto.StatusCount, error) {
	return s.dashboardRepo.PatentsByStatus(ctx)
}

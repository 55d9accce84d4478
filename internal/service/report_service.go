package service

import (
	"context"

	"github.com/hituru/admin-backend/internal/domain"
)

// ReportCountStore aggregates reports per target
type ReportCountStore interface {
	BoardCounts(ctx context.Context) ([]domain.BoardReportCount, error)
	MemberCounts(ctx context.Context) ([]domain.MemberReportCount, error)
}

// ReportService serves the report aggregates. Report lists use ListService.
type ReportService interface {
	BoardCounts(ctx context.Context) ([]domain.BoardReportCount, error)
	MemberCounts(ctx context.Context) ([]domain.MemberReportCount, error)
}

type reportService struct {
	repo ReportCountStore
}

// NewReportService creates a new ReportService
func NewReportService(repo ReportCountStore) ReportService {
	return &reportService{repo: repo}
}

// BoardCounts returns per-post report counts
func (s *reportService) BoardCounts(ctx context.Context) ([]domain.BoardReportCount, error) {
	return s.repo.BoardCounts(ctx)
}

// MemberCounts returns per-listing member report counts
func (s *reportService) MemberCounts(ctx context.Context) ([]domain.MemberReportCount, error) {
	return s.repo.MemberCounts(ctx)
}

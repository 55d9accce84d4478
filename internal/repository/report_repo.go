package repository

import (
	"context"
	"fmt"

	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

// reportSearch is shared by both report lists. nick and id match the reporter.
var reportSearch = map[string]string{
	"content": "r.content LIKE ?",
	"nick":    "m.mem_nick LIKE ?",
	"id":      "m.mem_id LIKE ?",
}

// BoardReportRepository reads and deletes post reports
type BoardReportRepository = TableRepository[domain.BoardReport, domain.BoardReport]

// NewBoardReportRepository creates a new BoardReportRepository
func NewBoardReportRepository(db *gorm.DB) *BoardReportRepository {
	const cols = "r.rep_idx, r.mem_idx, COALESCE(m.mem_id, '') AS mem_id, r.bo_idx, r.content, r.regdt"
	return newTableRepository[domain.BoardReport, domain.BoardReport](db, listTable{
		name:    "HM_BOARD_REPORT",
		alias:   "r",
		joins:   joinMember("r"),
		key:     "rep_idx",
		order:   "rep_idx DESC",
		columns: cols,
		detail:  cols,
		search:  reportSearch,
	})
}

// MemberReportRepository reads and deletes member reports
type MemberReportRepository = TableRepository[domain.MemberReport, domain.MemberReport]

// NewMemberReportRepository creates a new MemberReportRepository
func NewMemberReportRepository(db *gorm.DB) *MemberReportRepository {
	const cols = "r.rep_idx, r.mem_idx, COALESCE(m.mem_id, '') AS mem_id, r.gd_idx, r.content, r.regdt"
	return newTableRepository[domain.MemberReport, domain.MemberReport](db, listTable{
		name:    "HM_MEMBER_REPORT",
		alias:   "r",
		joins:   joinMember("r"),
		key:     "rep_idx",
		order:   "rep_idx DESC",
		columns: cols,
		detail:  cols,
		search:  reportSearch,
	})
}

// ReportCountRepository aggregates reports per target
type ReportCountRepository struct {
	db *gorm.DB
}

// NewReportCountRepository creates a new ReportCountRepository
func NewReportCountRepository(db *gorm.DB) *ReportCountRepository {
	return &ReportCountRepository{db: db}
}

// reportCountSQL groups table by target. content is the latest report's text.
func reportCountSQL(table, target string) string {
	return fmt.Sprintf(`SELECT r.%[2]s,
	(SELECT x.content FROM %[1]s AS x WHERE x.%[2]s = r.%[2]s ORDER BY x.rep_idx DESC LIMIT 1) AS content,
	COUNT(*) AS report_count,
	(SELECT COUNT(*) FROM %[1]s) AS total_report_count
FROM %[1]s AS r
GROUP BY r.%[2]s
ORDER BY report_count DESC, r.%[2]s DESC`, table, target)
}

// BoardCounts returns per-post report counts, most reported first
func (r *ReportCountRepository) BoardCounts(ctx context.Context) ([]domain.BoardReportCount, error) {
	rows := []domain.BoardReportCount{}
	if err := r.db.WithContext(ctx).Raw(reportCountSQL("HM_BOARD_REPORT", "bo_idx")).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MemberCounts returns per-listing member report counts, most reported first
func (r *ReportCountRepository) MemberCounts(ctx context.Context) ([]domain.MemberReportCount, error) {
	rows := []domain.MemberReportCount{}
	if err := r.db.WithContext(ctx).Raw(reportCountSQL("HM_MEMBER_REPORT", "gd_idx")).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

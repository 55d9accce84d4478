package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

// AnalysisRepository runs the dashboard aggregations over HM_MEMBER and HM_BOARD
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new AnalysisRepository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// periodLabel returns the SQL expression truncating column to a period label.
// Labels sort lexicographically in time order.
func (r *AnalysisRepository) periodLabel(column string, p domain.Period) string {
	if r.db.Dialector.Name() == "sqlite" {
		switch p {
		case domain.PeriodWeek:
			return fmt.Sprintf("strftime('%%Y-W%%W', %s)", column)
		case domain.PeriodMonth:
			return fmt.Sprintf("strftime('%%Y-%%m', %s)", column)
		default:
			return fmt.Sprintf("strftime('%%Y-%%m-%%d', %s)", column)
		}
	}
	switch p {
	case domain.PeriodWeek:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%x-W%%v')", column)
	case domain.PeriodMonth:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", column)
	default:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d')", column)
	}
}

type labelCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:count"`
}

// countByPeriod groups rows matching where by the period of column, most recent first.
// limit <= 0 returns every period.
func (r *AnalysisRepository) countByPeriod(ctx context.Context, column, where string, p domain.Period, limit int) ([]domain.PeriodCount, error) {
	label := r.periodLabel(column, p)
	query := r.db.WithContext(ctx).Table("HM_MEMBER").
		Select(label + " AS label, COUNT(*) AS count").
		Where(column + " IS NOT NULL")
	if where != "" {
		query = query.Where(where)
	}
	query = query.Group(label).Order("label DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []labelCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.PeriodCount, len(rows))
	for i, row := range rows {
		out[i] = domain.PeriodCount{Label: row.Label, Count: row.Count}
	}
	return out, nil
}

// RegistrationsByPeriod counts members registered in each period
func (r *AnalysisRepository) RegistrationsByPeriod(ctx context.Context, p domain.Period, limit int) ([]domain.PeriodCount, error) {
	return r.countByPeriod(ctx, "regdt", "", p, limit)
}

// VisitorsByPeriod counts members whose last visit falls in each period
func (r *AnalysisRepository) VisitorsByPeriod(ctx context.Context, p domain.Period, limit int) ([]domain.PeriodCount, error) {
	return r.countByPeriod(ctx, "todaydt", "deldt IS NULL", p, limit)
}

// ActiveRegistrationsByPeriod counts non-deleted members by registration period, every period
func (r *AnalysisRepository) ActiveRegistrationsByPeriod(ctx context.Context, p domain.Period) ([]domain.PeriodCount, error) {
	return r.countByPeriod(ctx, "regdt", "deldt IS NULL", p, 0)
}

// CountActive counts non-deleted members
func (r *AnalysisRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("HM_MEMBER").Where("deldt IS NULL").Count(&count).Error
	return count, err
}

// CountVisitedOn counts members whose last visit is on day (YYYY-MM-DD)
func (r *AnalysisRepository) CountVisitedOn(ctx context.Context, day string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("HM_MEMBER").Where("DATE(todaydt) = ?", day).Count(&count).Error
	return count, err
}

// CountRegisteredOn counts members registered on day (YYYY-MM-DD)
func (r *AnalysisRepository) CountRegisteredOn(ctx context.Context, day string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("HM_MEMBER").Where("DATE(regdt) = ?", day).Count(&count).Error
	return count, err
}

// EachSexBirth streams (mem_sex, birth) of non-deleted members with a recorded sex and birth date
func (r *AnalysisRepository) EachSexBirth(ctx context.Context, fn func(sex string, birth time.Time)) error {
	rows, err := r.db.WithContext(ctx).Table("HM_MEMBER").
		Select("mem_sex, birth").
		Where("mem_sex IS NOT NULL AND birth IS NOT NULL AND deldt IS NULL").
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sex string
		var birth time.Time
		if err := rows.Scan(&sex, &birth); err != nil {
			return err
		}
		fn(sex, birth)
	}
	return rows.Err()
}

// PostsByCategory counts live general posts per (ca_idx, cd_subtag)
func (r *AnalysisRepository) PostsByCategory(ctx context.Context) ([]domain.PostCategoryCount, error) {
	rows := []domain.PostCategoryCount{}
	err := r.db.WithContext(ctx).Table("HM_BOARD").
		Select("ca_idx, cd_subtag, COUNT(*) AS count").
		Where("isdel = 'N'").
		Group("ca_idx, cd_subtag").
		Order("count DESC, ca_idx ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

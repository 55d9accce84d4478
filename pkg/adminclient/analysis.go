package adminclient

import (
	"context"

	"github.com/hituru/admin-backend/internal/domain"
)

// Analysis calls the dashboard aggregation endpoints
type Analysis struct {
	c *Client
}

func (a *Analysis) series(ctx context.Context, path string, period Period) ([]PeriodCount, error) {
	var out domain.PeriodSeries
	if err := a.c.get(ctx, path+"/"+string(period), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// TotalMembers returns the cumulative member count per period, most recent first
func (a *Analysis) TotalMembers(ctx context.Context, period Period) ([]PeriodCount, error) {
	return a.series(ctx, "/analysis/total-members", period)
}

// Visitors returns members whose last visit falls in each period, most recent first
func (a *Analysis) Visitors(ctx context.Context, period Period) ([]PeriodCount, error) {
	return a.series(ctx, "/analysis/visitors", period)
}

// Registrations returns members registered in each period, most recent first
func (a *Analysis) Registrations(ctx context.Context, period Period) ([]PeriodCount, error) {
	return a.series(ctx, "/analysis/registrations", period)
}

func (a *Analysis) count(ctx context.Context, path, key string) (int64, error) {
	var out map[string]int64
	if err := a.c.get(ctx, path, &out); err != nil {
		return 0, err
	}
	return out[key], nil
}

// DailyVisitors returns today's visitor count
func (a *Analysis) DailyVisitors(ctx context.Context) (int64, error) {
	return a.count(ctx, "/analysis/daily-visitors", "dailyVisitors")
}

// TodayRegistrations returns today's registration count
func (a *Analysis) TodayRegistrations(ctx context.Context) (int64, error) {
	return a.count(ctx, "/analysis/today-registrations", "todayRegistrations")
}

// TotalMemberCount returns the number of active members
func (a *Analysis) TotalMemberCount(ctx context.Context) (int64, error) {
	return a.count(ctx, "/analysis/total-members", "totalMembers")
}

// GenderAgeStats returns the flat (sex, age group) counts
func (a *Analysis) GenderAgeStats(ctx context.Context) ([]GenderAgeStat, error) {
	var out []GenderAgeStat
	err := a.c.get(ctx, "/analysis/gender-age-stats", &out)
	return out, err
}

// PostsByCategory returns general post counts per category
func (a *Analysis) PostsByCategory(ctx context.Context) ([]PostCategoryCount, error) {
	var out []PostCategoryCount
	err := a.c.get(ctx, "/analysis/postscategoryall", &out)
	return out, err
}

// BoardReportCounts returns report counts per reported post
func (a *Analysis) BoardReportCounts(ctx context.Context) ([]BoardReportCount, error) {
	var out []BoardReportCount
	err := a.c.get(ctx, "/reports/boardcount", &out)
	return out, err
}

// MemberReportCounts returns report counts per reported listing
func (a *Analysis) MemberReportCounts(ctx context.Context) ([]MemberReportCount, error) {
	var out []MemberReportCount
	err := a.c.get(ctx, "/reports/membercount", &out)
	return out, err
}

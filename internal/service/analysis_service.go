package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
)

// AnalysisStore is the aggregation data access of the dashboard
type AnalysisStore interface {
	RegistrationsByPeriod(ctx context.Context, p domain.Period, limit int) ([]domain.PeriodCount, error)
	VisitorsByPeriod(ctx context.Context, p domain.Period, limit int) ([]domain.PeriodCount, error)
	ActiveRegistrationsByPeriod(ctx context.Context, p domain.Period) ([]domain.PeriodCount, error)
	CountActive(ctx context.Context) (int64, error)
	CountVisitedOn(ctx context.Context, day string) (int64, error)
	CountRegisteredOn(ctx context.Context, day string) (int64, error)
	EachSexBirth(ctx context.Context, fn func(sex string, birth time.Time)) error
	PostsByCategory(ctx context.Context) ([]domain.PostCategoryCount, error)
}

// AnalysisService computes the dashboard metrics. Series are most recent first.
type AnalysisService interface {
	TotalMembers(ctx context.Context, period string) ([]domain.PeriodCount, error)
	Visitors(ctx context.Context, period string) ([]domain.PeriodCount, error)
	Registrations(ctx context.Context, period string) ([]domain.PeriodCount, error)
	DailyVisitors(ctx context.Context) (int64, error)
	TodayRegistrations(ctx context.Context) (int64, error)
	TotalMemberCount(ctx context.Context) (int64, error)
	GenderAgeStats(ctx context.Context) ([]domain.GenderAgeStat, error)
	PostsByCategory(ctx context.Context) ([]domain.PostCategoryCount, error)
}

type analysisService struct {
	repo       AnalysisStore
	maxPeriods int
	loc        *time.Location
	now        func() time.Time
}

// NewAnalysisService creates a new AnalysisService.
// maxPeriods bounds every series; loc decides where "today" starts.
func NewAnalysisService(repo AnalysisStore, maxPeriods int, loc *time.Location) AnalysisService {
	if loc == nil {
		loc = time.Local
	}
	return &analysisService{repo: repo, maxPeriods: maxPeriods, loc: loc, now: time.Now}
}

func parsePeriod(period string) (domain.Period, error) {
	p, ok := domain.ParsePeriod(period)
	if !ok {
		return "", common.ErrInvalidPeriod
	}
	return p, nil
}

// TotalMembers returns the cumulative active member count at the end of each period
func (s *analysisService) TotalMembers(ctx context.Context, period string) ([]domain.PeriodCount, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ActiveRegistrationsByPeriod(ctx, p)
	if err != nil {
		return nil, err
	}

	// rows are newest first; accumulate from the oldest
	var running int64
	out := make([]domain.PeriodCount, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		running += rows[i].Count
		out[i] = domain.PeriodCount{Label: rows[i].Label, Count: running}
	}
	if s.maxPeriods > 0 && len(out) > s.maxPeriods {
		out = out[:s.maxPeriods]
	}
	return out, nil
}

// Visitors returns the members whose last visit falls in each period
func (s *analysisService) Visitors(ctx context.Context, period string) ([]domain.PeriodCount, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.repo.VisitorsByPeriod(ctx, p, s.maxPeriods)
}

// Registrations returns the members registered in each period
func (s *analysisService) Registrations(ctx context.Context, period string) ([]domain.PeriodCount, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.repo.RegistrationsByPeriod(ctx, p, s.maxPeriods)
}

func (s *analysisService) today() string {
	return s.now().In(s.loc).Format(domain.DateLayout)
}

// DailyVisitors counts members who visited today
func (s *analysisService) DailyVisitors(ctx context.Context) (int64, error) {
	return s.repo.CountVisitedOn(ctx, s.today())
}

// TodayRegistrations counts members who registered today
func (s *analysisService) TodayRegistrations(ctx context.Context) (int64, error) {
	return s.repo.CountRegisteredOn(ctx, s.today())
}

// TotalMemberCount counts non-deleted members
func (s *analysisService) TotalMemberCount(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

type sexAge struct {
	sex   string
	group int
}

// GenderAgeStats buckets members by sex and decade of age.
// Only non-empty cells are returned, sexes in lexical order and buckets in AgeGroups order.
func (s *analysisService) GenderAgeStats(ctx context.Context) ([]domain.GenderAgeStat, error) {
	now := s.now().In(s.loc)
	counts := make(map[sexAge]int64)
	err := s.repo.EachSexBirth(ctx, func(sex string, birth time.Time) {
		sex = strings.TrimSpace(sex)
		if sex == "" {
			sex = domain.UnknownSex
		}
		counts[sexAge{sex: sex, group: ageGroupIndex(domain.AgeAt(birth, now))}]++
	})
	if err != nil {
		return nil, err
	}

	keys := make([]sexAge, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].sex != keys[j].sex {
			return keys[i].sex < keys[j].sex
		}
		return keys[i].group < keys[j].group
	})

	stats := make([]domain.GenderAgeStat, len(keys))
	for i, k := range keys {
		stats[i] = domain.GenderAgeStat{MemSex: k.sex, AgeGroup: domain.AgeGroups[k.group], Count: counts[k]}
	}
	return stats, nil
}

func ageGroupIndex(age int) int {
	group := domain.AgeGroup(age)
	for i, g := range domain.AgeGroups {
		if g == group {
			return i
		}
	}
	return 0
}

// PostsByCategory counts live general posts per category
func (s *analysisService) PostsByCategory(ctx context.Context) ([]domain.PostCategoryCount, error) {
	return s.repo.PostsByCategory(ctx)
}

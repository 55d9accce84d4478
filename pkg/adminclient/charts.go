package adminclient

import (
	"github.com/hituru/admin-backend/internal/domain"
)

// Sexes charted by the dashboard
const (
	SexMale   = "M"
	SexFemale = "F"
)

// GenderAgeSeries holds one count per age bucket for each charted sex.
// Buckets the server did not return are zero, never missing.
type GenderAgeSeries struct {
	AgeGroups []string
	Male      []int64
	Female    []int64
}

// BuildGenderAgeSeries builds the full bucket × {M, F} cross product from the flat stats.
// Rows with other sexes or unknown buckets are ignored.
func BuildGenderAgeSeries(rows []GenderAgeStat) GenderAgeSeries {
	s := GenderAgeSeries{
		AgeGroups: append([]string(nil), domain.AgeGroups...),
		Male:      make([]int64, len(domain.AgeGroups)),
		Female:    make([]int64, len(domain.AgeGroups)),
	}
	index := make(map[string]int, len(domain.AgeGroups))
	for i, g := range domain.AgeGroups {
		index[g] = i
	}
	for _, r := range rows {
		i, ok := index[r.AgeGroup]
		if !ok {
			continue
		}
		switch r.MemSex {
		case SexMale:
			s.Male[i] += r.Count
		case SexFemale:
			s.Female[i] += r.Count
		}
	}
	return s
}

// Change is the period-over-period movement of a series
type Change struct {
	Latest   int64
	Previous int64
	Delta    int64
	Percent  float64
}

// PeriodChange compares the two most recent entries of a most-recent-first series.
// A previous value of 0 counts as +100% when the latest is positive and 0% otherwise.
func PeriodChange(series []PeriodCount) Change {
	var c Change
	if len(series) > 0 {
		c.Latest = series[0].Count
	}
	if len(series) > 1 {
		c.Previous = series[1].Count
	}
	c.Delta = c.Latest - c.Previous

	switch {
	case c.Previous != 0:
		c.Percent = float64(c.Delta) / float64(c.Previous) * 100
	case c.Latest > 0:
		c.Percent = 100
	}
	return c
}

// Chronological returns a copy of a most-recent-first series in oldest-first order
func Chronological(series []PeriodCount) []PeriodCount {
	out := make([]PeriodCount, len(series))
	for i, p := range series {
		out[len(series)-1-i] = p
	}
	return out
}

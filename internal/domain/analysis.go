package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Period is the bucket granularity of the time-series endpoints
type Period string

const (
	PeriodDate  Period = "date"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a path segment as a Period
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(s); p {
	case PeriodDate, PeriodWeek, PeriodMonth:
		return p, true
	}
	return "", false
}

// PeriodCount is one point of a time series. It serializes as {"<label>": count}.
type PeriodCount struct {
	Label string
	Count int64
}

// MarshalJSON implements json.Marshaler
func (p PeriodCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int64{p.Label: p.Count})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PeriodCount) UnmarshalJSON(data []byte) error {
	var m map[string]int64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("period count: expected one key, got %d", len(m))
	}
	for k, v := range m {
		p.Label, p.Count = k, v
	}
	return nil
}

// PeriodSeries wraps a series, most recent period first
type PeriodSeries struct {
	Data []PeriodCount `json:"data"`
}

// GenderAgeStat is one (sex, age bucket) cell
type GenderAgeStat struct {
	MemSex   string `json:"mem_sex"`
	AgeGroup string `json:"age_group"`
	Count    int64  `json:"count"`
}

// UnknownSex replaces an empty mem_sex
const UnknownSex = "Unknown"

// AgeGroups lists the buckets in display order
var AgeGroups = []string{"10대", "20대", "30대", "40대", "50대", "60대", "70대 이상"}

// AgeGroup maps an age in years to its bucket. Anything under 20 lands in 10대.
func AgeGroup(age int) string {
	switch {
	case age < 20:
		return AgeGroups[0]
	case age >= 70:
		return AgeGroups[6]
	default:
		return AgeGroups[age/10-1]
	}
}

// AgeAt returns the age in full years at now
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

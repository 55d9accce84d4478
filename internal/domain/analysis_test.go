package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAgeGroup(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{5, "10대"},
		{19, "10대"},
		{20, "20대"},
		{29, "20대"},
		{35, "30대"},
		{49, "40대"},
		{50, "50대"},
		{69, "60대"},
		{70, "70대 이상"},
		{101, "70대 이상"},
	}
	for _, tt := range tests {
		if got := AgeGroup(tt.age); got != tt.want {
			t.Errorf("AgeGroup(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestAgeAt_BeforeAndAfterBirthday(t *testing.T) {
	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	if got := AgeAt(birth, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)); got != 24 {
		t.Errorf("Expected 24 the day before the birthday, got %d", got)
	}
	if got := AgeAt(birth, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)); got != 25 {
		t.Errorf("Expected 25 on the birthday, got %d", got)
	}
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"date", "week", "month"} {
		if _, ok := ParsePeriod(s); !ok {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "year", "DATE"} {
		if _, ok := ParsePeriod(s); ok {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestPeriodCount_JSON(t *testing.T) {
	b, err := json.Marshal(PeriodSeries{Data: []PeriodCount{{Label: "2025-01-02", Count: 7}}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(b) != `{"data":[{"2025-01-02":7}]}` {
		t.Errorf("Unexpected JSON: %s", b)
	}

	var pc PeriodCount
	if err := json.Unmarshal([]byte(`{"2025-W01":3}`), &pc); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if pc.Label != "2025-W01" || pc.Count != 3 {
		t.Errorf("Unexpected decode: %+v", pc)
	}

	if err := json.Unmarshal([]byte(`{"a":1,"b":2}`), &pc); err == nil {
		t.Error("Expected error for multi-key object")
	}
}

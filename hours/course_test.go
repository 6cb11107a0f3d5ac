package hours

import (
	"errors"
	"testing"
	"time"
)

func schoolYear() Course {
	return Course{
		ID:   2,
		Name: "4º ESO",
		Trimesters: [TrimesterCount]Trimester{
			{Start: NewDate(2023, 9, 11), End: NewDate(2023, 12, 22)},
			{Start: NewDate(2024, 1, 8), End: NewDate(2024, 3, 22)},
			{Start: NewDate(2024, 4, 1), End: NewDate(2024, 6, 21)},
		},
	}
}

func TestCourseTrimester(t *testing.T) {
	course := schoolYear()
	start, end, err := course.Trimester(2)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(day(2024, 1, 8)) || !end.Equal(day(2024, 3, 22)) {
		t.Errorf("unexpected range %s", RangeKey(start, end))
	}

	if _, _, err := course.Trimester(0); !errors.Is(err, ErrInvalidTrimester) {
		t.Errorf("expected ErrInvalidTrimester, got %v", err)
	}
	course.Trimesters[2].End.Valid = false
	if _, _, err := course.Trimester(3); !errors.Is(err, ErrMissingConfiguration) {
		t.Errorf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestCourseTrimesterOf(t *testing.T) {
	course := schoolYear()
	tests := []struct {
		date     time.Time
		expected int
	}{
		{day(2023, 9, 11), 1},
		{day(2023, 12, 22), 1},
		{day(2023, 12, 27), 0},
		{time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC), 2},
		{day(2024, 6, 21), 3},
		{day(2024, 7, 1), 0},
	}
	for _, tt := range tests {
		if got := course.TrimesterOf(tt.date); got != tt.expected {
			t.Errorf("%s: expected trimester %d, got %d", tt.date.Format(time.DateOnly), tt.expected, got)
		}
	}
}

func TestDateOf(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	got := DateOf(time.Date(2024, 2, 29, 23, 30, 0, 0, zone))
	if !got.Equal(day(2024, 2, 29)) {
		t.Errorf("expected 2024-02-29, got %s", got)
	}
}

package model

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		wantRate  int
	}{
		{name: "empty", completed: 0, total: 0, wantRate: 0},
		{name: "none done", completed: 0, total: 4, wantRate: 0},
		{name: "all done", completed: 3, total: 3, wantRate: 100},
		{name: "one third", completed: 1, total: 3, wantRate: 33},
		{name: "two thirds rounds up", completed: 2, total: 3, wantRate: 67},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tasks := make([]Task, 0, tc.total)
			for i := 0; i < tc.total; i++ {
				tasks = append(tasks, Task{Completed: i < tc.completed})
			}
			got := ComputeStats(tasks)
			if got.Total != tc.total || got.Completed != tc.completed {
				t.Fatalf("unexpected counts: %+v", got)
			}
			if got.Rate != tc.wantRate {
				t.Fatalf("expected rate %d, got %d", tc.wantRate, got.Rate)
			}
			if got.Rate < 0 || got.Rate > 100 {
				t.Fatalf("rate out of range: %d", got.Rate)
			}
		})
	}
}

func TestDateStrip(t *testing.T) {
	today := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	strip := DateStrip(today)
	if len(strip) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(strip))
	}
	want := []string{"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02", "2026-09-03"}
	for i, w := range want {
		if strip[i].Date != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, strip[i].Date)
		}
	}
	if strip[2].Day != 1 {
		t.Fatalf("expected day-of-month 1 at center, got %d", strip[2].Day)
	}
}

func TestMonthMarkers(t *testing.T) {
	tasks := []Task{
		{ID: "1", Date: "2026-09-01"},
		{ID: "2", Date: "2026-09-15"},
		{ID: "3", Date: "2026-10-01"},
	}
	marks := MonthMarkers(tasks, 2026, time.September)
	if len(marks) != 30 {
		t.Fatalf("expected 30 days in September, got %d", len(marks))
	}
	if !marks[1] || !marks[15] {
		t.Fatal("expected markers on days 1 and 15")
	}
	if marks[2] || marks[30] {
		t.Fatal("unexpected markers on empty days")
	}

	feb := MonthMarkers(nil, 2024, time.February)
	if len(feb) != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", len(feb))
	}
}

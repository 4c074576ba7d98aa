package model

import "testing"

const day = "2026-09-01"

func dayTask(id, title, tm string, scheduled, completed bool) Task {
	return Task{
		ID:        id,
		Title:     title,
		Date:      day,
		Time:      tm,
		Priority:  PriorityLow,
		Category:  CategoryPersonal,
		Scheduled: scheduled,
		Completed: completed,
	}
}

func TestTasksOnFiltersByDate(t *testing.T) {
	tasks := []Task{
		dayTask("1", "a", "", false, false),
		{ID: "2", Title: "b", Date: "2026-09-02", Priority: PriorityLow, Category: CategoryWork},
		dayTask("3", "c", "", false, true),
	}
	got := TasksOn(tasks, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestScheduledTimelineOrdering(t *testing.T) {
	tasks := []Task{
		dayTask("lunch", "Lunch", "12:30", true, false),
		dayTask("standup", "Standup", "09:00", true, false),
		dayTask("late", "Late call", "21:15", true, false),
	}
	got := ScheduledTimeline(tasks, day)
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	want := []string{"standup", "lunch", "late"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Time > got[i].Time {
			t.Fatalf("timeline not non-decreasing: %q > %q", got[i-1].Time, got[i].Time)
		}
	}
}

func TestScheduledTimelineExcludesCompletedAndUnscheduled(t *testing.T) {
	tasks := []Task{
		dayTask("done", "Done", "08:00", true, true),
		dayTask("milk", "Buy milk", "", false, false),
		dayTask("standup", "Standup", "09:00", true, false),
	}
	got := ScheduledTimeline(tasks, day)
	if len(got) != 1 || got[0].ID != "standup" {
		t.Fatalf("expected only standup, got %+v", got)
	}
}

func TestScheduledTimelineUntimedSortsLast(t *testing.T) {
	tasks := []Task{
		dayTask("untimed", "Sometime", "", true, false),
		dayTask("timed", "Standup", "09:00", true, false),
	}
	got := ScheduledTimeline(tasks, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != "timed" || got[1].ID != "untimed" {
		t.Fatalf("untimed task should sort last, got %q then %q", got[0].ID, got[1].ID)
	}
}

func TestRemainingList(t *testing.T) {
	tasks := []Task{
		dayTask("milk", "Buy milk", "", false, false),
		dayTask("standup", "Standup", "09:00", true, false),
		dayTask("done", "Done call", "08:00", true, true),
	}
	got := Remaining(tasks, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != "milk" || got[1].ID != "done" {
		t.Fatalf("unexpected remaining set: %+v", got)
	}
	for _, timeline := range ScheduledTimeline(tasks, day) {
		if timeline.ID == "milk" {
			t.Fatal("unscheduled task leaked into timeline")
		}
	}
}

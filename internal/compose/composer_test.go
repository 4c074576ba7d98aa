package compose

import (
	"testing"
	"time"

	"github.com/sandeepkv93/taskdash/internal/assist"
	"github.com/sandeepkv93/taskdash/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
}

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Mode() != ModeAssisted {
		t.Fatalf("create flow should start assisted, got %q", c.Mode())
	}
	if c.Editing() {
		t.Fatal("fresh composer must not be editing")
	}
	if c.Time != "09:00" || c.Priority != model.PriorityMedium || c.Category != model.CategoryPersonal || !c.Scheduled {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestNewEditPrefills(t *testing.T) {
	task := model.Task{
		ID:        "42",
		Title:     "Standup",
		Date:      "2026-08-30",
		Time:      "09:30",
		Priority:  model.PriorityHigh,
		Category:  model.CategoryWork,
		Scheduled: true,
		Completed: true,
	}
	c := NewEdit(task)
	if c.Mode() != ModeManual {
		t.Fatalf("edit flow should start manual, got %q", c.Mode())
	}
	if c.Title != "Standup" || c.Time != "09:30" {
		t.Fatalf("fields not prefilled: %+v", c)
	}

	got, ok := c.Task(fixedNow())
	if !ok {
		t.Fatal("expected commit to be allowed")
	}
	if got.ID != "42" || got.Date != "2026-08-30" || !got.Completed {
		t.Fatalf("edit must keep id/date/completed: %+v", got)
	}
}

func TestCommitBlockedOnEmptyTitle(t *testing.T) {
	c := New()
	c.SwitchToManual()
	c.Title = "   "
	if c.CanCommit() {
		t.Fatal("blank title must not commit")
	}
	if _, ok := c.Task(fixedNow()); ok {
		t.Fatal("Task must refuse without a title")
	}
}

func TestCommitCreateAssignsIDAndDate(t *testing.T) {
	c := New()
	c.SwitchToManual()
	c.Title = "Buy milk"
	c.Scheduled = false

	got, ok := c.Task(fixedNow())
	if !ok {
		t.Fatal("expected commit")
	}
	if got.ID == "" {
		t.Fatal("expected assigned id")
	}
	if got.Date != "2026-09-01" {
		t.Fatalf("expected today's date, got %q", got.Date)
	}
	if got.Completed {
		t.Fatal("new task must start incomplete")
	}
	if got.Time != "" {
		t.Fatalf("unscheduled commit must clear time, got %q", got.Time)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("committed task must validate: %v", err)
	}
}

func TestToggleScheduledOffClearsTimeOnCommit(t *testing.T) {
	c := New()
	c.SwitchToManual()
	c.Title = "Walk"
	c.Time = "18:00"
	c.Scheduled = false
	got, _ := c.Task(fixedNow())
	if got.Time != "" {
		t.Fatalf("expected cleared time, got %q", got.Time)
	}
}

func TestModeSwitchRetainsFields(t *testing.T) {
	c := New()
	c.SwitchToManual()
	c.Title = "Draft title"
	c.Description = "Notes"
	c.SwitchToAssisted()
	if c.Title != "Draft title" || c.Description != "Notes" {
		t.Fatal("switching to assisted must not clear manual fields")
	}
	c.SwitchToManual()
	if c.Title != "Draft title" {
		t.Fatal("switching back must not clear fields either")
	}
}

func TestEditCannotSwitchToAssisted(t *testing.T) {
	c := NewEdit(model.Task{ID: "1", Title: "x", Date: "2026-09-01", Priority: model.PriorityLow, Category: model.CategoryWork})
	c.SwitchToAssisted()
	if c.Mode() != ModeManual {
		t.Fatal("edit flow has no assisted mode")
	}
}

func TestBeginParseRequiresSentence(t *testing.T) {
	c := New()
	c.Sentence = "   "
	if _, _, ok := c.BeginParse(); ok {
		t.Fatal("empty sentence must not start a parse")
	}
	if c.Busy() {
		t.Fatal("no-op submit must not enter busy state")
	}
}

func TestBeginParseSingleFlight(t *testing.T) {
	c := New()
	c.Sentence = "book dentist tomorrow at 3pm"
	_, gen, ok := c.BeginParse()
	if !ok || !c.Busy() {
		t.Fatal("expected parse started")
	}
	if _, _, ok := c.BeginParse(); ok {
		t.Fatal("second submit while in flight must be refused")
	}
	if !c.FailParse(gen) {
		t.Fatal("expected failure to clear busy state")
	}
	if c.Busy() {
		t.Fatal("busy must clear after failure")
	}
}

func TestParseFailureLeavesStateForRetry(t *testing.T) {
	c := New()
	c.Sentence = "asdf1234"
	_, gen, _ := c.BeginParse()
	c.FailParse(gen)

	if c.Mode() != ModeAssisted {
		t.Fatal("failure must keep assisted mode")
	}
	if c.Sentence != "asdf1234" {
		t.Fatal("failure must keep the sentence for resubmission")
	}
	if _, _, ok := c.BeginParse(); !ok {
		t.Fatal("resubmission with the same input must be possible")
	}
}

func TestApplyDraftPopulatesAndSwitchesToManual(t *testing.T) {
	c := New()
	c.Sentence = "Book a table at Oishi tonight at 8"
	_, gen, _ := c.BeginParse()

	applied := c.ApplyDraft(gen, assist.Draft{
		Title:       "Book a table at Oishi",
		Description: "Dinner",
		Time:        "20:00",
		Priority:    model.PriorityMedium,
		Category:    model.CategoryPersonal,
	})
	if !applied {
		t.Fatal("expected draft applied")
	}
	if c.Mode() != ModeManual {
		t.Fatal("successful parse must hand over to manual review")
	}
	if c.Title != "Book a table at Oishi" || c.Time != "20:00" {
		t.Fatalf("fields not populated: %+v", c)
	}
	if c.Busy() {
		t.Fatal("busy must clear after apply")
	}
}

func TestApplyDraftKeepsExistingOptionalFields(t *testing.T) {
	c := New()
	c.Description = "keep me"
	c.Time = "07:30"
	c.Sentence = "do the thing"
	_, gen, _ := c.BeginParse()
	c.ApplyDraft(gen, assist.Draft{Title: "The thing", Priority: model.PriorityLow, Category: model.CategoryWork})
	if c.Description != "keep me" || c.Time != "07:30" {
		t.Fatalf("absent optional draft fields must not clobber: %+v", c)
	}
}

func TestStaleDraftDiscarded(t *testing.T) {
	c := New()
	c.Sentence = "first"
	_, oldGen, _ := c.BeginParse()
	c.FailParse(oldGen)
	c.Sentence = "second"
	_, _, _ = c.BeginParse()

	if c.ApplyDraft(oldGen, assist.Draft{Title: "Stale", Priority: model.PriorityLow, Category: model.CategoryWork}) {
		t.Fatal("stale generation must be discarded")
	}
	if c.Title == "Stale" {
		t.Fatal("stale draft leaked into fields")
	}
	if !c.Busy() {
		t.Fatal("current request must stay in flight")
	}
}

func TestStaleFailureIgnored(t *testing.T) {
	c := New()
	c.Sentence = "first"
	_, oldGen, _ := c.BeginParse()
	c.FailParse(oldGen)
	c.Sentence = "second"
	_, _, _ = c.BeginParse()

	if c.FailParse(oldGen) {
		t.Fatal("stale failure must be ignored")
	}
	if !c.Busy() {
		t.Fatal("current request must stay in flight")
	}
}

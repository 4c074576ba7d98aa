// Package compose builds a new or edited task from either manual field
// entry or a draft handed back by the external parser. It is a plain
// state machine with no UI dependencies; the update loop drives it.
package compose

import (
	"strings"
	"time"

	"github.com/sandeepkv93/taskdash/internal/assist"
	"github.com/sandeepkv93/taskdash/internal/model"
)

type Mode string

const (
	ModeAssisted Mode = "assisted"
	ModeManual   Mode = "manual"
)

const (
	defaultTime     = "09:00"
	defaultPriority = model.PriorityMedium
	defaultCategory = model.CategoryPersonal
)

// Composer holds the full manual field set alongside the current mode,
// so switching modes is a presentation change and never loses data.
type Composer struct {
	mode    Mode
	initial *model.Task

	Title       string
	Description string
	Time        string
	Priority    model.Priority
	Category    model.Category
	Scheduled   bool

	Sentence string

	// Single-flight guard for the external parse: busy blocks
	// resubmission, generation invalidates late responses.
	busy       bool
	generation int
}

// New returns a composer for creating a task. Assisted mode is the
// entry point, matching the create flow.
func New() *Composer {
	return &Composer{
		mode:      ModeAssisted,
		Time:      defaultTime,
		Priority:  defaultPriority,
		Category:  defaultCategory,
		Scheduled: true,
	}
}

// NewEdit returns a composer prefilled from an existing task. Editing
// starts in manual mode; the assisted shortcut is a creation affordance.
func NewEdit(task model.Task) *Composer {
	c := &Composer{
		mode:        ModeManual,
		initial:     &task,
		Title:       task.Title,
		Description: task.Description,
		Time:        task.Time,
		Priority:    task.Priority,
		Category:    task.Category,
		Scheduled:   task.Scheduled,
	}
	if c.Time == "" {
		c.Time = defaultTime
	}
	return c
}

func (c *Composer) Mode() Mode    { return c.mode }
func (c *Composer) Editing() bool { return c.initial != nil }
func (c *Composer) Busy() bool    { return c.busy }

// SwitchToManual flips to manual mode. Already-entered fields stay.
func (c *Composer) SwitchToManual() { c.mode = ModeManual }

// SwitchToAssisted flips to assisted mode. Manual fields are retained
// until a successful parse overwrites them.
func (c *Composer) SwitchToAssisted() {
	if c.Editing() {
		return
	}
	c.mode = ModeAssisted
}

// CanSubmit reports whether an assisted parse may be started: a
// non-blank sentence and no request already in flight.
func (c *Composer) CanSubmit() bool {
	return !c.busy && strings.TrimSpace(c.Sentence) != ""
}

// BeginParse enters the busy sub-state and returns the sentence plus the
// generation token the eventual result must present. ok is false when
// submission is not allowed, in which case nothing changes.
func (c *Composer) BeginParse() (sentence string, generation int, ok bool) {
	if !c.CanSubmit() {
		return "", 0, false
	}
	c.busy = true
	c.generation++
	return strings.TrimSpace(c.Sentence), c.generation, true
}

// ApplyDraft merges a parse result into the manual fields and switches
// to manual mode for review. A result with a stale generation is
// discarded and the composer is left untouched.
func (c *Composer) ApplyDraft(generation int, draft assist.Draft) bool {
	if generation != c.generation || !c.busy {
		return false
	}
	c.busy = false
	c.Title = draft.Title
	if draft.Description != "" {
		c.Description = draft.Description
	}
	if draft.Time != "" {
		c.Time = draft.Time
	}
	c.Priority = draft.Priority
	c.Category = draft.Category
	c.mode = ModeManual
	return true
}

// FailParse clears the busy sub-state after an unsuccessful parse. The
// composer stays in assisted mode with all fields unchanged so the user
// can resubmit. Stale failures are ignored.
func (c *Composer) FailParse(generation int) bool {
	if generation != c.generation || !c.busy {
		return false
	}
	c.busy = false
	return true
}

// CanCommit gates the manual save: title must be non-empty.
func (c *Composer) CanCommit() bool {
	return strings.TrimSpace(c.Title) != ""
}

// Task assembles the committed task. Editing keeps the original
// identifier, date, and completion state; creation assigns a fresh
// identifier and today's date. ok is false when commit is not allowed.
func (c *Composer) Task(now time.Time) (model.Task, bool) {
	if !c.CanCommit() {
		return model.Task{}, false
	}
	task := model.Task{
		Title:       strings.TrimSpace(c.Title),
		Description: c.Description,
		Time:        c.Time,
		Priority:    c.Priority,
		Category:    c.Category,
		Scheduled:   c.Scheduled,
	}
	if c.initial != nil {
		task.ID = c.initial.ID
		task.Date = c.initial.Date
		task.Completed = c.initial.Completed
	} else {
		task.ID = model.NewID(now)
		task.Date = now.Format(model.DateLayout)
	}
	return task.Normalize(), true
}

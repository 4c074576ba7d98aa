package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrInvalidDate     = errors.New("model: invalid task date")
	ErrInvalidTime     = errors.New("model: invalid task time")
)

// DateLayout is the wall-clock calendar date carried by every task.
// There is no timezone component; dates compare as plain strings.
const DateLayout = "2006-01-02"

// TimeLayout is the fixed-width 24-hour time of day carried by scheduled
// tasks. The zero padding makes lexicographic ordering match clock order.
const TimeLayout = "15:04"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryWork     Category = "WORK"
	CategoryPersonal Category = "PERSONAL"
	CategoryFamily   Category = "FAMILY"
	CategoryHealth   Category = "HEALTH"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryFamily, CategoryHealth:
		return true
	default:
		return false
	}
}

// Task is the sole persistent entity. Time is present only when Scheduled
// is set; Normalize enforces that before a task is committed.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	Priority    Priority
	Category    Category
	Completed   bool
	Scheduled   bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.Scheduled {
		if !ValidTime(t.Time) {
			return fmt.Errorf("%w: %q", ErrInvalidTime, t.Time)
		}
	} else if t.Time != "" {
		return fmt.Errorf("%w: time set on unscheduled task", ErrInvalidTime)
	}
	return nil
}

// Normalize clears the time of day on unscheduled tasks so the
// time-iff-scheduled invariant holds regardless of what the editing
// surface left behind.
func (t Task) Normalize() Task {
	if !t.Scheduled {
		t.Time = ""
	}
	return t
}

// NewID derives a collection-unique identifier from the given instant.
// Nanosecond resolution keeps consecutive creations distinct within a
// single-threaded event loop.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}

// ValidTime reports whether v is a well-formed zero-padded HH:mm string.
func ValidTime(v string) bool {
	if len(v) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, v)
	return err == nil
}

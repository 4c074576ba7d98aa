package model

import "sort"

// TasksOn returns the tasks whose date equals the reference date, in
// collection order.
func TasksOn(tasks []Task, date string) []Task {
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// ScheduledTimeline returns the active scheduled tasks for the reference
// date, ascending by time of day. A scheduled task without a time is a
// state the model disallows, but if one survives (old data), it sorts
// after every timed task rather than accidentally first.
func ScheduledTimeline(tasks []Task, date string) []Task {
	out := make([]Task, 0)
	for _, t := range TasksOn(tasks, date) {
		if t.Scheduled && !t.Completed {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return timelineLess(out[i].Time, out[j].Time)
	})
	return out
}

func timelineLess(a, b string) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	return a < b
}

// Remaining returns the day's tasks outside the active timeline: the
// unscheduled ones plus anything already completed.
func Remaining(tasks []Task, date string) []Task {
	out := make([]Task, 0)
	for _, t := range TasksOn(tasks, date) {
		if !t.Scheduled || t.Completed {
			out = append(out, t)
		}
	}
	return out
}

package update

import (
	"time"

	"github.com/sandeepkv93/taskdash/internal/compose"
	"github.com/sandeepkv93/taskdash/internal/model"
)

func (m Model) dayTasks() []model.Task {
	return model.TasksOn(m.Store.Tasks(), m.SelectedDate)
}

// dashboardRows is the navigable list of the dashboard: the scheduled
// timeline followed by the remaining section, one flat cursor space.
func (m Model) dashboardRows() []model.Task {
	tasks := m.Store.Tasks()
	return append(
		model.ScheduledTimeline(tasks, m.SelectedDate),
		model.Remaining(tasks, m.SelectedDate)...,
	)
}

func (m *Model) clampCursors() {
	if rows := len(m.dashboardRows()); m.dashCursor >= rows {
		m.dashCursor = rows - 1
	}
	if m.dashCursor < 0 {
		m.dashCursor = 0
	}
	if day := len(m.dayTasks()); m.calCursor >= day {
		m.calCursor = day - 1
	}
	if m.calCursor < 0 {
		m.calCursor = 0
	}
}

func (m *Model) shiftSelectedDate(days int) {
	d, err := time.Parse(model.DateLayout, m.SelectedDate)
	if err != nil {
		d = m.now()
	}
	d = d.AddDate(0, 0, days)
	m.SelectedDate = d.Format(model.DateLayout)
	m.calMonth = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	m.dashCursor = 0
	m.calCursor = 0
}

// shiftCalendarMonth pages the visible month without moving the
// selected date. Selecting a day snaps the month back in sync.
func (m *Model) shiftCalendarMonth(months int) {
	m.calMonth = m.calMonth.AddDate(0, months, 0)
}

func (m Model) detailReturn() Screen {
	if m.detailFrom == ScreenCalendar {
		return ScreenCalendar
	}
	return ScreenDashboard
}

func (m *Model) openDetail(id string, from Screen) {
	if _, ok := m.Store.Get(id); !ok {
		m.CurrentScreen = ScreenDashboard
		return
	}
	m.SelectedTaskID = id
	m.detailFrom = from
	m.CurrentScreen = ScreenDetail
}

func (m *Model) openCreate() {
	m.Composer = compose.New()
	m.focus = focusTitle
	m.syncComposerInputs()
	m.syncComposerFocus()
	m.Status = StatusBar{}
	m.CurrentScreen = ScreenCreate
}

// openEdit prefills the composer from the selected task. A missing task
// falls back to the dashboard.
func (m *Model) openEdit(id string) {
	task, ok := m.Store.Get(id)
	if !ok {
		m.SelectedTaskID = ""
		m.CurrentScreen = ScreenDashboard
		return
	}
	m.SelectedTaskID = id
	m.Composer = compose.NewEdit(task)
	m.focus = focusTitle
	m.syncComposerInputs()
	m.syncComposerFocus()
	m.Status = StatusBar{}
	m.CurrentScreen = ScreenEdit
}

// closeComposer abandons the draft. Edits return to the detail view of
// the task being edited, creation returns to the hub.
func (m *Model) closeComposer() {
	editing := m.CurrentScreen == ScreenEdit
	m.Composer = nil
	if editing {
		if _, ok := m.Store.Get(m.SelectedTaskID); ok {
			m.CurrentScreen = ScreenDetail
			return
		}
		m.SelectedTaskID = ""
	}
	m.CurrentScreen = ScreenDashboard
}

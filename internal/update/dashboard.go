package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/views"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.dashboardRows()
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Down:
		if m.dashCursor < len(rows)-1 {
			m.dashCursor++
		}
	case m.Keys.Up:
		if m.dashCursor > 0 {
			m.dashCursor--
		}
	case m.Keys.Left:
		m.shiftSelectedDate(-1)
	case m.Keys.Right:
		m.shiftSelectedDate(1)
	case m.Keys.Toggle:
		if m.dashCursor < len(rows) {
			if err := m.Store.Toggle(context.Background(), rows[m.dashCursor].ID); err != nil {
				m.Status = errStatus(err)
			}
		}
	case m.Keys.Open:
		if m.dashCursor < len(rows) {
			m.openDetail(rows[m.dashCursor].ID, ScreenDashboard)
		}
	case m.Keys.Add:
		m.openCreate()
	case m.Keys.Calendar:
		m.calCursor = 0
		m.CurrentScreen = ScreenCalendar
	case m.Keys.Profile:
		m.CurrentScreen = ScreenProfile
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m Model) dashboardData() views.DashboardData {
	tasks := m.Store.Tasks()
	day := m.dayTasks()
	timeline := model.ScheduledTimeline(tasks, m.SelectedDate)
	remaining := model.Remaining(tasks, m.SelectedDate)

	done := 0
	for _, t := range day {
		if t.Completed {
			done++
		}
	}

	today := m.now()
	strip := make([]views.StripEntryData, 0, 5)
	for _, entry := range model.DateStrip(today) {
		strip = append(strip, views.StripEntryData{
			Weekday: entry.Weekday,
			Day:     entry.Day,
			Active:  entry.Date == m.SelectedDate,
			IsToday: entry.Date == today.Format(model.DateLayout),
		})
	}

	data := views.DashboardData{
		Date:           m.SelectedDate,
		Strip:          strip,
		ScheduledCount: len(timeline),
		DoneCount:      done,
	}
	for i, t := range timeline {
		data.Timeline = append(data.Timeline, m.taskRow(t, i == m.dashCursor))
	}
	for i, t := range remaining {
		data.Remaining = append(data.Remaining, m.taskRow(t, len(timeline)+i == m.dashCursor))
	}
	return data
}

func (m Model) taskRow(t model.Task, selected bool) views.TaskRowData {
	return views.TaskRowData{
		ID:        t.ID,
		Title:     t.Title,
		Time:      t.Time,
		Priority:  string(t.Priority),
		Category:  string(t.Category),
		Completed: t.Completed,
		Selected:  selected,
	}
}

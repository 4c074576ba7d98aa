package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.dayTasks()
	switch msg.String() {
	case m.Keys.Back:
		m.CurrentScreen = ScreenDashboard
	case m.Keys.Left:
		m.shiftSelectedDate(-1)
	case m.Keys.Right:
		m.shiftSelectedDate(1)
	case "[":
		m.shiftCalendarMonth(-1)
	case "]":
		m.shiftCalendarMonth(1)
	case m.Keys.Down:
		if m.calCursor < len(day)-1 {
			m.calCursor++
		}
	case m.Keys.Up:
		if m.calCursor > 0 {
			m.calCursor--
		}
	case m.Keys.Toggle:
		if m.calCursor < len(day) {
			if err := m.Store.Toggle(context.Background(), day[m.calCursor].ID); err != nil {
				m.Status = errStatus(err)
			}
		}
	case m.Keys.Open:
		if m.calCursor < len(day) {
			m.openDetail(day[m.calCursor].ID, ScreenCalendar)
		}
	case m.Keys.Add:
		m.openCreate()
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m Model) calendarData() views.CalendarData {
	year, month := m.calMonth.Year(), m.calMonth.Month()
	marked := model.MonthMarkers(m.Store.Tasks(), year, month)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())
	prevLast := first.AddDate(0, 0, -1).Day()

	cells := make([]views.CalendarDayData, 0, 42)
	for i := lead; i > 0; i-- {
		cells = append(cells, views.CalendarDayData{Day: prevLast - i + 1})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
		cells = append(cells, views.CalendarDayData{
			Day:      d,
			InMonth:  true,
			Selected: date == m.SelectedDate,
			Marked:   marked[d],
		})
	}
	for next := 1; len(cells)%7 != 0; next++ {
		cells = append(cells, views.CalendarDayData{Day: next})
	}

	weeks := make([][]views.CalendarDayData, 0, len(cells)/7)
	for start := 0; start < len(cells); start += 7 {
		weeks = append(weeks, cells[start:start+7])
	}

	data := views.CalendarData{
		MonthTitle:   m.calMonth.Format("January 2006"),
		Weeks:        weeks,
		SelectedDate: m.SelectedDate,
	}
	for i, t := range m.dayTasks() {
		data.DayTasks = append(data.DayTasks, m.taskRow(t, i == m.calCursor))
	}
	return data
}

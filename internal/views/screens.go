package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID        string
	Title     string
	Time      string
	Priority  string
	Category  string
	Completed bool
	Selected  bool
}

type StripEntryData struct {
	Weekday string
	Day     int
	Active  bool
	IsToday bool
}

type DashboardData struct {
	Date           string
	Strip          []StripEntryData
	ScheduledCount int
	DoneCount      int
	Timeline       []TaskRowData
	Remaining      []TaskRowData
}

func RenderDashboard(data DashboardData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("dashboard: %s\n", data.Date))

	cells := make([]string, 0, len(data.Strip))
	for _, entry := range data.Strip {
		cell := fmt.Sprintf("%s %2d", entry.Weekday, entry.Day)
		switch {
		case entry.Active:
			cell = selectedStyle.Render("[" + cell + "]")
		case entry.IsToday:
			cell = "*" + cell + " "
		default:
			cell = " " + cell + " "
		}
		cells = append(cells, cell)
	}
	b.WriteString(strings.Join(cells, " ") + "\n")
	b.WriteString(fmt.Sprintf("scheduled: %d | done: %d\n", data.ScheduledCount, data.DoneCount))

	b.WriteString("\ntimeline:\n")
	if len(data.Timeline) == 0 {
		b.WriteString("  (nothing scheduled)\n")
	}
	for _, row := range data.Timeline {
		b.WriteString(renderTaskRow(row, true))
	}

	b.WriteString("\ntodo:\n")
	if len(data.Remaining) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, row := range data.Remaining {
		b.WriteString(renderTaskRow(row, false))
	}
	return strings.TrimSpace(b.String())
}

func renderTaskRow(row TaskRowData, withTime bool) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	check := "[ ]"
	if row.Completed {
		check = "[x]"
	}
	title := row.Title
	if row.Completed {
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s", cursor, check)
	if withTime && row.Time != "" {
		line += " " + row.Time
	}
	line += " " + title
	meta := strings.TrimSpace(strings.Join([]string{row.Priority, row.Category}, " "))
	if meta != "" {
		line += " " + dimStyle.Render("("+strings.ToLower(meta)+")")
	}
	return line + "\n"
}

type ComposerData struct {
	Editing      bool
	Assisted     bool
	Busy         bool
	SpinnerView  string
	SentenceView string
	TitleView    string
	DescView     string
	TimeView     string
	Priority     string
	Category     string
	Scheduled    bool
	CanCommit    bool
}

func RenderComposer(data ComposerData) string {
	var b strings.Builder
	if data.Editing {
		b.WriteString("edit task:\n")
	} else {
		b.WriteString("new task:\n")
	}

	if data.Assisted {
		b.WriteString("describe it in one sentence:\n")
		b.WriteString(data.SentenceView + "\n")
		if data.Busy {
			b.WriteString(data.SpinnerView + " thinking...\n")
			b.WriteString("actions: [esc] back\n")
		} else {
			b.WriteString("actions: [enter] parse [ctrl+b] build manually [esc] back\n")
		}
		return strings.TrimSpace(b.String())
	}

	b.WriteString("title: " + data.TitleView + "\n")
	b.WriteString("details:\n" + data.DescView + "\n")
	b.WriteString(fmt.Sprintf("priority: %s | tag: %s\n", data.Priority, data.Category))
	if data.Scheduled {
		b.WriteString("alert: on  time: " + data.TimeView + "\n")
	} else {
		b.WriteString("alert: off\n")
	}
	save := "[ctrl+s] save"
	if !data.CanCommit {
		save = dimStyle.Render("[ctrl+s] save (needs a title)")
	}
	actions := "actions: [tab] next field [ctrl+p] priority [ctrl+g] tag [ctrl+e] alert " + save + " [esc] back"
	if !data.Editing {
		actions += " [ctrl+a] ai"
	}
	b.WriteString(actions + "\n")
	return strings.TrimSpace(b.String())
}

type DetailData struct {
	Title           string
	Date            string
	Time            string
	Priority        string
	Category        string
	Completed       bool
	DescriptionView string
}

func RenderDetail(data DetailData) string {
	var b strings.Builder
	b.WriteString("task:\n")
	title := data.Title
	if data.Completed {
		title = doneStyle.Render(title)
	}
	b.WriteString(title + "\n")
	b.WriteString(fmt.Sprintf("%s priority | %s\n", strings.ToLower(data.Priority), strings.ToLower(data.Category)))
	when := data.Date
	if data.Time != "" {
		when += " @ " + data.Time
	}
	b.WriteString("when: " + when + "\n")
	if data.DescriptionView != "" {
		b.WriteString("\n" + data.DescriptionView + "\n")
	}
	action := "complete task"
	if data.Completed {
		action = "mark as active"
	}
	b.WriteString(fmt.Sprintf("\nactions: [space] %s [e] edit [d] delete [esc] back\n", action))
	return strings.TrimSpace(b.String())
}

type CalendarDayData struct {
	Day      int
	InMonth  bool
	Selected bool
	Marked   bool
}

type CalendarData struct {
	MonthTitle   string
	Weeks        [][]CalendarDayData
	SelectedDate string
	DayTasks     []TaskRowData
}

func RenderCalendar(data CalendarData) string {
	var b strings.Builder
	b.WriteString("calendar: " + data.MonthTitle + "\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for _, week := range data.Weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, renderCalendarCell(day))
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	b.WriteString("actions: [h/l] day [[/]] month [j/k] task [space] toggle [enter] open [esc] back\n")

	b.WriteString(fmt.Sprintf("\n%s:\n", data.SelectedDate))
	if len(data.DayTasks) == 0 {
		b.WriteString("  (no tasks)\n")
	}
	for _, row := range data.DayTasks {
		b.WriteString(renderTaskRow(row, true))
	}
	return strings.TrimSpace(b.String())
}

func renderCalendarCell(day CalendarDayData) string {
	if !day.InMonth {
		return dimStyle.Render(fmt.Sprintf("%3d", day.Day))
	}
	cell := fmt.Sprintf("%2d", day.Day)
	if day.Marked {
		cell += "."
	} else {
		cell += " "
	}
	if day.Selected {
		return selectedStyle.Render(cell)
	}
	return cell
}

type ProfileData struct {
	Total        int
	Completed    int
	Rate         int
	ProgressView string
	AssistReady  bool
}

func RenderProfile(data ProfileData) string {
	var b strings.Builder
	b.WriteString("profile:\n")
	b.WriteString(fmt.Sprintf("tasks: %d | done: %d\n", data.Total, data.Completed))
	b.WriteString(fmt.Sprintf("completion: %s %d%%\n", data.ProgressView, data.Rate))
	assist := "off (set api key to enable)"
	if data.AssistReady {
		assist = "ready"
	}
	b.WriteString("ai assistant: " + assist + "\n")
	b.WriteString("actions: [r] reset app data [esc] back\n")
	return strings.TrimSpace(b.String())
}

package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/views"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Back:
		m.CurrentScreen = m.detailReturn()
		m.SelectedTaskID = ""
	case m.Keys.Toggle:
		if err := m.Store.Toggle(context.Background(), m.SelectedTaskID); err != nil {
			m.Status = errStatus(err)
		}
	case m.Keys.Edit:
		m.openEdit(m.SelectedTaskID)
	case m.Keys.Delete:
		m.Confirm = ConfirmState{Action: ConfirmDelete, TaskID: m.SelectedTaskID}
	}
	return m, nil
}

func (m Model) detailData() views.DetailData {
	task, ok := m.Store.Get(m.SelectedTaskID)
	if !ok {
		return views.DetailData{}
	}
	return views.DetailData{
		Title:           task.Title,
		Date:            task.Date,
		Time:            task.Time,
		Priority:        string(task.Priority),
		Category:        string(task.Category),
		Completed:       task.Completed,
		DescriptionView: views.RenderMarkdown(task.Description),
	}
}

package update

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/compose"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/store"
	"github.com/sandeepkv93/taskdash/internal/views"
)

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Composer == nil {
		m.CurrentScreen = ScreenDashboard
		return m, nil
	}
	if m.Composer.Mode() == compose.ModeAssisted {
		return m.handleAssistedKey(msg)
	}
	return m.handleManualKey(msg)
}

func (m Model) handleAssistedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Back:
		m.closeComposer()
		return m, nil
	case "ctrl+b":
		m.Composer.SwitchToManual()
		m.focus = focusTitle
		m.syncComposerFocus()
		return m, nil
	case "enter":
		m.Composer.Sentence = m.sentenceInput.Value()
		sentence, generation, ok := m.Composer.BeginParse()
		if !ok {
			// Blank sentence or a request already in flight.
			return m, nil
		}
		m.Status = StatusBar{Text: "asking the assistant..."}
		return m, tea.Batch(m.parseSpinner.Tick, parseCmd(m.Parser, sentence, generation))
	}

	var cmd tea.Cmd
	m.sentenceInput, cmd = m.sentenceInput.Update(msg)
	m.Composer.Sentence = m.sentenceInput.Value()
	return m, cmd
}

func (m Model) handleManualKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Back:
		m.closeComposer()
		return m, nil
	case "tab":
		m.cycleComposerFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleComposerFocus(-1)
		return m, nil
	case "ctrl+p":
		m.Composer.Priority = nextPriority(m.Composer.Priority)
		return m, nil
	case "ctrl+g":
		m.Composer.Category = nextCategory(m.Composer.Category)
		return m, nil
	case "ctrl+e":
		m.Composer.Scheduled = !m.Composer.Scheduled
		if !m.Composer.Scheduled && m.focus == focusTime {
			m.focus = focusTitle
			m.syncComposerFocus()
		}
		return m, nil
	case "ctrl+a":
		m.Composer.SwitchToAssisted()
		m.syncComposerFocus()
		return m, nil
	case "ctrl+s":
		return m.saveComposer()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.Composer.Title = m.titleInput.Value()
	case focusDescription:
		m.descArea, cmd = m.descArea.Update(msg)
		m.Composer.Description = m.descArea.Value()
	case focusTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
		m.Composer.Time = m.timeInput.Value()
	}
	return m, cmd
}

func (m Model) saveComposer() (tea.Model, tea.Cmd) {
	task, ok := m.Composer.Task(m.now())
	if !ok {
		m.Status = StatusBar{Text: "error: a title is required", IsError: true}
		return m, nil
	}

	ctx := context.Background()
	var err error
	if m.Composer.Editing() {
		err = m.Store.Update(ctx, task)
	} else {
		err = m.Store.Create(ctx, task)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The task being edited is gone. Abandon the draft.
			m.Composer = nil
			m.SelectedTaskID = ""
			m.CurrentScreen = ScreenDashboard
			m.Status = StatusBar{Text: "error: that task no longer exists", IsError: true}
			return m, nil
		}
		if errors.Is(err, model.ErrInvalidTime) {
			m.Status = StatusBar{Text: "error: time must look like 14:30", IsError: true}
			return m, nil
		}
		m.Status = errStatus(err)
		return m, nil
	}

	editing := m.Composer.Editing()
	m.Composer = nil
	m.SelectedTaskID = ""
	m.CurrentScreen = ScreenDashboard
	if editing {
		m.Status = StatusBar{Text: "task updated"}
	} else {
		m.SelectedDate = task.Date
		m.dashCursor = 0
		m.Status = StatusBar{Text: "task added"}
	}
	m.clampCursors()
	return m, nil
}

func (m Model) composerData() views.ComposerData {
	c := m.Composer
	return views.ComposerData{
		Editing:      c.Editing(),
		Assisted:     c.Mode() == compose.ModeAssisted,
		Busy:         c.Busy(),
		SpinnerView:  m.parseSpinner.View(),
		SentenceView: m.sentenceInput.View(),
		TitleView:    m.titleInput.View(),
		DescView:     m.descArea.View(),
		TimeView:     m.timeInput.View(),
		Priority:     string(c.Priority),
		Category:     string(c.Category),
		Scheduled:    c.Scheduled,
		CanCommit:    c.CanCommit(),
	}
}

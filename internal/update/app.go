package update

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/assist"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/views"
)

const parseTimeout = 30 * time.Second

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case parseResultMsg:
		return m.handleParseResult(typed)
	case spinner.TickMsg:
		if m.Composer != nil && m.Composer.Busy() {
			var cmd tea.Cmd
			m.parseSpinner, cmd = m.parseSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Confirm.Action != ConfirmNone {
		return m.handleConfirmKey(msg)
	}

	// A selected task can stop existing underneath the detail screen,
	// for example after a reset. Fall back to the hub instead of
	// rendering a dangling reference.
	if m.CurrentScreen == ScreenDetail {
		if _, ok := m.Store.Get(m.SelectedTaskID); !ok {
			m.CurrentScreen = ScreenDashboard
			m.SelectedTaskID = ""
		}
	}

	switch m.CurrentScreen {
	case ScreenDashboard:
		return m.handleDashboardKey(msg)
	case ScreenCreate, ScreenEdit:
		return m.handleComposerKey(msg)
	case ScreenDetail:
		return m.handleDetailKey(msg)
	case ScreenCalendar:
		return m.handleCalendarKey(msg)
	case ScreenProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

// handleParseResult routes the async parse outcome back into the
// composer. Results arriving after the composer screen was left, or
// carrying a stale generation, are discarded without any effect.
func (m Model) handleParseResult(msg parseResultMsg) (tea.Model, tea.Cmd) {
	if m.Composer == nil || (m.CurrentScreen != ScreenCreate && m.CurrentScreen != ScreenEdit) {
		return m, nil
	}
	if msg.err != nil {
		if m.Composer.FailParse(msg.generation) {
			m.Status = StatusBar{Text: "error: the assistant could not parse that", IsError: true}
		}
		return m, nil
	}
	if m.Composer.ApplyDraft(msg.generation, msg.draft) {
		m.focus = focusTitle
		m.syncComposerInputs()
		m.syncComposerFocus()
		m.Status = StatusBar{Text: "draft ready, review and save"}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.Confirm
	m.Confirm = ConfirmState{}
	switch msg.String() {
	case "y", "Y", "enter":
		return m.runConfirmed(pending)
	default:
		// Declined: no mutation, no navigation.
		return m, nil
	}
}

func (m Model) runConfirmed(pending ConfirmState) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch pending.Action {
	case ConfirmDelete:
		if err := m.Store.Delete(ctx, pending.TaskID); err != nil {
			m.Status = errStatus(err)
			return m, nil
		}
		if m.SelectedTaskID == pending.TaskID {
			m.SelectedTaskID = ""
		}
		if m.CurrentScreen == ScreenDetail {
			m.CurrentScreen = m.detailReturn()
		}
		m.clampCursors()
		m.Status = StatusBar{Text: "task deleted"}
	case ConfirmReset:
		if err := m.Store.Reset(ctx); err != nil {
			m.Status = errStatus(err)
			return m, nil
		}
		today := m.now()
		m.SelectedDate = today.Format(model.DateLayout)
		m.SelectedTaskID = ""
		m.calMonth = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		m.dashCursor = 0
		m.calCursor = 0
		m.CurrentScreen = ScreenDashboard
		m.Status = StatusBar{Text: "app data reset"}
	}
	return m, nil
}

func parseCmd(parser assist.Parser, sentence string, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()
		draft, err := parser.Parse(ctx, sentence)
		return parseResultMsg{generation: generation, draft: draft, err: err}
	}
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}

	var body string
	switch m.CurrentScreen {
	case ScreenDashboard:
		body = views.RenderDashboard(m.dashboardData())
	case ScreenCreate, ScreenEdit:
		body = views.RenderComposer(m.composerData())
	case ScreenDetail:
		body = views.RenderDetail(m.detailData())
	case ScreenCalendar:
		body = views.RenderCalendar(m.calendarData())
	case ScreenProfile:
		body = views.RenderProfile(m.profileData())
	}

	overlay := ""
	if m.Confirm.Action != ConfirmNone {
		overlay = views.RenderConfirm(views.ConfirmData{Prompt: m.confirmPrompt()})
	}

	return views.RenderApp(views.AppData{
		Header:     "taskdash :: " + strings.ToLower(string(m.CurrentScreen)),
		Body:       body,
		StatusLine: m.Status.Text,
		Overlay:    overlay,
		Footer:     m.footer(),
	})
}

func (m Model) confirmPrompt() string {
	switch m.Confirm.Action {
	case ConfirmDelete:
		prompt := "Delete this task?"
		if task, ok := m.Store.Get(m.Confirm.TaskID); ok {
			prompt = "Delete \"" + task.Title + "\"?"
		}
		return prompt
	case ConfirmReset:
		return "Reset all app data? This replaces every task with the starter set."
	}
	return ""
}

func errStatus(err error) StatusBar {
	return StatusBar{Text: "error: " + err.Error(), IsError: true}
}

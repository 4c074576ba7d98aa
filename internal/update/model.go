package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/taskdash/internal/assist"
	"github.com/sandeepkv93/taskdash/internal/compose"
	"github.com/sandeepkv93/taskdash/internal/config"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/store"
)

// Screen is the active view of the router. Dashboard is both the
// initial screen and the universal fallback hub.
type Screen string

const (
	ScreenDashboard Screen = "DASHBOARD"
	ScreenCreate    Screen = "CREATE"
	ScreenEdit      Screen = "EDIT"
	ScreenDetail    Screen = "DETAIL"
	ScreenCalendar  Screen = "CALENDAR"
	ScreenProfile   Screen = "PROFILE"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// ConfirmAction is a pending destructive action awaiting the explicit
// confirmation gate. Declining performs no mutation and no navigation.
type ConfirmAction string

const (
	ConfirmNone   ConfirmAction = ""
	ConfirmDelete ConfirmAction = "delete"
	ConfirmReset  ConfirmAction = "reset"
)

type ConfirmState struct {
	Action ConfirmAction
	TaskID string
}

type composerFocus int

const (
	focusTitle composerFocus = iota
	focusDescription
	focusTime
)

type Model struct {
	Store          *store.Store
	Parser         assist.Parser
	CurrentScreen  Screen
	SelectedTaskID string
	SelectedDate   string
	Composer       *compose.Composer
	Confirm        ConfirmState
	Status         StatusBar
	Keys           config.Keymap
	HelpVisible    bool
	Quitting       bool

	// AssistReady reports whether the external parser has credentials.
	// The profile screen surfaces it; parsing without credentials simply
	// yields no result.
	AssistReady bool

	now func() time.Time

	dashCursor int
	calMonth   time.Time
	calCursor  int
	focus      composerFocus
	detailFrom Screen

	// Bubble components backing the interactive controls.
	sentenceInput textinput.Model
	titleInput    textinput.Model
	descArea      textarea.Model
	timeInput     textinput.Model
	parseSpinner  spinner.Model
	rateProgress  progress.Model
	helpModel     help.Model
}

// parseResultMsg delivers the outcome of the one async boundary in the
// app, the assisted parse. The generation token lets the composer drop
// responses that arrive after a newer request or after the screen
// changed.
type parseResultMsg struct {
	generation int
	draft      assist.Draft
	err        error
}

func NewModel(s *store.Store, parser assist.Parser, keys config.Keymap) Model {
	return NewModelWithClock(s, parser, keys, time.Now)
}

func NewModelWithClock(s *store.Store, parser assist.Parser, keys config.Keymap, now func() time.Time) Model {
	today := now()
	m := Model{
		Store:         s,
		Parser:        parser,
		CurrentScreen: ScreenDashboard,
		SelectedDate:  today.Format(model.DateLayout),
		Keys:          keys,
		now:           now,
		calMonth:      time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.sentenceInput = textinput.New()
	m.sentenceInput.Prompt = "> "
	m.sentenceInput.Placeholder = "What's on your mind? e.g. Book a table at Oishi tonight at 8..."
	m.sentenceInput.CharLimit = 256
	m.sentenceInput.Width = 56

	m.titleInput = textinput.New()
	m.titleInput.Prompt = ""
	m.titleInput.Placeholder = "Task Title..."
	m.titleInput.CharLimit = 128
	m.titleInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.Placeholder = "Add details here..."
	m.descArea.SetWidth(56)
	m.descArea.SetHeight(4)
	m.descArea.ShowLineNumbers = false

	m.timeInput = textinput.New()
	m.timeInput.Prompt = ""
	m.timeInput.Placeholder = "09:00"
	m.timeInput.CharLimit = 5
	m.timeInput.Width = 6

	m.parseSpinner = spinner.New()
	m.parseSpinner.Spinner = spinner.Dot

	m.rateProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
}

// syncComposerInputs pushes composer fields into the bubbles, used when
// a screen is entered or a parse result rewrites the fields.
func (m *Model) syncComposerInputs() {
	if m.Composer == nil {
		return
	}
	m.sentenceInput.SetValue(m.Composer.Sentence)
	m.titleInput.SetValue(m.Composer.Title)
	m.descArea.SetValue(m.Composer.Description)
	m.timeInput.SetValue(m.Composer.Time)
}

func (m *Model) syncComposerFocus() {
	m.sentenceInput.Blur()
	m.titleInput.Blur()
	m.descArea.Blur()
	m.timeInput.Blur()
	if m.Composer == nil {
		return
	}
	if m.Composer.Mode() == compose.ModeAssisted {
		m.sentenceInput.Focus()
		return
	}
	switch m.focus {
	case focusTitle:
		m.titleInput.Focus()
	case focusDescription:
		m.descArea.Focus()
	case focusTime:
		m.timeInput.Focus()
	}
}

func (m *Model) cycleComposerFocus(delta int) {
	fields := 2
	if m.Composer != nil && m.Composer.Scheduled {
		fields = 3
	}
	next := (int(m.focus) + delta + fields) % fields
	m.focus = composerFocus(next)
	m.syncComposerFocus()
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	default:
		return model.PriorityLow
	}
}

func nextCategory(c model.Category) model.Category {
	switch c {
	case model.CategoryWork:
		return model.CategoryPersonal
	case model.CategoryPersonal:
		return model.CategoryFamily
	case model.CategoryFamily:
		return model.CategoryHealth
	default:
		return model.CategoryWork
	}
}

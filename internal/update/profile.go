package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/views"
)

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Back:
		m.CurrentScreen = ScreenDashboard
	case m.Keys.Reset:
		m.Confirm = ConfirmState{Action: ConfirmReset}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m Model) profileData() views.ProfileData {
	stats := model.ComputeStats(m.Store.Tasks())
	return views.ProfileData{
		Total:        stats.Total,
		Completed:    stats.Completed,
		Rate:         stats.Rate,
		ProgressView: m.rateProgress.ViewAs(float64(stats.Rate) / 100),
		AssistReady:  m.AssistReady,
	}
}

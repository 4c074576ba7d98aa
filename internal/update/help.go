package update

import (
	"github.com/charmbracelet/bubbles/key"
)

// helpKeys adapts a per-screen binding set to the bubbles help widget.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }

func (m Model) footer() string {
	m.helpModel.ShowAll = m.HelpVisible
	return m.helpModel.View(m.screenHelp())
}

func binding(keys string, desc string) key.Binding {
	label := keys
	if label == " " {
		label = "space"
	}
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(label, desc))
}

func (m Model) screenHelp() helpKeys {
	k := m.Keys
	switch m.CurrentScreen {
	case ScreenDashboard:
		nav := []key.Binding{
			binding(k.Down, "down"),
			binding(k.Up, "up"),
			binding(k.Left, "prev day"),
			binding(k.Right, "next day"),
		}
		act := []key.Binding{
			binding(k.Toggle, "toggle"),
			binding(k.Open, "open"),
			binding(k.Add, "add"),
			binding(k.Calendar, "calendar"),
			binding(k.Profile, "profile"),
			binding(k.Quit, "quit"),
		}
		return helpKeys{
			short: []key.Binding{binding(k.Add, "add"), binding(k.Open, "open"), binding(k.Help, "help"), binding(k.Quit, "quit")},
			full:  [][]key.Binding{nav, act},
		}
	case ScreenCalendar:
		nav := []key.Binding{
			binding(k.Left, "prev day"),
			binding(k.Right, "next day"),
			binding("[", "prev month"),
			binding("]", "next month"),
		}
		act := []key.Binding{
			binding(k.Toggle, "toggle"),
			binding(k.Open, "open"),
			binding(k.Back, "back"),
		}
		return helpKeys{
			short: []key.Binding{binding(k.Right, "next day"), binding("]", "next month"), binding(k.Back, "back")},
			full:  [][]key.Binding{nav, act},
		}
	case ScreenDetail:
		b := []key.Binding{
			binding(k.Toggle, "toggle"),
			binding(k.Edit, "edit"),
			binding(k.Delete, "delete"),
			binding(k.Back, "back"),
		}
		return helpKeys{short: b, full: [][]key.Binding{b}}
	case ScreenProfile:
		b := []key.Binding{
			binding(k.Reset, "reset data"),
			binding(k.Back, "back"),
		}
		return helpKeys{short: b, full: [][]key.Binding{b}}
	default:
		b := []key.Binding{binding(k.Back, "back")}
		return helpKeys{short: b, full: [][]key.Binding{b}}
	}
}

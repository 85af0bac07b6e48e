package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banabyte/airwaves/internal/errmsg"
	"github.com/banabyte/airwaves/internal/keymap"
)

const volumeStep = 0.05

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())

	switch action {
	case keymap.ActionQuit:
		m.bridge.Close()
		return m, tea.Quit

	case keymap.ActionToggleList:
		m.ListVisible = !m.ListVisible
		m.List.SetFocused(m.ListVisible)
		m.layout()

	case keymap.ActionToggleHelp:
		m.ShowHelp = !m.ShowHelp

	case keymap.ActionReloadList:
		if m.Loading {
			return m, nil
		}
		m.Loading = true
		return m, tea.Batch(m.Spinner.Tick, m.loadStationsCmd())

	case keymap.ActionMoveUp:
		m.List.Move(-1)
	case keymap.ActionMoveDown:
		m.List.Move(1)
	case keymap.ActionJumpStart:
		m.List.JumpStart()
	case keymap.ActionJumpEnd:
		m.List.JumpEnd()

	case keymap.ActionSelect:
		if st, ok := m.List.Selected(); ok {
			m.ErrorMsg = ""
			m.tune(st.ID)
		}

	case keymap.ActionPlayPause:
		m.player.Toggle()

	case keymap.ActionReload:
		if err := m.player.Reload(); err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpStreamReload, string(m.tuned), err)
		}

	case keymap.ActionVolumeUp:
		m.player.SetVolume(m.player.Volume() + volumeStep)
		m.saveVolume()
	case keymap.ActionVolumeDown:
		m.player.SetVolume(m.player.Volume() - volumeStep)
		m.saveVolume()
	case keymap.ActionMute:
		m.player.SetMuted(!m.player.Muted())
		m.saveVolume()
	}

	return m, nil
}

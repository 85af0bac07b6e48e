package app

import "github.com/banabyte/airwaves/internal/errmsg"

// saveVolume persists the player's volume and mute state.
func (m *Model) saveVolume() {
	if err := m.stateMgr.SaveVolume(m.player.Volume(), m.player.Muted()); err != nil {
		m.log.Warn().Err(err).Msg("save volume")
		m.ErrorMsg = errmsg.Format(errmsg.OpVolumeSave, err)
	}
}

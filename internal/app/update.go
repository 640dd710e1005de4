package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jojongai/portfolio/internal/keymap"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/ui/playerbar"
)

const (
	seekStep   = 5.0
	volumeStep = 5.0
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		model, cmd := m.handleKeyMsg(msg)
		if mm, ok := model.(Model); ok {
			mm.persist()
		}
		return model, cmd

	case CatalogMessage:
		return m.handleCatalogMsg(msg)

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case StderrMsg:
		m.log.Warn().Str("line", msg.Line).Msg("audio backend")
		m.statusMsg = msg.Line
		return m, m.WatchStderr()
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	action := m.keys.Resolve(key)

	if m.showHelp {
		if action == keymap.ActionQuit {
			return m.quit()
		}
		m.showHelp = false
		return m, nil
	}

	// Any key dismisses the status line.
	m.statusMsg = ""

	if handled, model, cmd := m.handleGlobalKey(action); handled {
		return model, cmd
	}
	if m.handlePlaybackKey(action) {
		return m, nil
	}
	return m.handleNavigationKey(action)
}

func (m Model) handleGlobalKey(action keymap.Action) (bool, tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		model, cmd := m.quit()
		return true, model, cmd
	case keymap.ActionHelp:
		m.showHelp = true
		return true, m, nil
	case keymap.ActionBack:
		if !m.history.Back() {
			return true, m, nil
		}
		model, cmd := m.enterRoute()
		return true, model, cmd
	case keymap.ActionRefresh:
		model, cmd := m.refresh()
		return true, model, cmd
	case keymap.ActionViewHome:
		model, cmd := m.navigate(route.Home())
		return true, model, cmd
	case keymap.ActionViewProfile:
		model, cmd := m.navigate(route.Route{Kind: route.KindProfile})
		return true, model, cmd
	case keymap.ActionViewHobbies:
		model, cmd := m.navigate(route.Route{Kind: route.KindHobbies})
		return true, model, cmd
	case keymap.ActionViewLiked:
		model, cmd := m.navigate(route.Route{Kind: route.KindLikedSongs})
		return true, model, cmd
	case keymap.ActionTogglePlayerDisplay:
		if m.displayMode == playerbar.ModeExpanded {
			m.displayMode = playerbar.ModeCompact
		} else {
			m.displayMode = playerbar.ModeExpanded
		}
		return true, m, nil
	}
	return false, m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

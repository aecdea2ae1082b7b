package tui

import (
	"fmt"

	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/countdown"
	"github.com/akyairhashvil/countdial/internal/dial"
	"github.com/akyairhashvil/countdial/internal/models"
	"github.com/akyairhashvil/countdial/internal/rotation"
	"github.com/akyairhashvil/countdial/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = newDialLayout(msg.Width, msg.Height)
		m.progress.Width = progressWidth(m.layout.width)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	case CountdownMsg:
		return m.handleCountdown(msg)
	case ReportMsg:
		if msg.Err != nil {
			m.setError("PDF report", msg.Err)
		} else {
			m.setStatus("Report written to " + msg.Path)
		}
		return m, nil
	}
	return m, nil
}

func (m DialModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	touch := m.layout.toPoint(msg.X, msg.Y)
	pivot := m.layout.pivot()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.layout.contains(msg.X, msg.Y) {
			return m, nil
		}
		if _, ok := m.machine.Start(touch, pivot); !ok {
			m.setStatus("Countdown running, press x to abandon it")
		}
	case tea.MouseActionMotion:
		m.machine.Move(touch, pivot)
	case tea.MouseActionRelease:
		// Release events do not reliably carry the button.
		minutes, gen, ok := m.machine.End(touch, pivot)
		if !ok {
			return m, nil
		}
		return m, m.beginCountdown(minutes, gen)
	}
	return m, nil
}

func (m *DialModel) beginCountdown(minutes int, gen uint64) tea.Cmd {
	// The angle the dial showed at release, not the raw accumulated base.
	angle := dial.Normalize(m.machine.Snapshot().Displayed)
	m.recordID = ""
	id, err := m.db.StartCountdown(m.ctx, minutes, angle, m.now())
	if err != nil {
		m.setError("Record countdown", err)
	} else {
		m.recordID = id
		m.setStatus(fmt.Sprintf("Counting down from %d min", minutes))
	}
	m.saveState()

	m.seq = countdown.New(minutes, m.interval)
	m.startMinutes = minutes
	util.Debugf("countdown gen=%d from %d", gen, minutes)
	return m.nextTick(gen)
}

func (m *DialModel) nextTick(gen uint64) tea.Cmd {
	if m.seq == nil {
		return nil
	}
	value, delay, ok := m.seq.Next()
	if !ok {
		return nil
	}
	return countdownCmd(gen, value, delay)
}

func (m DialModel) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if !m.machine.Tick(msg.Gen, msg.Minutes) {
		util.Debugf("dropping countdown value %d from gen %d", msg.Minutes, msg.Gen)
		return m, nil
	}
	if msg.Minutes <= 0 {
		m.finishRecord(models.CountdownCompleted, 0)
		m.seq = nil
		m.saveState()
		m.setStatus("Countdown complete")
		return m, nil
	}
	if m.recordID != "" {
		if err := m.db.UpdateCountdownRemaining(m.ctx, m.recordID, msg.Minutes); err != nil {
			m.setError("Update countdown", err)
		}
	}
	return m, m.nextTick(msg.Gen)
}

func (m *DialModel) finishRecord(status models.CountdownStatus, remaining int) {
	if m.recordID == "" {
		return
	}
	if err := m.db.FinishCountdown(m.ctx, m.recordID, status, remaining, m.now()); err != nil {
		m.setError("Finish countdown", err)
	}
	m.recordID = ""
}

// abandon stops a running countdown and records it with status.
func (m *DialModel) abandon(status models.CountdownStatus) bool {
	remaining := m.machine.Snapshot().Remaining
	if !m.machine.Supersede() {
		return false
	}
	m.finishRecord(status, remaining)
	m.seq = nil
	return true
}

func handleQuit(m DialModel, _ string) (DialModel, tea.Cmd, bool) {
	m.abandon(models.CountdownInterrupted)
	m.saveState()
	return m, tea.Quit, true
}

func handleAbandon(m DialModel, _ string) (DialModel, tea.Cmd, bool) {
	if !m.abandon(models.CountdownSuperseded) {
		return m, nil, false
	}
	m.saveState()
	m.setStatus("Countdown abandoned")
	return m, nil, true
}

func handleToggleTheme(m DialModel, _ string) (DialModel, tea.Cmd, bool) {
	m.theme = nextTheme(m.theme)
	SetTheme(m.theme)
	m.progress = newProgress(m.layout.width)
	if err := m.db.SetSetting(m.ctx, config.SettingTheme, m.theme); err != nil {
		m.setError("Save theme", err)
		return m, nil, true
	}
	m.setStatus("Theme: " + CurrentTheme.Name)
	return m, nil, true
}

func handleReport(m DialModel, _ string) (DialModel, tea.Cmd, bool) {
	if m.machine.Snapshot().Phase == rotation.Dragging {
		return m, nil, false
	}
	ctx, db, dir, now := m.ctx, m.db, m.reportsDir, m.now()
	m.setStatus("Writing report...")
	return m, func() tea.Msg {
		path, err := GeneratePDFReport(ctx, db, dir, now)
		return ReportMsg{Path: path, Err: err}
	}, true
}

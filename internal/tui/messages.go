package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// CountdownMsg delivers one countdown value. Gen identifies the countdown it
// belongs to so values from an abandoned countdown can be dropped.
type CountdownMsg struct {
	Gen     uint64
	Minutes int
}

// ReportMsg carries the result of writing a PDF report.
type ReportMsg struct {
	Path string
	Err  error
}

func countdownCmd(gen uint64, minutes int, delay time.Duration) tea.Cmd {
	msg := CountdownMsg{Gen: gen, Minutes: minutes}
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

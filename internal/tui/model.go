package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/countdown"
	"github.com/akyairhashvil/countdial/internal/rotation"
	"github.com/akyairhashvil/countdial/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure a DialModel. Zero values fall back to config defaults.
type Options struct {
	TickInterval time.Duration
	TiltOffset   float64
	Theme        string
	ReportsDir   string
	Now          func() time.Time
}

// DialModel is the root bubbletea model: one dial, its countdown and the
// persistence around them.
type DialModel struct {
	ctx     context.Context
	db      Database
	keys    *HandlerRegistry
	machine *rotation.Machine

	// Countdown in flight. seq is nil when none is running.
	seq          *countdown.Sequence
	recordID     string
	startMinutes int
	interval     time.Duration

	progress   progress.Model
	layout     dialLayout
	theme      string
	tiltOffset float64
	reportsDir string
	now        func() time.Time

	Message       string
	statusIsError bool
	err           error
	width         int
	height        int
}

func NewDialModel(ctx context.Context, db Database, opts Options) DialModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	if opts.TiltOffset <= 0 {
		opts.TiltOffset = config.TiltOffset
	}
	if opts.Theme == "" {
		opts.Theme = config.ThemeLight
	}
	if opts.ReportsDir == "" {
		opts.ReportsDir = util.ReportsDir(config.AppName)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := DialModel{
		ctx:        ctx,
		db:         db,
		keys:       defaultKeyRegistry(),
		machine:    rotation.New(opts.TiltOffset),
		interval:   opts.TickInterval,
		theme:      opts.Theme,
		tiltOffset: opts.TiltOffset,
		reportsDir: opts.ReportsDir,
		now:        opts.Now,
		layout:     newDialLayout(defaultWidth, defaultHeight),
	}

	if saved, ok := db.GetSetting(ctx, config.SettingTheme); ok {
		if _, known := Themes[saved]; known {
			m.theme = saved
		}
	}
	SetTheme(m.theme)
	m.progress = newProgress(defaultWidth)

	state, ok, err := db.LoadDialState(ctx)
	if err != nil {
		m.setError("Load dial state", err)
	} else if ok {
		m.machine.Restore(state)
		util.Debugf("restored dial state base=%s offset=%s",
			util.FormatFloat(state.BaseAngle), util.FormatFloat(state.OffsetAngle))
	}
	return m
}

func newProgress(width int) progress.Model {
	p := progress.New(progress.WithGradient(CurrentTheme.Gradient[0], CurrentTheme.Gradient[1]))
	p.Width = progressWidth(width)
	return p
}

// progressWidth leaves room for the percentage and the minutes suffix.
func progressWidth(width int) int {
	return util.Clamp(width-16, 10, config.ProgressWidth)
}

func (m DialModel) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

// Snapshot exposes the dial state for callers outside the update loop.
func (m DialModel) Snapshot() rotation.Snapshot {
	return m.machine.Snapshot()
}

func (m *DialModel) setStatus(msg string) {
	m.Message = msg
	m.statusIsError = false
	m.err = nil
}

func (m *DialModel) setError(context string, err error) {
	util.LogError(context, err)
	m.err = err
	m.Message = fmt.Sprintf("%s: %v", context, err)
	m.statusIsError = true
}

func (m *DialModel) saveState() {
	if err := m.db.SaveDialState(m.ctx, m.machine.Save()); err != nil {
		m.setError("Save dial state", err)
	}
}

package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/countdial/internal/rotation"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m DialModel, key string) (DialModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Phases      []rotation.Phase
	Priority    int
}

// AppliesTo reports whether the binding is active in phase. No phases means
// always active.
func (b KeyBinding) AppliesTo(phase rotation.Phase) bool {
	if len(b.Phases) == 0 {
		return true
	}
	for _, p := range b.Phases {
		if p == phase {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DialModel, key string) (DialModel, tea.Cmd, bool) {
	phase := m.machine.Snapshot().Phase
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(phase) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(phase rotation.Phase) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(phase) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(phase rotation.Phase) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(phase) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Quit", Priority: 100})
	r.Register(KeyBinding{
		Key:         "x",
		Handler:     handleAbandon,
		Description: "Abandon",
		Phases:      []rotation.Phase{rotation.Countdown},
		Priority:    50,
	})
	r.Register(KeyBinding{Key: "t", Handler: handleToggleTheme, Description: "Theme", Priority: 10})
	r.Register(KeyBinding{Key: "p", Handler: handleReport, Description: "Report", Priority: 10})
	return r
}

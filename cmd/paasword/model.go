package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/preset"
	"github.com/paasword/paasword-go/internal/session"
)

// copiedFor is how long the "copied" marker stays visible.
const copiedFor = time.Second

// copiedResetMsg reverts the "copied" marker. Stale resets carry an older seq and are ignored.
type copiedResetMsg struct{ seq int }

// model is the root bubbletea model. It renders a session and forwards key presses to it.
type model struct {
	sess   *session.Session
	state  session.State
	keys   keyMap
	help   help.Model
	copy   func(string) error
	copied bool
	seq    int
	notice string
}

func newModel(sess *session.Session, copyFn func(string) error) model {
	m := model{
		sess: sess,
		keys: defaultKeyMap(),
		help: help.New(),
		copy: copyFn,
	}
	sess.OnChange(func(st session.State) {
		slog.Debug("session changed", "preset", st.Preset, "length", st.Settings.Length, "error", st.Err)
	})
	m.state = sess.State()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case copiedResetMsg:
		if msg.seq == m.seq {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyPassword()
	case key.Matches(msg, m.keys.Lowercase):
		m.sess.Toggle(session.Lowercase)
	case key.Matches(msg, m.keys.Uppercase):
		m.sess.Toggle(session.Uppercase)
	case key.Matches(msg, m.keys.Digits):
		m.sess.Toggle(session.Digits)
	case key.Matches(msg, m.keys.Special):
		m.sess.Toggle(session.Special)
	case key.Matches(msg, m.keys.Unique):
		m.sess.Toggle(session.Unique)
	case key.Matches(msg, m.keys.ExcludeAmbiguous):
		m.sess.Toggle(session.ExcludeAmbiguous)
	case key.Matches(msg, m.keys.StartWithLetter):
		m.sess.Toggle(session.StartWithLetter)
	case key.Matches(msg, m.keys.Shorter):
		m.sess.SetLength(m.state.Settings.Length - 1)
	case key.Matches(msg, m.keys.Longer):
		m.sess.SetLength(m.state.Settings.Length + 1)
	case key.Matches(msg, m.keys.NextPreset):
		m.selectPreset(preset.Next(m.state.Preset, 1))
	case key.Matches(msg, m.keys.PrevPreset):
		m.selectPreset(preset.Next(m.state.Preset, -1))
	case key.Matches(msg, m.keys.Regenerate):
		m.sess.Regenerate()
	default:
		return m, nil
	}

	m.state = m.sess.State()
	return m, nil
}

func (m *model) selectPreset(k preset.Key) {
	if err := m.sess.ApplyPreset(k); err != nil {
		m.notice = err.Error()
	}
}

func (m model) copyPassword() (tea.Model, tea.Cmd) {
	if m.state.Password == "" {
		return m, nil
	}
	if err := m.copy(m.state.Password); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		m.notice = "clipboard unavailable: " + err.Error()
		return m, nil
	}

	m.copied = true
	m.seq++
	seq := m.seq
	return m, tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return copiedResetMsg{seq: seq}
	})
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Paasword"))
	b.WriteString("\n\n")

	if m.state.Err != nil {
		b.WriteString(warningStyle.Render("⚠ " + failureText(m.state.Err)))
	} else {
		line := passwordStyle.Render(m.state.Password)
		if m.copied {
			line += " " + copiedStyle.Render("✓ copied")
		}
		b.WriteString(line)
	}
	b.WriteString("\n\n")

	s := m.state.Settings
	fmt.Fprintf(&b, "%s %d  %s\n", labelStyle.Render("Length:"), s.Length,
		dimStyle.Render(fmt.Sprintf("(%d-%d)", generator.MinUILength, generator.MaxUILength)))
	fmt.Fprintf(&b, "%s %s %s\n\n", labelStyle.Render("Strength:"), renderMeter(m.state.Strength.Tier),
		dimStyle.Render(m.state.Strength.Tier.String()))

	rows := []struct {
		on    bool
		label string
	}{
		{s.Lowercase, "1 lowercase letters (a-z)"},
		{s.Uppercase, "2 UPPERCASE letters (A-Z)"},
		{s.Digits, "3 digits (0-9)"},
		{s.Special, "4 special symbols (!#$...)"},
		{s.StartWithLetter, "s start with a letter"},
		{s.Unique, "u no repeated characters"},
		{s.ExcludeAmbiguous, "a exclude look-alikes (l, 1, O, 0)"},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", checkbox(row.on), row.label)
	}

	fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render("Preset:"), preset.DisplayName(m.state.Preset))
	if m.notice != "" {
		b.WriteString(warningStyle.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

package main

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paasword/paasword-go/internal/config"
	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/preset"
	"github.com/paasword/paasword-go/internal/session"
	"github.com/paasword/paasword-go/internal/strength"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func newTestModel(t *testing.T, k preset.Key) (model, *fakeClipboard) {
	t.Helper()
	sess, err := session.New(k, generator.New(rand.NewPCG(3, 5)))
	require.NoError(t, err)
	clip := &fakeClipboard{}
	return newModel(sess, clip.write), clip
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	return m
}

func TestModel_InitialState(t *testing.T) {
	m, _ := newTestModel(t, preset.EasyToRead)

	assert.Equal(t, preset.EasyToRead, m.state.Preset)
	assert.Len(t, m.state.Password, 18)
	assert.Contains(t, m.View(), "Easy to read")
	assert.Contains(t, m.View(), m.state.Password)
}

func TestModel_ToggleSwitchesToCustom(t *testing.T) {
	m, _ := newTestModel(t, preset.EasyToRead)

	m = press(m, "4")

	assert.Equal(t, preset.Custom, m.state.Preset)
	assert.True(t, m.state.Settings.Special)
	assert.Contains(t, m.View(), "Custom")
}

func TestModel_LengthKeys(t *testing.T) {
	m, _ := newTestModel(t, preset.PinCode)

	m = press(m, "left")
	assert.Equal(t, generator.MinUILength, m.state.Settings.Length)
	assert.Equal(t, preset.PinCode, m.state.Preset)

	m = press(m, "right", "right")
	assert.Equal(t, 6, m.state.Settings.Length)
	assert.Len(t, m.state.Password, 6)
	assert.Equal(t, preset.Custom, m.state.Preset)
}

func TestModel_PresetCycling(t *testing.T) {
	m, _ := newTestModel(t, preset.FullStrong)

	m = press(m, "p")
	assert.Equal(t, preset.EasyToRead, m.state.Preset)

	m = press(m, "P", "P")
	assert.Equal(t, preset.Custom, m.state.Preset)
	assert.Len(t, m.state.Password, 36)
}

func TestModel_FailureIsShownAsWarning(t *testing.T) {
	m, _ := newTestModel(t, preset.PinCode)

	m = press(m, "s")

	assert.Empty(t, m.state.Password)
	assert.Equal(t, strength.TierNone, m.state.Strength.Tier)
	assert.Contains(t, m.View(), "no letter set is enabled")
}

func TestModel_RegenerateChangesPassword(t *testing.T) {
	m, _ := newTestModel(t, preset.FullStrong)
	before := m.state.Password

	m = press(m, "r")

	assert.NotEqual(t, before, m.state.Password)
}

func TestModel_CopyAndRevert(t *testing.T) {
	m, clip := newTestModel(t, preset.EasyToSay)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(model)

	require.NotNil(t, cmd)
	assert.Equal(t, m.state.Password, clip.text)
	assert.True(t, m.copied)
	assert.Contains(t, m.View(), "copied")

	// A stale reset from an earlier copy is ignored.
	updated, _ = m.Update(copiedResetMsg{seq: m.seq - 1})
	m = updated.(model)
	assert.True(t, m.copied)

	updated, _ = m.Update(copiedResetMsg{seq: m.seq})
	m = updated.(model)
	assert.False(t, m.copied)
}

func TestModel_CopyFailure(t *testing.T) {
	m, clip := newTestModel(t, preset.EasyToSay)
	clip.err = errors.New("no clipboard utility")

	m = press(m, "c")

	assert.False(t, m.copied)
	assert.Contains(t, m.View(), "clipboard unavailable")
}

func TestModel_CopyWithoutPassword(t *testing.T) {
	m, clip := newTestModel(t, preset.PinCode)
	m = press(m, "3")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(model)

	assert.Nil(t, cmd)
	assert.Empty(t, clip.text)
	assert.False(t, m.copied)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, preset.PinCode)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPrintPassword(t *testing.T) {
	var buf bytes.Buffer
	err := printPassword(&buf, session.State{Password: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "abc123\n", buf.String())

	err = printPassword(&buf, session.State{Err: generator.ErrNoCharacterClass})
	assert.EqualError(t, err, "No character set selected for generation.")
}

func TestFailureText(t *testing.T) {
	msg := failureText(&generator.UniquePoolError{Requested: 40, Available: 35})
	assert.Contains(t, msg, "40")
	assert.Contains(t, msg, "35")

	assert.Equal(t, "boom", failureText(errors.New("boom")))
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		raw  string
		want preset.Key
	}{
		{"pincode", preset.PinCode},
		{"PIN code", preset.PinCode},
		{"Easy to read", preset.EasyToRead},
		{"fullstrong", preset.FullStrong},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parsePreset(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parsePreset("ultra")
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestNewSession(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultPreset = preset.EasyToSay
	snapshot := generator.Settings{Length: 20, Lowercase: true, Digits: true}
	cfg.Settings = &snapshot

	t.Run("configured snapshot", func(t *testing.T) {
		sess, err := newSession(cfg, "")
		require.NoError(t, err)

		st := sess.State()
		assert.Equal(t, snapshot, st.Settings)
		assert.Equal(t, preset.Custom, st.Preset)
		assert.Len(t, st.Password, 20)
	})

	t.Run("snapshot matching a preset", func(t *testing.T) {
		pin := generator.Settings{Length: 4, Digits: true}
		c := cfg
		c.Settings = &pin

		sess, err := newSession(c, "")
		require.NoError(t, err)
		assert.Equal(t, preset.PinCode, sess.State().Preset)
	})

	t.Run("flag wins over snapshot", func(t *testing.T) {
		sess, err := newSession(cfg, "PIN code")
		require.NoError(t, err)

		st := sess.State()
		assert.Equal(t, preset.PinCode, st.Preset)
		assert.Len(t, st.Password, 4)
	})

	t.Run("default preset", func(t *testing.T) {
		sess, err := newSession(config.Default(), "")
		require.NoError(t, err)
		assert.Equal(t, preset.FullStrong, sess.State().Preset)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := newSession(cfg, "ultra")
		assert.Error(t, err)
	})
}

package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type fakeScreen struct {
	name          string
	width, height int
	inits         int
	msgs          []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	f.msgs = append(f.msgs, msg)
	return f, nil
}

func (f *fakeScreen) View() string { return f.name }

func (f *fakeScreen) SetSize(width, height int) {
	f.width, f.height = width, height
}

func TestRouterReplaceKeepsSize(t *testing.T) {
	first := &fakeScreen{name: "first"}
	r := New(first)
	r.Init()
	assert.Equal(t, 1, first.inits)

	r.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, first.width)

	second := &fakeScreen{name: "second"}
	r.Replace(second)
	assert.Same(t, second, r.Current())
	assert.Equal(t, 120, second.width)
	assert.Equal(t, 40, second.height)
	assert.Equal(t, 1, second.inits)
	assert.Equal(t, "second", r.View())
}

func TestRouterForwardsMessages(t *testing.T) {
	s := &fakeScreen{name: "only"}
	r := New(s)

	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, s.msgs, 1)
	assert.Same(t, s, r.Current())
}

func TestRouterEmpty(t *testing.T) {
	r := New(nil)
	assert.Nil(t, r.Init())
	assert.Equal(t, "No screen available", r.View())
}

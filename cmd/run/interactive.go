package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/glulx-runtime/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	drawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	sess     *session.Session
	filename string
	seedIn   textinput.Model
	draws    []uint32
	seeded   uint32
	restarts int
}

func newInteractiveModel(sess *session.Session, filename string) *interactiveModel {
	in := textinput.New()
	in.Placeholder = "seed (0 = host entropy)"
	in.CharLimit = 10
	in.Width = 24
	in.Focus()

	return &interactiveModel{
		sess:     sess,
		filename: filename,
		seedIn:   in,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			m.err = nil
			text := strings.TrimSpace(m.seedIn.Value())
			if text != "" {
				seed, err := strconv.ParseUint(text, 10, 32)
				if err != nil {
					m.err = fmt.Errorf("seed must be a 32-bit unsigned integer: %w", err)
					return m, nil
				}
				m.sess.SetRandomSeed(uint32(seed))
				m.seeded = uint32(seed)
				m.draws = nil
				m.seedIn.SetValue("")
			}

		case "d":
			m.draws = append(m.draws, m.sess.GetRandom())
			if len(m.draws) > 16 {
				m.draws = m.draws[len(m.draws)-16:]
			}
			return m, nil

		case "r":
			if err := m.sess.Restart(); err != nil {
				m.err = err
				return m, nil
			}
			m.restarts++
			m.draws = nil
			m.seeded = 0
		}
	}

	var cmd tea.Cmd
	m.seedIn, cmd = m.seedIn.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("glulx-runtime inspector"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Image: "))
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Kind: "))
	b.WriteString(m.sess.Kind().String())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Program: "))
	b.WriteString(fmt.Sprintf("%d bytes", len(m.sess.Program())))
	b.WriteString("\n")

	mode := "native"
	if m.seeded != 0 {
		mode = fmt.Sprintf("deterministic, seed %d", m.seeded)
	}
	b.WriteString(labelStyle.Render("RNG mode: "))
	b.WriteString(mode)
	if m.restarts > 0 {
		b.WriteString(fmt.Sprintf("  (restarted %dx)", m.restarts))
	}
	b.WriteString("\n\n")

	b.WriteString(m.seedIn.View())
	b.WriteString("\n\n")

	if len(m.draws) > 0 {
		b.WriteString(labelStyle.Render("Draws:"))
		b.WriteString("\n")
		for _, v := range m.draws {
			b.WriteString("  ")
			b.WriteString(drawStyle.Render(fmt.Sprintf("%#08x", v)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter: set seed • d: draw • r: restart • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(sess *session.Session, filename string) error {
	p := tea.NewProgram(newInteractiveModel(sess, filename))
	_, err := p.Run()
	return err
}

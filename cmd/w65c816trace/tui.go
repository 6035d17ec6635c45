package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/cpu"
	"github.com/wdc65816/core/trace"
)

// tuiModel drives an interactive single-stepper: space advances one
// instruction, q quits. The view is the current status line above the
// last 30 stepped trace lines, redrawn after every Update.
type tuiModel struct {
	p     *cpu.Chip
	b     *bus.Flat
	err   error
	lines []string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			snap := m.p.Snapshot()
			if snap.Stopped {
				return m, nil
			}
			addr := bus.NewAddr24(snap.PBR, snap.PC)
			accWide, idxWide := widths(snap)
			text, _ := trace.Disassemble(m.b, addr, accWide, idxWide)
			line := fmt.Sprintf("%-24s %s", text, trace.Format(snap))
			if err := m.p.Step(); err != nil {
				m.err = err
				line += errorStyle.Render(fmt.Sprintf("  [%v]", err))
			}
			m.lines = append(m.lines, line)
			if len(m.lines) > 30 {
				m.lines = m.lines[len(m.lines)-30:]
			}
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	snap := m.p.Snapshot()
	status := headerStyle.Render("w65c816trace") + "\n" + trace.Format(snap)
	if snap.Stopped {
		status += "\n" + errorStyle.Render("STP: halted")
	}
	body := strings.Join(m.lines, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, status, "", body, "", "space/n: step  q: quit")
}

// runTUI starts the interactive stepper over an already-initialized core.
func runTUI(p *cpu.Chip, b *bus.Flat) error {
	_, err := tea.NewProgram(tuiModel{p: p, b: b}).Run()
	return err
}

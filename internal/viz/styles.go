package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// depth shading for items, nearest first
	itemNear = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	itemMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	itemFar  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

package canvas

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	section   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	badge     lipgloss.Style
	active    lipgloss.Style
	empty     lipgloss.Style
	question  lipgloss.Style
	topicName lipgloss.Style
	meta      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		section:   lipgloss.NewStyle().MarginTop(1).Bold(true).Foreground(lipgloss.Color("39")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		active:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		empty:     lipgloss.NewStyle().Faint(true),
		question:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		topicName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

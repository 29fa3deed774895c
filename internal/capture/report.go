package capture

import (
	"fmt"
	"strconv"
	"strings"

	"driftfield/internal/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0077b3", Dark: "#00aaff"})

	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	labelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#444444"})
)

var summaryHeaders = []string{"preset", "seed", "frames", "ticks", "mean links", "peak links", "cells"}

// Table renders one row per summary.
func Table(title string, rows []Summary) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(summaryHeaders...)
	for _, s := range rows {
		t.Row(
			s.Name,
			strconv.FormatInt(s.Seed, 10),
			strconv.Itoa(s.Frames),
			strconv.FormatUint(s.Ticks, 10),
			fmt.Sprintf("%.1f", s.MeanVisible),
			strconv.Itoa(s.PeakVisible),
			strconv.Itoa(s.Cells),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), t.String())
}

// Parameters renders a snapshot as labelled groups.
func Parameters(snap core.ParameterSnapshot) string {
	var b strings.Builder
	for i, g := range snap.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(groupStyle.Render(g.Name))
		b.WriteByte('\n')
		for _, p := range g.Params {
			b.WriteString(labelStyle.Render(p.Label))
			b.WriteString(valueStyle.Render(p.Value))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

package teams

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 20

type RenderOptions struct {
	// BarWidth is the width of each skill bar. Zero means the default, a
	// negative value hides the bars.
	BarWidth int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.BarWidth == 0 {
		o.BarWidth = defaultBarWidth
	}
	return o
}

func renderView(report domain.Report, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Teams (%s, size %d)", report.Strategy, report.GroupSize)),
		s.header.Render(headerLine(report)),
	}

	if len(report.Groups) == 0 {
		lines = append(lines, s.empty.Render("No teams formed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	// Bars are scaled to the best a full group could score in one dimension.
	maxDimension := report.GroupSize * int(domain.Advanced)
	for _, group := range report.Groups {
		maxDimension = max(maxDimension, group.Score.Programming, group.Score.Debugging, group.Score.Algorithm)
	}

	for i, group := range report.Groups {
		lines = append(lines, s.section.Render(renderTeam(i+1, group, maxDimension, opts, s)))
	}

	if len(report.Unplaced) > 0 {
		lines = append(lines, s.section.Render(s.warning.Render("Unplaced: "+joinIDs(report.Unplaced))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(report domain.Report) string {
	parts := []string{
		fmt.Sprintf("teams: %d", len(report.Groups)),
		fmt.Sprintf("people: %d", report.Placed()+len(report.Unplaced)),
	}
	if report.Attempts > 1 {
		parts = append(parts, fmt.Sprintf("attempts: %d", report.Attempts))
	}
	if report.RunID != "" {
		parts = append(parts, "run: "+shortRunID(report.RunID))
	}
	return strings.Join(parts, "  ")
}

func renderTeam(rank int, group domain.Group, maxDimension int, opts RenderOptions, s styles) string {
	parts := []string{
		s.team.Render(fmt.Sprintf("Team %d", rank)) + s.header.Render(fmt.Sprintf("  total %d", group.Score.Total())),
		s.members.Render(joinIDs(group.Members)),
	}

	for _, skill := range domain.AllSkills {
		parts = append(parts, scoreLine(skill, group.Score.Dimension(skill), maxDimension, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func scoreLine(skill domain.Skill, value, maxValue int, opts RenderOptions, s styles) string {
	label := s.scoreKey.Render(fmt.Sprintf("%-12s", skill.String()))
	text := s.barText.Render(fmt.Sprintf("%d", value))
	if opts.BarWidth < 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", text)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderBar(value, maxValue, opts.BarWidth, s),
		" ",
		text,
	)
}

func renderBar(value, maxValue, width int, s styles) string {
	filled := 0
	if maxValue > 0 {
		filled = int(math.Round(float64(width) * float64(value) / float64(maxValue)))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func joinIDs(people []domain.Person) string {
	ids := make([]string, 0, len(people))
	for _, person := range people {
		ids = append(ids, string(person.ID))
	}
	return strings.Join(ids, ", ")
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

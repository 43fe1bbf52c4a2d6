package teams

import (
	"strings"
	"testing"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() domain.Report {
	return domain.Report{
		RunID:     "5f0c6f5e-5d1c-4b7e-9c55-3f4a8a2b9d10",
		Strategy:  "skills",
		GroupSize: 2,
		Attempts:  1,
		Groups: []domain.Group{
			{Members: []domain.Person{{ID: "alice"}, {ID: "bob"}}, Score: domain.Score{Programming: 6, Debugging: 3, Algorithm: 4}},
			{Members: []domain.Person{{ID: "carol"}, {ID: "dave"}}, Score: domain.Score{Programming: 2, Debugging: 2, Algorithm: 2}},
		},
	}
}

func TestRenderTeams(t *testing.T) {
	output, err := Render(sampleReport(), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "Teams (skills, size 2)")
	assert.Contains(t, output, "teams: 2")
	assert.Contains(t, output, "people: 4")
	assert.Contains(t, output, "run: 5f0c6f5e")
	assert.NotContains(t, output, "attempts:")
	assert.Contains(t, output, "Team 1")
	assert.Contains(t, output, "total 13")
	assert.Contains(t, output, "alice, bob")
	assert.Contains(t, output, "programming")
	assert.Contains(t, output, "[")
	assert.NotContains(t, output, "Unplaced")

	assert.Less(t, strings.Index(output, "alice"), strings.Index(output, "carol"), "teams render in rank order")
}

func TestRenderUnplacedAndAttempts(t *testing.T) {
	report := sampleReport()
	report.Attempts = 7
	report.Unplaced = []domain.Person{{ID: "erin"}}

	output, err := Render(report, RenderOptions{BarWidth: -1})
	require.NoError(t, err)

	assert.Contains(t, output, "attempts: 7")
	assert.Contains(t, output, "people: 5")
	assert.Contains(t, output, "Unplaced: erin")
	assert.NotContains(t, output, "[")
}

func TestRenderNoTeams(t *testing.T) {
	output, err := Render(domain.Report{Strategy: "preferences", GroupSize: 3}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "No teams formed.")
}

func TestRenderBarScaling(t *testing.T) {
	s := newStyles()

	assert.Contains(t, renderBar(6, 6, 4, s), "====")
	assert.Contains(t, renderBar(0, 6, 4, s), "----")
	assert.Contains(t, renderBar(3, 6, 4, s), "==")
	assert.NotContains(t, renderBar(3, 6, 4, s), "===")
}

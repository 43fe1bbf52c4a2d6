package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/teambuilder-cli/internal/formation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterFixture = `username,programming,debugging,algorithm,avoid,prefer
alice,advanced,beginner,intermediate,,bob
bob,beginner,advanced,beginner,,
carol,intermediate,intermediate,advanced,dave,
dave,advanced,advanced,beginner,,
erin,beginner,beginner,beginner,,
frank,intermediate,beginner,advanced,,
`

type jsonReport struct {
	RunID     string `json:"run_id"`
	Strategy  string `json:"strategy"`
	GroupSize int    `json:"group_size"`
	Teams     []struct {
		Rank    int      `json:"rank"`
		Members []string `json:"members"`
		Score   struct {
			Total int `json:"total"`
		} `json:"score"`
	} `json:"teams"`
	Unplaced []string `json:"unplaced"`
}

func TestFormRendersTeamsAndWritesCSV(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)
	outputPath := filepath.Join(home, "teams_output.csv")

	stdout, _, err := executeCLI(t, home, "form", rosterPath, "--output", outputPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Teams (preferences, size 3)")
	assert.Contains(t, stdout, "Team 1")
	assert.Contains(t, stdout, "Team 2")
	assert.Contains(t, stdout, "Teams written to "+outputPath)

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Team 1,"))
	assert.True(t, strings.HasPrefix(lines[1], "Team 2,"))
}

func TestFormJSONOutput(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	stdout, _, err := executeCLI(t, home, "form", rosterPath,
		"--output", filepath.Join(home, "teams.csv"),
		"--strategy", "skills",
		"--size", "2",
		"--json",
	)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "skills", report.Strategy)
	assert.Equal(t, 2, report.GroupSize)
	assert.Len(t, report.Teams, 3)
	for i := 1; i < len(report.Teams); i++ {
		assert.GreaterOrEqual(t, report.Teams[i-1].Score.Total, report.Teams[i].Score.Total)
	}
}

func TestFormKeepsPreferredPairTogether(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	stdout, _, err := executeCLI(t, home, "form", rosterPath, "--output", filepath.Join(home, "teams.csv"), "--json")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	for _, team := range report.Teams {
		if contains(team.Members, "alice") {
			assert.Contains(t, team.Members, "bob")
		}
		if contains(team.Members, "carol") {
			assert.NotContains(t, team.Members, "dave")
		}
	}
}

func TestFormWritesTOMLWhenOutputExtensionSaysSo(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)
	outputPath := filepath.Join(home, "out", "teams.toml")

	_, _, err := executeCLI(t, home, "form", rosterPath, "--output", outputPath, "--json")
	require.NoError(t, err)

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "run_id = ")
	assert.Contains(t, string(raw), "[[teams]]")
}

func TestFormReadsYAMLRoster(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "class.yaml", `people:
  - id: ann
    skills: {programming: advanced, debugging: advanced, algorithm: advanced}
  - id: ben
    skills: {programming: beginner, debugging: beginner, algorithm: beginner}
`)

	stdout, _, err := executeCLI(t, home, "form", rosterPath, "--size", "2", "--output", filepath.Join(home, "teams.csv"), "--json")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Teams, 1)
	assert.ElementsMatch(t, []string{"ann", "ben"}, report.Teams[0].Members)
}

func TestFormInfeasibleRosterFails(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", `username,programming,debugging,algorithm,avoid,prefer
a,beginner,beginner,beginner,b,
b,beginner,beginner,beginner,,
`)
	outputPath := filepath.Join(home, "teams.csv")

	_, _, err := executeCLI(t, home, "form", rosterPath, "--size", "2", "--max-attempts", "5", "--output", outputPath)
	require.ErrorIs(t, err, formation.ErrInfeasible)
	assert.Contains(t, err.Error(), "could not form valid teams within 5 attempts")

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr), "nothing is exported on failure")
}

func TestFormWritesMetricsTextfile(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)
	metricsPath := filepath.Join(home, "tb.prom")

	_, _, err := executeCLI(t, home, "form", rosterPath,
		"--output", filepath.Join(home, "teams.csv"),
		"--metrics-file", metricsPath,
		"--json",
	)
	require.NoError(t, err)

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `teambuilder_formation_runs_total{outcome="complete",strategy="preferences"} 1`)
	assert.Contains(t, string(raw), "teambuilder_formation_groups 2")
}

func TestFormUsesConfigFile(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".teambuilder"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".teambuilder", "config.toml"), []byte("group_size = 2\nstrategy = \"skills\"\n"), 0o600))

	stdout, _, err := executeCLI(t, home, "form", rosterPath, "--output", filepath.Join(home, "teams.csv"), "--json")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 2, report.GroupSize)
	assert.Equal(t, "skills", report.Strategy)
}

func TestFormInteractivePrompts(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	stdout, _, err := executeCLIWithInput(t, home, strings.NewReader("4\nskills\n"),
		"form", rosterPath, "--interactive", "--output", filepath.Join(home, "teams.csv"), "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Team size [3/4]: ")

	report := decodeTrailingJSON(t, stdout)
	assert.Equal(t, 4, report.GroupSize)
	assert.Equal(t, "skills", report.Strategy)
}

func TestFormInteractiveSkipsPromptsForGivenFlags(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	stdout, _, err := executeCLIWithInput(t, home, strings.NewReader("\n"),
		"form", rosterPath, "-i", "--size", "2", "--output", filepath.Join(home, "teams.csv"), "--json")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Team size")

	report := decodeTrailingJSON(t, stdout)
	assert.Equal(t, 2, report.GroupSize)
	assert.Equal(t, "preferences", report.Strategy)
}

func TestFormInteractiveRejectsUnsupportedSize(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	_, _, err := executeCLIWithInput(t, home, strings.NewReader("5\n"), "form", rosterPath, "-i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team size must be 3 or 4")
}

func TestFormRejectsUnknownRosterExtension(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.xlsx", rosterFixture)

	_, _, err := executeCLI(t, home, "form", rosterPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported roster format")
}

func TestFormRejectsInvalidSkillLabel(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", "username,programming,debugging,algorithm\nalice,guru,beginner,beginner\n")

	_, _, err := executeCLI(t, home, "form", rosterPath, "--output", filepath.Join(home, "teams.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "invalid skill level")
}

func TestInspectSummarizesRoster(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture+"gina,beginner,beginner,beginner,ghost,\n")

	stdout, _, err := executeCLI(t, home, "inspect", rosterPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "people: 7")
	assert.Contains(t, stdout, "with preferences: 1")
	assert.Contains(t, stdout, "with avoidances: 2")
	assert.Contains(t, stdout, "unknown references: 1")
	assert.Contains(t, stdout, "gina -> ghost")
}

func TestInspectJSONOutput(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	stdout, _, err := executeCLI(t, home, "inspect", rosterPath, "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"people\": 6")
	assert.NotContains(t, stdout, "unknown_references")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUnknownLogLevelFails(t *testing.T) {
	home := t.TempDir()
	rosterPath := writeRosterFixture(t, home, "students.csv", rosterFixture)

	_, _, err := executeCLI(t, home, "inspect", rosterPath, "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, strings.NewReader(""), args...)
}

func executeCLIWithInput(t *testing.T, home string, input io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(input)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeRosterFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// decodeTrailingJSON skips interactive prompts written before the report.
func decodeTrailingJSON(t *testing.T, stdout string) jsonReport {
	t.Helper()

	start := strings.Index(stdout, "{")
	require.GreaterOrEqual(t, start, 0, "no JSON in output: %s", stdout)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(stdout[start:]), &report))
	return report
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

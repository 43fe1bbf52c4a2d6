package export

import (
	"time"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

const currentSchemaVersion = 1

type reportSchema struct {
	Version    int          `toml:"version" json:"version"`
	RunID      string       `toml:"run_id" json:"run_id"`
	Source     string       `toml:"source,omitempty" json:"source,omitempty"`
	Strategy   string       `toml:"strategy" json:"strategy"`
	GroupSize  int          `toml:"group_size" json:"group_size"`
	Attempts   int          `toml:"attempts" json:"attempts"`
	StartedAt  string       `toml:"started_at,omitempty" json:"started_at,omitempty"`
	DurationMS int64        `toml:"duration_ms" json:"duration_ms"`
	Teams      []teamSchema `toml:"teams" json:"teams"`
	Unplaced   []string     `toml:"unplaced,omitempty" json:"unplaced,omitempty"`
}

type teamSchema struct {
	Rank    int         `toml:"rank" json:"rank"`
	Members []string    `toml:"members" json:"members"`
	Score   scoreSchema `toml:"score" json:"score"`
}

type scoreSchema struct {
	Programming int `toml:"programming" json:"programming"`
	Debugging   int `toml:"debugging" json:"debugging"`
	Algorithm   int `toml:"algorithm" json:"algorithm"`
	Total       int `toml:"total" json:"total"`
}

func toSchema(report domain.Report) reportSchema {
	teams := make([]teamSchema, 0, len(report.Groups))
	for i, group := range report.Groups {
		teams = append(teams, teamSchema{
			Rank:    i + 1,
			Members: memberNames(group.Members),
			Score: scoreSchema{
				Programming: group.Score.Programming,
				Debugging:   group.Score.Debugging,
				Algorithm:   group.Score.Algorithm,
				Total:       group.Score.Total(),
			},
		})
	}

	return reportSchema{
		Version:    currentSchemaVersion,
		RunID:      report.RunID,
		Source:     report.Source,
		Strategy:   report.Strategy,
		GroupSize:  report.GroupSize,
		Attempts:   report.Attempts,
		StartedAt:  formatTime(report.StartedAt),
		DurationMS: report.Duration.Milliseconds(),
		Teams:      teams,
		Unplaced:   memberNames(report.Unplaced),
	}
}

func memberNames(people []domain.Person) []string {
	if len(people) == 0 {
		return nil
	}
	names := make([]string, 0, len(people))
	for _, person := range people {
		names = append(names, string(person.ID))
	}
	return names
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}

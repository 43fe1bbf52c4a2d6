package ports

import "github.com/bnema/teambuilder-cli/internal/domain"

// FormationRecorder observes finished formation runs.
type FormationRecorder interface {
	RecordFormation(report domain.Report)
	RecordFailure(strategy string, reason string)
}

type NopRecorder struct{}

func (NopRecorder) RecordFormation(domain.Report) {}

func (NopRecorder) RecordFailure(string, string) {}

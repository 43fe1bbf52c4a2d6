package application

import (
	"github.com/bnema/teambuilder-cli/internal/formation"
	"github.com/bnema/teambuilder-cli/internal/ports"
)

type FormTeamsCommand struct {
	Source ports.RosterSource
	// SourceName labels the roster in logs and exported reports.
	SourceName string
	// Exporter receives the report of a successful run. Nil skips export.
	Exporter ports.TeamExporter

	GroupSize   int
	Strategy    formation.Strategy
	ScoreFloors bool
	MaxAttempts int
}

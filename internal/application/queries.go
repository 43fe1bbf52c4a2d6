package application

import "github.com/bnema/teambuilder-cli/internal/domain"

type RosterSummary struct {
	People          int                `json:"people"`
	WithPreferences int                `json:"with_preferences"`
	WithAvoidances  int                `json:"with_avoidances"`
	Unknown         []UnknownReference `json:"unknown_references,omitempty"`
}

// UnknownReference is an avoid or prefer entry naming nobody on the roster.
type UnknownReference struct {
	Person    domain.PersonID `json:"person"`
	Reference domain.PersonID `json:"reference"`
}

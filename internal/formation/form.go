package formation

import (
	"context"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

type Result struct {
	Strategy  Strategy
	GroupSize int
	// Groups are ranked, highest total score first.
	Groups []domain.Group
	// Unplaced lists people no group could take without a conflict.
	Unplaced []domain.Person
	// Attempts is the number of formation passes run; always 1 for skills.
	Attempts int
}

func (r Result) Scores() []domain.Score {
	scores := make([]domain.Score, 0, len(r.Groups))
	for _, group := range r.Groups {
		scores = append(scores, group.Score)
	}
	return scores
}

func (r Result) Complete() bool {
	return len(r.Unplaced) == 0
}

// Form runs the selected strategy over roster, places any leftovers, then
// scores and ranks the groups.
func Form(ctx context.Context, roster domain.Roster, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if roster.Len() == 0 {
		return Result{}, domain.ErrEmptyRoster
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	people := roster.People()
	a := newAttempt(roster, opts.GroupSize, opts.Logger)
	result := Result{Strategy: opts.Strategy, GroupSize: opts.GroupSize, Attempts: 1}

	switch opts.Strategy {
	case StrategyPreferences:
		attempts, err := formPreferences(ctx, a, people, opts.MaxAttempts)
		if err != nil {
			return Result{Strategy: opts.Strategy, GroupSize: opts.GroupSize, Attempts: attempts}, err
		}
		result.Attempts = attempts
	case StrategySkills:
		a.balanceSkills(people)
	}

	result.Unplaced = a.distributeRemainder()
	for _, person := range result.Unplaced {
		opts.Logger.Warn("person could not be placed in any group", "person", person.ID)
	}

	result.Groups = ScoreGroups(a.groups, opts.GroupSize, opts.ScoreFloors)
	RankGroups(result.Groups)

	return result, nil
}

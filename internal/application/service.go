package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/formation"
	"github.com/bnema/teambuilder-cli/internal/ports"
	"github.com/google/uuid"
)

var ErrNoRosterSource = errors.New("roster source is required")

const (
	failureInfeasible = "infeasible"
	failureCanceled   = "canceled"
	failureInvalid    = "invalid"
)

type Service struct {
	recorder ports.FormationRecorder
	clock    ports.Clock
	logger   *slog.Logger
	newRunID func() string
}

func NewService(recorder ports.FormationRecorder, clock ports.Clock, logger *slog.Logger) *Service {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	return &Service{
		recorder: recorder,
		clock:    clock,
		logger:   logger,
		newRunID: uuid.NewString,
	}
}

// FormTeams loads the roster, forms the teams, records the run and hands
// the report to the exporter.
func (s *Service) FormTeams(ctx context.Context, cmd FormTeamsCommand) (domain.Report, error) {
	roster, err := s.loadRoster(ctx, cmd.Source)
	if err != nil {
		return domain.Report{}, err
	}

	runID := s.newRunID()
	log := s.logger.With("run_id", runID)
	s.warnUnknownReferences(log, roster)

	startedAt := s.clock.Now()
	result, err := formation.Form(ctx, roster, formation.Options{
		GroupSize:   cmd.GroupSize,
		Strategy:    cmd.Strategy,
		ScoreFloors: cmd.ScoreFloors,
		MaxAttempts: cmd.MaxAttempts,
		Logger:      log,
	})
	if err != nil {
		s.recorder.RecordFailure(string(cmd.Strategy), failureReason(err))
		return domain.Report{}, fmt.Errorf("form teams: %w", err)
	}

	report := domain.Report{
		RunID:     runID,
		Source:    cmd.SourceName,
		Strategy:  string(result.Strategy),
		GroupSize: result.GroupSize,
		Attempts:  result.Attempts,
		Groups:    result.Groups,
		Unplaced:  result.Unplaced,
		StartedAt: startedAt,
		Duration:  s.clock.Now().Sub(startedAt),
	}
	s.recorder.RecordFormation(report)

	log.Info("teams formed",
		"strategy", report.Strategy,
		"group_size", report.GroupSize,
		"people", roster.Len(),
		"teams", len(report.Groups),
		"unplaced", len(report.Unplaced),
		"attempts", report.Attempts,
		"duration", report.Duration,
	)

	if cmd.Exporter != nil {
		if err := cmd.Exporter.Export(ctx, report); err != nil {
			return report, fmt.Errorf("export teams: %w", err)
		}
	}

	return report, nil
}

func (s *Service) InspectRoster(ctx context.Context, source ports.RosterSource) (RosterSummary, error) {
	roster, err := s.loadRoster(ctx, source)
	if err != nil {
		return RosterSummary{}, err
	}

	summary := RosterSummary{People: roster.Len()}
	for _, person := range roster.People() {
		if person.HasPreferences() {
			summary.WithPreferences++
		}
		if len(person.Avoid) > 0 {
			summary.WithAvoidances++
		}
	}
	summary.Unknown = unknownReferences(roster)

	return summary, nil
}

func (s *Service) loadRoster(ctx context.Context, source ports.RosterSource) (domain.Roster, error) {
	if source == nil {
		return domain.Roster{}, ErrNoRosterSource
	}

	people, err := source.Load(ctx)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("load roster: %w", err)
	}

	roster, err := domain.NewRoster(people)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("build roster: %w", err)
	}

	return roster, nil
}

func (s *Service) warnUnknownReferences(log *slog.Logger, roster domain.Roster) {
	for _, ref := range unknownReferences(roster) {
		log.Warn("reference to unknown person ignored", "person", ref.Person, "reference", ref.Reference)
	}
}

// unknownReferences flattens Roster.UnknownReferences in roster order.
func unknownReferences(roster domain.Roster) []UnknownReference {
	byPerson := roster.UnknownReferences()
	if len(byPerson) == 0 {
		return nil
	}

	people := roster.People()
	order := make(map[domain.PersonID]int, len(people))
	for i, person := range people {
		order[person.ID] = i
	}

	ids := make([]domain.PersonID, 0, len(byPerson))
	for id := range byPerson {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return order[ids[i]] < order[ids[j]]
	})

	var refs []UnknownReference
	for _, id := range ids {
		for _, ref := range byPerson[id] {
			refs = append(refs, UnknownReference{Person: id, Reference: ref})
		}
	}
	return refs
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, formation.ErrInfeasible):
		return failureInfeasible
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return failureCanceled
	default:
		return failureInvalid
	}
}

package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/formation"
	"github.com/bnema/teambuilder-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func person(id string, prefer ...domain.PersonID) domain.Person {
	return domain.Person{
		ID:     domain.PersonID(id),
		Skills: domain.Skills{Programming: domain.Intermediate, Debugging: domain.Beginner, Algorithm: domain.Advanced},
		Prefer: prefer,
	}
}

func sixPeople() []domain.Person {
	return []domain.Person{
		person("a", "f"), person("b"), person("c"),
		person("d"), person("e"), person("f"),
	}
}

func newTestService(t *testing.T, recorder *mocks.MockFormationRecorder) *Service {
	t.Helper()

	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	svc := NewService(recorder, &steppingClock{now: start, step: 250 * time.Millisecond}, nil)
	svc.newRunID = func() string { return "run-1" }
	return svc
}

func TestServiceFormTeamsSuccess(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	exporter := mocks.NewMockTeamExporter(t)
	recorder := mocks.NewMockFormationRecorder(t)
	svc := newTestService(t, recorder)

	source.EXPECT().Load(mockAnyContext()).Return(sixPeople(), nil)
	recorder.EXPECT().RecordFormation(mock.MatchedBy(func(r domain.Report) bool {
		return r.RunID == "run-1" && len(r.Groups) == 2
	})).Return()

	var exported domain.Report
	exporter.EXPECT().Export(mockAnyContext(), mock.Anything).Run(func(_ context.Context, report domain.Report) {
		exported = report
	}).Return(nil)

	report, err := svc.FormTeams(context.Background(), FormTeamsCommand{
		Source:     source,
		SourceName: "students.csv",
		Exporter:   exporter,
		GroupSize:  3,
		Strategy:   formation.StrategyPreferences,
	})
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, "students.csv", report.Source)
	assert.Equal(t, "preferences", report.Strategy)
	assert.Equal(t, 1, report.Attempts)
	assert.Equal(t, 250*time.Millisecond, report.Duration)
	assert.Equal(t, 6, report.Placed())
	assert.Empty(t, report.Unplaced)
	assert.Equal(t, report, exported)

	var withA []domain.PersonID
	for _, group := range report.Groups {
		ids := group.MemberIDs()
		for _, id := range ids {
			if id == "a" {
				withA = ids
			}
		}
	}
	assert.Contains(t, withA, domain.PersonID("f"), "a's preference is honoured")
}

func TestServiceFormTeamsWithoutExporter(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	recorder := mocks.NewMockFormationRecorder(t)
	svc := newTestService(t, recorder)

	source.EXPECT().Load(mockAnyContext()).Return(sixPeople(), nil)
	recorder.EXPECT().RecordFormation(mock.Anything).Return()

	report, err := svc.FormTeams(context.Background(), FormTeamsCommand{
		Source:    source,
		GroupSize: 3,
		Strategy:  formation.StrategySkills,
	})
	require.NoError(t, err)
	assert.Equal(t, "skills", report.Strategy)
}

func TestServiceFormTeamsInfeasibleRecordsFailure(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	exporter := mocks.NewMockTeamExporter(t)
	recorder := mocks.NewMockFormationRecorder(t)
	svc := newTestService(t, recorder)

	a := person("a")
	a.Avoid = []domain.PersonID{"b"}
	source.EXPECT().Load(mockAnyContext()).Return([]domain.Person{a, person("b")}, nil)
	recorder.EXPECT().RecordFailure("preferences", failureInfeasible).Return()

	_, err := svc.FormTeams(context.Background(), FormTeamsCommand{
		Source:      source,
		Exporter:    exporter,
		GroupSize:   2,
		Strategy:    formation.StrategyPreferences,
		MaxAttempts: 3,
	})
	require.ErrorIs(t, err, formation.ErrInfeasible)

	var infeasible *formation.InfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.Equal(t, 3, infeasible.Attempts)
}

func TestServiceFormTeamsLoadError(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	recorder := mocks.NewMockFormationRecorder(t)
	svc := newTestService(t, recorder)

	loadErr := errors.New("disk on fire")
	source.EXPECT().Load(mockAnyContext()).Return(nil, loadErr)

	_, err := svc.FormTeams(context.Background(), FormTeamsCommand{Source: source, GroupSize: 3, Strategy: formation.StrategySkills})
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "load roster")
}

func TestServiceFormTeamsRejectsInvalidRoster(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	recorder := mocks.NewMockFormationRecorder(t)
	svc := newTestService(t, recorder)

	source.EXPECT().Load(mockAnyContext()).Return([]domain.Person{person("a"), person("a")}, nil)

	_, err := svc.FormTeams(context.Background(), FormTeamsCommand{Source: source, GroupSize: 3, Strategy: formation.StrategySkills})
	require.ErrorIs(t, err, domain.ErrDuplicatePerson)
}

func TestServiceFormTeamsExportError(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	exporter := mocks.NewMockTeamExporter(t)
	recorder := mocks.NewMockFormationRecorder(t)
	svc := newTestService(t, recorder)

	exportErr := errors.New("read-only filesystem")
	source.EXPECT().Load(mockAnyContext()).Return(sixPeople(), nil)
	recorder.EXPECT().RecordFormation(mock.Anything).Return()
	exporter.EXPECT().Export(mockAnyContext(), mock.Anything).Return(exportErr)

	report, err := svc.FormTeams(context.Background(), FormTeamsCommand{
		Source:    source,
		Exporter:  exporter,
		GroupSize: 3,
		Strategy:  formation.StrategySkills,
	})
	require.ErrorIs(t, err, exportErr)
	assert.Len(t, report.Groups, 2, "the formed report is still returned")
}

func TestServiceFormTeamsRequiresSource(t *testing.T) {
	svc := NewService(nil, nil, nil)

	_, err := svc.FormTeams(context.Background(), FormTeamsCommand{GroupSize: 3, Strategy: formation.StrategySkills})
	require.ErrorIs(t, err, ErrNoRosterSource)
}

func TestServiceInspectRoster(t *testing.T) {
	source := mocks.NewMockRosterSource(t)
	svc := NewService(nil, nil, nil)

	b := person("b")
	b.Avoid = []domain.PersonID{"ghost", "a"}
	c := person("c", "nobody")
	source.EXPECT().Load(mockAnyContext()).Return([]domain.Person{person("a", "b"), b, c}, nil)

	summary, err := svc.InspectRoster(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, RosterSummary{
		People:          3,
		WithPreferences: 2,
		WithAvoidances:  1,
		Unknown: []UnknownReference{
			{Person: "b", Reference: "ghost"},
			{Person: "c", Reference: "nobody"},
		},
	}, summary)
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "infeasible", err: &formation.InfeasibleError{Attempts: 1}, want: failureInfeasible},
		{name: "canceled", err: context.Canceled, want: failureCanceled},
		{name: "deadline", err: context.DeadlineExceeded, want: failureCanceled},
		{name: "anything else", err: formation.ErrInvalidGroupSize, want: failureInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, failureReason(tt.err))
		})
	}
}

type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

func mockAnyContext() interface{} {
	return mock.Anything
}

package formation

import (
	"log/slog"
	"slices"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

// attempt owns the mutable state of one formation pass: the groups under
// construction and the assigned/remaining partition of the roster.
type attempt struct {
	roster    domain.Roster
	size      int
	groups    [][]domain.Person
	assigned  map[domain.PersonID]struct{}
	remaining []domain.Person
	log       *slog.Logger
}

func newAttempt(roster domain.Roster, size int, log *slog.Logger) *attempt {
	return &attempt{
		roster: roster,
		size:   size,
		groups: make([][]domain.Person, groupCount(roster.Len(), size)),
		log:    log,
	}
}

func groupCount(people, size int) int {
	return (people + size - 1) / size
}

// reset clears every group and puts all of pool back into remaining, in order.
func (a *attempt) reset(pool []domain.Person) {
	for i := range a.groups {
		a.groups[i] = make([]domain.Person, 0, a.size)
	}
	a.assigned = make(map[domain.PersonID]struct{}, len(pool))
	a.remaining = slices.Clone(pool)
}

func (a *attempt) isAssigned(id domain.PersonID) bool {
	_, ok := a.assigned[id]
	return ok
}

func (a *attempt) hasRoom(group int) bool {
	return len(a.groups[group]) < a.size
}

func (a *attempt) assign(group int, person domain.Person) {
	a.groups[group] = append(a.groups[group], person)
	a.assigned[person.ID] = struct{}{}
	a.remaining = slices.DeleteFunc(a.remaining, func(p domain.Person) bool {
		return p.ID == person.ID
	})
}

// expectedSize is the size group must reach for an attempt to be accepted.
// Every group is full except the last, which takes whatever is left when the
// roster is not a multiple of the group size.
func (a *attempt) expectedSize(group int) int {
	if group < len(a.groups)-1 {
		return a.size
	}
	return a.roster.Len() - a.size*(len(a.groups)-1)
}

// fill tops the group up with the first conflict-free people in remaining order.
func (a *attempt) fill(group int) {
	for a.hasRoom(group) {
		i := slices.IndexFunc(a.remaining, func(p domain.Person) bool {
			return CanJoin(a.groups[group], p)
		})
		if i < 0 {
			return
		}
		a.assign(group, a.remaining[i])
	}
}

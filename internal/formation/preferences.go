package formation

import (
	"context"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

// leaderRotation is the pool of group leaders discovered so far. It survives
// across attempts; each rejected attempt rotates it so the next one starts
// from a different seed.
type leaderRotation struct {
	pool []domain.Person
	next int
}

// pick returns the next pool leader not yet placed in this attempt, or
// discovers a new one from the remaining people when the pool is exhausted.
func (r *leaderRotation) pick(a *attempt) domain.Person {
	for r.next < len(r.pool) {
		candidate := r.pool[r.next]
		r.next++
		if !a.isAssigned(candidate.ID) {
			return candidate
		}
	}

	leader := a.remaining[0]
	for _, person := range a.remaining {
		if person.HasPreferences() {
			leader = person
			break
		}
	}
	r.pool = append(r.pool, leader)
	r.next = len(r.pool)

	return leader
}

// rotate moves the most recently discovered leader to the front.
func (r *leaderRotation) rotate() {
	if n := len(r.pool); n > 1 {
		last := r.pool[n-1]
		copy(r.pool[1:], r.pool[:n-1])
		r.pool[0] = last
	}
	r.next = 0
}

func formPreferences(ctx context.Context, a *attempt, people []domain.Person, maxAttempts int) (int, error) {
	withPreferences := 0
	for _, person := range people {
		if person.HasPreferences() {
			withPreferences++
		}
	}
	a.log.Debug("preference formation starting", "people", len(people), "with_preferences", withPreferences, "groups", len(a.groups))

	rotation := &leaderRotation{}
	for n := 1; n <= maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return n - 1, err
		}

		a.reset(people)
		for group := range a.groups {
			if len(a.remaining) == 0 {
				break
			}

			leader := rotation.pick(a)
			a.assign(group, leader)
			a.log.Debug("assigned leader", "attempt", n, "group", group+1, "leader", leader.ID)

			a.propagate(group, leader)
		}

		if reason, ok := a.accepted(); !ok {
			a.log.Debug("attempt rejected, restarting", "attempt", n, "reason", reason)
			rotation.rotate()
			continue
		}

		return n, nil
	}

	return maxAttempts, &InfeasibleError{Attempts: maxAttempts}
}

// propagate chains one hop through the leader's preferences and one through
// the new member's, falls back to the leader's list once more if the second
// hop fails, then fills any room left in roster order.
func (a *attempt) propagate(group int, leader domain.Person) {
	if a.addPreferred(group, leader) && a.hasRoom(group) {
		second := a.groups[group][len(a.groups[group])-1]
		if !a.addPreferred(group, second) {
			a.addPreferred(group, leader)
		}
	}

	a.fill(group)
}

// addPreferred places the first of from's preferences that is unassigned,
// on the roster and conflict-free with the group.
func (a *attempt) addPreferred(group int, from domain.Person) bool {
	if !a.hasRoom(group) {
		return false
	}

	for _, id := range from.Prefer {
		if a.isAssigned(id) {
			continue
		}
		person, ok := a.roster.Get(id)
		if !ok {
			continue
		}
		if !CanJoin(a.groups[group], person) {
			continue
		}
		a.assign(group, person)
		return true
	}

	return false
}

func (a *attempt) accepted() (string, bool) {
	for group, members := range a.groups {
		if len(members) != a.expectedSize(group) {
			return "unequal group sizes", false
		}
		if !conflictFree(members) {
			return "conflicting group members", false
		}
	}
	return "", true
}

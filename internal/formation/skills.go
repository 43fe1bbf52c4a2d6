package formation

import (
	"slices"
	"sort"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

// balanceSkills deals people, strongest first, across the groups. One pass
// runs per skill dimension; a pass only places people an earlier pass could
// not, so later passes usually find an empty pool.
func (a *attempt) balanceSkills(people []domain.Person) {
	a.reset(bySkillTotal(people))
	for _, skill := range domain.AllSkills {
		before := len(a.remaining)
		a.balancePass()
		a.log.Debug("skill pass finished", "pass", skill.String(), "placed", before-len(a.remaining), "remaining", len(a.remaining))
	}
}

// balancePass offers the person under a shared cyclic cursor to the first
// group with room that it does not conflict with. The cursor advances after
// every offer. The pass ends when the pool is empty or a full cycle over it
// places nobody.
func (a *attempt) balancePass() {
	cursor, idle := 0, 0
	for len(a.remaining) > 0 && idle < len(a.remaining) {
		candidate := a.remaining[cursor%len(a.remaining)]
		placed := false
		for group := range a.groups {
			if a.hasRoom(group) && CanJoin(a.groups[group], candidate) {
				a.assign(group, candidate)
				placed = true
				break
			}
		}

		cursor++
		if placed {
			idle = 0
		} else {
			idle++
		}
	}
}

func bySkillTotal(people []domain.Person) []domain.Person {
	sorted := slices.Clone(people)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Skills.Total() > sorted[j].Skills.Total()
	})
	return sorted
}

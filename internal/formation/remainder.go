package formation

import (
	"slices"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

// distributeRemainder places leftover people greedily and returns whoever
// could not be placed anywhere.
func (a *attempt) distributeRemainder() []domain.Person {
	for len(a.remaining) > 0 && a.placeOne() {
	}
	return slices.Clone(a.remaining)
}

func (a *attempt) placeOne() bool {
	for group := range a.groups {
		if !a.hasRoom(group) {
			continue
		}
		for _, candidate := range a.remaining {
			if CanJoin(a.groups[group], candidate) {
				a.assign(group, candidate)
				return true
			}
		}
	}
	return false
}

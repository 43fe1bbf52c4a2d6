package formation

import "github.com/bnema/teambuilder-cli/internal/domain"

// CanJoin reports whether candidate may join members. Avoidance is checked in
// both directions since either side may have listed the other.
func CanJoin(members []domain.Person, candidate domain.Person) bool {
	for _, member := range members {
		if member.Avoids(candidate.ID) || candidate.Avoids(member.ID) {
			return false
		}
	}
	return true
}

func conflictFree(members []domain.Person) bool {
	for i := range members {
		if !CanJoin(members[:i], members[i]) {
			return false
		}
	}
	return true
}

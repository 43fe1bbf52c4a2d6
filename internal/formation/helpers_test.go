package formation

import "github.com/bnema/teambuilder-cli/internal/domain"

func person(id string, programming, debugging, algorithm domain.SkillLevel) domain.Person {
	return domain.Person{
		ID:     domain.PersonID(id),
		Skills: domain.Skills{Programming: programming, Debugging: debugging, Algorithm: algorithm},
	}
}

func ids(members []domain.Person) []domain.PersonID {
	out := make([]domain.PersonID, 0, len(members))
	for _, member := range members {
		out = append(out, member.ID)
	}
	return out
}

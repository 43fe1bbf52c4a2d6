package domain

// Score is the per-group sum of each skill dimension.
type Score struct {
	Programming int
	Debugging   int
	Algorithm   int
}

func (s Score) Total() int {
	return s.Programming + s.Debugging + s.Algorithm
}

func (s Score) Dimension(skill Skill) int {
	switch skill {
	case SkillProgramming:
		return s.Programming
	case SkillDebugging:
		return s.Debugging
	case SkillAlgorithm:
		return s.Algorithm
	default:
		return 0
	}
}

type Group struct {
	Members []Person
	Score   Score
}

func (g Group) Size() int {
	return len(g.Members)
}

func (g Group) MemberIDs() []PersonID {
	ids := make([]PersonID, 0, len(g.Members))
	for _, member := range g.Members {
		ids = append(ids, member.ID)
	}
	return ids
}

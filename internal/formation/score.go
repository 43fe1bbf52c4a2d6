package formation

import (
	"sort"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

// Floor is the minimum score a group is credited with when score floors are on.
type Floor struct {
	Dimension int
	Total     int
}

// DefaultFloors holds the floor policy per group size. Sizes without an entry
// are never adjusted.
var DefaultFloors = map[int]Floor{
	3: {Dimension: 5, Total: 16},
	4: {Dimension: 7, Total: 22},
}

// Apply raises each dimension to the floor, then spreads any remaining total
// shortfall evenly, giving the integer remainder to the third dimension.
func (f Floor) Apply(s domain.Score) domain.Score {
	s.Programming = max(s.Programming, f.Dimension)
	s.Debugging = max(s.Debugging, f.Dimension)
	s.Algorithm = max(s.Algorithm, f.Dimension)

	if diff := f.Total - s.Total(); diff > 0 {
		s.Programming += diff / 3
		s.Debugging += diff / 3
		s.Algorithm += diff - 2*(diff/3)
	}

	return s
}

func ScoreMembers(members []domain.Person) domain.Score {
	var s domain.Score
	for _, member := range members {
		s.Programming += int(member.Skills.Programming)
		s.Debugging += int(member.Skills.Debugging)
		s.Algorithm += int(member.Skills.Algorithm)
	}
	return s
}

// ScoreGroups attaches a score to each group, applying the floor for
// groupSize when floors is set.
func ScoreGroups(groups [][]domain.Person, groupSize int, floors bool) []domain.Group {
	floor, hasFloor := DefaultFloors[groupSize]

	scored := make([]domain.Group, 0, len(groups))
	for _, members := range groups {
		score := ScoreMembers(members)
		if floors && hasFloor {
			score = floor.Apply(score)
		}
		scored = append(scored, domain.Group{Members: members, Score: score})
	}

	return scored
}

// RankGroups orders groups by descending total score. Ties keep their order.
func RankGroups(groups []domain.Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Score.Total() > groups[j].Score.Total()
	})
}

package domain

import (
	"fmt"
	"strings"
)

type SkillLevel int

const (
	Beginner     SkillLevel = 1
	Intermediate SkillLevel = 2
	Advanced     SkillLevel = 3
)

func (l SkillLevel) Valid() bool {
	return l >= Beginner && l <= Advanced
}

func (l SkillLevel) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return fmt.Sprintf("SkillLevel(%d)", int(l))
	}
}

// ParseSkillLevel maps a categorical label (case-insensitive) to its level.
func ParseSkillLevel(label string) (SkillLevel, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSkillLevel, label)
	}
}

// Skill indexes one of the three independent skill dimensions.
type Skill int

const (
	SkillProgramming Skill = iota
	SkillDebugging
	SkillAlgorithm
)

var AllSkills = [...]Skill{SkillProgramming, SkillDebugging, SkillAlgorithm}

func (s Skill) String() string {
	switch s {
	case SkillProgramming:
		return "programming"
	case SkillDebugging:
		return "debugging"
	case SkillAlgorithm:
		return "algorithm"
	default:
		return "unknown"
	}
}

type Skills struct {
	Programming SkillLevel
	Debugging   SkillLevel
	Algorithm   SkillLevel
}

func (s Skills) Level(skill Skill) SkillLevel {
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

func (s Skills) Total() int {
	return int(s.Programming) + int(s.Debugging) + int(s.Algorithm)
}

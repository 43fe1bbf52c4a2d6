package domain

import (
	"fmt"
	"slices"
	"strings"
)

type PersonID string

// NormalizePersonID trims and lower-cases a raw identifier.
func NormalizePersonID(raw string) PersonID {
	return PersonID(strings.ToLower(strings.TrimSpace(raw)))
}

type Person struct {
	ID     PersonID
	Skills Skills
	Avoid  []PersonID
	Prefer []PersonID
}

func (p Person) Avoids(id PersonID) bool {
	return slices.Contains(p.Avoid, id)
}

func (p Person) HasPreferences() bool {
	return len(p.Prefer) > 0
}

func (p Person) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return ErrEmptyPersonID
	}
	for _, skill := range AllSkills {
		if !p.Skills.Level(skill).Valid() {
			return fmt.Errorf("person %s: %s skill %d: %w", p.ID, skill, p.Skills.Level(skill), ErrInvalidSkillLevel)
		}
	}

	return nil
}

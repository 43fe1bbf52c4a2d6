// Package yaml loads a roster from a YAML document:
//
//	people:
//	  - id: alice
//	    skills: {programming: advanced, debugging: beginner, algorithm: intermediate}
//	    avoid: [bob]
//	    prefer: [carol, dave]
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/ports"
	"gopkg.in/yaml.v3"
)

type rawRoster struct {
	People []rawPerson `yaml:"people"`
}

type rawPerson struct {
	ID     string    `yaml:"id"`
	Skills rawSkills `yaml:"skills"`
	Avoid  []string  `yaml:"avoid"`
	Prefer []string  `yaml:"prefer"`

	line int
}

type rawSkills struct {
	Programming string `yaml:"programming"`
	Debugging   string `yaml:"debugging"`
	Algorithm   string `yaml:"algorithm"`
}

func (p *rawPerson) UnmarshalYAML(node *yaml.Node) error {
	type plain rawPerson
	if err := node.Decode((*plain)(p)); err != nil {
		return err
	}
	p.line = node.Line
	return nil
}

var _ ports.RosterSource = (*Reader)(nil)

type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) Load(ctx context.Context) ([]domain.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	people, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	return people, nil
}

func Parse(data []byte) ([]domain.Person, error) {
	var raw rawRoster
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	people := make([]domain.Person, 0, len(raw.People))
	for _, entry := range raw.People {
		person, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", entry.line, err)
		}
		people = append(people, person)
	}

	return people, nil
}

func (p rawPerson) toDomain() (domain.Person, error) {
	id := domain.NormalizePersonID(p.ID)
	if id == "" {
		return domain.Person{}, domain.ErrEmptyPersonID
	}

	labels := [...]string{p.Skills.Programming, p.Skills.Debugging, p.Skills.Algorithm}
	var levels [3]domain.SkillLevel
	for i, skill := range domain.AllSkills {
		level, err := domain.ParseSkillLevel(labels[i])
		if err != nil {
			return domain.Person{}, fmt.Errorf("%s %s: %w", id, skill, err)
		}
		levels[i] = level
	}

	return domain.Person{
		ID:     id,
		Skills: domain.Skills{Programming: levels[0], Debugging: levels[1], Algorithm: levels[2]},
		Avoid:  normalizeIDs(p.Avoid),
		Prefer: normalizeIDs(p.Prefer),
	}, nil
}

func normalizeIDs(raw []string) []domain.PersonID {
	var ids []domain.PersonID
	for _, token := range raw {
		if id := domain.NormalizePersonID(token); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

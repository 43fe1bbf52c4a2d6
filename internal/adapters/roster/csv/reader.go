// Package csv loads a roster from a CSV file with one person per row:
// username, programming, debugging, algorithm, avoid list, prefer list.
// The first row is a header. Lists are semicolon separated.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/ports"
)

const (
	colUsername = iota
	colProgramming
	colDebugging
	colAlgorithm
	colAvoid
	colPrefer

	minColumns    = colAlgorithm + 1
	listSeparator = ";"
)

var ErrMalformedRow = errors.New("malformed roster row")

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

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer file.Close()

	people, err := Parse(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	return people, nil
}

// Parse reads people from CSV content, skipping the header row.
func Parse(ctx context.Context, in io.Reader) ([]domain.Person, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read roster header: %w", err)
	}

	var people []domain.Person
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		person, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		people = append(people, person)
	}

	return people, nil
}

func parseRecord(record []string) (domain.Person, error) {
	if len(record) < minColumns {
		return domain.Person{}, fmt.Errorf("%w: want at least %d columns, got %d", ErrMalformedRow, minColumns, len(record))
	}

	id := domain.NormalizePersonID(record[colUsername])
	if id == "" {
		return domain.Person{}, domain.ErrEmptyPersonID
	}

	var levels [3]domain.SkillLevel
	for i, skill := range domain.AllSkills {
		level, err := domain.ParseSkillLevel(record[colProgramming+i])
		if err != nil {
			return domain.Person{}, fmt.Errorf("%s %s: %w", id, skill, err)
		}
		levels[i] = level
	}

	return domain.Person{
		ID: id,
		Skills: domain.Skills{
			Programming: levels[0],
			Debugging:   levels[1],
			Algorithm:   levels[2],
		},
		Avoid:  parseList(record, colAvoid),
		Prefer: parseList(record, colPrefer),
	}, nil
}

func parseList(record []string, col int) []domain.PersonID {
	if col >= len(record) {
		return nil
	}

	var ids []domain.PersonID
	for _, token := range strings.Split(record[col], listSeparator) {
		if id := domain.NormalizePersonID(token); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

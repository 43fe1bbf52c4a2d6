package domain

import "errors"

var (
	ErrInvalidSkillLevel = errors.New("invalid skill level")
	ErrEmptyPersonID     = errors.New("person id is required")
	ErrDuplicatePerson   = errors.New("duplicate person")
	ErrEmptyRoster       = errors.New("roster is empty")
)

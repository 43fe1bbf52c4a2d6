package formation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGroupSize = errors.New("group size must be positive")
	ErrUnknownStrategy  = errors.New("unknown formation strategy")
	ErrInfeasible       = errors.New("could not form valid teams")
)

// InfeasibleError is returned when preference formation runs out of attempts.
type InfeasibleError struct {
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("could not form valid teams within %d attempts", e.Attempts)
}

func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasible
}

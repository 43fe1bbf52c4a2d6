package ports

import (
	"context"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

// RosterSource yields people in a stable load order.
type RosterSource interface {
	Load(ctx context.Context) ([]domain.Person, error)
}

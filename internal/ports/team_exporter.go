package ports

import (
	"context"

	"github.com/bnema/teambuilder-cli/internal/domain"
)

type TeamExporter interface {
	Export(ctx context.Context, report domain.Report) error
}

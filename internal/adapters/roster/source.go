// Package roster picks a roster reader for a file by its extension.
package roster

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	csvroster "github.com/bnema/teambuilder-cli/internal/adapters/roster/csv"
	yamlroster "github.com/bnema/teambuilder-cli/internal/adapters/roster/yaml"
	"github.com/bnema/teambuilder-cli/internal/ports"
)

var ErrUnsupportedFormat = errors.New("unsupported roster format")

func ForPath(path string) (ports.RosterSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return csvroster.NewReader(path), nil
	case ".yaml", ".yml":
		return yamlroster.NewReader(path), nil
	default:
		return nil, fmt.Errorf("%w %q (expected .csv, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

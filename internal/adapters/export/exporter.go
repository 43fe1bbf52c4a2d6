// Package export writes a formation report to disk as CSV, TOML or JSON.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	FormatCSV  = "csv"
	FormatTOML = "toml"
	FormatJSON = "json"

	exportFileMode  = 0o644
	exportDirMode   = 0o755
	tempFilePattern = ".teams-*.tmp"

	unplacedLabel = "Unplaced"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrEmptyPath     = errors.New("export path is empty")
)

var _ ports.TeamExporter = (*Exporter)(nil)

type Exporter struct {
	path   string
	format string
}

func NewExporter(path, format string) (*Exporter, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case FormatCSV, FormatTOML, FormatJSON:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve export path: %w", err)
	}

	return &Exporter{path: filepath.Clean(absPath), format: format}, nil
}

func (e *Exporter) Path() string {
	return e.path
}

func (e *Exporter) Export(ctx context.Context, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(report, e.format)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFileAtomic(e.path, data)
}

// Encode renders report in format. Unknown formats fall back to CSV.
func Encode(report domain.Report, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		data, err := toml.Marshal(toSchema(report))
		if err != nil {
			return nil, fmt.Errorf("encode toml report: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(toSchema(report), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json report: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return encodeCSV(report)
	}
}

// encodeCSV writes one "Team N,member,..." row per group in rank order,
// followed by an "Unplaced,..." row when anyone was left out.
func encodeCSV(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for i, group := range report.Groups {
		row := append([]string{fmt.Sprintf("Team %d", i+1)}, memberNames(group.Members)...)
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode csv report: %w", err)
		}
	}
	if len(report.Unplaced) > 0 {
		row := append([]string{unplacedLabel}, memberNames(report.Unplaced)...)
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode csv report: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode csv report: %w", err)
	}

	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), exportDirMode); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp export file: %w", err)
	}

	if err := tempFile.Chmod(exportFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp export file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}

	cleanup = false

	return nil
}

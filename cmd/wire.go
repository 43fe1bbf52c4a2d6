package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/teambuilder-cli/internal/adapters/export"
	promrecorder "github.com/bnema/teambuilder-cli/internal/adapters/metrics/prometheus"
	teamsrender "github.com/bnema/teambuilder-cli/internal/adapters/render/teams"
	"github.com/bnema/teambuilder-cli/internal/adapters/roster"
	"github.com/bnema/teambuilder-cli/internal/application"
	"github.com/bnema/teambuilder-cli/internal/config"
	"github.com/bnema/teambuilder-cli/internal/domain"
	"github.com/bnema/teambuilder-cli/internal/logging"
	"github.com/bnema/teambuilder-cli/internal/ports"
)

type app struct {
	service       *application.Service
	recorder      *promrecorder.Recorder
	logger        *slog.Logger
	teamsRenderer func(domain.Report, teamsrender.RenderOptions) (string, error)
	rosterSource  func(path string) (ports.RosterSource, error)
	newExporter   func(path, format string) (*export.Exporter, error)
}

func wireApp(cfg config.Config, logOutput io.Writer) (*app, error) {
	logger, err := logging.New(logOutput, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	recorder := promrecorder.NewRecorder()

	return &app{
		service:       application.NewService(recorder, ports.SystemClock{}, logger),
		recorder:      recorder,
		logger:        logger,
		teamsRenderer: teamsrender.Render,
		rosterSource:  roster.ForPath,
		newExporter:   newFileExporter,
	}, nil
}

func newFileExporter(path, format string) (*export.Exporter, error) {
	exporter, err := export.NewExporter(path, format)
	if err != nil {
		return nil, fmt.Errorf("wire team exporter: %w", err)
	}
	return exporter, nil
}

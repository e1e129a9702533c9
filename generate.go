package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/NickyBoy89/ifacereport/config"
	"github.com/NickyBoy89/ifacereport/parsing"
	"github.com/NickyBoy89/ifacereport/report"
	log "github.com/sirupsen/logrus"
)

// GenerateReport loads the configured source file and builds the report for
// its interface. Nothing is returned but the error if either step fails
func GenerateReport(ctx context.Context, conf config.Config) (report.Report, error) {
	unit, err := parsing.Load(ctx, conf.Source)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	lines, err := report.Build(unit, conf.Interface)
	if err != nil {
		return nil, fmt.Errorf("building report for %s: %w", unit.Name, err)
	}

	return lines, nil
}

// runReport generates and renders a single report. The output is only
// written once the whole report has been rendered
func runReport(ctx context.Context, conf config.Config, out io.Writer) error {
	renderer, err := report.NewRenderer(conf.Format)
	if err != nil {
		return err
	}

	fields := log.Fields{
		"source":    conf.Source,
		"interface": conf.Interface,
	}
	log.WithFields(fields).Info("Started report")

	lines, err := GenerateReport(ctx, conf)
	if err != nil {
		return err
	}

	var rendered bytes.Buffer
	if err := renderer.Render(&rendered, lines); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if _, err := rendered.WriteTo(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fields["lines"] = len(lines)
	log.WithFields(fields).Info("Finished report")
	return nil
}

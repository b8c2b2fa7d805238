package app

import (
	"context"

	"posprep/domain/report"
	"posprep/domain/workbook"
	"posprep/internal/config"
	"posprep/internal/logging"
	"posprep/internal/validation"
	"posprep/ports"
)

// ValidationService is the application boundary around the engine: it
// opens uploaded containers, runs validation and applies accepted fixes.
// Transport layers hand it bytes and consume reports; nothing else
// crosses the boundary.
type ValidationService struct {
	cfg     config.EngineConfig
	catalog workbook.Catalog
	source  ports.DocumentSource
	writer  ports.DocumentWriter
	engine  *validation.Engine
}

// NewValidationService wires the service with its collaborators.
func NewValidationService(
	cfg config.EngineConfig,
	catalog workbook.Catalog,
	source ports.DocumentSource,
	writer ports.DocumentWriter,
	matcher ports.SimilarityMatcher,
	logger *logging.Logger,
) *ValidationService {
	return &ValidationService{
		cfg:     cfg,
		catalog: catalog,
		source:  source,
		writer:  writer,
		engine:  validation.NewEngine(cfg, catalog, matcher, logger),
	}
}

// Verify validates one uploaded container. The only error returned is
// an unreadable document; every other finding is inside the report.
func (s *ValidationService) Verify(ctx context.Context, data []byte) (report.Report, error) {
	doc, err := s.source.Open(data)
	if err != nil {
		return report.Report{}, err
	}
	return s.engine.Run(ctx, doc), nil
}

// ApplyAccepted writes the accepted suggestions onto a copy of the
// original container. Issues without a suggestion are ignored; every
// cell outside the targeted ones stays byte-identical.
func (s *ValidationService) ApplyAccepted(ctx context.Context, data []byte, accepted []report.Issue) ([]byte, error) {
	doc, err := s.source.Open(data)
	if err != nil {
		return nil, err
	}
	fixes := validation.PlanFixes(doc, s.catalog, s.cfg, accepted)
	return s.writer.ApplyFixes(data, fixes)
}

package validation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"posprep/domain/report"
	"posprep/domain/workbook"
	"posprep/internal/config"
	"posprep/internal/logging"
	"posprep/ports"
)

// Engine runs one validation pass over an in-memory Document: resolve
// and load every catalog table, build the trusted reference universe,
// run the per-table checks, attach suggestions and score the result.
// Engines hold no per-run state and are safe to reuse across runs.
type Engine struct {
	cfg     config.EngineConfig
	catalog workbook.Catalog
	matcher ports.SimilarityMatcher
	logger  *logging.Logger
}

// NewEngine wires an engine. A nil logger falls back to the default.
func NewEngine(cfg config.EngineConfig, catalog workbook.Catalog, matcher ports.SimilarityMatcher, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Engine{cfg: cfg, catalog: catalog, matcher: matcher, logger: logger}
}

// loadedTable pairs a catalog entry with its load outcome. table is nil
// when the sheet is missing or the header never resolved; the table is
// then absent and contributes nothing anywhere.
type loadedTable struct {
	spec  workbook.TableSpec
	table *workbook.LogicalTable
	empty bool
}

// Run validates a document. All findings surface as issues; the only
// error path a caller ever sees is upstream, when the document itself
// cannot be opened.
func (e *Engine) Run(ctx context.Context, doc *workbook.Document) report.Report {
	rep := report.NewReport()

	// Phase 1: resolve and load every table. Loading is cheap and the
	// trusted tables must exist before any cross-reference runs, so
	// this phase stays sequential.
	loaded := make([]loadedTable, len(e.catalog))
	mandatoryEmpty := false
	for i, spec := range e.catalog {
		lt := e.load(doc, spec)
		loaded[i] = lt
		if lt.empty {
			rep.Issues = append(rep.Issues, report.Issue{
				Severity: report.SeverityCritical,
				Kind:     report.KindEmptyTable,
				Table:    spec.Name,
				Sheet:    spec.SheetName,
				Message:  fmt.Sprintf("%s contains no usable rows", spec.SheetName),
			})
			if spec.Mandatory {
				mandatoryEmpty = true
			}
		}
	}

	universe := e.buildUniverse(loaded)

	// Phase 2: per-table checks are independent once the universe
	// exists, so they run concurrently. Each goroutine writes only its
	// own slot.
	results := make([][]report.Issue, len(loaded))
	profiles := make([][]report.ColumnProfile, len(loaded))
	g, _ := errgroup.WithContext(ctx)
	for i := range loaded {
		g.Go(func() error {
			if loaded[i].table == nil || loaded[i].empty {
				return nil
			}
			results[i] = e.checkTable(loaded[i], universe)
			profiles[i] = profileTable(loaded[i])
			return nil
		})
	}
	// Goroutines return no errors; findings are issues by contract.
	_ = g.Wait()

	for i := range loaded {
		rep.Issues = append(rep.Issues, results[i]...)
		tr := report.TableReport{
			Table:    loaded[i].spec.Name,
			Sheet:    loaded[i].spec.SheetName,
			Present:  loaded[i].table != nil,
			Profiles: profiles[i],
		}
		if loaded[i].table != nil {
			tr.RowCount = len(loaded[i].table.Rows)
		}
		rep.Tables = append(rep.Tables, tr)
	}

	rep.Issues = AttachSuggestions(rep.Issues, universe, e.matcher, e.cfg.SuggestionThreshold)
	rep.Score = report.ComputeScore(rep.Issues, mandatoryEmpty)
	rep.Band = report.BandFor(rep.Score)

	e.logger.Info("validation run %s: %d issues, score %d (%s)", rep.RunID, len(rep.Issues), rep.Score, rep.Band)
	return rep
}

// load resolves one catalog table. Missing sheets and unresolved
// headers leave the table absent without raising anything: absence is
// isolated and must not poison unrelated tables.
func (e *Engine) load(doc *workbook.Document, spec workbook.TableSpec) loadedTable {
	lt := loadedTable{spec: spec}

	sheet := doc.Sheet(spec.SheetName)
	if sheet == nil {
		e.logger.Debug("sheet %q not found or hidden, table %s treated as absent", spec.SheetName, spec.Name)
		return lt
	}

	headerRow, err := ResolveHeader(sheet, spec.Name, spec.Marker, e.cfg.HeaderScanRows)
	if err != nil {
		e.logger.Debug("table %s: %v", spec.Name, err)
		return lt
	}

	table, err := LoadTable(sheet, spec, headerRow)
	if err != nil {
		e.logger.Debug("table %s: %v", spec.Name, err)
		return lt
	}

	lt.table = table
	lt.empty = len(table.Rows) == 0
	return lt
}

// buildUniverse unions the normalized identity columns of the trusted
// source tables. The result is a value; nothing downstream can grow it.
func (e *Engine) buildUniverse(loaded []loadedTable) workbook.ValidNameUniverse {
	var sources []*workbook.LogicalTable
	for _, lt := range loaded {
		if lt.spec.TrustedSource {
			sources = append(sources, lt.table)
		}
	}
	return workbook.UniverseFromTables(sources...)
}

// checkTable runs the field rules, the duplicate-identity check and,
// when configured, the cross-reference check for one loaded table.
func (e *Engine) checkTable(lt loadedTable, universe workbook.ValidNameUniverse) []report.Issue {
	bindings, issues := bindRules(lt.table, lt.spec)
	for _, row := range lt.table.Rows {
		for _, b := range bindings {
			issues = append(issues, checkRow(lt.table, b, row, e.cfg.CodeLength)...)
		}
	}

	if lt.spec.UniqueIdentity {
		issues = append(issues, checkDuplicates(lt.table)...)
	}

	if lt.spec.ReferenceMarker != "" {
		if refField := lt.table.FindField(lt.spec.ReferenceMarker); refField != "" {
			issues = append(issues, CheckReferences(lt.table, refField, universe)...)
		}
	}
	return issues
}

// profileTable summarizes the numeric-rule columns of a table. Only
// values that survive numeric cleaning participate; the summary is
// report context, not validation.
func profileTable(lt loadedTable) []report.ColumnProfile {
	var out []report.ColumnProfile
	for _, rule := range lt.spec.Rules {
		if rule.Kind != workbook.RuleNumeric {
			continue
		}
		field := lt.table.FindField(rule.FieldMarker)
		if field == "" {
			continue
		}
		var values []float64
		for _, row := range lt.table.Rows {
			stripped := nonNumericChars.ReplaceAllString(row.Get(field), "")
			if v, err := strconv.ParseFloat(stripped, 64); err == nil && v >= 0 {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		mean, _ := stats.Mean(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		out = append(out, report.ColumnProfile{
			Field: field,
			Count: len(values),
			Mean:  mean,
			Min:   min,
			Max:   max,
		})
	}
	return out
}

package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"godrift/adapters/stats/comparators"
	"godrift/domain/core"
	"godrift/domain/dataset"
	"godrift/domain/drift"
	"godrift/internal"
	"godrift/internal/config"
	"godrift/internal/errors"
	"godrift/internal/profiling"
	"godrift/internal/report"
	"godrift/internal/visual"
	"godrift/ports"
)

// DriftService runs one drift check end to end: load both datasets, compare
// every shared feature, classify, aggregate, persist. The service holds no
// state between invocations; concurrent callers each get their own report.
type DriftService struct {
	cfg         config.DriftConfig
	readers     ports.ReaderFactory
	comparators *comparators.Registry
	writer      *report.Writer
	chart       *visual.Chart
	history     ports.CheckHistory
	logger      *internal.Logger
}

// CheckRequest defines one drift check invocation. A zero Threshold means
// the configured default. StrictSchema turns the empty shared-column case
// into a hard SchemaMismatch error instead of an empty report.
type CheckRequest struct {
	ReferencePath  string
	ProductionPath string
	Threshold      float64
	StrictSchema   bool
}

// CheckResult is the in-memory outcome of a check. It survives persistence
// failures: when RunCheck returns a WriteFailure the result is still
// populated.
type CheckResult struct {
	CheckID      core.CheckID         `json:"check_id"`
	Report       *drift.Report        `json:"-"`
	Assessment   drift.RiskAssessment `json:"assessment"`
	ArtifactPath string               `json:"artifact_path,omitempty"`
}

// NewDriftService wires the drift check pipeline. history may be nil.
func NewDriftService(
	cfg config.DriftConfig,
	readers ports.ReaderFactory,
	registry *comparators.Registry,
	writer *report.Writer,
	history ports.CheckHistory,
	logger *internal.Logger,
) *DriftService {
	return &DriftService{
		cfg:         cfg,
		readers:     readers,
		comparators: registry,
		writer:      writer,
		chart:       visual.NewChart(),
		history:     history,
		logger:      logger,
	}
}

// RunCheck executes the full check. Loading failures are fatal and produce
// no report; comparison degeneracies are isolated per feature; persistence
// failures return the computed result alongside the WriteFailure error.
func (s *DriftService) RunCheck(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	threshold := req.Threshold
	if threshold == 0 {
		threshold = s.cfg.Threshold
	}
	if err := drift.ValidateThreshold(threshold); err != nil {
		return nil, errors.InvalidInput("threshold must be in (0, 1]")
	}

	refPath := req.ReferencePath
	if refPath == "" {
		refPath = s.cfg.ReferenceFile
	}
	prodPath := req.ProductionPath
	if prodPath == "" {
		prodPath = s.cfg.ProductionFile
	}

	ref, err := s.readers(refPath).Read()
	if err != nil {
		return nil, err
	}
	prod, err := s.readers(prodPath).Read()
	if err != nil {
		return nil, err
	}

	shared := dataset.SharedFeatures(ref, prod, s.cfg.ExcludedSet())
	if len(shared) == 0 {
		if req.StrictSchema {
			return nil, errors.SchemaMismatch()
		}
		s.logger.Warn("no comparable columns between %s and %s; emitting empty report",
			refPath, prodPath)
	}

	rep := s.compareFeatures(ctx, ref, prod, shared, threshold)
	assessment := drift.AssessRisk(rep)
	s.emitTelemetry(rep, assessment)

	result := &CheckResult{
		CheckID:    core.CheckID(core.NewID()),
		Report:     rep,
		Assessment: assessment,
	}

	path, writeErr := s.writer.Write(rep)
	if writeErr == nil {
		result.ArtifactPath = path
		// The chart is cosmetic; a render failure never touches the report.
		if chartErr := s.chart.WriteFile(path, rep, threshold); chartErr != nil {
			s.logger.Warn("chart render failed for %s: %v", path, chartErr)
		}
	}

	s.recordHistory(ctx, result, threshold)

	if writeErr != nil {
		return result, writeErr
	}
	return result, nil
}

// compareFeatures runs every shared column's comparison concurrently.
// Columns are independent, so each goroutine writes only its own slot.
func (s *DriftService) compareFeatures(
	ctx context.Context,
	ref, prod *dataset.Table,
	shared []dataset.Column,
	threshold float64,
) *drift.Report {
	results := make([]drift.FeatureResult, len(shared))

	g, _ := errgroup.WithContext(ctx)
	for i, col := range shared {
		g.Go(func() error {
			refSample := ref.Sample(col.Name)
			prodSample := prod.Sample(col.Name)

			outcome := s.comparators.For(col.Kind).Compare(refSample, prodSample)

			featureType := string(col.Kind)
			if outcome.Degenerate {
				featureType = drift.TypeDegenerate
			}

			results[i] = drift.FeatureResult{
				PValue:        outcome.PValue,
				Statistic:     outcome.Statistic,
				DriftDetected: drift.Classify(outcome.PValue, threshold),
				Type:          featureType,
				Reference:     profiling.Summarize(refSample),
				Production:    profiling.Summarize(prodSample),
			}
			return nil
		})
	}
	g.Wait()

	rep := drift.NewReport()
	for i, col := range shared {
		rep.Add(col.Name, results[i])
	}
	return rep
}

// emitTelemetry mirrors the aggregate and per-feature events the alerting
// collaborator consumes.
func (s *DriftService) emitTelemetry(rep *drift.Report, assessment drift.RiskAssessment) {
	s.logger.Event("drift_detection", map[string]interface{}{
		"drift_percentage": assessment.DriftPercentage,
		"risk_level":       assessment.RiskLevel,
	})
	for name, result := range rep.Features {
		if !result.DriftDetected {
			continue
		}
		s.logger.Event("feature_drift", map[string]interface{}{
			"feature_name": name,
			"p_value":      result.PValue,
			"statistic":    result.Statistic,
			"type":         result.Type,
		})
	}
}

// recordHistory stores the check row when a history backend is wired.
// History is best effort: a database outage must not fail the check.
func (s *DriftService) recordHistory(ctx context.Context, result *CheckResult, threshold float64) {
	if s.history == nil {
		return
	}
	record := ports.CheckRecord{
		ID:              result.CheckID,
		CreatedAt:       result.Report.CreatedAt.Time(),
		Threshold:       threshold,
		TotalFeatures:   result.Assessment.TotalFeatures,
		DriftedCount:    result.Assessment.DriftedCount,
		DriftPercentage: result.Assessment.DriftPercentage,
		RiskLevel:       result.Assessment.RiskLevel,
		ArtifactPath:    result.ArtifactPath,
	}
	if err := s.history.Record(ctx, record, result.Report); err != nil {
		s.logger.Warn("failed to record check history: %v", err)
	}
}

package postgres

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"godrift/domain/drift"
	"godrift/internal/errors"
	"godrift/ports"
)

// CheckHistoryImpl implements ports.CheckHistory on PostgreSQL.
type CheckHistoryImpl struct {
	db *sqlx.DB
}

// NewCheckHistory creates a PostgreSQL-backed check history.
func NewCheckHistory(db *sqlx.DB) *CheckHistoryImpl {
	return &CheckHistoryImpl{db: db}
}

// EnsureSchema creates the history table if it does not exist.
func (r *CheckHistoryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS drift_checks (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			threshold DOUBLE PRECISION NOT NULL,
			total_features INT NOT NULL,
			drifted_count INT NOT NULL,
			drift_percentage DOUBLE PRECISION NOT NULL,
			risk_level TEXT NOT NULL,
			artifact_path TEXT NOT NULL DEFAULT '',
			report JSONB NOT NULL
		)`)
	if err != nil {
		return errors.DatabaseError("failed to ensure drift_checks schema", err)
	}
	return nil
}

// Record inserts one completed check with its full report as JSONB.
func (r *CheckHistoryImpl) Record(ctx context.Context, record ports.CheckRecord, report *drift.Report) error {
	reportJSON, err := json.Marshal(report.Features)
	if err != nil {
		return errors.DatabaseError("failed to encode report", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO drift_checks (
			id, created_at, threshold, total_features, drifted_count,
			drift_percentage, risk_level, artifact_path, report
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID.String(), record.CreatedAt, record.Threshold,
		record.TotalFeatures, record.DriftedCount, record.DriftPercentage,
		string(record.RiskLevel), record.ArtifactPath, reportJSON)
	if err != nil {
		return errors.DatabaseError("failed to insert drift check", err)
	}
	return nil
}

// List returns the most recent checks, newest first.
func (r *CheckHistoryImpl) List(ctx context.Context, limit int) ([]ports.CheckRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []ports.CheckRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, created_at, threshold, total_features, drifted_count,
		       drift_percentage, risk_level, artifact_path
		FROM drift_checks
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, errors.DatabaseError("failed to list drift checks", err)
	}
	return records, nil
}

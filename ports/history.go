package ports

import (
	"context"
	"time"

	"godrift/domain/core"
	"godrift/domain/drift"
)

// CheckRecord is one persisted row of drift-check history.
type CheckRecord struct {
	ID              core.CheckID    `db:"id" json:"id"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	Threshold       float64         `db:"threshold" json:"threshold"`
	TotalFeatures   int             `db:"total_features" json:"total_features"`
	DriftedCount    int             `db:"drifted_count" json:"drifted_count"`
	DriftPercentage float64         `db:"drift_percentage" json:"drift_percentage"`
	RiskLevel       drift.RiskLevel `db:"risk_level" json:"risk_level"`
	ArtifactPath    string          `db:"artifact_path" json:"artifact_path"`
}

// CheckHistory records completed checks for later review. The engine works
// without one; wiring is optional.
type CheckHistory interface {
	Record(ctx context.Context, record CheckRecord, report *drift.Report) error
	List(ctx context.Context, limit int) ([]CheckRecord, error)
}

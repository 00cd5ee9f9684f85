// Package repo adapts pipeline telemetry onto PostgreSQL.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"archviz/internal/pipeline"
	"archviz/internal/sqlinline"
)

// SQL is the narrow slice of pgxpool.Pool the repo depends on.
type SQL interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RenderLogRepo persists one row per pipeline run. It backs the residual
// non-compliance telemetry; the pipeline itself never reads from it.
type RenderLogRepo struct {
	sql SQL
}

// NewRenderLogRepo builds the repo over a pgx pool or transaction.
func NewRenderLogRepo(sql SQL) *RenderLogRepo {
	return &RenderLogRepo{sql: sql}
}

// Record implements pipeline.Recorder.
func (r *RenderLogRepo) Record(ctx context.Context, rec pipeline.Record) error {
	mismatch, err := json.Marshal(rec.MismatchDeltas)
	if err != nil {
		return fmt.Errorf("marshal mismatch deltas: %w", err)
	}
	residual, err := json.Marshal(rec.ResidualDeltas)
	if err != nil {
		return fmt.Errorf("marshal residual deltas: %w", err)
	}
	inventory, err := json.Marshal(rec.SourceInventory)
	if err != nil {
		return fmt.Errorf("marshal source inventory: %w", err)
	}

	_, err = r.sql.Exec(ctx, sqlinline.QInsertRenderLog,
		rec.RequestID,
		rec.StyleID,
		string(rec.Mode),
		string(rec.RoomType),
		rec.Attempts,
		rec.SourceAudited,
		rec.FirstPassMatch,
		rec.FinalCompliant,
		mismatch,
		residual,
		inventory,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert render log: %w", err)
	}
	return nil
}

// ComplianceStats summarizes the last 24 hours of runs.
type ComplianceStats struct {
	RetryRate    float64 `json:"retry_rate"`
	ResidualRate float64 `json:"residual_rate"`
	Total        int64   `json:"total"`
}

// Stats reports the retry and residual non-compliance rates.
func (r *RenderLogRepo) Stats(ctx context.Context) (ComplianceStats, error) {
	var stats ComplianceStats
	row := r.sql.QueryRow(ctx, sqlinline.QResidualNonComplianceRate)
	if err := row.Scan(&stats.RetryRate, &stats.ResidualRate, &stats.Total); err != nil {
		return ComplianceStats{}, fmt.Errorf("query compliance stats: %w", err)
	}
	return stats, nil
}

var _ pipeline.Recorder = (*RenderLogRepo)(nil)

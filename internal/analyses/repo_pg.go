package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, idea, source, category, provider, model, fallback_reason, report, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO idea_analyses (
	id, idea, source, category, provider, model, fallback_reason, score, report, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	payload, err := json.Marshal(analysis.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.Idea,
		analysis.Source,
		analysis.Category,
		analysis.Provider,
		analysis.Model,
		analysis.FallbackReason,
		analysis.Report.Feasibility.Score,
		string(payload),
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	query := `SELECT ` + selectColumns + ` FROM idea_analyses WHERE id = $1 LIMIT 1`
	a, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	return a, err
}

// List returns analyses newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	limit, offset = normalizePage(limit, offset)
	query := `SELECT ` + selectColumns + ` FROM idea_analyses ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var payload []byte
	if err := row.Scan(
		&a.ID,
		&a.Idea,
		&a.Source,
		&a.Category,
		&a.Provider,
		&a.Model,
		&a.FallbackReason,
		&payload,
		&a.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(payload, &a.Report); err != nil {
		return Analysis{}, fmt.Errorf("decode report for %s: %w", a.ID, err)
	}
	return a, nil
}

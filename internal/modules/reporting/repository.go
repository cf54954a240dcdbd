package reporting

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxpolicylab/captax/internal/modules/assets"
)

// ErrNoRuns is returned when the results store is empty.
var ErrNoRuns = errors.New("no analysis runs recorded")

// Run identifies one persisted analysis run.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists analysis runs and their long-form result rows.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a results repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "results").Logger(),
	}
}

// SaveRun stores the table under a fresh run id and returns it. The
// run record and its rows are written in one transaction.
func (r *Repository) SaveRun(table Table) (string, error) {
	runID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, created_at) VALUES (?, ?)`, runID, now,
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO results (run_id, policy, output_var, asset_type, value)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare results insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range table.Rows {
		if _, err := stmt.Exec(runID, row.Policy, row.OutputVar, string(row.AssetType), row.Value); err != nil {
			return "", fmt.Errorf("failed to insert result row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	r.log.Info().
		Str("run_id", runID).
		Int("rows", len(table.Rows)).
		Msg("Run saved")

	return runID, nil
}

// LatestRun returns the most recently saved run.
func (r *Repository) LatestRun() (*Run, error) {
	row := r.db.QueryRow(`SELECT id, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`)

	var run Run
	var createdAt string
	err := row.Scan(&run.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
	}
	return &run, nil
}

// TableForRun loads the long-form table stored under a run id,
// preserving insertion order.
func (r *Repository) TableForRun(runID string) (Table, error) {
	rows, err := r.db.Query(`
		SELECT policy, output_var, asset_type, value
		FROM results
		WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return Table{}, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var table Table
	for rows.Next() {
		var row Row
		var assetType string
		if err := rows.Scan(&row.Policy, &row.OutputVar, &assetType, &row.Value); err != nil {
			return Table{}, fmt.Errorf("failed to scan result row: %w", err)
		}
		row.AssetType = assets.AssetType(assetType)
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("failed to read results: %w", err)
	}

	return table, nil
}

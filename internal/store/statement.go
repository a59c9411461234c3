package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// StatementRecord is one tracking statement in the local audit log.
// Every statement the reporting bridge emits lands here, delivered to
// the LRS or not, so progress history survives offline play.
type StatementRecord struct {
	ID          int64
	StatementID string
	Verb        string
	Body        json.RawMessage
	Delivered   bool
	CreatedAt   time.Time
}

// StatementRepo is the append-only statement log.
type StatementRepo interface {
	// Append records a statement. StatementID must be unique.
	Append(ctx context.Context, rec *StatementRecord) error

	// MarkDelivered flags a statement as accepted by the LRS.
	MarkDelivered(ctx context.Context, statementID string) error

	// Recent returns the newest statements, most recent first.
	Recent(ctx context.Context, limit int) ([]StatementRecord, error)

	// Count returns total and delivered statement counts.
	Count(ctx context.Context) (total, delivered int, err error)

	// VerbCounts returns statement counts grouped by verb.
	VerbCounts(ctx context.Context) (map[string]int, error)
}

type statementRepo struct {
	db *sql.DB
}

func (r *statementRepo) Append(ctx context.Context, rec *StatementRecord) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO statements (statement_id, verb, body, delivered)
		VALUES (?, ?, ?, ?)`,
		rec.StatementID, rec.Verb, string(rec.Body), rec.Delivered)
	if err != nil {
		return fmt.Errorf("append statement: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

func (r *statementRepo) MarkDelivered(ctx context.Context, statementID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE statements SET delivered = 1 WHERE statement_id = ?`, statementID)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

func (r *statementRepo) Recent(ctx context.Context, limit int) ([]StatementRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, statement_id, verb, body, delivered, created_at
		FROM statements ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query statements: %w", err)
	}
	defer rows.Close()

	var out []StatementRecord
	for rows.Next() {
		var rec StatementRecord
		var body string
		if err := rows.Scan(&rec.ID, &rec.StatementID, &rec.Verb, &body, &rec.Delivered, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan statement: %w", err)
		}
		rec.Body = json.RawMessage(body)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *statementRepo) Count(ctx context.Context) (total, delivered int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(delivered), 0) FROM statements`).Scan(&total, &delivered)
	if err != nil {
		return 0, 0, fmt.Errorf("count statements: %w", err)
	}
	return total, delivered, nil
}

func (r *statementRepo) VerbCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT verb, COUNT(*) FROM statements GROUP BY verb ORDER BY verb`)
	if err != nil {
		return nil, fmt.Errorf("count by verb: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var verb string
		var n int
		if err := rows.Scan(&verb, &n); err != nil {
			return nil, fmt.Errorf("scan verb count: %w", err)
		}
		out[verb] = n
	}
	return out, rows.Err()
}

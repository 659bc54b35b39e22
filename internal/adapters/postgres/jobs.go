package postgres

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "github.com/jackc/pgx/v5"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/ports"
)

// EnqueueRefresh schedules a certificate re-fetch no earlier than runAfter.
func (db *DB) EnqueueRefresh(ctx context.Context, certID, sessionID string, runAfter time.Time) (string, error) {
    sid, err := uuid.Parse(sessionID)
    if err != nil {
        return "", mapError(err, "refresh job session", domain.SessionRef(sessionID))
    }
    id := uuid.New()
    _, err = db.q.Exec(ctx, `
        INSERT INTO certificate_refresh_jobs (id, certificate_id, session_id, run_after)
        VALUES ($1, $2, $3, $4)
    `, id, certID, sid, runAfter)
    if err != nil {
        return "", mapError(err, "refresh job", certID)
    }
    return id.String(), nil
}

// ClaimNext selects the next due job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.RefreshJob, found bool, err error) {
    tx, err := db.q.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return job, false, err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { _ = tx.Commit(ctx) }
    }()

    err = tx.QueryRow(ctx, `
        SELECT id::text, certificate_id, session_id::text FROM certificate_refresh_jobs
        WHERE status = 'queued' AND run_after <= now()
        ORDER BY run_after
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.CertificateID, &job.SessionID)
    if errors.Is(err, pgx.ErrNoRows) {
        return job, false, nil
    }
    if err != nil { return job, false, err }

    if _, err = tx.Exec(ctx, `
        UPDATE certificate_refresh_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
        return job, false, err
    }
    return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.q.Exec(ctx, `UPDATE certificate_refresh_jobs SET status='completed', finished_at=now() WHERE id=$1`, jobID)
    return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.q.Exec(ctx, `
        UPDATE certificate_refresh_jobs SET status='failed', last_error=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
    return err
}

// StartJob marks a specific queued job running, for callers that process it
// inline instead of waiting for a worker. A job already claimed elsewhere
// yields domain.ErrNotFound.
func (db *DB) StartJob(ctx context.Context, jobID string) error {
    tx, err := db.q.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { _ = tx.Commit(ctx) }
    }()

    var id string
    err = tx.QueryRow(ctx, `
        SELECT id::text FROM certificate_refresh_jobs
        WHERE id = $1 AND status = 'queued'
        FOR UPDATE SKIP LOCKED
    `, jobID).Scan(&id)
    if err != nil { return mapError(err, "refresh job", jobID) }
    _, err = tx.Exec(ctx, `UPDATE certificate_refresh_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1`, id)
    return err
}

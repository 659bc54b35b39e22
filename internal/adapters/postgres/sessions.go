package postgres

import (
    "context"

    "github.com/google/uuid"

    "chaincarbon/internal/domain"
)

func (db *DB) CreateSession(ctx context.Context, s domain.Session) error {
    id, err := uuid.Parse(s.ID)
    if err != nil {
        return mapError(err, "session", domain.SessionRef(s.ID))
    }
    _, err = db.q.Exec(ctx, `
        INSERT INTO sessions (id, token, user_id, user_email, user_name, user_role, company_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, id, s.Token, s.User.ID, s.User.Email, s.User.Name, s.User.Role, s.User.CompanyID, s.CreatedAt, s.ExpiresAt)
    return mapError(err, "session", domain.SessionRef(s.ID))
}

// GetSession returns domain.ErrNotFound for unknown, malformed or expired ids.
func (db *DB) GetSession(ctx context.Context, id string) (domain.Session, error) {
    var s domain.Session
    sid, err := uuid.Parse(id)
    if err != nil {
        return s, mapError(domain.ErrNotFound, "session", domain.SessionRef(id))
    }
    err = db.q.QueryRow(ctx, `
        SELECT id::text, token, user_id, user_email, user_name, user_role, company_id, created_at, expires_at
        FROM sessions
        WHERE id = $1 AND expires_at > now()
    `, sid).Scan(&s.ID, &s.Token, &s.User.ID, &s.User.Email, &s.User.Name, &s.User.Role, &s.User.CompanyID, &s.CreatedAt, &s.ExpiresAt)
    if err != nil {
        return domain.Session{}, mapError(err, "session", domain.SessionRef(id))
    }
    return s, nil
}

func (db *DB) UpdateSessionUser(ctx context.Context, id string, u domain.User) error {
    sid, err := uuid.Parse(id)
    if err != nil {
        return mapError(domain.ErrNotFound, "session", domain.SessionRef(id))
    }
    tag, err := db.q.Exec(ctx, `
        UPDATE sessions SET user_id=$2, user_email=$3, user_name=$4, user_role=$5, company_id=$6
        WHERE id=$1
    `, sid, u.ID, u.Email, u.Name, u.Role, u.CompanyID)
    if err != nil {
        return mapError(err, "session", domain.SessionRef(id))
    }
    if tag.RowsAffected() == 0 {
        return mapError(domain.ErrNotFound, "session", domain.SessionRef(id))
    }
    return nil
}

func (db *DB) DeleteSession(ctx context.Context, id string) error {
    sid, err := uuid.Parse(id)
    if err != nil {
        return nil
    }
    _, err = db.q.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, sid)
    return mapError(err, "session", domain.SessionRef(id))
}

// PurgeExpiredSessions removes sessions past their expiry.
func (db *DB) PurgeExpiredSessions(ctx context.Context) (int64, error) {
    tag, err := db.q.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
    if err != nil {
        return 0, err
    }
    return tag.RowsAffected(), nil
}

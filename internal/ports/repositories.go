package ports

import (
    "context"

    "chaincarbon/internal/domain"
)

// SessionRepository persists server-side sessions.
type SessionRepository interface {
    CreateSession(ctx context.Context, s domain.Session) error
    GetSession(ctx context.Context, id string) (domain.Session, error)
    UpdateSessionUser(ctx context.Context, id string, u domain.User) error
    DeleteSession(ctx context.Context, id string) error
}

// SnapshotRepository caches the last certificate state fetched from the backend.
type SnapshotRepository interface {
    UpsertSnapshot(ctx context.Context, c domain.Certificate) error
    GetSnapshot(ctx context.Context, certID string) (domain.CertificateSnapshot, error)
    ListSnapshots(ctx context.Context, f domain.SnapshotFilter) ([]domain.CertificateSnapshot, error)
}

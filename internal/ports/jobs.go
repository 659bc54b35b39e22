package ports

import (
    "context"
    "time"
)

type RefreshJob struct {
    ID            string
    CertificateID string
    SessionID     string
}

// JobRepository queues delayed certificate refreshes.
type JobRepository interface {
    EnqueueRefresh(ctx context.Context, certID, sessionID string, runAfter time.Time) (jobID string, err error)
    ClaimNext(ctx context.Context) (job RefreshJob, found bool, err error)
    StartJob(ctx context.Context, jobID string) error
    MarkCompleted(ctx context.Context, jobID string) error
    MarkFailed(ctx context.Context, jobID string, reason string) error
}

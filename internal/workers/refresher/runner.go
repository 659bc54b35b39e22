package refresher

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "time"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/ports"
)

// Processor performs the work for one claimed refresh job.
type Processor interface {
    Process(ctx context.Context, job ports.RefreshJob) error
}

// ErrSessionGone is returned when the session that queued a job has ended.
var ErrSessionGone = errors.New("session no longer active")

// SessionProcessor re-reads the certificate with the token of the session
// that queued the job.
type SessionProcessor struct {
    Sessions     ports.SessionRepository
    Certificates ports.Certificates
}

func (p SessionProcessor) Process(ctx context.Context, job ports.RefreshJob) error {
    sess, err := p.Sessions.GetSession(ctx, job.SessionID)
    if errors.Is(err, domain.ErrNotFound) {
        return fmt.Errorf("job %s: %w", job.ID, ErrSessionGone)
    }
    if err != nil {
        return err
    }
    if sess.Expired(time.Now()) {
        return fmt.Errorf("job %s: %w", job.ID, ErrSessionGone)
    }
    return p.Certificates.Refresh(ctx, sess, job.CertificateID)
}

// Run starts worker goroutines that claim due jobs and process them. It
// returns immediately; workers stop when ctx is cancelled.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, logger *slog.Logger) {
    if concurrency < 1 {
        return
    }
    if logger == nil {
        logger = slog.Default()
    }
    jobsCh := make(chan ports.RefreshJob, concurrency)

    // dispatcher loop
    go func() {
        ticker := time.NewTicker(pollInterval)
        defer ticker.Stop()
        defer close(jobsCh)
        for {
            select {
            case <-ctx.Done():
                return
            case <-ticker.C:
                for {
                    job, found, err := repo.ClaimNext(ctx)
                    if err != nil {
                        if ctx.Err() == nil {
                            logger.Error("refresh job claim failed", "error", err)
                        }
                        break
                    }
                    if !found {
                        break
                    }
                    select {
                    case jobsCh <- job:
                    case <-ctx.Done():
                        return
                    }
                }
            }
        }
    }()

    for i := 0; i < concurrency; i++ {
        go func(idx int) {
            for job := range jobsCh {
                finish(ctx, repo, job, processor.Process(ctx, job), logger.With("worker", idx))
            }
        }(i)
    }
}

// ProcessInline waits delay, then processes job with the same logic the
// workers use. The job is marked running first so no worker claims it.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, job ports.RefreshJob, delay time.Duration) error {
    if job.ID == "" {
        return errors.New("refresh job was not queued")
    }
    if err := repo.StartJob(ctx, job.ID); err != nil {
        return err
    }
    if delay > 0 {
        t := time.NewTimer(delay)
        select {
        case <-ctx.Done():
            t.Stop()
            _ = repo.MarkFailed(context.WithoutCancel(ctx), job.ID, ctx.Err().Error())
            return ctx.Err()
        case <-t.C:
        }
    }
    err := processor.Process(ctx, job)
    finish(ctx, repo, job, err, slog.Default())
    return err
}

func finish(ctx context.Context, repo ports.JobRepository, job ports.RefreshJob, err error, logger *slog.Logger) {
    if err != nil {
        if mErr := repo.MarkFailed(context.WithoutCancel(ctx), job.ID, err.Error()); mErr != nil {
            logger.Error("mark job failed", "job_id", job.ID, "error", mErr)
        }
        logger.Warn("refresh job failed", "job_id", job.ID, "certificate_id", job.CertificateID, "error", err)
        return
    }
    if err := repo.MarkCompleted(ctx, job.ID); err != nil {
        logger.Error("mark job completed", "job_id", job.ID, "error", err)
        return
    }
    logger.Debug("refresh job completed", "job_id", job.ID, "certificate_id", job.CertificateID)
}

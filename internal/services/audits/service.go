package audits

import (
    "context"
    "fmt"
    "log/slog"
    "time"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/inflight"
    "chaincarbon/internal/ports"
)

type Service struct {
    api    ports.AuditAPI
    guard  *inflight.Guard
    now    func() time.Time
    logger *slog.Logger
}

func New(api ports.AuditAPI, guard *inflight.Guard, logger *slog.Logger) *Service {
    if logger == nil {
        logger = slog.Default()
    }
    if guard == nil {
        guard = inflight.New()
    }
    return &Service{api: api, guard: guard, now: time.Now, logger: logger}
}

// Preview scores criteria without saving anything.
func (s *Service) Preview(c domain.Criteria) domain.Evaluation { return domain.Evaluate(c) }

// Save validates rec, derives its scores and creates a new audit record.
// Each call creates a record; there is no update path.
func (s *Service) Save(ctx context.Context, sess domain.Session, rec domain.AuditRecord) (string, error) {
    if !sess.User.IsRegulator() {
        return "", fmt.Errorf("audits are saved by regulators: %w", domain.ErrForbidden)
    }
    rec.Normalize()
    if err := rec.Validate(); err != nil {
        return "", err
    }
    if rec.AuditorName == "" {
        rec.AuditorName = sess.User.Name
    }
    if rec.AuditDate.IsZero() {
        rec.AuditDate = s.now().UTC()
    }

    release, err := s.guard.Acquire(inflight.Key(sess.ID, "audit", rec.CompanyID))
    if err != nil {
        return "", err
    }
    defer release()

    ev := rec.Evaluation()
    id, err := s.api.CreateAudit(ctx, sess.Token, rec, ev)
    if err != nil {
        return "", err
    }
    s.logger.InfoContext(ctx, "audit saved",
        "audit_id", id, "company_id", rec.CompanyID, "overall", ev.Overall, "risk", ev.Risk)
    return id, nil
}

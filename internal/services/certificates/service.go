package certificates

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "strings"
    "time"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/inflight"
    "chaincarbon/internal/ports"
)

// DefaultRefreshDelay is how long after a listing the certificate is re-read.
const DefaultRefreshDelay = 2 * time.Second

// Service gates certificate actions for one viewer and dispatches them to
// the backend. Status only changes once the backend confirms it.
type Service struct {
    api       ports.CertificateAPI
    snapshots ports.SnapshotRepository
    jobs      ports.JobRepository
    guard     *inflight.Guard
    delay     time.Duration
    now       func() time.Time
    logger    *slog.Logger
}

type Option func(*Service)

func WithRefreshDelay(d time.Duration) Option {
    return func(s *Service) {
        if d >= 0 {
            s.delay = d
        }
    }
}

func WithGuard(g *inflight.Guard) Option { return func(s *Service) { s.guard = g } }

func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

func New(api ports.CertificateAPI, snapshots ports.SnapshotRepository, jobs ports.JobRepository, opts ...Option) *Service {
    s := &Service{
        api:       api,
        snapshots: snapshots,
        jobs:      jobs,
        guard:     inflight.New(),
        delay:     DefaultRefreshDelay,
        now:       time.Now,
        logger:    slog.Default(),
    }
    for _, o := range opts {
        o(s)
    }
    return s
}

// Detail fetches the certificate and resolves what the viewer may do with it.
func (s *Service) Detail(ctx context.Context, sess domain.Session, certID string, purchaseContext bool) (domain.CertificateView, error) {
    certID = strings.TrimSpace(certID)
    if certID == "" {
        return domain.CertificateView{}, domain.NewValidationError("certificateId", "is required")
    }
    c, err := s.api.CertificateDetail(ctx, sess.Token, certID)
    if err != nil {
        return domain.CertificateView{}, err
    }
    s.remember(ctx, c)
    v := domain.ResolveViewer(c, sess.User.CompanyID, purchaseContext)
    return domain.CertificateView{Certificate: c, Viewer: v, Permissions: domain.PermissionsFor(c.Status, v)}, nil
}

// List puts the certificate on the marketplace. The price is checked before
// anything is sent, and a refresh is queued once the backend accepts.
func (s *Service) List(ctx context.Context, sess domain.Session, certID string, req domain.ListRequest, purchaseContext bool) (ports.RefreshJob, error) {
    if err := domain.ValidateListing(req.PricePerUnit); err != nil {
        return ports.RefreshJob{}, err
    }
    release, err := s.guard.Acquire(inflight.Key(sess.ID, string(domain.ActionList), certID))
    if err != nil {
        return ports.RefreshJob{}, err
    }
    defer release()

    view, err := s.Detail(ctx, sess, certID, purchaseContext)
    if err != nil {
        return ports.RefreshJob{}, err
    }
    if err := domain.CheckAction(view.Certificate.Status, view.Viewer, domain.ActionList); err != nil {
        return ports.RefreshJob{}, err
    }
    if err := s.api.ListCertificate(ctx, sess.Token, view.Certificate.ID, *req.PricePerUnit); err != nil {
        return ports.RefreshJob{}, err
    }
    s.logger.InfoContext(ctx, "certificate listed",
        "certificate_id", view.Certificate.ID, "price_per_unit", req.PricePerUnit.String(), "user_id", sess.User.ID)

    job := ports.RefreshJob{CertificateID: view.Certificate.ID, SessionID: sess.ID}
    job.ID, err = s.jobs.EnqueueRefresh(ctx, view.Certificate.ID, sess.ID, s.now().Add(s.delay))
    if err != nil {
        // the listing itself succeeded; the next detail read picks it up
        s.logger.WarnContext(ctx, "refresh not queued", "certificate_id", view.Certificate.ID, "error", err)
        return ports.RefreshJob{CertificateID: view.Certificate.ID, SessionID: sess.ID}, nil
    }
    return job, nil
}

// Retire permanently removes the certificate's credits. Without Confirmed it
// runs every check but only returns the warning the viewer has to
// acknowledge; nothing is sent to the retire endpoint.
func (s *Service) Retire(ctx context.Context, sess domain.Session, certID string, req domain.RetireRequest, purchaseContext bool) (domain.RetireOutcome, error) {
    if err := domain.ValidateRetirement(req.Reason); err != nil {
        return domain.RetireOutcome{}, err
    }
    release, err := s.guard.Acquire(inflight.Key(sess.ID, string(domain.ActionRetire), certID))
    if err != nil {
        return domain.RetireOutcome{}, err
    }
    defer release()

    view, err := s.Detail(ctx, sess, certID, purchaseContext)
    if err != nil {
        return domain.RetireOutcome{}, err
    }
    if err := domain.CheckAction(view.Certificate.Status, view.Viewer, domain.ActionRetire); err != nil {
        return domain.RetireOutcome{}, err
    }
    if !req.Confirmed {
        return domain.RetireOutcome{ConfirmationRequired: true, Warning: domain.RetirementWarning}, nil
    }
    reason := strings.TrimSpace(req.Reason)
    beneficiary := strings.TrimSpace(req.Beneficiary)
    if err := s.api.RetireCertificate(ctx, sess.Token, view.Certificate.ID, reason, beneficiary); err != nil {
        return domain.RetireOutcome{}, err
    }
    s.logger.InfoContext(ctx, "certificate retired", "certificate_id", view.Certificate.ID, "user_id", sess.User.ID)

    retired := view.Certificate
    retired.Status, _ = domain.ApplyRetire(view.Certificate.Status)
    s.remember(ctx, retired)
    return domain.RetireOutcome{Submitted: true}, nil
}

// Verify is public and needs no session.
func (s *Service) Verify(ctx context.Context, certID string) (domain.Verification, error) {
    certID = strings.TrimSpace(certID)
    if certID == "" {
        return domain.Verification{}, domain.NewValidationError("certId", "is required")
    }
    v, err := s.api.Verify(ctx, certID)
    if err != nil {
        return domain.Verification{}, err
    }
    if v.Certificate != nil {
        s.remember(ctx, *v.Certificate)
    }
    return v, nil
}

func (s *Service) Snapshot(ctx context.Context, certID string) (domain.CertificateSnapshot, error) {
    return s.snapshots.GetSnapshot(ctx, certID)
}

// Snapshots lists cached certificates. Regulators see every company; any
// other session is pinned to its own company whatever owner it asked for.
func (s *Service) Snapshots(ctx context.Context, sess domain.Session, f domain.SnapshotFilter) ([]domain.CertificateSnapshot, error) {
    if !sess.User.IsRegulator() {
        if sess.User.CompanyID == "" {
            return nil, fmt.Errorf("certificate list needs a company account: %w", domain.ErrForbidden)
        }
        company := sess.User.CompanyID
        f.OwnerCompanyID = &company
    }
    if f.Status != nil && !f.Status.Valid() {
        return nil, domain.NewValidationError("status", fmt.Sprintf("unknown certificate status %q", *f.Status))
    }
    if f.Limit < 0 {
        return nil, domain.NewValidationError("limit", "must not be negative")
    }
    return s.snapshots.ListSnapshots(ctx, f)
}

// Refresh re-reads one certificate with the session's token and caches it.
func (s *Service) Refresh(ctx context.Context, sess domain.Session, certID string) error {
    c, err := s.api.CertificateDetail(ctx, sess.Token, certID)
    if err != nil {
        return fmt.Errorf("refresh %s: %w", certID, err)
    }
    if err := s.snapshots.UpsertSnapshot(ctx, c); err != nil {
        return fmt.Errorf("store snapshot %s: %w", certID, err)
    }
    return nil
}

// remember caches c; a failure only costs a stale list view.
func (s *Service) remember(ctx context.Context, c domain.Certificate) {
    if err := s.snapshots.UpsertSnapshot(ctx, c); err != nil && !errors.Is(err, context.Canceled) {
        s.logger.WarnContext(ctx, "snapshot not stored", "certificate_id", c.ID, "error", err)
    }
}

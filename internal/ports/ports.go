package ports

import (
    "context"

    "chaincarbon/internal/domain"
)

// Sessions owns the explicit session context handed to every protected call.
type Sessions interface {
    Login(ctx context.Context, email, password string) (domain.Session, error)
    Resolve(ctx context.Context, sessionID string) (domain.Session, error)
    Refresh(ctx context.Context, sessionID string) (domain.Session, error)
    Invalidate(ctx context.Context, sessionID string) error
}

// Profiles serves the signed-in user's profile and company registration.
type Profiles interface {
    Me(ctx context.Context, s domain.Session) (domain.Profile, error)
    UpdateMe(ctx context.Context, s domain.Session, upd domain.ProfileUpdate) (domain.Profile, error)
    Register(ctx context.Context, reg domain.Registration) (companyID string, err error)
}

// Audits scores and saves regulator audits.
type Audits interface {
    Preview(c domain.Criteria) domain.Evaluation
    Save(ctx context.Context, s domain.Session, rec domain.AuditRecord) (auditID string, err error)
}

// Companies serves regulator views over companies.
type Companies interface {
    Context(ctx context.Context, s domain.Session, companyID string) (domain.CompanyContext, error)
    Stats(ctx context.Context, s domain.Session) (domain.RegulatorStats, error)
    Settings(ctx context.Context, s domain.Session) (domain.RegulatorSettings, error)
    UpdateSettings(ctx context.Context, s domain.Session, in domain.RegulatorSettings) (domain.RegulatorSettings, error)
    Export(ctx context.Context, s domain.Session, kind domain.ExportKind) ([]byte, error)
}

// Projects submits new projects for certification.
type Projects interface {
    Submit(ctx context.Context, s domain.Session, in domain.ProjectSubmission) (domain.Project, error)
}

// Certificates gates and dispatches certificate lifecycle actions.
type Certificates interface {
    Detail(ctx context.Context, s domain.Session, certID string, purchaseContext bool) (domain.CertificateView, error)
    List(ctx context.Context, s domain.Session, certID string, req domain.ListRequest, purchaseContext bool) (RefreshJob, error)
    Retire(ctx context.Context, s domain.Session, certID string, req domain.RetireRequest, purchaseContext bool) (domain.RetireOutcome, error)
    Verify(ctx context.Context, certID string) (domain.Verification, error)
    Snapshot(ctx context.Context, certID string) (domain.CertificateSnapshot, error)
    Snapshots(ctx context.Context, s domain.Session, f domain.SnapshotFilter) ([]domain.CertificateSnapshot, error)
    Refresh(ctx context.Context, s domain.Session, certID string) error
}

package ports

import (
    "context"

    "github.com/shopspring/decimal"

    "chaincarbon/internal/domain"
)

// The ChainCarbon backend, split by the service that consumes it. Every
// authenticated call takes the bearer token from the caller's session.

type AuthAPI interface {
    Login(ctx context.Context, email, password string) (token string, user domain.User, err error)
    Register(ctx context.Context, reg domain.Registration) (companyID string, err error)
}

type ProfileAPI interface {
    Me(ctx context.Context, token string) (domain.Profile, error)
    UpdateMe(ctx context.Context, token string, upd domain.ProfileUpdate) (domain.Profile, error)
}

type RegulatorAPI interface {
    Company(ctx context.Context, token, companyID string) (domain.Company, error)
    CompanyProjects(ctx context.Context, token, companyID string) ([]domain.Project, error)
    CompanyCertificates(ctx context.Context, token, companyID string) ([]domain.Certificate, error)
    CompanyTransactions(ctx context.Context, token, companyID string) ([]domain.Transaction, error)
    Stats(ctx context.Context, token string) (domain.RegulatorStats, error)
    Settings(ctx context.Context, token string) (domain.RegulatorSettings, error)
    UpdateSettings(ctx context.Context, token string, in domain.RegulatorSettings) (domain.RegulatorSettings, error)
    Export(ctx context.Context, token string, kind domain.ExportKind) ([]byte, error)
}

type AuditAPI interface {
    CreateAudit(ctx context.Context, token string, rec domain.AuditRecord, ev domain.Evaluation) (auditID string, err error)
}

type ProjectAPI interface {
    SubmitProject(ctx context.Context, token string, in domain.ProjectSubmission) (domain.Project, error)
}

type CertificateAPI interface {
    CertificateDetail(ctx context.Context, token, certID string) (domain.Certificate, error)
    ListCertificate(ctx context.Context, token, certID string, pricePerUnit decimal.Decimal) error
    RetireCertificate(ctx context.Context, token, certID, reason, beneficiary string) error
    Verify(ctx context.Context, certID string) (domain.Verification, error)
}

package backend

import (
    "time"

    openapi_types "github.com/oapi-codegen/runtime/types"
    "github.com/shopspring/decimal"

    "chaincarbon/internal/domain"
)

type userDTO struct {
    ID        string `json:"id"`
    Email     string `json:"email"`
    Name      string `json:"name"`
    Role      string `json:"role"`
    CompanyID string `json:"companyId"`
}

func (u userDTO) toDomain() domain.User {
    return domain.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CompanyID: u.CompanyID}
}

type companyDTO struct {
    ID                 string  `json:"id"`
    Name               string  `json:"name"`
    RegistrationNumber string  `json:"registration_number"`
    Country            string  `json:"country"`
    Industry           string  `json:"industry"`
    Website            *string `json:"website"`
    Email              string  `json:"email"`
    Phone              *string `json:"phone"`
    Address            *string `json:"address"`
    Description        *string `json:"description"`
    Verified           bool    `json:"is_verified"`
}

func (c companyDTO) toDomain() domain.Company {
    return domain.Company{
        ID: c.ID, Name: c.Name, RegistrationNumber: c.RegistrationNumber, Country: c.Country,
        Industry: c.Industry, Website: c.Website, Email: c.Email, Phone: c.Phone,
        Address: c.Address, Description: c.Description, Verified: c.Verified,
    }
}

type profileDTO struct {
    userDTO
    Company *companyDTO `json:"company"`
}

func (p profileDTO) toDomain() domain.Profile {
    out := domain.Profile{User: p.userDTO.toDomain()}
    if p.Company != nil {
        c := p.Company.toDomain()
        out.Company = &c
    }
    return out
}

type projectDTO struct {
    ID               string              `json:"id"`
    CompanyID        string              `json:"company_id"`
    Name             string              `json:"name"`
    Description      string              `json:"description"`
    Location         string              `json:"location"`
    Methodology      string              `json:"methodology"`
    Status           string              `json:"status"`
    EstimatedCredits decimal.Decimal     `json:"estimated_credits"`
    StartDate        *openapi_types.Date `json:"start_date"`
    CreatedAt        time.Time           `json:"created_at"`
}

func (p projectDTO) toDomain() domain.Project {
    out := domain.Project{
        ID: p.ID, CompanyID: p.CompanyID, Name: p.Name, Description: p.Description,
        Location: p.Location, Methodology: p.Methodology, Status: p.Status,
        EstimatedCredits: p.EstimatedCredits, CreatedAt: p.CreatedAt,
    }
    if p.StartDate != nil {
        t := p.StartDate.Time
        out.StartDate = &t
    }
    return out
}

type blockchainDTO struct {
    Hash     string `json:"hash"`
    Revision string `json:"revision"`
    Version  string `json:"version"`
}

type certificateDTO struct {
    CertificateID  string          `json:"certificate_id"`
    Amount         decimal.Decimal `json:"amount"`
    Status         string          `json:"status"`
    OwnerCompanyID string          `json:"owner_company_id"`
    ProjectID      string          `json:"project_id"`
    ProjectName    string          `json:"project_name"`
    IssuedAt       time.Time       `json:"issued_at"`
    ExpiresAt      *time.Time      `json:"expires_at"`
    Blockchain     *blockchainDTO  `json:"blockchain"`
}

func (c certificateDTO) toDomain() (domain.Certificate, error) {
    st, err := domain.ParseCertificateStatus(c.Status)
    if err != nil {
        return domain.Certificate{}, &Error{Kind: KindUnexpected, Message: "unexpected certificate status from server", Err: err}
    }
    out := domain.Certificate{
        ID: c.CertificateID, Amount: c.Amount, Status: st, OwnerCompanyID: c.OwnerCompanyID,
        ProjectID: c.ProjectID, ProjectName: c.ProjectName, IssuedAt: c.IssuedAt, ExpiresAt: c.ExpiresAt,
    }
    if c.Blockchain != nil {
        out.Blockchain = domain.BlockchainLink(*c.Blockchain)
    }
    return out, nil
}

func certificatesToDomain(in []certificateDTO) ([]domain.Certificate, error) {
    out := make([]domain.Certificate, 0, len(in))
    for _, c := range in {
        dc, err := c.toDomain()
        if err != nil {
            return nil, err
        }
        out = append(out, dc)
    }
    return out, nil
}

type transactionDTO struct {
    ID            string          `json:"id"`
    CertificateID string          `json:"certificate_id"`
    FromCompanyID string          `json:"from_company_id"`
    ToCompanyID   string          `json:"to_company_id"`
    Amount        decimal.Decimal `json:"amount"`
    PricePerUnit  decimal.Decimal `json:"price_per_unit"`
    Status        string          `json:"status"`
    CreatedAt     time.Time       `json:"created_at"`
}

func (t transactionDTO) toDomain() domain.Transaction {
    return domain.Transaction{
        ID: t.ID, CertificateID: t.CertificateID, FromCompanyID: t.FromCompanyID, ToCompanyID: t.ToCompanyID,
        Amount: t.Amount, PricePerUnit: t.PricePerUnit, Status: t.Status, CreatedAt: t.CreatedAt,
    }
}

type statsDTO struct {
    Companies           int             `json:"total_companies"`
    Projects            int             `json:"total_projects"`
    PendingProjects     int             `json:"pending_projects"`
    Certificates        int             `json:"total_certificates"`
    RetiredCertificates int             `json:"retired_certificates"`
    CreditsIssued       decimal.Decimal `json:"credits_issued"`
    CreditsRetired      decimal.Decimal `json:"credits_retired"`
    Audits              int             `json:"total_audits"`
}

type settingsDTO struct {
    AuditIntervalDays    int    `json:"audit_interval_days"`
    MinimumAuditScore    int    `json:"minimum_audit_score"`
    AutoApproveThreshold int    `json:"auto_approve_threshold"`
    NotificationsEnabled bool   `json:"notifications_enabled"`
    NotificationEmail    string `json:"notification_email"`
}

package domain

import (
    "crypto/sha256"
    "encoding/hex"
    "time"

    "github.com/shopspring/decimal"
)

// Core domain models used internally. Wire shapes for the browser are
// generated into internal/api and wire shapes for the backend live in
// internal/adapters/backend.

type User struct {
    ID        string
    Email     string
    Name      string
    Role      string // company|regulator|admin
    CompanyID string
}

// IsRegulator reports whether the user may use the regulator surfaces.
func (u User) IsRegulator() bool { return u.Role == "regulator" || u.Role == "admin" }

type Session struct {
    ID        string
    Token     string
    User      User
    CreatedAt time.Time
    ExpiresAt time.Time
}

// SessionRef is a short stand-in for a session id in logs and error text.
// The id itself is the cookie credential and is never written out.
func SessionRef(id string) string {
    if id == "" {
        return ""
    }
    sum := sha256.Sum256([]byte(id))
    return hex.EncodeToString(sum[:4])
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
    return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Company struct {
    ID                 string
    Name               string
    RegistrationNumber string
    Country            string
    Industry           string
    Website            *string
    Email              string
    Phone              *string
    Address            *string
    Description        *string
    Verified           bool
}

type Profile struct {
    User    User
    Company *Company
}

type ProfileUpdate struct {
    Name        *string
    Phone       *string
    Address     *string
    Website     *string
    Description *string
}

type Project struct {
    ID               string
    CompanyID        string
    Name             string
    Description      string
    Location         string
    Methodology      string
    Status           string
    EstimatedCredits decimal.Decimal
    StartDate        *time.Time
    CreatedAt        time.Time
}

type ProjectDocument struct {
    Name string
    URL  string
}

type ProjectSubmission struct {
    Name             string
    Description      string
    Location         string
    Methodology      string
    EstimatedCredits decimal.Decimal
    StartDate        *time.Time
    Documents        []ProjectDocument
}

type Transaction struct {
    ID            string
    CertificateID string
    FromCompanyID string
    ToCompanyID   string
    Amount        decimal.Decimal
    PricePerUnit  decimal.Decimal
    Status        string
    CreatedAt     time.Time
}

// CompanyContext is everything a regulator needs on screen to audit a company.
type CompanyContext struct {
    Company      Company
    Projects     []Project
    Certificates []Certificate
    Transactions []Transaction
}

type Registration struct {
    CompanyName        string
    RegistrationNumber string
    Country            string
    Industry           string
    Website            string
    ContactName        string
    Email              string
    Password           string
    PasswordConfirm    string
    Phone              string
}

type RegulatorStats struct {
    Companies           int
    Projects            int
    PendingProjects     int
    Certificates        int
    RetiredCertificates int
    CreditsIssued       decimal.Decimal
    CreditsRetired      decimal.Decimal
    Audits              int
}

type RegulatorSettings struct {
    AuditIntervalDays    int
    MinimumAuditScore    int
    AutoApproveThreshold int
    NotificationsEnabled bool
    NotificationEmail    string
}

// Verification is the public verification result for a certificate.
type Verification struct {
    Valid       bool
    Checks      []VerificationCheck
    Certificate *Certificate
    Blockchain  BlockchainLink
}

type VerificationCheck struct {
    Name    string
    Passed  bool
    Message string
}

// ExportKind names a regulator CSV export.
type ExportKind string

const (
    ExportCompanies    ExportKind = "companies"
    ExportProjects     ExportKind = "projects"
    ExportCertificates ExportKind = "certificates"
    ExportTransactions ExportKind = "transactions"
    ExportAudits       ExportKind = "audits"
)

func (k ExportKind) Valid() bool {
    switch k {
    case ExportCompanies, ExportProjects, ExportCertificates, ExportTransactions, ExportAudits:
        return true
    }
    return false
}

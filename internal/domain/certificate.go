package domain

import (
    "fmt"
    "strings"
    "time"
    "unicode/utf8"

    "github.com/shopspring/decimal"
)

type CertificateStatus string

const (
    StatusIssued      CertificateStatus = "ISSUED"
    StatusListed      CertificateStatus = "LISTED"
    StatusTransferred CertificateStatus = "TRANSFERRED"
    StatusRetired     CertificateStatus = "RETIRED"
)

// ParseCertificateStatus is case-insensitive; unknown values are an error.
func ParseCertificateStatus(s string) (CertificateStatus, error) {
    st := CertificateStatus(strings.ToUpper(strings.TrimSpace(s)))
    if !st.Valid() {
        return "", fmt.Errorf("unknown certificate status %q: %w", s, ErrValidation)
    }
    return st, nil
}

func (s CertificateStatus) Valid() bool {
    switch s {
    case StatusIssued, StatusListed, StatusTransferred, StatusRetired:
        return true
    }
    return false
}

// Terminal reports whether no transition may leave s.
func (s CertificateStatus) Terminal() bool { return s == StatusRetired }

// BlockchainLink fields are owned by the ledger and are read-only here.
type BlockchainLink struct {
    Hash     string
    Revision string
    Version  string
}

type Certificate struct {
    ID             string
    Amount         decimal.Decimal // tCO2e
    Status         CertificateStatus
    OwnerCompanyID string
    ProjectID      string
    ProjectName    string
    IssuedAt       time.Time
    ExpiresAt      *time.Time
    Blockchain     BlockchainLink
    // ViewerRole is set when the backend resolved the caller's relation itself.
    ViewerRole string
}

// Viewer is the caller's relation to a certificate. Owner and Buyer are not
// mutually exclusive.
type Viewer struct {
    Owner bool
    Buyer bool
}

// Backend viewer roles.
const (
    RoleOwner      = "owner"
    RoleBuyer      = "buyer"
    RoleOwnerBuyer = "owner_buyer"
    RoleNone       = "none"
)

// ViewerFromRole maps an authoritative backend role. ok is false for unknown roles.
func ViewerFromRole(role string) (v Viewer, ok bool) {
    switch strings.ToLower(strings.TrimSpace(role)) {
    case RoleOwner:
        return Viewer{Owner: true}, true
    case RoleBuyer:
        return Viewer{Buyer: true}, true
    case RoleOwnerBuyer:
        return Viewer{Owner: true, Buyer: true}, true
    case RoleNone:
        return Viewer{}, true
    }
    return Viewer{}, false
}

// ResolveViewer prefers the backend role and otherwise falls back to the
// legacy rules: owner when the company matches, buyer when reached from a
// purchase or when the certificate already left the issuer.
func ResolveViewer(c Certificate, viewerCompanyID string, purchaseContext bool) Viewer {
    if v, ok := ViewerFromRole(c.ViewerRole); ok {
        return v
    }
    return Viewer{
        Owner: viewerCompanyID != "" && viewerCompanyID == c.OwnerCompanyID,
        Buyer: purchaseContext || c.Status == StatusTransferred || c.Status == StatusRetired,
    }
}

type CertificateAction string

const (
    ActionList   CertificateAction = "list"
    ActionRetire CertificateAction = "retire"
)

// Permissions is what the certificate screen may offer the viewer.
type Permissions struct {
    ActionsVisible bool
    CanList        bool
    CanRetire      bool
}

// ActionsVisible: a listed or retired certificate exposes no action.
func ActionsVisible(s CertificateStatus) bool {
    return s != StatusRetired && s != StatusListed
}

func CanList(s CertificateStatus, v Viewer) bool {
    return ActionsVisible(s) && v.Owner && !v.Buyer
}

func CanRetire(s CertificateStatus, v Viewer) bool {
    return ActionsVisible(s) && v.Buyer
}

func PermissionsFor(s CertificateStatus, v Viewer) Permissions {
    return Permissions{
        ActionsVisible: ActionsVisible(s),
        CanList:        CanList(s, v),
        CanRetire:      CanRetire(s, v),
    }
}

var ErrCertificateRetired = fmt.Errorf("certificate is retired: %w", ErrConflict)

// CheckAction returns why action may not be taken, or nil.
func CheckAction(s CertificateStatus, v Viewer, action CertificateAction) error {
    if s.Terminal() {
        return ErrCertificateRetired
    }
    switch action {
    case ActionList:
        if s == StatusListed {
            return fmt.Errorf("certificate is already listed: %w", ErrConflict)
        }
        if !CanList(s, v) {
            return fmt.Errorf("only the owning company may list this certificate: %w", ErrForbidden)
        }
    case ActionRetire:
        if s == StatusListed {
            return fmt.Errorf("a listed certificate cannot be retired: %w", ErrConflict)
        }
        if !CanRetire(s, v) {
            return fmt.Errorf("only the certificate holder may retire it: %w", ErrForbidden)
        }
    default:
        return fmt.Errorf("unknown action %q: %w", action, ErrValidation)
    }
    return nil
}

// NextStatus is the status the backend is expected to report once action
// succeeds. It never leaves RETIRED.
func NextStatus(s CertificateStatus, action CertificateAction) (CertificateStatus, error) {
    if s.Terminal() {
        return s, ErrCertificateRetired
    }
    switch action {
    case ActionList:
        if s == StatusListed {
            return s, fmt.Errorf("certificate is already listed: %w", ErrConflict)
        }
        return StatusListed, nil
    case ActionRetire:
        return StatusRetired, nil
    }
    return s, fmt.Errorf("unknown action %q: %w", action, ErrValidation)
}

// ValidateListing requires a supplied, positive price per unit.
func ValidateListing(price *decimal.Decimal) error {
    if price == nil {
        return NewValidationError("pricePerUnit", "is required")
    }
    if !price.IsPositive() {
        return NewValidationError("pricePerUnit", "must be greater than zero")
    }
    return nil
}

// MinRetirementReason is counted in characters after trimming.
const MinRetirementReason = 10

func ValidateRetirement(reason string) error {
    if utf8.RuneCountInString(strings.TrimSpace(reason)) < MinRetirementReason {
        return NewValidationError("retirementReason", fmt.Sprintf("must be at least %d characters", MinRetirementReason))
    }
    return nil
}

// RetirementWarning is shown before an irreversible retirement is sent.
const RetirementWarning = "Retiring a certificate permanently removes its credits from circulation. This cannot be undone."

// CertificateView is a certificate as seen by one viewer.
type CertificateView struct {
    Certificate Certificate
    Viewer      Viewer
    Permissions Permissions
}

// ListRequest carries the price as supplied; nil means the field was absent.
type ListRequest struct {
    PricePerUnit *decimal.Decimal
}

type RetireRequest struct {
    Reason      string
    Beneficiary string
    // Confirmed is set once the viewer acknowledged RetirementWarning.
    Confirmed bool
}

// RetireOutcome is either a pending confirmation or a submitted retirement.
type RetireOutcome struct {
    ConfirmationRequired bool
    Warning              string
    Submitted            bool
}

// SnapshotFilter narrows cached certificate snapshots.
type SnapshotFilter struct {
    Status         *CertificateStatus
    OwnerCompanyID *string
    Limit          int
}

type CertificateSnapshot struct {
    Certificate Certificate
    FetchedAt   time.Time
}

// ApplyList returns the status after a successful listing.
func ApplyList(s CertificateStatus) (CertificateStatus, error) { return NextStatus(s, ActionList) }

// ApplyRetire returns the status after a successful retirement.
func ApplyRetire(s CertificateStatus) (CertificateStatus, error) { return NextStatus(s, ActionRetire) }

package backend

import (
    "context"
    "net/http"
    "time"

    openapi_types "github.com/oapi-codegen/runtime/types"

    "chaincarbon/internal/domain"
)

// auditBody is the POST /regulator/audits payload: raw criteria as entered
// plus the derived scores computed at save time.
type auditBody struct {
    CompanyID string `json:"company_id"`
    domain.Criteria

    Findings        string              `json:"findings"`
    Recommendations string              `json:"recommendations"`
    Strengths       string              `json:"strengths,omitempty"`
    Weaknesses      string              `json:"weaknesses,omitempty"`
    ActionItems     string              `json:"action_items,omitempty"`
    AuditDate       openapi_types.Date  `json:"audit_date"`
    AuditorName     string              `json:"auditor_name"`
    Status          domain.AuditStatus  `json:"status"`
    NextAuditDate   *openapi_types.Date `json:"next_audit_date,omitempty"`

    FinancialScore     int              `json:"financial_score"`
    DocumentationScore int              `json:"documentation_score"`
    OperationalScore   int              `json:"operational_score"`
    ComplianceScore    int              `json:"compliance_score"`
    OverallScore       int              `json:"overall_score"`
    OverallRating      domain.Rating    `json:"overall_rating"`
    RiskLevel          domain.RiskLevel `json:"risk_level"`
}

func newAuditBody(rec domain.AuditRecord, ev domain.Evaluation) auditBody {
    auditDate := rec.AuditDate
    if auditDate.IsZero() {
        auditDate = time.Now().UTC()
    }
    body := auditBody{
        CompanyID:          rec.CompanyID,
        Criteria:           rec.Criteria,
        Findings:           rec.Findings,
        Recommendations:    rec.Recommendations,
        Strengths:          rec.Strengths,
        Weaknesses:         rec.Weaknesses,
        ActionItems:        rec.ActionItems,
        AuditDate:          openapi_types.Date{Time: auditDate},
        AuditorName:        rec.AuditorName,
        Status:             rec.Status,
        FinancialScore:     ev.Financial,
        DocumentationScore: ev.Documentation,
        OperationalScore:   ev.Operational,
        ComplianceScore:    ev.Compliance,
        OverallScore:       ev.Overall,
        OverallRating:      ev.Rating,
        RiskLevel:          ev.Risk,
    }
    if rec.NextAuditDate != nil {
        body.NextAuditDate = &openapi_types.Date{Time: *rec.NextAuditDate}
    }
    return body
}

func (c *Client) CreateAudit(ctx context.Context, token string, rec domain.AuditRecord, ev domain.Evaluation) (string, error) {
    out, err := call[struct {
        AuditID string `json:"auditId"`
    }](ctx, c, http.MethodPost, "/regulator/audits", token, newAuditBody(rec, ev))
    if err != nil {
        return "", err
    }
    return out.AuditID, nil
}

package domain

import (
    "encoding/json"
    "math"
    "strings"
    "time"
)

// Score is one audit criterion value. Inputs are expected in [0,100] but are
// neither clamped nor rejected.
type Score int

// ParseScore reads the leading integer of s. Anything unparseable is 0 and
// values past the int32 range saturate at its bounds.
func ParseScore(s string) Score {
    s = strings.TrimSpace(s)
    neg := false
    if s != "" && (s[0] == '+' || s[0] == '-') {
        neg = s[0] == '-'
        s = s[1:]
    }
    var n int64
    for i := 0; i < len(s); i++ {
        c := s[i]
        if c < '0' || c > '9' {
            break
        }
        if n <= math.MaxInt32 {
            n = n*10 + int64(c-'0')
        }
    }
    if neg {
        n = -n
    }
    switch {
    case n > math.MaxInt32:
        n = math.MaxInt32
    case n < math.MinInt32:
        n = math.MinInt32
    }
    return Score(n)
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (s *Score) UnmarshalJSON(data []byte) error {
    raw := strings.TrimSpace(string(data))
    if raw == "" || raw == "null" {
        *s = 0
        return nil
    }
    if raw[0] == '"' {
        var str string
        if err := json.Unmarshal(data, &str); err != nil {
            *s = 0
            return nil
        }
        *s = ParseScore(str)
        return nil
    }
    *s = ParseScore(raw)
    return nil
}

type Criteria struct {
    FinancialTransparency     Score `json:"financialTransparency"`
    ComplianceRegulatory      Score `json:"complianceRegulatory"`
    DocumentationCompleteness Score `json:"documentationCompleteness"`
    VerificationMethodology   Score `json:"verificationMethodology"`
    ProjectImplementation     Score `json:"projectImplementation"`
    MonitoringReporting       Score `json:"monitoringReporting"`
    StakeholderEngagement     Score `json:"stakeholderEngagement"`
}

func (c Criteria) all() []Score {
    return []Score{
        c.FinancialTransparency,
        c.ComplianceRegulatory,
        c.DocumentationCompleteness,
        c.VerificationMethodology,
        c.ProjectImplementation,
        c.MonitoringReporting,
        c.StakeholderEngagement,
    }
}

type Rating string

const (
    RatingExcellent Rating = "Excellent"
    RatingVeryGood  Rating = "Very Good"
    RatingGood      Rating = "Good"
    RatingFair      Rating = "Fair"
    RatingPoor      Rating = "Poor"
)

type RiskLevel string

const (
    RiskLow    RiskLevel = "Low"
    RiskMedium RiskLevel = "Medium"
    RiskHigh   RiskLevel = "High"
)

// Evaluation holds every value derived from a Criteria.
type Evaluation struct {
    Financial     int
    Documentation int
    Operational   int
    Compliance    int
    Overall       int
    Rating        Rating
    Risk          RiskLevel
}

// roundHalfUp rounds .5 toward +Inf.
func roundHalfUp(x float64) int { return int(math.Floor(x + 0.5)) }

// CategoryScore is the rounded mean of the members; an empty group scores 0.
func CategoryScore(members ...Score) int {
    if len(members) == 0 {
        return 0
    }
    sum := 0
    for _, m := range members {
        sum += int(m)
    }
    return roundHalfUp(float64(sum) / float64(len(members)))
}

// OverallScore averages the seven raw criteria, not the category scores.
func OverallScore(c Criteria) int { return CategoryScore(c.all()...) }

func RatingFor(score int) Rating {
    switch {
    case score >= 90:
        return RatingExcellent
    case score >= 80:
        return RatingVeryGood
    case score >= 70:
        return RatingGood
    case score >= 60:
        return RatingFair
    default:
        return RatingPoor
    }
}

func RiskFor(score int) RiskLevel {
    switch {
    case score >= 85:
        return RiskLow
    case score >= 70:
        return RiskMedium
    default:
        return RiskHigh
    }
}

// Evaluate computes category, overall, rating and risk for c.
func Evaluate(c Criteria) Evaluation {
    overall := OverallScore(c)
    return Evaluation{
        Financial:     CategoryScore(c.FinancialTransparency, c.ComplianceRegulatory),
        Documentation: CategoryScore(c.DocumentationCompleteness, c.VerificationMethodology),
        Operational:   CategoryScore(c.ProjectImplementation, c.MonitoringReporting, c.StakeholderEngagement),
        Compliance:    int(c.ComplianceRegulatory),
        Overall:       overall,
        Rating:        RatingFor(overall),
        Risk:          RiskFor(overall),
    }
}

type AuditStatus string

const (
    AuditDraft      AuditStatus = "draft"
    AuditInProgress AuditStatus = "in_progress"
    AuditCompleted  AuditStatus = "completed"
)

func (s AuditStatus) Valid() bool {
    switch s {
    case AuditDraft, AuditInProgress, AuditCompleted:
        return true
    }
    return false
}

// AuditRecord is an auditor's evaluation of one company. Derived scores are
// not stored on the record; Evaluation() recomputes them from Criteria.
type AuditRecord struct {
    CompanyID       string
    Criteria        Criteria
    Findings        string
    Recommendations string
    Strengths       string
    Weaknesses      string
    ActionItems     string
    AuditDate       time.Time
    AuditorName     string
    Status          AuditStatus
    NextAuditDate   *time.Time
}

// Evaluation returns the derived fields persisted with the record.
func (a AuditRecord) Evaluation() Evaluation { return Evaluate(a.Criteria) }

// Normalize trims text fields and fills the default status.
func (a *AuditRecord) Normalize() {
    a.CompanyID = strings.TrimSpace(a.CompanyID)
    a.Findings = strings.TrimSpace(a.Findings)
    a.Recommendations = strings.TrimSpace(a.Recommendations)
    a.Strengths = strings.TrimSpace(a.Strengths)
    a.Weaknesses = strings.TrimSpace(a.Weaknesses)
    a.ActionItems = strings.TrimSpace(a.ActionItems)
    a.AuditorName = strings.TrimSpace(a.AuditorName)
    if a.Status == "" {
        a.Status = AuditDraft
    }
}

// Validate checks the preconditions for saving. Scores are never rejected.
func (a AuditRecord) Validate() error {
    verr := &ValidationError{}
    if strings.TrimSpace(a.CompanyID) == "" {
        verr.Add("companyId", "is required")
    }
    if strings.TrimSpace(a.Findings) == "" {
        verr.Add("findings", "is required")
    }
    if strings.TrimSpace(a.Recommendations) == "" {
        verr.Add("recommendations", "is required")
    }
    if a.Status != "" && !a.Status.Valid() {
        verr.Add("status", "must be one of draft, in_progress, completed")
    }
    return verr.OrNil()
}

package domain

import (
    "encoding/json"
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func uniform(v Score) Criteria {
    return Criteria{v, v, v, v, v, v, v}
}

func TestOverallScore_EqualInputs(t *testing.T) {
    t.Parallel()

    for v := 0; v <= 100; v++ {
        got := OverallScore(uniform(Score(v)))
        if got != v {
            t.Fatalf("OverallScore(all %d) = %d", v, got)
        }
    }
}

func TestOverallScore_UsesRawCriteria(t *testing.T) {
    t.Parallel()

    c := Criteria{
        FinancialTransparency:     100,
        ComplianceRegulatory:      100,
        DocumentationCompleteness: 100,
        VerificationMethodology:   100,
        ProjectImplementation:     100,
        MonitoringReporting:       0,
        StakeholderEngagement:     0,
    }

    ev := Evaluate(c)
    assert.Equal(t, 100, ev.Financial)
    assert.Equal(t, 100, ev.Documentation)
    assert.Equal(t, 33, ev.Operational)
    assert.Equal(t, 100, ev.Compliance)

    // 500/7 = 71.43; the mean of the rounded categories would be 78.
    assert.Equal(t, 71, ev.Overall)
    assert.NotEqual(t, CategoryScore(Score(ev.Financial), Score(ev.Documentation), Score(ev.Operational)), ev.Overall)
    assert.Equal(t, RatingGood, ev.Rating)
    assert.Equal(t, RiskMedium, ev.Risk)
}

func TestCategoryScore_RoundsHalfUp(t *testing.T) {
    t.Parallel()

    assert.Equal(t, 51, CategoryScore(50, 51))
    assert.Equal(t, 50, CategoryScore(50, 50, 51))
    assert.Equal(t, 67, CategoryScore(100, 100, 0))
    assert.Equal(t, 0, CategoryScore())
    assert.Equal(t, 0, CategoryScore(-1, 0))
}

func TestRatingFor_Boundaries(t *testing.T) {
    t.Parallel()

    tests := []struct {
        score int
        want  Rating
    }{
        {100, RatingExcellent},
        {90, RatingExcellent},
        {89, RatingVeryGood},
        {80, RatingVeryGood},
        {79, RatingGood},
        {70, RatingGood},
        {69, RatingFair},
        {60, RatingFair},
        {59, RatingPoor},
        {0, RatingPoor},
    }
    for _, tt := range tests {
        assert.Equal(t, tt.want, RatingFor(tt.score), "score %d", tt.score)
    }
}

func TestRiskFor_Boundaries(t *testing.T) {
    t.Parallel()

    tests := []struct {
        score int
        want  RiskLevel
    }{
        {85, RiskLow},
        {84, RiskMedium},
        {70, RiskMedium},
        {69, RiskHigh},
        {0, RiskHigh},
    }
    for _, tt := range tests {
        assert.Equal(t, tt.want, RiskFor(tt.score), "score %d", tt.score)
    }
}

func TestEvaluate_OutOfRangeIsNotClamped(t *testing.T) {
    t.Parallel()

    ev := Evaluate(uniform(150))
    assert.Equal(t, 150, ev.Overall)
    assert.Equal(t, RatingExcellent, ev.Rating)
}

func TestParseScore(t *testing.T) {
    t.Parallel()

    tests := map[string]Score{
        "85":                     85,
        " 42 ":                   42,
        "85abc":                  85,
        "72.9":                   72,
        "-5":                     -5,
        "+7":                     7,
        "":                       0,
        "abc":                    0,
        "-":                      0,
        "1234567890":             1234567890,
        "12345678901x":           math.MaxInt32,
        "99999999999999999999":   math.MaxInt32,
        "-99999999999999999999":  math.MinInt32,
        "0000000000000000000042": 42,
    }
    for in, want := range tests {
        assert.Equal(t, want, ParseScore(in), "input %q", in)
    }
}

func TestCriteria_UnmarshalBestEffort(t *testing.T) {
    t.Parallel()

    raw := `{
        "financialTransparency": "85abc",
        "complianceRegulatory": null,
        "documentationCompleteness": 72.9,
        "verificationMethodology": "",
        "projectImplementation": {},
        "monitoringReporting": 60
    }`

    var c Criteria
    require.NoError(t, json.Unmarshal([]byte(raw), &c))
    assert.Equal(t, Criteria{
        FinancialTransparency:     85,
        DocumentationCompleteness: 72,
        MonitoringReporting:       60,
    }, c)
}

func TestAuditRecord_Validate(t *testing.T) {
    t.Parallel()

    rec := AuditRecord{CompanyID: "c1", Findings: "", Recommendations: "  "}
    err := rec.Validate()
    require.Error(t, err)
    require.ErrorIs(t, err, ErrValidation)

    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    fields := []string{}
    for _, fe := range verr.Errors {
        fields = append(fields, fe.Field)
    }
    assert.ElementsMatch(t, []string{"findings", "recommendations"}, fields)

    rec.Findings, rec.Recommendations = "ok", "ok"
    assert.NoError(t, rec.Validate())

    rec.Status = "archived"
    assert.ErrorIs(t, rec.Validate(), ErrValidation)
}

func TestAuditRecord_NormalizeDefaultsStatus(t *testing.T) {
    t.Parallel()

    rec := AuditRecord{Findings: "  gaps in monitoring  "}
    rec.Normalize()
    assert.Equal(t, AuditDraft, rec.Status)
    assert.Equal(t, "gaps in monitoring", rec.Findings)
}

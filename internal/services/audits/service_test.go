package audits

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/inflight"
)

type fakeAPI struct {
    rec   domain.AuditRecord
    ev    domain.Evaluation
    calls int
    block chan struct{}
}

func (f *fakeAPI) CreateAudit(ctx context.Context, token string, rec domain.AuditRecord, ev domain.Evaluation) (string, error) {
    f.calls++
    f.rec, f.ev = rec, ev
    if f.block != nil {
        <-f.block
    }
    return "AUD-1", nil
}

var regulator = domain.Session{ID: "s1", Token: "t", User: domain.User{ID: "u-9", Name: "R. Auditor", Role: "regulator"}}

func TestPreview(t *testing.T) {
    t.Parallel()

    svc := New(&fakeAPI{}, nil, nil)
    ev := svc.Preview(domain.Criteria{FinancialTransparency: 100, ComplianceRegulatory: 100, DocumentationCompleteness: 100, VerificationMethodology: 100, ProjectImplementation: 100, MonitoringReporting: 0, StakeholderEngagement: 0})
    assert.Equal(t, 71, ev.Overall)
    assert.Equal(t, domain.RatingGood, ev.Rating)
    assert.Equal(t, domain.RiskMedium, ev.Risk)
}

func TestSave_DerivesScoresAndDefaults(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{}
    svc := New(api, nil, nil)
    svc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

    id, err := svc.Save(context.Background(), regulator, domain.AuditRecord{
        CompanyID:       "co-1",
        Criteria:        domain.Criteria{FinancialTransparency: 90, ComplianceRegulatory: 90, DocumentationCompleteness: 90, VerificationMethodology: 90, ProjectImplementation: 90, MonitoringReporting: 90, StakeholderEngagement: 90},
        Findings:        " solid controls ",
        Recommendations: "keep going",
    })
    require.NoError(t, err)
    assert.Equal(t, "AUD-1", id)
    assert.Equal(t, "solid controls", api.rec.Findings)
    assert.Equal(t, "R. Auditor", api.rec.AuditorName)
    assert.Equal(t, domain.AuditDraft, api.rec.Status)
    assert.Equal(t, 2026, api.rec.AuditDate.Year())
    assert.Equal(t, domain.Evaluation{Financial: 90, Documentation: 90, Operational: 90, Compliance: 90, Overall: 90, Rating: domain.RatingExcellent, Risk: domain.RiskLow}, api.ev)
}

func TestSave_ValidationBlocksPost(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{}
    svc := New(api, nil, nil)

    _, err := svc.Save(context.Background(), regulator, domain.AuditRecord{CompanyID: "co-1", Findings: "   "})
    var verr *domain.ValidationError
    require.ErrorAs(t, err, &verr)
    assert.Len(t, verr.Errors, 2)
    assert.Equal(t, 0, api.calls)
}

func TestSave_RequiresRegulator(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{}
    svc := New(api, nil, nil)

    company := domain.Session{ID: "s2", User: domain.User{Role: "company"}}
    _, err := svc.Save(context.Background(), company, domain.AuditRecord{CompanyID: "co-1", Findings: "f", Recommendations: "r"})
    assert.ErrorIs(t, err, domain.ErrForbidden)
    assert.Equal(t, 0, api.calls)
}

func TestSave_RejectsConcurrentDuplicate(t *testing.T) {
    t.Parallel()

    guard := inflight.New()
    api := &fakeAPI{block: make(chan struct{})}
    svc := New(api, guard, nil)
    rec := domain.AuditRecord{CompanyID: "co-1", Findings: "f", Recommendations: "r"}

    done := make(chan error, 1)
    go func() {
        _, err := svc.Save(context.Background(), regulator, rec)
        done <- err
    }()
    require.Eventually(t, func() bool { return guard.Busy(inflight.Key("s1", "audit", "co-1")) }, time.Second, 5*time.Millisecond)

    _, err := svc.Save(context.Background(), regulator, rec)
    assert.ErrorIs(t, err, domain.ErrInFlight)
    assert.ErrorIs(t, err, domain.ErrConflict)

    close(api.block)
    require.NoError(t, <-done)
}

package companies

import (
    "context"
    "errors"
    "sync/atomic"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "chaincarbon/internal/domain"
)

type fakeAPI struct {
    txErr    error
    export   []byte
    settings domain.RegulatorSettings
    calls    atomic.Int32
}

func (f *fakeAPI) Company(ctx context.Context, token, id string) (domain.Company, error) {
    f.calls.Add(1)
    return domain.Company{ID: id, Name: "Acme"}, nil
}

func (f *fakeAPI) CompanyProjects(ctx context.Context, token, id string) ([]domain.Project, error) {
    f.calls.Add(1)
    return []domain.Project{{ID: "p-1", CompanyID: id}}, nil
}

func (f *fakeAPI) CompanyCertificates(ctx context.Context, token, id string) ([]domain.Certificate, error) {
    f.calls.Add(1)
    return []domain.Certificate{{ID: "CERT-1", OwnerCompanyID: id}}, nil
}

func (f *fakeAPI) CompanyTransactions(ctx context.Context, token, id string) ([]domain.Transaction, error) {
    f.calls.Add(1)
    if f.txErr != nil {
        return nil, f.txErr
    }
    return []domain.Transaction{{ID: "tx-1"}}, nil
}

func (f *fakeAPI) Stats(ctx context.Context, token string) (domain.RegulatorStats, error) {
    f.calls.Add(1)
    return domain.RegulatorStats{Companies: 3}, nil
}

func (f *fakeAPI) Settings(ctx context.Context, token string) (domain.RegulatorSettings, error) {
    f.calls.Add(1)
    return f.settings, nil
}

func (f *fakeAPI) UpdateSettings(ctx context.Context, token string, in domain.RegulatorSettings) (domain.RegulatorSettings, error) {
    f.calls.Add(1)
    f.settings = in
    return in, nil
}

func (f *fakeAPI) Export(ctx context.Context, token string, kind domain.ExportKind) ([]byte, error) {
    f.calls.Add(1)
    return f.export, nil
}

var (
    regulator = domain.Session{ID: "s1", Token: "t", User: domain.User{ID: "u-1", Role: "regulator"}}
    company   = domain.Session{ID: "s2", Token: "t", User: domain.User{ID: "u-2", Role: "company"}}
)

func TestContext_LoadsEverything(t *testing.T) {
    t.Parallel()

    svc := New(&fakeAPI{}, nil)
    cc, err := svc.Context(context.Background(), regulator, "co-1")
    require.NoError(t, err)
    assert.Equal(t, "Acme", cc.Company.Name)
    assert.Len(t, cc.Projects, 1)
    assert.Len(t, cc.Certificates, 1)
    assert.Len(t, cc.Transactions, 1)
}

func TestContext_FailsAsAWhole(t *testing.T) {
    t.Parallel()

    boom := errors.New("ledger unavailable")
    svc := New(&fakeAPI{txErr: boom}, nil)
    _, err := svc.Context(context.Background(), regulator, "co-1")
    assert.ErrorIs(t, err, boom)
}

func TestRegulatorOnly(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{}
    svc := New(api, nil)
    ctx := context.Background()

    _, err := svc.Context(ctx, company, "co-1")
    assert.ErrorIs(t, err, domain.ErrForbidden)
    _, err = svc.Stats(ctx, company)
    assert.ErrorIs(t, err, domain.ErrForbidden)
    _, err = svc.Settings(ctx, company)
    assert.ErrorIs(t, err, domain.ErrForbidden)
    _, err = svc.Export(ctx, company, domain.ExportAudits)
    assert.ErrorIs(t, err, domain.ErrForbidden)
    assert.EqualValues(t, 0, api.calls.Load())
}

func TestUpdateSettings_Validation(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{}
    svc := New(api, nil)

    _, err := svc.UpdateSettings(context.Background(), regulator, domain.RegulatorSettings{
        AuditIntervalDays:    0,
        MinimumAuditScore:    101,
        NotificationsEnabled: true,
    })
    var verr *domain.ValidationError
    require.ErrorAs(t, err, &verr)
    assert.Len(t, verr.Errors, 3)
    assert.EqualValues(t, 0, api.calls.Load())

    in := domain.RegulatorSettings{AuditIntervalDays: 365, MinimumAuditScore: 60, AutoApproveThreshold: 85, NotificationsEnabled: true, NotificationEmail: "audit@regulator.example"}
    out, err := svc.UpdateSettings(context.Background(), regulator, in)
    require.NoError(t, err)
    assert.Equal(t, in, out)
}

func TestExport(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{export: []byte("id,name\nco-1,\"Acme, Inc\"\n")}
    svc := New(api, nil)

    raw, err := svc.Export(context.Background(), regulator, domain.ExportCompanies)
    require.NoError(t, err)
    assert.Equal(t, api.export, raw)

    api.export = []byte("id,name\nco-1,\"unterminated\n")
    _, err = svc.Export(context.Background(), regulator, domain.ExportCompanies)
    assert.ErrorIs(t, err, ErrMalformedExport)

    api.export = nil
    _, err = svc.Export(context.Background(), regulator, domain.ExportCompanies)
    assert.ErrorIs(t, err, ErrMalformedExport)

    _, err = svc.Export(context.Background(), regulator, domain.ExportKind("passwords"))
    assert.ErrorIs(t, err, domain.ErrValidation)
}

package certificates

import (
    "context"
    "errors"
    "io"
    "log/slog"
    "sync"
    "testing"
    "time"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/inflight"
    "chaincarbon/internal/ports"
)

type fakeAPI struct {
    mu        sync.Mutex
    cert      domain.Certificate
    detailErr error
    actionErr error
    block     chan struct{}

    details int
    lists   int
    retires int
    price   decimal.Decimal
    reason  string
}

func (f *fakeAPI) CertificateDetail(ctx context.Context, token, id string) (domain.Certificate, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.details++
    if f.detailErr != nil {
        return domain.Certificate{}, f.detailErr
    }
    c := f.cert
    c.ID = id
    return c, nil
}

func (f *fakeAPI) ListCertificate(ctx context.Context, token, id string, price decimal.Decimal) error {
    if f.block != nil {
        <-f.block
    }
    f.mu.Lock()
    defer f.mu.Unlock()
    f.lists++
    f.price = price
    return f.actionErr
}

func (f *fakeAPI) RetireCertificate(ctx context.Context, token, id, reason, beneficiary string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.retires++
    f.reason = reason
    return f.actionErr
}

func (f *fakeAPI) Verify(ctx context.Context, id string) (domain.Verification, error) {
    c := f.cert
    c.ID = id
    return domain.Verification{Valid: true, Certificate: &c}, nil
}

func (f *fakeAPI) networkCalls() int {
    f.mu.Lock()
    defer f.mu.Unlock()
    return f.details + f.lists + f.retires
}

type memSnapshots struct {
    mu   sync.Mutex
    data map[string]domain.Certificate
}

func (m *memSnapshots) UpsertSnapshot(ctx context.Context, c domain.Certificate) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    if m.data == nil {
        m.data = map[string]domain.Certificate{}
    }
    if old, ok := m.data[c.ID]; ok && old.Status == domain.StatusRetired {
        c.Status = domain.StatusRetired
    }
    m.data[c.ID] = c
    return nil
}

func (m *memSnapshots) GetSnapshot(ctx context.Context, id string) (domain.CertificateSnapshot, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    c, ok := m.data[id]
    if !ok {
        return domain.CertificateSnapshot{}, domain.ErrNotFound
    }
    return domain.CertificateSnapshot{Certificate: c}, nil
}

func (m *memSnapshots) ListSnapshots(ctx context.Context, f domain.SnapshotFilter) ([]domain.CertificateSnapshot, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    var out []domain.CertificateSnapshot
    for _, c := range m.data {
        if f.Status != nil && c.Status != *f.Status {
            continue
        }
        if f.OwnerCompanyID != nil && c.OwnerCompanyID != *f.OwnerCompanyID {
            continue
        }
        out = append(out, domain.CertificateSnapshot{Certificate: c})
    }
    return out, nil
}

type fakeJobs struct {
    mu       sync.Mutex
    enqueued []time.Time
    err      error
}

func (f *fakeJobs) EnqueueRefresh(ctx context.Context, certID, sessionID string, runAfter time.Time) (string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.err != nil {
        return "", f.err
    }
    f.enqueued = append(f.enqueued, runAfter)
    return "job-1", nil
}
func (f *fakeJobs) ClaimNext(ctx context.Context) (ports.RefreshJob, bool, error) {
    return ports.RefreshJob{}, false, nil
}
func (f *fakeJobs) StartJob(ctx context.Context, id string) error                { return nil }
func (f *fakeJobs) MarkCompleted(ctx context.Context, id string) error           { return nil }
func (f *fakeJobs) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

var (
    owner     = domain.Session{ID: "s-owner", Token: "t", User: domain.User{ID: "u-1", CompanyID: "co-1"}}
    buyer     = domain.Session{ID: "s-buyer", Token: "t", User: domain.User{ID: "u-2", CompanyID: "co-2"}}
    regulator = domain.Session{ID: "s-reg", Token: "t", User: domain.User{ID: "u-9", Role: "regulator"}}
    now         = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
)

func newService(api *fakeAPI, snaps *memSnapshots, jobs *fakeJobs, opts ...Option) *Service {
    opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
    s := New(api, snaps, jobs, opts...)
    s.now = func() time.Time { return now }
    return s
}

func price(s string) *decimal.Decimal {
    d := decimal.RequireFromString(s)
    return &d
}

func TestDetail_Permissions(t *testing.T) {
    t.Parallel()

    tests := []struct {
        name     string
        cert     domain.Certificate
        sess     domain.Session
        purchase bool
        want     domain.Permissions
    }{
        {"owner of issued", domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, owner, false,
            domain.Permissions{ActionsVisible: true, CanList: true}},
        {"stranger", domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, buyer, false,
            domain.Permissions{ActionsVisible: true}},
        {"buyer from purchase", domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, buyer, true,
            domain.Permissions{ActionsVisible: true, CanRetire: true}},
        {"listed hides actions", domain.Certificate{Status: domain.StatusListed, OwnerCompanyID: "co-1"}, owner, false,
            domain.Permissions{}},
        {"retired hides actions", domain.Certificate{Status: domain.StatusRetired, OwnerCompanyID: "co-2"}, buyer, true,
            domain.Permissions{}},
        {"backend role wins", domain.Certificate{Status: domain.StatusTransferred, OwnerCompanyID: "co-1", ViewerRole: "owner"}, owner, false,
            domain.Permissions{ActionsVisible: true, CanList: true}},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            t.Parallel()
            snaps := &memSnapshots{}
            svc := newService(&fakeAPI{cert: tt.cert}, snaps, &fakeJobs{})

            view, err := svc.Detail(context.Background(), tt.sess, "CERT-1", tt.purchase)
            require.NoError(t, err)
            assert.Equal(t, tt.want, view.Permissions)

            _, err = snaps.GetSnapshot(context.Background(), "CERT-1")
            assert.NoError(t, err)
        })
    }
}

func TestList_InvalidPriceMakesNoCall(t *testing.T) {
    t.Parallel()

    for _, p := range []*decimal.Decimal{nil, price("0"), price("-3")} {
        api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}}
        jobs := &fakeJobs{}
        svc := newService(api, &memSnapshots{}, jobs)

        _, err := svc.List(context.Background(), owner, "CERT-1", domain.ListRequest{PricePerUnit: p}, false)
        assert.ErrorIs(t, err, domain.ErrValidation)
        assert.Equal(t, 0, api.networkCalls())
        assert.Empty(t, jobs.enqueued)
    }
}

func TestList_QueuesDelayedRefresh(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}}
    jobs := &fakeJobs{}
    svc := newService(api, &memSnapshots{}, jobs, WithRefreshDelay(3*time.Second))

    job, err := svc.List(context.Background(), owner, "CERT-1", domain.ListRequest{PricePerUnit: price("12.50")}, false)
    require.NoError(t, err)
    assert.Equal(t, ports.RefreshJob{ID: "job-1", CertificateID: "CERT-1", SessionID: "s-owner"}, job)
    assert.Equal(t, 1, api.lists)
    assert.True(t, decimal.RequireFromString("12.5").Equal(api.price))
    require.Len(t, jobs.enqueued, 1)
    assert.Equal(t, now.Add(3*time.Second), jobs.enqueued[0])
}

func TestList_NoOptimisticStatusChange(t *testing.T) {
    t.Parallel()

    snaps := &memSnapshots{}
    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}}
    svc := newService(api, snaps, &fakeJobs{})

    _, err := svc.List(context.Background(), owner, "CERT-1", domain.ListRequest{PricePerUnit: price("1")}, false)
    require.NoError(t, err)

    snap, err := snaps.GetSnapshot(context.Background(), "CERT-1")
    require.NoError(t, err)
    assert.Equal(t, domain.StatusIssued, snap.Certificate.Status)
}

func TestList_EnqueueFailureStillSucceeds(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}}
    svc := newService(api, &memSnapshots{}, &fakeJobs{err: errors.New("db down")})

    job, err := svc.List(context.Background(), owner, "CERT-1", domain.ListRequest{PricePerUnit: price("1")}, false)
    require.NoError(t, err)
    assert.Empty(t, job.ID)
    assert.Equal(t, 1, api.lists)
}

func TestList_GatedByStatusAndViewer(t *testing.T) {
    t.Parallel()

    tests := []struct {
        name     string
        cert     domain.Certificate
        sess     domain.Session
        purchase bool
        want     error
    }{
        {"retired", domain.Certificate{Status: domain.StatusRetired, OwnerCompanyID: "co-1"}, owner, false, domain.ErrCertificateRetired},
        {"already listed", domain.Certificate{Status: domain.StatusListed, OwnerCompanyID: "co-1"}, owner, false, domain.ErrConflict},
        {"not owner", domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, buyer, false, domain.ErrForbidden},
        {"owner who bought it", domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, owner, true, domain.ErrForbidden},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            t.Parallel()
            api := &fakeAPI{cert: tt.cert}
            svc := newService(api, &memSnapshots{}, &fakeJobs{})

            _, err := svc.List(context.Background(), tt.sess, "CERT-1", domain.ListRequest{PricePerUnit: price("5")}, tt.purchase)
            assert.ErrorIs(t, err, tt.want)
            assert.Equal(t, 0, api.lists)
        })
    }
}

func TestList_ServerRejectionSurfaced(t *testing.T) {
    t.Parallel()

    rejected := errors.New("Price exceeds allowed range")
    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, actionErr: rejected}
    jobs := &fakeJobs{}
    svc := newService(api, &memSnapshots{}, jobs)

    _, err := svc.List(context.Background(), owner, "CERT-1", domain.ListRequest{PricePerUnit: price("1")}, false)
    assert.Equal(t, rejected, err)
    assert.Empty(t, jobs.enqueued)
}

func TestList_InFlightRejectsDuplicate(t *testing.T) {
    t.Parallel()

    guard := inflight.New()
    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, block: make(chan struct{})}
    svc := newService(api, &memSnapshots{}, &fakeJobs{}, WithGuard(guard))
    req := domain.ListRequest{PricePerUnit: price("1")}

    done := make(chan error, 1)
    go func() {
        _, err := svc.List(context.Background(), owner, "CERT-1", req, false)
        done <- err
    }()
    require.Eventually(t, func() bool { return guard.Busy(inflight.Key("s-owner", "list", "CERT-1")) }, time.Second, 5*time.Millisecond)

    _, err := svc.List(context.Background(), owner, "CERT-1", req, false)
    assert.ErrorIs(t, err, domain.ErrInFlight)

    close(api.block)
    require.NoError(t, <-done)
    assert.False(t, guard.Busy(inflight.Key("s-owner", "list", "CERT-1")))
}

func TestRetire_RequiresConfirmation(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusTransferred, OwnerCompanyID: "co-2"}}
    svc := newService(api, &memSnapshots{}, &fakeJobs{})

    out, err := svc.Retire(context.Background(), buyer, "CERT-1", domain.RetireRequest{Reason: "offsetting 2026 flights"}, false)
    require.NoError(t, err)
    assert.True(t, out.ConfirmationRequired)
    assert.Equal(t, domain.RetirementWarning, out.Warning)
    assert.False(t, out.Submitted)
    assert.Equal(t, 1, api.details)
    assert.Equal(t, 0, api.retires)
}

func TestRetire_UnconfirmedStillGated(t *testing.T) {
    t.Parallel()

    tests := []struct {
        name     string
        cert     domain.Certificate
        sess     domain.Session
        purchase bool
        want     error
    }{
        {"retired", domain.Certificate{Status: domain.StatusRetired, OwnerCompanyID: "co-2"}, buyer, true, domain.ErrCertificateRetired},
        {"listed", domain.Certificate{Status: domain.StatusListed, OwnerCompanyID: "co-3"}, buyer, true, domain.ErrConflict},
        {"owner is not buyer", domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}, owner, false, domain.ErrForbidden},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            t.Parallel()
            api := &fakeAPI{cert: tt.cert}
            svc := newService(api, &memSnapshots{}, &fakeJobs{})

            out, err := svc.Retire(context.Background(), tt.sess, "CERT-1",
                domain.RetireRequest{Reason: "offsetting 2026 flights", Confirmed: false}, tt.purchase)
            assert.ErrorIs(t, err, tt.want)
            assert.False(t, out.ConfirmationRequired)
            assert.Empty(t, out.Warning)
            assert.Equal(t, 0, api.retires)
        })
    }
}

func TestRetire_ReasonTrimmedLength(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusTransferred}}
    svc := newService(api, &memSnapshots{}, &fakeJobs{})

    _, err := svc.Retire(context.Background(), buyer, "CERT-1", domain.RetireRequest{Reason: "   too short   ", Confirmed: true}, false)
    assert.ErrorIs(t, err, domain.ErrValidation)
    assert.Equal(t, 0, api.networkCalls())

    out, err := svc.Retire(context.Background(), buyer, "CERT-1", domain.RetireRequest{Reason: "  ten chars!  "}, false)
    require.NoError(t, err)
    assert.True(t, out.ConfirmationRequired)
    assert.Equal(t, 0, api.retires)
}

func TestRetire_Confirmed(t *testing.T) {
    t.Parallel()

    snaps := &memSnapshots{}
    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusTransferred, OwnerCompanyID: "co-2"}}
    svc := newService(api, snaps, &fakeJobs{})

    out, err := svc.Retire(context.Background(), buyer, "CERT-1",
        domain.RetireRequest{Reason: "  offsetting 2026 flights ", Beneficiary: "Acme", Confirmed: true}, false)
    require.NoError(t, err)
    assert.True(t, out.Submitted)
    assert.Equal(t, 1, api.retires)
    assert.Equal(t, "offsetting 2026 flights", api.reason)

    snap, err := snaps.GetSnapshot(context.Background(), "CERT-1")
    require.NoError(t, err)
    assert.Equal(t, domain.StatusRetired, snap.Certificate.Status)
}

func TestRetire_TerminalAndListed(t *testing.T) {
    t.Parallel()

    req := domain.RetireRequest{Reason: "offsetting 2026 flights", Confirmed: true}

    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusRetired}}
    svc := newService(api, &memSnapshots{}, &fakeJobs{})
    _, err := svc.Retire(context.Background(), buyer, "CERT-1", req, true)
    assert.ErrorIs(t, err, domain.ErrCertificateRetired)
    assert.Equal(t, 0, api.retires)

    api = &fakeAPI{cert: domain.Certificate{Status: domain.StatusListed}}
    svc = newService(api, &memSnapshots{}, &fakeJobs{})
    _, err = svc.Retire(context.Background(), buyer, "CERT-1", req, true)
    assert.ErrorIs(t, err, domain.ErrConflict)
    assert.Equal(t, 0, api.retires)
}

func TestRetire_OwnerIsNotBuyer(t *testing.T) {
    t.Parallel()

    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}}
    svc := newService(api, &memSnapshots{}, &fakeJobs{})

    _, err := svc.Retire(context.Background(), owner, "CERT-1", domain.RetireRequest{Reason: "offsetting 2026 flights", Confirmed: true}, false)
    assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefresh_StoresBackendState(t *testing.T) {
    t.Parallel()

    snaps := &memSnapshots{}
    api := &fakeAPI{cert: domain.Certificate{Status: domain.StatusListed, OwnerCompanyID: "co-1"}}
    svc := newService(api, snaps, &fakeJobs{})

    require.NoError(t, svc.Refresh(context.Background(), owner, "CERT-1"))
    snap, err := svc.Snapshot(context.Background(), "CERT-1")
    require.NoError(t, err)
    assert.Equal(t, domain.StatusListed, snap.Certificate.Status)

    api.detailErr = domain.ErrUnauthorized
    assert.ErrorIs(t, svc.Refresh(context.Background(), owner, "CERT-1"), domain.ErrUnauthorized)
}

func TestSnapshots_RejectsUnknownStatus(t *testing.T) {
    t.Parallel()

    svc := newService(&fakeAPI{}, &memSnapshots{}, &fakeJobs{})
    st := domain.CertificateStatus("BURNED")
    _, err := svc.Snapshots(context.Background(), regulator, domain.SnapshotFilter{Status: &st})
    assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerify_CachesCertificate(t *testing.T) {
    t.Parallel()

    snaps := &memSnapshots{}
    svc := newService(&fakeAPI{cert: domain.Certificate{Status: domain.StatusRetired}}, snaps, &fakeJobs{})

    v, err := svc.Verify(context.Background(), "CERT-9")
    require.NoError(t, err)
    assert.True(t, v.Valid)

    out, err := svc.Snapshots(context.Background(), regulator, domain.SnapshotFilter{})
    require.NoError(t, err)
    require.Len(t, out, 1)
    assert.Equal(t, "CERT-9", out[0].Certificate.ID)
}

func TestSnapshots_ScopedToCompany(t *testing.T) {
    t.Parallel()

    ctx := context.Background()
    snaps := &memSnapshots{}
    svc := newService(&fakeAPI{cert: domain.Certificate{Status: domain.StatusIssued, OwnerCompanyID: "co-1"}}, snaps, &fakeJobs{})
    _, err := svc.Detail(ctx, owner, "CERT-PRIVATE", false)
    require.NoError(t, err)

    other := "co-1"
    out, err := svc.Snapshots(ctx, buyer, domain.SnapshotFilter{OwnerCompanyID: &other})
    require.NoError(t, err)
    assert.Empty(t, out)

    out, err = svc.Snapshots(ctx, owner, domain.SnapshotFilter{})
    require.NoError(t, err)
    require.Len(t, out, 1)
    assert.Equal(t, "CERT-PRIVATE", out[0].Certificate.ID)

    out, err = svc.Snapshots(ctx, regulator, domain.SnapshotFilter{OwnerCompanyID: &other})
    require.NoError(t, err)
    assert.Len(t, out, 1)

    noCompany := domain.Session{ID: "s-x", User: domain.User{ID: "u-3", Role: "company"}}
    _, err = svc.Snapshots(ctx, noCompany, domain.SnapshotFilter{})
    assert.ErrorIs(t, err, domain.ErrForbidden)
}

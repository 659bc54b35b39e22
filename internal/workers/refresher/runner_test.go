package refresher

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/ports"
)

type memJobs struct {
    mu        sync.Mutex
    queue     []ports.RefreshJob
    started   []string
    completed []string
    failed    map[string]string
}

func (m *memJobs) EnqueueRefresh(ctx context.Context, certID, sessionID string, runAfter time.Time) (string, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    id := certID + "-job"
    m.queue = append(m.queue, ports.RefreshJob{ID: id, CertificateID: certID, SessionID: sessionID})
    return id, nil
}

func (m *memJobs) ClaimNext(ctx context.Context) (ports.RefreshJob, bool, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    if len(m.queue) == 0 {
        return ports.RefreshJob{}, false, nil
    }
    job := m.queue[0]
    m.queue = m.queue[1:]
    return job, true, nil
}

func (m *memJobs) StartJob(ctx context.Context, id string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.started = append(m.started, id)
    return nil
}

func (m *memJobs) MarkCompleted(ctx context.Context, id string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.completed = append(m.completed, id)
    return nil
}

func (m *memJobs) MarkFailed(ctx context.Context, id string, reason string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    if m.failed == nil {
        m.failed = map[string]string{}
    }
    m.failed[id] = reason
    return nil
}

func (m *memJobs) snapshot() (completed []string, failed map[string]string) {
    m.mu.Lock()
    defer m.mu.Unlock()
    failed = map[string]string{}
    for k, v := range m.failed {
        failed[k] = v
    }
    return append([]string(nil), m.completed...), failed
}

type funcProcessor func(ctx context.Context, job ports.RefreshJob) error

func (f funcProcessor) Process(ctx context.Context, job ports.RefreshJob) error { return f(ctx, job) }

func TestRun_ProcessesQueuedJobs(t *testing.T) {
    t.Parallel()

    repo := &memJobs{}
    _, _ = repo.EnqueueRefresh(context.Background(), "CERT-1", "s1", time.Now())
    _, _ = repo.EnqueueRefresh(context.Background(), "CERT-2", "s1", time.Now())

    proc := funcProcessor(func(ctx context.Context, job ports.RefreshJob) error {
        if job.CertificateID == "CERT-2" {
            return errors.New("backend down")
        }
        return nil
    })

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()
    Run(ctx, repo, proc, 2, 10*time.Millisecond, nil)

    require.Eventually(t, func() bool {
        completed, failed := repo.snapshot()
        return len(completed) == 1 && len(failed) == 1
    }, 2*time.Second, 10*time.Millisecond)

    completed, failed := repo.snapshot()
    assert.Equal(t, []string{"CERT-1-job"}, completed)
    assert.Equal(t, "backend down", failed["CERT-2-job"])
}

func TestRun_ZeroConcurrencyDoesNothing(t *testing.T) {
    t.Parallel()

    repo := &memJobs{}
    _, _ = repo.EnqueueRefresh(context.Background(), "CERT-1", "s1", time.Now())
    Run(context.Background(), repo, funcProcessor(func(context.Context, ports.RefreshJob) error { return nil }), 0, time.Millisecond, nil)

    time.Sleep(20 * time.Millisecond)
    completed, _ := repo.snapshot()
    assert.Empty(t, completed)
}

func TestProcessInline(t *testing.T) {
    t.Parallel()

    repo := &memJobs{}
    var got ports.RefreshJob
    proc := funcProcessor(func(ctx context.Context, job ports.RefreshJob) error {
        got = job
        return nil
    })
    job := ports.RefreshJob{ID: "j1", CertificateID: "CERT-1", SessionID: "s1"}

    require.NoError(t, ProcessInline(context.Background(), repo, proc, job, time.Millisecond))
    assert.Equal(t, job, got)
    assert.Equal(t, []string{"j1"}, repo.started)
    assert.Equal(t, []string{"j1"}, repo.completed)

    assert.Error(t, ProcessInline(context.Background(), repo, proc, ports.RefreshJob{}, 0))
}

func TestProcessInline_CancelledWhileWaiting(t *testing.T) {
    t.Parallel()

    repo := &memJobs{}
    ctx, cancel := context.WithCancel(context.Background())
    cancel()

    err := ProcessInline(ctx, repo, funcProcessor(func(context.Context, ports.RefreshJob) error { return nil }), ports.RefreshJob{ID: "j1"}, time.Hour)
    assert.ErrorIs(t, err, context.Canceled)
    _, failed := repo.snapshot()
    assert.Contains(t, failed, "j1")
}

type memSessions struct{ data map[string]domain.Session }

func (m memSessions) CreateSession(ctx context.Context, s domain.Session) error { return nil }
func (m memSessions) GetSession(ctx context.Context, id string) (domain.Session, error) {
    s, ok := m.data[id]
    if !ok {
        return domain.Session{}, domain.ErrNotFound
    }
    return s, nil
}
func (m memSessions) UpdateSessionUser(ctx context.Context, id string, u domain.User) error { return nil }
func (m memSessions) DeleteSession(ctx context.Context, id string) error                  { return nil }

type refreshRecorder struct {
    ports.Certificates
    sess   domain.Session
    certID string
}

func (r *refreshRecorder) Refresh(ctx context.Context, s domain.Session, certID string) error {
    r.sess, r.certID = s, certID
    return nil
}

func TestSessionProcessor(t *testing.T) {
    t.Parallel()

    live := domain.Session{ID: "s1", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
    stale := domain.Session{ID: "s2", Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}
    rec := &refreshRecorder{}
    p := SessionProcessor{Sessions: memSessions{data: map[string]domain.Session{"s1": live, "s2": stale}}, Certificates: rec}

    require.NoError(t, p.Process(context.Background(), ports.RefreshJob{ID: "j1", CertificateID: "CERT-1", SessionID: "s1"}))
    assert.Equal(t, "tok", rec.sess.Token)
    assert.Equal(t, "CERT-1", rec.certID)

    err := p.Process(context.Background(), ports.RefreshJob{ID: "j2", SessionID: "s2"})
    assert.ErrorIs(t, err, ErrSessionGone)

    err = p.Process(context.Background(), ports.RefreshJob{ID: "j3", SessionID: "missing"})
    assert.ErrorIs(t, err, ErrSessionGone)
}

package profiles

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "chaincarbon/internal/domain"
)

type fakeAuth struct {
    got   domain.Registration
    calls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (string, domain.User, error) {
    return "", domain.User{}, errors.New("not used")
}

func (f *fakeAuth) Register(ctx context.Context, reg domain.Registration) (string, error) {
    f.calls++
    f.got = reg
    return "co-new", nil
}

type fakeProfiles struct {
    profile domain.Profile
    err     error
    calls   int
}

func (f *fakeProfiles) Me(ctx context.Context, token string) (domain.Profile, error) {
    f.calls++
    return f.profile, f.err
}

func (f *fakeProfiles) UpdateMe(ctx context.Context, token string, upd domain.ProfileUpdate) (domain.Profile, error) {
    f.calls++
    if upd.Name != nil {
        f.profile.User.Name = *upd.Name
    }
    return f.profile, f.err
}

type fakeSessions struct {
    updated map[string]domain.User
}

func (f *fakeSessions) CreateSession(ctx context.Context, s domain.Session) error { return nil }
func (f *fakeSessions) GetSession(ctx context.Context, id string) (domain.Session, error) {
    return domain.Session{}, domain.ErrNotFound
}
func (f *fakeSessions) UpdateSessionUser(ctx context.Context, id string, u domain.User) error {
    if f.updated == nil {
        f.updated = map[string]domain.User{}
    }
    f.updated[id] = u
    return nil
}
func (f *fakeSessions) DeleteSession(ctx context.Context, id string) error { return nil }

func validRegistration() domain.Registration {
    return domain.Registration{
        CompanyName:     " Acme Carbon ",
        Email:           "ops@acme.example",
        Password:        "correct-horse",
        PasswordConfirm: "correct-horse",
        Website:         "https://www.shop.acme.co.uk/about",
    }
}

func TestRegister_NormalisesWebsite(t *testing.T) {
    t.Parallel()

    auth := &fakeAuth{}
    svc := New(auth, &fakeProfiles{}, &fakeSessions{}, nil)

    id, err := svc.Register(context.Background(), validRegistration())
    require.NoError(t, err)
    assert.Equal(t, "co-new", id)
    assert.Equal(t, "acme.co.uk", auth.got.Website)
    assert.Equal(t, "Acme Carbon", auth.got.CompanyName)
}

func TestRegister_ValidationListsEveryField(t *testing.T) {
    t.Parallel()

    auth := &fakeAuth{}
    svc := New(auth, &fakeProfiles{}, &fakeSessions{}, nil)

    _, err := svc.Register(context.Background(), domain.Registration{
        Email:           "not-an-email",
        Password:        "short",
        PasswordConfirm: "shorter",
    })
    var verr *domain.ValidationError
    require.ErrorAs(t, err, &verr)
    fields := map[string]bool{}
    for _, fe := range verr.Errors {
        fields[fe.Field] = true
    }
    assert.Equal(t, map[string]bool{"companyName": true, "email": true, "password": true, "confirmPassword": true}, fields)
    assert.Equal(t, 0, auth.calls)
}

func TestRegistrableDomain(t *testing.T) {
    t.Parallel()

    tests := []struct {
        in   string
        want string
        err  bool
    }{
        {"acme.example.com", "example.com", false},
        {"http://carbon.gov.au/x", "carbon.gov.au", false},
        {"WWW.Acme.COM", "acme.com", false},
        {"localhost", "", true},
        {"", "", true},
    }
    for _, tt := range tests {
        got, err := RegistrableDomain(tt.in)
        if tt.err {
            assert.Error(t, err, tt.in)
            continue
        }
        require.NoError(t, err, tt.in)
        assert.Equal(t, tt.want, got, tt.in)
    }
}

func TestUpdateMe_RefreshesSessionUser(t *testing.T) {
    t.Parallel()

    sessions := &fakeSessions{}
    profiles := &fakeProfiles{profile: domain.Profile{User: domain.User{ID: "u-1", Name: "Old"}}}
    svc := New(&fakeAuth{}, profiles, sessions, nil)

    name := "New Name"
    prof, err := svc.UpdateMe(context.Background(), domain.Session{ID: "s1", Token: "t"}, domain.ProfileUpdate{Name: &name})
    require.NoError(t, err)
    assert.Equal(t, "New Name", prof.User.Name)
    assert.Equal(t, "New Name", sessions.updated["s1"].Name)
}

func TestUpdateMe_BlankNameRejectedLocally(t *testing.T) {
    t.Parallel()

    profiles := &fakeProfiles{}
    svc := New(&fakeAuth{}, profiles, &fakeSessions{}, nil)

    blank := "  "
    _, err := svc.UpdateMe(context.Background(), domain.Session{ID: "s1"}, domain.ProfileUpdate{Name: &blank})
    assert.ErrorIs(t, err, domain.ErrValidation)
    assert.Equal(t, 0, profiles.calls)
}

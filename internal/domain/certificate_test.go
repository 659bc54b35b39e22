package domain

import (
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

var allStatuses = []CertificateStatus{StatusIssued, StatusListed, StatusTransferred, StatusRetired}

var allViewers = []Viewer{
    {},
    {Owner: true},
    {Buyer: true},
    {Owner: true, Buyer: true},
}

func TestRetiredIsTerminal(t *testing.T) {
    t.Parallel()

    for _, v := range allViewers {
        p := PermissionsFor(StatusRetired, v)
        assert.False(t, p.ActionsVisible)
        assert.False(t, p.CanList)
        assert.False(t, p.CanRetire)

        for _, a := range []CertificateAction{ActionList, ActionRetire} {
            assert.ErrorIs(t, CheckAction(StatusRetired, v, a), ErrCertificateRetired)
            next, err := NextStatus(StatusRetired, a)
            assert.ErrorIs(t, err, ErrConflict)
            assert.Equal(t, StatusRetired, next)
        }
    }
}

func TestListedExposesNoAction(t *testing.T) {
    t.Parallel()

    for _, v := range allViewers {
        p := PermissionsFor(StatusListed, v)
        assert.Equal(t, Permissions{}, p)
        assert.ErrorIs(t, CheckAction(StatusListed, v, ActionList), ErrConflict)
        assert.ErrorIs(t, CheckAction(StatusListed, v, ActionRetire), ErrConflict)
    }
}

func TestCanList_OwnerOnly(t *testing.T) {
    t.Parallel()

    assert.True(t, CanList(StatusIssued, Viewer{Owner: true}))
    assert.False(t, CanList(StatusIssued, Viewer{Owner: true, Buyer: true}))
    assert.False(t, CanList(StatusIssued, Viewer{Buyer: true}))
    assert.False(t, CanList(StatusIssued, Viewer{}))
    assert.ErrorIs(t, CheckAction(StatusIssued, Viewer{Buyer: true}, ActionList), ErrForbidden)
}

func TestCanRetire_BuyerGate(t *testing.T) {
    t.Parallel()

    assert.True(t, CanRetire(StatusTransferred, Viewer{Buyer: true}))
    assert.True(t, CanRetire(StatusIssued, Viewer{Owner: true, Buyer: true}))
    assert.False(t, CanRetire(StatusIssued, Viewer{Owner: true}))
    assert.ErrorIs(t, CheckAction(StatusIssued, Viewer{Owner: true}, ActionRetire), ErrForbidden)
    assert.NoError(t, CheckAction(StatusTransferred, Viewer{Buyer: true}, ActionRetire))
}

func TestNextStatus(t *testing.T) {
    t.Parallel()

    next, err := NextStatus(StatusIssued, ActionList)
    require.NoError(t, err)
    assert.Equal(t, StatusListed, next)

    for _, s := range []CertificateStatus{StatusIssued, StatusListed, StatusTransferred} {
        next, err := NextStatus(s, ActionRetire)
        require.NoError(t, err)
        assert.Equal(t, StatusRetired, next)
    }

    _, err = ApplyList(StatusListed)
    assert.ErrorIs(t, err, ErrConflict)
    _, err = ApplyRetire(StatusRetired)
    assert.ErrorIs(t, err, ErrCertificateRetired)
}

func TestResolveViewer_LegacyRules(t *testing.T) {
    t.Parallel()

    c := Certificate{ID: "CERT-1", OwnerCompanyID: "co-1", Status: StatusIssued}

    assert.Equal(t, Viewer{Owner: true}, ResolveViewer(c, "co-1", false))
    assert.Equal(t, Viewer{Owner: true, Buyer: true}, ResolveViewer(c, "co-1", true))
    assert.Equal(t, Viewer{}, ResolveViewer(c, "co-2", false))
    assert.Equal(t, Viewer{}, ResolveViewer(c, "", false))

    c.Status = StatusTransferred
    assert.Equal(t, Viewer{Owner: true, Buyer: true}, ResolveViewer(c, "co-1", false))
}

func TestResolveViewer_BackendRoleWins(t *testing.T) {
    t.Parallel()

    c := Certificate{OwnerCompanyID: "co-1", Status: StatusTransferred, ViewerRole: "owner"}
    assert.Equal(t, Viewer{Owner: true}, ResolveViewer(c, "co-1", true))

    c.ViewerRole = "mystery"
    assert.Equal(t, Viewer{Owner: true, Buyer: true}, ResolveViewer(c, "co-1", false))
}

func TestValidateListing(t *testing.T) {
    t.Parallel()

    price := decimal.NewFromInt(100000)
    assert.NoError(t, ValidateListing(&price))

    zero := decimal.Zero
    assert.ErrorIs(t, ValidateListing(&zero), ErrValidation)

    neg := decimal.NewFromInt(-3)
    assert.ErrorIs(t, ValidateListing(&neg), ErrValidation)

    assert.ErrorIs(t, ValidateListing(nil), ErrValidation)
}

func TestValidateRetirement(t *testing.T) {
    t.Parallel()

    assert.ErrorIs(t, ValidateRetirement("too short"), ErrValidation)
    assert.ErrorIs(t, ValidateRetirement("   short reason   "[:12]), ErrValidation)
    assert.NoError(t, ValidateRetirement("valid reason text"))
    assert.NoError(t, ValidateRetirement("  0123456789  "))
}

func TestParseCertificateStatus(t *testing.T) {
    t.Parallel()

    for _, s := range allStatuses {
        got, err := ParseCertificateStatus(string(s))
        require.NoError(t, err)
        assert.Equal(t, s, got)
    }
    got, err := ParseCertificateStatus("listed")
    require.NoError(t, err)
    assert.Equal(t, StatusListed, got)

    _, err = ParseCertificateStatus("BURNED")
    assert.ErrorIs(t, err, ErrValidation)
}

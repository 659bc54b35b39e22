package profiles

import (
    "context"
    "fmt"
    "log/slog"
    "net/mail"
    "net/url"
    "strings"

    "golang.org/x/net/publicsuffix"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/ports"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

type Service struct {
    auth     ports.AuthAPI
    profiles ports.ProfileAPI
    sessions ports.SessionRepository
    logger   *slog.Logger
}

func New(auth ports.AuthAPI, profiles ports.ProfileAPI, sessions ports.SessionRepository, logger *slog.Logger) *Service {
    if logger == nil {
        logger = slog.Default()
    }
    return &Service{auth: auth, profiles: profiles, sessions: sessions, logger: logger}
}

func (s *Service) Me(ctx context.Context, sess domain.Session) (domain.Profile, error) {
    return s.profiles.Me(ctx, sess.Token)
}

// UpdateMe saves the profile and refreshes the user cached on the session.
func (s *Service) UpdateMe(ctx context.Context, sess domain.Session, upd domain.ProfileUpdate) (domain.Profile, error) {
    verr := &domain.ValidationError{}
    if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
        verr.Add("name", "must not be empty")
    }
    if upd.Website != nil && strings.TrimSpace(*upd.Website) != "" {
        if _, err := RegistrableDomain(*upd.Website); err != nil {
            verr.Add("website", "must be a valid URL or domain")
        }
    }
    if err := verr.OrNil(); err != nil {
        return domain.Profile{}, err
    }

    prof, err := s.profiles.UpdateMe(ctx, sess.Token, upd)
    if err != nil {
        return domain.Profile{}, err
    }
    if err := s.sessions.UpdateSessionUser(ctx, sess.ID, prof.User); err != nil {
        s.logger.WarnContext(ctx, "session user refresh failed", "user_id", sess.User.ID, "error", err)
    }
    return prof, nil
}

// Register validates locally and creates the company account.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (string, error) {
    reg.CompanyName = strings.TrimSpace(reg.CompanyName)
    reg.RegistrationNumber = strings.TrimSpace(reg.RegistrationNumber)
    reg.ContactName = strings.TrimSpace(reg.ContactName)
    reg.Email = strings.TrimSpace(reg.Email)
    reg.Phone = strings.TrimSpace(reg.Phone)

    verr := &domain.ValidationError{}
    if reg.CompanyName == "" {
        verr.Add("companyName", "is required")
    }
    if reg.Email == "" {
        verr.Add("email", "is required")
    } else if !validEmail(reg.Email) {
        verr.Add("email", "must be a valid email address")
    }
    if len(reg.Password) < MinPasswordLength {
        verr.Add("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
    }
    if reg.Password != reg.PasswordConfirm {
        verr.Add("confirmPassword", "does not match password")
    }
    if w := strings.TrimSpace(reg.Website); w != "" {
        d, err := RegistrableDomain(w)
        if err != nil {
            verr.Add("website", "must be a valid URL or domain")
        }
        reg.Website = d
    }
    if err := verr.OrNil(); err != nil {
        return "", err
    }

    id, err := s.auth.Register(ctx, reg)
    if err != nil {
        return "", err
    }
    s.logger.InfoContext(ctx, "company registered", "company_id", id, "website", reg.Website)
    return id, nil
}

func validEmail(s string) bool {
    addr, err := mail.ParseAddress(s)
    return err == nil && addr.Address == s
}

// RegistrableDomain reduces a website to its eTLD+1. Hosts without a known
// public suffix are kept as they are.
func RegistrableDomain(raw string) (string, error) {
    raw = strings.TrimSpace(raw)
    if !strings.Contains(raw, "://") {
        raw = "https://" + raw
    }
    u, err := url.Parse(raw)
    if err != nil {
        return "", err
    }
    host := strings.ToLower(u.Hostname())
    if host == "" || !strings.Contains(host, ".") {
        return "", fmt.Errorf("no host in %q", raw)
    }
    registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
    if err != nil {
        return host, nil
    }
    return registrable, nil
}

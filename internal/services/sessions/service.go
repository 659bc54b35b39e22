package sessions

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "strings"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/ports"
)

// Service keeps the backend token and cached user server-side. Every
// protected call re-reads the session; nothing is cached in memory.
type Service struct {
    auth     ports.AuthAPI
    profiles ports.ProfileAPI
    repo     ports.SessionRepository
    ttl      time.Duration
    now      func() time.Time
    logger   *slog.Logger
}

func New(auth ports.AuthAPI, profiles ports.ProfileAPI, repo ports.SessionRepository, ttl time.Duration, logger *slog.Logger) *Service {
    if logger == nil {
        logger = slog.Default()
    }
    return &Service{auth: auth, profiles: profiles, repo: repo, ttl: ttl, now: time.Now, logger: logger}
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, error) {
    email = strings.TrimSpace(email)
    verr := &domain.ValidationError{}
    if email == "" {
        verr.Add("email", "is required")
    }
    if password == "" {
        verr.Add("password", "is required")
    }
    if err := verr.OrNil(); err != nil {
        return domain.Session{}, err
    }

    token, user, err := s.auth.Login(ctx, email, password)
    if err != nil {
        return domain.Session{}, err
    }

    now := s.now().UTC()
    expires := now.Add(s.ttl)
    if exp, ok := tokenExpiry(token); ok && exp.Before(expires) {
        expires = exp
    }
    sess := domain.Session{ID: uuid.NewString(), Token: token, User: user, CreatedAt: now, ExpiresAt: expires}
    if err := s.repo.CreateSession(ctx, sess); err != nil {
        return domain.Session{}, fmt.Errorf("store session: %w", err)
    }
    s.logger.InfoContext(ctx, "session created", "session", domain.SessionRef(sess.ID), "user_id", user.ID, "role", user.Role)
    return sess, nil
}

// Resolve returns the current session or domain.ErrUnauthorized.
func (s *Service) Resolve(ctx context.Context, sessionID string) (domain.Session, error) {
    if sessionID == "" {
        return domain.Session{}, domain.ErrUnauthorized
    }
    sess, err := s.repo.GetSession(ctx, sessionID)
    if errors.Is(err, domain.ErrNotFound) {
        return domain.Session{}, fmt.Errorf("session %s: %w", domain.SessionRef(sessionID), domain.ErrUnauthorized)
    }
    if err != nil {
        return domain.Session{}, err
    }
    if sess.Expired(s.now()) {
        _ = s.repo.DeleteSession(ctx, sessionID)
        return domain.Session{}, fmt.Errorf("session %s expired: %w", domain.SessionRef(sessionID), domain.ErrUnauthorized)
    }
    return sess, nil
}

// Refresh re-reads the signed-in user from the backend and updates the
// cached copy.
func (s *Service) Refresh(ctx context.Context, sessionID string) (domain.Session, error) {
    sess, err := s.Resolve(ctx, sessionID)
    if err != nil {
        return domain.Session{}, err
    }
    prof, err := s.profiles.Me(ctx, sess.Token)
    if err != nil {
        if errors.Is(err, domain.ErrUnauthorized) {
            _ = s.Invalidate(ctx, sessionID)
        }
        return domain.Session{}, err
    }
    if err := s.repo.UpdateSessionUser(ctx, sessionID, prof.User); err != nil {
        return domain.Session{}, err
    }
    sess.User = prof.User
    return sess, nil
}

func (s *Service) Invalidate(ctx context.Context, sessionID string) error {
    if sessionID == "" {
        return nil
    }
    if err := s.repo.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
        return err
    }
    s.logger.InfoContext(ctx, "session invalidated", "session", domain.SessionRef(sessionID))
    return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend stays the authority on validity.
func tokenExpiry(token string) (time.Time, bool) {
    parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
    if err != nil {
        return time.Time{}, false
    }
    exp, err := parsed.Claims.GetExpirationTime()
    if err != nil || exp == nil {
        return time.Time{}, false
    }
    return exp.Time, true
}

package httpadapter

import (
    "context"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5/middleware"

    "chaincarbon/internal/api"
    "chaincarbon/internal/domain"
)

type (
    sessionKey struct{}
    cookieKey  struct{}
)

func withSession(ctx context.Context, s domain.Session) context.Context {
    return context.WithValue(ctx, sessionKey{}, s)
}

// sessionFrom returns the session attached by requireSession.
func sessionFrom(ctx context.Context) domain.Session {
    s, _ := ctx.Value(sessionKey{}).(domain.Session)
    return s
}

// cookieFrom returns the raw session cookie value, or "".
func cookieFrom(ctx context.Context) string {
    v, _ := ctx.Value(cookieKey{}).(string)
    return v
}

// readCookie exposes the session cookie to the strict handlers, which only
// see the request context.
func (s *Server) readCookie(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if c, err := r.Cookie(s.opts.CookieName); err == nil && c.Value != "" {
            r = r.WithContext(context.WithValue(r.Context(), cookieKey{}, c.Value))
        }
        next.ServeHTTP(w, r)
    })
}

// requireSession resolves the session cookie fresh on every request to an
// operation secured by the session scheme. Public operations pass through.
func (s *Server) requireSession(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Context().Value(api.SessionScopes) == nil {
            next.ServeHTTP(w, r)
            return
        }
        id := cookieFrom(r.Context())
        if id == "" {
            s.writeError(w, r, domain.ErrUnauthorized)
            return
        }
        sess, err := s.sessions.Resolve(r.Context(), id)
        if err != nil {
            s.writeError(w, r, err)
            return
        }
        next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
    })
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
        start := time.Now()
        defer func() {
            s.logger.InfoContext(r.Context(), "http request",
                "method", r.Method,
                "path", r.URL.Path,
                "status", ww.Status(),
                "bytes", ww.BytesWritten(),
                "duration", time.Since(start),
                "request_id", middleware.GetReqID(r.Context()),
            )
        }()
        next.ServeHTTP(ww, r)
    })
}

func (s *Server) sessionCookie(sess domain.Session) *http.Cookie {
    return &http.Cookie{
        Name:     s.opts.CookieName,
        Value:    sess.ID,
        Path:     "/",
        Expires:  sess.ExpiresAt,
        HttpOnly: true,
        Secure:   s.opts.SecureCookie,
        SameSite: http.SameSiteLaxMode,
    }
}

func (s *Server) clearedCookie() *http.Cookie {
    return &http.Cookie{
        Name:     s.opts.CookieName,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
        Secure:   s.opts.SecureCookie,
        SameSite: http.SameSiteLaxMode,
    }
}

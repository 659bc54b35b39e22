package httpadapter

import (
    "context"
    "log/slog"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"

    "chaincarbon/internal/api"
    "chaincarbon/internal/ports"
    "chaincarbon/internal/workers/refresher"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
    Ping(ctx context.Context) error
}

type Options struct {
    CookieName   string
    SecureCookie bool
    // RefreshDelay is how long a wait=true listing sleeps before re-reading.
    RefreshDelay time.Duration
}

// Server implements the generated StrictServerInterface.
type Server struct {
    sessions     ports.Sessions
    profiles     ports.Profiles
    audits       ports.Audits
    companies    ports.Companies
    projects     ports.Projects
    certificates ports.Certificates
    jobs         ports.JobRepository
    processor    refresher.Processor
    health       Pinger
    opts         Options
    logger       *slog.Logger
}

type Deps struct {
    Sessions     ports.Sessions
    Profiles     ports.Profiles
    Audits       ports.Audits
    Companies    ports.Companies
    Projects     ports.Projects
    Certificates ports.Certificates
    Jobs         ports.JobRepository
    Processor    refresher.Processor
    Health       Pinger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(d Deps, opts Options, logger *slog.Logger) *Server {
    if logger == nil {
        logger = slog.Default()
    }
    if opts.CookieName == "" {
        opts.CookieName = "cc_session"
    }
    return &Server{
        sessions:     d.Sessions,
        profiles:     d.Profiles,
        audits:       d.Audits,
        companies:    d.Companies,
        projects:     d.Projects,
        certificates: d.Certificates,
        jobs:         d.Jobs,
        processor:    d.Processor,
        health:       d.Health,
        opts:         opts,
        logger:       logger,
    }
}

// Routes returns a chi.Router mounting the generated handlers behind the
// shared middleware stack.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(s.requestLogger)
    r.Use(middleware.Recoverer)
    r.Use(middleware.RequestSize(maxBodyBytes))
    r.Use(s.readCookie)

    handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
        RequestErrorHandlerFunc:  s.requestError,
        ResponseErrorHandlerFunc: s.writeError,
    })
    api.HandlerWithOptions(handler, api.ChiServerOptions{
        BaseRouter:       r,
        Middlewares:      []api.MiddlewareFunc{s.requireSession},
        ErrorHandlerFunc: s.paramError,
    })
    return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
    if s.health != nil {
        ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
        defer cancel()
        if err := s.health.Ping(ctx); err != nil {
            s.logger.ErrorContext(ctx, "health check failed", "error", err)
            return api.GetHealthz503JSONResponse(failure("database unavailable")), nil
        }
    }
    return api.GetHealthz200JSONResponse{Success: true, Data: api.Health{Status: "ok"}}, nil
}

package main

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"

    "chaincarbon/internal/adapters/backend"
    httpadapter "chaincarbon/internal/adapters/http"
    pg "chaincarbon/internal/adapters/postgres"
    "chaincarbon/internal/app"
    "chaincarbon/internal/config"
    "chaincarbon/internal/inflight"
    "chaincarbon/internal/ports"
    auditsvc "chaincarbon/internal/services/audits"
    certsvc "chaincarbon/internal/services/certificates"
    compsvc "chaincarbon/internal/services/companies"
    profsvc "chaincarbon/internal/services/profiles"
    projsvc "chaincarbon/internal/services/projects"
    sesssvc "chaincarbon/internal/services/sessions"
    "chaincarbon/internal/workers/refresher"
)

func main() {
    if err := run(); err != nil {
        slog.Error("server stopped", "error", err)
        os.Exit(1)
    }
}

// run owns every resource so deferred cleanup happens before main exits.
func run() error {
    cfg, err := config.Load()
    if err != nil {
        return err
    }
    logger := app.NewLogger(cfg.Log)

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    db, err := pg.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns)
    if err != nil {
        return fmt.Errorf("db connect: %w", err)
    }
    defer db.Close()

    if cfg.Database.Migrate {
        n, err := db.Migrate(ctx)
        if err != nil {
            return fmt.Errorf("migrate: %w", err)
        }
        logger.Info("migrations applied", "count", n)
    }

    // Wire repositories to services (ports)
    var _ ports.SessionRepository = db
    var _ ports.SnapshotRepository = db
    var _ ports.JobRepository = db

    api := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
    guard := inflight.New()

    sessions := sesssvc.New(api, api, db, cfg.Session.TTL, logger)
    profiles := profsvc.New(api, api, db, logger)
    audits := auditsvc.New(api, guard, logger)
    companies := compsvc.New(api, logger)
    projects := projsvc.New(api, guard, logger)
    certificates := certsvc.New(api, db, db,
        certsvc.WithGuard(guard),
        certsvc.WithRefreshDelay(cfg.Refresher.Delay),
        certsvc.WithLogger(logger),
    )

    processor := refresher.SessionProcessor{Sessions: db, Certificates: certificates}
    srv := httpadapter.New(httpadapter.Deps{
        Sessions:     sessions,
        Profiles:     profiles,
        Audits:       audits,
        Companies:    companies,
        Projects:     projects,
        Certificates: certificates,
        Jobs:         db,
        Processor:    processor,
        Health:       db,
    }, httpadapter.Options{
        CookieName:   cfg.Session.CookieName,
        SecureCookie: cfg.Session.SecureCookie,
        RefreshDelay: cfg.Refresher.Delay,
    }, logger)

    r := chi.NewRouter()
    r.Mount("/", srv.Routes())

    if cfg.Refresher.Workers > 0 {
        refresher.Run(ctx, db, processor, cfg.Refresher.Workers, cfg.Refresher.PollInterval, logger)
        logger.Info("refresh workers started", "workers", cfg.Refresher.Workers)
    }
    go purgeSessions(ctx, db, logger)

    httpSrv := &http.Server{
        Addr:         cfg.Server.ListenAddr,
        Handler:      r,
        ReadTimeout:  cfg.Server.ReadTimeout,
        WriteTimeout: cfg.Server.WriteTimeout,
    }
    errCh := make(chan error, 1)
    go func() { errCh <- httpSrv.ListenAndServe() }()
    logger.Info("listening", "addr", cfg.Server.ListenAddr, "backend", cfg.Backend.BaseURL, "env", cfg.Env)

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
    var serveErr error
    select {
    case sig := <-sigCh:
        logger.Info("shutting down", "signal", sig.String())
    case err := <-errCh:
        if !errors.Is(err, http.ErrServerClosed) {
            serveErr = fmt.Errorf("serve: %w", err)
        }
    }

    shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
    defer stop()
    if err := httpSrv.Shutdown(shutdownCtx); err != nil {
        logger.Error("shutdown", "error", err)
    }
    cancel()
    return serveErr
}

// purgeSessions drops expired sessions once an hour.
func purgeSessions(ctx context.Context, db *pg.DB, logger *slog.Logger) {
    ticker := time.NewTicker(time.Hour)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            n, err := db.PurgeExpiredSessions(ctx)
            if err != nil {
                logger.Error("purge sessions", "error", err)
                continue
            }
            if n > 0 {
                logger.Info("expired sessions purged", "count", n)
            }
        }
    }
}

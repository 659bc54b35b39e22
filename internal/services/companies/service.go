package companies

import (
    "bytes"
    "context"
    "encoding/csv"
    "errors"
    "fmt"
    "io"
    "log/slog"
    "net/mail"
    "strings"

    "golang.org/x/sync/errgroup"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/ports"
)

// ErrMalformedExport is returned when the backend export is not CSV.
var ErrMalformedExport = errors.New("export is not valid CSV")

// Service serves the regulator views over registered companies.
type Service struct {
    api    ports.RegulatorAPI
    logger *slog.Logger
}

func New(api ports.RegulatorAPI, logger *slog.Logger) *Service {
    if logger == nil {
        logger = slog.Default()
    }
    return &Service{api: api, logger: logger}
}

func requireRegulator(s domain.Session) error {
    if !s.User.IsRegulator() {
        return fmt.Errorf("regulator role required: %w", domain.ErrForbidden)
    }
    return nil
}

// Context loads everything shown while auditing a company. The four reads
// run concurrently and the first failure cancels the rest.
func (s *Service) Context(ctx context.Context, sess domain.Session, companyID string) (domain.CompanyContext, error) {
    if err := requireRegulator(sess); err != nil {
        return domain.CompanyContext{}, err
    }
    companyID = strings.TrimSpace(companyID)
    if companyID == "" {
        return domain.CompanyContext{}, domain.NewValidationError("companyId", "is required")
    }

    var out domain.CompanyContext
    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() (err error) {
        out.Company, err = s.api.Company(gctx, sess.Token, companyID)
        return err
    })
    g.Go(func() (err error) {
        out.Projects, err = s.api.CompanyProjects(gctx, sess.Token, companyID)
        return err
    })
    g.Go(func() (err error) {
        out.Certificates, err = s.api.CompanyCertificates(gctx, sess.Token, companyID)
        return err
    })
    g.Go(func() (err error) {
        out.Transactions, err = s.api.CompanyTransactions(gctx, sess.Token, companyID)
        return err
    })
    if err := g.Wait(); err != nil {
        return domain.CompanyContext{}, err
    }
    return out, nil
}

func (s *Service) Stats(ctx context.Context, sess domain.Session) (domain.RegulatorStats, error) {
    if err := requireRegulator(sess); err != nil {
        return domain.RegulatorStats{}, err
    }
    return s.api.Stats(ctx, sess.Token)
}

func (s *Service) Settings(ctx context.Context, sess domain.Session) (domain.RegulatorSettings, error) {
    if err := requireRegulator(sess); err != nil {
        return domain.RegulatorSettings{}, err
    }
    return s.api.Settings(ctx, sess.Token)
}

func (s *Service) UpdateSettings(ctx context.Context, sess domain.Session, in domain.RegulatorSettings) (domain.RegulatorSettings, error) {
    if err := requireRegulator(sess); err != nil {
        return domain.RegulatorSettings{}, err
    }
    if err := validateSettings(in); err != nil {
        return domain.RegulatorSettings{}, err
    }
    out, err := s.api.UpdateSettings(ctx, sess.Token, in)
    if err != nil {
        return domain.RegulatorSettings{}, err
    }
    s.logger.InfoContext(ctx, "regulator settings updated", "user_id", sess.User.ID)
    return out, nil
}

func validateSettings(in domain.RegulatorSettings) error {
    verr := &domain.ValidationError{}
    if in.AuditIntervalDays < 1 {
        verr.Add("auditIntervalDays", "must be at least 1")
    }
    if in.MinimumAuditScore < 0 || in.MinimumAuditScore > 100 {
        verr.Add("minimumAuditScore", "must be between 0 and 100")
    }
    if in.AutoApproveThreshold < 0 || in.AutoApproveThreshold > 100 {
        verr.Add("autoApproveThreshold", "must be between 0 and 100")
    }
    if in.NotificationsEnabled && strings.TrimSpace(in.NotificationEmail) == "" {
        verr.Add("notificationEmail", "is required when notifications are enabled")
    } else if e := strings.TrimSpace(in.NotificationEmail); e != "" {
        if _, err := mail.ParseAddress(e); err != nil {
            verr.Add("notificationEmail", "must be a valid email address")
        }
    }
    return verr.OrNil()
}

// Export returns the backend CSV for kind after checking it parses.
func (s *Service) Export(ctx context.Context, sess domain.Session, kind domain.ExportKind) ([]byte, error) {
    if err := requireRegulator(sess); err != nil {
        return nil, err
    }
    if !kind.Valid() {
        return nil, domain.NewValidationError("kind", "must be one of companies, projects, certificates, transactions, audits")
    }
    raw, err := s.api.Export(ctx, sess.Token, kind)
    if err != nil {
        return nil, err
    }
    rows, err := checkCSV(raw)
    if err != nil {
        s.logger.ErrorContext(ctx, "export rejected", "kind", kind, "error", err)
        return nil, err
    }
    s.logger.InfoContext(ctx, "export served", "kind", kind, "rows", rows)
    return raw, nil
}

// checkCSV returns the number of records in raw, header included.
func checkCSV(raw []byte) (int, error) {
    r := csv.NewReader(bytes.NewReader(raw))
    r.FieldsPerRecord = 0
    rows := 0
    for {
        _, err := r.Read()
        if err == io.EOF {
            break
        }
        if err != nil {
            return 0, fmt.Errorf("%w: %v", ErrMalformedExport, err)
        }
        rows++
    }
    if rows == 0 {
        return 0, fmt.Errorf("%w: empty", ErrMalformedExport)
    }
    return rows, nil
}

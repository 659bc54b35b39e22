package projects

import (
    "context"
    "fmt"
    "log/slog"
    "net/url"
    "strings"

    "chaincarbon/internal/domain"
    "chaincarbon/internal/inflight"
    "chaincarbon/internal/ports"
)

// Service submits projects for certification. A failed submission is never
// retried here; the caller decides whether to submit again.
type Service struct {
    api    ports.ProjectAPI
    guard  *inflight.Guard
    logger *slog.Logger
}

func New(api ports.ProjectAPI, guard *inflight.Guard, logger *slog.Logger) *Service {
    if logger == nil {
        logger = slog.Default()
    }
    if guard == nil {
        guard = inflight.New()
    }
    return &Service{api: api, guard: guard, logger: logger}
}

func (s *Service) Submit(ctx context.Context, sess domain.Session, in domain.ProjectSubmission) (domain.Project, error) {
    if sess.User.CompanyID == "" {
        return domain.Project{}, fmt.Errorf("only company accounts submit projects: %w", domain.ErrForbidden)
    }
    in = normalize(in)
    if err := validate(in); err != nil {
        return domain.Project{}, err
    }

    release, err := s.guard.Acquire(inflight.Key(sess.ID, "project", "submit"))
    if err != nil {
        return domain.Project{}, err
    }
    defer release()

    p, err := s.api.SubmitProject(ctx, sess.Token, in)
    if err != nil {
        s.logger.WarnContext(ctx, "project submission failed", "company_id", sess.User.CompanyID, "name", in.Name, "error", err)
        return domain.Project{}, err
    }
    s.logger.InfoContext(ctx, "project submitted", "project_id", p.ID, "company_id", sess.User.CompanyID)
    return p, nil
}

func normalize(in domain.ProjectSubmission) domain.ProjectSubmission {
    in.Name = strings.TrimSpace(in.Name)
    in.Description = strings.TrimSpace(in.Description)
    in.Location = strings.TrimSpace(in.Location)
    in.Methodology = strings.TrimSpace(in.Methodology)
    docs := make([]domain.ProjectDocument, 0, len(in.Documents))
    for _, d := range in.Documents {
        d.Name = strings.TrimSpace(d.Name)
        d.URL = strings.TrimSpace(d.URL)
        if d.URL == "" {
            continue
        }
        docs = append(docs, d)
    }
    in.Documents = docs
    return in
}

func validate(in domain.ProjectSubmission) error {
    verr := &domain.ValidationError{}
    if in.Name == "" {
        verr.Add("name", "is required")
    }
    if in.Description == "" {
        verr.Add("description", "is required")
    }
    if in.Location == "" {
        verr.Add("location", "is required")
    }
    if in.Methodology == "" {
        verr.Add("methodology", "is required")
    }
    if !in.EstimatedCredits.IsPositive() {
        verr.Add("estimatedCredits", "must be greater than zero")
    }
    for i, d := range in.Documents {
        u, err := url.Parse(d.URL)
        if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
            verr.Add(fmt.Sprintf("documents[%d].url", i), "must be an http(s) URL")
        }
    }
    return verr.OrNil()
}

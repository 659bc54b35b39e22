package backend

import (
    "context"
    "net/http"
    "net/url"

    "chaincarbon/internal/domain"
)

func companyPath(companyID, suffix string) string {
    return "/regulator/companies/" + url.PathEscape(companyID) + suffix
}

func (c *Client) Company(ctx context.Context, token, companyID string) (domain.Company, error) {
    out, err := call[companyDTO](ctx, c, http.MethodGet, companyPath(companyID, ""), token, nil)
    if err != nil {
        return domain.Company{}, err
    }
    return out.toDomain(), nil
}

func (c *Client) CompanyProjects(ctx context.Context, token, companyID string) ([]domain.Project, error) {
    out, err := call[[]projectDTO](ctx, c, http.MethodGet, companyPath(companyID, "/projects"), token, nil)
    if err != nil {
        return nil, err
    }
    projects := make([]domain.Project, 0, len(out))
    for _, p := range out {
        projects = append(projects, p.toDomain())
    }
    return projects, nil
}

func (c *Client) CompanyCertificates(ctx context.Context, token, companyID string) ([]domain.Certificate, error) {
    out, err := call[[]certificateDTO](ctx, c, http.MethodGet, companyPath(companyID, "/certificates"), token, nil)
    if err != nil {
        return nil, err
    }
    return certificatesToDomain(out)
}

func (c *Client) CompanyTransactions(ctx context.Context, token, companyID string) ([]domain.Transaction, error) {
    out, err := call[[]transactionDTO](ctx, c, http.MethodGet, companyPath(companyID, "/transactions"), token, nil)
    if err != nil {
        return nil, err
    }
    txs := make([]domain.Transaction, 0, len(out))
    for _, t := range out {
        txs = append(txs, t.toDomain())
    }
    return txs, nil
}

func (c *Client) Stats(ctx context.Context, token string) (domain.RegulatorStats, error) {
    out, err := call[statsDTO](ctx, c, http.MethodGet, "/regulator/stats", token, nil)
    if err != nil {
        return domain.RegulatorStats{}, err
    }
    return domain.RegulatorStats(out), nil
}

func (c *Client) Settings(ctx context.Context, token string) (domain.RegulatorSettings, error) {
    out, err := call[settingsDTO](ctx, c, http.MethodGet, "/regulator/settings", token, nil)
    if err != nil {
        return domain.RegulatorSettings{}, err
    }
    return domain.RegulatorSettings(out), nil
}

func (c *Client) UpdateSettings(ctx context.Context, token string, in domain.RegulatorSettings) (domain.RegulatorSettings, error) {
    out, err := call[settingsDTO](ctx, c, http.MethodPut, "/regulator/settings", token, settingsDTO(in))
    if err != nil {
        return domain.RegulatorSettings{}, err
    }
    return domain.RegulatorSettings(out), nil
}

func (c *Client) Export(ctx context.Context, token string, kind domain.ExportKind) ([]byte, error) {
    return c.callRaw(ctx, "/regulator/export/"+url.PathEscape(string(kind)), token)
}

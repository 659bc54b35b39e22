package httpadapter

import (
    "time"

    openapi_types "github.com/oapi-codegen/runtime/types"

    "chaincarbon/internal/api"
    "chaincarbon/internal/domain"
)

// Conversions between the generated wire types and the domain.

func toAPIUser(u domain.User) api.User {
    return api.User{Id: u.ID, Email: u.Email, Name: optional(u.Name), Role: u.Role, CompanyId: optional(u.CompanyID)}
}

func toAPISession(sess domain.Session) api.SessionInfo {
    return api.SessionInfo{User: toAPIUser(sess.User), ExpiresAt: sess.ExpiresAt}
}

func toAPICompany(c domain.Company) api.Company {
    return api.Company{
        Id:                 c.ID,
        Name:               c.Name,
        RegistrationNumber: optional(c.RegistrationNumber),
        Country:            optional(c.Country),
        Industry:           optional(c.Industry),
        Website:            c.Website,
        Email:              optional(c.Email),
        Phone:              c.Phone,
        Address:            c.Address,
        Description:        c.Description,
        Verified:           c.Verified,
    }
}

func toAPIProfile(p domain.Profile) api.Profile {
    out := api.Profile{User: toAPIUser(p.User)}
    if p.Company != nil {
        out.Company = ptr(toAPICompany(*p.Company))
    }
    return out
}

func registrationFromAPI(b api.RegisterRequest) domain.Registration {
    return domain.Registration{
        CompanyName:        b.CompanyName,
        RegistrationNumber: deref(b.RegistrationNumber),
        Country:            deref(b.Country),
        Industry:           deref(b.Industry),
        Website:            deref(b.Website),
        ContactName:        deref(b.ContactName),
        Email:              b.Email,
        Password:           b.Password,
        PasswordConfirm:    b.ConfirmPassword,
        Phone:              deref(b.Phone),
    }
}

func profileUpdateFromAPI(b api.ProfileUpdate) domain.ProfileUpdate {
    return domain.ProfileUpdate{Name: b.Name, Phone: b.Phone, Address: b.Address, Website: b.Website, Description: b.Description}
}

func criteriaFromAPI(b api.Criteria) domain.Criteria {
    return domain.Criteria{
        FinancialTransparency:     b.FinancialTransparency,
        ComplianceRegulatory:      b.ComplianceRegulatory,
        DocumentationCompleteness: b.DocumentationCompleteness,
        VerificationMethodology:   b.VerificationMethodology,
        ProjectImplementation:     b.ProjectImplementation,
        MonitoringReporting:       b.MonitoringReporting,
        StakeholderEngagement:     b.StakeholderEngagement,
    }
}

func score(s *api.Score) domain.Score {
    if s == nil {
        return 0
    }
    return *s
}

func auditFromAPI(b api.AuditRequest) domain.AuditRecord {
    rec := domain.AuditRecord{
        CompanyID: b.CompanyId,
        Criteria: domain.Criteria{
            FinancialTransparency:     score(b.FinancialTransparency),
            ComplianceRegulatory:      score(b.ComplianceRegulatory),
            DocumentationCompleteness: score(b.DocumentationCompleteness),
            VerificationMethodology:   score(b.VerificationMethodology),
            ProjectImplementation:     score(b.ProjectImplementation),
            MonitoringReporting:       score(b.MonitoringReporting),
            StakeholderEngagement:     score(b.StakeholderEngagement),
        },
        Findings:        b.Findings,
        Recommendations: b.Recommendations,
        Strengths:       deref(b.Strengths),
        Weaknesses:      deref(b.Weaknesses),
        ActionItems:     deref(b.ActionItems),
        AuditorName:     deref(b.AuditorName),
        Status:          domain.AuditStatus(deref(b.Status)),
    }
    if b.AuditDate != nil {
        rec.AuditDate = b.AuditDate.Time
    }
    if b.NextAuditDate != nil {
        rec.NextAuditDate = ptr(b.NextAuditDate.Time)
    }
    return rec
}

func toAPIEvaluation(ev domain.Evaluation) api.Evaluation {
    return api.Evaluation{
        FinancialScore:     ev.Financial,
        DocumentationScore: ev.Documentation,
        OperationalScore:   ev.Operational,
        ComplianceScore:    ev.Compliance,
        OverallScore:       ev.Overall,
        OverallRating:      string(ev.Rating),
        RiskLevel:          string(ev.Risk),
    }
}

func projectFromAPI(b api.ProjectRequest) domain.ProjectSubmission {
    out := domain.ProjectSubmission{
        Name:             b.Name,
        Description:      b.Description,
        Location:         b.Location,
        Methodology:      b.Methodology,
        EstimatedCredits: b.EstimatedCredits,
    }
    if b.StartDate != nil {
        out.StartDate = ptr(b.StartDate.Time)
    }
    if b.Documents != nil {
        for _, d := range *b.Documents {
            out.Documents = append(out.Documents, domain.ProjectDocument{Name: d.Name, URL: d.Url})
        }
    }
    return out
}

func toAPIProject(p domain.Project) api.Project {
    out := api.Project{
        Id:               p.ID,
        CompanyId:        optional(p.CompanyID),
        Name:             p.Name,
        Description:      optional(p.Description),
        Location:         optional(p.Location),
        Methodology:      optional(p.Methodology),
        Status:           p.Status,
        EstimatedCredits: p.EstimatedCredits,
    }
    if p.StartDate != nil {
        out.StartDate = &openapi_types.Date{Time: *p.StartDate}
    }
    out.CreatedAt = timeOrNil(p.CreatedAt)
    return out
}

func timeOrNil(t time.Time) *time.Time {
    if t.IsZero() {
        return nil
    }
    return &t
}

func toAPIBlockchain(b domain.BlockchainLink) api.Blockchain {
    return api.Blockchain{Hash: b.Hash, Revision: b.Revision, Version: b.Version}
}

func toAPICertificate(c domain.Certificate) api.Certificate {
    return api.Certificate{
        CertificateId:  c.ID,
        Amount:         c.Amount,
        Status:         api.CertificateStatus(c.Status),
        OwnerCompanyId: optional(c.OwnerCompanyID),
        ProjectId:      optional(c.ProjectID),
        ProjectName:    optional(c.ProjectName),
        IssuedAt:       timeOrNil(c.IssuedAt),
        ExpiresAt:      c.ExpiresAt,
        Blockchain:     toAPIBlockchain(c.Blockchain),
    }
}

func toAPICertificateView(v domain.CertificateView) api.CertificateView {
    return api.CertificateView{
        Certificate: toAPICertificate(v.Certificate),
        Viewer:      api.Viewer{IsOwner: v.Viewer.Owner, IsBuyer: v.Viewer.Buyer},
        Permissions: api.Permissions{
            ActionsVisible: v.Permissions.ActionsVisible,
            CanList:        v.Permissions.CanList,
            CanRetire:      v.Permissions.CanRetire,
        },
    }
}

func toAPISnapshots(in []domain.CertificateSnapshot) []api.CertificateSnapshot {
    out := make([]api.CertificateSnapshot, 0, len(in))
    for _, sn := range in {
        out = append(out, api.CertificateSnapshot{Certificate: toAPICertificate(sn.Certificate), FetchedAt: sn.FetchedAt})
    }
    return out
}

func toAPIVerification(v domain.Verification) api.Verification {
    out := api.Verification{
        IsValid:    v.Valid,
        Checks:     make([]api.VerificationCheck, 0, len(v.Checks)),
        Blockchain: toAPIBlockchain(v.Blockchain),
    }
    for _, c := range v.Checks {
        out.Checks = append(out.Checks, api.VerificationCheck{Name: c.Name, Passed: c.Passed, Message: optional(c.Message)})
    }
    if v.Certificate != nil {
        out.Certificate = ptr(toAPICertificate(*v.Certificate))
    }
    return out
}

func toAPICompanyContext(cc domain.CompanyContext) api.CompanyContext {
    out := api.CompanyContext{
        Company:      toAPICompany(cc.Company),
        Projects:     make([]api.Project, 0, len(cc.Projects)),
        Certificates: make([]api.Certificate, 0, len(cc.Certificates)),
        Transactions: make([]api.Transaction, 0, len(cc.Transactions)),
    }
    for _, p := range cc.Projects {
        out.Projects = append(out.Projects, toAPIProject(p))
    }
    for _, c := range cc.Certificates {
        out.Certificates = append(out.Certificates, toAPICertificate(c))
    }
    for _, t := range cc.Transactions {
        out.Transactions = append(out.Transactions, api.Transaction{
            Id:            t.ID,
            CertificateId: t.CertificateID,
            FromCompanyId: optional(t.FromCompanyID),
            ToCompanyId:   optional(t.ToCompanyID),
            Amount:        t.Amount,
            PricePerUnit:  t.PricePerUnit,
            Status:        t.Status,
            CreatedAt:     timeOrNil(t.CreatedAt),
        })
    }
    return out
}

func toAPIStats(st domain.RegulatorStats) api.RegulatorStats {
    return api.RegulatorStats{
        TotalCompanies:      st.Companies,
        TotalProjects:       st.Projects,
        PendingProjects:     st.PendingProjects,
        TotalCertificates:   st.Certificates,
        RetiredCertificates: st.RetiredCertificates,
        CreditsIssued:       st.CreditsIssued,
        CreditsRetired:      st.CreditsRetired,
        TotalAudits:         st.Audits,
    }
}

func toAPISettings(st domain.RegulatorSettings) api.RegulatorSettings {
    return api.RegulatorSettings{
        AuditIntervalDays:    st.AuditIntervalDays,
        MinimumAuditScore:    st.MinimumAuditScore,
        AutoApproveThreshold: st.AutoApproveThreshold,
        NotificationsEnabled: st.NotificationsEnabled,
        NotificationEmail:    st.NotificationEmail,
    }
}

func settingsFromAPI(b api.RegulatorSettings) domain.RegulatorSettings {
    return domain.RegulatorSettings{
        AuditIntervalDays:    b.AuditIntervalDays,
        MinimumAuditScore:    b.MinimumAuditScore,
        AutoApproveThreshold: b.AutoApproveThreshold,
        NotificationsEnabled: b.NotificationsEnabled,
        NotificationEmail:    b.NotificationEmail,
    }
}

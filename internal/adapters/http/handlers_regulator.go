package httpadapter

import (
    "bytes"
    "context"
    "fmt"
    "time"

    "chaincarbon/internal/api"
    "chaincarbon/internal/domain"
)

func (s *Server) PostAuditsPreview(_ context.Context, req api.PostAuditsPreviewRequestObject) (api.PostAuditsPreviewResponseObject, error) {
    ev := s.audits.Preview(criteriaFromAPI(*req.Body))
    return api.PostAuditsPreview200JSONResponse{Success: true, Data: toAPIEvaluation(ev)}, nil
}

func (s *Server) PostAudits(ctx context.Context, req api.PostAuditsRequestObject) (api.PostAuditsResponseObject, error) {
    rec := auditFromAPI(*req.Body)
    id, err := s.audits.Save(ctx, sessionFrom(ctx), rec)
    if err != nil {
        return nil, err
    }
    return api.PostAudits201JSONResponse{
        Success: true,
        Message: ptr("Audit saved."),
        Data:    api.AuditSaved{AuditId: id, Evaluation: toAPIEvaluation(rec.Evaluation())},
    }, nil
}

func (s *Server) GetRegulatorCompaniesIdContext(ctx context.Context, req api.GetRegulatorCompaniesIdContextRequestObject) (api.GetRegulatorCompaniesIdContextResponseObject, error) {
    cc, err := s.companies.Context(ctx, sessionFrom(ctx), req.Id)
    if err != nil {
        return nil, err
    }
    return api.GetRegulatorCompaniesIdContext200JSONResponse{Success: true, Data: toAPICompanyContext(cc)}, nil
}

func (s *Server) GetRegulatorStats(ctx context.Context, _ api.GetRegulatorStatsRequestObject) (api.GetRegulatorStatsResponseObject, error) {
    st, err := s.companies.Stats(ctx, sessionFrom(ctx))
    if err != nil {
        return nil, err
    }
    return api.GetRegulatorStats200JSONResponse{Success: true, Data: toAPIStats(st)}, nil
}

func (s *Server) GetRegulatorSettings(ctx context.Context, _ api.GetRegulatorSettingsRequestObject) (api.GetRegulatorSettingsResponseObject, error) {
    st, err := s.companies.Settings(ctx, sessionFrom(ctx))
    if err != nil {
        return nil, err
    }
    return api.GetRegulatorSettings200JSONResponse{Success: true, Data: toAPISettings(st)}, nil
}

func (s *Server) PutRegulatorSettings(ctx context.Context, req api.PutRegulatorSettingsRequestObject) (api.PutRegulatorSettingsResponseObject, error) {
    st, err := s.companies.UpdateSettings(ctx, sessionFrom(ctx), settingsFromAPI(*req.Body))
    if err != nil {
        return nil, err
    }
    return api.PutRegulatorSettings200JSONResponse{Success: true, Message: ptr("Settings saved."), Data: toAPISettings(st)}, nil
}

func (s *Server) GetRegulatorExportKind(ctx context.Context, req api.GetRegulatorExportKindRequestObject) (api.GetRegulatorExportKindResponseObject, error) {
    raw, err := s.companies.Export(ctx, sessionFrom(ctx), domain.ExportKind(req.Kind))
    if err != nil {
        return nil, err
    }
    name := fmt.Sprintf("%s-%s.csv", req.Kind, time.Now().UTC().Format(time.DateOnly))
    return api.GetRegulatorExportKind200TextcsvResponse{
        Body:          bytes.NewReader(raw),
        ContentLength: int64(len(raw)),
        Headers:       api.GetRegulatorExportKind200ResponseHeaders{ContentDisposition: fmt.Sprintf("attachment; filename=%q", name)},
    }, nil
}

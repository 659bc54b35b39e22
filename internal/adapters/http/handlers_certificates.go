package httpadapter

import (
    "context"
    "strings"
    "time"

    "chaincarbon/internal/api"
    "chaincarbon/internal/domain"
    "chaincarbon/internal/workers/refresher"
)

const waitTimeout = 30 * time.Second

func (s *Server) GetCertificates(ctx context.Context, req api.GetCertificatesRequestObject) (api.GetCertificatesResponseObject, error) {
    var f domain.SnapshotFilter
    if v := deref(req.Params.Status); v != "" {
        st, err := domain.ParseCertificateStatus(v)
        if err != nil {
            return nil, domain.NewValidationError("status", "must be one of ISSUED, LISTED, TRANSFERRED, RETIRED")
        }
        f.Status = &st
    }
    if v := strings.TrimSpace(deref(req.Params.Owner)); v != "" {
        f.OwnerCompanyID = &v
    }
    if req.Params.Limit != nil {
        f.Limit = *req.Params.Limit
    }
    snaps, err := s.certificates.Snapshots(ctx, sessionFrom(ctx), f)
    if err != nil {
        return nil, err
    }
    return api.GetCertificates200JSONResponse{Success: true, Data: toAPISnapshots(snaps)}, nil
}

func (s *Server) GetCertificatesId(ctx context.Context, req api.GetCertificatesIdRequestObject) (api.GetCertificatesIdResponseObject, error) {
    view, err := s.certificates.Detail(ctx, sessionFrom(ctx), req.Id, flag(req.Params.Purchase))
    if err != nil {
        return nil, err
    }
    return api.GetCertificatesId200JSONResponse{Success: true, Data: toAPICertificateView(view)}, nil
}

// PostCertificatesIdList answers 202 once the backend accepted the listing.
// With wait=true it blocks until the delayed refresh ran and returns the
// refreshed view instead.
func (s *Server) PostCertificatesIdList(ctx context.Context, req api.PostCertificatesIdListRequestObject) (api.PostCertificatesIdListResponseObject, error) {
    const msg = "Certificate listed on the marketplace."
    sess := sessionFrom(ctx)
    purchase := flag(req.Params.Purchase)
    job, err := s.certificates.List(ctx, sess, req.Id, domain.ListRequest{PricePerUnit: req.Body.PricePerUnit}, purchase)
    if err != nil {
        return nil, err
    }

    if flag(req.Params.Wait) && job.ID != "" && s.processor != nil {
        wctx, cancel := context.WithTimeout(ctx, waitTimeout)
        defer cancel()
        if err := refresher.ProcessInline(wctx, s.jobs, s.processor, job, s.opts.RefreshDelay); err != nil {
            s.logger.WarnContext(wctx, "inline refresh failed", "certificate_id", req.Id, "error", err)
        } else if view, err := s.certificates.Detail(wctx, sess, req.Id, purchase); err == nil {
            return api.PostCertificatesIdList200JSONResponse{Success: true, Message: ptr(msg), Data: toAPICertificateView(view)}, nil
        }
    }
    return api.PostCertificatesIdList202JSONResponse{
        Success: true,
        Message: ptr(msg),
        Data:    api.ListAccepted{RefreshJobId: optional(job.ID), RefreshAfterMs: s.opts.RefreshDelay.Milliseconds()},
    }, nil
}

// PostCertificatesIdRetire returns the irreversible-action warning until the
// request carries confirmed=true.
func (s *Server) PostCertificatesIdRetire(ctx context.Context, req api.PostCertificatesIdRetireRequestObject) (api.PostCertificatesIdRetireResponseObject, error) {
    out, err := s.certificates.Retire(ctx, sessionFrom(ctx), req.Id, domain.RetireRequest{
        Reason:      req.Body.RetirementReason,
        Beneficiary: deref(req.Body.RetirementBeneficiary),
        Confirmed:   flag(req.Body.Confirmed),
    }, flag(req.Params.Purchase))
    if err != nil {
        return nil, err
    }
    msg := "Certificate retired."
    if out.ConfirmationRequired {
        msg = out.Warning
    }
    return api.PostCertificatesIdRetire200JSONResponse{
        Success: true,
        Message: ptr(msg),
        Data: api.RetireResult{
            ConfirmationRequired: out.ConfirmationRequired,
            Warning:              optional(out.Warning),
            Submitted:            out.Submitted,
        },
    }, nil
}

func (s *Server) GetPublicVerifyCertId(ctx context.Context, req api.GetPublicVerifyCertIdRequestObject) (api.GetPublicVerifyCertIdResponseObject, error) {
    v, err := s.certificates.Verify(ctx, req.CertId)
    if err != nil {
        return nil, err
    }
    return api.GetPublicVerifyCertId200JSONResponse{Success: true, Data: toAPIVerification(v)}, nil
}

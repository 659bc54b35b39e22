package httpadapter

import (
    "context"

    "chaincarbon/internal/api"
)

func (s *Server) PostAuthLogin(ctx context.Context, req api.PostAuthLoginRequestObject) (api.PostAuthLoginResponseObject, error) {
    sess, err := s.sessions.Login(ctx, req.Body.Email, req.Body.Password)
    if err != nil {
        return nil, err
    }
    return api.PostAuthLogin200JSONResponse{
        Body:    api.SessionResponse{Success: true, Data: toAPISession(sess)},
        Headers: api.PostAuthLogin200ResponseHeaders{SetCookie: s.sessionCookie(sess).String()},
    }, nil
}

func (s *Server) PostAuthLogout(ctx context.Context, _ api.PostAuthLogoutRequestObject) (api.PostAuthLogoutResponseObject, error) {
    if id := cookieFrom(ctx); id != "" {
        if err := s.sessions.Invalidate(ctx, id); err != nil {
            return nil, err
        }
    }
    return api.PostAuthLogout200JSONResponse{
        Body:    api.Envelope{Success: true, Message: ptr("Signed out.")},
        Headers: api.PostAuthLogout200ResponseHeaders{SetCookie: s.clearedCookie().String()},
    }, nil
}

// PostAuthRefresh re-reads the signed-in user after it changed elsewhere.
func (s *Server) PostAuthRefresh(ctx context.Context, _ api.PostAuthRefreshRequestObject) (api.PostAuthRefreshResponseObject, error) {
    sess, err := s.sessions.Refresh(ctx, sessionFrom(ctx).ID)
    if err != nil {
        return nil, err
    }
    return api.PostAuthRefresh200JSONResponse{Success: true, Data: toAPISession(sess)}, nil
}

func (s *Server) PostAuthRegister(ctx context.Context, req api.PostAuthRegisterRequestObject) (api.PostAuthRegisterResponseObject, error) {
    id, err := s.profiles.Register(ctx, registrationFromAPI(*req.Body))
    if err != nil {
        return nil, err
    }
    return api.PostAuthRegister201JSONResponse{
        Success: true,
        Message: ptr("Registration submitted."),
        Data:    api.Registration{CompanyId: id},
    }, nil
}

func (s *Server) GetMe(ctx context.Context, _ api.GetMeRequestObject) (api.GetMeResponseObject, error) {
    prof, err := s.profiles.Me(ctx, sessionFrom(ctx))
    if err != nil {
        return nil, err
    }
    return api.GetMe200JSONResponse{Success: true, Data: toAPIProfile(prof)}, nil
}

func (s *Server) PutMe(ctx context.Context, req api.PutMeRequestObject) (api.PutMeResponseObject, error) {
    prof, err := s.profiles.UpdateMe(ctx, sessionFrom(ctx), profileUpdateFromAPI(*req.Body))
    if err != nil {
        return nil, err
    }
    return api.PutMe200JSONResponse{Success: true, Message: ptr("Profile updated."), Data: toAPIProfile(prof)}, nil
}

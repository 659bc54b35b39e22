package httpadapter

import (
    "context"

    "chaincarbon/internal/api"
)

// PostProjects never retries on its own; a network failure answers with
// retry=true and the browser resubmits with ?retry=true.
func (s *Server) PostProjects(ctx context.Context, req api.PostProjectsRequestObject) (api.PostProjectsResponseObject, error) {
    sess := sessionFrom(ctx)
    if flag(req.Params.Retry) {
        s.logger.InfoContext(ctx, "project submission retried by user", "user_id", sess.User.ID)
    }
    p, err := s.projects.Submit(ctx, sess, projectFromAPI(*req.Body))
    if err != nil {
        return nil, err
    }
    return api.PostProjects201JSONResponse{Success: true, Message: ptr("Project submitted for review."), Data: toAPIProject(p)}, nil
}

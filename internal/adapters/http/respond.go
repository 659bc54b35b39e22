package httpadapter

import (
    "encoding/json"
    "errors"
    "io"
    "net/http"
    "strings"

    "github.com/go-chi/chi/v5/middleware"

    "chaincarbon/internal/adapters/backend"
    "chaincarbon/internal/api"
    "chaincarbon/internal/domain"
    "chaincarbon/internal/services/companies"
)

const (
    genericMessage = "Something went wrong. Please try again."
    maxBodyBytes   = 1 << 20
)

var errTooLarge = errors.New("request body too large")

func ptr[T any](v T) *T { return &v }

// optional drops empty strings so omitempty leaves the key out.
func optional(s string) *string {
    if s == "" {
        return nil
    }
    return &s
}

func deref(s *string) string {
    if s == nil {
        return ""
    }
    return *s
}

func flag(b *bool) bool { return b != nil && *b }

func failure(msg string) api.Envelope {
    return api.Envelope{Success: false, Message: ptr(msg)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status and body. Server messages are passed on
// verbatim; anything unclassified is logged and answered generically.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
    var verr *domain.ValidationError
    if errors.As(err, &verr) {
        env := failure("Please correct the highlighted fields.")
        fields := make([]api.FieldError, 0, len(verr.Errors))
        for _, fe := range verr.Errors {
            fields = append(fields, api.FieldError{Field: fe.Field, Message: fe.Message})
        }
        env.Errors = &fields
        writeJSON(w, http.StatusBadRequest, env)
        return
    }

    if errors.Is(err, domain.ErrUnauthorized) {
        if id := cookieFrom(r.Context()); id != "" {
            if ierr := s.sessions.Invalidate(r.Context(), id); ierr != nil {
                s.logger.WarnContext(r.Context(), "session invalidation failed", "error", ierr)
            }
        }
        http.SetCookie(w, s.clearedCookie())
        msg := "Your session has expired. Please sign in again."
        if be, ok := backend.AsError(err); ok && be.Message != "" {
            msg = be.Message
        }
        env := failure(msg)
        env.Reauth = ptr(true)
        writeJSON(w, http.StatusUnauthorized, env)
        return
    }

    if be, ok := backend.AsError(err); ok {
        switch be.Kind {
        case backend.KindNetwork:
            env := failure("Could not reach the server. Please try again.")
            env.Retry = ptr(true)
            writeJSON(w, http.StatusBadGateway, env)
        case backend.KindTooLarge:
            writeJSON(w, http.StatusRequestEntityTooLarge, failure(be.Message))
        case backend.KindNotFound:
            writeJSON(w, http.StatusNotFound, failure(be.Message))
        case backend.KindRejected:
            status := be.Status
            if status < http.StatusBadRequest {
                status = http.StatusUnprocessableEntity
            }
            writeJSON(w, status, failure(be.Message))
        default:
            s.logUnexpected(r, err)
            writeJSON(w, http.StatusInternalServerError, failure(genericMessage))
        }
        return
    }

    switch {
    case errors.Is(err, errTooLarge):
        writeJSON(w, http.StatusRequestEntityTooLarge, failure("The request is too large."))
    case errors.Is(err, domain.ErrForbidden):
        writeJSON(w, http.StatusForbidden, failure(reason(err, domain.ErrForbidden)))
    case errors.Is(err, domain.ErrInFlight):
        writeJSON(w, http.StatusConflict, failure("This request is already being processed."))
    case errors.Is(err, domain.ErrConflict):
        writeJSON(w, http.StatusConflict, failure(reason(err, domain.ErrConflict)))
    case errors.Is(err, domain.ErrNotFound):
        writeJSON(w, http.StatusNotFound, failure("Not found."))
    case errors.Is(err, companies.ErrMalformedExport):
        s.logUnexpected(r, err)
        writeJSON(w, http.StatusBadGateway, failure("The export could not be generated."))
    default:
        s.logUnexpected(r, err)
        writeJSON(w, http.StatusInternalServerError, failure(genericMessage))
    }
}

// requestError answers bodies the generated handlers could not decode.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
    var mbe *http.MaxBytesError
    switch {
    case errors.As(err, &mbe):
        s.writeError(w, r, errTooLarge)
    case errors.Is(err, io.EOF):
        s.writeError(w, r, domain.NewValidationError("body", "is required"))
    default:
        s.writeError(w, r, domain.NewValidationError("body", "must be valid JSON"))
    }
}

// paramError answers path and query values that did not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
    var perr *api.InvalidParamFormatError
    if errors.As(err, &perr) {
        s.writeError(w, r, domain.NewValidationError(perr.ParamName, "is invalid"))
        return
    }
    s.writeError(w, r, domain.NewValidationError("request", err.Error()))
}

// reason drops the trailing sentinel text from a wrapped error message.
func reason(err, sentinel error) string {
    msg := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
    if msg == "" {
        return sentinel.Error()
    }
    return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

func (s *Server) logUnexpected(r *http.Request, err error) {
    s.logger.ErrorContext(r.Context(), "request failed",
        "method", r.Method, "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
}

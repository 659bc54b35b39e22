// Package backend is the typed REST client for the ChainCarbon API. Every
// response is decoded here into Go types or a *Error; nothing above this
// package looks at raw response fields.
package backend

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "log/slog"
    "net/http"
    "strings"
    "time"

    "chaincarbon/internal/domain"
)

const maxResponseBytes = 16 << 20

type Client struct {
    baseURL string
    http    *http.Client
    logger  *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
    if logger == nil {
        logger = slog.Default()
    }
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        http:    &http.Client{Timeout: timeout},
        logger:  logger,
    }
}

// WithHTTPClient replaces the underlying transport client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
    c.http = hc
    return c
}

type ErrorKind string

const (
    KindNetwork      ErrorKind = "network"
    KindUnauthorized ErrorKind = "unauthorized"
    KindNotFound     ErrorKind = "not_found"
    KindTooLarge     ErrorKind = "too_large"
    KindRejected     ErrorKind = "rejected"
    KindUnexpected   ErrorKind = "unexpected"
)

// Error is a failed backend call. Message is the server's text when it sent one.
type Error struct {
    Kind    ErrorKind
    Status  int
    Message string
    Err     error
}

func (e *Error) Error() string {
    if e.Status != 0 {
        return fmt.Sprintf("backend %s (%d): %s", e.Kind, e.Status, e.Message)
    }
    return fmt.Sprintf("backend %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match backend failures against domain sentinels.
func (e *Error) Is(target error) bool {
    switch e.Kind {
    case KindUnauthorized:
        return target == domain.ErrUnauthorized
    case KindNotFound:
        return target == domain.ErrNotFound
    }
    return false
}

// Retryable reports whether the request may be resubmitted as-is.
func (e *Error) Retryable() bool { return e.Kind == KindNetwork }

// envelope is the uniform {success, message, data} response shape.
type envelope[T any] struct {
    Success bool   `json:"success"`
    Message string `json:"message"`
    Data    T      `json:"data"`
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
    var rd io.Reader
    if body != nil {
        buf, err := json.Marshal(body)
        if err != nil {
            return nil, &Error{Kind: KindUnexpected, Message: "encode request", Err: err}
        }
        rd = bytes.NewReader(buf)
    }
    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
    if err != nil {
        return nil, &Error{Kind: KindUnexpected, Message: "build request", Err: err}
    }
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    req.Header.Set("Accept", "application/json")
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    return req, nil
}

// send performs req and returns the body of a 2xx response.
func (c *Client) send(req *http.Request) ([]byte, http.Header, error) {
    start := time.Now()
    resp, err := c.http.Do(req)
    if err != nil {
        c.logger.WarnContext(req.Context(), "backend unreachable", "method", req.Method, "path", req.URL.Path, "error", err)
        return nil, nil, &Error{Kind: KindNetwork, Message: "the server could not be reached, please try again", Err: err}
    }
    defer resp.Body.Close()

    raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
    if err != nil {
        return nil, nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: "the response was interrupted, please try again", Err: err}
    }
    c.logger.DebugContext(req.Context(), "backend call", "method", req.Method, "path", req.URL.Path,
        "status", resp.StatusCode, "duration", time.Since(start))

    if resp.StatusCode >= 300 {
        return nil, nil, statusError(resp.StatusCode, raw)
    }
    return raw, resp.Header, nil
}

func statusError(status int, raw []byte) *Error {
    msg := serverMessage(raw)
    switch {
    case status == http.StatusUnauthorized:
        if msg == "" {
            msg = "your session has expired, please sign in again"
        }
        return &Error{Kind: KindUnauthorized, Status: status, Message: msg}
    case status == http.StatusRequestEntityTooLarge:
        if msg == "" {
            msg = "file too large"
        }
        return &Error{Kind: KindTooLarge, Status: status, Message: msg}
    case status == http.StatusNotFound:
        if msg == "" {
            msg = "not found"
        }
        return &Error{Kind: KindNotFound, Status: status, Message: msg}
    }
    if msg == "" {
        msg = http.StatusText(status)
    }
    return &Error{Kind: KindRejected, Status: status, Message: msg}
}

// serverMessage pulls message (or error) out of a JSON error body.
func serverMessage(raw []byte) string {
    var body struct {
        Message string `json:"message"`
        Error   string `json:"error"`
    }
    if err := json.Unmarshal(raw, &body); err != nil {
        return ""
    }
    if body.Message != "" {
        return body.Message
    }
    return body.Error
}

// call sends a request and decodes the enveloped data into T.
func call[T any](ctx context.Context, c *Client, method, path, token string, body any) (T, error) {
    var zero T
    req, err := c.newRequest(ctx, method, path, token, body)
    if err != nil {
        return zero, err
    }
    raw, _, err := c.send(req)
    if err != nil {
        return zero, err
    }
    var env envelope[T]
    if err := json.Unmarshal(raw, &env); err != nil {
        c.logger.ErrorContext(ctx, "backend response not decodable", "method", method, "path", path, "error", err)
        return zero, &Error{Kind: KindUnexpected, Message: "unexpected response from server", Err: err}
    }
    if !env.Success {
        msg := env.Message
        if msg == "" {
            msg = "request was rejected"
        }
        return zero, &Error{Kind: KindRejected, Status: http.StatusOK, Message: msg}
    }
    return env.Data, nil
}

// callRaw returns the body of a non-JSON download.
func (c *Client) callRaw(ctx context.Context, path, token string) ([]byte, error) {
    req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
    if err != nil {
        return nil, err
    }
    req.Header.Set("Accept", "text/csv, application/json")
    raw, hdr, err := c.send(req)
    if err != nil {
        return nil, err
    }
    // Some endpoints answer a logical failure with a 200 JSON envelope.
    if strings.HasPrefix(hdr.Get("Content-Type"), "application/json") {
        var env envelope[json.RawMessage]
        if jerr := json.Unmarshal(raw, &env); jerr == nil && !env.Success {
            msg := env.Message
            if msg == "" {
                msg = "export failed"
            }
            return nil, &Error{Kind: KindRejected, Status: http.StatusOK, Message: msg}
        }
    }
    return raw, nil
}

// AsError unwraps err to a *Error when it is one.
func AsError(err error) (*Error, bool) {
    var be *Error
    if errors.As(err, &be) {
        return be, true
    }
    return nil, false
}

package backend

import (
    "context"
    "encoding/json"
    "net/http"
    "net/url"

    "github.com/shopspring/decimal"

    "chaincarbon/internal/domain"
)

func certificatePath(certID, suffix string) string {
    return "/certificates/" + url.PathEscape(certID) + suffix
}

type certificateDetailDTO struct {
    Certificate certificateDTO `json:"certificate"`
    Blockchain  *blockchainDTO `json:"blockchain"`
    ViewerRole  string         `json:"viewerRole"`
}

func (c *Client) CertificateDetail(ctx context.Context, token, certID string) (domain.Certificate, error) {
    out, err := call[certificateDetailDTO](ctx, c, http.MethodGet, certificatePath(certID, "/detail"), token, nil)
    if err != nil {
        return domain.Certificate{}, err
    }
    cert, err := out.Certificate.toDomain()
    if err != nil {
        return domain.Certificate{}, err
    }
    if out.Blockchain != nil {
        cert.Blockchain = domain.BlockchainLink(*out.Blockchain)
    }
    cert.ViewerRole = out.ViewerRole
    return cert, nil
}

// ListCertificate sends the price as a JSON number.
func (c *Client) ListCertificate(ctx context.Context, token, certID string, pricePerUnit decimal.Decimal) error {
    body := map[string]json.Number{"pricePerUnit": json.Number(pricePerUnit.String())}
    _, err := call[json.RawMessage](ctx, c, http.MethodPost, certificatePath(certID, "/list"), token, body)
    return err
}

func (c *Client) RetireCertificate(ctx context.Context, token, certID, reason, beneficiary string) error {
    body := map[string]string{"retirementReason": reason, "retirementBeneficiary": beneficiary}
    _, err := call[json.RawMessage](ctx, c, http.MethodPost, certificatePath(certID, "/retire"), token, body)
    return err
}

type verifyResponse struct {
    Success      bool   `json:"success"`
    Message      string `json:"message"`
    Verification struct {
        IsValid bool `json:"isValid"`
        Checks  []struct {
            Name    string `json:"name"`
            Passed  bool   `json:"passed"`
            Message string `json:"message"`
        } `json:"checks"`
    } `json:"verification"`
    Certificate *certificateDTO `json:"certificate"`
    Blockchain  *blockchainDTO  `json:"blockchain"`
}

// Verify is the public, unauthenticated verification endpoint. Its response
// is not wrapped in the usual data envelope.
func (c *Client) Verify(ctx context.Context, certID string) (domain.Verification, error) {
    req, err := c.newRequest(ctx, http.MethodGet, "/public/verify/"+url.PathEscape(certID), "", nil)
    if err != nil {
        return domain.Verification{}, err
    }
    raw, _, err := c.send(req)
    if err != nil {
        return domain.Verification{}, err
    }
    var out verifyResponse
    if err := json.Unmarshal(raw, &out); err != nil {
        return domain.Verification{}, &Error{Kind: KindUnexpected, Message: "unexpected response from server", Err: err}
    }
    if !out.Success {
        msg := out.Message
        if msg == "" {
            msg = "certificate could not be verified"
        }
        return domain.Verification{}, &Error{Kind: KindRejected, Status: http.StatusOK, Message: msg}
    }

    v := domain.Verification{Valid: out.Verification.IsValid}
    for _, ch := range out.Verification.Checks {
        v.Checks = append(v.Checks, domain.VerificationCheck{Name: ch.Name, Passed: ch.Passed, Message: ch.Message})
    }
    if out.Certificate != nil {
        cert, err := out.Certificate.toDomain()
        if err != nil {
            return domain.Verification{}, err
        }
        v.Certificate = &cert
    }
    if out.Blockchain != nil {
        v.Blockchain = domain.BlockchainLink(*out.Blockchain)
    }
    return v, nil
}

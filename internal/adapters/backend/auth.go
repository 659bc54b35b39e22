package backend

import (
    "context"
    "net/http"

    "chaincarbon/internal/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (string, domain.User, error) {
    body := map[string]string{"email": email, "password": password}
    out, err := call[struct {
        Token string  `json:"token"`
        User  userDTO `json:"user"`
    }](ctx, c, http.MethodPost, "/auth/login", "", body)
    if err != nil {
        return "", domain.User{}, err
    }
    if out.Token == "" {
        return "", domain.User{}, &Error{Kind: KindUnexpected, Message: "login response carried no token"}
    }
    return out.Token, out.User.toDomain(), nil
}

type registerBody struct {
    CompanyName        string `json:"companyName"`
    RegistrationNumber string `json:"registrationNumber"`
    Country            string `json:"country"`
    Industry           string `json:"industry,omitempty"`
    Website            string `json:"website,omitempty"`
    ContactName        string `json:"contactName"`
    Email              string `json:"email"`
    Password           string `json:"password"`
    Phone              string `json:"phone,omitempty"`
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (string, error) {
    body := registerBody{
        CompanyName: reg.CompanyName, RegistrationNumber: reg.RegistrationNumber, Country: reg.Country,
        Industry: reg.Industry, Website: reg.Website, ContactName: reg.ContactName,
        Email: reg.Email, Password: reg.Password, Phone: reg.Phone,
    }
    out, err := call[struct {
        CompanyID string `json:"companyId"`
    }](ctx, c, http.MethodPost, "/auth/register", "", body)
    if err != nil {
        return "", err
    }
    return out.CompanyID, nil
}

package backend

import (
    "context"
    "net/http"

    "chaincarbon/internal/domain"
)

func (c *Client) Me(ctx context.Context, token string) (domain.Profile, error) {
    out, err := call[profileDTO](ctx, c, http.MethodGet, "/users/me", token, nil)
    if err != nil {
        return domain.Profile{}, err
    }
    return out.toDomain(), nil
}

type profileUpdateBody struct {
    Name        *string `json:"name,omitempty"`
    Phone       *string `json:"phone,omitempty"`
    Address     *string `json:"address,omitempty"`
    Website     *string `json:"website,omitempty"`
    Description *string `json:"description,omitempty"`
}

func (c *Client) UpdateMe(ctx context.Context, token string, upd domain.ProfileUpdate) (domain.Profile, error) {
    body := profileUpdateBody(upd)
    out, err := call[profileDTO](ctx, c, http.MethodPut, "/users/me", token, body)
    if err != nil {
        return domain.Profile{}, err
    }
    return out.toDomain(), nil
}

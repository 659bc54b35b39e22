package backend

import (
    "context"
    "encoding/json"
    "net/http"

    openapi_types "github.com/oapi-codegen/runtime/types"

    "chaincarbon/internal/domain"
)

type projectDocumentBody struct {
    Name string `json:"name"`
    URL  string `json:"url"`
}

type projectBody struct {
    Name             string                `json:"name"`
    Description      string                `json:"description"`
    Location         string                `json:"location"`
    Methodology      string                `json:"methodology"`
    EstimatedCredits json.Number           `json:"estimatedCredits"`
    StartDate        *openapi_types.Date   `json:"startDate,omitempty"`
    Documents        []projectDocumentBody `json:"documents,omitempty"`
}

func (c *Client) SubmitProject(ctx context.Context, token string, in domain.ProjectSubmission) (domain.Project, error) {
    body := projectBody{
        Name: in.Name, Description: in.Description, Location: in.Location,
        Methodology: in.Methodology, EstimatedCredits: json.Number(in.EstimatedCredits.String()),
    }
    if in.StartDate != nil {
        body.StartDate = &openapi_types.Date{Time: *in.StartDate}
    }
    for _, d := range in.Documents {
        body.Documents = append(body.Documents, projectDocumentBody(d))
    }
    out, err := call[projectDTO](ctx, c, http.MethodPost, "/projects", token, body)
    if err != nil {
        return domain.Project{}, err
    }
    return out.toDomain(), nil
}

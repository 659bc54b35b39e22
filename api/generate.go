// Package api holds the OpenAPI contract of the browser-facing API. The chi
// server, strict handlers and models are generated into internal/api.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -config oapi-codegen.yaml openapi.yaml

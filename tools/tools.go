//go:build tools

package tools

// Pins the versions of the code generator behind api/generate.go and the
// goose CLI used for ad-hoc migrations (go run .../cmd/goose).

import (
    _ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
    _ "github.com/pressly/goose/v3/cmd/goose"
)

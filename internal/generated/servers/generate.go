// Package servers holds the echo bindings and models generated from
// api/openapi.yml. Run `go generate ./...` after editing the contract.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=../../../api/oapi-codegen.yml ../../../api/openapi.yml

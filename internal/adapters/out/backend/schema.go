package backend

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed backend.yaml
var backendDocument []byte

const (
	schemaLogin        = "LoginResponse"
	schemaUser         = "UserResponse"
	schemaOrderList    = "OrderListResponse"
	schemaOrder        = "OrderResponse"
	schemaStatusChange = "StatusChangeResponse"
	schemaAssignDriver = "AssignDriverResponse"
	schemaDriverList   = "DriverListResponse"
	schemaCollection   = "CollectionResponse"
)

// schemaValidator checks response bodies against the component schemas of the
// embedded backend document.
type schemaValidator struct {
	schemas openapi3.Schemas
}

func newSchemaValidator() (*schemaValidator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(backendDocument)
	if err != nil {
		return nil, fmt.Errorf("load backend schema: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("backend schema has no components")
	}
	return &schemaValidator{schemas: doc.Components.Schemas}, nil
}

func (v *schemaValidator) validate(name, path string, body []byte) error {
	ref, ok := v.schemas[name]
	if !ok || ref.Value == nil {
		return &SchemaError{Schema: name, Path: path, Cause: fmt.Errorf("schema %s is not defined", name)}
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return &SchemaError{Schema: name, Path: path, Cause: err}
	}

	if err := ref.Value.VisitJSON(value); err != nil {
		return &SchemaError{Schema: name, Path: path, Cause: err}
	}
	return nil
}

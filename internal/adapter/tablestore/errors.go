package tablestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoRows is returned by SelectOne when nothing matches.
var ErrNoRows = errors.New("tablestore: no rows")

// Diagnostic is the decoded error body of a failed table-protocol request.
// Code carries the remote SQL-state or protocol error code; Details and Hint
// are free text and feed the writer's negotiation logic.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// IsSchemaPermission reports the distinguished "permission denied for
// schema" diagnostic, which indicates a store misconfiguration rather than
// a data error.
func (d Diagnostic) IsSchemaPermission() bool {
	return d.Code == "42501" || strings.Contains(d.Message, "permission denied for schema")
}

// RequestError is a failed table-protocol request carrying the remote
// status code and raw diagnostic payload.
type RequestError struct {
	Relation   string
	Status     int
	Diagnostic Diagnostic
}

func (e *RequestError) Error() string {
	if e.Diagnostic.Message != "" {
		return fmt.Sprintf("tablestore: %s: status %d: %s (code %s)",
			e.Relation, e.Status, e.Diagnostic.Message, e.Diagnostic.Code)
	}
	return fmt.Sprintf("tablestore: %s: status %d", e.Relation, e.Status)
}

// SchemaAccessError is a distinguished configuration error: the store
// rejected access to the schema itself. Retrying cannot help; the API key
// or exposed schema must be fixed.
type SchemaAccessError struct {
	Relation   string
	Diagnostic Diagnostic
}

func (e *SchemaAccessError) Error() string {
	return fmt.Sprintf("tablestore: %s: schema access denied: %s", e.Relation, e.Diagnostic.Message)
}

func decodeDiagnostic(raw []byte) Diagnostic {
	var d Diagnostic
	if err := json.Unmarshal(raw, &d); err != nil || (d.Message == "" && d.Code == "") {
		// Undecodable bodies still surface as raw text.
		d.Message = strings.TrimSpace(string(raw))
	}
	return d
}

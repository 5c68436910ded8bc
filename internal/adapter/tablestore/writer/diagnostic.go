package writer

import (
	"regexp"
	"strings"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
)

// violation is a remote diagnostic classified into a shape the negotiation
// loop can act on. Anything that does not classify is fatal.
type violation interface{ isViolation() }

type unknownColumn struct{ column string }
type notNullViolation struct{ column string }
type uniqueConflict struct{ column string }
type fkViolation struct{ column string }

func (unknownColumn) isViolation()    {}
func (notNullViolation) isViolation() {}
func (uniqueConflict) isViolation()   {}
func (fkViolation) isViolation()      {}

// Matchers for the known remote error phrasings. The protocol layer reports
// a missing column itself ("Could not find the ... column"); constraint
// violations surface with SQL-state codes and the offending column quoted
// in the message or in the Details key clause.
var (
	reMissingColumn = regexp.MustCompile(`Could not find the '([^']+)' column`)
	reUndefinedCol  = regexp.MustCompile(`column "([^"]+)" [^"]*does not exist`)
	reNullValueCol  = regexp.MustCompile(`null value in column "([^"]+)"`)
	reKeyClauseCol  = regexp.MustCompile(`Key \(([^)=]+)\)=`)
	reConstraint    = regexp.MustCompile(`constraint "([A-Za-z0-9_]+)"`)
)

// classifyDiagnostic maps a remote diagnostic to a tagged violation using an
// ordered set of pattern matchers. The precedence mirrors the negotiation
// rules: unknown column, not-null, unique conflict, foreign key.
func classifyDiagnostic(relation string, d tablestore.Diagnostic) (violation, bool) {
	if m := reMissingColumn.FindStringSubmatch(d.Message); m != nil {
		return unknownColumn{column: m[1]}, true
	}
	if m := reUndefinedCol.FindStringSubmatch(d.Message); m != nil {
		return unknownColumn{column: m[1]}, true
	}
	if m := reNullValueCol.FindStringSubmatch(d.Message); m != nil {
		return notNullViolation{column: m[1]}, true
	}
	if d.Code == "23505" || strings.Contains(d.Message, "duplicate key value violates unique constraint") {
		if col, ok := conflictColumn(relation, d); ok {
			return uniqueConflict{column: col}, true
		}
	}
	if d.Code == "23503" || strings.Contains(d.Message, "violates foreign key constraint") {
		if col, ok := conflictColumn(relation, d); ok {
			return fkViolation{column: col}, true
		}
	}
	return nil, false
}

// conflictColumn extracts the offending column from the Details key clause,
// falling back to the constraint name embedded in the message
// (<relation>_<column>_key / _fkey).
func conflictColumn(relation string, d tablestore.Diagnostic) (string, bool) {
	if m := reKeyClauseCol.FindStringSubmatch(d.Details); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reConstraint.FindStringSubmatch(d.Message); m != nil {
		name := m[1]
		name = strings.TrimSuffix(name, "_fkey")
		name = strings.TrimSuffix(name, "_key")
		name = strings.TrimPrefix(name, relation+"_")
		if name != "" {
			return name, true
		}
	}
	return "", false
}

package tablestore

import (
	"fmt"
	"net/url"
)

// Op is a filter operator of the table protocol.
type Op string

const (
	OpEq    Op = "eq"
	OpNeq   Op = "neq"
	OpILike Op = "ilike"
	OpIs    Op = "is"
)

// Filter is one (field, operator, value) condition. Filters combine with
// logical AND in the order given.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Eq builds an equality filter.
func Eq(field string, value any) Filter { return Filter{Field: field, Op: OpEq, Value: value} }

// Neq builds an inequality filter.
func Neq(field string, value any) Filter { return Filter{Field: field, Op: OpNeq, Value: value} }

// ILike builds a case-insensitive pattern filter.
func ILike(field string, pattern string) Filter {
	return Filter{Field: field, Op: OpILike, Value: pattern}
}

// IsNull builds an IS NULL filter.
func IsNull(field string) Filter { return Filter{Field: field, Op: OpIs, Value: "null"} }

// NotNull builds an IS NOT NULL filter.
func NotNull(field string) Filter { return Filter{Field: field, Op: OpIs, Value: "not.null"} }

func encodeFilters(filters []Filter) url.Values {
	q := url.Values{}
	for _, f := range filters {
		q.Add(f.Field, fmt.Sprintf("%s.%v", f.Op, f.Value))
	}
	return q
}

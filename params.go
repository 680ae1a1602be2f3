package client

import (
	"fmt"
	"strings"
)

// Verbosity levels accepted by the server. The verbosity travels as a bare
// token in the query string, not as a key=value pair.
const (
	VerbosityMinimal = "minimal"
	VerbosityDefault = "default"
	VerbosityVerbose = "verbose"
)

// ResourceParams are the per-call modifiers accepted by single-resource
// endpoints. The zero value adds nothing to the query string.
type ResourceParams struct {
	// Verbosity controls response field depth: minimal, default, or
	// verbose.
	Verbosity string

	// Include lists fields to additionally include in a minimal or
	// default response.
	Include []string

	// Exclude lists fields to specifically exclude from the response.
	Exclude []string
}

// QueryString renders the parameters in the form the server expects, e.g.
// "minimal&include=id,description".
func (p ResourceParams) QueryString() string {
	return strings.Join(p.parts(), "&")
}

func (p ResourceParams) parts() []string {
	var parts []string

	if p.Verbosity != "" {
		parts = append(parts, p.Verbosity)
	}

	if len(p.Include) > 0 {
		parts = append(parts, "include="+strings.Join(p.Include, ","))
	}

	if len(p.Exclude) > 0 {
		parts = append(parts, "exclude="+strings.Join(p.Exclude, ","))
	}

	return parts
}

// CollectionParams are the per-call modifiers accepted by collection
// endpoints: the resource modifiers plus paging, ordering, and filtering.
type CollectionParams struct {
	ResourceParams

	// Top is the number of records returned in the page; the server
	// default is 20.
	Top int

	// Skip is the number of records to skip when paging.
	Skip int

	// OrderByField names the field to sort on. OrderByOrder is "asc" or
	// "desc" and defaults to "asc" when a field is set without it.
	OrderByField string
	OrderByOrder string

	// FilterField, FilterOperator, and FilterValue form a single filter
	// clause, e.g. field "id", operator "eq", value "123". Operators are
	// contains|endswith|startswith|eq|ne|le|lt|ge|gt.
	FilterField    string
	FilterOperator string
	FilterValue    string

	// FilterString is a complete filter expression for complex cases,
	// e.g. "(id eq '123' or description eq 'my item') and status ne
	// 'active'", without the leading "$filter=". When set it overrides
	// the single-clause fields.
	FilterString string
}

// QueryString renders the parameters in the form the server expects, e.g.
// "minimal&$top=10&$filter=id+eq+'123'".
func (p CollectionParams) QueryString() string {
	parts := p.ResourceParams.parts()

	if p.Top > 0 {
		parts = append(parts, fmt.Sprintf("$top=%d", p.Top))
	}

	if p.Skip > 0 {
		parts = append(parts, fmt.Sprintf("$skip=%d", p.Skip))
	}

	if p.OrderByField != "" {
		order := p.OrderByOrder
		if order == "" {
			order = "asc"
		}

		// The clause travels verbatim in the request line, so the space
		// between field and order must be escaped like the filter's.
		parts = append(parts, escapeFilter(fmt.Sprintf("$orderby=%s %s", p.OrderByField, order)))
	}

	switch {
	case p.FilterString != "":
		parts = append(parts, escapeFilter("$filter="+p.FilterString))
	case p.FilterField != "":
		parts = append(parts, escapeFilter(
			fmt.Sprintf("$filter=%s %s '%s'", p.FilterField, p.FilterOperator, p.FilterValue)))
	}

	return strings.Join(parts, "&")
}

// eqFilter builds the minimal-verbosity equality lookup used by the
// guid-with-filter helpers.
func eqFilter(field, value string) CollectionParams {
	return CollectionParams{
		ResourceParams: ResourceParams{Verbosity: VerbosityMinimal},
		FilterField:    field,
		FilterOperator: "eq",
		FilterValue:    value,
	}
}

// eqFilterVerbosity is eqFilter with a caller-chosen verbosity, defaulting
// to the server's default depth when none is given.
func eqFilterVerbosity(field, value, verbosity string) CollectionParams {
	p := eqFilter(field, value)

	if verbosity == "" {
		verbosity = VerbosityDefault
	}

	p.Verbosity = verbosity

	return p
}

// escapeFilter reformats a filter expression for the query string: single
// quotes are backslash-escaped and spaces become "+", so a value like
// "O'Brien test" survives the round trip.
func escapeFilter(s string) string {
	s = strings.ReplaceAll(s, "'", `\'`)

	return strings.ReplaceAll(s, " ", "+")
}

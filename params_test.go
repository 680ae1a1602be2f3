package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceParams_QueryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", ResourceParams{}.QueryString())

	assert.Equal(t, "minimal", ResourceParams{Verbosity: VerbosityMinimal}.QueryString())

	p := ResourceParams{
		Verbosity: VerbosityDefault,
		Include:   []string{"id", "description"},
		Exclude:   []string{"statusReference"},
	}
	assert.Equal(t, "default&include=id,description&exclude=statusReference", p.QueryString())
}

func TestCollectionParams_PagingAndOrdering(t *testing.T) {
	t.Parallel()

	p := CollectionParams{
		ResourceParams: ResourceParams{Verbosity: VerbosityVerbose},
		Top:            50,
		Skip:           100,
		OrderByField:   "id",
	}
	assert.Equal(t, "verbose&$top=50&$skip=100&$orderby=id+asc", p.QueryString())

	p.OrderByOrder = "desc"
	assert.Equal(t, "verbose&$top=50&$skip=100&$orderby=id+desc", p.QueryString())
}

func TestCollectionParams_FilterEscaping(t *testing.T) {
	t.Parallel()

	p := CollectionParams{
		FilterField:    "lastName",
		FilterOperator: "eq",
		FilterValue:    "O'Brien test",
	}

	assert.Equal(t, `$filter=lastName+eq+\'O\'Brien+test\'`, p.QueryString())
}

func TestCollectionParams_FilterStringOverridesClauseFields(t *testing.T) {
	t.Parallel()

	p := CollectionParams{
		FilterField:    "id",
		FilterOperator: "eq",
		FilterValue:    "ignored",
		FilterString:   "id eq '123' or description eq 'my item'",
	}

	assert.Equal(t, `$filter=id+eq+\'123\'+or+description+eq+\'my+item\'`, p.QueryString())
}

// unescapeFilter reverses escapeFilter the way the server does, so the
// escaped form must round-trip to the same logical filter.
func unescapeFilter(s string) string {
	s = strings.ReplaceAll(s, "+", " ")

	return strings.ReplaceAll(s, `\'`, "'")
}

func TestEscapeFilter_RoundTrips(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"O'Brien test",
		"plain",
		"two  spaces",
		"quote'inside value",
	}

	for _, in := range inputs {
		assert.Equal(t, in, unescapeFilter(escapeFilter(in)), "input %q", in)
	}
}

func TestEqFilter(t *testing.T) {
	t.Parallel()

	p := eqFilter("id", "ADJ 100")

	assert.Equal(t, VerbosityMinimal, p.Verbosity)
	assert.Equal(t, `minimal&$filter=id+eq+\'ADJ+100\'`, p.QueryString())
}

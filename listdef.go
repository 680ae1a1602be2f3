package client

import "fmt"

// A Reference identifies an item by exactly one of guid, id, or
// description, in the shape the server expects for reference fields.
type Reference map[string]string

var allowedReferenceKeys = map[string]bool{
	"guid":        true,
	"id":          true,
	"description": true,
}

func (r Reference) validate() error {
	if len(r) != 1 {
		return fmt.Errorf("reference must contain a single key, found %v", r)
	}

	for key := range r {
		if !allowedReferenceKeys[key] {
			return fmt.Errorf("reference key must be one of guid, id, or description, found %q", key)
		}
	}

	return nil
}

// ListDefinition builds the request bodies for list-related API calls: the
// items and cross-references a list includes or excludes.
type ListDefinition struct {
	IncludedItems []Reference
	ExcludedItems []Reference
	IncludedXrefs []Reference
	ExcludedXrefs []Reference
}

// Validate checks every reference in the definition.
func (d ListDefinition) Validate() error {
	for _, refs := range [][]Reference{d.IncludedItems, d.ExcludedItems, d.IncludedXrefs, d.ExcludedXrefs} {
		for _, ref := range refs {
			if err := ref.validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

func listEntries(action string, included, excluded []Reference) []map[string]any {
	entries := make([]map[string]any, 0, len(included)+len(excluded))

	for _, ref := range included {
		entries = append(entries, map[string]any{
			"_action":       action,
			"excludeFlag":   false,
			"itemReference": ref,
		})
	}

	for _, ref := range excluded {
		entries = append(entries, map[string]any{
			"_action":       action,
			"excludeFlag":   true,
			"itemReference": ref,
		})
	}

	return entries
}

// ListBody assembles the JSON body for a list create or update call.
// detailKey and xrefsKey name the fields the target list type uses for its
// detail and cross-reference arrays; action is the server-side row action
// (e.g. "create").
func (d ListDefinition) ListBody(action, description, detailKey, xrefsKey string, includeOnlyCommonItems bool, definitionText string) (map[string]any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	body := map[string]any{
		detailKey:     listEntries(action, d.IncludedItems, d.ExcludedItems),
		xrefsKey:      listEntries(action, d.IncludedXrefs, d.ExcludedXrefs),
		"description": description,
	}

	if includeOnlyCommonItems {
		body["includeOnlyCommonItemsFlag"] = true
	}

	if definitionText != "" {
		body["definitionText"] = definitionText
	}

	return body, nil
}

package model

import "sort"

// Detail is one key/value row in the invoice detail table.
type Detail struct {
	Key   string
	Value string
}

// Details is an ordered list of detail pairs. The order is preserved as
// given, so callers control row order in the rendered detail table.
type Details []Detail

// DetailsFromMap converts an unordered mapping into Details. Go maps have no
// insertion order, so rows are sorted by key to keep iteration stable.
func DetailsFromMap(m map[string]string) Details {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	details := make(Details, 0, len(m))
	for _, k := range keys {
		details = append(details, Detail{Key: k, Value: m[k]})
	}
	return details
}

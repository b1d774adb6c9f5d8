package locations

import "strings"

// dedupKey builds the case-normalized composite key used to collapse
// candidates that resolve to the same area.
func dedupKey(city, state, zip string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" +
		strings.ToLower(strings.TrimSpace(state)) + "|" +
		strings.TrimSpace(zip)
}

// dedupOptions keeps the first Option per (city, state, zip) triple,
// preserving rank order.
func dedupOptions(options []Option) []Option {
	seen := make(map[string]bool, len(options))
	unique := make([]Option, 0, len(options))
	for _, opt := range options {
		key := dedupKey(opt.Address.City, opt.Address.State, opt.Address.Postcode)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, opt)
	}
	return unique
}

// dedupRows keeps the first gazetteer row per composite key.
func dedupRows(rows []GazetteerRow) []GazetteerRow {
	seen := make(map[string]bool, len(rows))
	unique := make([]GazetteerRow, 0, len(rows))
	for _, row := range rows {
		key := dedupKey(row.City, row.State, row.Zip)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, row)
	}
	return unique
}

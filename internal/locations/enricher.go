package locations

import "context"

// maxEnrichLookups caps the reverse lookups spent on one ZIP query. Provider
// postcode results often omit the city name; a small bounded number of
// reverse lookups recovers most of that value without flooding the provider.
const maxEnrichLookups = 3

// enrichZipCandidates backfills missing city/state on the first few
// candidates of a ZIP query via reverse geocoding. Enrichment runs before
// ranking, so it is the provider's original head of the list that gets
// enriched. Retrieved fields fill only gaps; attributes the candidate
// already carries are never overwritten. Lookup failures leave the
// candidate as-is.
func enrichZipCandidates(ctx context.Context, geo Geocoder, candidates []RawCandidate) {
	n := len(candidates)
	if n > maxEnrichLookups {
		n = maxEnrichLookups
	}

	for i := 0; i < n; i++ {
		c := &candidates[i]
		if hasCity(*c) || candidateZip(*c) == "" || c.Lat == "" || c.Lon == "" {
			continue
		}

		addr, err := geo.Reverse(ctx, c.Lat, c.Lon)
		if err != nil || addr == nil {
			continue
		}
		c.Address = mergeMissing(c.Address, *addr)
	}
}

// filterZipMatches keeps candidates relevant to an exact 5-digit query:
// either the candidate's ZIP equals the query or the candidate is itself a
// postcode result.
func filterZipMatches(candidates []RawCandidate, zip string) []RawCandidate {
	kept := make([]RawCandidate, 0, len(candidates))
	for _, c := range candidates {
		if candidateZip(c) == zip || c.Type == "postcode" {
			kept = append(kept, c)
		}
	}
	return kept
}

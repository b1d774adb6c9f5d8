package locations

// The classifier keeps genuine geographic areas and drops point-of-interest
// noise. It is a whitelist: a candidate survives only when it matches one of
// the accepted shapes, so unknown provider categories fail closed.

// excludedCategories are always dropped regardless of type. These represent
// points of interest (hotels, shops, offices), not areas a rental fleet serves.
var excludedCategories = map[string]bool{
	"amenity":  true,
	"tourism":  true,
	"shop":     true,
	"leisure":  true,
	"building": true,
	"office":   true,
	"man_made": true,
}

// acceptedPlaceTypes are the settlement and region types kept for
// category "place".
var acceptedPlaceTypes = map[string]bool{
	"state":        true,
	"city":         true,
	"town":         true,
	"village":      true,
	"municipality": true,
	"suburb":       true,
	"hamlet":       true,
	"locality":     true,
}

// keepCandidate reports whether a single raw candidate is a genuine area.
func keepCandidate(c RawCandidate) bool {
	if excludedCategories[c.Category] {
		return false
	}
	if c.Category == "aeroway" && c.Type == "aerodrome" {
		return true
	}
	if c.Category == "place" && acceptedPlaceTypes[c.Type] {
		return true
	}
	if c.Category == "boundary" && c.Type == "administrative" {
		return true
	}
	if c.Type == "postcode" {
		return true
	}
	return false
}

// classify filters raw provider results down to genuine places, preserving
// provider order.
func classify(candidates []RawCandidate) []RawCandidate {
	kept := make([]RawCandidate, 0, len(candidates))
	for _, c := range candidates {
		if keepCandidate(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

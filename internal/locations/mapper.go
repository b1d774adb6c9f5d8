package locations

import "strings"

// mapCandidate converts one classified, ranked candidate into the canonical
// Option. The primary label depends on whether the original query was a ZIP.
func mapCandidate(c RawCandidate, zipQuery bool) Option {
	city := pickCity(c.Address)
	state := pickState(c.Address)
	zip := candidateZip(c)

	var primary string
	switch {
	case zipQuery:
		if city != "" {
			primary = strings.TrimSpace(city + ", " + state + " " + zip)
		} else {
			primary = strings.TrimSpace(state + " " + zip)
		}
	case c.Category == "place" && c.Type == "state":
		primary = firstNonEmpty(state, displayHead(c.DisplayName), "State")
	case c.Category == "aeroway" && c.Type == "aerodrome":
		primary = firstNonEmpty(displayHead(c.DisplayName), "Airport")
	default:
		if city != "" {
			primary = strings.TrimSpace(city + ", " + state)
		} else {
			primary = firstNonEmpty(state, displayHead(c.DisplayName), "Location")
		}
	}

	return Option{
		ID:       c.PlaceID,
		Primary:  primary,
		Subtitle: subtitleFor(city, state, zip),
		Zip:      zip,
		Address: AddressBundle{
			City:     city,
			State:    state,
			Postcode: zip,
		},
	}
}

// mapRow converts a gazetteer row into an Option for the offline path.
func mapRow(row GazetteerRow) Option {
	return Option{
		ID:       row.City + "-" + row.State + "-" + row.Zip,
		Primary:  row.City + ", " + row.State + " " + row.Zip,
		Subtitle: row.City + ", " + row.State,
		Zip:      row.Zip,
		Address: AddressBundle{
			City:     row.City,
			State:    row.State,
			Postcode: row.Zip,
		},
	}
}

// subtitleFor joins the non-empty address parts with the country suffix.
func subtitleFor(city, state, zip string) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{city, state, zip, "United States"} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

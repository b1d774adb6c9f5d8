package locations

import (
	"regexp"
	"strings"
)

// AddressBundle is a structured address snapshot. Every field is optional;
// an empty string means the provider did not report that component.
type AddressBundle struct {
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// Option is the canonical location returned to every consumer: the booking
// search form, the reservation lookup form, and the assistant widget. Options
// are immutable value objects created fresh per query.
type Option struct {
	ID       string        `json:"id"`
	Primary  string        `json:"primary"`
	Subtitle string        `json:"subtitle"`
	Zip      string        `json:"zip"`
	Address  AddressBundle `json:"address"`
}

// RawCandidate is one unprocessed geocoder result, kept only for the duration
// of a single query's pipeline run.
type RawCandidate struct {
	PlaceID     string
	Category    string
	Type        string
	DisplayName string
	Lat         string
	Lon         string
	Address     ProviderAddress
}

// ProviderAddress mirrors the relevant parts of the geocoder address payload.
// The provider reports a settlement under one of several keys depending on
// the place kind, so consumers go through pickCity/pickState instead of
// reading fields directly.
type ProviderAddress struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	State        string `json:"state"`
	Region       string `json:"region"`
	Postcode     string `json:"postcode"`
}

// GazetteerRow is a static (city, state, zip) record in the offline table.
type GazetteerRow struct {
	City  string
	State string
	Zip   string
}

var (
	zipInTextPattern = regexp.MustCompile(`\b\d{5}\b`)
	zipQueryPattern  = regexp.MustCompile(`^\d{5}$`)
	zipPrefixPattern = regexp.MustCompile(`^\d{1,5}$`)
)

// IsZipQuery reports whether the query text is exactly a 5-digit postal code.
func IsZipQuery(query string) bool {
	return zipQueryPattern.MatchString(strings.TrimSpace(query))
}

// ExtractZip pulls the first 5-digit ZIP out of free text, or "".
func ExtractZip(text string) string {
	return zipInTextPattern.FindString(text)
}

// pickCity returns the best settlement name the provider reported.
func pickCity(addr ProviderAddress) string {
	switch {
	case addr.City != "":
		return addr.City
	case addr.Town != "":
		return addr.Town
	case addr.Village != "":
		return addr.Village
	default:
		return addr.Municipality
	}
}

// pickState prefers the state field, falling back to region.
func pickState(addr ProviderAddress) string {
	if addr.State != "" {
		return addr.State
	}
	return addr.Region
}

// displayHead returns the first comma segment of a display name.
func displayHead(displayName string) string {
	head, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(head)
}

// candidateZip extracts the candidate's 5-digit ZIP from its address, or "".
func candidateZip(c RawCandidate) string {
	return ExtractZip(c.Address.Postcode)
}

// hasCity reports whether any settlement field is populated.
func hasCity(c RawCandidate) bool {
	return pickCity(c.Address) != ""
}

// mergeMissing fills empty fields of dst from src without overwriting
// anything the candidate already knows.
func mergeMissing(dst, src ProviderAddress) ProviderAddress {
	if dst.City == "" {
		dst.City = src.City
	}
	if dst.Town == "" {
		dst.Town = src.Town
	}
	if dst.Village == "" {
		dst.Village = src.Village
	}
	if dst.Municipality == "" {
		dst.Municipality = src.Municipality
	}
	if dst.State == "" {
		dst.State = src.State
	}
	if dst.Region == "" {
		dst.Region = src.Region
	}
	if dst.Postcode == "" {
		dst.Postcode = src.Postcode
	}
	return dst
}

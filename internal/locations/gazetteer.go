package locations

import "strings"

// The gazetteer is the bounded offline reference table: Texas metro cities
// with their ZIP codes. It is defined once at startup and never mutated, so
// the offline path works with no network dependency at all.

var gazetteerRows = []GazetteerRow{
	// Houston metro
	{City: "Houston", State: "TX", Zip: "77001"},
	{City: "Houston", State: "TX", Zip: "77002"},
	{City: "Houston", State: "TX", Zip: "77003"},
	{City: "Houston", State: "TX", Zip: "77004"},
	{City: "Houston", State: "TX", Zip: "77005"},
	{City: "Houston", State: "TX", Zip: "77006"},
	{City: "Houston", State: "TX", Zip: "77007"},
	{City: "Houston", State: "TX", Zip: "77008"},
	{City: "Houston", State: "TX", Zip: "77009"},
	{City: "Houston", State: "TX", Zip: "77010"},
	{City: "Pearland", State: "TX", Zip: "77581"},
	{City: "Pearland", State: "TX", Zip: "77584"},
	{City: "Sugar Land", State: "TX", Zip: "77479"},
	{City: "Sugar Land", State: "TX", Zip: "77478"},
	{City: "Missouri City", State: "TX", Zip: "77459"},
	{City: "Friendswood", State: "TX", Zip: "77546"},

	// Dallas / Fort Worth
	{City: "Dallas", State: "TX", Zip: "75201"},
	{City: "Dallas", State: "TX", Zip: "75202"},
	{City: "Dallas", State: "TX", Zip: "75203"},
	{City: "Dallas", State: "TX", Zip: "75204"},
	{City: "Dallas", State: "TX", Zip: "75205"},
	{City: "Plano", State: "TX", Zip: "75023"},
	{City: "Plano", State: "TX", Zip: "75024"},
	{City: "Irving", State: "TX", Zip: "75038"},
	{City: "Irving", State: "TX", Zip: "75039"},
	{City: "Frisco", State: "TX", Zip: "75033"},
	{City: "Frisco", State: "TX", Zip: "75034"},
	{City: "Fort Worth", State: "TX", Zip: "76102"},
	{City: "Fort Worth", State: "TX", Zip: "76107"},

	// Austin
	{City: "Austin", State: "TX", Zip: "73301"},
	{City: "Austin", State: "TX", Zip: "78701"},
	{City: "Austin", State: "TX", Zip: "78702"},
	{City: "Austin", State: "TX", Zip: "78703"},
	{City: "Austin", State: "TX", Zip: "78704"},
	{City: "Round Rock", State: "TX", Zip: "78664"},
	{City: "Pflugerville", State: "TX", Zip: "78660"},

	// San Antonio
	{City: "San Antonio", State: "TX", Zip: "78201"},
	{City: "San Antonio", State: "TX", Zip: "78205"},
	{City: "San Antonio", State: "TX", Zip: "78209"},
	{City: "San Antonio", State: "TX", Zip: "78216"},

	// El Paso
	{City: "El Paso", State: "TX", Zip: "79901"},
	{City: "El Paso", State: "TX", Zip: "79902"},

	// Corpus Christi
	{City: "Corpus Christi", State: "TX", Zip: "78401"},
	{City: "Corpus Christi", State: "TX", Zip: "78404"},

	// Lubbock
	{City: "Lubbock", State: "TX", Zip: "79401"},
	{City: "Lubbock", State: "TX", Zip: "79410"},

	// McAllen / Rio Grande Valley
	{City: "McAllen", State: "TX", Zip: "78501"},
	{City: "Edinburg", State: "TX", Zip: "78539"},

	// College Station
	{City: "College Station", State: "TX", Zip: "77840"},
	{City: "Bryan", State: "TX", Zip: "77801"},
}

// stateNames maps full state names to their 2-letter codes for the states
// covered by the gazetteer.
var stateNames = map[string]string{
	"texas": "TX",
}

// Gazetteer holds the read-only reference table.
type Gazetteer struct {
	rows []GazetteerRow
}

// NewGazetteer returns the store backed by the built-in Texas table.
func NewGazetteer() *Gazetteer {
	return &Gazetteer{rows: gazetteerRows}
}

// NewGazetteerWithRows builds a store over a caller-supplied table; used in
// tests and by deployments that swap in a different region.
func NewGazetteerWithRows(rows []GazetteerRow) *Gazetteer {
	return &Gazetteer{rows: rows}
}

// Len reports the number of rows in the table.
func (g *Gazetteer) Len() int {
	return len(g.rows)
}

// Match returns rows matching the free-text query, deduplicated by
// (city, state, zip) and truncated to limit. A pure 1-5 digit query matches
// on ZIP prefix; anything else matches city, state (code or full name), a
// "city state" concatenation, or ZIP prefix as a fallback.
func (g *Gazetteer) Match(query string, limit int) []GazetteerRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	matched := make([]GazetteerRow, 0, limit)
	zipOnly := zipPrefixPattern.MatchString(q)

	for _, row := range g.rows {
		if zipOnly {
			if strings.HasPrefix(row.Zip, q) {
				matched = append(matched, row)
			}
			continue
		}
		if matchRowText(row, q) {
			matched = append(matched, row)
		}
	}

	matched = dedupRows(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// matchRowText applies the flexible non-numeric matching rules.
func matchRowText(row GazetteerRow, q string) bool {
	city := strings.ToLower(row.City)
	state := strings.ToLower(row.State)

	if strings.Contains(city, q) {
		return true
	}
	if state == q || stateNames[q] == row.State {
		return true
	}
	if strings.Contains(city+" "+state, q) || strings.Contains(city+","+state, q) {
		return true
	}
	return strings.HasPrefix(row.Zip, q)
}

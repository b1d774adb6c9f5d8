package locations

import "testing"

func TestGazetteerMatchZipPrefix(t *testing.T) {
	g := NewGazetteer()

	rows := g.Match("77", 50)
	if len(rows) == 0 {
		t.Fatal("expected matches for zip prefix 77")
	}
	for _, row := range rows {
		if row.Zip[:2] != "77" {
			t.Fatalf("row %+v does not match prefix 77", row)
		}
	}
}

func TestGazetteerMatchExactZip(t *testing.T) {
	g := NewGazetteer()

	rows := g.Match("77001", 10)
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row for 77001, got %d", len(rows))
	}
	if rows[0].City != "Houston" {
		t.Fatalf("got city %q", rows[0].City)
	}
}

func TestGazetteerMatchCitySubstringCaseInsensitive(t *testing.T) {
	g := NewGazetteer()

	rows := g.Match("austin", 10)
	if len(rows) == 0 {
		t.Fatal("expected matches for austin")
	}
	for _, row := range rows {
		if row.City != "Austin" {
			t.Fatalf("unexpected city %q", row.City)
		}
	}

	// Partial input matches too.
	if len(g.Match("Aus", 10)) == 0 {
		t.Fatal("expected matches for partial city input")
	}
}

func TestGazetteerMatchFullStateName(t *testing.T) {
	g := NewGazetteer()

	rows := g.Match("texas", 100)
	if len(rows) == 0 {
		t.Fatal("expected the whole table for texas")
	}
	for _, row := range rows {
		if row.State != "TX" {
			t.Fatalf("unexpected state %q", row.State)
		}
	}
}

func TestGazetteerMatchCityStateConcatenation(t *testing.T) {
	g := NewGazetteer()

	if len(g.Match("houston tx", 10)) == 0 {
		t.Fatal(`expected matches for "houston tx"`)
	}
	if len(g.Match("dallas t", 10)) == 0 {
		t.Fatal(`expected matches for "dallas t"`)
	}
}

func TestGazetteerMatchTruncatesToLimit(t *testing.T) {
	g := NewGazetteer()

	rows := g.Match("texas", 5)
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
}

func TestGazetteerMatchDeduplicatesRows(t *testing.T) {
	g := NewGazetteerWithRows([]GazetteerRow{
		{City: "Waco", State: "TX", Zip: "76701"},
		{City: "Waco", State: "TX", Zip: "76701"},
	})

	rows := g.Match("waco", 10)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after dedup, got %d", len(rows))
	}
}

func TestGazetteerMatchEmptyQueryReturnsNothing(t *testing.T) {
	g := NewGazetteer()

	if rows := g.Match("   ", 10); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestGazetteerMatchUnknownTextReturnsNothing(t *testing.T) {
	g := NewGazetteer()

	if rows := g.Match("zzzz", 10); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

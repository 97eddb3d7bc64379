package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	tbl := NewTable(DefaultNullValue)
	tbl.Set("E", "id", 3)
	if !tbl.Has("E", "id") {
		t.Fatal("want Has true after Set")
	}
	if v := tbl.Value("E", "id"); v != 3 {
		t.Fatalf("want 3, got %d", v)
	}
	if tbl.Has("E", "+") {
		t.Fatal("want Has false for an unset cell")
	}
	if v := tbl.Value("E", "+"); v != DefaultNullValue {
		t.Fatalf("want null value, got %d", v)
	}
}

func TestSetOverwritesExistingCell(t *testing.T) {
	tbl := NewTable(DefaultNullValue)
	tbl.Set("E", "id", 1)
	tbl.Set("E", "id", 2)
	if tbl.ValueCount() != 1 {
		t.Fatalf("want 1 cell after overwrite, got %d", tbl.ValueCount())
	}
	if v := tbl.Value("E", "id"); v != 2 {
		t.Fatalf("want overwritten value 2, got %d", v)
	}
}

func TestEachVisitsInInsertionOrder(t *testing.T) {
	tbl := NewTable(DefaultNullValue)
	tbl.Set("E", "id", 0)
	tbl.Set("E", "(", 1)
	tbl.Set("T", "id", 2)

	var rows []string
	tbl.Each(func(nt, term string, value int32) {
		rows = append(rows, nt+"/"+term)
	})
	want := []string{"E/id", "E/(", "T/id"}
	if len(rows) != len(want) {
		t.Fatalf("want %d cells, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("cell %d: want %s, got %s", i, want[i], rows[i])
		}
	}
}

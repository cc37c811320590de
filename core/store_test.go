package core

import "testing"

func TestStoreInsertAndLookup(t *testing.T) {
	s := NewStore()
	c1, _ := NewCoordinate(map[string]Value{"foo": 1})
	c2, _ := NewCoordinate(map[string]Value{"foo": 2})

	item1 := NewDataGraphItem("thing", c1, Available, nil)
	item2 := NewDataGraphItem("thing", c2, Available, nil)

	if err := s.Insert("thing", item1); err != nil {
		t.Fatalf("insert item1: %v", err)
	}
	if err := s.Insert("thing", item2); err != nil {
		t.Fatalf("insert item2: %v", err)
	}

	got, err := s.Lookup("thing", c1)
	if err != nil {
		t.Fatalf("lookup c1: %v", err)
	}
	if got != item1 {
		t.Error("lookup should return the exact inserted item")
	}

	if _, err := s.Lookup("thing", c2.Set("foo", 3)); err == nil {
		t.Error("lookup of an unknown coordinate should fail")
	}
	if _, err := s.Lookup("nope", EmptyCoordinate()); err == nil {
		t.Error("lookup of an unknown name should fail")
	} else if _, ok := err.(*MissingError); !ok {
		t.Errorf("expected *MissingError, got %T", err)
	}
}

func TestStoreInsertDuplicateCoordinate(t *testing.T) {
	s := NewStore()
	c, _ := NewCoordinate(map[string]Value{"foo": 1})
	if err := s.Insert("thing", NewDataGraphItem("thing", c, Available, nil)); err != nil {
		t.Fatal(err)
	}
	err := s.Insert("thing", NewDataGraphItem("thing", c, Available, nil))
	if err == nil {
		t.Fatal("expected DuplicateCoordinateError")
	}
	if _, ok := err.(*DuplicateCoordinateError); !ok {
		t.Errorf("expected *DuplicateCoordinateError, got %T", err)
	}
}

func TestStoreInsertDimensionMismatch(t *testing.T) {
	s := NewStore()
	c1, _ := NewCoordinate(map[string]Value{"foo": 1})
	c2, _ := NewCoordinate(map[string]Value{"bar": 1})
	if err := s.Insert("thing", NewDataGraphItem("thing", c1, Available, nil)); err != nil {
		t.Fatal(err)
	}
	err := s.Insert("thing", NewDataGraphItem("thing", c2, Available, nil))
	if _, ok := err.(*DimensionMismatchError); !ok {
		t.Errorf("expected *DimensionMismatchError, got %T (%v)", err, err)
	}
}

func TestStoreLookupPartialEmptyIsLegal(t *testing.T) {
	s := NewStore()
	c, _ := NewCoordinate(map[string]Value{"foo": 1})
	if err := s.Insert("thing", NewDataGraphItem("thing", c, Available, nil)); err != nil {
		t.Fatal(err)
	}
	partial, _ := NewCoordinate(map[string]Value{"foo": 99})
	items := s.LookupPartial("thing", partial)
	if items != nil {
		t.Errorf("expected a nil/empty slice for no match, got %v", items)
	}
}

func TestStoreIterItemsOrder(t *testing.T) {
	s := NewStore()
	cA, _ := NewCoordinate(map[string]Value{"foo": 1})
	cB, _ := NewCoordinate(map[string]Value{"foo": 2})

	_ = s.Insert("b_name", NewDataGraphItem("b_name", EmptyCoordinate(), Available, nil))
	_ = s.Insert("a_name", NewDataGraphItem("a_name", cA, Available, nil))
	_ = s.Insert("a_name", NewDataGraphItem("a_name", cB, Available, nil))

	var order []string
	s.IterItems(func(item *GraphItem) {
		order = append(order, item.String())
	})

	// Insertion order of names is b_name then a_name, regardless of
	// alphabetical order — iteration must follow insertion, not sorting.
	if len(order) != 3 {
		t.Fatalf("expected 3 items, got %d", len(order))
	}
	want := []string{"data:b_name{}", "data:a_name{foo=1}", "data:a_name{foo=2}"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("IterItems item %d = %q, want %q", i, order[i], want[i])
		}
	}
	if s.Names()[0] != "b_name" || s.Names()[1] != "a_name" {
		t.Errorf("expected array name order [b_name a_name], got %v", s.Names())
	}
}

func TestArrayZeroDimensional(t *testing.T) {
	s := NewStore()
	item := NewDataGraphItem("oneoff", EmptyCoordinate(), Available, nil)
	if err := s.Insert("oneoff", item); err != nil {
		t.Fatal(err)
	}
	arr, ok := s.Array("oneoff")
	if !ok {
		t.Fatal("expected array to exist")
	}
	if len(arr.DimensionNames()) != 0 {
		t.Errorf("expected zero-dimensional array, got dims %v", arr.DimensionNames())
	}
	if len(arr.Items()) != 1 {
		t.Errorf("expected exactly one item, got %d", len(arr.Items()))
	}
}

package content

import (
	"reflect"
	"testing"
)

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilterAllEmptySearchReturnsWholeCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	got := Filter(catalog, CategoryAll, "")
	if !reflect.DeepEqual(ids(got), []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("expected full catalog in order, got %v", ids(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	catalog := DefaultCatalog()

	got := Filter(catalog, "Fitness", "")
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("expected only the fitness item, got %v", ids(got))
	}
	for _, item := range got {
		if item.Category != "Fitness" {
			t.Fatalf("non-fitness item passed: %+v", item)
		}
	}

	got = Filter(catalog, "Education", "")
	if !reflect.DeepEqual(ids(got), []int{3}) {
		t.Fatalf("expected the education item, got %v", ids(got))
	}
}

func TestFilterSearchCaseInsensitiveAcrossFields(t *testing.T) {
	catalog := DefaultCatalog()

	// "ocd" appears in item 3's title and its tags, regardless of case.
	got := Filter(catalog, CategoryAll, "ocd")
	if !reflect.DeepEqual(ids(got), []int{3}) {
		t.Fatalf("expected OCD item, got %v", ids(got))
	}

	// Description match.
	got = Filter(catalog, CategoryAll, "PHILIPPIANS")
	if !reflect.DeepEqual(ids(got), []int{4}) {
		t.Fatalf("expected meditation item, got %v", ids(got))
	}

	// Tag-only match: "morning-routine" tags items 2 and 5, in catalog order.
	got = Filter(catalog, CategoryAll, "morning-routine")
	if !reflect.DeepEqual(ids(got), []int{2, 5}) {
		t.Fatalf("expected items 2 and 5 in order, got %v", ids(got))
	}
}

func TestFilterCategoryAndSearchCombine(t *testing.T) {
	catalog := DefaultCatalog()

	// "recovery" matches many items, but only one is Fitness.
	got := Filter(catalog, "Fitness", "recovery")
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("expected fitness+recovery to yield item 2, got %v", ids(got))
	}

	got = Filter(catalog, "Fitness", "ocd")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	before := ids(catalog)
	_ = Filter(catalog, "Education", "triggers")
	if !reflect.DeepEqual(before, ids(catalog)) {
		t.Fatal("filter reordered the catalog")
	}
}

func TestEngineRecomputesOnInputChange(t *testing.T) {
	e := NewEngine(DefaultCatalog())

	if len(e.Results()) != 6 {
		t.Fatalf("expected full initial view, got %v", ids(e.Results()))
	}

	e.SetCategory("Spiritual Guidance")
	if !reflect.DeepEqual(ids(e.Results()), []int{4}) {
		t.Fatalf("expected spiritual item, got %v", ids(e.Results()))
	}

	e.SetSearch("peace")
	if !reflect.DeepEqual(ids(e.Results()), []int{4}) {
		t.Fatalf("expected spiritual item for peace, got %v", ids(e.Results()))
	}

	e.SetCategory(CategoryAll)
	e.SetSearch("")
	if len(e.Results()) != 6 {
		t.Fatalf("expected full view restored, got %v", ids(e.Results()))
	}
}

func TestEngineCachesUnchangedInputs(t *testing.T) {
	e := NewEngine(DefaultCatalog())
	e.SetCategory("Fitness")
	first := e.Results()

	// Setting the same inputs again must not rebuild the slice.
	e.SetCategory("Fitness")
	e.SetSearch("")
	second := e.Results()

	if &first[0] != &second[0] {
		t.Fatal("expected cached result for unchanged inputs")
	}

	cat, search := e.Inputs()
	if cat != "Fitness" || search != "" {
		t.Fatalf("unexpected inputs: %q %q", cat, search)
	}
}

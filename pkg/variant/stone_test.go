package variant

import (
	"testing"

	"github.com/gemfold/atelier/pkg/catalogs"
)

func testStones() []catalogs.Stone {
	return []catalogs.Stone{
		{ID: "st-a", Name: "1.0 CT", Price: 300},
		{ID: "st-b", Name: "1.5 CT", Price: 450},
		{ID: "st-c", Name: "2.0 CT", Price: 700},
	}
}

func TestResolveStone(t *testing.T) {
	stones := testStones()

	t.Run("FirstMatchWins", func(t *testing.T) {
		selected := ResolveStone(StoneByName("1.0"), stones)
		if selected == nil || selected.ID == nil {
			t.Fatal("expected a resolved selection")
		}
		if *selected.ID != "st-a" {
			t.Errorf("expected first substring match st-a, got %s", *selected.ID)
		}
		if selected.Name != "1.0 CT" || selected.Price != 300 {
			t.Errorf("expected canonical name and price, got %+v", selected)
		}
	})

	t.Run("LooseSubstringIsByDesignFirstInCatalogOrder", func(t *testing.T) {
		// "1.5" is a substring of both "1.5 CT" and "11.5 CT"; whichever
		// appears first in the catalog wins. This pins the documented
		// first-match behavior.
		ambiguous := []catalogs.Stone{
			{ID: "st-big", Name: "11.5 CT", Price: 900},
			{ID: "st-mid", Name: "1.5 CT", Price: 450},
		}
		selected := ResolveStone(StoneByName("1.5"), ambiguous)
		if selected == nil || selected.ID == nil || *selected.ID != "st-big" {
			t.Errorf("expected catalog-order first match st-big, got %+v", selected)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		selected := ResolveStone(StoneByName("1.5 ct"), stones)
		if selected == nil || selected.ID == nil || *selected.ID != "st-b" {
			t.Errorf("expected st-b, got %+v", selected)
		}
	})

	t.Run("UnmatchedNameKeepsNameNilID", func(t *testing.T) {
		selected := ResolveStone(StoneByName("3.0 CT"), stones)
		if selected == nil {
			t.Fatal("unmatched name should still yield a selection")
		}
		if selected.ID != nil {
			t.Error("unmatched name should have a nil id")
		}
		if selected.Name != "3.0 CT" || selected.Price != 0 {
			t.Errorf("expected name-only zero-price selection, got %+v", selected)
		}
	})

	t.Run("IDAcceptedAsIsWithPriceBackfill", func(t *testing.T) {
		selected := ResolveStone(StoneByID("st-b", "custom label", 0), stones)
		if selected == nil || selected.ID == nil || *selected.ID != "st-b" {
			t.Fatalf("expected st-b, got %+v", selected)
		}
		if selected.Price != 450 {
			t.Errorf("expected catalog price backfill 450, got %v", selected.Price)
		}
		if selected.Name != "custom label" {
			t.Errorf("given name should be kept, got %q", selected.Name)
		}
	})

	t.Run("IDNotInCatalogKeepsGivenPrice", func(t *testing.T) {
		selected := ResolveStone(StoneByID("st-z", "Archived", 120), stones)
		if selected == nil || selected.ID == nil || *selected.ID != "st-z" {
			t.Fatalf("expected st-z kept, got %+v", selected)
		}
		if selected.Price != 120 {
			t.Errorf("expected given price 120, got %v", selected.Price)
		}
	})

	t.Run("IDWithoutNameBackfillsName", func(t *testing.T) {
		selected := ResolveStone(StoneByID("st-c", "", 0), stones)
		if selected == nil || selected.Name != "2.0 CT" {
			t.Errorf("expected name backfill, got %+v", selected)
		}
	})

	t.Run("EmptySelection", func(t *testing.T) {
		if got := ResolveStone(NoStone(), stones); got != nil {
			t.Errorf("empty query should resolve to nil, got %+v", got)
		}
		if got := ResolveStone(StoneByName("   "), stones); got != nil {
			t.Errorf("blank name should resolve to nil, got %+v", got)
		}
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		selected := ResolveStone(StoneByName("1.0"), nil)
		if selected == nil || selected.ID != nil {
			t.Errorf("empty catalog should yield name-only selection, got %+v", selected)
		}
	})
}

func TestStoneQueryConstructors(t *testing.T) {
	if StoneByName("").Kind() != StoneQueryNone {
		t.Error("empty name should be the empty selection")
	}
	if StoneByID("", "1.0 CT", 0).Kind() != StoneQueryName {
		t.Error("empty id should degrade to a name query")
	}
	if StoneByRef(nil).Kind() != StoneQueryNone {
		t.Error("nil ref should be the empty selection")
	}

	id := catalogs.StoneID("st-a")
	if StoneByRef(&catalogs.StoneRef{ID: &id, Name: "1.0 CT"}).Kind() != StoneQueryResolved {
		t.Error("ref with id should be a resolved query")
	}
	if StoneByRef(&catalogs.StoneRef{Name: "1.0 CT"}).Kind() != StoneQueryName {
		t.Error("ref without id should be a name query")
	}
}

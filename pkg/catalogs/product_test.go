package catalogs

import (
	"encoding/json"
	"testing"
)

func TestMetalRefUnmarshalJSON(t *testing.T) {
	t.Run("BareID", func(t *testing.T) {
		var ref MetalRef
		if err := json.Unmarshal([]byte(`"m-gold"`), &ref); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if ref.MetalID() != "m-gold" {
			t.Errorf("Expected id 'm-gold', got '%s'", ref.MetalID())
		}
		if ref.Metal != nil {
			t.Error("Bare id form should not populate the record")
		}
	})

	t.Run("PopulatedObject", func(t *testing.T) {
		data := []byte(`{"id":"m-rose","name":"Rose Gold","purityLevels":[{"id":"pl-14","karat":14,"priceMultiplier":1.05}]}`)
		var ref MetalRef
		if err := json.Unmarshal(data, &ref); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if ref.MetalID() != "m-rose" {
			t.Errorf("Expected id 'm-rose', got '%s'", ref.MetalID())
		}
		if ref.Metal == nil || len(ref.Metal.PurityLevels) != 1 {
			t.Errorf("Populated record not carried: %+v", ref.Metal)
		}
	})

	t.Run("MixedList", func(t *testing.T) {
		data := []byte(`{"id":"p1","price":500,"metals":["m-a",{"id":"m-b","name":"B"}]}`)
		var product Product
		if err := json.Unmarshal(data, &product); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		ids := product.MetalIDs()
		if len(ids) != 2 || ids[0] != "m-a" || ids[1] != "m-b" {
			t.Errorf("Unexpected normalized ids: %v", ids)
		}
	})

	t.Run("RoundTripNormalizes", func(t *testing.T) {
		ref := MetalRef{Metal: &Metal{ID: "m-c", Name: "C"}}
		out, err := json.Marshal(ref)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(out) != `"m-c"` {
			t.Errorf("Expected normalized id form, got %s", out)
		}
	})
}

func TestStoneRefUnmarshalJSON(t *testing.T) {
	t.Run("BareName", func(t *testing.T) {
		var ref StoneRef
		if err := json.Unmarshal([]byte(`"1.5 CT"`), &ref); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if ref.Name != "1.5 CT" || ref.ID != nil {
			t.Errorf("Unexpected ref: %+v", ref)
		}
	})

	t.Run("Object", func(t *testing.T) {
		var ref StoneRef
		if err := json.Unmarshal([]byte(`{"id":"st-1","name":"1.0 CT","price":250}`), &ref); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if ref.ID == nil || *ref.ID != "st-1" || ref.Price != 250 {
			t.Errorf("Unexpected ref: %+v", ref)
		}
	})
}

func TestProductHasMetals(t *testing.T) {
	var nilProduct *Product
	if nilProduct.HasMetals() {
		t.Error("nil product should not declare metals")
	}
	if (&Product{}).HasMetals() {
		t.Error("product with empty metal list should not declare metals")
	}
	if !(&Product{Metals: []MetalRef{{ID: "m"}}}).HasMetals() {
		t.Error("product with one metal should declare metals")
	}
}

package variant

import (
	"testing"

	"github.com/gemfold/atelier/pkg/catalogs"
)

func testMetals() []catalogs.Metal {
	inactive := false
	return []catalogs.Metal{
		{ID: "m-white", Name: "White Gold", PurityLevels: []catalogs.PurityLevel{
			{ID: "pl-w14", Karat: 14, PriceMultiplier: 1},
			{ID: "pl-w18", Karat: 18, PriceMultiplier: 1.15},
		}},
		{ID: "m-rose", Name: "Rose Gold", PurityLevels: []catalogs.PurityLevel{
			{ID: "pl-r14", Karat: 14, PriceMultiplier: 1.05},
			{ID: "pl-r18", Karat: 18, PriceMultiplier: 1.2, Active: &inactive},
		}},
		{ID: "m-plat", Name: "Platinum", PurityLevels: []catalogs.PurityLevel{
			{ID: "pl-p950", Karat: 950, PriceMultiplier: 1.6},
		}},
	}
}

func TestBuildMetalOptions(t *testing.T) {
	options := BuildMetalOptions(testMetals())

	// One option per active purity level, inactive excluded.
	if len(options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(options))
	}

	// Input metal order, then purity order within each metal.
	wantIDs := []string{"14k-white-gold", "18k-white-gold", "14k-rose-gold", "950k-platinum"}
	for i, want := range wantIDs {
		if options[i].OptionID != want {
			t.Errorf("option[%d].OptionID = %q, want %q", i, options[i].OptionID, want)
		}
	}

	if options[1].KaratLabel != "18K" {
		t.Errorf("expected label '18K', got %q", options[1].KaratLabel)
	}
	if options[1].PriceMultiplier != 1.15 {
		t.Errorf("expected multiplier 1.15, got %v", options[1].PriceMultiplier)
	}
	for _, option := range options {
		if option.IsAvailable {
			t.Errorf("builder must not mark availability, option %s is available", option.OptionID)
		}
	}
}

func TestBuildMetalOptionsEmptyInput(t *testing.T) {
	if got := BuildMetalOptions(nil); len(got) != 0 {
		t.Errorf("nil input should yield empty list, got %d options", len(got))
	}
	if got := BuildMetalOptions([]catalogs.Metal{}); len(got) != 0 {
		t.Errorf("empty input should yield empty list, got %d options", len(got))
	}
}

func TestOptionIDStability(t *testing.T) {
	// Re-derivation is idempotent and stable across calls.
	first := OptionID(18, "White Gold")
	second := OptionID(18, "White Gold")
	if first != second {
		t.Errorf("OptionID is not stable: %q vs %q", first, second)
	}
	if first != "18k-white-gold" {
		t.Errorf("unexpected derivation: %q", first)
	}

	// Normalization lowercases and collapses spaces to hyphens.
	if got := OptionID(14, "  Sterling   Silver "); got != "14k-sterling-silver" {
		t.Errorf("unexpected normalization: %q", got)
	}
	if got := OptionID(18, ""); got != "18k" {
		t.Errorf("unexpected empty-name derivation: %q", got)
	}
}

func TestParseKaratLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"18K", 18},
		{"14K", 14},
		{"950K", 950},
		{"18", 18},
		{"K", 18}, // no leading integer falls back to the hydration default
		{"", 18},
	}
	for _, tt := range tests {
		if got := ParseKaratLabel(tt.label); got != tt.want {
			t.Errorf("ParseKaratLabel(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestMetalOptionMultiplierDefault(t *testing.T) {
	if got := (MetalOption{}).Multiplier(); got != 1 {
		t.Errorf("unset multiplier should default to 1, got %v", got)
	}
	if got := (MetalOption{PriceMultiplier: 1.3}).Multiplier(); got != 1.3 {
		t.Errorf("expected 1.3, got %v", got)
	}
}

package variant

import (
	"strconv"
	"strings"

	"github.com/gemfold/atelier/pkg/catalogs"
)

// MetalOption is a UI-selectable (metal, purity level) pair derived from
// the metal catalog. OptionID is deterministically derived from the karat
// and the normalized metal name, so re-derivation is idempotent and stable
// across renders.
type MetalOption struct {
	OptionID        string                 `json:"optionId"`
	MetalID         catalogs.MetalID       `json:"metalId"`
	PurityLevelID   catalogs.PurityLevelID `json:"purityLevelId,omitempty"`
	Karat           float64                `json:"karat"`
	KaratLabel      string                 `json:"karatLabel"` // e.g. "18K"
	MetalName       string                 `json:"metalName"`
	PriceMultiplier float64                `json:"priceMultiplier"`
	IsAvailable     bool                   `json:"isAvailable"`
}

// Multiplier returns the option's effective price multiplier, defaulting
// to 1 when the record carries none.
func (o MetalOption) Multiplier() float64 {
	if o.PriceMultiplier <= 0 {
		return 1
	}
	return o.PriceMultiplier
}

// BuildMetalOptions turns raw metal records into the flat list of
// selectable options, one per active purity level. Ordering is
// deterministic: input metal order, then purity level order within each
// metal. Inactive purity levels are excluded. Empty input yields an empty
// list; there are no error conditions.
func BuildMetalOptions(metals []catalogs.Metal) []MetalOption {
	options := make([]MetalOption, 0, len(metals))
	for _, metal := range metals {
		for _, level := range metal.PurityLevels {
			if !level.IsActive() {
				continue
			}
			options = append(options, MetalOption{
				OptionID:        OptionID(level.Karat, metal.Name),
				MetalID:         metal.ID,
				PurityLevelID:   level.ID,
				Karat:           level.Karat,
				KaratLabel:      KaratLabel(level.Karat),
				MetalName:       metal.Name,
				PriceMultiplier: level.Multiplier(),
			})
		}
	}
	return options
}

// OptionID derives the stable option identifier from a karat and metal
// name: the karat, then the name lowercased with spaces collapsed to
// hyphens (e.g. 18 + "White Gold" -> "18k-white-gold").
func OptionID(karat float64, metalName string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(metalName)), "-")
	if normalized == "" {
		return formatKarat(karat) + "k"
	}
	return formatKarat(karat) + "k-" + normalized
}

// KaratLabel formats a karat value for display, e.g. 18 -> "18K".
func KaratLabel(karat float64) string {
	return formatKarat(karat) + "K"
}

// ParseKaratLabel parses the leading integer from a karat label
// (e.g. "18K" -> 18). Labels without a leading integer fall back to 18,
// matching the hydration default for cart lines missing a purity level.
func ParseKaratLabel(label string) int {
	digits := label
	for i, r := range label {
		if r < '0' || r > '9' {
			digits = label[:i]
			break
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return defaultKarat
	}
	return n
}

// defaultKarat is assumed when a persisted cart line carries no karat.
const defaultKarat = 18

// formatKarat renders a karat without a trailing decimal for whole values.
func formatKarat(karat float64) string {
	return strconv.FormatFloat(karat, 'f', -1, 64)
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemfold/atelier/pkg/cart"
	"github.com/gemfold/atelier/pkg/logging"
)

const testMetalsYAML = `- id: m-white
  name: White Gold
  purity_levels:
    - id: pl-w14
      karat: 14
      price_multiplier: 1
    - id: pl-w18
      karat: 18
      price_multiplier: 1.15
`

const testStonesYAML = `- id: st-a
  name: 1.0 CT
  price: 300
`

const testCategoriesYAML = `- id: cat-rings
  name: Rings
- id: cat-stud
  name: Stud
  parent: cat-rings
`

const testProductsYAML = `- id: p-solitaire
  name: Solitaire
  price: 1000
  metals:
    - m-white
  category:
    name: Stud
    parent: cat-rings
`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"metals.yaml":     testMetalsYAML,
		"stones.yaml":     testStonesYAML,
		"categories.yaml": testCategoriesYAML,
		"products.yaml":   testProductsYAML,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return &App{
		version: "test",
		config:  &Config{CatalogPath: writeTestCatalog(t)},
		logger:  &logging.Nop,
	}
}

func TestOptionsCommand(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.NewOptionsCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("product", "p-solitaire"))

	require.NoError(t, cmd.RunE(cmd, nil))

	output := out.String()
	assert.Contains(t, output, "14k-white-gold")
	assert.Contains(t, output, "18k-white-gold")
	assert.Contains(t, output, "true")
}

func TestPriceCommand(t *testing.T) {
	a := newTestApp(t)
	a.config.Format = "json"

	var out bytes.Buffer
	cmd := a.NewPriceCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("product", "p-solitaire"))
	require.NoError(t, cmd.Flags().Set("metal", "18k-white-gold"))
	require.NoError(t, cmd.Flags().Set("stone", "1.0 CT"))
	require.NoError(t, cmd.Flags().Set("quantity", "2"))

	require.NoError(t, cmd.RunE(cmd, nil))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	// (1000 + 300) * 1.15
	assert.InDelta(t, 1495.0, result["unitPrice"], 1e-9)
	assert.InDelta(t, 2990.0, result["linePrice"], 1e-9)
}

func TestPayloadCommand(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.NewPayloadCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("product", "p-solitaire"))
	require.NoError(t, cmd.Flags().Set("size", "7"))
	require.NoError(t, cmd.Flags().Set("quantity", "2"))

	require.NoError(t, cmd.RunE(cmd, nil))

	var payload cart.MutationPayload
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.EqualValues(t, "p-solitaire", payload.ProductID)
	assert.Equal(t, 2, payload.Quantity)
	assert.Equal(t, "7", payload.RingSize)
	assert.EqualValues(t, "m-white", payload.MetalID)
	require.NotNil(t, payload.PurityLevel)
	assert.Equal(t, 14, payload.PurityLevel.Karat, "first available option auto-selected")
}

func TestPayloadCommandMissingRingSize(t *testing.T) {
	a := newTestApp(t)

	cmd := a.NewPayloadCommand()
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("product", "p-solitaire"))

	err := cmd.RunE(cmd, nil)
	require.Error(t, err, "ring product without a size must not build a payload")
}

func TestValidateCommand(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.NewValidateCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "catalog is valid")
}

func TestFetchCommandRoundTrip(t *testing.T) {
	ringsID := "cat-rings"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/metals":
			_, _ = w.Write([]byte(`[{"id":"m-api","name":"API Gold","purityLevels":[{"id":"pl-a","karat":14,"priceMultiplier":1}]}]`))
		case "/stones":
			_, _ = w.Write([]byte(`[{"id":"st-api","name":"1.0 CT","price":300}]`))
		case "/categories":
			_, _ = w.Write([]byte(`[{"id":"` + ringsID + `","name":"Rings"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	a := newTestApp(t)
	a.config.CatalogPath = filepath.Join(t.TempDir(), "fetched")
	a.config.APIBaseURL = server.URL

	var out bytes.Buffer
	cmd := a.NewFetchCommand()
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "1 metals, 1 stones, 1 categories")

	// The fetched files load back as a catalog.
	catalog, err := a.loadCatalog()
	require.NoError(t, err)
	require.Len(t, catalog.Metals(), 1)
	assert.EqualValues(t, "m-api", catalog.Metals()[0].ID)
	require.Len(t, catalog.Stones(), 1)
	assert.Equal(t, 1, catalog.Categories().Len())
}

func TestFetchCommandRequiresBaseURL(t *testing.T) {
	a := newTestApp(t)
	cmd := a.NewFetchCommand()
	cmd.SetOut(&bytes.Buffer{})
	require.Error(t, cmd.RunE(cmd, nil))
}

func TestValidateCommandFindsDanglingRefs(t *testing.T) {
	a := newTestApp(t)

	// Point a product at a metal that is not in the catalog.
	broken := `- id: p-broken
  name: Broken
  price: 100
  metals:
    - m-ghost
`
	require.NoError(t, os.WriteFile(filepath.Join(a.config.CatalogPath, "products.yaml"), []byte(broken), 0o644))

	var out bytes.Buffer
	cmd := a.NewValidateCommand()
	cmd.SetOut(&out)

	err := cmd.RunE(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), "m-ghost")
}

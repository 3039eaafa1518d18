package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gemfold/atelier/internal/api"
	"github.com/gemfold/atelier/pkg/catalogs"
	"github.com/gemfold/atelier/pkg/errors"
	"github.com/gemfold/atelier/pkg/variant"
)

// currencyPrinter formats prices with grouping separators for display.
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// formatPrice renders a price for human-readable output. The engine never
// rounds; rounding here is display-only.
func formatPrice(v float64) string {
	return currencyPrinter.Sprintf("$%.2f", v)
}

// loadCatalog opens the configured YAML catalog directory.
func (a *App) loadCatalog() (catalogs.Reader, error) {
	catalog, err := catalogs.New(catalogs.WithPath(a.config.CatalogPath))
	if err != nil {
		return nil, err
	}
	a.logger.Debug().
		Str("path", a.config.CatalogPath).
		Int("metals", len(catalog.Metals())).
		Int("stones", len(catalog.Stones())).
		Int("products", len(catalog.Products())).
		Msg("catalog loaded")
	return catalog, nil
}

// newSession builds a hydrated create-mode session for one product from the
// local catalog.
func (a *App) newSession(catalog catalogs.Reader, productID string) (*variant.Session, error) {
	product, err := catalog.Product(catalogs.ProductID(productID))
	if err != nil {
		return nil, err
	}

	session := variant.NewSession(variant.ModeCreate, variant.WithLogger(a.logger))
	session.SetProduct(&product)
	session.SetCategories(catalog.Categories())
	session.SetMetalCatalog(catalog.Metals())
	session.SetStoneCatalog(catalog.Stones())
	return session, nil
}

// applySelectionFlags applies the shared --metal/--stone/--size/--quantity
// selection flags to a session.
func applySelectionFlags(session *variant.Session, metal, stone, size string, quantity int) error {
	if metal != "" {
		if err := session.SelectMetal(metal); err != nil {
			return err
		}
	}
	if stone != "" {
		session.SelectStone(variant.StoneByName(stone))
	}
	if size != "" {
		session.SetRingSize(size)
	}
	if quantity > 0 {
		session.SetQuantity(quantity)
	}
	return nil
}

// NewOptionsCommand creates the options subcommand.
func (a *App) NewOptionsCommand() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the metal options derived for a product",
		Long: `Derives the metal/purity option list for a product and annotates each
option with its availability for that product.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}
			session, err := a.newSession(catalog, productID)
			if err != nil {
				return err
			}

			options := session.Options()
			if a.config.Format == "json" {
				return printJSON(cmd, options)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPTION\tMETAL\tKARAT\tMULTIPLIER\tAVAILABLE")
			for _, option := range options {
				fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%t\n",
					option.OptionID, option.MetalName, option.KaratLabel,
					option.Multiplier(), option.IsAvailable)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id (required)")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

// NewPriceCommand creates the price subcommand.
func (a *App) NewPriceCommand() *cobra.Command {
	var (
		productID string
		metal     string
		stone     string
		quantity  int
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Resolve the price for a product configuration",
		Long: `Resolves the unit and line price for a product with an optional metal
option and center stone. Without --metal the first available option is
used, matching the storefront's default selection.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}
			session, err := a.newSession(catalog, productID)
			if err != nil {
				return err
			}
			if err := applySelectionFlags(session, metal, stone, "", quantity); err != nil {
				return err
			}

			if a.config.Format == "json" {
				return printJSON(cmd, map[string]any{
					"productId": productID,
					"unitPrice": session.UnitPrice(),
					"linePrice": session.LinePrice(),
					"quantity":  session.Quantity(),
				})
			}

			out := cmd.OutOrStdout()
			if selected := session.SelectedMetal(); selected != nil {
				fmt.Fprintf(out, "Metal:      %s %s (x%g)\n", selected.KaratLabel, selected.MetalName, selected.Multiplier())
			}
			if selected := session.SelectedStone(); selected != nil {
				fmt.Fprintf(out, "Stone:      %s (%s)\n", selected.Name, formatPrice(selected.Price))
			}
			fmt.Fprintf(out, "Unit price: %s\n", formatPrice(session.UnitPrice()))
			fmt.Fprintf(out, "Line price: %s (x%d)\n", formatPrice(session.LinePrice()), session.Quantity())
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id (required)")
	cmd.Flags().StringVar(&metal, "metal", "", "metal option id, e.g. 18k-white-gold")
	cmd.Flags().StringVar(&stone, "stone", "", "center stone name, e.g. '1.5 CT'")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "line quantity")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

// NewPayloadCommand creates the payload subcommand.
func (a *App) NewPayloadCommand() *cobra.Command {
	var (
		productID string
		metal     string
		stone     string
		size      string
		quantity  int
	)

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Build the cart mutation payload for a configuration",
		Long: `Builds and prints the JSON payload an "add line" cart mutation would
submit for the given configuration. Validation failures abort the build.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}
			session, err := a.newSession(catalog, productID)
			if err != nil {
				return err
			}
			if err := applySelectionFlags(session, metal, stone, size, quantity); err != nil {
				return err
			}

			payload, err := session.BuildPayload()
			if err != nil {
				return err
			}
			return printJSON(cmd, payload)
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id (required)")
	cmd.Flags().StringVar(&metal, "metal", "", "metal option id")
	cmd.Flags().StringVar(&stone, "stone", "", "center stone name")
	cmd.Flags().StringVar(&size, "size", "", "ring size")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "line quantity")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

// NewFetchCommand creates the fetch subcommand.
func (a *App) NewFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch catalogs from the storefront API into the catalog directory",
		Long: `Fetches the metal, stone, and category catalogs from the storefront API
and writes them as YAML files into the catalog directory, preserving
catalog order. Requires ATELIER_API_BASE_URL (and ATELIER_API_TOKEN for
authenticated stores).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.APIBaseURL == "" {
				return errors.NewConfigError("fetch", "api base URL is not set (ATELIER_API_BASE_URL)", nil)
			}

			ctx := cmd.Context()
			client := api.New(a.config.APIBaseURL, a.config.APIToken, api.WithLogger(a.logger))

			metals, err := client.Metals(ctx)
			if err != nil {
				return err
			}
			stones, err := client.Stones(ctx)
			if err != nil {
				return err
			}
			categories, err := client.Categories(ctx)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(a.config.CatalogPath, 0o755); err != nil {
				return errors.WrapIO("create", a.config.CatalogPath, err)
			}

			files := map[string]any{
				"metals.yaml":     metals,
				"stones.yaml":     stones,
				"categories.yaml": categories.List(),
			}
			for name, records := range files {
				if err := writeCatalogFile(a.config.CatalogPath, name, records); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fetched %d metals, %d stones, %d categories into %s\n",
				len(metals), len(stones), categories.Len(), a.config.CatalogPath)
			return nil
		},
	}

	return cmd
}

// writeCatalogFile marshals one catalog section to YAML on disk.
func writeCatalogFile(dir, name string, records any) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return errors.WrapParse("yaml", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// NewValidateCommand creates the validate subcommand.
func (a *App) NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog directory",
		Long: `Checks the YAML catalog for referential integrity: product metal
references must exist in the metal catalog, product stone references in
the stone catalog, and category parents in the category list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			issues := validateCatalog(catalog)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue)
			}
			if len(issues) > 0 {
				return errors.NewValidationError("catalog", a.config.CatalogPath,
					fmt.Sprintf("%d issue(s) found", len(issues)))
			}
			fmt.Fprintln(out, "catalog is valid")
			return nil
		},
	}

	return cmd
}

// validateCatalog runs the referential integrity checks.
func validateCatalog(catalog catalogs.Reader) []string {
	var issues []string

	categories := catalog.Categories()
	for _, category := range categories.List() {
		if category.Parent == nil {
			continue
		}
		if _, ok := categories.Get(*category.Parent); !ok {
			issues = append(issues, fmt.Sprintf("category %s: parent %s not found", category.ID, *category.Parent))
		}
	}

	for _, product := range catalog.Products() {
		for _, id := range product.MetalIDs() {
			if _, err := catalog.Metal(id); err != nil {
				issues = append(issues, fmt.Sprintf("product %s: metal %s not found", product.ID, id))
			}
		}
		if product.StoneType != nil && product.StoneType.ID != nil {
			if _, err := catalog.Stone(*product.StoneType.ID); err != nil {
				issues = append(issues, fmt.Sprintf("product %s: stone %s not found", product.ID, *product.StoneType.ID))
			}
		}
		if product.Category != nil && product.Category.Parent != nil {
			if _, ok := categories.Get(*product.Category.Parent); !ok {
				issues = append(issues, fmt.Sprintf("product %s: category parent %s not found", product.ID, *product.Category.Parent))
			}
		}
	}

	return issues
}

// printJSON writes indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", "output", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

package catalogs

import (
	stderrors "errors"
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/gemfold/atelier/pkg/errors"
)

// Catalog file names within the catalog directory.
const (
	metalsFile     = "metals.yaml"
	stonesFile     = "stones.yaml"
	categoriesFile = "categories.yaml"
	productsFile   = "products.yaml"
)

// load reads catalog data from the configured filesystem.
// Missing files are treated as empty sections so a catalog directory only
// needs the record types it actually uses.
func (c *catalog) load() error {
	if err := loadYAML(c.options.readFS, metalsFile, &c.metals); err != nil {
		return err
	}
	if err := loadYAML(c.options.readFS, stonesFile, &c.stones); err != nil {
		return err
	}

	var categories []Category
	if err := loadYAML(c.options.readFS, categoriesFile, &categories); err != nil {
		return err
	}
	c.categories = NewCategories(categories)

	if err := loadYAML(c.options.readFS, productsFile, &c.products); err != nil {
		return err
	}
	return nil
}

// loadYAML unmarshals one catalog file into target, tolerating absence.
func loadYAML(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.WrapIO("read", name, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.WrapParse("yaml", name, err)
	}
	return nil
}

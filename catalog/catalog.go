package catalog

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/sahil-jamadar/new-couture-project/models"
)

// Section labels. A product's section doubles as its category on the search
// results page.
const (
	SectionCotton  = "Cotton"
	SectionTrouser = "Trouser"
	SectionEthnic  = "Ethnic"
)

// The category suggestion vocabulary is wider than the section list: fabric
// families like Linen or Silk are offered as typed suggestions even though
// no section carries that name.
var suggestionCategories = []string{SectionCotton, SectionTrouser, SectionEthnic, "Linen", "Silk", "Wool"}

// BrandCollection groups the curated products shown on a brand page.
type BrandCollection struct {
	Brand    string           `json:"brand"`
	Products []models.Product `json:"products"`
}

type catalogFile struct {
	Cotton  []models.Product                `json:"cotton"`
	Trouser []models.Product                `json:"trouser"`
	Ethnic  []models.Product                `json:"ethnic"`
	Details map[string]models.ProductDetail `json:"details"`
	Brands  []BrandCollection               `json:"brands"`
}

// Catalog holds the static product data. It is built once at startup and is
// read-only afterwards, so accessors may hand out internal slices.
type Catalog struct {
	all      []models.Product
	byID     map[string]models.Product
	sections map[string]string
	details  map[string]models.ProductDetail
	brands   []BrandCollection
}

// Load decodes and validates catalog data. Malformed records are logged and
// dropped rather than propagated; only an undecodable document is an error.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		byID:     make(map[string]models.Product),
		sections: make(map[string]string),
		details:  file.Details,
	}
	if c.details == nil {
		c.details = make(map[string]models.ProductDetail)
	}

	// Section order matters: search pools and the results page both walk
	// the catalog cotton-first.
	c.addSection(SectionCotton, file.Cotton)
	c.addSection(SectionTrouser, file.Trouser)
	c.addSection(SectionEthnic, file.Ethnic)

	for _, bc := range file.Brands {
		if bc.Brand == "" {
			log.Println("Dropping brand collection without a name")
			continue
		}
		kept := bc.Products[:0]
		for _, p := range bc.Products {
			if err := validate(p); err != nil {
				log.Printf("Dropping invalid product in %s collection: %v", bc.Brand, err)
				continue
			}
			kept = append(kept, p)
		}
		bc.Products = kept
		c.brands = append(c.brands, bc)
	}

	return c, nil
}

func (c *Catalog) addSection(section string, products []models.Product) {
	for _, p := range products {
		if err := validate(p); err != nil {
			log.Printf("Dropping invalid %s product: %v", section, err)
			continue
		}
		if _, exists := c.byID[p.ID]; exists {
			log.Printf("Dropping duplicate product id %q in %s section", p.ID, section)
			continue
		}
		c.all = append(c.all, p)
		c.byID[p.ID] = p
		c.sections[p.ID] = section
	}
}

func validate(p models.Product) error {
	if p.ID == "" {
		return fmt.Errorf("product %q has no id", p.Name)
	}
	if p.Name == "" {
		return fmt.Errorf("product %q has no name", p.ID)
	}
	if p.Price <= 0 {
		return fmt.Errorf("product %q has price %d", p.ID, p.Price)
	}
	return nil
}

// All returns every product across the three sections, cotton first.
func (c *Catalog) All() []models.Product {
	return c.all
}

// ByID looks up a product. Nil means not found.
func (c *Catalog) ByID(id string) *models.Product {
	p, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &p
}

// DetailByID looks up a product detail record. Nil means the product has no
// detail page.
func (c *Catalog) DetailByID(id string) *models.ProductDetail {
	d, ok := c.details[id]
	if !ok {
		return nil
	}
	return &d
}

// Section returns the category label derived from a product's source section,
// or "Other" for ids outside the main catalog.
func (c *Catalog) Section(productID string) string {
	if s, ok := c.sections[productID]; ok {
		return s
	}
	return "Other"
}

// Materials returns the unique materials across the catalog in
// first-occurrence order. Used as a suggestion pool.
func (c *Catalog) Materials() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.all {
		if p.Material == "" || seen[p.Material] {
			continue
		}
		seen[p.Material] = true
		out = append(out, p.Material)
	}
	return out
}

// Brands returns the brand suggestion vocabulary, in collection order.
func (c *Catalog) Brands() []string {
	out := make([]string, 0, len(c.brands))
	for _, bc := range c.brands {
		out = append(out, bc.Brand)
	}
	return out
}

// Categories returns the category suggestion vocabulary.
func (c *Catalog) Categories() []string {
	return suggestionCategories
}

// BrandProducts returns the curated collection for a brand. An unknown brand
// yields an empty list, which renders as a valid empty state.
func (c *Catalog) BrandProducts(brand string) []models.Product {
	for _, bc := range c.brands {
		if bc.Brand == brand {
			return bc.Products
		}
	}
	return nil
}

// SectionProducts returns one section's products, or nil for an unknown
// section label.
func (c *Catalog) SectionProducts(section string) []models.Product {
	var out []models.Product
	for _, p := range c.all {
		if c.sections[p.ID] == section {
			out = append(out, p)
		}
	}
	return out
}

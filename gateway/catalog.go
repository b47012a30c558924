package gateway

import (
	"fmt"

	"github.com/alovak/paystack-gateway/gateway/models"
)

var ErrNotFound = fmt.Errorf("not found")

// DefaultProducts is the price list used when the config file names none.
var DefaultProducts = []models.Product{
	{ID: 1, Amount: 1400},
	{ID: 2, Amount: 1500},
	{ID: 3, Amount: 2100},
}

// Catalog is a read-only product lookup table built once at start.
type Catalog struct {
	products []models.Product
	byID     map[int64]models.Product
}

func NewCatalog(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int64]models.Product, len(products)),
	}
	for _, p := range products {
		if p.Amount <= 0 {
			return nil, fmt.Errorf("product %d: amount must be positive", p.ID)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("product %d: duplicate id", p.ID)
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c, nil
}

func (c *Catalog) GetProduct(id int64) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// Products returns a copy of the list in the order it was seeded.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

package shop

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mchmarny/storefront/pkg/fulfillment"
	"github.com/mchmarny/storefront/pkg/navigation"
)

// Catalog is the already-resolved data the storefront views render.
type Catalog struct {
	// Title is shown as the drawer heading.
	Title string `json:"title"`

	// Navigation is the top-level navigation tree.
	Navigation []navigation.Item `json:"navigation"`

	// Groups are fulfillment groups keyed by ID.
	Groups map[string]*fulfillment.Group `json:"groups"`
}

// LoadCatalog reads a catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return &c, nil
}

// SampleCatalog returns a small built-in catalog.
func SampleCatalog() *Catalog {
	return &Catalog{
		Title: "Shop",
		Navigation: []navigation.Item{
			{Name: "New Arrivals", Slug: "new-arrivals"},
			{
				Name: "Shoes",
				Slug: "shoes",
				SubItems: []navigation.Item{
					{
						Name: "Running",
						Slug: "running",
						SubItems: []navigation.Item{
							{Name: "Trail", Slug: "trail"},
							{Name: "Road", Slug: "road"},
						},
					},
					{Name: "Boots", Slug: "boots"},
				},
			},
			{Name: "Sale", Slug: "sale"},
		},
		Groups: map[string]*fulfillment.Group{
			"default": {
				ID: "default",
				Items: &fulfillment.ItemPage{Nodes: []fulfillment.CartItem{
					{ID: "sku-1", Title: "Trail Runner", VariantTitle: "Size 10", Quantity: 1, Price: "$120.00"},
					{ID: "sku-2", Title: "Wool Socks", Quantity: 3, Price: "$12.00"},
				}},
				ShippingAddress: &fulfillment.Address{
					FirstName: "Jane",
					Address1:  "1 Main St",
					City:      "Springfield",
					Region:    "IL",
					Postal:    "62704",
					Country:   "US",
				},
			},
		},
	}
}

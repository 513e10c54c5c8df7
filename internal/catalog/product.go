// Package catalog holds the in-memory product catalog for a session.
package catalog

// Product is a catalog entry with an ordered list of variants.
// Field order matches the key order of the exported data fragment.
type Product struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Variants []Variant `json:"variants"`
}

// Variant is a priced, stockable unit of a product. It has no id of its own;
// it is addressed by its position in Product.Variants.
type Variant struct {
	Weight    string   `json:"weight"`
	SalePrice float64  `json:"salePrice"`
	MinPrice  *float64 `json:"minPrice"`
	Available bool     `json:"available"`
}

// HasMinPrice reports whether a minimum price is set.
func (v Variant) HasMinPrice() bool {
	return v.MinPrice != nil
}

// Price returns a pointer to a copy of value, for use as Variant.MinPrice.
func Price(value float64) *float64 {
	return &value
}

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	out := Product{ID: p.ID, Name: p.Name}
	if p.Variants != nil {
		out.Variants = make([]Variant, len(p.Variants))
		for i, v := range p.Variants {
			out.Variants[i] = v.clone()
		}
	}
	return out
}

func (v Variant) clone() Variant {
	if v.MinPrice != nil {
		v.MinPrice = Price(*v.MinPrice)
	}
	return v
}

// CloneAll returns a deep copy of products.
func CloneAll(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

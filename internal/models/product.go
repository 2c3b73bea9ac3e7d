package models

import "time"

// MaxProductImages caps the number of image references per product.
const MaxProductImages = 3

// Product is a single catalog item owned by a user. Images holds up to
// MaxProductImages references (URLs or data URLs). Timestamps are UTC.
type Product struct {
	ID        string
	UserID    string
	Title     string
	Images    []string
	CostPrice float64
	SellPrice float64
	Stock     int
	DarazLink string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfitPerUnit is the absolute margin of one sold unit.
func (p *Product) ProfitPerUnit() float64 {
	return p.SellPrice - p.CostPrice
}

// MarginPercent is the relative margin of one sold unit, in percent.
// Zero when the sell price is zero.
func (p *Product) MarginPercent() float64 {
	if p.SellPrice == 0 {
		return 0
	}
	return p.ProfitPerUnit() / p.SellPrice * 100
}

// ProductUpdate describes a partial product update. Nil fields are left
// untouched by the merge.
type ProductUpdate struct {
	Title     *string
	Images    *[]string
	CostPrice *float64
	SellPrice *float64
	Stock     *int
	DarazLink *string
}

// Apply merges the non-nil fields of the update onto p.
func (u ProductUpdate) Apply(p *Product) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.CostPrice != nil {
		p.CostPrice = *u.CostPrice
	}
	if u.SellPrice != nil {
		p.SellPrice = *u.SellPrice
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.DarazLink != nil {
		p.DarazLink = *u.DarazLink
	}
}

package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Price            decimal.Decimal  `json:"price"`
	OldPrice         *decimal.Decimal `json:"old_price,omitempty"`
	Image            string           `json:"image"`
	Category         string           `json:"category"`
	ShortDescription string           `json:"short_description,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
}

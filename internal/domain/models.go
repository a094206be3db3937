package domain

import "github.com/shopspring/decimal"

// Category is the catalog segment a product is sold under.
type Category string

const (
	CategoryEstudante  Category = "Estudante"
	CategoryComercio   Category = "Comércio"
	CategoryGerencia   Category = "Gerência"
	CategoryCientifico Category = "Científico"
	CategoryGamer      Category = "Gamer"
	CategoryDefault    Category = "Outros"
)

// ParseCategory maps a wire value onto a known category, defaulting
// anything unrecognized.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryEstudante, CategoryComercio, CategoryGerencia, CategoryCientifico, CategoryGamer:
		return Category(s)
	}
	return CategoryDefault
}

// Color returns the badge color used when rendering the category.
func (c Category) Color() string {
	switch c {
	case CategoryGamer:
		return "#8e44ad"
	case CategoryEstudante:
		return "#f1c40f"
	case CategoryComercio:
		return "#e67e22"
	case CategoryGerencia:
		return "#34495e"
	case CategoryCientifico:
		return "#1abc9c"
	}
	return "#95a5a6"
}

// Product is one catalog entry. Immutable once loaded; JSON tags follow
// the backend wire format.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	CPU         string          `json:"cpu"`
	RAM         string          `json:"ram"`
	Storage     string          `json:"storage"`
	Description string          `json:"description"`
}

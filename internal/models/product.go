package models

// ProductCategory is the closed set of store sections.
type ProductCategory string

const (
	CategoryFruitsVeg    ProductCategory = "FRUITS_VEG"
	CategoryMeat         ProductCategory = "MEAT"
	CategoryJuices       ProductCategory = "JUICES"
	CategoryBiscuits     ProductCategory = "BISCUITS"
	CategoryPersonalCare ProductCategory = "PERSONAL_CARE"
	CategoryCake         ProductCategory = "CAKE"
	CategoryCleaning     ProductCategory = "CLEANING"
	CategoryDrinks       ProductCategory = "DRINKS"
)

// Categories lists every valid product category.
var Categories = []ProductCategory{
	CategoryFruitsVeg,
	CategoryMeat,
	CategoryJuices,
	CategoryBiscuits,
	CategoryPersonalCare,
	CategoryCake,
	CategoryCleaning,
	CategoryDrinks,
}

// ValidCategory reports whether c is one of the fixed store sections.
func ValidCategory(c ProductCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	Discount    float64         `json:"discount,omitempty"` // percent, 0 means no offer
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsOffer     bool            `json:"is_offer"`
}

// CartItem is a product snapshot plus a quantity. Quantity never drops
// below 1; removal is an explicit operation.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

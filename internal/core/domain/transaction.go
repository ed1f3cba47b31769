package domain

import "time"

// Category is the closed set of transaction categories.
type Category string

const (
	CategoryGroceries  Category = "Groceries"
	CategoryBeverages  Category = "Beverages"
	CategoryFastFood   Category = "Fast Food"
	CategoryPackedFood Category = "Packed Food"
	CategoryOthers     Category = "Others"
)

var validCategories = map[Category]struct{}{
	CategoryGroceries:  {},
	CategoryBeverages:  {},
	CategoryFastFood:   {},
	CategoryPackedFood: {},
	CategoryOthers:     {},
}

// NormalizeCategory maps any string onto a valid Category. Unknown or empty
// values fall back to Others silently; valid values pass through unchanged.
func NormalizeCategory(s string) Category {
	c := Category(s)
	if _, ok := validCategories[c]; ok {
		return c
	}
	return CategoryOthers
}

// Transaction records a single order against a store. StoreID and UID are
// free references: nothing ties them to an existing Admin or Client record.
type Transaction struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	StoreID  string    `json:"store_id" bson:"store_id"`
	UID      string    `json:"uid" bson:"uid"`
	Amount   float64   `json:"amount" bson:"amount"`
	Date     time.Time `json:"date" bson:"date"`
	Detail   string    `json:"detail" bson:"detail"`
	Category Category  `json:"category" bson:"category"`
}

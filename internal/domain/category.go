package domain

import "fmt"

// ProductCategory is the fixed classification set for catalog products.
type ProductCategory string

const (
	CategoryMeatSeafood  ProductCategory = "MEAT_SEAFOOD"
	CategoryFreshProduce ProductCategory = "FRESH_PRODUCE"
	CategoryDrinks       ProductCategory = "DRINKS"
	CategorySpicesPantry ProductCategory = "SPICES_PANTRY"
	CategoryDairy        ProductCategory = "DAIRY"
	CategorySnacks       ProductCategory = "SNACKS"
	CategoryFrozen       ProductCategory = "FROZEN"
	CategoryHousehold    ProductCategory = "HOUSEHOLD"
	CategoryOther        ProductCategory = "OTHER"
)

var categories = map[ProductCategory]struct{}{
	CategoryMeatSeafood:  {},
	CategoryFreshProduce: {},
	CategoryDrinks:       {},
	CategorySpicesPantry: {},
	CategoryDairy:        {},
	CategorySnacks:       {},
	CategoryFrozen:       {},
	CategoryHousehold:    {},
	CategoryOther:        {},
}

// ParseCategory validates a raw category string. An empty string defaults
// to CategoryOther.
func ParseCategory(s string) (ProductCategory, error) {
	if s == "" {
		return CategoryOther, nil
	}

	c := ProductCategory(s)
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("unknown product category %q", s)
	}

	return c, nil
}

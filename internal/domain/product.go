package domain

import "time"

// Product describes a catalog product shared across carts.
type Product struct {
	ID        int64
	Name      string
	Price     int64 // VND
	ImgURL    string
	Category  ProductCategory
	Barcode   *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewProduct(name string, price int64, imgURL string, category ProductCategory) *Product {
	return &Product{
		Name:     name,
		Price:    price,
		ImgURL:   imgURL,
		Category: category,
	}
}

package http

import (
	"time"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/internal/usecase"
)

// Request bodies

type createCartRequest struct {
	Name     string     `json:"name"`
	Budget   int64      `json:"budget"`
	NotifyAt *time.Time `json:"notify_at,omitempty"`
	UserID   int64      `json:"user_id"`
}

type updateCartRequest struct {
	Name     *string    `json:"name,omitempty"`
	Budget   *int64     `json:"budget,omitempty"`
	NotifyAt *time.Time `json:"notify_at,omitempty"`
}

type suggestRequest struct {
	Name string `json:"name"`
}

type suggestedItemRequest struct {
	Type   string `json:"type"`
	ID     *int64 `json:"id,omitempty"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	ImgURL string `json:"img_url,omitempty"`
}

type addAiItemsRequest struct {
	CartID int64                  `json:"cart_id"`
	Items  []suggestedItemRequest `json:"items"`
}

type suggestPriceRequest struct {
	ProductName string `json:"product_name"`
	ProductID   *int64 `json:"product_id,omitempty"`
}

type updatePriceRequest struct {
	ID    int64 `json:"id"`
	Price int64 `json:"price"`
}

type addToCartRequest struct {
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response bodies

type cartResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Budget    int64      `json:"budget"`
	NotifyAt  *time.Time `json:"notify_at,omitempty"`
	UserID    int64      `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type productResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	ImgURL    string    `json:"img_url,omitempty"`
	Category  string    `json:"category"`
	Barcode   *string   `json:"barcode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type cartProductResponse struct {
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
	IsBought  bool  `json:"is_bought"`
}

type suggestionItemResponse struct {
	Type   string `json:"type"`
	ID     *int64 `json:"id,omitempty"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	ImgURL string `json:"img_url,omitempty"`
}

type suggestResponse struct {
	Keyword string                   `json:"keyword"`
	Items   []suggestionItemResponse `json:"items"`
}

type addAiItemsResponse struct {
	Count int `json:"count"`
}

type suggestPriceResponse struct {
	Price int64 `json:"price"`
}

type loginResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Mappers

func toCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		ID:        cart.ID,
		Name:      cart.Name,
		Budget:    cart.Budget,
		NotifyAt:  cart.NotifyAt,
		UserID:    cart.UserID,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}

func toArrCartResponse(carts []domain.Cart) []cartResponse {
	result := make([]cartResponse, 0, len(carts))
	for i := range carts {
		result = append(result, toCartResponse(&carts[i]))
	}
	return result
}

func toProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImgURL:    product.ImgURL,
		Category:  string(product.Category),
		Barcode:   product.Barcode,
		CreatedAt: product.CreatedAt,
	}
}

func toArrProductResponse(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}
	return result
}

func toCartProductResponse(cp *domain.CartProduct) cartProductResponse {
	return cartProductResponse{
		CartID:    cp.CartID,
		ProductID: cp.ProductID,
		Quantity:  cp.Quantity,
		IsBought:  cp.IsBought,
	}
}

func toSuggestResponse(res *usecase.SuggestRes) suggestResponse {
	items := make([]suggestionItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, suggestionItemResponse{
			Type:   string(item.Type),
			ID:     item.ProductID,
			Name:   item.Name,
			Price:  item.Price,
			ImgURL: item.ImgURL,
		})
	}

	return suggestResponse{
		Keyword: res.Keyword,
		Items:   items,
	}
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

package usecase

import (
	"context"

	"github.com/shopmate-vn/go-backend/internal/domain"
)

type CartUC interface {
	CreateCart(ctx context.Context, req *CreateCartReq) (*domain.Cart, error)
	GetCarts(ctx context.Context, userID int64) ([]domain.Cart, error)
	GetCartByID(ctx context.Context, id int64) (*domain.Cart, error)
	UpdateCart(ctx context.Context, req *UpdateCartReq) (*domain.Cart, error)
	DeleteCart(ctx context.Context, id int64) error

	Suggest(ctx context.Context, cartName string) (*SuggestRes, error)
	AddSuggestedItems(ctx context.Context, req *AddSuggestedItemsReq) (*AddSuggestedItemsRes, error)
	SuggestPrice(ctx context.Context, req *SuggestPriceReq) (*SuggestPriceRes, error)
	UpdatePrice(ctx context.Context, req *UpdatePriceReq) error

	ToggleItemStatus(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error)
	RemoveItem(ctx context.Context, cartID, productID int64) error
	ClearCart(ctx context.Context, cartID int64) error
}

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	GetProducts(ctx context.Context, ids []int64) ([]domain.Product, error)
	AddToCart(ctx context.Context, req *AddToCartReq) (*domain.CartProduct, error)
	GetCartItems(ctx context.Context, cartID int64) ([]CartItem, error)
}

type UserUC interface {
	Register(ctx context.Context, req *RegisterReq) (*domain.User, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
}

package usecase

import (
	"context"

	"github.com/shopmate-vn/go-backend/internal/domain"
)

type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	// GetByID returns e.ErrCartNotFound when the cart does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Cart, error)
	Update(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	// FindFirstMatching returns the lowest-id product whose name contains
	// every term as a substring (case-insensitive), or nil when nothing
	// matches. The nil result is a regular outcome, not an error.
	FindFirstMatching(ctx context.Context, terms []string) (*domain.Product, error)
	UpdatePrice(ctx context.Context, id int64, price int64) error
}

type CartProductRepository interface {
	// Get returns nil when the (cart, product) pair has no membership row.
	Get(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error)
	Insert(ctx context.Context, cp *domain.CartProduct) error
	UpdateQuantity(ctx context.Context, cartID, productID int64, quantity int32) error
	ListItems(ctx context.Context, cartID int64) ([]CartItem, error)
	ToggleBought(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error)
	Delete(ctx context.Context, cartID, productID int64) error
	Clear(ctx context.Context, cartID int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

type CacheRepository interface {
	GetCartItems(ctx context.Context, cartID int64) ([]CartItem, bool, error)
	SetCartItems(ctx context.Context, cartID int64, items []CartItem) error
	DeleteCartItems(ctx context.Context, cartID int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

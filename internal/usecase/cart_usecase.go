package usecase

import (
	"context"
	"strings"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

// CartUseCase implements shopping-list management: CRUD, item status
// operations and the AI suggestion flow (see suggest_usecase.go).
type CartUseCase struct {
	cartRepo        CartRepository
	productRepo     ProductRepository
	cartProductRepo CartProductRepository
	outboxRepo      OutboxRepository
	cacheRepo       CacheRepository
	textGen         TextGenInfra
	transactor      Transactor
	logger          logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	cartProductRepo CartProductRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	textGen TextGenInfra,
	transactor Transactor,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:        cartRepo,
		productRepo:     productRepo,
		cartProductRepo: cartProductRepo,
		outboxRepo:      outboxRepo,
		cacheRepo:       cacheRepo,
		textGen:         textGen,
		transactor:      transactor,
		logger:          logger,
	}
}

func (c *CartUseCase) CreateCart(ctx context.Context, req *CreateCartReq) (*domain.Cart, error) {
	const op = "CartUseCase.CreateCart"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCartNameRequired)
	}

	budget := req.Budget
	if budget < 0 {
		budget = 0
	}

	cart, err := c.cartRepo.Create(ctx, domain.NewCart(req.Name, budget, req.NotifyAt, req.UserID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

func (c *CartUseCase) GetCarts(ctx context.Context, userID int64) ([]domain.Cart, error) {
	const op = "CartUseCase.GetCarts"

	carts, err := c.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return carts, nil
}

func (c *CartUseCase) GetCartByID(ctx context.Context, id int64) (*domain.Cart, error) {
	const op = "CartUseCase.GetCartByID"

	cart, err := c.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

func (c *CartUseCase) UpdateCart(ctx context.Context, req *UpdateCartReq) (*domain.Cart, error) {
	const op = "CartUseCase.UpdateCart"

	cart, err := c.cartRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, e.Wrap(op, e.ErrCartNameRequired)
		}
		cart.Name = *req.Name
	}
	if req.Budget != nil {
		cart.Budget = *req.Budget
	}
	if req.NotifyAt != nil {
		cart.NotifyAt = req.NotifyAt
	}

	updated, err := c.cartRepo.Update(ctx, cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (c *CartUseCase) DeleteCart(ctx context.Context, id int64) error {
	const op = "CartUseCase.DeleteCart"

	if err := c.cartRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.invalidateCartItems(ctx, id, op)
	return nil
}

// ToggleItemStatus flips the purchased flag of one membership row.
func (c *CartUseCase) ToggleItemStatus(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error) {
	const op = "CartUseCase.ToggleItemStatus"

	cp, err := c.cartProductRepo.ToggleBought(ctx, cartID, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateCartItems(ctx, cartID, op)
	return cp, nil
}

func (c *CartUseCase) RemoveItem(ctx context.Context, cartID, productID int64) error {
	const op = "CartUseCase.RemoveItem"

	if err := c.cartProductRepo.Delete(ctx, cartID, productID); err != nil {
		return e.Wrap(op, err)
	}

	c.invalidateCartItems(ctx, cartID, op)
	return nil
}

func (c *CartUseCase) ClearCart(ctx context.Context, cartID int64) error {
	const op = "CartUseCase.ClearCart"

	if _, err := c.cartRepo.GetByID(ctx, cartID); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cartProductRepo.Clear(ctx, cartID); err != nil {
		return e.Wrap(op, err)
	}

	c.invalidateCartItems(ctx, cartID, op)
	return nil
}

// invalidateCartItems drops the cached listing; cache failures only warn.
func (c *CartUseCase) invalidateCartItems(ctx context.Context, cartID int64, op string) {
	if err := c.cacheRepo.DeleteCartItems(ctx, cartID); err != nil {
		c.logger.Warnf("failed to invalidate cart items cache: %v", e.Wrap(op, err))
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

// ProductUseCase implements catalog management and direct cart operations.
type ProductUseCase struct {
	productRepo     ProductRepository
	cartRepo        CartRepository
	cartProductRepo CartProductRepository
	outboxRepo      OutboxRepository
	cacheRepo       CacheRepository
	imagesInfra     ImagesInfra
	transactor      Transactor
	logger          logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	cartRepo CartRepository,
	cartProductRepo CartProductRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	transactor Transactor,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:     productRepo,
		cartRepo:        cartRepo,
		cartProductRepo: cartProductRepo,
		outboxRepo:      outboxRepo,
		cacheRepo:       cacheRepo,
		imagesInfra:     imagesInfra,
		transactor:      transactor,
		logger:          logger,
	}
}

// CreateProduct registers a catalog product, uploading its image first and
// cleaning the orphaned object up if the insert does not commit.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCategory)
	}

	var imgKey string
	if req.Image != nil {
		imgKey, err = p.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	var product *domain.Product
	err = p.transactor.RunInTx(ctx, func(ctx context.Context) error {
		product, err = p.productRepo.Insert(ctx, &domain.Product{
			Name:     req.Name,
			Price:    req.Price,
			ImgURL:   imgKey,
			Category: category,
			Barcode:  req.Barcode,
		})
		return err
	})
	if err != nil {
		if imgKey != "" {
			p.logger.Warnf("cleaning up orphaned image after failed product insert. product_name: %s, error: %v",
				req.Name, e.Wrap(op, err))
			p.imagesInfra.CleanupImages([]string{imgKey})
		}
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (p *ProductUseCase) GetProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	const op = "ProductUseCase.GetProducts"

	if len(ids) == 0 {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	products, err := p.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// AddToCart puts an existing catalog product into a cart, incrementing the
// quantity when the membership row already exists.
func (p *ProductUseCase) AddToCart(ctx context.Context, req *AddToCartReq) (*domain.CartProduct, error) {
	const op = "ProductUseCase.AddToCart"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	var result *domain.CartProduct
	err := p.transactor.RunInTx(ctx, func(ctx context.Context) error {
		cart, err := p.cartRepo.GetByID(ctx, req.CartID)
		if err != nil {
			return err
		}

		products, err := p.productRepo.GetByIDs(ctx, []int64{req.ProductID})
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return e.ErrProductNotFound
		}

		existing, err := p.cartProductRepo.Get(ctx, req.CartID, req.ProductID)
		if err != nil {
			return err
		}

		if existing != nil {
			newQuantity := existing.Quantity + req.Quantity
			if err := p.cartProductRepo.UpdateQuantity(ctx, req.CartID, req.ProductID, newQuantity); err != nil {
				return err
			}
			existing.Quantity = newQuantity
			result = existing
		} else {
			cp := domain.NewCartProduct(req.CartID, req.ProductID, req.Quantity)
			if err := p.cartProductRepo.Insert(ctx, cp); err != nil {
				return err
			}
			result = cp
		}

		return p.enqueueItemsAddedEvent(ctx, req.CartID, req.ProductID, cart.NotifyAt)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.DeleteCartItems(ctx, req.CartID); err != nil {
		p.logger.Warnf("failed to invalidate cart items cache: %v", e.Wrap(op, err))
	}

	return result, nil
}

// enqueueItemsAddedEvent writes the notification event in the same
// transaction as the membership write, so the outbox sees only committed adds.
func (p *ProductUseCase) enqueueItemsAddedEvent(ctx context.Context, cartID, productID int64, notifyAt *time.Time) error {
	payload, err := json.Marshal(CartItemsAddedPayload{
		CartID:     cartID,
		ProductIDs: []int64{productID},
		Count:      1,
		NotifyAt:   notifyAt,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventCartItemsAdded, cartID, payload))
	return err
}

// GetCartItems lists a cart's contents, reading through the cache.
func (p *ProductUseCase) GetCartItems(ctx context.Context, cartID int64) ([]CartItem, error) {
	const op = "ProductUseCase.GetCartItems"

	items, hit, err := p.cacheRepo.GetCartItems(ctx, cartID)
	if err != nil {
		p.logger.Warnf("cart items cache read failed: %v", e.Wrap(op, err))
	} else if hit {
		return items, nil
	}

	if _, err := p.cartRepo.GetByID(ctx, cartID); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err = p.cartProductRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Populate the cache off the request path.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetCartItems(bgCtx, cartID, items); err != nil {
			p.logger.Warnf("failed to cache cart items in background: %v", e.Wrap(op, err))
		}
	}()

	return items, nil
}

func (p *ProductUseCase) validateProduct(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price < 0 {
		return e.ErrInvalidPrice
	}

	return nil
}

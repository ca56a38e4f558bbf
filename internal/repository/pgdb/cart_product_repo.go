package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/internal/repository/pgdb/converter"
	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/tr"
)

// CartProductRepo implements the cart membership repository on top of PostgreSQL.
type CartProductRepo struct {
	pool *pgxpool.Pool
	conv converter.CartProductConverter
}

func NewCartProductRepo(pool *pgxpool.Pool, conv converter.CartProductConverter) *CartProductRepo {
	return &CartProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Get returns the membership row for (cartID, productID) or nil when the
// product is not in the cart. The nil result is a regular outcome.
func (c *CartProductRepo) Get(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	query := `
		SELECT cart_id, product_id, quantity, is_bought
		FROM cart_product
		WHERE cart_id = $1 AND product_id = $2;
	`

	var model converter.CartProductModel
	err := q.QueryRow(ctx, query, cartID, productID).
		Scan(&model.CartID, &model.ProductID, &model.Quantity, &model.IsBought)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CartProductRepo) Insert(ctx context.Context, cp *domain.CartProduct) error {
	q := tr.QuerierFromCtx(ctx, c.pool)

	model := c.conv.ToModel(cp)
	query := `
		INSERT INTO cart_product (cart_id, product_id, quantity, is_bought)
		VALUES ($1, $2, $3, $4);
	`

	_, err := q.Exec(ctx, query, model.CartID, model.ProductID, model.Quantity, model.IsBought)
	if err != nil {
		if postgresForeignKeyViolation(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartProductRepo) UpdateQuantity(ctx context.Context, cartID, productID int64, quantity int32) error {
	q := tr.QuerierFromCtx(ctx, c.pool)

	query := `
		UPDATE cart_product
		SET quantity = $1
		WHERE cart_id = $2 AND product_id = $3;
	`

	result, err := q.Exec(ctx, query, quantity, cartID, productID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartProductNotFound)
	}

	return nil
}

// ListItems returns a cart's contents joined with the catalog, in insertion
// order. TotalPrice is derived in the mapper rather than in SQL.
func (c *CartProductRepo) ListItems(ctx context.Context, cartID int64) ([]usecase.CartItem, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	query := `
		SELECT pr.id, pr.name, pr.img_url, pr.price, cp.quantity, cp.is_bought
		FROM cart_product cp
		JOIN products pr ON pr.id = cp.product_id
		WHERE cp.cart_id = $1
		ORDER BY pr.id;
	`

	rows, err := q.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items := make([]usecase.CartItem, 0)
	for rows.Next() {
		var (
			productID int64
			name      string
			imgURL    string
			price     int64
			quantity  int32
			isBought  bool
		)
		if err := rows.Scan(&productID, &name, &imgURL, &price, &quantity, &isBought); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		items = append(items, usecase.NewCartItem(productID, name, imgURL, price, quantity, isBought))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return items, nil
}

func (c *CartProductRepo) ToggleBought(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	query := `
		UPDATE cart_product
		SET is_bought = NOT is_bought
		WHERE cart_id = $1 AND product_id = $2
		RETURNING cart_id, product_id, quantity, is_bought;
	`

	var model converter.CartProductModel
	err := q.QueryRow(ctx, query, cartID, productID).
		Scan(&model.CartID, &model.ProductID, &model.Quantity, &model.IsBought)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CartProductRepo) Delete(ctx context.Context, cartID, productID int64) error {
	q := tr.QuerierFromCtx(ctx, c.pool)

	result, err := q.Exec(ctx, `DELETE FROM cart_product WHERE cart_id = $1 AND product_id = $2;`, cartID, productID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartProductNotFound)
	}

	return nil
}

func (c *CartProductRepo) Clear(ctx context.Context, cartID int64) error {
	q := tr.QuerierFromCtx(ctx, c.pool)

	_, err := q.Exec(ctx, `DELETE FROM cart_product WHERE cart_id = $1;`, cartID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/internal/repository/pgdb/converter"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/tr"
)

// CartRepo implements the cart repository on top of PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter) *CartRepo {
	return &CartRepo{
		pool: pool,
		conv: conv,
	}
}

func (c *CartRepo) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	model := c.conv.ToModel(cart)
	query := `
		INSERT INTO carts (name, budget, notify_at, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	err := q.QueryRow(ctx, query, model.Name, model.Budget, model.NotifyAt, model.UserID).
		Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if postgresForeignKeyViolation(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CartRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	query := `
		SELECT id, name, budget, notify_at, user_id, created_at, updated_at
		FROM carts
		WHERE id = $1;
	`

	var model converter.CartModel
	err := q.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Budget, &model.NotifyAt,
		&model.UserID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CartRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Cart, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	query := `
		SELECT id, name, budget, notify_at, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.CartModel
	for rows.Next() {
		var model converter.CartModel
		err := rows.Scan(
			&model.ID, &model.Name, &model.Budget, &model.NotifyAt,
			&model.UserID, &model.CreatedAt, &model.UpdatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

func (c *CartRepo) Update(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	q := tr.QuerierFromCtx(ctx, c.pool)

	model := c.conv.ToModel(cart)
	query := `
		UPDATE carts
		SET name = $1, budget = $2, notify_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, budget, notify_at, user_id, created_at, updated_at;
	`

	err := q.QueryRow(ctx, query, model.Name, model.Budget, model.NotifyAt, model.ID).Scan(
		&model.ID, &model.Name, &model.Budget, &model.NotifyAt,
		&model.UserID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CartRepo) Delete(ctx context.Context, id int64) error {
	q := tr.QuerierFromCtx(ctx, c.pool)

	result, err := q.Exec(ctx, `DELETE FROM carts WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
	}

	return nil
}

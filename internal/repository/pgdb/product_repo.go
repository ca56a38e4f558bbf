package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/internal/repository/pgdb/converter"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/tr"
)

// ProductRepo implements the catalog repository on top of PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	q := tr.QuerierFromCtx(ctx, p.pool)

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (name, price, img_url, category, barcode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := q.QueryRow(ctx, query, model.Name, model.Price, model.ImgURL, model.Category, model.Barcode).
		Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrBarcodeTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	q := tr.QuerierFromCtx(ctx, p.pool)

	query := `
		SELECT id, name, price, img_url, category, barcode, created_at, updated_at
		FROM products
		WHERE id = ANY($1);
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		var model converter.ProductModel
		err := rows.Scan(
			&model.ID, &model.Name, &model.Price, &model.ImgURL,
			&model.Category, &model.Barcode, &model.CreatedAt, &model.UpdatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// FindFirstMatching returns the lowest-id product whose name contains every
// term as a case-insensitive substring. Conjunctive ILIKE filters keep partial
// matches like "kem" alone from hijacking multi-word names. A miss is a
// regular nil result.
func (p *ProductRepo) FindFirstMatching(ctx context.Context, terms []string) (*domain.Product, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	q := tr.QuerierFromCtx(ctx, p.pool)

	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms))
	for i, term := range terms {
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", i+1))
		args = append(args, "%"+escapeLike(term)+"%")
	}

	query := fmt.Sprintf(`
		SELECT id, name, price, img_url, category, barcode, created_at, updated_at
		FROM products
		WHERE %s
		ORDER BY id
		LIMIT 1;
	`, strings.Join(conds, " AND "))

	var model converter.ProductModel
	err := q.QueryRow(ctx, query, args...).Scan(
		&model.ID, &model.Name, &model.Price, &model.ImgURL,
		&model.Category, &model.Barcode, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) UpdatePrice(ctx context.Context, id int64, price int64) error {
	q := tr.QuerierFromCtx(ctx, p.pool)

	query := `
		UPDATE products
		SET price = $1, updated_at = NOW()
		WHERE id = $2;
	`

	result, err := q.Exec(ctx, query, price, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// escapeLike neutralizes LIKE metacharacters inside a user-influenced term.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

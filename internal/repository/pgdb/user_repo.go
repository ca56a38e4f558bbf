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

// UserRepo implements the user repository on top of PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	q := tr.QuerierFromCtx(ctx, u.pool)

	model := u.conv.ToModel(user)
	query := `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`

	err := q.QueryRow(ctx, query, model.Email, model.Password).
		Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

func (u *UserRepo) GetByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	q := tr.QuerierFromCtx(ctx, u.pool)

	query := `
		SELECT id, email, password, created_at
		FROM users
		WHERE email = $1 AND password = $2;
	`

	var model converter.UserModel
	err := q.QueryRow(ctx, query, email, password).
		Scan(&model.ID, &model.Email, &model.Password, &model.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidCredentials)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

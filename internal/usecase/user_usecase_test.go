package usecase

import (
	"context"
	"testing"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users []domain.User
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, e.ErrEmailTaken
		}
	}
	user.ID = int64(len(m.users) + 1)
	m.users = append(m.users, *user)
	return user, nil
}

func (m *memUserRepo) GetByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, e.ErrInvalidCredentials
}

func TestRegisterAndLogin(t *testing.T) {
	uc := NewUserUC(&memUserRepo{}, nopLogger{})

	user, err := uc.Register(context.Background(), &RegisterReq{Email: "an@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	res, err := uc.Login(context.Background(), &LoginReq{Email: "an@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.UserID)
	assert.Equal(t, "an@example.com", res.Email)

	_, err = uc.Login(context.Background(), &LoginReq{Email: "an@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	uc := NewUserUC(&memUserRepo{}, nopLogger{})

	_, err := uc.Register(context.Background(), &RegisterReq{Email: " ", Password: "x"})
	assert.ErrorIs(t, err, e.ErrEmailRequired)

	_, err = uc.Register(context.Background(), &RegisterReq{Email: "an@example.com"})
	assert.ErrorIs(t, err, e.ErrPasswordRequired)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := NewUserUC(&memUserRepo{}, nopLogger{})

	_, err := uc.Register(context.Background(), &RegisterReq{Email: "an@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), &RegisterReq{Email: "an@example.com", Password: "y"})
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

package usecase

import (
	"context"
	"strings"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

// UserUseCase implements registration and login. Credentials are compared
// as-is; auth hardening is deliberately out of scope.
type UserUseCase struct {
	userRepo UserRepository
	logger   logger.Logger
}

func NewUserUC(userRepo UserRepository, logger logger.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (u *UserUseCase) Register(ctx context.Context, req *RegisterReq) (*domain.User, error) {
	const op = "UserUseCase.Register"

	if strings.TrimSpace(req.Email) == "" {
		return nil, e.Wrap(op, e.ErrEmailRequired)
	}
	if req.Password == "" {
		return nil, e.Wrap(op, e.ErrPasswordRequired)
	}

	user, err := u.userRepo.Create(ctx, domain.NewUser(req.Email, req.Password))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

func (u *UserUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "UserUseCase.Login"

	user, err := u.userRepo.GetByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewLoginRes(user.ID, user.Email), nil
}

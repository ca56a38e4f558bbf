//go:generate goverter gen github.com/shopmate-vn/go-backend/internal/repository/redis/converter

package converter

import (
	"github.com/shopmate-vn/go-backend/internal/usecase"
)

// goverter:converter
type CartItemConverter interface {
	ToRedisModel(entity *usecase.CartItem) *CartItemRedisModel
	ToUseCase(model *CartItemRedisModel) *usecase.CartItem
	ToArrRedisModel(entities []usecase.CartItem) []CartItemRedisModel
	ToArrUseCase(models []CartItemRedisModel) []usecase.CartItem
}

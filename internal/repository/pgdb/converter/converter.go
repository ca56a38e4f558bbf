//go:generate goverter gen github.com/shopmate-vn/go-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/internal/usecase"
)

// CartConverter converts Cart entities between domain and the PostgreSQL model.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CartConverter interface {
	ToModel(entity *domain.Cart) *CartModel
	ToEntity(model *CartModel) *domain.Cart
	ToArrEntity(models []*CartModel) []domain.Cart
}

// ProductConverter converts Product entities between domain and the PostgreSQL model.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertCategory
// goverter:extend ConvertCategoryString
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []domain.Product
}

// CartProductConverter converts membership rows between domain and the PostgreSQL model.
// goverter:converter
type CartProductConverter interface {
	ToModel(entity *domain.CartProduct) *CartProductModel
	ToEntity(model *CartProductModel) *domain.CartProduct
}

// UserConverter converts User entities between domain and the PostgreSQL model.
// goverter:converter
// goverter:extend ConvertTime
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// OutboxEventConverter converts outbox events between usecase and the PostgreSQL model.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxStatusString
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxEventTypeString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertCategory(s string) domain.ProductCategory {
	return domain.ProductCategory(s)
}

func ConvertCategoryString(c domain.ProductCategory) string {
	return string(c)
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxStatusString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(s string) usecase.OutboxEventType {
	return usecase.OutboxEventType(s)
}

func ConvertOutboxEventTypeString(t usecase.OutboxEventType) string {
	return string(t)
}

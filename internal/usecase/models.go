package usecase

import (
	"time"

	"github.com/shopmate-vn/go-backend/internal/domain"
)

// CART USECASE

// CreateCartReq — request to create a shopping list.
type CreateCartReq struct {
	Name     string
	Budget   int64
	NotifyAt *time.Time
	UserID   int64
}

// UpdateCartReq — partial cart update; nil fields stay untouched.
type UpdateCartReq struct {
	ID       int64
	Name     *string
	Budget   *int64
	NotifyAt *time.Time
}

// SuggestRes — resolved AI suggestions in the order the generator emitted them.
type SuggestRes struct {
	Keyword string
	Items   []domain.SuggestionCandidate
}

// SuggestedItemInput — one user-confirmed suggestion to persist.
type SuggestedItemInput struct {
	Type   string // "NEW" or "EXISTING"
	ID     *int64 // required for EXISTING
	Name   string
	Price  int64
	ImgURL string
}

type AddSuggestedItemsReq struct {
	CartID int64
	Items  []SuggestedItemInput
}

// AddSuggestedItemsRes — Count is the number of processed items, which may
// exceed the number of mutated rows when duplicates only bumped quantity.
type AddSuggestedItemsRes struct {
	Count int
}

type SuggestPriceReq struct {
	ProductName string
	ProductID   *int64
}

type SuggestPriceRes struct {
	Price int64
}

type UpdatePriceReq struct {
	ID    int64
	Price int64
}

// PRODUCT USECASE

// ProductImage represents an image uploaded via multipart/form-data.
type ProductImage struct {
	Data     []byte
	MimeType string // Content-Type from multipart (image/jpeg)
	Size     int64
	Name     string // original file name (for logs)
}

type CreateProductReq struct {
	Name     string
	Price    int64
	Category string
	Barcode  *string
	Image    *ProductImage // optional
}

type AddToCartReq struct {
	CartID    int64
	ProductID int64
	Quantity  int32
}

// CartItem — one row of a cart listing (product join + membership fields).
type CartItem struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	ImgURL     string `json:"img_url"`
	Price      int64  `json:"price"`
	Quantity   int32  `json:"quantity"`
	IsBought   bool   `json:"is_bought"`
	TotalPrice int64  `json:"total_price"`
}

// USER USECASE

type RegisterReq struct {
	Email    string
	Password string
}

type LoginReq struct {
	Email    string
	Password string
}

type LoginRes struct {
	UserID int64
	Email  string
}

// INFRASTRUCTURE

type UploadImageReq struct {
	ProductName string
	Image       ProductImage
}

type WriteRawMessageReq struct {
	CartID  int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "PENDING"
	Processing OutboxStatus = "PROCESSING"
	Processed  OutboxStatus = "PROCESSED"
)

type OutboxEventType string

const (
	EventCartItemsAdded OutboxEventType = "cart.items_added"
)

type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	CartID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// CartItemsAddedPayload is the JSON body of a cart.items_added event,
// consumed by the notification worker.
type CartItemsAddedPayload struct {
	CartID     int64      `json:"cart_id"`
	ProductIDs []int64    `json:"product_ids"`
	Count      int        `json:"count"`
	NotifyAt   *time.Time `json:"notify_at,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// MAPPERS

func NewCreateCartReq(name string, budget int64, notifyAt *time.Time, userID int64) *CreateCartReq {
	return &CreateCartReq{
		Name:     name,
		Budget:   budget,
		NotifyAt: notifyAt,
		UserID:   userID,
	}
}

func NewSuggestRes(keyword string, items []domain.SuggestionCandidate) *SuggestRes {
	return &SuggestRes{
		Keyword: keyword,
		Items:   items,
	}
}

func NewAddSuggestedItemsRes(count int) *AddSuggestedItemsRes {
	return &AddSuggestedItemsRes{Count: count}
}

func NewSuggestPriceRes(price int64) *SuggestPriceRes {
	return &SuggestPriceRes{Price: price}
}

func NewCartItem(productID int64, name string, imgURL string, price int64, quantity int32, isBought bool) CartItem {
	return CartItem{
		ProductID:  productID,
		Name:       name,
		ImgURL:     imgURL,
		Price:      price,
		Quantity:   quantity,
		IsBought:   isBought,
		TotalPrice: price * int64(quantity),
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(productName string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewWriteRawMessageReq(cartID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		CartID:  cartID,
		Payload: payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, cartID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		CartID:    cartID,
		Payload:   payload,
		Status:    Pending,
	}
}

func NewLoginRes(userID int64, email string) *LoginRes {
	return &LoginRes{
		UserID: userID,
		Email:  email,
	}
}

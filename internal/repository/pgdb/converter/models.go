package converter

import "time"

// CartModel represents a row of the carts table in PostgreSQL.
type CartModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Budget    int64      `db:"budget"`
	NotifyAt  *time.Time `db:"notify_at"`
	UserID    int64      `db:"user_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ProductModel represents a row of the products table in PostgreSQL.
type ProductModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Price     int64      `db:"price"`
	ImgURL    string     `db:"img_url"`
	Category  string     `db:"category"`
	Barcode   *string    `db:"barcode"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// CartProductModel represents a row of the cart_product join table.
type CartProductModel struct {
	CartID    int64 `db:"cart_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int32 `db:"quantity"`
	IsBought  bool  `db:"is_bought"`
}

// UserModel represents a row of the users table in PostgreSQL.
type UserModel struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// OutboxEventModel represents a row of the outbox_events table.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	CartID      int64      `db:"cart_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

package domain

import "time"

// Cart is a named, budgeted shopping list owned by a user.
type Cart struct {
	ID        int64
	Name      string
	Budget    int64 // VND
	NotifyAt  *time.Time
	UserID    int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCart(name string, budget int64, notifyAt *time.Time, userID int64) *Cart {
	return &Cart{
		Name:     name,
		Budget:   budget,
		NotifyAt: notifyAt,
		UserID:   userID,
	}
}

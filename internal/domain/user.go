package domain

import "time"

// User owns carts. Passwords are stored as-is; hardening is out of scope.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}

func NewUser(email, password string) *User {
	return &User{
		Email:    email,
		Password: password,
	}
}

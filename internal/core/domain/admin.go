package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAdminNotFound = errors.New("admin not found")
var ErrAdminExists = errors.New("admin already exists")
var ErrSessionNotFound = errors.New("session not found")

// Admin models a store administrator, the only kind of authenticated actor.
// Email doubles as the login username. StoreID is generated at registration
// and identifies the retail location the admin operates.
type Admin struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StoreLocation string    `json:"store_location"`
	StoreID       string    `json:"store_id"`
	PhoneNo       string    `json:"phone_no"`
	PinCode       string    `json:"pin_code"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Session is the server-side record behind an issued session token.
// Destroying the record invalidates the token regardless of its expiry.
type Session struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"admin_id"`
	Email     string    `json:"email"`
	StoreID   string    `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}

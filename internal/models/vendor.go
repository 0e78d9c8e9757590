package models

import "time"

type Vendor struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	StoreName    string    `json:"store_name"`
	Contact      *string   `json:"contact,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterVendorRequest struct {
	Name        string
	Email       string
	Password    string
	StoreName   string
	Contact     string
	Description string
}

package model

import "time"

// Inquiry is a contact/lead record submitted from the storefront about a
// product or a general question.
type Inquiry struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	ProductID *uint64   `json:"productId,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is a direct contact-form submission.
type Message struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sell is a "sell us your device" lead: a short description plus asking
// price submitted by a visitor.
type Sell struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description"`
	AskingPrice float64   `json:"askingPrice,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

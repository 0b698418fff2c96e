package models

import "time"

// PaymentRequest describes a charge to be made for a booking total.
type PaymentRequest struct {
	Email    string `json:"email"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Method   string `json:"method"` // "card", "upi" or "cash"
}

// Invoice is the outcome of a processed payment.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	PaymentID string    `json:"paymentId,omitempty"`
	Email     string    `json:"email"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	Status    string    `json:"status"` // "pending" or "paid"
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// PaymentMethods lists the accepted payment method values
var PaymentMethods = []string{"cash", "mobile_money", "card"}

type Payment struct {
	ID              int       `json:"id"`
	PaymentNumber   string    `json:"payment_number"`
	ServiceRecordID int       `json:"service_record_id"`
	AmountPaid      float64   `json:"amount_paid"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentDate     time.Time `json:"payment_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// PaymentWithDetails joins the service record (and through it the car and
// package) the payment settles
type PaymentWithDetails struct {
	Payment
	Service *ServiceRecordWithDetails `json:"service"`
}

// ValidPaymentMethod reports whether method is one of the accepted values
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	ServiceRecordID int     `json:"service_record_id"`
	AmountPaid      float64 `json:"amount_paid"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentDate     string  `json:"payment_date"` // YYYY-MM-DD
}

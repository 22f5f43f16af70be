package models

import "time"

// Bill payment states as surfaced on the printable invoice
const (
	BillPaid    = "Paid"
	BillPending = "Pending"
)

// Bill is the composed, read-only invoice view for one service record.
// It is derived on demand and never persisted.
type Bill struct {
	Car             *Car           `json:"car"`
	Package         *Package       `json:"package"`
	Service         *ServiceRecord `json:"service"`
	Payment         *BillPayment   `json:"payment"`
	CompanyName     string         `json:"company_name"`
	CompanyLocation string         `json:"company_location"`
	BillDate        time.Time      `json:"bill_date"`
}

// BillPayment carries either the settled payment details (status "Paid") or
// the amount still due (status "Pending").
type BillPayment struct {
	Status        string     `json:"status"`
	PaymentNumber string     `json:"payment_number,omitempty"`
	AmountPaid    float64    `json:"amount_paid,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	AmountDue     float64    `json:"amount_due,omitempty"`
}

package models

import "time"

// ServiceStatus is the lifecycle state of a service record
type ServiceStatus string

const (
	StatusPending    ServiceStatus = "pending"
	StatusInProgress ServiceStatus = "in-progress"
	StatusCompleted  ServiceStatus = "completed"
	StatusPaid       ServiceStatus = "paid"
)

// statusRank orders the lifecycle; transitions may only move forward.
var statusRank = map[ServiceStatus]int{
	StatusPending:    0,
	StatusInProgress: 1,
	StatusCompleted:  2,
	StatusPaid:       3,
}

// ValidStatus reports whether s is one of the four lifecycle values
func ValidStatus(s ServiceStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a status edit from "from" to "to" is allowed.
// Forward moves (including skips) and same-status writes are allowed; moving
// backwards is not, and "paid" is terminal.
func CanTransition(from, to ServiceStatus) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// ServiceRecord is one booking of a package for a car on a given date
type ServiceRecord struct {
	ID           int           `json:"id"`
	RecordNumber string        `json:"record_number"`
	CarID        int           `json:"car_id"`
	PackageID    int           `json:"package_id"`
	ServiceDate  time.Time     `json:"service_date"`
	Status       ServiceStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ServiceRecordWithDetails joins the car and package the record references
type ServiceRecordWithDetails struct {
	ServiceRecord
	Car     *Car     `json:"car"`
	Package *Package `json:"package"`
}

// CreateServiceRecordRequest represents the request body for booking a wash
type CreateServiceRecordRequest struct {
	CarID       int    `json:"car_id"`
	PackageID   int    `json:"package_id"`
	ServiceDate string `json:"service_date"` // YYYY-MM-DD
}

// UpdateServiceRecordRequest represents the request body for editing a
// service record. Car and package references are immutable; only the date
// and status can change.
type UpdateServiceRecordRequest struct {
	ServiceDate string        `json:"service_date"`
	Status      ServiceStatus `json:"status"`
}

package models

import "time"

// CarSizes lists the accepted car size values
var CarSizes = []string{"Small", "Medium", "Large", "SUV", "Truck"}

type Car struct {
	ID          int       `json:"id"`
	PlateNumber string    `json:"plate_number"`
	CarType     string    `json:"car_type"`
	CarSize     string    `json:"car_size"`
	DriverName  string    `json:"driver_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidCarSize reports whether size is one of the accepted values
func ValidCarSize(size string) bool {
	for _, s := range CarSizes {
		if s == size {
			return true
		}
	}
	return false
}

// CreateCarRequest represents the request body for registering a car
type CreateCarRequest struct {
	PlateNumber string `json:"plate_number"`
	CarType     string `json:"car_type"`
	CarSize     string `json:"car_size"`
	DriverName  string `json:"driver_name"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateCarRequest represents the request body for updating a car.
// The plate number is immutable; sending a different one is rejected.
type UpdateCarRequest struct {
	PlateNumber string `json:"plate_number"`
	CarType     string `json:"car_type"`
	CarSize     string `json:"car_size"`
	DriverName  string `json:"driver_name"`
	PhoneNumber string `json:"phone_number"`
}

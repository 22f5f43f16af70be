package models

import "time"

// Package is a wash service package offered at a fixed price
type Package struct {
	ID                 int       `json:"id"`
	PackageNumber      string    `json:"package_number"`
	PackageName        string    `json:"package_name"`
	PackageDescription string    `json:"package_description"`
	PackagePrice       float64   `json:"package_price"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreatePackageRequest represents the request body for creating a package
type CreatePackageRequest struct {
	PackageNumber      string  `json:"package_number"`
	PackageName        string  `json:"package_name"`
	PackageDescription string  `json:"package_description"`
	PackagePrice       float64 `json:"package_price"`
}

// UpdatePackageRequest represents the request body for updating a package.
// The package number is immutable.
type UpdatePackageRequest struct {
	PackageNumber      string  `json:"package_number"`
	PackageName        string  `json:"package_name"`
	PackageDescription string  `json:"package_description"`
	PackagePrice       float64 `json:"package_price"`
}

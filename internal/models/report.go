package models

import "time"

// DailyReportRow is one payment made on the requested day, enriched with the
// car and package it settles
type DailyReportRow struct {
	PaymentNumber      string    `json:"payment_number"`
	PlateNumber        string    `json:"plate_number"`
	PackageName        string    `json:"package_name"`
	PackageDescription string    `json:"package_description"`
	AmountPaid         float64   `json:"amount_paid"`
	PaymentDate        time.Time `json:"payment_date"`
}

// DailyReport is the full report for one calendar day
type DailyReport struct {
	Date        string           `json:"date"`
	Rows        []DailyReportRow `json:"rows"`
	TotalAmount float64          `json:"total_amount"`
}

// PackageRevenue aggregates revenue for one package
type PackageRevenue struct {
	PackageName  string  `json:"package_name"`
	TotalRevenue float64 `json:"total_revenue"`
	Count        int     `json:"count"`
}

// SummaryReport aggregates store-wide totals
type SummaryReport struct {
	TotalCars        int              `json:"total_cars"`
	TotalPackages    int              `json:"total_packages"`
	TotalServices    int              `json:"total_services"`
	TotalPayments    int              `json:"total_payments"`
	TotalRevenue     float64          `json:"total_revenue"`
	RevenueByPackage []PackageRevenue `json:"revenue_by_package"`
}

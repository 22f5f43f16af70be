package repositories

import (
	"context"

	"carwash-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository runs the aggregate queries behind the summary report.
// Everything is recomputed from current store state on every call.
type ReportRepository struct {
	DB *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Counts returns the total number of cars, packages, service records and
// payments in one round trip.
func (r *ReportRepository) Counts(ctx context.Context) (cars, packages, services, payments int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM cars),
			(SELECT COUNT(*) FROM packages),
			(SELECT COUNT(*) FROM service_records),
			(SELECT COUNT(*) FROM payments)
	`
	err = r.DB.QueryRow(ctx, query).Scan(&cars, &packages, &services, &payments)
	return
}

// TotalRevenue sums amount_paid over all payments, optionally restricted to
// an inclusive payment_date range (empty string = unbounded).
func (r *ReportRepository) TotalRevenue(ctx context.Context, startDate, endDate string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM payments
		WHERE (NULLIF($1, '') IS NULL OR payment_date >= NULLIF($1, '')::date)
		  AND (NULLIF($2, '') IS NULL OR payment_date <= NULLIF($2, '')::date)
	`
	var total float64
	err := r.DB.QueryRow(ctx, query, startDate, endDate).Scan(&total)
	return total, err
}

// RevenueByPackage groups payment revenue by package name, highest revenue
// first.
func (r *ReportRepository) RevenueByPackage(ctx context.Context, startDate, endDate string) ([]models.PackageRevenue, error) {
	query := `
		SELECT p.package_name, COALESCE(SUM(pay.amount_paid), 0), COUNT(pay.id)
		FROM payments pay
		JOIN service_records s ON pay.service_record_id = s.id
		JOIN packages p ON s.package_id = p.id
		WHERE (NULLIF($1, '') IS NULL OR pay.payment_date >= NULLIF($1, '')::date)
		  AND (NULLIF($2, '') IS NULL OR pay.payment_date <= NULLIF($2, '')::date)
		GROUP BY p.package_name
		ORDER BY SUM(pay.amount_paid) DESC
	`
	rows, err := r.DB.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.PackageRevenue
	for rows.Next() {
		var pr models.PackageRevenue
		if err := rows.Scan(&pr.PackageName, &pr.TotalRevenue, &pr.Count); err != nil {
			return nil, err
		}
		result = append(result, pr)
	}

	return result, rows.Err()
}

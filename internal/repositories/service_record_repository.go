package repositories

import (
	"context"
	"fmt"

	"carwash-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRecordRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRecordRepository(db *pgxpool.Pool) *ServiceRecordRepository {
	return &ServiceRecordRepository{DB: db}
}

// GenerateRecordNumber returns the next server-assigned record number
func (r *ServiceRecordRepository) GenerateRecordNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('record_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next record number: %w", err)
	}
	return fmt.Sprintf("SRV-%06d", nextNum), nil
}

func (r *ServiceRecordRepository) Create(ctx context.Context, record *models.ServiceRecord) error {
	recordNumber, err := r.GenerateRecordNumber(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO service_records (record_number, car_id, package_id, service_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err = r.DB.QueryRow(ctx, query,
		recordNumber,
		record.CarID,
		record.PackageID,
		record.ServiceDate,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return err
	}

	record.RecordNumber = recordNumber
	return nil
}

const serviceWithDetailsColumns = `
	s.id, s.record_number, s.car_id, s.package_id, s.service_date, s.status, s.created_at, s.updated_at,
	c.id, c.plate_number, c.car_type, c.car_size, c.driver_name, c.phone_number, c.created_at, c.updated_at,
	p.id, p.package_number, p.package_name, p.package_description, p.package_price, p.created_at, p.updated_at
`

func scanServiceWithDetails(row pgx.Row) (*models.ServiceRecordWithDetails, error) {
	record := &models.ServiceRecordWithDetails{
		Car:     &models.Car{},
		Package: &models.Package{},
	}
	err := row.Scan(
		&record.ID, &record.RecordNumber, &record.CarID, &record.PackageID,
		&record.ServiceDate, &record.Status, &record.CreatedAt, &record.UpdatedAt,
		&record.Car.ID, &record.Car.PlateNumber, &record.Car.CarType, &record.Car.CarSize,
		&record.Car.DriverName, &record.Car.PhoneNumber, &record.Car.CreatedAt, &record.Car.UpdatedAt,
		&record.Package.ID, &record.Package.PackageNumber, &record.Package.PackageName,
		&record.Package.PackageDescription, &record.Package.PackagePrice,
		&record.Package.CreatedAt, &record.Package.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ServiceRecordRepository) Get(ctx context.Context, id int) (*models.ServiceRecordWithDetails, error) {
	query := `
		SELECT ` + serviceWithDetailsColumns + `
		FROM service_records s
		JOIN cars c ON s.car_id = c.id
		JOIN packages p ON s.package_id = p.id
		WHERE s.id = $1
	`
	return scanServiceWithDetails(r.DB.QueryRow(ctx, query, id))
}

// List returns all service records joined with their car and package,
// in creation order.
func (r *ServiceRecordRepository) List(ctx context.Context) ([]*models.ServiceRecordWithDetails, error) {
	query := `
		SELECT ` + serviceWithDetailsColumns + `
		FROM service_records s
		JOIN cars c ON s.car_id = c.id
		JOIN packages p ON s.package_id = p.id
		ORDER BY s.id
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ServiceRecordWithDetails
	for rows.Next() {
		record, err := scanServiceWithDetails(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// ListUnpaid returns the service records eligible for a new payment: no
// payment row references them and their status is not 'paid'. Order matches
// List (creation order).
func (r *ServiceRecordRepository) ListUnpaid(ctx context.Context) ([]*models.ServiceRecordWithDetails, error) {
	query := `
		SELECT ` + serviceWithDetailsColumns + `
		FROM service_records s
		JOIN cars c ON s.car_id = c.id
		JOIN packages p ON s.package_id = p.id
		LEFT JOIN payments pay ON pay.service_record_id = s.id
		WHERE pay.id IS NULL AND s.status <> 'paid'
		ORDER BY s.id
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ServiceRecordWithDetails
	for rows.Next() {
		record, err := scanServiceWithDetails(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Update overwrites the service date and status. Car and package references
// are immutable and deliberately absent from the statement.
func (r *ServiceRecordRepository) Update(ctx context.Context, record *models.ServiceRecord) error {
	query := `
		UPDATE service_records
		SET service_date = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query, record.ServiceDate, record.Status, record.ID).
		Scan(&record.UpdatedAt)
}

func (r *ServiceRecordRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM service_records WHERE id = $1", id)
	return err
}

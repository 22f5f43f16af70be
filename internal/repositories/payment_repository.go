package repositories

import (
	"context"
	"fmt"

	"carwash-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// GeneratePaymentNumber returns the next server-assigned payment number
func (r *PaymentRepository) GeneratePaymentNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('payment_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next payment number: %w", err)
	}
	return fmt.Sprintf("PAY-%06d", nextNum), nil
}

// Create inserts the payment and advances the service record to 'paid' in
// one transaction. The UNIQUE constraint on service_record_id backs the
// one-payment-per-service rule even under concurrent writers.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	paymentNumber, err := r.GeneratePaymentNumber(ctx)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO payments (payment_number, service_record_id, amount_paid, payment_method, payment_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		paymentNumber,
		payment.ServiceRecordID,
		payment.AmountPaid,
		payment.PaymentMethod,
		payment.PaymentDate,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE service_records SET status = 'paid', updated_at = NOW() WHERE id = $1`,
		payment.ServiceRecordID,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	payment.PaymentNumber = paymentNumber
	return nil
}

const paymentWithDetailsColumns = `
	pay.id, pay.payment_number, pay.service_record_id, pay.amount_paid, pay.payment_method, pay.payment_date, pay.created_at,
	s.id, s.record_number, s.car_id, s.package_id, s.service_date, s.status, s.created_at, s.updated_at,
	c.id, c.plate_number, c.car_type, c.car_size, c.driver_name, c.phone_number, c.created_at, c.updated_at,
	p.id, p.package_number, p.package_name, p.package_description, p.package_price, p.created_at, p.updated_at
`

func scanPaymentWithDetails(row pgx.Row) (*models.PaymentWithDetails, error) {
	payment := &models.PaymentWithDetails{
		Service: &models.ServiceRecordWithDetails{
			Car:     &models.Car{},
			Package: &models.Package{},
		},
	}
	svc := payment.Service
	err := row.Scan(
		&payment.ID, &payment.PaymentNumber, &payment.ServiceRecordID,
		&payment.AmountPaid, &payment.PaymentMethod, &payment.PaymentDate, &payment.CreatedAt,
		&svc.ID, &svc.RecordNumber, &svc.CarID, &svc.PackageID,
		&svc.ServiceDate, &svc.Status, &svc.CreatedAt, &svc.UpdatedAt,
		&svc.Car.ID, &svc.Car.PlateNumber, &svc.Car.CarType, &svc.Car.CarSize,
		&svc.Car.DriverName, &svc.Car.PhoneNumber, &svc.Car.CreatedAt, &svc.Car.UpdatedAt,
		&svc.Package.ID, &svc.Package.PackageNumber, &svc.Package.PackageName,
		&svc.Package.PackageDescription, &svc.Package.PackagePrice,
		&svc.Package.CreatedAt, &svc.Package.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

const paymentWithDetailsJoins = `
	FROM payments pay
	JOIN service_records s ON pay.service_record_id = s.id
	JOIN cars c ON s.car_id = c.id
	JOIN packages p ON s.package_id = p.id
`

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.PaymentWithDetails, error) {
	query := `SELECT ` + paymentWithDetailsColumns + paymentWithDetailsJoins + ` WHERE pay.id = $1`
	return scanPaymentWithDetails(r.DB.QueryRow(ctx, query, id))
}

// GetByServiceRecordID returns the payment settling the given service
// record, or pgx.ErrNoRows when it is still unpaid.
func (r *PaymentRepository) GetByServiceRecordID(ctx context.Context, serviceRecordID int) (*models.Payment, error) {
	query := `
		SELECT id, payment_number, service_record_id, amount_paid, payment_method, payment_date, created_at
		FROM payments
		WHERE service_record_id = $1
	`
	payment := &models.Payment{}
	err := r.DB.QueryRow(ctx, query, serviceRecordID).Scan(
		&payment.ID,
		&payment.PaymentNumber,
		&payment.ServiceRecordID,
		&payment.AmountPaid,
		&payment.PaymentMethod,
		&payment.PaymentDate,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.PaymentWithDetails, error) {
	query := `SELECT ` + paymentWithDetailsColumns + paymentWithDetailsJoins + ` ORDER BY pay.payment_date DESC, pay.id DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.PaymentWithDetails
	for rows.Next() {
		payment, err := scanPaymentWithDetails(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// ListByDate returns the payments made on the given calendar date, enriched
// with car and package details, in creation order.
func (r *PaymentRepository) ListByDate(ctx context.Context, date string) ([]*models.PaymentWithDetails, error) {
	query := `SELECT ` + paymentWithDetailsColumns + paymentWithDetailsJoins + ` WHERE pay.payment_date = $1 ORDER BY pay.id`
	rows, err := r.DB.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.PaymentWithDetails
	for rows.Next() {
		payment, err := scanPaymentWithDetails(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// PaidServiceIDs returns the ids of all service records that have a payment.
// Used to rebuild the Redis paid-services index on startup.
func (r *PaymentRepository) PaidServiceIDs(ctx context.Context) ([]int, error) {
	rows, err := r.DB.Query(ctx, "SELECT service_record_id FROM payments")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

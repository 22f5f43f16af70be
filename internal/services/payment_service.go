package services

import (
	"context"
	"fmt"
	"strings"

	"carwash-backend/internal/cache"
	"carwash-backend/internal/metrics"
	"carwash-backend/internal/models"
	"carwash-backend/internal/timeutil"
)

// PaymentStore is the subset of the payment repository the service needs
type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	Get(ctx context.Context, id int) (*models.PaymentWithDetails, error)
	GetByServiceRecordID(ctx context.Context, serviceRecordID int) (*models.Payment, error)
	List(ctx context.Context) ([]*models.PaymentWithDetails, error)
}

type PaymentService struct {
	Repo    PaymentStore
	Records ServiceRecordStore
}

func NewPaymentService(repo PaymentStore, records ServiceRecordStore) *PaymentService {
	return &PaymentService{
		Repo:    repo,
		Records: records,
	}
}

// CreatePayment records a payment for a service record. A record can be paid
// at most once; recording the payment advances the record to 'paid'.
func (s *PaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentWithDetails, error) {
	if req.ServiceRecordID == 0 || req.PaymentMethod == "" || req.PaymentDate == "" {
		return nil, fmt.Errorf("%w: service_record_id, payment_method, and payment_date are required", ErrValidation)
	}
	if req.AmountPaid < 0 {
		return nil, fmt.Errorf("%w: amount_paid cannot be negative", ErrValidation)
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: payment_method must be one of %s", ErrValidation, strings.Join(models.PaymentMethods, ", "))
	}

	paymentDate, err := timeutil.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: payment_date must be in YYYY-MM-DD format", ErrValidation)
	}

	record, err := s.Records.Get(ctx, req.ServiceRecordID)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: service record %d", ErrNotFound, req.ServiceRecordID)
		}
		return nil, err
	}
	if record.Status == models.StatusPaid {
		return nil, ErrAlreadyPaid
	}
	if existing, err := s.Repo.GetByServiceRecordID(ctx, req.ServiceRecordID); err == nil && existing != nil {
		return nil, ErrAlreadyPaid
	}

	payment := &models.Payment{
		ServiceRecordID: req.ServiceRecordID,
		AmountPaid:      req.AmountPaid,
		PaymentMethod:   req.PaymentMethod,
		PaymentDate:     paymentDate,
	}
	if err := s.Repo.Create(ctx, payment); err != nil {
		// Lost a race to another payment for the same record
		if isUniqueViolation(err) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}

	cache.MarkServicePaid(ctx, payment.ServiceRecordID)
	metrics.PaymentsRecorded.Inc()

	return s.GetPayment(ctx, payment.ID)
}

func (s *PaymentService) GetPayment(ctx context.Context, id int) (*models.PaymentWithDetails, error) {
	payment, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: payment %d", ErrNotFound, id)
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*models.PaymentWithDetails, error) {
	return s.Repo.List(ctx)
}

// UnpaidServices returns the service records still eligible for a payment,
// in the same order ListRecords returns them. When the Redis paid-services
// index is available it filters the full list in memory; otherwise the
// derivation happens in SQL.
func (s *PaymentService) UnpaidServices(ctx context.Context) ([]*models.ServiceRecordWithDetails, error) {
	if paid, ok := cache.PaidServiceIDs(ctx); ok {
		all, err := s.Records.List(ctx)
		if err != nil {
			return nil, err
		}
		return FilterUnpaid(all, paid), nil
	}
	return s.Records.ListUnpaid(ctx)
}

// FilterUnpaid returns the records that have no payment and are not already
// marked paid, preserving input order.
func FilterUnpaid(records []*models.ServiceRecordWithDetails, paid map[int]bool) []*models.ServiceRecordWithDetails {
	unpaid := make([]*models.ServiceRecordWithDetails, 0, len(records))
	for _, r := range records {
		if paid[r.ID] || r.Status == models.StatusPaid {
			continue
		}
		unpaid = append(unpaid, r)
	}
	return unpaid
}

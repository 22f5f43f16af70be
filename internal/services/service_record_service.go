package services

import (
	"context"
	"fmt"

	"carwash-backend/internal/models"
	"carwash-backend/internal/timeutil"
)

// ServiceRecordStore is the subset of the service record repository the
// service needs
type ServiceRecordStore interface {
	Create(ctx context.Context, record *models.ServiceRecord) error
	Get(ctx context.Context, id int) (*models.ServiceRecordWithDetails, error)
	List(ctx context.Context) ([]*models.ServiceRecordWithDetails, error)
	ListUnpaid(ctx context.Context) ([]*models.ServiceRecordWithDetails, error)
	Update(ctx context.Context, record *models.ServiceRecord) error
	Delete(ctx context.Context, id int) error
}

type ServiceRecordService struct {
	Repo     ServiceRecordStore
	Cars     CarStore
	Packages PackageStore
}

func NewServiceRecordService(repo ServiceRecordStore, cars CarStore, packages PackageStore) *ServiceRecordService {
	return &ServiceRecordService{
		Repo:     repo,
		Cars:     cars,
		Packages: packages,
	}
}

// CreateRecord books a wash for a car. The referenced car and package must
// exist, the record number is server-assigned, and new records start pending.
func (s *ServiceRecordService) CreateRecord(ctx context.Context, req *models.CreateServiceRecordRequest) (*models.ServiceRecordWithDetails, error) {
	if req.CarID == 0 || req.PackageID == 0 || req.ServiceDate == "" {
		return nil, fmt.Errorf("%w: car_id, package_id, and service_date are required", ErrValidation)
	}

	serviceDate, err := timeutil.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: service_date must be in YYYY-MM-DD format", ErrValidation)
	}

	if _, err := s.Cars.Get(ctx, req.CarID); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: car %d", ErrNotFound, req.CarID)
		}
		return nil, err
	}
	if _, err := s.Packages.Get(ctx, req.PackageID); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: package %d", ErrNotFound, req.PackageID)
		}
		return nil, err
	}

	record := &models.ServiceRecord{
		CarID:       req.CarID,
		PackageID:   req.PackageID,
		ServiceDate: serviceDate,
		Status:      models.StatusPending,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: referenced car or package does not exist", ErrNotFound)
		}
		return nil, err
	}

	return s.GetRecord(ctx, record.ID)
}

func (s *ServiceRecordService) GetRecord(ctx context.Context, id int) (*models.ServiceRecordWithDetails, error) {
	record, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: service record %d", ErrNotFound, id)
		}
		return nil, err
	}
	return record, nil
}

func (s *ServiceRecordService) ListRecords(ctx context.Context) ([]*models.ServiceRecordWithDetails, error) {
	return s.Repo.List(ctx)
}

// UpdateRecord edits the service date and status of a record. The status may
// only move forward through the lifecycle; "paid" is terminal.
func (s *ServiceRecordService) UpdateRecord(ctx context.Context, id int, req *models.UpdateServiceRecordRequest) (*models.ServiceRecordWithDetails, error) {
	existing, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	record := existing.ServiceRecord

	if req.ServiceDate != "" {
		serviceDate, err := timeutil.ParseDate(req.ServiceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: service_date must be in YYYY-MM-DD format", ErrValidation)
		}
		record.ServiceDate = serviceDate
	}

	if req.Status != "" {
		if !models.ValidStatus(req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		if !models.CanTransition(record.Status, req.Status) {
			return nil, fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, record.Status, req.Status)
		}
		record.Status = req.Status
	}

	if err := s.Repo.Update(ctx, &record); err != nil {
		return nil, err
	}

	return s.GetRecord(ctx, id)
}

// DeleteRecord removes a service record. Records with a payment cannot be
// deleted.
func (s *ServiceRecordService) DeleteRecord(ctx context.Context, id int) error {
	if _, err := s.GetRecord(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: service record has a payment and cannot be deleted", ErrConflict)
		}
		return err
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"carwash-backend/internal/models"
)

// CarStore is the subset of the car repository the service needs
type CarStore interface {
	Create(ctx context.Context, car *models.Car) error
	Get(ctx context.Context, id int) (*models.Car, error)
	GetByPlate(ctx context.Context, plateNumber string) (*models.Car, error)
	List(ctx context.Context) ([]*models.Car, error)
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id int) error
}

type CarService struct {
	Repo CarStore
}

func NewCarService(repo CarStore) *CarService {
	return &CarService{Repo: repo}
}

func (s *CarService) validate(plateNumber, carType, carSize, driverName, phoneNumber string) error {
	if plateNumber == "" || carType == "" || carSize == "" || driverName == "" || phoneNumber == "" {
		return fmt.Errorf("%w: all car fields are required", ErrValidation)
	}
	if !models.ValidCarSize(carSize) {
		return fmt.Errorf("%w: car_size must be one of %s", ErrValidation, strings.Join(models.CarSizes, ", "))
	}
	return nil
}

// CreateCar registers a car. Plate numbers are normalized to upper case and
// must be unique.
func (s *CarService) CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.Car, error) {
	plate := strings.ToUpper(strings.TrimSpace(req.PlateNumber))
	if err := s.validate(plate, req.CarType, req.CarSize, req.DriverName, req.PhoneNumber); err != nil {
		return nil, err
	}

	car := &models.Car{
		PlateNumber: plate,
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.Repo.Create(ctx, car); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a car with plate number %s is already registered", ErrConflict, plate)
		}
		return nil, err
	}

	return car, nil
}

func (s *CarService) GetCar(ctx context.Context, id int) (*models.Car, error) {
	car, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: car %d", ErrNotFound, id)
		}
		return nil, err
	}
	return car, nil
}

func (s *CarService) ListCars(ctx context.Context) ([]*models.Car, error) {
	return s.Repo.List(ctx)
}

// UpdateCar updates a car's details. The plate number is immutable; a request
// carrying a different plate is rejected rather than silently ignored.
func (s *CarService) UpdateCar(ctx context.Context, id int, req *models.UpdateCarRequest) (*models.Car, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}

	plate := strings.ToUpper(strings.TrimSpace(req.PlateNumber))
	if plate != "" && plate != car.PlateNumber {
		return nil, fmt.Errorf("%w: plate number cannot be changed", ErrValidation)
	}
	if err := s.validate(car.PlateNumber, req.CarType, req.CarSize, req.DriverName, req.PhoneNumber); err != nil {
		return nil, err
	}

	car.CarType = req.CarType
	car.CarSize = req.CarSize
	car.DriverName = req.DriverName
	car.PhoneNumber = req.PhoneNumber
	if err := s.Repo.Update(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

// DeleteCar removes a car. Cars referenced by service records cannot be
// deleted.
func (s *CarService) DeleteCar(ctx context.Context, id int) error {
	if _, err := s.GetCar(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: car has service records and cannot be deleted", ErrConflict)
		}
		return err
	}
	return nil
}

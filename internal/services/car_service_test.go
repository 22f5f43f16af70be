package services

import (
	"context"
	"testing"

	"carwash-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCarNormalizesPlate(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	car, err := svc.CreateCar(context.Background(), &models.CreateCarRequest{
		PlateNumber: " rab 123a ",
		CarType:     "Sedan",
		CarSize:     "Medium",
		DriverName:  "Jean Bosco",
		PhoneNumber: "+250788123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "RAB 123A", car.PlateNumber)
	assert.NotZero(t, car.ID)
}

func TestCreateCarInvalidSize(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	_, err := svc.CreateCar(context.Background(), &models.CreateCarRequest{
		PlateNumber: "RAB123A",
		CarType:     "Sedan",
		CarSize:     "Gigantic",
		DriverName:  "Jean Bosco",
		PhoneNumber: "+250788123456",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCarMissingFields(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	_, err := svc.CreateCar(context.Background(), &models.CreateCarRequest{
		PlateNumber: "RAB123A",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCarPlateImmutable(t *testing.T) {
	svc := NewCarService(newFakeCarStore())
	ctx := context.Background()

	car, err := svc.CreateCar(ctx, &models.CreateCarRequest{
		PlateNumber: "RAB123A",
		CarType:     "Sedan",
		CarSize:     "Medium",
		DriverName:  "Jean Bosco",
		PhoneNumber: "+250788123456",
	})
	require.NoError(t, err)

	_, err = svc.UpdateCar(ctx, car.ID, &models.UpdateCarRequest{
		PlateNumber: "RAC999Z",
		CarType:     "Sedan",
		CarSize:     "Medium",
		DriverName:  "Jean Bosco",
		PhoneNumber: "+250788123456",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Same plate (or omitted) is fine
	updated, err := svc.UpdateCar(ctx, car.ID, &models.UpdateCarRequest{
		PlateNumber: "rab123a",
		CarType:     "SUV",
		CarSize:     "SUV",
		DriverName:  "Jean Bosco",
		PhoneNumber: "+250788123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "RAB123A", updated.PlateNumber)
	assert.Equal(t, "SUV", updated.CarType)
}

func TestGetCarNotFound(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	_, err := svc.GetCar(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

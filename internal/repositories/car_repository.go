package repositories

import (
	"context"

	"carwash-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	DB *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) *CarRepository {
	return &CarRepository{DB: db}
}

func (r *CarRepository) Create(ctx context.Context, car *models.Car) error {
	query := `
		INSERT INTO cars (plate_number, car_type, car_size, driver_name, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		car.PlateNumber,
		car.CarType,
		car.CarSize,
		car.DriverName,
		car.PhoneNumber,
	).Scan(&car.ID, &car.CreatedAt, &car.UpdatedAt)
}

func (r *CarRepository) Get(ctx context.Context, id int) (*models.Car, error) {
	query := `
		SELECT id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at
		FROM cars
		WHERE id = $1
	`
	car := &models.Car{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.PlateNumber,
		&car.CarType,
		&car.CarSize,
		&car.DriverName,
		&car.PhoneNumber,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *CarRepository) GetByPlate(ctx context.Context, plateNumber string) (*models.Car, error) {
	query := `
		SELECT id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at
		FROM cars
		WHERE plate_number = $1
	`
	car := &models.Car{}
	err := r.DB.QueryRow(ctx, query, plateNumber).Scan(
		&car.ID,
		&car.PlateNumber,
		&car.CarType,
		&car.CarSize,
		&car.DriverName,
		&car.PhoneNumber,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *CarRepository) List(ctx context.Context) ([]*models.Car, error) {
	query := `
		SELECT id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at
		FROM cars
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []*models.Car
	for rows.Next() {
		car := &models.Car{}
		err := rows.Scan(
			&car.ID,
			&car.PlateNumber,
			&car.CarType,
			&car.CarSize,
			&car.DriverName,
			&car.PhoneNumber,
			&car.CreatedAt,
			&car.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	return cars, rows.Err()
}

func (r *CarRepository) Update(ctx context.Context, car *models.Car) error {
	query := `
		UPDATE cars
		SET car_type = $1, car_size = $2, driver_name = $3, phone_number = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query,
		car.CarType,
		car.CarSize,
		car.DriverName,
		car.PhoneNumber,
		car.ID,
	).Scan(&car.UpdatedAt)
}

func (r *CarRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM cars WHERE id = $1", id)
	return err
}

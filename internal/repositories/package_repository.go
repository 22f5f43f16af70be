package repositories

import (
	"context"

	"carwash-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PackageRepository struct {
	DB *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{DB: db}
}

func (r *PackageRepository) Create(ctx context.Context, pkg *models.Package) error {
	query := `
		INSERT INTO packages (package_number, package_name, package_description, package_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		pkg.PackageNumber,
		pkg.PackageName,
		pkg.PackageDescription,
		pkg.PackagePrice,
	).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)
}

func (r *PackageRepository) Get(ctx context.Context, id int) (*models.Package, error) {
	query := `
		SELECT id, package_number, package_name, package_description, package_price, created_at, updated_at
		FROM packages
		WHERE id = $1
	`
	pkg := &models.Package{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.PackageNumber,
		&pkg.PackageName,
		&pkg.PackageDescription,
		&pkg.PackagePrice,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *PackageRepository) GetByNumber(ctx context.Context, packageNumber string) (*models.Package, error) {
	query := `
		SELECT id, package_number, package_name, package_description, package_price, created_at, updated_at
		FROM packages
		WHERE package_number = $1
	`
	pkg := &models.Package{}
	err := r.DB.QueryRow(ctx, query, packageNumber).Scan(
		&pkg.ID,
		&pkg.PackageNumber,
		&pkg.PackageName,
		&pkg.PackageDescription,
		&pkg.PackagePrice,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]*models.Package, error) {
	query := `
		SELECT id, package_number, package_name, package_description, package_price, created_at, updated_at
		FROM packages
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		pkg := &models.Package{}
		err := rows.Scan(
			&pkg.ID,
			&pkg.PackageNumber,
			&pkg.PackageName,
			&pkg.PackageDescription,
			&pkg.PackagePrice,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, rows.Err()
}

func (r *PackageRepository) Update(ctx context.Context, pkg *models.Package) error {
	query := `
		UPDATE packages
		SET package_name = $1, package_description = $2, package_price = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`
	return r.DB.QueryRow(ctx, query,
		pkg.PackageName,
		pkg.PackageDescription,
		pkg.PackagePrice,
		pkg.ID,
	).Scan(&pkg.UpdatedAt)
}

func (r *PackageRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM packages WHERE id = $1", id)
	return err
}

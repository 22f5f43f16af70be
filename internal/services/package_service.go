package services

import (
	"context"
	"fmt"
	"strings"

	"carwash-backend/internal/models"
)

// PackageStore is the subset of the package repository the service needs
type PackageStore interface {
	Create(ctx context.Context, pkg *models.Package) error
	Get(ctx context.Context, id int) (*models.Package, error)
	GetByNumber(ctx context.Context, packageNumber string) (*models.Package, error)
	List(ctx context.Context) ([]*models.Package, error)
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id int) error
}

type PackageService struct {
	Repo PackageStore
}

func NewPackageService(repo PackageStore) *PackageService {
	return &PackageService{Repo: repo}
}

// CreatePackage adds a wash package to the catalog. Package numbers must be
// unique and the price non-negative.
func (s *PackageService) CreatePackage(ctx context.Context, req *models.CreatePackageRequest) (*models.Package, error) {
	number := strings.TrimSpace(req.PackageNumber)
	if number == "" || req.PackageName == "" {
		return nil, fmt.Errorf("%w: package_number and package_name are required", ErrValidation)
	}
	if req.PackagePrice < 0 {
		return nil, fmt.Errorf("%w: package_price cannot be negative", ErrValidation)
	}

	pkg := &models.Package{
		PackageNumber:      number,
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       req.PackagePrice,
	}
	if err := s.Repo.Create(ctx, pkg); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: package number %s already exists", ErrConflict, number)
		}
		return nil, err
	}

	return pkg, nil
}

func (s *PackageService) GetPackage(ctx context.Context, id int) (*models.Package, error) {
	pkg, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: package %d", ErrNotFound, id)
		}
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) ListPackages(ctx context.Context) ([]*models.Package, error) {
	return s.Repo.List(ctx)
}

// UpdatePackage updates a package's name, description and price. The package
// number is immutable.
func (s *PackageService) UpdatePackage(ctx context.Context, id int, req *models.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(req.PackageNumber)
	if number != "" && number != pkg.PackageNumber {
		return nil, fmt.Errorf("%w: package number cannot be changed", ErrValidation)
	}
	if req.PackageName == "" {
		return nil, fmt.Errorf("%w: package_name is required", ErrValidation)
	}
	if req.PackagePrice < 0 {
		return nil, fmt.Errorf("%w: package_price cannot be negative", ErrValidation)
	}

	pkg.PackageName = req.PackageName
	pkg.PackageDescription = req.PackageDescription
	pkg.PackagePrice = req.PackagePrice
	if err := s.Repo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// DeletePackage removes a package. Packages referenced by service records
// cannot be deleted.
func (s *PackageService) DeletePackage(ctx context.Context, id int) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: package has service records and cannot be deleted", ErrConflict)
		}
		return err
	}
	return nil
}

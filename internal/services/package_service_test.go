package services

import (
	"context"
	"testing"

	"carwash-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackageValidation(t *testing.T) {
	svc := NewPackageService(newFakePackageStore())
	ctx := context.Background()

	_, err := svc.CreatePackage(ctx, &models.CreatePackageRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreatePackage(ctx, &models.CreatePackageRequest{
		PackageNumber: "PKG-001",
		PackageName:   "Basic Wash",
		PackagePrice:  -10,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePackageNumberImmutable(t *testing.T) {
	svc := NewPackageService(newFakePackageStore())
	ctx := context.Background()

	pkg, err := svc.CreatePackage(ctx, &models.CreatePackageRequest{
		PackageNumber: "PKG-001",
		PackageName:   "Basic Wash",
		PackagePrice:  5000,
	})
	require.NoError(t, err)

	_, err = svc.UpdatePackage(ctx, pkg.ID, &models.UpdatePackageRequest{
		PackageNumber: "PKG-999",
		PackageName:   "Basic Wash",
		PackagePrice:  5000,
	})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.UpdatePackage(ctx, pkg.ID, &models.UpdatePackageRequest{
		PackageName:  "Basic Wash Plus",
		PackagePrice: 6000,
	})
	require.NoError(t, err)
	assert.Equal(t, "PKG-001", updated.PackageNumber)
	assert.Equal(t, 6000.0, updated.PackagePrice)
}

func TestGetPackageNotFound(t *testing.T) {
	svc := NewPackageService(newFakePackageStore())

	_, err := svc.GetPackage(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

package services

import (
	"context"
	"testing"

	"carwash-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyPayment(t *testing.T, number, plate, pkgName string, amount float64, date string) *models.PaymentWithDetails {
	t.Helper()
	return &models.PaymentWithDetails{
		Payment: models.Payment{
			PaymentNumber: number,
			AmountPaid:    amount,
			PaymentDate:   mustParseDate(t, date),
		},
		Service: &models.ServiceRecordWithDetails{
			Car:     &models.Car{PlateNumber: plate},
			Package: &models.Package{PackageName: pkgName, PackageDescription: "wash"},
		},
	}
}

func TestDailyReportTotals(t *testing.T) {
	payments := newFakePaymentStore(nil)
	payments.byDate["2026-08-30"] = []*models.PaymentWithDetails{
		dailyPayment(t, "PAY-000001", "RAB123A", "Basic Wash", 5000, "2026-08-30"),
		dailyPayment(t, "PAY-000002", "RAC456B", "Premium Wash", 12000, "2026-08-30"),
	}
	svc := NewReportService(payments, &fakeReportStore{})

	report, err := svc.Daily(context.Background(), "2026-08-30")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30", report.Date)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "PAY-000001", report.Rows[0].PaymentNumber)
	assert.Equal(t, "RAB123A", report.Rows[0].PlateNumber)
	assert.Equal(t, "Premium Wash", report.Rows[1].PackageName)
	assert.Equal(t, 17000.0, report.TotalAmount)
}

func TestDailyReportEmptyDay(t *testing.T) {
	svc := NewReportService(newFakePaymentStore(nil), &fakeReportStore{})

	report, err := svc.Daily(context.Background(), "2026-01-01")
	require.NoError(t, err)

	assert.Empty(t, report.Rows)
	assert.Zero(t, report.TotalAmount)
}

func TestDailyReportBadDate(t *testing.T) {
	svc := NewReportService(newFakePaymentStore(nil), &fakeReportStore{})

	_, err := svc.Daily(context.Background(), "30-08-2026")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDailyReportDefaultsToToday(t *testing.T) {
	svc := NewReportService(newFakePaymentStore(nil), &fakeReportStore{})

	report, err := svc.Daily(context.Background(), "")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, report.Date)
}

func TestSummaryReport(t *testing.T) {
	store := &fakeReportStore{
		cars:     3,
		packages: 2,
		services: 5,
		payments: 4,
		revenue:  42000,
		byPackage: []models.PackageRevenue{
			{PackageName: "Premium Wash", TotalRevenue: 30000, Count: 2},
			{PackageName: "Basic Wash", TotalRevenue: 12000, Count: 2},
		},
	}
	svc := NewReportService(newFakePaymentStore(nil), store)

	report, err := svc.Summary(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalCars)
	assert.Equal(t, 2, report.TotalPackages)
	assert.Equal(t, 5, report.TotalServices)
	assert.Equal(t, 4, report.TotalPayments)
	assert.Equal(t, 42000.0, report.TotalRevenue)
	require.Len(t, report.RevenueByPackage, 2)
	assert.Equal(t, "Premium Wash", report.RevenueByPackage[0].PackageName)
}

func TestSummaryReportBadRange(t *testing.T) {
	svc := NewReportService(newFakePaymentStore(nil), &fakeReportStore{})
	ctx := context.Background()

	_, err := svc.Summary(ctx, "bad", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Summary(ctx, "", "bad")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGenerateDailyPDF(t *testing.T) {
	payments := newFakePaymentStore(nil)
	payments.byDate["2026-08-30"] = []*models.PaymentWithDetails{
		dailyPayment(t, "PAY-000001", "RAB123A", "Basic Wash", 5000, "2026-08-30"),
	}
	svc := NewReportService(payments, &fakeReportStore{})

	report, err := svc.Daily(context.Background(), "2026-08-30")
	require.NoError(t, err)

	pdfBytes, err := svc.GenerateDailyPDF(report, "SmartPark")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

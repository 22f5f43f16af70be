package services

import (
	"context"
	"errors"
	"testing"

	"carwash-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyName     = "SmartPark"
	testCompanyLocation = "Rubavu District, Western Province, Rwanda"
)

type billingFixture struct {
	billing  *BillingService
	payments *PaymentService
	records  *fakeServiceRecordStore
	carID    int
	pkgID    int
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	cars := newFakeCarStore()
	packages := newFakePackageStore()
	records := newFakeServiceRecordStore(cars, packages)
	payments := newFakePaymentStore(records)

	car := &models.Car{PlateNumber: "RAB123A", CarType: "Sedan", CarSize: "Medium", DriverName: "Jean", PhoneNumber: "+250788123456"}
	require.NoError(t, cars.Create(context.Background(), car))

	pkg := &models.Package{PackageNumber: "PKG-001", PackageName: "Basic Wash", PackageDescription: "Exterior wash", PackagePrice: 5000}
	require.NoError(t, packages.Create(context.Background(), pkg))

	return &billingFixture{
		billing:  NewBillingService(records, payments, testCompanyName, testCompanyLocation),
		payments: NewPaymentService(payments, records),
		records:  records,
		carID:    car.ID,
		pkgID:    pkg.ID,
	}
}

func (fx *billingFixture) bookService(t *testing.T) *models.ServiceRecord {
	t.Helper()
	record := &models.ServiceRecord{
		CarID:       fx.carID,
		PackageID:   fx.pkgID,
		ServiceDate: mustParseDate(t, "2026-08-30"),
		Status:      models.StatusCompleted,
	}
	require.NoError(t, fx.records.Create(context.Background(), record))
	return record
}

func TestGetBillPending(t *testing.T) {
	fx := newBillingFixture(t)
	record := fx.bookService(t)

	bill, err := fx.billing.GetBill(context.Background(), record.ID)
	require.NoError(t, err)

	assert.Equal(t, testCompanyName, bill.CompanyName)
	assert.Equal(t, testCompanyLocation, bill.CompanyLocation)
	assert.Equal(t, "RAB123A", bill.Car.PlateNumber)
	assert.Equal(t, "Basic Wash", bill.Package.PackageName)
	assert.Equal(t, record.RecordNumber, bill.Service.RecordNumber)

	assert.Equal(t, models.BillPending, bill.Payment.Status)
	assert.Equal(t, 5000.0, bill.Payment.AmountDue, "amount due is the package price")
	assert.Empty(t, bill.Payment.PaymentNumber)
	assert.Nil(t, bill.Payment.PaymentDate)
	assert.False(t, bill.BillDate.IsZero())
}

func TestGetBillPaid(t *testing.T) {
	fx := newBillingFixture(t)
	ctx := context.Background()
	record := fx.bookService(t)

	payment, err := fx.payments.CreatePayment(ctx, &models.CreatePaymentRequest{
		ServiceRecordID: record.ID,
		AmountPaid:      5000,
		PaymentMethod:   "card",
		PaymentDate:     "2026-08-31",
	})
	require.NoError(t, err)

	bill, err := fx.billing.GetBill(ctx, record.ID)
	require.NoError(t, err)

	assert.Equal(t, models.BillPaid, bill.Payment.Status)
	assert.Equal(t, payment.PaymentNumber, bill.Payment.PaymentNumber)
	assert.Equal(t, 5000.0, bill.Payment.AmountPaid)
	assert.Equal(t, "card", bill.Payment.PaymentMethod)
	require.NotNil(t, bill.Payment.PaymentDate)
	assert.Zero(t, bill.Payment.AmountDue)
}

func TestGetBillIsReadOnly(t *testing.T) {
	fx := newBillingFixture(t)
	ctx := context.Background()
	record := fx.bookService(t)

	before, err := fx.records.Get(ctx, record.ID)
	require.NoError(t, err)

	_, err = fx.billing.GetBill(ctx, record.ID)
	require.NoError(t, err)
	_, err = fx.billing.GetBill(ctx, record.ID)
	require.NoError(t, err)

	after, err := fx.records.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

type failingPaymentStore struct {
	err error
}

func (f *failingPaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	return f.err
}

func (f *failingPaymentStore) Get(ctx context.Context, id int) (*models.PaymentWithDetails, error) {
	return nil, f.err
}

func (f *failingPaymentStore) GetByServiceRecordID(ctx context.Context, serviceRecordID int) (*models.Payment, error) {
	return nil, f.err
}

func (f *failingPaymentStore) List(ctx context.Context) ([]*models.PaymentWithDetails, error) {
	return nil, f.err
}

func TestGetBillStoreErrorSurfaces(t *testing.T) {
	fx := newBillingFixture(t)
	record := fx.bookService(t)

	storeErr := errors.New("connection reset by peer")
	billing := NewBillingService(fx.records, &failingPaymentStore{err: storeErr}, testCompanyName, testCompanyLocation)

	bill, err := billing.GetBill(context.Background(), record.ID)
	require.ErrorIs(t, err, storeErr, "a payment lookup failure must not render as a pending bill")
	assert.Nil(t, bill)
}

func TestGetBillUnknownRecord(t *testing.T) {
	fx := newBillingFixture(t)

	_, err := fx.billing.GetBill(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateBillPDF(t *testing.T) {
	fx := newBillingFixture(t)
	record := fx.bookService(t)

	bill, err := fx.billing.GetBill(context.Background(), record.ID)
	require.NoError(t, err)

	pdfBytes, err := fx.billing.GenerateBillPDF(bill)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
